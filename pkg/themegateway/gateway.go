// Package themegateway tema şablon kimliklerini kapalı bir render varyantı kümesine eşler.
package themegateway

import (
	"errors"
	"sort"

	"github.com/gofiber/fiber/v2"
)

// ErrUnknownTemplate kayıtlı olmayan şablon kimliği.
var ErrUnknownTemplate = errors.New("bilinmeyen tema şablonu")

// RenderFunc bir varyantın davetiye sayfasını üretir.
type RenderFunc func(c *fiber.Ctx, data fiber.Map) error

// Variant tek bir tema şablonu.
type Variant struct {
	ID          string
	Name        string
	Description string
	Render      RenderFunc
}

// Gateway kimlik -> varyant eşlemesi. Oluşturulduktan sonra değişmez.
type Gateway struct {
	variants map[string]Variant
}

// New verilen varyantlarla gateway kurar. Render boşsa "themes/<id>" view'ı kullanılır.
func New(variants ...Variant) *Gateway {
	g := &Gateway{variants: make(map[string]Variant, len(variants))}
	for _, v := range variants {
		if v.Render == nil {
			v.Render = viewRenderer("themes/" + v.ID)
		}
		g.variants[v.ID] = v
	}
	return g
}

// Default uygulamayla gelen üç tema.
func Default() *Gateway {
	return New(
		Variant{ID: "classic", Name: "Klasik", Description: "Desain klasik bernuansa krem"},
		Variant{ID: "minimalis", Name: "Minimalis", Description: "Desain sederhana berlatar putih"},
		Variant{ID: "floral", Name: "Floral", Description: "Desain bermotif bunga warna pastel"},
	)
}

func viewRenderer(view string) RenderFunc {
	return func(c *fiber.Ctx, data fiber.Map) error {
		return c.Render(view, data)
	}
}

// Has şablon kimliği kayıtlı mı?
func (g *Gateway) Has(id string) bool {
	_, ok := g.variants[id]
	return ok
}

// Lookup varyantı döndürür.
func (g *Gateway) Lookup(id string) (Variant, error) {
	v, ok := g.variants[id]
	if !ok {
		return Variant{}, ErrUnknownTemplate
	}
	return v, nil
}

// Variants kimliğe göre sıralı liste.
func (g *Gateway) Variants() []Variant {
	list := make([]Variant, 0, len(g.variants))
	for _, v := range g.variants {
		list = append(list, v)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// Render kimliğe karşılık gelen varyantla sayfayı üretir.
func (g *Gateway) Render(c *fiber.Ctx, id string, data fiber.Map) error {
	v, err := g.Lookup(id)
	if err != nil {
		return err
	}
	return v.Render(c, data)
}
