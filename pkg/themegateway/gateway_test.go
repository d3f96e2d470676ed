package themegateway

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVariants(t *testing.T) {
	g := Default()
	assert.True(t, g.Has("classic"))
	assert.True(t, g.Has("minimalis"))
	assert.True(t, g.Has("floral"))
	assert.False(t, g.Has("tidak-ada"))

	ids := []string{}
	for _, v := range g.Variants() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"classic", "floral", "minimalis"}, ids)

	_, err := g.Lookup("tidak-ada")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestRenderDispatchesToVariant(t *testing.T) {
	g := New(
		Variant{ID: "a", Render: func(c *fiber.Ctx, data fiber.Map) error {
			return c.SendString("A:" + data["Name"].(string))
		}},
		Variant{ID: "b", Render: func(c *fiber.Ctx, data fiber.Map) error {
			return c.SendString("B")
		}},
	)

	app := fiber.New()
	app.Get("/:tpl", func(c *fiber.Ctx) error {
		if err := g.Render(c, c.Params("tpl"), fiber.Map{"Name": "Budi"}); err != nil {
			return c.Status(fiber.StatusNotFound).SendString(err.Error())
		}
		return nil
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/a", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "A:Budi", string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/zzz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
