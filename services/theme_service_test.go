package services

import (
	"context"
	"strconv"
	"testing"

	"undangan.link/models"
	"undangan.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateThemeValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	budi, _ := f.newTenant(t, "budi", "budi-ani")
	missing := uint(999)

	_, _, err := f.themes.CreateTheme(ctx, budi, ThemeInput{Name: "Biru", TemplateName: "classic"}, nil)
	assert.ErrorIs(t, err, ErrForbidden)
	_, _, err = f.themes.CreateTheme(ctx, f.super, ThemeInput{Name: " ", TemplateName: "classic"}, nil)
	assert.ErrorIs(t, err, ErrValidation)
	_, _, err = f.themes.CreateTheme(ctx, f.super, ThemeInput{Name: "Biru", TemplateName: "gothic"}, nil)
	assert.ErrorIs(t, err, ErrValidation)
	_, _, err = f.themes.CreateTheme(ctx, f.super, ThemeInput{Name: "Biru", TemplateName: "classic", CategoryID: &missing}, nil)
	assert.ErrorIs(t, err, ErrValidation)
	_, _, err = f.themes.CreateTheme(ctx, f.super, ThemeInput{Name: "Klasik", TemplateName: "floral"}, nil)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateThemeWithCover(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	category, err := f.themes.CreateCategory(ctx, f.super, "Modern")
	require.NoError(t, err)

	theme, warnings, err := f.themes.CreateTheme(ctx, f.super, ThemeInput{
		Name: "Putih", TemplateName: "minimalis", Description: "bersih", CategoryID: &category.ID,
	}, pngUpload("cover.png"))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "uploads/tema/tema_"+uintString(theme.ID)+".png", theme.CoverImage)

	views, err := f.themes.ListThemes(ctx, &category.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Putih", views[0].Name)
	assert.Equal(t, "Modern", views[0].CategoryName)

	all, err := f.themes.ListThemes(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateThemeCoverFailureIsWarning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.storage.fail = true

	theme, warnings, err := f.themes.CreateTheme(ctx, f.super, ThemeInput{Name: "Putih", TemplateName: "minimalis"}, pngUpload("cover.png"))
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Empty(t, theme.CoverImage)
	assert.Equal(t, int64(1), count(t, f.db, &models.Theme{}, "name = ?", "Putih"))
}

func TestUpdateTheme(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	warnings, err := f.themes.UpdateTheme(ctx, f.super, f.theme.ID, ThemeInput{Name: "Klasik Emas", TemplateName: "floral"}, nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	got, err := f.themes.GetTheme(ctx, f.theme.ID)
	require.NoError(t, err)
	assert.Equal(t, "Klasik Emas", got.Name)
	assert.Equal(t, "floral", got.TemplateName)

	_, err = f.themes.UpdateTheme(ctx, f.super, 999, ThemeInput{Name: "X", TemplateName: "floral"}, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteThemeInUse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.newTenant(t, "budi", "budi-ani")

	err := f.themes.DeleteTheme(ctx, f.super, f.theme.ID)
	assert.ErrorIs(t, err, ErrConflict)

	// sayım atlansa bile yabancı anahtar silmeyi engeller
	err = repositories.NewThemeRepository(f.db).Delete(ctx, f.theme.ID)
	assert.True(t, repositories.IsForeignKeyError(err), "beklenmeyen hata: %v", err)
	assert.Equal(t, int64(1), count(t, f.db, &models.Theme{}, "id = ?", f.theme.ID))

	unused, _, err := f.themes.CreateTheme(ctx, f.super, ThemeInput{Name: "Putih", TemplateName: "minimalis"}, nil)
	require.NoError(t, err)
	require.NoError(t, f.themes.DeleteTheme(ctx, f.super, unused.ID))
	assert.ErrorIs(t, f.themes.DeleteTheme(ctx, f.super, unused.ID), ErrNotFound)
}

func TestCategoryLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	category, err := f.themes.CreateCategory(ctx, f.super, " Elegan ")
	require.NoError(t, err)
	assert.Equal(t, "Elegan", category.Name)

	_, err = f.themes.CreateCategory(ctx, f.super, "Elegan")
	assert.ErrorIs(t, err, ErrConflict)
	_, err = f.themes.CreateCategory(ctx, f.super, "")
	assert.ErrorIs(t, err, ErrValidation)

	other, err := f.themes.CreateCategory(ctx, f.super, "Modern")
	require.NoError(t, err)
	assert.ErrorIs(t, f.themes.UpdateCategory(ctx, f.super, other.ID, "Elegan"), ErrConflict)
	require.NoError(t, f.themes.UpdateCategory(ctx, f.super, other.ID, "Modern Minimalis"))

	_, _, err = f.themes.CreateTheme(ctx, f.super, ThemeInput{Name: "Mewah", TemplateName: "classic", CategoryID: &category.ID}, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, f.themes.DeleteCategory(ctx, f.super, category.ID), ErrConflict)
	err = repositories.NewCategoryRepository(f.db).Delete(ctx, category.ID)
	assert.True(t, repositories.IsForeignKeyError(err), "beklenmeyen hata: %v", err)
	require.NoError(t, f.themes.DeleteCategory(ctx, f.super, other.ID))

	list, err := f.themes.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Elegan", list[0].Name)
}

func TestGetThemeByTemplate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	theme, err := f.themes.GetThemeByTemplate(ctx, "classic")
	require.NoError(t, err)
	assert.Equal(t, f.theme.ID, theme.ID)

	_, err = f.themes.GetThemeByTemplate(ctx, "floral")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.themes.GetThemeByTemplate(ctx, "../etc")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Len(t, f.themes.TemplateVariants(), 3)
}

func uintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
