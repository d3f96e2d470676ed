package services

import (
	"context"
	"strings"
	"testing"

	"undangan.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiftAccounts(t *testing.T) {
	f := newFixture(t)
	budi, _ := f.newTenant(t, "budi", "budi-ani")
	joko, _ := f.newTenant(t, "joko", "joko-sri")
	ctx := context.Background()

	_, err := f.content.AddGiftAccount(ctx, budi, GiftAccountInput{BankName: "BCA", AccountNumber: " "})
	assert.ErrorIs(t, err, ErrValidation)

	first, err := f.content.AddGiftAccount(ctx, budi, GiftAccountInput{BankName: " BCA ", AccountNumber: "123", AccountHolder: "Budi"})
	require.NoError(t, err)
	assert.Equal(t, "BCA", first.BankName)
	_, err = f.content.AddGiftAccount(ctx, budi, GiftAccountInput{BankName: "Mandiri", AccountNumber: "456", AccountHolder: "Ani"})
	require.NoError(t, err)

	list, err := f.content.ListGiftAccounts(ctx, budi)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "BCA", list[0].BankName)
	assert.Equal(t, "Mandiri", list[1].BankName)

	other, err := f.content.ListGiftAccounts(ctx, joko)
	require.NoError(t, err)
	assert.Empty(t, other)

	assert.ErrorIs(t, f.content.DeleteGiftAccount(ctx, joko, first.ID), ErrNotFound)
	require.NoError(t, f.content.DeleteGiftAccount(ctx, budi, first.ID))
	assert.Equal(t, int64(1), count(t, f.db, &models.GiftAccount{}, ""))
}

func TestAddGalleryItemStoresFile(t *testing.T) {
	f := newFixture(t)
	budi, tenant := f.newTenant(t, "budi", "budi-ani")
	ctx := context.Background()

	item, err := f.content.AddGalleryItem(ctx, budi, pngUpload("Foto Prewed.PNG"), " prewed ")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(item.ImagePath, "uploads/budi-ani/budi-ani_galeri_"), item.ImagePath)
	assert.True(t, strings.HasSuffix(item.ImagePath, ".png"), item.ImagePath)
	assert.Equal(t, "prewed", item.Alt)
	assert.Equal(t, tenant.ID, item.TenantID)
	assert.Equal(t, 1, f.storage.count())

	require.NoError(t, f.content.DeleteGalleryItem(ctx, budi, item.ID))
	assert.Zero(t, f.storage.count())
}

func TestAddGalleryItemStorageFailureCreatesNothing(t *testing.T) {
	f := newFixture(t)
	budi, _ := f.newTenant(t, "budi", "budi-ani")
	ctx := context.Background()
	f.storage.fail = true

	_, err := f.content.AddGalleryItem(ctx, budi, pngUpload("foto.png"), "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "gambar gagal disimpan", PublicMessage(err))
	assert.Zero(t, count(t, f.db, &models.GalleryItem{}, ""))
}

func TestAddGalleryItemRejectsBadFiles(t *testing.T) {
	f := newFixture(t)
	budi, _ := f.newTenant(t, "budi", "budi-ani")
	ctx := context.Background()

	_, err := f.content.AddGalleryItem(ctx, budi, pngUpload("foto.gif"), "")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.content.AddGalleryItem(ctx, budi, nil, "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, f.storage.count())
	assert.Zero(t, count(t, f.db, &models.GalleryItem{}, ""))
}

func TestGalleryDeleteIsTenantScoped(t *testing.T) {
	f := newFixture(t)
	budi, _ := f.newTenant(t, "budi", "budi-ani")
	joko, _ := f.newTenant(t, "joko", "joko-sri")
	ctx := context.Background()

	item, err := f.content.AddGalleryItem(ctx, budi, pngUpload("foto.jpg"), "")
	require.NoError(t, err)

	assert.ErrorIs(t, f.content.DeleteGalleryItem(ctx, joko, item.ID), ErrNotFound)
	assert.Equal(t, 1, f.storage.count())
	assert.Equal(t, int64(1), count(t, f.db, &models.GalleryItem{}, ""))
}

func TestStoryEntriesOrderUndatedLast(t *testing.T) {
	f := newFixture(t)
	budi, _ := f.newTenant(t, "budi", "budi-ani")
	ctx := context.Background()

	for _, in := range []StoryInput{
		{Title: "Tanpa tanggal"},
		{Title: "Lamaran", EventDate: "2024-12-01"},
		{Title: "Pertama bertemu", EventDate: "2019-03-10 19:00"},
		{Title: "Tanpa tanggal lagi"},
	} {
		_, err := f.content.AddStoryEntry(ctx, budi, in)
		require.NoError(t, err)
	}

	list, err := f.content.ListStoryEntries(ctx, budi)
	require.NoError(t, err)
	titles := make([]string, 0, len(list))
	for _, s := range list {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"Pertama bertemu", "Lamaran", "Tanpa tanggal", "Tanpa tanggal lagi"}, titles)
}

func TestAddStoryEntryValidation(t *testing.T) {
	f := newFixture(t)
	budi, _ := f.newTenant(t, "budi", "budi-ani")
	joko, _ := f.newTenant(t, "joko", "joko-sri")
	ctx := context.Background()

	_, err := f.content.AddStoryEntry(ctx, budi, StoryInput{Title: " "})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.content.AddStoryEntry(ctx, budi, StoryInput{Title: "Lamaran", EventDate: "01/12/2024"})
	assert.ErrorIs(t, err, ErrValidation)

	entry, err := f.content.AddStoryEntry(ctx, budi, StoryInput{Title: "Lamaran"})
	require.NoError(t, err)
	assert.Nil(t, entry.EventDate)

	assert.ErrorIs(t, f.content.DeleteStoryEntry(ctx, joko, entry.ID), ErrNotFound)
	require.NoError(t, f.content.DeleteStoryEntry(ctx, budi, entry.ID))
}
