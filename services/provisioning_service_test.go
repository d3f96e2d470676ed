package services

import (
	"context"
	"strings"
	"testing"

	"undangan.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTenantWithAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tenant, err := f.provisioning.CreateTenantWithAdmin(ctx, f.super, TenantAdminInput{
		Username: " budi ", Password: "rahasia123", Slug: "budi-ani", ThemeID: f.theme.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "budi-ani", tenant.Slug)
	assert.Equal(t, models.DefaultCoupleName, tenant.CoupleName)
	require.NotNil(t, tenant.CreatedBy)
	assert.Equal(t, f.super.AdminID, *tenant.CreatedBy)

	var admin models.Admin
	require.NoError(t, f.db.Where("username = ?", "budi").First(&admin).Error)
	require.NotNil(t, admin.TenantID)
	assert.Equal(t, tenant.ID, *admin.TenantID)
	assert.False(t, admin.IsSuperadmin)
	assert.NotEqual(t, "rahasia123", admin.PasswordHash)
}

func TestCreateTenantValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := map[string]TenantAdminInput{
		"slug with space":  {Username: "budi", Password: "rahasia123", Slug: "budi ani", ThemeID: f.theme.ID},
		"slug underscore":  {Username: "budi", Password: "rahasia123", Slug: "budi_ani", ThemeID: f.theme.ID},
		"reserved slug":    {Username: "budi", Password: "rahasia123", Slug: "admin", ThemeID: f.theme.ID},
		"short username":   {Username: "bu", Password: "rahasia123", Slug: "budi-ani", ThemeID: f.theme.ID},
		"short password":   {Username: "budi", Password: "123", Slug: "budi-ani", ThemeID: f.theme.ID},
		"missing password": {Username: "budi", Slug: "budi-ani", ThemeID: f.theme.ID},
		"unknown theme":    {Username: "budi", Password: "rahasia123", Slug: "budi-ani", ThemeID: 999},
	}
	for name, in := range cases {
		_, err := f.provisioning.CreateTenantWithAdmin(ctx, f.super, in)
		assert.ErrorIs(t, err, ErrValidation, name)
	}
	assert.Zero(t, count(t, f.db, &models.Tenant{}, ""))
	assert.Zero(t, count(t, f.db, &models.Admin{}, "is_superadmin = ?", false))
}

func TestCreateTenantConflictLeavesNothingBehind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.newTenant(t, "budi", "budi-ani")

	_, err := f.provisioning.CreateTenantWithAdmin(ctx, f.super, TenantAdminInput{
		Username: "joko", Password: "rahasia123", Slug: "budi-ani", ThemeID: f.theme.ID,
	})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.provisioning.CreateTenantWithAdmin(ctx, f.super, TenantAdminInput{
		Username: "budi", Password: "rahasia123", Slug: "joko-sri", ThemeID: f.theme.ID,
	})
	assert.ErrorIs(t, err, ErrConflict)

	assert.Equal(t, int64(1), count(t, f.db, &models.Tenant{}, ""))
	assert.Equal(t, int64(1), count(t, f.db, &models.Admin{}, "is_superadmin = ?", false))
}

func TestProvisioningRequiresSuperadmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tenantAdmin, _ := f.newTenant(t, "budi", "budi-ani")

	_, err := f.provisioning.CreateTenantWithAdmin(ctx, tenantAdmin, TenantAdminInput{
		Username: "joko", Password: "rahasia123", Slug: "joko-sri", ThemeID: f.theme.ID,
	})
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.provisioning.ListTenantAdmins(ctx, tenantAdmin)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, f.provisioning.DeleteTenantAdmin(ctx, tenantAdmin, tenantAdmin.AdminID), ErrForbidden)
}

func TestListTenantAdmins(t *testing.T) {
	f := newFixture(t)
	f.newTenant(t, "budi", "budi-ani")
	f.newTenant(t, "joko", "joko-sri")

	views, err := f.provisioning.ListTenantAdmins(context.Background(), f.super)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "budi", views[0].Admin.Username)
	require.NotNil(t, views[0].Tenant)
	assert.Equal(t, "budi-ani", views[0].Tenant.Slug)
	assert.Equal(t, "Klasik", views[0].ThemeName)
}

func TestEditTenantAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	budi, tenant := f.newTenant(t, "budi", "budi-ani")
	f.newTenant(t, "joko", "joko-sri")

	other := models.Theme{Name: "Floral", TemplateName: "floral"}
	require.NoError(t, f.db.Create(&other).Error)

	// kendi slug'ını korumak çakışma sayılmaz, boş şifre değişmez
	err := f.provisioning.EditTenantAdmin(ctx, f.super, budi.AdminID, TenantAdminInput{
		Username: "budi2", Slug: "budi-ani", ThemeID: other.ID,
	})
	require.NoError(t, err)

	var admin models.Admin
	require.NoError(t, f.db.First(&admin, budi.AdminID).Error)
	assert.Equal(t, "budi2", admin.Username)
	var reloaded models.Tenant
	require.NoError(t, f.db.First(&reloaded, tenant.ID).Error)
	assert.Equal(t, other.ID, reloaded.ThemeID)

	err = f.provisioning.EditTenantAdmin(ctx, f.super, budi.AdminID, TenantAdminInput{
		Username: "budi2", Slug: "joko-sri", ThemeID: other.ID,
	})
	assert.ErrorIs(t, err, ErrConflict)

	err = f.provisioning.EditTenantAdmin(ctx, f.super, f.super.AdminID, TenantAdminInput{
		Username: "superadmin", Slug: "super-slug", ThemeID: other.ID,
	})
	assert.ErrorIs(t, err, ErrForbidden)

	err = f.provisioning.EditTenantAdmin(ctx, f.super, 9999, TenantAdminInput{
		Username: "siapa", Slug: "siapa-ini", ThemeID: other.ID,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditTenantAdminCreatesMissingTenant(t *testing.T) {
	f := newFixture(t)
	orphan := models.Admin{Username: "yatim", PasswordHash: "x"}
	require.NoError(t, f.db.Create(&orphan).Error)

	err := f.provisioning.EditTenantAdmin(context.Background(), f.super, orphan.ID, TenantAdminInput{
		Username: "yatim", Slug: "yatim-piatu", ThemeID: f.theme.ID,
	})
	require.NoError(t, err)

	var admin models.Admin
	require.NoError(t, f.db.First(&admin, orphan.ID).Error)
	require.NotNil(t, admin.TenantID)
	var tenant models.Tenant
	require.NoError(t, f.db.First(&tenant, *admin.TenantID).Error)
	assert.Equal(t, "yatim-piatu", tenant.Slug)
	assert.Equal(t, "x", admin.PasswordHash)
}

func TestDeleteTenantAdminCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	budi, budiTenant := f.newTenant(t, "budi", "budi-ani")
	joko, jokoTenant := f.newTenant(t, "joko", "joko-sri")

	for _, p := range []Principal{budi, joko} {
		_, err := f.guests.AddGuest(ctx, p, "Tamu")
		require.NoError(t, err)
		_, err = f.content.AddGiftAccount(ctx, p, GiftAccountInput{BankName: "BCA", AccountNumber: "1", AccountHolder: "X"})
		require.NoError(t, err)
		_, err = f.content.AddStoryEntry(ctx, p, StoryInput{Title: "Awal"})
		require.NoError(t, err)
		_, err = f.content.AddGalleryItem(ctx, p, pngUpload("a.png"), "foto")
		require.NoError(t, err)
	}
	warnings, err := f.invitations.UpdateInvitationContent(ctx, budi, ContentInput{
		CoupleName: "Budi & Ani",
		ThemeID:    f.theme.ID,
	}, InvitationFiles{
		GroomPhoto:      pngUpload("budi.png"),
		CoverBackground: pngUpload("sampul.jpg"),
	})
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, 4, f.storage.count())

	require.NoError(t, f.provisioning.DeleteTenantAdmin(ctx, f.super, budi.AdminID))

	assert.Equal(t, 1, f.storage.count())
	for stored := range f.storage.files {
		assert.True(t, strings.HasPrefix(stored, "uploads/joko-sri/"), stored)
	}

	for _, model := range []interface{}{&models.Guest{}, &models.GiftAccount{}, &models.StoryEntry{}, &models.GalleryItem{}} {
		assert.Zero(t, count(t, f.db, model, "tenant_id = ?", budiTenant.ID))
		assert.Equal(t, int64(1), count(t, f.db, model, "tenant_id = ?", jokoTenant.ID))
	}
	assert.Zero(t, count(t, f.db, &models.Tenant{}, "id = ?", budiTenant.ID))
	assert.Zero(t, count(t, f.db, &models.Admin{}, "id = ?", budi.AdminID))
	assert.Equal(t, int64(1), count(t, f.db, &models.Tenant{}, "id = ?", jokoTenant.ID))

	assert.ErrorIs(t, f.provisioning.DeleteTenantAdmin(ctx, f.super, budi.AdminID), ErrNotFound)
}

func TestDeleteTenantAdminRefusesSuperadminAndSelf(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other := models.Admin{Username: "super2", PasswordHash: "x", IsSuperadmin: true}
	require.NoError(t, f.db.Create(&other).Error)

	assert.ErrorIs(t, f.provisioning.DeleteTenantAdmin(ctx, f.super, f.super.AdminID), ErrForbidden)
	assert.ErrorIs(t, f.provisioning.DeleteTenantAdmin(ctx, f.super, other.ID), ErrForbidden)
	assert.Equal(t, int64(2), count(t, f.db, &models.Admin{}, "is_superadmin = ?", true))
}
