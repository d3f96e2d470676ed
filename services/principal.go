package services

import (
	"context"

	"undangan.link/models"
)

// Principal oturumu açmış admin. Yetki gerektiren her servis çağrısına açıkça geçirilir.
type Principal struct {
	AdminID      uint
	Username     string
	IsSuperadmin bool
	TenantID     *uint
}

func principalFromAdmin(admin *models.Admin) *Principal {
	return &Principal{
		AdminID:      admin.ID,
		Username:     admin.Username,
		IsSuperadmin: admin.IsSuperadmin,
		TenantID:     admin.TenantID,
	}
}

// RequireSuperadmin superadmin değilse ErrForbidden.
func (p Principal) RequireSuperadmin() error {
	if !p.IsSuperadmin || p.AdminID == 0 {
		return ErrForbidden
	}
	return nil
}

// TenantScope tenant admininin undangan ID'si. Superadmin veya undangan'sız hesap için ErrForbidden.
func (p Principal) TenantScope() (uint, error) {
	if p.IsSuperadmin || p.TenantID == nil || *p.TenantID == 0 {
		return 0, ErrForbidden
	}
	return *p.TenantID, nil
}

// auditContext audit alanları için işlemi yapan admini context'e ekler.
func (p Principal) auditContext(ctx context.Context) context.Context {
	return models.WithUserID(ctx, p.AdminID)
}
