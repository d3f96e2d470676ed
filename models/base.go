package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

// ContextUserIDKey işlemi yapan adminin ID'sini context içinde taşır.
const ContextUserIDKey contextKey = "user_id"

// WithUserID denetim alanları için işlemi yapan admini context'e ekler.
func WithUserID(ctx context.Context, adminID uint) context.Context {
	return context.WithValue(ctx, ContextUserIDKey, adminID)
}

// UserIDFromContext context'teki admin ID'sini döndürür.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	if ctx == nil {
		return 0, false
	}
	id, ok := ctx.Value(ContextUserIDKey).(uint)
	return id, ok && id != 0
}

// BaseModel tüm tabloların ortak alanları.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	CreatedBy *uint     `gorm:"index"`
	UpdatedBy *uint
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if id, ok := UserIDFromContext(tx.Statement.Context); ok {
		b.CreatedBy = &id
		b.UpdatedBy = &id
	}
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if id, ok := UserIDFromContext(tx.Statement.Context); ok {
		b.UpdatedBy = &id
	}
	return nil
}
