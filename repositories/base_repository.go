package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound kayıt yok ya da çağıranın undangan'ına ait değil.
var ErrNotFound = errors.New("kayıt bulunamadı")

type txContextKey struct{}

// WithTx repository çağrılarının verilen transaction üzerinde çalışmasını sağlar.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// getDB context'te transaction varsa onu, yoksa varsayılan bağlantıyı döndürür.
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// IsDuplicateKeyError unique index ihlali mi?
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// IsForeignKeyError hâlâ başvurulan bir kaydın silinmesi mi?
func IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed")
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// IBaseRepository bir undangan'a ait alt kayıtlar için ortak işlemler.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByTenantAndID(ctx context.Context, tenantID, id uint) (*T, error)
	ListByTenant(ctx context.Context, tenantID uint) ([]T, error)
	CountByTenant(ctx context.Context, tenantID uint) (int64, error)
	DeleteByTenantAndID(ctx context.Context, tenantID, id uint) error
	DeleteAllByTenant(ctx context.Context, tenantID uint) (int64, error)
}

// BaseRepository tenant_id sütunu olan tablolar için generik repository.
type BaseRepository[T any] struct {
	db      *gorm.DB
	orderBy string
}

// NewBaseRepository orderBy listeleme sırasını belirler.
func NewBaseRepository[T any](db *gorm.DB, orderBy string) *BaseRepository[T] {
	if orderBy == "" {
		orderBy = "id ASC"
	}
	return &BaseRepository[T]{db: db, orderBy: orderBy}
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return getDB(ctx, r.db).Create(entity).Error
}

func (r *BaseRepository[T]) FindByTenantAndID(ctx context.Context, tenantID, id uint) (*T, error) {
	var entity T
	err := getDB(ctx, r.db).Where("tenant_id = ? AND id = ?", tenantID, id).First(&entity).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &entity, nil
}

func (r *BaseRepository[T]) ListByTenant(ctx context.Context, tenantID uint) ([]T, error) {
	var list []T
	err := getDB(ctx, r.db).Where("tenant_id = ?", tenantID).Order(r.orderBy).Find(&list).Error
	return list, err
}

func (r *BaseRepository[T]) CountByTenant(ctx context.Context, tenantID uint) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(new(T)).Where("tenant_id = ?", tenantID).Count(&count).Error
	return count, err
}

// DeleteByTenantAndID kayıt başka bir undangan'a aitse ErrNotFound döner.
func (r *BaseRepository[T]) DeleteByTenantAndID(ctx context.Context, tenantID, id uint) error {
	result := getDB(ctx, r.db).Where("tenant_id = ? AND id = ?", tenantID, id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) DeleteAllByTenant(ctx context.Context, tenantID uint) (int64, error) {
	result := getDB(ctx, r.db).Where("tenant_id = ?", tenantID).Delete(new(T))
	return result.RowsAffected, result.Error
}

// Transaction fn'i bir transaction içinde çalıştırır. ctx zaten bir transaction taşıyorsa
// iç içe transaction (savepoint) açılır; böylece iç adım başarısız olursa yalnızca o adım geri alınır.
func Transaction(ctx context.Context, db *gorm.DB, fn func(txCtx context.Context) error) error {
	return getDB(ctx, db).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}
