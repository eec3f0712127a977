package branch

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository is the branch half of the directory.
type Repository interface {
	ListWithAddresses(ctx context.Context) ([]Branch, error)
	GetWithAddress(ctx context.Context, id int64) (*Branch, error)
	Create(ctx context.Context, b *Branch) error
	CreateAddress(ctx context.Context, a *Address) error
	AddressExists(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Migrate() error {
	return r.db.AutoMigrate(&Address{}, &Branch{})
}

// ListWithAddresses returns every branch ordered by id with its address preloaded.
func (r *GormRepository) ListWithAddresses(ctx context.Context) ([]Branch, error) {
	var branches []Branch
	err := r.db.WithContext(ctx).
		Preload("Address").
		Order("id").
		Find(&branches).Error
	if err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *GormRepository) GetWithAddress(ctx context.Context, id int64) (*Branch, error) {
	var b Branch
	err := r.db.WithContext(ctx).Preload("Address").First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormRepository) Create(ctx context.Context, b *Branch) error {
	if err := r.db.WithContext(ctx).Omit("Address").Create(b).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Address").First(b, b.ID).Error
}

func (r *GormRepository) CreateAddress(ctx context.Context, a *Address) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *GormRepository) AddressExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Address{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *GormRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Branch{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

var _ Repository = (*GormRepository)(nil)
