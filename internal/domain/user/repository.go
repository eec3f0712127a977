package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Repository is the user half of the directory.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role;index"`
	Name         string    `gorm:"column:name"`
	Phone        *string   `gorm:"column:phone"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *User {
	var phone string
	if m.Phone != nil {
		phone = *m.Phone
	}

	return &User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         Role(m.Role),
		Name:         m.Name,
		Phone:        phone,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *User) userModel {
	var phone *string
	if u.Phone != "" {
		v := u.Phone
		phone = &v
	}

	return userModel{
		ID:           u.ID,
		Email:        strings.TrimSpace(strings.ToLower(u.Email)),
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Name:         u.Name,
		Phone:        phone,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *GormRepository) Migrate() error {
	return r.db.AutoMigrate(&userModel{})
}

func (r *GormRepository) Create(ctx context.Context, u *User) error {
	m := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	var m userModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainUser(m), nil
}

func (r *GormRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var m userModel
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainUser(m), nil
}

var _ Repository = (*GormRepository)(nil)
