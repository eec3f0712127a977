package favorite

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Add(ctx context.Context, f *Favorite) error
	Remove(ctx context.Context, userID, branchID int64) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]Favorite, int64, error)
	Exists(ctx context.Context, userID, branchID int64) (bool, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

type favoriteModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_favorites_user_branch"`
	BranchID  int64     `gorm:"column:branch_id;not null;uniqueIndex:idx_favorites_user_branch;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (favoriteModel) TableName() string { return "favorites" }

func toDomainFavorite(m favoriteModel) Favorite {
	return Favorite{
		ID:        m.ID,
		UserID:    m.UserID,
		BranchID:  m.BranchID,
		CreatedAt: m.CreatedAt,
	}
}

func (r *GormRepository) Migrate() error {
	return r.db.AutoMigrate(&favoriteModel{})
}

// Add returns ErrAlreadyExists when the branch is already among the user's favorites.
func (r *GormRepository) Add(ctx context.Context, f *Favorite) error {
	exists, err := r.Exists(ctx, f.UserID, f.BranchID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyExists
	}

	m := favoriteModel{UserID: f.UserID, BranchID: f.BranchID}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*f = toDomainFavorite(m)
	return nil
}

func (r *GormRepository) Remove(ctx context.Context, userID, branchID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND branch_id = ?", userID, branchID).
		Delete(&favoriteModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns one page of favorites, newest first, and the total for pagination.
func (r *GormRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]Favorite, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&favoriteModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []favoriteModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]Favorite, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainFavorite(m))
	}
	return out, total, nil
}

func (r *GormRepository) Exists(ctx context.Context, userID, branchID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&favoriteModel{}).
		Where("user_id = ? AND branch_id = ?", userID, branchID).
		Count(&count).Error
	return count > 0, err
}

var _ Repository = (*GormRepository)(nil)
