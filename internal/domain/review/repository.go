package review

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, rv *Review) error
	ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]Review, error)
	StatsByBranch(ctx context.Context, branchID int64) (count int64, average float64, err error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

type reviewModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	BranchID  int64     `gorm:"column:branch_id;not null;index"`
	ClientID  int64     `gorm:"column:client_id;not null;index"`
	StaffID   *int64    `gorm:"column:staff_id;index"`
	Rating    int       `gorm:"column:rating;not null"`
	Comment   *string   `gorm:"column:comment"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) Review {
	comment := ""
	if m.Comment != nil {
		comment = *m.Comment
	}
	return Review{
		ID:        m.ID,
		BranchID:  m.BranchID,
		ClientID:  m.ClientID,
		StaffID:   m.StaffID,
		Rating:    m.Rating,
		Comment:   comment,
		CreatedAt: m.CreatedAt,
	}
}

func toReviewModel(r *Review) reviewModel {
	var comment *string
	if r.Comment != "" {
		v := r.Comment
		comment = &v
	}
	return reviewModel{
		ID:        r.ID,
		BranchID:  r.BranchID,
		ClientID:  r.ClientID,
		StaffID:   r.StaffID,
		Rating:    r.Rating,
		Comment:   comment,
		CreatedAt: r.CreatedAt,
	}
}

func (r *GormRepository) Migrate() error {
	return r.db.AutoMigrate(&reviewModel{})
}

func (r *GormRepository) Create(ctx context.Context, rv *Review) error {
	m := toReviewModel(rv)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*rv = toDomainReview(m)
	return nil
}

func (r *GormRepository) ListByBranch(ctx context.Context, branchID int64, limit, offset int) ([]Review, error) {
	var rows []reviewModel
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainReview(m))
	}
	return out, nil
}

func (r *GormRepository) StatsByBranch(ctx context.Context, branchID int64) (int64, float64, error) {
	var stats struct {
		Count   int64
		Average *float64
	}
	err := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Select("COUNT(*) AS count, AVG(rating) AS average").
		Where("branch_id = ?", branchID).
		Scan(&stats).Error
	if err != nil {
		return 0, 0, err
	}

	var avg float64
	if stats.Average != nil {
		avg = *stats.Average
	}
	return stats.Count, avg, nil
}

var _ Repository = (*GormRepository)(nil)
