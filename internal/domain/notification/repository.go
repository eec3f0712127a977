package notification

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]Notification, error)
	CountByUser(ctx context.Context, userID int64) (total int64, unread int64, err error)
	MarkAsRead(ctx context.Context, id, userID int64) error
	MarkAllAsRead(ctx context.Context, userID int64) (int64, error)
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

type notificationModel struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	UserID    int64      `gorm:"column:user_id;not null;index:idx_notifications_user_read,priority:1"`
	Type      string     `gorm:"column:type;not null"`
	Title     string     `gorm:"column:title;not null"`
	Message   *string    `gorm:"column:message"`
	Data      []byte     `gorm:"column:data"`
	IsRead    bool       `gorm:"column:is_read;not null;default:false;index:idx_notifications_user_read,priority:2"`
	ReadAt    *time.Time `gorm:"column:read_at"`
	CreatedAt time.Time  `gorm:"column:created_at;index"`
}

func (notificationModel) TableName() string { return "notifications" }

func toDomainNotification(m notificationModel) Notification {
	var msg string
	if m.Message != nil {
		msg = *m.Message
	}
	return Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      Type(m.Type),
		Title:     m.Title,
		Message:   msg,
		Data:      m.Data,
		IsRead:    m.IsRead,
		ReadAt:    m.ReadAt,
		CreatedAt: m.CreatedAt,
	}
}

func toNotificationModel(n *Notification) notificationModel {
	var msg *string
	if n.Message != "" {
		v := n.Message
		msg = &v
	}
	return notificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   msg,
		Data:      n.Data,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

func (r *GormRepository) Migrate() error {
	return r.db.AutoMigrate(&notificationModel{})
}

func (r *GormRepository) Create(ctx context.Context, n *Notification) error {
	m := toNotificationModel(n)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*n = toDomainNotification(m)
	return nil
}

func (r *GormRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]Notification, error) {
	var rows []notificationModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]Notification, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainNotification(m))
	}
	return out, nil
}

func (r *GormRepository) CountByUser(ctx context.Context, userID int64) (int64, int64, error) {
	var total, unread int64
	q := r.db.WithContext(ctx).Model(&notificationModel{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread).Error
	if err != nil {
		return 0, 0, err
	}
	return total, unread, nil
}

// MarkAsRead returns ErrNotFound when the notification does not exist or belongs to someone else.
func (r *GormRepository) MarkAsRead(ctx context.Context, id, userID int64) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"is_read": true, "read_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{"is_read": true, "read_at": now})
	return res.RowsAffected, res.Error
}

func (r *GormRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&notificationModel{})
	return res.RowsAffected, res.Error
}

var _ Repository = (*GormRepository)(nil)
