package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgForeignKeyViolation = "23503"

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	List(ctx context.Context, filter Filter, offset, limit int) ([]Booking, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

type bookingModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Status        string    `gorm:"column:status;not null"`
	StartAt       time.Time `gorm:"column:start_at;not null"`
	EndAt         time.Time `gorm:"column:end_at;not null"`
	TotalDuration int       `gorm:"column:total_duration;not null;default:0"`
	TotalPrice    float64   `gorm:"column:total_price;not null;default:0"`
	ClientID      int64     `gorm:"column:client_id;not null;index:idx_bookings_client_created,priority:1"`
	StaffID       int64     `gorm:"column:staff_id;not null;index:idx_bookings_staff_created,priority:1"`
	CreatedAt     time.Time `gorm:"column:created_at;index:idx_bookings_client_created,priority:2;index:idx_bookings_staff_created,priority:2"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) Booking {
	return Booking{
		ID:            m.ID,
		Status:        m.Status,
		StartAt:       m.StartAt,
		EndAt:         m.EndAt,
		TotalDuration: m.TotalDuration,
		TotalPrice:    m.TotalPrice,
		ClientID:      m.ClientID,
		StaffID:       m.StaffID,
		CreatedAt:     m.CreatedAt,
	}
}

func toBookingModel(b *Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		Status:        b.Status,
		StartAt:       b.StartAt,
		EndAt:         b.EndAt,
		TotalDuration: b.TotalDuration,
		TotalPrice:    b.TotalPrice,
		ClientID:      b.ClientID,
		StaffID:       b.StaffID,
		CreatedAt:     b.CreatedAt,
	}
}

var participantConstraints = []struct {
	name   string
	column string
}{
	{"fk_bookings_client", "client_id"},
	{"fk_bookings_staff", "staff_id"},
}

// Migrate creates the bookings table. On PostgreSQL it also adds foreign keys to users so a
// participant deleted between validation and insert is rejected by the database.
func (r *GormRepository) Migrate() error {
	if err := r.db.AutoMigrate(&bookingModel{}); err != nil {
		return err
	}
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}

	m := r.db.Migrator()
	for _, c := range participantConstraints {
		if m.HasConstraint(&bookingModel{}, c.name) {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE bookings ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES users(id)", c.name, c.column)
		if err := r.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add %s: %w", c.name, err)
		}
	}
	return nil
}

func (r *GormRepository) Create(ctx context.Context, b *Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrUnknownParticipant
		}
		return err
	}
	*b = toDomainBooking(m)
	return nil
}

// List returns bookings matching filter, newest first.
func (r *GormRepository) List(ctx context.Context, filter Filter, offset, limit int) ([]Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})
	switch {
	case filter.ClientID > 0:
		q = q.Where("client_id = ?", filter.ClientID)
	case filter.StaffID > 0:
		q = q.Where("staff_id = ?", filter.StaffID)
	default:
		return nil, errors.New("booking list requires a client or staff filter")
	}

	var rows []bookingModel
	err := q.Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

var _ Repository = (*GormRepository)(nil)
