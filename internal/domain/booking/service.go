package booking

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"barbershop/internal/domain/user"
	"barbershop/internal/events"
	"barbershop/internal/pkg/apperror"
	"barbershop/internal/pkg/validator"
)

// EventPublisher receives a notice of every booking that was stored.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, evt events.BookingCreated) error
}

// Manager creates bookings and serves per-user booking history. It holds no state of its own.
type Manager struct {
	bookings Repository
	users    user.Repository
	events   EventPublisher
	log      *zap.Logger
}

// NewManager wires the manager. publisher may be nil.
func NewManager(bookings Repository, users user.Repository, publisher EventPublisher, log *zap.Logger) *Manager {
	return &Manager{
		bookings: bookings,
		users:    users,
		events:   publisher,
		log:      log,
	}
}

// Create validates that both participants exist and stores the booking exactly as given.
func (m *Manager) Create(ctx context.Context, in CreateInput) (*Booking, error) {
	b, err := m.create(ctx, in)
	if err != nil {
		return nil, m.normalize("create booking", err)
	}

	m.publish(ctx, b)
	return b, nil
}

func (m *Manager) create(ctx context.Context, in CreateInput) (*Booking, error) {
	if strings.TrimSpace(in.Status) == "" {
		return nil, apperror.Validation("status must not be blank")
	}
	if err := validator.Struct(in); err != nil {
		return nil, err
	}

	if err := m.requireUser(ctx, in.ClientID, "client"); err != nil {
		return nil, err
	}
	if err := m.requireUser(ctx, in.StaffID, "staff"); err != nil {
		return nil, err
	}

	b := &Booking{
		Status:        in.Status,
		StartAt:       in.StartAt,
		EndAt:         in.EndAt,
		TotalDuration: in.TotalDuration,
		TotalPrice:    in.TotalPrice,
		ClientID:      in.ClientID,
		StaffID:       in.StaffID,
	}
	if err := m.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, ErrUnknownParticipant) {
			return nil, apperror.Validation("client with id %d or staff with id %d does not exist", in.ClientID, in.StaffID)
		}
		return nil, err
	}
	return b, nil
}

func (m *Manager) requireUser(ctx context.Context, id int64, label string) error {
	_, err := m.users.GetByID(ctx, id)
	if errors.Is(err, user.ErrNotFound) {
		return apperror.Validation("%s with id %d does not exist", label, id)
	}
	return err
}

// GetHistory returns one page of bookings where the user takes part in the requested role,
// newest first.
func (m *Manager) GetHistory(ctx context.Context, q HistoryQuery) ([]Booking, error) {
	out, err := m.history(ctx, q)
	if err != nil {
		return nil, m.normalize("booking history", err)
	}
	return out, nil
}

func (m *Manager) history(ctx context.Context, q HistoryQuery) ([]Booking, error) {
	role, err := user.ParseRole(q.Role)
	if err != nil {
		return nil, apperror.Validation("role %q is not supported", q.Role)
	}
	if q.ID <= 0 {
		return nil, apperror.Validation("id must be a positive integer")
	}
	if q.Page < 1 {
		return nil, apperror.Validation("page must be >= 1")
	}
	if q.Limit < 1 || q.Limit > MaxLimit {
		return nil, apperror.Validation("limit must be between 1 and %d", MaxLimit)
	}

	u, err := m.users.GetByID(ctx, q.ID)
	if errors.Is(err, user.ErrNotFound) {
		return nil, apperror.Validation("user does not exist")
	}
	if err != nil {
		return nil, err
	}
	if u.Role != role {
		return nil, apperror.Validation("user does not have role %s", role)
	}

	var filter Filter
	switch role {
	case user.RoleClient:
		filter.ClientID = u.ID
	case user.RoleStaff:
		filter.StaffID = u.ID
	default:
		return nil, apperror.Validation("role %s has no booking history", role)
	}

	offset := (q.Page - 1) * q.Limit
	return m.bookings.List(ctx, filter, offset, q.Limit)
}

func (m *Manager) publish(ctx context.Context, b *Booking) {
	if m.events == nil {
		return
	}

	evt := events.BookingCreated{
		BookingID: b.ID,
		ClientID:  b.ClientID,
		StaffID:   b.StaffID,
		Status:    b.Status,
		StartAt:   b.StartAt,
		EndAt:     b.EndAt,
		CreatedAt: b.CreatedAt,
	}
	if err := m.events.PublishBookingCreated(ctx, evt); err != nil {
		m.log.Warn("booking event not published", zap.Int64("booking_id", b.ID), zap.Error(err))
	}
}

func (m *Manager) normalize(op string, err error) error {
	if !apperror.IsValidation(err) {
		m.log.Error(op+" failed", zap.Error(err))
	}
	return apperror.Normalize(err)
}
