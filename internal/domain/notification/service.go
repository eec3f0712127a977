package notification

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"barbershop/internal/events"
)

// Pusher delivers a payload to the live connections of one user.
type Pusher interface {
	Push(userID int64, v any) error
}

type Service struct {
	repo   Repository
	pusher Pusher
	log    *zap.Logger
}

// NewService wires the service. pusher may be nil when no live connections are served,
// as in the worker process.
func NewService(repo Repository, pusher Pusher, log *zap.Logger) *Service {
	return &Service{repo: repo, pusher: pusher, log: log}
}

func (s *Service) Create(ctx context.Context, userID int64, t Type, title, message string, data *Data) (*Notification, error) {
	n := &Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
	}
	if err := n.SetData(data); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	if s.pusher != nil {
		if err := s.pusher.Push(userID, LiveEvent{Type: EventNotification, Payload: n}); err != nil {
			s.log.Debug("live push skipped", zap.Int64("user_id", userID), zap.Error(err))
		}
	}
	return n, nil
}

func (s *Service) List(ctx context.Context, userID int64, limit, offset int) ([]Notification, int64, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, 0, err
	}
	total, unread, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, 0, err
	}
	return items, unread, total, nil
}

func (s *Service) MarkAsRead(ctx context.Context, id, userID int64) error {
	return s.repo.MarkAsRead(ctx, id, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	return s.repo.MarkAllAsRead(ctx, userID)
}

// DeleteReadBefore removes read notifications created before cutoff.
func (s *Service) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.repo.DeleteReadBefore(ctx, cutoff)
}

// NotifyBookingCreated tells the staff member about the new booking and confirms it to the client.
func (s *Service) NotifyBookingCreated(ctx context.Context, evt events.BookingCreated) error {
	start := evt.StartAt.UTC().Format(time.RFC3339)
	end := evt.EndAt.UTC().Format(time.RFC3339)
	data := &Data{
		BookingID: &evt.BookingID,
		Status:    &evt.Status,
		StartAt:   &start,
		EndAt:     &end,
	}
	when := evt.StartAt.UTC().Format("02.01.2006 15:04")

	if _, err := s.Create(ctx, evt.StaffID, TypeNewBooking,
		"New booking",
		fmt.Sprintf("Booking #%d on %s", evt.BookingID, when),
		data,
	); err != nil {
		return fmt.Errorf("notify staff %d: %w", evt.StaffID, err)
	}

	if _, err := s.Create(ctx, evt.ClientID, TypeBookingReceived,
		"Booking received",
		fmt.Sprintf("Your booking #%d on %s is %s", evt.BookingID, when, evt.Status),
		data,
	); err != nil {
		return fmt.Errorf("notify client %d: %w", evt.ClientID, err)
	}
	return nil
}

// PublishBookingCreated lets the service stand in for the message broker when the API
// delivers booking events in-process.
func (s *Service) PublishBookingCreated(ctx context.Context, evt events.BookingCreated) error {
	return s.NotifyBookingCreated(ctx, evt)
}

func (s *Service) NotifyNewReview(ctx context.Context, staffID, branchID, reviewID int64, rating int) error {
	_, err := s.Create(ctx, staffID, TypeNewReview,
		"New review",
		fmt.Sprintf("You received a new review rated %d", rating),
		&Data{BranchID: &branchID, ReviewID: &reviewID, Rating: &rating},
	)
	return err
}
