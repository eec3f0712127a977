// Package events carries booking lifecycle events between the API and the notification worker.
package events

import (
	"encoding/json"
	"fmt"
	"time"
)

const TypeBookingCreated = "booking.created"

type BookingCreated struct {
	Type      string    `json:"type"`
	BookingID int64     `json:"booking_id"`
	ClientID  int64     `json:"client_id"`
	StaffID   int64     `json:"staff_id"`
	Status    string    `json:"status"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	CreatedAt time.Time `json:"created_at"`
}

// DecodeBookingCreated parses a message payload. Messages of another type are rejected.
func DecodeBookingCreated(data []byte) (BookingCreated, error) {
	var evt BookingCreated
	if err := json.Unmarshal(data, &evt); err != nil {
		return BookingCreated{}, fmt.Errorf("decode booking event: %w", err)
	}
	if evt.Type != TypeBookingCreated {
		return BookingCreated{}, fmt.Errorf("unexpected event type %q", evt.Type)
	}
	if evt.BookingID <= 0 {
		return BookingCreated{}, fmt.Errorf("booking event without booking_id")
	}
	return evt, nil
}
