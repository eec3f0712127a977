package booking

import "time"

// Conventional status values. The field itself is free text.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID            int64     `json:"id"`
	Status        string    `json:"status"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	TotalDuration int       `json:"total_duration"`
	TotalPrice    float64   `json:"total_price"`
	ClientID      int64     `json:"client_id"`
	StaffID       int64     `json:"staff_id"`
	CreatedAt     time.Time `json:"created_at"`
}
