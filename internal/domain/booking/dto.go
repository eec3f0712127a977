package booking

import "time"

type CreateInput struct {
	Status        string    `json:"status" validate:"required,max=50"`
	StartAt       time.Time `json:"start_at" validate:"required"`
	EndAt         time.Time `json:"end_at" validate:"required,gtefield=StartAt"`
	TotalDuration int       `json:"total_duration" validate:"gte=0"`
	TotalPrice    float64   `json:"total_price" validate:"gte=0"`
	ClientID      int64     `json:"client_id" validate:"required,gt=0"`
	StaffID       int64     `json:"staff_id" validate:"required,gt=0"`
}

// HistoryQuery selects one page of a user's bookings. Page is 1-based.
type HistoryQuery struct {
	Role  string
	ID    int64
	Page  int
	Limit int
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Filter selects bookings by exactly one participant column.
type Filter struct {
	ClientID int64
	StaffID  int64
}
