package notification

import (
	"encoding/json"
	"time"
)

type Type string

const (
	TypeNewBooking      Type = "new_booking"      // Staff: a client booked them
	TypeBookingReceived Type = "booking_received" // Client: booking stored
	TypeNewReview       Type = "new_review"       // Staff: a client reviewed them
)

type Notification struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Type      Type            `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	IsRead    bool            `json:"is_read"`
	ReadAt    *time.Time      `json:"read_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Data links a notification to the entity it is about.
type Data struct {
	BookingID *int64  `json:"booking_id,omitempty"`
	BranchID  *int64  `json:"branch_id,omitempty"`
	ReviewID  *int64  `json:"review_id,omitempty"`
	Rating    *int    `json:"rating,omitempty"`
	Status    *string `json:"status,omitempty"`
	StartAt   *string `json:"start_at,omitempty"` // RFC3339
	EndAt     *string `json:"end_at,omitempty"`   // RFC3339
}

func (n *Notification) SetData(data *Data) error {
	if data == nil {
		n.Data = nil
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	n.Data = b
	return nil
}

func (n *Notification) GetData() *Data {
	if len(n.Data) == 0 {
		return &Data{}
	}
	var data Data
	_ = json.Unmarshal(n.Data, &data)
	return &data
}
