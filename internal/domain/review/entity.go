package review

import "time"

type Review struct {
	ID        int64     `json:"id"`
	BranchID  int64     `json:"branch_id"`
	ClientID  int64     `json:"client_id"`
	StaffID   *int64    `json:"staff_id,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateInput struct {
	BranchID int64  `json:"branch_id" validate:"required,gt=0"`
	StaffID  *int64 `json:"staff_id" validate:"omitempty,gt=0"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"max=2000"`
}

type ListResult struct {
	Reviews       []Review `json:"reviews"`
	Total         int64    `json:"total"`
	AverageRating float64  `json:"average_rating"`
}
