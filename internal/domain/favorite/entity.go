package favorite

import "time"

// Favorite marks a branch a client wants to find again quickly.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	BranchID  int64     `json:"branch_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ListResult struct {
	Favorites []Favorite `json:"favorites"`
	Total     int64      `json:"total"`
	Page      int        `json:"page"`
	PerPage   int        `json:"per_page"`
}
