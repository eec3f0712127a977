package user

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
	RoleOwner  Role = "owner"
)

// ParseRole accepts only the closed set of roles.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleClient, RoleStaff, RoleOwner:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string { return string(r) }

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
