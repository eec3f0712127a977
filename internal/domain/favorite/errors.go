package favorite

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrBranchNotFound = errors.New("branch_not_found")
	ErrAlreadyExists  = errors.New("already_in_favorites")
	ErrNotFound       = errors.New("favorite_not_found")
)
