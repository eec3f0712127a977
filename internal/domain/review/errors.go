package review

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrBranchNotFound = errors.New("branch_not_found")
	ErrStaffNotFound  = errors.New("staff_not_found")
)
