package usecase

import "errors"

var (
	ErrMissingConfig     = errors.New("Missing database configuration")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("not checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrOnLeave           = errors.New("on leave today")
	ErrLeaveNotPending   = errors.New("leave request is no longer pending")

	// login / register steps
	ErrRoleLookup    = errors.New("Failed to fetch user data")
	ErrUserMissing   = errors.New("Failed to create user")
	ErrProfileCreate = errors.New("Failed to create profile")
)
