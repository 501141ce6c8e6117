package utils

import "errors"

var (
	ErrProductNotFound        = errors.New("product not found")
	ErrSessionNotFound        = errors.New("session not found")
	ErrAccountNotFound        = errors.New("account not found")
	ErrEmailAlreadyUsed       = errors.New("email already used")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInsufficientCandidates = errors.New("not enough candidates for this profile")
	ErrDatabaseError          = errors.New("database error")
)
