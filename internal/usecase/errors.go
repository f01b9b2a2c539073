package usecase

import "errors"

var (
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidInput     = errors.New("invalid input")
	ErrSkillNotFound    = errors.New("skill not found")
	ErrExchangeNotFound = errors.New("exchange not found")
	ErrProfileExists    = errors.New("profile already exists")
	ErrSkillUnavailable = errors.New("skill no longer active")
	ErrInternal         = errors.New("internal error")
)
