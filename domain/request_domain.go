package domain

import (
	"errors"
)

var (
	ErrRequestNotFound         = errors.New("join request not found")
	ErrDuplicateRequest        = errors.New("a join request already exists for this user")
	ErrRequestAlreadyDecided   = errors.New("join request already decided")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrConcurrentUpdate        = errors.New("resource was modified concurrently, retry")
)
