// Package lifecycle holds the state-transition rules for join requests,
// order statuses and menu categories. It never touches persistence and
// performs no authorization; callers check ownership before invoking it.
package lifecycle

import (
	"Grab-N-Go-Backend/domain"
	"time"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	}
	return false
}

// Terminal statuses cannot transition again.
func (s RequestStatus) Terminal() bool {
	return s == RequestApproved || s == RequestRejected
}

// CanSubmit decides whether a user may file a new join request given the
// statuses of their existing requests on the same resource. A pending or
// approved request blocks re-submission; a rejected one does not, so a
// turned-down student can apply again.
func CanSubmit(existing []RequestStatus) error {
	for _, s := range existing {
		if s == RequestPending || s == RequestApproved {
			return domain.ErrDuplicateRequest
		}
	}
	return nil
}

// TransitionRequest validates a join-request status change. Only
// pending → approved and pending → rejected are legal; approvals also
// yield the timestamp to stamp on the request.
func TransitionRequest(current, target RequestStatus, now time.Time) (*time.Time, error) {
	if !target.Valid() || target == RequestPending {
		return nil, domain.ErrInvalidStatusTransition
	}
	if current.Terminal() {
		return nil, domain.ErrRequestAlreadyDecided
	}
	if current != RequestPending {
		return nil, domain.ErrInvalidStatusTransition
	}
	if target == RequestApproved {
		approvedAt := now
		return &approvedAt, nil
	}
	return nil, nil
}
