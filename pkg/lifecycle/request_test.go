package lifecycle_test

import (
	"errors"
	"testing"
	"time"

	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/pkg/lifecycle"
)

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name     string
		existing []lifecycle.RequestStatus
		wantErr  error
	}{
		{"no prior requests", nil, nil},
		{"only rejected requests", []lifecycle.RequestStatus{lifecycle.RequestRejected}, nil},
		{"pending request blocks", []lifecycle.RequestStatus{lifecycle.RequestPending}, domain.ErrDuplicateRequest},
		{"approved request blocks", []lifecycle.RequestStatus{lifecycle.RequestApproved}, domain.ErrDuplicateRequest},
		{"rejected then pending blocks", []lifecycle.RequestStatus{lifecycle.RequestRejected, lifecycle.RequestPending}, domain.ErrDuplicateRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := lifecycle.CanSubmit(tt.existing); !errors.Is(err, tt.wantErr) {
				t.Errorf("CanSubmit(%v) = %v, want %v", tt.existing, err, tt.wantErr)
			}
		})
	}
}

func TestTransitionRequestApproveStampsTime(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	approvedAt, err := lifecycle.TransitionRequest(lifecycle.RequestPending, lifecycle.RequestApproved, now)
	if err != nil {
		t.Fatalf("pending -> approved failed: %v", err)
	}
	if approvedAt == nil || !approvedAt.Equal(now) {
		t.Errorf("approvedAt = %v, want %v", approvedAt, now)
	}
}

func TestTransitionRequestRejectHasNoTimestamp(t *testing.T) {
	approvedAt, err := lifecycle.TransitionRequest(lifecycle.RequestPending, lifecycle.RequestRejected, time.Now())
	if err != nil {
		t.Fatalf("pending -> rejected failed: %v", err)
	}
	if approvedAt != nil {
		t.Errorf("rejection must not set approvedAt, got %v", *approvedAt)
	}
}

func TestTransitionRequestTerminalStates(t *testing.T) {
	tests := []struct {
		name    string
		current lifecycle.RequestStatus
		target  lifecycle.RequestStatus
		wantErr error
	}{
		{"approved cannot be rejected", lifecycle.RequestApproved, lifecycle.RequestRejected, domain.ErrRequestAlreadyDecided},
		{"rejected cannot be approved", lifecycle.RequestRejected, lifecycle.RequestApproved, domain.ErrRequestAlreadyDecided},
		{"cannot go back to pending", lifecycle.RequestApproved, lifecycle.RequestPending, domain.ErrInvalidStatusTransition},
		{"unknown target rejected", lifecycle.RequestPending, lifecycle.RequestStatus("cancelled"), domain.ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lifecycle.TransitionRequest(tt.current, tt.target, time.Now())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("TransitionRequest(%s, %s) = %v, want %v", tt.current, tt.target, err, tt.wantErr)
			}
		})
	}
}
