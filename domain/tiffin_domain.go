package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateTiffin      = "tiffin service created successfully"
	MessageSuccessGetTiffins        = "tiffin services retrieved successfully"
	MessageSuccessGetTiffin         = "tiffin service retrieved successfully"
	MessageSuccessUpdateTiffin      = "tiffin service updated successfully"
	MessageSuccessDeleteTiffin      = "tiffin service deleted successfully"
	MessageSuccessRequestMess       = "mess request submitted"
	MessageSuccessUpdateMessRequest = "mess request updated"
	MessageSuccessGetMessRequests   = "mess requests retrieved successfully"
	MessageSuccessGetSubscribers    = "subscribers retrieved successfully"
	MessageSuccessMarkDailyStatus   = "daily status updated"

	MessageFailedCreateTiffin      = "failed to create tiffin service"
	MessageFailedGetTiffins        = "failed to retrieve tiffin services"
	MessageFailedGetTiffin         = "failed to retrieve tiffin service"
	MessageFailedUpdateTiffin      = "failed to update tiffin service"
	MessageFailedDeleteTiffin      = "failed to delete tiffin service"
	MessageFailedRequestMess       = "failed to submit mess request"
	MessageFailedUpdateMessRequest = "failed to update mess request"
	MessageFailedGetMessRequests   = "failed to retrieve mess requests"
	MessageFailedGetSubscribers    = "failed to retrieve subscribers"
	MessageFailedMarkDailyStatus   = "failed to update daily status"

	ErrTiffinNotFound     = errors.New("tiffin service not found")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

type (
	WeeklyPlan struct {
		Monday    string `json:"monday" validate:"omitempty"`
		Tuesday   string `json:"tuesday" validate:"omitempty"`
		Wednesday string `json:"wednesday" validate:"omitempty"`
		Thursday  string `json:"thursday" validate:"omitempty"`
		Friday    string `json:"friday" validate:"omitempty"`
		Saturday  string `json:"saturday" validate:"omitempty"`
		Sunday    string `json:"sunday" validate:"omitempty"`
	}

	CreateTiffinRequest struct {
		Name                string     `json:"name" validate:"required"`
		Description         string     `json:"description" validate:"omitempty"`
		Address             string     `json:"address" validate:"omitempty"`
		Area                string     `json:"area" validate:"omitempty"`
		Price               float64    `json:"price" validate:"required,gt=0"`
		ProvidesMonthlyMess bool       `json:"provides_monthly_mess"`
		MessStartDate       *time.Time `json:"mess_start_date"`
		RequestStartDate    *time.Time `json:"request_start_date"`
		WeeklyPlan          WeeklyPlan `json:"weekly_plan"`
	}

	UpdateTiffinRequest struct {
		Name                string      `json:"name" validate:"omitempty"`
		Description         string      `json:"description" validate:"omitempty"`
		Status              string      `json:"status" validate:"omitempty,oneof=Active Inactive"`
		Address             string      `json:"address" validate:"omitempty"`
		Area                string      `json:"area" validate:"omitempty"`
		Price               float64     `json:"price" validate:"omitempty,gt=0"`
		ProvidesMonthlyMess *bool       `json:"provides_monthly_mess"`
		MessStartDate       *time.Time  `json:"mess_start_date"`
		RequestStartDate    *time.Time  `json:"request_start_date"`
		MessApproved        *bool       `json:"mess_approved"`
		WeeklyPlan          *WeeklyPlan `json:"weekly_plan"`
	}

	TiffinResponse struct {
		ID                  string     `json:"id"`
		Name                string     `json:"name"`
		Description         string     `json:"description,omitempty"`
		Status              string     `json:"status"`
		Address             string     `json:"address,omitempty"`
		Area                string     `json:"area,omitempty"`
		OwnerID             string     `json:"owner_id"`
		Price               float64    `json:"price"`
		ProvidesMonthlyMess bool       `json:"provides_monthly_mess"`
		MessStartDate       *time.Time `json:"mess_start_date,omitempty"`
		RequestStartDate    *time.Time `json:"request_start_date,omitempty"`
		MessApproved        bool       `json:"mess_approved"`
		WeeklyPlan          WeeklyPlan `json:"weekly_plan"`
		CreatedAt           time.Time  `json:"created_at"`
	}

	SubscriberResponse struct {
		ID          string                `json:"id"`
		UserID      string                `json:"user_id"`
		UserName    string                `json:"user_name,omitempty"`
		JoinedAt    time.Time             `json:"joined_at"`
		DailyStatus []DailyStatusResponse `json:"daily_status,omitempty"`
	}

	DailyStatusResponse struct {
		Date   time.Time `json:"date"`
		Eaten  bool      `json:"eaten"`
		Status string    `json:"status"`
	}

	MarkDailyStatusRequest struct {
		Date   string `json:"date" validate:"required"`
		Eaten  bool   `json:"eaten"`
		Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
	}
)
