package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateCanteen       = "canteen created successfully"
	MessageSuccessGetCanteens         = "canteens retrieved successfully"
	MessageSuccessGetCanteen          = "canteen retrieved successfully"
	MessageSuccessUpdateCanteen       = "canteen updated successfully"
	MessageSuccessDeleteCanteen       = "canteen deleted successfully"
	MessageSuccessSubmitRequest       = "join request submitted"
	MessageSuccessUpdateRequestStatus = "join request updated"
	MessageSuccessGetCanteenRequests  = "join requests retrieved successfully"

	MessageFailedCreateCanteen       = "failed to create canteen"
	MessageFailedGetCanteens         = "failed to retrieve canteens"
	MessageFailedGetCanteen          = "failed to retrieve canteen"
	MessageFailedUpdateCanteen       = "failed to update canteen"
	MessageFailedDeleteCanteen       = "failed to delete canteen"
	MessageFailedSubmitRequest       = "failed to submit join request"
	MessageFailedUpdateRequestStatus = "failed to update join request"
	MessageFailedGetCanteenRequests  = "failed to retrieve join requests"

	ErrCanteenNotFound = errors.New("canteen not found")
)

type (
	CreateCanteenRequest struct {
		CanteenName    string                `json:"canteen_name" form:"canteenName" validate:"required"`
		CanteenAddress string                `json:"canteen_address" form:"canteenAddress" validate:"required"`
		CollegeName    string                `json:"college_name" form:"collegeName" validate:"required"`
		AadharCardNo   string                `json:"aadhar_card_number" form:"aadharCardNumber" validate:"required"`
		OwnerName      string                `json:"owner_name" form:"ownerName" validate:"omitempty"`
		OwnerPhone     string                `json:"owner_phone" form:"ownerPhone" validate:"omitempty"`
		OwnerEmail     string                `json:"owner_email" form:"ownerEmail" validate:"omitempty,email"`
		LicenseImage   *multipart.FileHeader `json:"license_image" form:"licenseImage"`
		CanteenPhoto   *multipart.FileHeader `json:"canteen_photo" form:"canteenPhoto"`
	}

	UpdateCanteenRequest struct {
		CanteenName    string                `json:"canteen_name" form:"canteenName" validate:"omitempty"`
		CanteenAddress string                `json:"canteen_address" form:"canteenAddress" validate:"omitempty"`
		CollegeName    string                `json:"college_name" form:"collegeName" validate:"omitempty"`
		OwnerName      string                `json:"owner_name" form:"ownerName" validate:"omitempty"`
		OwnerPhone     string                `json:"owner_phone" form:"ownerPhone" validate:"omitempty"`
		OwnerEmail     string                `json:"owner_email" form:"ownerEmail" validate:"omitempty,email"`
		LicenseImage   *multipart.FileHeader `json:"license_image" form:"licenseImage"`
		CanteenPhoto   *multipart.FileHeader `json:"canteen_photo" form:"canteenPhoto"`
	}

	CanteenResponse struct {
		ID              string    `json:"id"`
		CanteenName     string    `json:"canteen_name"`
		CanteenAddress  string    `json:"canteen_address"`
		CollegeName     string    `json:"college_name"`
		LicenseImageURL string    `json:"license_image_url,omitempty"`
		CanteenPhotoURL string    `json:"canteen_photo_url,omitempty"`
		OwnerID         string    `json:"owner_id"`
		OwnerName       string    `json:"owner_name,omitempty"`
		OwnerPhone      string    `json:"owner_phone,omitempty"`
		OwnerEmail      string    `json:"owner_email,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
	}

	UpdateRequestStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=approved rejected"`
	}

	JoinRequestResponse struct {
		ID          string     `json:"id"`
		UserID      string     `json:"user_id"`
		UserName    string     `json:"user_name,omitempty"`
		UserEmail   string     `json:"user_email,omitempty"`
		Status      string     `json:"status"`
		RequestedAt time.Time  `json:"requested_at"`
		ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	}
)
