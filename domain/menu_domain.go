package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddMenuItem    = "menu item added successfully"
	MessageSuccessGetMenu        = "menu retrieved successfully"
	MessageSuccessUpdateMenuItem = "menu item updated successfully"
	MessageSuccessDeleteMenuItem = "menu item deleted successfully"

	MessageFailedAddMenuItem    = "failed to add menu item"
	MessageFailedGetMenu        = "failed to retrieve menu"
	MessageFailedUpdateMenuItem = "failed to update menu item"
	MessageFailedDeleteMenuItem = "failed to delete menu item"

	ErrMenuNotFound     = errors.New("menu not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidCategory  = errors.New("invalid category")
)

type (
	AddMenuItemRequest struct {
		Category    string                `json:"category" form:"category" validate:"required"`
		Name        string                `json:"name" form:"name" validate:"required"`
		Price       float64               `json:"price" form:"price" validate:"required,gt=0"`
		Description string                `json:"description" form:"description" validate:"omitempty"`
		Image       *multipart.FileHeader `json:"image" form:"image"`
	}

	// UpdateMenuItemRequest is a partial patch: zero-valued fields leave the
	// stored item untouched.
	UpdateMenuItemRequest struct {
		Name        string  `json:"name" validate:"omitempty"`
		Price       float64 `json:"price" validate:"omitempty,gt=0"`
		Description string  `json:"description" validate:"omitempty"`
		ImageURL    string  `json:"image_url" validate:"omitempty"`
	}

	MenuItemResponse struct {
		ID          string  `json:"id"`
		Category    string  `json:"category"`
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Description string  `json:"description,omitempty"`
		ImageURL    string  `json:"image_url,omitempty"`
		Position    int     `json:"position"`
	}

	MenuResponse struct {
		ID          string             `json:"id"`
		CanteenID   string             `json:"canteen_id"`
		Breakfast   []MenuItemResponse `json:"breakfast"`
		Lunch       []MenuItemResponse `json:"lunch"`
		Chinese     []MenuItemResponse `json:"chinese"`
		SpecialFood []MenuItemResponse `json:"specialFood"`
		CreatedAt   time.Time          `json:"created_at"`
	}
)
