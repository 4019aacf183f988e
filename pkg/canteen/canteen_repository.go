package canteen

import (
	"Grab-N-Go-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CanteenRepository interface {
		CreateCanteen(ctx context.Context, canteen *entities.Canteen) error
		GetCanteenByID(ctx context.Context, id string) (*entities.Canteen, error)
		GetAllCanteens(ctx context.Context) ([]*entities.Canteen, error)
		GetCanteensByOwner(ctx context.Context, ownerID string) ([]*entities.Canteen, error)
		UpdateCanteen(ctx context.Context, canteen *entities.Canteen) error
		DeleteCanteen(ctx context.Context, id string) error

		CreateRequest(ctx context.Context, request *entities.CanteenRequest) error
		GetRequestsByCanteenAndUser(ctx context.Context, canteenID, userID string) ([]*entities.CanteenRequest, error)
		GetRequestsByCanteen(ctx context.Context, canteenID string) ([]*entities.CanteenRequest, error)
		// DecideRequest flips a still-pending request to its final status in a
		// single conditional UPDATE. Returns the number of affected rows; zero
		// means a concurrent writer decided the request first.
		DecideRequest(ctx context.Context, requestID uuid.UUID, status string, approvedAt *time.Time) (int64, error)
	}

	canteenRepository struct {
		db *gorm.DB
	}
)

func NewCanteenRepository(db *gorm.DB) CanteenRepository {
	return &canteenRepository{db: db}
}

func (r *canteenRepository) CreateCanteen(ctx context.Context, canteen *entities.Canteen) error {
	return r.db.WithContext(ctx).Create(canteen).Error
}

func (r *canteenRepository) GetCanteenByID(ctx context.Context, id string) (*entities.Canteen, error) {
	var canteen entities.Canteen
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&canteen).Error; err != nil {
		return nil, err
	}
	return &canteen, nil
}

func (r *canteenRepository) GetAllCanteens(ctx context.Context) ([]*entities.Canteen, error) {
	var canteens []*entities.Canteen
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&canteens).Error; err != nil {
		return nil, err
	}
	return canteens, nil
}

func (r *canteenRepository) GetCanteensByOwner(ctx context.Context, ownerID string) ([]*entities.Canteen, error) {
	var canteens []*entities.Canteen
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&canteens).Error; err != nil {
		return nil, err
	}
	return canteens, nil
}

func (r *canteenRepository) UpdateCanteen(ctx context.Context, canteen *entities.Canteen) error {
	return r.db.WithContext(ctx).Save(canteen).Error
}

func (r *canteenRepository) DeleteCanteen(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Canteen{}).Error
}

func (r *canteenRepository) CreateRequest(ctx context.Context, request *entities.CanteenRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *canteenRepository) GetRequestsByCanteenAndUser(ctx context.Context, canteenID, userID string) ([]*entities.CanteenRequest, error) {
	var requests []*entities.CanteenRequest
	if err := r.db.WithContext(ctx).
		Where("canteen_id = ? AND user_id = ?", canteenID, userID).
		Order("requested_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *canteenRepository) GetRequestsByCanteen(ctx context.Context, canteenID string) ([]*entities.CanteenRequest, error) {
	var requests []*entities.CanteenRequest
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("canteen_id = ?", canteenID).
		Order("requested_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *canteenRepository) DecideRequest(ctx context.Context, requestID uuid.UUID, status string, approvedAt *time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.CanteenRequest{}).
		Where("id = ? AND status = ?", requestID, "pending").
		Updates(map[string]interface{}{"status": status, "approved_at": approvedAt})
	return res.RowsAffected, res.Error
}
