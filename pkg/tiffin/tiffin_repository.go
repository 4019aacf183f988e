package tiffin

import (
	"Grab-N-Go-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TiffinRepository interface {
		CreateTiffin(ctx context.Context, tiffin *entities.Tiffin) error
		GetTiffinByID(ctx context.Context, id string) (*entities.Tiffin, error)
		GetAllTiffins(ctx context.Context) ([]*entities.Tiffin, error)
		GetTiffinsByOwner(ctx context.Context, ownerID string) ([]*entities.Tiffin, error)
		UpdateTiffin(ctx context.Context, tiffin *entities.Tiffin) error
		DeleteTiffin(ctx context.Context, id string) error

		CreateRequest(ctx context.Context, request *entities.TiffinRequest) error
		GetRequestsByTiffinAndUser(ctx context.Context, tiffinID, userID string) ([]*entities.TiffinRequest, error)
		GetRequestsByTiffin(ctx context.Context, tiffinID string) ([]*entities.TiffinRequest, error)
		// DecideRequest finalizes a pending request and, on approval, creates
		// the subscriber record in the same transaction so the request list
		// and subscriber list cannot drift apart. Zero affected rows means a
		// concurrent writer decided first.
		DecideRequest(ctx context.Context, request *entities.TiffinRequest, status string, approvedAt *time.Time) (int64, error)

		GetSubscribers(ctx context.Context, tiffinID string) ([]*entities.TiffinSubscriber, error)
		GetSubscriber(ctx context.Context, tiffinID, userID string) (*entities.TiffinSubscriber, error)
		UpsertDailyStatus(ctx context.Context, status *entities.TiffinDailyStatus) error
	}

	tiffinRepository struct {
		db *gorm.DB
	}
)

func NewTiffinRepository(db *gorm.DB) TiffinRepository {
	return &tiffinRepository{db: db}
}

func (r *tiffinRepository) CreateTiffin(ctx context.Context, tiffin *entities.Tiffin) error {
	return r.db.WithContext(ctx).Create(tiffin).Error
}

func (r *tiffinRepository) GetTiffinByID(ctx context.Context, id string) (*entities.Tiffin, error) {
	var tiffin entities.Tiffin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tiffin).Error; err != nil {
		return nil, err
	}
	return &tiffin, nil
}

func (r *tiffinRepository) GetAllTiffins(ctx context.Context) ([]*entities.Tiffin, error) {
	var tiffins []*entities.Tiffin
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&tiffins).Error; err != nil {
		return nil, err
	}
	return tiffins, nil
}

func (r *tiffinRepository) GetTiffinsByOwner(ctx context.Context, ownerID string) ([]*entities.Tiffin, error) {
	var tiffins []*entities.Tiffin
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&tiffins).Error; err != nil {
		return nil, err
	}
	return tiffins, nil
}

func (r *tiffinRepository) UpdateTiffin(ctx context.Context, tiffin *entities.Tiffin) error {
	return r.db.WithContext(ctx).Save(tiffin).Error
}

func (r *tiffinRepository) DeleteTiffin(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Tiffin{}).Error
}

func (r *tiffinRepository) CreateRequest(ctx context.Context, request *entities.TiffinRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *tiffinRepository) GetRequestsByTiffinAndUser(ctx context.Context, tiffinID, userID string) ([]*entities.TiffinRequest, error) {
	var requests []*entities.TiffinRequest
	if err := r.db.WithContext(ctx).
		Where("tiffin_id = ? AND user_id = ?", tiffinID, userID).
		Order("requested_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *tiffinRepository) GetRequestsByTiffin(ctx context.Context, tiffinID string) ([]*entities.TiffinRequest, error) {
	var requests []*entities.TiffinRequest
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("tiffin_id = ?", tiffinID).
		Order("requested_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *tiffinRepository) DecideRequest(ctx context.Context, request *entities.TiffinRequest, status string, approvedAt *time.Time) (int64, error) {
	var rows int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.TiffinRequest{}).
			Where("id = ? AND status = ?", request.ID, "pending").
			Updates(map[string]interface{}{"status": status, "approved_at": approvedAt})
		if res.Error != nil {
			return res.Error
		}
		rows = res.RowsAffected
		if rows == 0 || status != "approved" {
			return nil
		}

		subscriber := &entities.TiffinSubscriber{
			ID:       uuid.New(),
			TiffinID: request.TiffinID,
			UserID:   request.UserID,
			JoinedAt: *approvedAt,
		}
		return tx.Create(subscriber).Error
	})
	return rows, err
}

func (r *tiffinRepository) GetSubscribers(ctx context.Context, tiffinID string) ([]*entities.TiffinSubscriber, error) {
	var subscribers []*entities.TiffinSubscriber
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("DailyStatus").
		Where("tiffin_id = ?", tiffinID).
		Find(&subscribers).Error; err != nil {
		return nil, err
	}
	return subscribers, nil
}

func (r *tiffinRepository) GetSubscriber(ctx context.Context, tiffinID, userID string) (*entities.TiffinSubscriber, error) {
	var subscriber entities.TiffinSubscriber
	if err := r.db.WithContext(ctx).
		Where("tiffin_id = ? AND user_id = ?", tiffinID, userID).
		First(&subscriber).Error; err != nil {
		return nil, err
	}
	return &subscriber, nil
}

func (r *tiffinRepository) UpsertDailyStatus(ctx context.Context, status *entities.TiffinDailyStatus) error {
	var existing entities.TiffinDailyStatus
	err := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND date = ?", status.SubscriberID, status.Date).
		First(&existing).Error
	if err == nil {
		existing.Eaten = status.Eaten
		existing.Status = status.Status
		return r.db.WithContext(ctx).Save(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(status).Error
}
