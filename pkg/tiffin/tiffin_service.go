package tiffin

import (
	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/entities"
	"Grab-N-Go-Backend/internal/utils/mailing"
	"Grab-N-Go-Backend/pkg/lifecycle"
	"Grab-N-Go-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TiffinService interface {
		CreateTiffin(ctx context.Context, req domain.CreateTiffinRequest, ownerID string) (domain.TiffinResponse, error)
		GetAllTiffins(ctx context.Context) ([]domain.TiffinResponse, error)
		GetTiffinByID(ctx context.Context, id string) (domain.TiffinResponse, error)
		GetMyTiffins(ctx context.Context, ownerID string) ([]domain.TiffinResponse, error)
		UpdateTiffin(ctx context.Context, id string, req domain.UpdateTiffinRequest, ownerID string) error
		DeleteTiffin(ctx context.Context, id string, ownerID string) error

		RequestMess(ctx context.Context, tiffinID, userID string) (domain.JoinRequestResponse, error)
		UpdateRequestStatus(ctx context.Context, tiffinID, targetUserID, status, actorID string) (domain.JoinRequestResponse, error)
		GetRequests(ctx context.Context, tiffinID, actorID string) ([]domain.JoinRequestResponse, error)
		GetSubscribers(ctx context.Context, tiffinID, actorID string) ([]domain.SubscriberResponse, error)
		MarkDailyStatus(ctx context.Context, tiffinID, userID string, req domain.MarkDailyStatusRequest) error
	}

	tiffinService struct {
		tiffinRepository TiffinRepository
		userRepository   user.UserRepository
	}
)

func NewTiffinService(tiffinRepository TiffinRepository, userRepository user.UserRepository) TiffinService {
	return &tiffinService{
		tiffinRepository: tiffinRepository,
		userRepository:   userRepository,
	}
}

func (s *tiffinService) CreateTiffin(ctx context.Context, req domain.CreateTiffinRequest, ownerID string) (domain.TiffinResponse, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return domain.TiffinResponse{}, domain.ErrParseUUID
	}

	tiffin := &entities.Tiffin{
		ID:                  uuid.New(),
		Name:                req.Name,
		Description:         req.Description,
		Status:              "Inactive",
		Address:             req.Address,
		Area:                req.Area,
		OwnerID:             ownerUUID,
		Price:               req.Price,
		ProvidesMonthlyMess: req.ProvidesMonthlyMess,
		MessStartDate:       req.MessStartDate,
		RequestStartDate:    req.RequestStartDate,
		Monday:              req.WeeklyPlan.Monday,
		Tuesday:             req.WeeklyPlan.Tuesday,
		Wednesday:           req.WeeklyPlan.Wednesday,
		Thursday:            req.WeeklyPlan.Thursday,
		Friday:              req.WeeklyPlan.Friday,
		Saturday:            req.WeeklyPlan.Saturday,
		Sunday:              req.WeeklyPlan.Sunday,
	}

	if err := s.tiffinRepository.CreateTiffin(ctx, tiffin); err != nil {
		return domain.TiffinResponse{}, err
	}

	return toTiffinResponse(tiffin), nil
}

func (s *tiffinService) GetAllTiffins(ctx context.Context) ([]domain.TiffinResponse, error) {
	tiffins, err := s.tiffinRepository.GetAllTiffins(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TiffinResponse, 0, len(tiffins))
	for _, t := range tiffins {
		result = append(result, toTiffinResponse(t))
	}
	return result, nil
}

func (s *tiffinService) GetTiffinByID(ctx context.Context, id string) (domain.TiffinResponse, error) {
	tiffin, err := s.tiffinRepository.GetTiffinByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TiffinResponse{}, domain.ErrTiffinNotFound
		}
		return domain.TiffinResponse{}, err
	}
	return toTiffinResponse(tiffin), nil
}

func (s *tiffinService) GetMyTiffins(ctx context.Context, ownerID string) ([]domain.TiffinResponse, error) {
	tiffins, err := s.tiffinRepository.GetTiffinsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TiffinResponse, 0, len(tiffins))
	for _, t := range tiffins {
		result = append(result, toTiffinResponse(t))
	}
	return result, nil
}

func (s *tiffinService) UpdateTiffin(ctx context.Context, id string, req domain.UpdateTiffinRequest, ownerID string) error {
	tiffin, err := s.tiffinRepository.GetTiffinByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTiffinNotFound
		}
		return err
	}

	if tiffin.OwnerID.String() != ownerID {
		return domain.ErrUserNotAllowed
	}

	if req.Name != "" {
		tiffin.Name = req.Name
	}
	if req.Description != "" {
		tiffin.Description = req.Description
	}
	if req.Status != "" {
		tiffin.Status = req.Status
	}
	if req.Address != "" {
		tiffin.Address = req.Address
	}
	if req.Area != "" {
		tiffin.Area = req.Area
	}
	if req.Price > 0 {
		tiffin.Price = req.Price
	}
	if req.ProvidesMonthlyMess != nil {
		tiffin.ProvidesMonthlyMess = *req.ProvidesMonthlyMess
	}
	if req.MessStartDate != nil {
		tiffin.MessStartDate = req.MessStartDate
	}
	if req.RequestStartDate != nil {
		tiffin.RequestStartDate = req.RequestStartDate
	}
	if req.MessApproved != nil {
		tiffin.MessApproved = *req.MessApproved
	}
	if req.WeeklyPlan != nil {
		tiffin.Monday = req.WeeklyPlan.Monday
		tiffin.Tuesday = req.WeeklyPlan.Tuesday
		tiffin.Wednesday = req.WeeklyPlan.Wednesday
		tiffin.Thursday = req.WeeklyPlan.Thursday
		tiffin.Friday = req.WeeklyPlan.Friday
		tiffin.Saturday = req.WeeklyPlan.Saturday
		tiffin.Sunday = req.WeeklyPlan.Sunday
	}

	return s.tiffinRepository.UpdateTiffin(ctx, tiffin)
}

func (s *tiffinService) DeleteTiffin(ctx context.Context, id string, ownerID string) error {
	tiffin, err := s.tiffinRepository.GetTiffinByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTiffinNotFound
		}
		return err
	}

	if tiffin.OwnerID.String() != ownerID {
		return domain.ErrUserNotAllowed
	}

	return s.tiffinRepository.DeleteTiffin(ctx, id)
}

func (s *tiffinService) RequestMess(ctx context.Context, tiffinID, userID string) (domain.JoinRequestResponse, error) {
	tiffin, err := s.tiffinRepository.GetTiffinByID(ctx, tiffinID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.JoinRequestResponse{}, domain.ErrTiffinNotFound
		}
		return domain.JoinRequestResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.JoinRequestResponse{}, domain.ErrParseUUID
	}

	existing, err := s.tiffinRepository.GetRequestsByTiffinAndUser(ctx, tiffinID, userID)
	if err != nil {
		return domain.JoinRequestResponse{}, err
	}

	statuses := make([]lifecycle.RequestStatus, 0, len(existing))
	for _, r := range existing {
		statuses = append(statuses, lifecycle.RequestStatus(r.Status))
	}
	if err := lifecycle.CanSubmit(statuses); err != nil {
		return domain.JoinRequestResponse{}, err
	}

	request := &entities.TiffinRequest{
		ID:          uuid.New(),
		TiffinID:    tiffin.ID,
		UserID:      userUUID,
		Status:      string(lifecycle.RequestPending),
		RequestedAt: time.Now(),
	}

	if err := s.tiffinRepository.CreateRequest(ctx, request); err != nil {
		return domain.JoinRequestResponse{}, err
	}

	return toTiffinRequestResponse(request), nil
}

func (s *tiffinService) UpdateRequestStatus(ctx context.Context, tiffinID, targetUserID, status, actorID string) (domain.JoinRequestResponse, error) {
	tiffin, err := s.tiffinRepository.GetTiffinByID(ctx, tiffinID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.JoinRequestResponse{}, domain.ErrTiffinNotFound
		}
		return domain.JoinRequestResponse{}, err
	}

	if tiffin.OwnerID.String() != actorID {
		return domain.JoinRequestResponse{}, domain.ErrUserNotAllowed
	}

	requests, err := s.tiffinRepository.GetRequestsByTiffinAndUser(ctx, tiffinID, targetUserID)
	if err != nil {
		return domain.JoinRequestResponse{}, err
	}
	if len(requests) == 0 {
		return domain.JoinRequestResponse{}, domain.ErrRequestNotFound
	}

	request := requests[0]
	approvedAt, err := lifecycle.TransitionRequest(
		lifecycle.RequestStatus(request.Status),
		lifecycle.RequestStatus(status),
		time.Now(),
	)
	if err != nil {
		return domain.JoinRequestResponse{}, err
	}

	rows, err := s.tiffinRepository.DecideRequest(ctx, request, status, approvedAt)
	if err != nil {
		return domain.JoinRequestResponse{}, err
	}
	if rows == 0 {
		return domain.JoinRequestResponse{}, domain.ErrRequestAlreadyDecided
	}

	request.Status = status
	request.ApprovedAt = approvedAt

	if status == string(lifecycle.RequestApproved) {
		s.notifyApproval(ctx, tiffin, targetUserID)
	}

	return toTiffinRequestResponse(request), nil
}

func (s *tiffinService) GetRequests(ctx context.Context, tiffinID, actorID string) ([]domain.JoinRequestResponse, error) {
	tiffin, err := s.tiffinRepository.GetTiffinByID(ctx, tiffinID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTiffinNotFound
		}
		return nil, err
	}

	if tiffin.OwnerID.String() != actorID {
		return nil, domain.ErrUserNotAllowed
	}

	requests, err := s.tiffinRepository.GetRequestsByTiffin(ctx, tiffinID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.JoinRequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, toTiffinRequestResponse(r))
	}
	return result, nil
}

func (s *tiffinService) GetSubscribers(ctx context.Context, tiffinID, actorID string) ([]domain.SubscriberResponse, error) {
	tiffin, err := s.tiffinRepository.GetTiffinByID(ctx, tiffinID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTiffinNotFound
		}
		return nil, err
	}

	if tiffin.OwnerID.String() != actorID {
		return nil, domain.ErrUserNotAllowed
	}

	subscribers, err := s.tiffinRepository.GetSubscribers(ctx, tiffinID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.SubscriberResponse, 0, len(subscribers))
	for _, sub := range subscribers {
		res := domain.SubscriberResponse{
			ID:       sub.ID.String(),
			UserID:   sub.UserID.String(),
			JoinedAt: sub.JoinedAt,
		}
		if sub.User != nil {
			res.UserName = sub.User.FullName
		}
		for _, d := range sub.DailyStatus {
			res.DailyStatus = append(res.DailyStatus, domain.DailyStatusResponse{
				Date:   d.Date,
				Eaten:  d.Eaten,
				Status: d.Status,
			})
		}
		result = append(result, res)
	}
	return result, nil
}

// MarkDailyStatus records a subscriber's own eaten/accepted entry for a day.
func (s *tiffinService) MarkDailyStatus(ctx context.Context, tiffinID, userID string, req domain.MarkDailyStatusRequest) error {
	subscriber, err := s.tiffinRepository.GetSubscriber(ctx, tiffinID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSubscriberNotFound
		}
		return err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return err
	}

	return s.tiffinRepository.UpsertDailyStatus(ctx, &entities.TiffinDailyStatus{
		ID:           uuid.New(),
		SubscriberID: subscriber.ID,
		Date:         date,
		Eaten:        req.Eaten,
		Status:       req.Status,
	})
}

func (s *tiffinService) notifyApproval(ctx context.Context, tiffin *entities.Tiffin, userID string) {
	requester, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Printf("approval mail skipped, user %s not loaded: %v", userID, err)
		return
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your mess request for <b>%s</b> has been approved.</p>",
		requester.FullName, tiffin.Name,
	)
	if err := mailing.SendMail(requester.Email, "Mess request approved", body); err != nil {
		log.Printf("failed to send approval mail to %s: %v", requester.Email, err)
	}
}

func toTiffinResponse(t *entities.Tiffin) domain.TiffinResponse {
	return domain.TiffinResponse{
		ID:                  t.ID.String(),
		Name:                t.Name,
		Description:         t.Description,
		Status:              t.Status,
		Address:             t.Address,
		Area:                t.Area,
		OwnerID:             t.OwnerID.String(),
		Price:               t.Price,
		ProvidesMonthlyMess: t.ProvidesMonthlyMess,
		MessStartDate:       t.MessStartDate,
		RequestStartDate:    t.RequestStartDate,
		MessApproved:        t.MessApproved,
		WeeklyPlan: domain.WeeklyPlan{
			Monday:    t.Monday,
			Tuesday:   t.Tuesday,
			Wednesday: t.Wednesday,
			Thursday:  t.Thursday,
			Friday:    t.Friday,
			Saturday:  t.Saturday,
			Sunday:    t.Sunday,
		},
		CreatedAt: t.CreatedAt,
	}
}

func toTiffinRequestResponse(r *entities.TiffinRequest) domain.JoinRequestResponse {
	res := domain.JoinRequestResponse{
		ID:          r.ID.String(),
		UserID:      r.UserID.String(),
		Status:      r.Status,
		RequestedAt: r.RequestedAt,
		ApprovedAt:  r.ApprovedAt,
	}
	if r.User != nil {
		res.UserName = r.User.FullName
		res.UserEmail = r.User.Email
	}
	return res
}
