package canteen

import (
	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/entities"
	"Grab-N-Go-Backend/internal/utils/mailing"
	"Grab-N-Go-Backend/internal/utils/storage"
	"Grab-N-Go-Backend/pkg/lifecycle"
	"Grab-N-Go-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CanteenService interface {
		CreateCanteen(ctx context.Context, req domain.CreateCanteenRequest, ownerID string) (domain.CanteenResponse, error)
		GetAllCanteens(ctx context.Context) ([]domain.CanteenResponse, error)
		GetCanteenByID(ctx context.Context, id string) (domain.CanteenResponse, error)
		GetMyCanteens(ctx context.Context, ownerID string) ([]domain.CanteenResponse, error)
		UpdateCanteen(ctx context.Context, id string, req domain.UpdateCanteenRequest, ownerID string) error
		DeleteCanteen(ctx context.Context, id string, ownerID string) error

		SubmitRequest(ctx context.Context, canteenID, userID string) (domain.JoinRequestResponse, error)
		UpdateRequestStatus(ctx context.Context, canteenID, targetUserID, status, actorID string) (domain.JoinRequestResponse, error)
		GetRequestsForOwner(ctx context.Context, ownerID string) (map[string][]domain.JoinRequestResponse, error)
	}

	canteenService struct {
		canteenRepository CanteenRepository
		userRepository    user.UserRepository
		s3                storage.AwsS3
	}
)

func NewCanteenService(canteenRepository CanteenRepository, userRepository user.UserRepository, s3 storage.AwsS3) CanteenService {
	return &canteenService{
		canteenRepository: canteenRepository,
		userRepository:    userRepository,
		s3:                s3,
	}
}

func (s *canteenService) CreateCanteen(ctx context.Context, req domain.CreateCanteenRequest, ownerID string) (domain.CanteenResponse, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return domain.CanteenResponse{}, domain.ErrParseUUID
	}

	canteenID := uuid.New()
	canteen := &entities.Canteen{
		ID:             canteenID,
		CanteenName:    req.CanteenName,
		CanteenAddress: req.CanteenAddress,
		CollegeName:    req.CollegeName,
		AadharCardNo:   req.AadharCardNo,
		OwnerID:        ownerUUID,
		OwnerName:      req.OwnerName,
		OwnerPhone:     req.OwnerPhone,
		OwnerEmail:     req.OwnerEmail,
	}

	if req.LicenseImage != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("license-%s", canteenID.String()),
			req.LicenseImage,
			"canteens",
			storage.AllowImage...,
		)
		if err != nil {
			return domain.CanteenResponse{}, err
		}
		canteen.LicenseImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if req.CanteenPhoto != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("photo-%s", canteenID.String()),
			req.CanteenPhoto,
			"canteens",
			storage.AllowImage...,
		)
		if err != nil {
			return domain.CanteenResponse{}, err
		}
		canteen.CanteenPhotoURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.canteenRepository.CreateCanteen(ctx, canteen); err != nil {
		return domain.CanteenResponse{}, err
	}

	return toCanteenResponse(canteen), nil
}

func (s *canteenService) GetAllCanteens(ctx context.Context) ([]domain.CanteenResponse, error) {
	canteens, err := s.canteenRepository.GetAllCanteens(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CanteenResponse, 0, len(canteens))
	for _, c := range canteens {
		result = append(result, toCanteenResponse(c))
	}
	return result, nil
}

func (s *canteenService) GetCanteenByID(ctx context.Context, id string) (domain.CanteenResponse, error) {
	canteen, err := s.canteenRepository.GetCanteenByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CanteenResponse{}, domain.ErrCanteenNotFound
		}
		return domain.CanteenResponse{}, err
	}
	return toCanteenResponse(canteen), nil
}

func (s *canteenService) GetMyCanteens(ctx context.Context, ownerID string) ([]domain.CanteenResponse, error) {
	canteens, err := s.canteenRepository.GetCanteensByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CanteenResponse, 0, len(canteens))
	for _, c := range canteens {
		result = append(result, toCanteenResponse(c))
	}
	return result, nil
}

func (s *canteenService) UpdateCanteen(ctx context.Context, id string, req domain.UpdateCanteenRequest, ownerID string) error {
	canteen, err := s.canteenRepository.GetCanteenByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCanteenNotFound
		}
		return err
	}

	if canteen.OwnerID.String() != ownerID {
		return domain.ErrUserNotAllowed
	}

	if req.CanteenName != "" {
		canteen.CanteenName = req.CanteenName
	}
	if req.CanteenAddress != "" {
		canteen.CanteenAddress = req.CanteenAddress
	}
	if req.CollegeName != "" {
		canteen.CollegeName = req.CollegeName
	}
	if req.OwnerName != "" {
		canteen.OwnerName = req.OwnerName
	}
	if req.OwnerPhone != "" {
		canteen.OwnerPhone = req.OwnerPhone
	}
	if req.OwnerEmail != "" {
		canteen.OwnerEmail = req.OwnerEmail
	}

	if req.LicenseImage != nil {
		canteen.LicenseImageURL, err = s.replaceImage(canteen.LicenseImageURL, fmt.Sprintf("license-%s", canteen.ID), req.LicenseImage)
		if err != nil {
			return err
		}
	}
	if req.CanteenPhoto != nil {
		canteen.CanteenPhotoURL, err = s.replaceImage(canteen.CanteenPhotoURL, fmt.Sprintf("photo-%s", canteen.ID), req.CanteenPhoto)
		if err != nil {
			return err
		}
	}

	return s.canteenRepository.UpdateCanteen(ctx, canteen)
}

func (s *canteenService) DeleteCanteen(ctx context.Context, id string, ownerID string) error {
	canteen, err := s.canteenRepository.GetCanteenByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCanteenNotFound
		}
		return err
	}

	if canteen.OwnerID.String() != ownerID {
		return domain.ErrUserNotAllowed
	}

	for _, link := range []string{canteen.LicenseImageURL, canteen.CanteenPhotoURL} {
		if link == "" {
			continue
		}
		if objectKey := s.s3.GetObjectKeyFromLink(link); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.canteenRepository.DeleteCanteen(ctx, id)
}

func (s *canteenService) SubmitRequest(ctx context.Context, canteenID, userID string) (domain.JoinRequestResponse, error) {
	canteen, err := s.canteenRepository.GetCanteenByID(ctx, canteenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.JoinRequestResponse{}, domain.ErrCanteenNotFound
		}
		return domain.JoinRequestResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.JoinRequestResponse{}, domain.ErrParseUUID
	}

	existing, err := s.canteenRepository.GetRequestsByCanteenAndUser(ctx, canteenID, userID)
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

	request := &entities.CanteenRequest{
		ID:          uuid.New(),
		CanteenID:   canteen.ID,
		UserID:      userUUID,
		Status:      string(lifecycle.RequestPending),
		RequestedAt: time.Now(),
	}

	if err := s.canteenRepository.CreateRequest(ctx, request); err != nil {
		return domain.JoinRequestResponse{}, err
	}

	return toRequestResponse(request), nil
}

func (s *canteenService) UpdateRequestStatus(ctx context.Context, canteenID, targetUserID, status, actorID string) (domain.JoinRequestResponse, error) {
	canteen, err := s.canteenRepository.GetCanteenByID(ctx, canteenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.JoinRequestResponse{}, domain.ErrCanteenNotFound
		}
		return domain.JoinRequestResponse{}, err
	}

	if canteen.OwnerID.String() != actorID {
		return domain.JoinRequestResponse{}, domain.ErrUserNotAllowed
	}

	requests, err := s.canteenRepository.GetRequestsByCanteenAndUser(ctx, canteenID, targetUserID)
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

	rows, err := s.canteenRepository.DecideRequest(ctx, request.ID, status, approvedAt)
	if err != nil {
		return domain.JoinRequestResponse{}, err
	}
	if rows == 0 {
		return domain.JoinRequestResponse{}, domain.ErrRequestAlreadyDecided
	}

	request.Status = status
	request.ApprovedAt = approvedAt

	if status == string(lifecycle.RequestApproved) {
		s.notifyApproval(ctx, canteen, targetUserID)
	}

	return toRequestResponse(request), nil
}

func (s *canteenService) GetRequestsForOwner(ctx context.Context, ownerID string) (map[string][]domain.JoinRequestResponse, error) {
	canteens, err := s.canteenRepository.GetCanteensByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]domain.JoinRequestResponse, len(canteens))
	for _, c := range canteens {
		requests, err := s.canteenRepository.GetRequestsByCanteen(ctx, c.ID.String())
		if err != nil {
			return nil, err
		}

		responses := make([]domain.JoinRequestResponse, 0, len(requests))
		for _, r := range requests {
			responses = append(responses, toRequestResponse(r))
		}
		result[c.ID.String()] = responses
	}

	return result, nil
}

func (s *canteenService) replaceImage(existingLink, fileName string, file *multipart.FileHeader) (string, error) {
	if existingLink != "" {
		if existingKey := s.s3.GetObjectKeyFromLink(existingLink); existingKey != "" {
			objectKey, err := s.s3.UpdateFile(existingKey, file, storage.AllowImage...)
			if err != nil {
				return "", err
			}
			return s.s3.GetPublicLinkKey(objectKey), nil
		}
	}

	objectKey, err := s.s3.UploadFile(fileName, file, "canteens", storage.AllowImage...)
	if err != nil {
		return "", err
	}
	return s.s3.GetPublicLinkKey(objectKey), nil
}

func (s *canteenService) notifyApproval(ctx context.Context, canteen *entities.Canteen, userID string) {
	requester, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Printf("approval mail skipped, user %s not loaded: %v", userID, err)
		return
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your join request for <b>%s</b> has been approved.</p>",
		requester.FullName, canteen.CanteenName,
	)
	if err := mailing.SendMail(requester.Email, "Join request approved", body); err != nil {
		log.Printf("failed to send approval mail to %s: %v", requester.Email, err)
	}
}

func toCanteenResponse(c *entities.Canteen) domain.CanteenResponse {
	return domain.CanteenResponse{
		ID:              c.ID.String(),
		CanteenName:     c.CanteenName,
		CanteenAddress:  c.CanteenAddress,
		CollegeName:     c.CollegeName,
		LicenseImageURL: c.LicenseImageURL,
		CanteenPhotoURL: c.CanteenPhotoURL,
		OwnerID:         c.OwnerID.String(),
		OwnerName:       c.OwnerName,
		OwnerPhone:      c.OwnerPhone,
		OwnerEmail:      c.OwnerEmail,
		CreatedAt:       c.CreatedAt,
	}
}

func toRequestResponse(r *entities.CanteenRequest) domain.JoinRequestResponse {
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
