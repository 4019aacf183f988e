package tiffin

import (
	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeTiffinRepository struct {
	tiffins     map[uuid.UUID]*entities.Tiffin
	requests    []*entities.TiffinRequest
	subscribers []*entities.TiffinSubscriber
	daily       []*entities.TiffinDailyStatus
}

func newFakeTiffinRepository() *fakeTiffinRepository {
	return &fakeTiffinRepository{tiffins: make(map[uuid.UUID]*entities.Tiffin)}
}

func (f *fakeTiffinRepository) CreateTiffin(_ context.Context, t *entities.Tiffin) error {
	f.tiffins[t.ID] = t
	return nil
}

func (f *fakeTiffinRepository) GetTiffinByID(_ context.Context, id string) (*entities.Tiffin, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	t, ok := f.tiffins[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (f *fakeTiffinRepository) GetAllTiffins(_ context.Context) ([]*entities.Tiffin, error) {
	var result []*entities.Tiffin
	for _, t := range f.tiffins {
		result = append(result, t)
	}
	return result, nil
}

func (f *fakeTiffinRepository) GetTiffinsByOwner(_ context.Context, ownerID string) ([]*entities.Tiffin, error) {
	var result []*entities.Tiffin
	for _, t := range f.tiffins {
		if t.OwnerID.String() == ownerID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeTiffinRepository) UpdateTiffin(_ context.Context, t *entities.Tiffin) error {
	f.tiffins[t.ID] = t
	return nil
}

func (f *fakeTiffinRepository) DeleteTiffin(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(f.tiffins, parsed)
	return nil
}

func (f *fakeTiffinRepository) CreateRequest(_ context.Context, r *entities.TiffinRequest) error {
	f.requests = append(f.requests, r)
	return nil
}

func (f *fakeTiffinRepository) GetRequestsByTiffinAndUser(_ context.Context, tiffinID, userID string) ([]*entities.TiffinRequest, error) {
	var result []*entities.TiffinRequest
	for i := len(f.requests) - 1; i >= 0; i-- {
		r := f.requests[i]
		if r.TiffinID.String() == tiffinID && r.UserID.String() == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeTiffinRepository) GetRequestsByTiffin(_ context.Context, tiffinID string) ([]*entities.TiffinRequest, error) {
	var result []*entities.TiffinRequest
	for _, r := range f.requests {
		if r.TiffinID.String() == tiffinID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeTiffinRepository) DecideRequest(_ context.Context, request *entities.TiffinRequest, status string, approvedAt *time.Time) (int64, error) {
	for _, r := range f.requests {
		if r.ID == request.ID && r.Status == "pending" {
			r.Status = status
			r.ApprovedAt = approvedAt
			if status == "approved" {
				f.subscribers = append(f.subscribers, &entities.TiffinSubscriber{
					ID:       uuid.New(),
					TiffinID: r.TiffinID,
					UserID:   r.UserID,
					JoinedAt: *approvedAt,
				})
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeTiffinRepository) GetSubscribers(_ context.Context, tiffinID string) ([]*entities.TiffinSubscriber, error) {
	var result []*entities.TiffinSubscriber
	for _, s := range f.subscribers {
		if s.TiffinID.String() == tiffinID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeTiffinRepository) GetSubscriber(_ context.Context, tiffinID, userID string) (*entities.TiffinSubscriber, error) {
	for _, s := range f.subscribers {
		if s.TiffinID.String() == tiffinID && s.UserID.String() == userID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTiffinRepository) UpsertDailyStatus(_ context.Context, status *entities.TiffinDailyStatus) error {
	for _, d := range f.daily {
		if d.SubscriberID == status.SubscriberID && d.Date.Equal(status.Date) {
			d.Eaten = status.Eaten
			d.Status = status.Status
			return nil
		}
	}
	f.daily = append(f.daily, status)
	return nil
}

type fakeUserRepository struct{}

func (fakeUserRepository) CreateUser(_ context.Context, _ *entities.User) error { return nil }
func (fakeUserRepository) GetUserByID(_ context.Context, _ string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (fakeUserRepository) GetUserByEmail(_ context.Context, _ string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (fakeUserRepository) UpdateUser(_ context.Context, _ *entities.User) error { return nil }

func newTestService() (TiffinService, *fakeTiffinRepository) {
	repo := newFakeTiffinRepository()
	return NewTiffinService(repo, fakeUserRepository{}), repo
}

func seedTiffin(repo *fakeTiffinRepository, ownerID uuid.UUID) *entities.Tiffin {
	t := &entities.Tiffin{
		ID:                  uuid.New(),
		Name:                "Sharma Tiffins",
		Status:              "Active",
		OwnerID:             ownerID,
		Price:               2200,
		ProvidesMonthlyMess: true,
	}
	repo.tiffins[t.ID] = t
	return t
}

func TestMonthlyMessScheduling(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	owner := uuid.New()

	requestStart := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	messStart := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	created, err := svc.CreateTiffin(ctx, domain.CreateTiffinRequest{
		Name:                "Sharma Tiffins",
		Price:               2200,
		ProvidesMonthlyMess: true,
		RequestStartDate:    &requestStart,
		MessStartDate:       &messStart,
	}, owner.String())
	if err != nil {
		t.Fatalf("create: unexpected error %v", err)
	}
	if created.RequestStartDate == nil || !created.RequestStartDate.Equal(requestStart) {
		t.Fatalf("request_start_date = %v, want %v", created.RequestStartDate, requestStart)
	}
	if created.MessStartDate == nil || !created.MessStartDate.Equal(messStart) {
		t.Fatalf("mess_start_date = %v, want %v", created.MessStartDate, messStart)
	}
	if created.MessApproved {
		t.Fatal("a new mess must not start out approved")
	}

	// Approval is a separate toggle, applied via update.
	approved := true
	if err := svc.UpdateTiffin(ctx, created.ID, domain.UpdateTiffinRequest{MessApproved: &approved}, owner.String()); err != nil {
		t.Fatalf("approve mess: unexpected error %v", err)
	}

	got, err := svc.GetTiffinByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: unexpected error %v", err)
	}
	if !got.MessApproved {
		t.Fatal("mess approval toggle not persisted")
	}
	if got.MessStartDate == nil || !got.MessStartDate.Equal(messStart) {
		t.Fatalf("approval must not disturb mess_start_date, got %v", got.MessStartDate)
	}

	// The toggle goes both ways.
	revoked := false
	if err := svc.UpdateTiffin(ctx, created.ID, domain.UpdateTiffinRequest{MessApproved: &revoked}, owner.String()); err != nil {
		t.Fatalf("revoke mess: unexpected error %v", err)
	}
	tiffinID, _ := uuid.Parse(created.ID)
	if repo.tiffins[tiffinID].MessApproved {
		t.Fatal("mess approval not revocable")
	}
}

func TestRequestMessDuplicateBlocked(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	owner := uuid.New()
	student := uuid.New()
	tf := seedTiffin(repo, owner)

	if _, err := svc.RequestMess(ctx, tf.ID.String(), student.String()); err != nil {
		t.Fatalf("first request: unexpected error %v", err)
	}
	if _, err := svc.RequestMess(ctx, tf.ID.String(), student.String()); !errors.Is(err, domain.ErrDuplicateRequest) {
		t.Fatalf("duplicate: err = %v, want ErrDuplicateRequest", err)
	}
}

func TestApprovalCreatesSubscriber(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	owner := uuid.New()
	student := uuid.New()
	tf := seedTiffin(repo, owner)

	if _, err := svc.RequestMess(ctx, tf.ID.String(), student.String()); err != nil {
		t.Fatalf("request: unexpected error %v", err)
	}

	res, err := svc.UpdateRequestStatus(ctx, tf.ID.String(), student.String(), "approved", owner.String())
	if err != nil {
		t.Fatalf("approve: unexpected error %v", err)
	}
	if res.ApprovedAt == nil {
		t.Fatal("approved request has no approval timestamp")
	}

	subs, err := svc.GetSubscribers(ctx, tf.ID.String(), owner.String())
	if err != nil {
		t.Fatalf("subscribers: unexpected error %v", err)
	}
	if len(subs) != 1 || subs[0].UserID != student.String() {
		t.Fatalf("subscriber not created on approval: %+v", subs)
	}
	if !subs[0].JoinedAt.Equal(*res.ApprovedAt) {
		t.Fatalf("joined_at = %v, want approval time %v", subs[0].JoinedAt, *res.ApprovedAt)
	}
}

func TestRejectionCreatesNoSubscriber(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	owner := uuid.New()
	student := uuid.New()
	tf := seedTiffin(repo, owner)

	if _, err := svc.RequestMess(ctx, tf.ID.String(), student.String()); err != nil {
		t.Fatalf("request: unexpected error %v", err)
	}

	res, err := svc.UpdateRequestStatus(ctx, tf.ID.String(), student.String(), "rejected", owner.String())
	if err != nil {
		t.Fatalf("reject: unexpected error %v", err)
	}
	if res.ApprovedAt != nil {
		t.Fatalf("rejected request carries approval timestamp %v", res.ApprovedAt)
	}
	if len(repo.subscribers) != 0 {
		t.Fatalf("rejection must not create subscribers, got %d", len(repo.subscribers))
	}
}

func TestGetSubscribersOnlyOwner(t *testing.T) {
	svc, repo := newTestService()
	tf := seedTiffin(repo, uuid.New())

	_, err := svc.GetSubscribers(context.Background(), tf.ID.String(), uuid.NewString())
	if !errors.Is(err, domain.ErrUserNotAllowed) {
		t.Fatalf("err = %v, want ErrUserNotAllowed", err)
	}
}

func TestMarkDailyStatus(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	owner := uuid.New()
	student := uuid.New()
	tf := seedTiffin(repo, owner)

	if _, err := svc.RequestMess(ctx, tf.ID.String(), student.String()); err != nil {
		t.Fatalf("request: unexpected error %v", err)
	}
	if _, err := svc.UpdateRequestStatus(ctx, tf.ID.String(), student.String(), "approved", owner.String()); err != nil {
		t.Fatalf("approve: unexpected error %v", err)
	}

	req := domain.MarkDailyStatusRequest{Date: "2026-08-30", Eaten: true, Status: "accepted"}
	if err := svc.MarkDailyStatus(ctx, tf.ID.String(), student.String(), req); err != nil {
		t.Fatalf("mark: unexpected error %v", err)
	}
	if len(repo.daily) != 1 || !repo.daily[0].Eaten {
		t.Fatalf("daily status not recorded: %+v", repo.daily)
	}

	// Re-marking the same day overwrites instead of duplicating.
	req.Eaten = false
	req.Status = "rejected"
	if err := svc.MarkDailyStatus(ctx, tf.ID.String(), student.String(), req); err != nil {
		t.Fatalf("remark: unexpected error %v", err)
	}
	if len(repo.daily) != 1 || repo.daily[0].Eaten || repo.daily[0].Status != "rejected" {
		t.Fatalf("daily status not upserted: %+v", repo.daily)
	}
}

func TestMarkDailyStatusRequiresSubscription(t *testing.T) {
	svc, repo := newTestService()
	tf := seedTiffin(repo, uuid.New())

	err := svc.MarkDailyStatus(context.Background(), tf.ID.String(), uuid.NewString(), domain.MarkDailyStatusRequest{
		Date:   "2026-08-30",
		Status: "accepted",
	})
	if !errors.Is(err, domain.ErrSubscriberNotFound) {
		t.Fatalf("err = %v, want ErrSubscriberNotFound", err)
	}
}
