package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	itemmodels "github.com/ghuser/shareit/services/item/domain/models"
	itemrepos "github.com/ghuser/shareit/services/item/domain/repositories"
	appsvcs "github.com/ghuser/shareit/services/request/application/services"
	domain "github.com/ghuser/shareit/services/request/domain"
	"github.com/ghuser/shareit/services/request/domain/models"
	"github.com/ghuser/shareit/services/request/domain/repositories"
	userdomain "github.com/ghuser/shareit/services/user/domain"
	usermodels "github.com/ghuser/shareit/services/user/domain/models"
)

type requestRepoMock struct {
	saveFn            func(ctx context.Context, r *models.ItemRequest) error
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*models.ItemRequest, error)
	findByRequestorFn func(ctx context.Context, requestorID uuid.UUID, opts repositories.QueryOpts) ([]*models.ItemRequest, error)
	findOthersFn      func(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.ItemRequest, error)
}

func (m *requestRepoMock) Save(ctx context.Context, r *models.ItemRequest) error {
	return m.saveFn(ctx, r)
}
func (m *requestRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*models.ItemRequest, error) {
	return m.getByIDFn(ctx, id)
}
func (m *requestRepoMock) FindByRequestor(ctx context.Context, requestorID uuid.UUID, opts repositories.QueryOpts) ([]*models.ItemRequest, error) {
	return m.findByRequestorFn(ctx, requestorID, opts)
}
func (m *requestRepoMock) FindOthers(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.ItemRequest, error) {
	return m.findOthersFn(ctx, userID, opts)
}

type itemRepoMock struct {
	findByRequestIDsFn func(ctx context.Context, requestIDs []uuid.UUID) ([]*itemmodels.Item, error)
}

func (m *itemRepoMock) Save(ctx context.Context, item *itemmodels.Item) error   { return nil }
func (m *itemRepoMock) Update(ctx context.Context, item *itemmodels.Item) error { return nil }
func (m *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*itemmodels.Item, error) {
	return nil, nil
}
func (m *itemRepoMock) FindByOwner(ctx context.Context, ownerID uuid.UUID, opts itemrepos.QueryOpts) ([]*itemmodels.Item, error) {
	return nil, nil
}
func (m *itemRepoMock) Search(ctx context.Context, text string, opts itemrepos.QueryOpts) ([]*itemmodels.Item, error) {
	return nil, nil
}
func (m *itemRepoMock) FindByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]*itemmodels.Item, error) {
	return m.findByRequestIDsFn(ctx, requestIDs)
}
func (m *itemRepoMock) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type userRepoMock struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*usermodels.User, error)
}

func (m *userRepoMock) Save(ctx context.Context, u *usermodels.User) error   { return nil }
func (m *userRepoMock) Update(ctx context.Context, u *usermodels.User) error { return nil }
func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*usermodels.User, error) {
	return m.getByIDFn(ctx, id)
}
func (m *userRepoMock) FindAll(ctx context.Context) ([]*usermodels.User, error) { return nil, nil }
func (m *userRepoMock) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

func anyUser() *userRepoMock {
	return &userRepoMock{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*usermodels.User, error) {
			return &usermodels.User{ID: id, Name: "u", Email: "u@x.com"}, nil
		},
	}
}

func TestCreateRequestUnknownUser(t *testing.T) {
	users := &userRepoMock{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*usermodels.User, error) {
			return nil, userdomain.ErrUserNotFound
		},
	}

	svc := appsvcs.NewRequestService(&requestRepoMock{}, &itemRepoMock{}, users)
	_, err := svc.Create(context.Background(), uuid.New(), "need a ladder")
	if !errors.Is(err, userdomain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestCreateRequest(t *testing.T) {
	var saved *models.ItemRequest
	requests := &requestRepoMock{
		saveFn: func(ctx context.Context, r *models.ItemRequest) error {
			saved = r
			return nil
		},
	}

	svc := appsvcs.NewRequestService(requests, &itemRepoMock{}, anyUser())
	req, err := svc.Create(context.Background(), uuid.New(), "need a ladder")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if saved == nil || saved.ID != req.ID {
		t.Error("request was not saved")
	}
	if req.Created.IsZero() {
		t.Error("created timestamp missing")
	}
}

func TestGetRequestNotFound(t *testing.T) {
	requests := &requestRepoMock{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.ItemRequest, error) {
			return nil, domain.ErrRequestNotFound
		},
	}

	svc := appsvcs.NewRequestService(requests, &itemRepoMock{}, anyUser())
	_, err := svc.GetByID(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("err = %v, want ErrRequestNotFound", err)
	}
}

func TestGetRequestEnriched(t *testing.T) {
	requestID := uuid.New()
	requests := &requestRepoMock{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.ItemRequest, error) {
			return &models.ItemRequest{ID: requestID, Description: "ladder", Created: time.Now()}, nil
		},
	}
	items := &itemRepoMock{
		findByRequestIDsFn: func(ctx context.Context, requestIDs []uuid.UUID) ([]*itemmodels.Item, error) {
			return []*itemmodels.Item{
				{ID: uuid.New(), Name: "step ladder", RequestID: &requestID},
			}, nil
		},
	}

	svc := appsvcs.NewRequestService(requests, items, anyUser())
	details, err := svc.GetByID(context.Background(), uuid.New(), requestID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(details.Items) != 1 || details.Items[0].Name != "step ladder" {
		t.Errorf("items = %+v, want the fulfilling item", details.Items)
	}
}

func TestListByRequestorGroupsItems(t *testing.T) {
	requestor := uuid.New()
	reqA := &models.ItemRequest{ID: uuid.New(), RequestorID: requestor, Created: time.Now()}
	reqB := &models.ItemRequest{ID: uuid.New(), RequestorID: requestor, Created: time.Now().Add(-time.Hour)}

	requests := &requestRepoMock{
		findByRequestorFn: func(ctx context.Context, requestorID uuid.UUID, opts repositories.QueryOpts) ([]*models.ItemRequest, error) {
			return []*models.ItemRequest{reqA, reqB}, nil
		},
	}

	batchCalls := 0
	items := &itemRepoMock{
		findByRequestIDsFn: func(ctx context.Context, requestIDs []uuid.UUID) ([]*itemmodels.Item, error) {
			batchCalls++
			if len(requestIDs) != 2 {
				t.Errorf("batch = %d ids, want 2", len(requestIDs))
			}
			return []*itemmodels.Item{
				{ID: uuid.New(), Name: "for A", RequestID: &reqA.ID},
				{ID: uuid.New(), Name: "also for A", RequestID: &reqA.ID},
			}, nil
		},
	}

	svc := appsvcs.NewRequestService(requests, items, anyUser())
	details, err := svc.ListByRequestor(context.Background(), requestor, repositories.QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("ListByRequestor: %v", err)
	}

	if batchCalls != 1 {
		t.Errorf("batch calls = %d, want 1", batchCalls)
	}
	if len(details) != 2 {
		t.Fatalf("got %d requests, want 2", len(details))
	}
	if len(details[0].Items) != 2 || len(details[1].Items) != 0 {
		t.Errorf("item grouping wrong: %d/%d", len(details[0].Items), len(details[1].Items))
	}
}

func TestListOthersPassesCaller(t *testing.T) {
	caller := uuid.New()
	var gotExcluded uuid.UUID

	requests := &requestRepoMock{
		findOthersFn: func(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.ItemRequest, error) {
			gotExcluded = userID
			return []*models.ItemRequest{}, nil
		},
	}

	svc := appsvcs.NewRequestService(requests, &itemRepoMock{}, anyUser())
	if _, err := svc.ListOthers(context.Background(), caller, repositories.QueryOpts{Limit: 10}); err != nil {
		t.Fatalf("ListOthers: %v", err)
	}
	if gotExcluded != caller {
		t.Errorf("excluded user = %s, want caller %s", gotExcluded, caller)
	}
}
