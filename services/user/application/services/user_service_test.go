package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	appsvcs "github.com/ghuser/shareit/services/user/application/services"
	domain "github.com/ghuser/shareit/services/user/domain"
	"github.com/ghuser/shareit/services/user/domain/models"
)

type userRepoMock struct {
	saveFn    func(ctx context.Context, u *models.User) error
	updateFn  func(ctx context.Context, u *models.User) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*models.User, error)
	findAllFn func(ctx context.Context) ([]*models.User, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *userRepoMock) Save(ctx context.Context, u *models.User) error   { return m.saveFn(ctx, u) }
func (m *userRepoMock) Update(ctx context.Context, u *models.User) error { return m.updateFn(ctx, u) }
func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.getByIDFn(ctx, id)
}
func (m *userRepoMock) FindAll(ctx context.Context) ([]*models.User, error) { return m.findAllFn(ctx) }
func (m *userRepoMock) Delete(ctx context.Context, id uuid.UUID) error      { return m.deleteFn(ctx, id) }

func TestCreateUser(t *testing.T) {
	var saved *models.User
	repo := &userRepoMock{
		saveFn: func(ctx context.Context, u *models.User) error {
			saved = u
			return nil
		},
	}

	svc := appsvcs.NewUserService(repo)
	u, err := svc.Create(context.Background(), "Alice", "a@x.com")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.Name != "Alice" || u.Email != "a@x.com" {
		t.Errorf("got %+v", u)
	}
	if saved == nil || saved.ID != u.ID {
		t.Error("user was not saved")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := &userRepoMock{
		saveFn: func(ctx context.Context, u *models.User) error {
			return domain.ErrEmailAlreadyExists
		},
	}

	svc := appsvcs.NewUserService(repo)
	if _, err := svc.Create(context.Background(), "Carol", "a@x.com"); !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Fatalf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestUpdateUserPatchSemantics(t *testing.T) {
	id := uuid.New()
	repo := &userRepoMock{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*models.User, error) {
			return &models.User{ID: id, Name: "Alice", Email: "a@x.com"}, nil
		},
		updateFn: func(ctx context.Context, u *models.User) error { return nil },
	}
	svc := appsvcs.NewUserService(repo)

	name := "Alicia"
	u, err := svc.Update(context.Background(), id, &name, nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if u.Name != "Alicia" {
		t.Errorf("name = %q, want Alicia", u.Name)
	}
	if u.Email != "a@x.com" {
		t.Errorf("email changed to %q; nil field must be preserved", u.Email)
	}
}

func TestUpdateUserNotFound(t *testing.T) {
	repo := &userRepoMock{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	svc := appsvcs.NewUserService(repo)

	if _, err := svc.Update(context.Background(), uuid.New(), nil, nil); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestDeleteUserIdempotent(t *testing.T) {
	calls := 0
	repo := &userRepoMock{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			calls++
			return nil
		},
	}
	svc := appsvcs.NewUserService(repo)

	id := uuid.New()
	for range 2 {
		if err := svc.Delete(context.Background(), id); err != nil {
			t.Fatalf("Delete: %v", err)
		}
	}
	if calls != 2 {
		t.Errorf("delete calls = %d, want 2", calls)
	}
}

func TestListUsers(t *testing.T) {
	repo := &userRepoMock{
		findAllFn: func(ctx context.Context) ([]*models.User, error) {
			return []*models.User{{Name: "Alice"}, {Name: "Bob"}}, nil
		},
	}
	svc := appsvcs.NewUserService(repo)

	users, err := svc.List(context.Background())
	if err != nil || len(users) != 2 {
		t.Fatalf("List = %v, %v; want 2 users", users, err)
	}
}
