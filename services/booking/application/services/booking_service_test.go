package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	appsvcs "github.com/ghuser/shareit/services/booking/application/services"
	bookingdomain "github.com/ghuser/shareit/services/booking/domain"
	"github.com/ghuser/shareit/services/booking/domain/models"
	"github.com/ghuser/shareit/services/booking/domain/repositories"
	itemdomain "github.com/ghuser/shareit/services/item/domain"
	itemmodels "github.com/ghuser/shareit/services/item/domain/models"
	itemrepos "github.com/ghuser/shareit/services/item/domain/repositories"
	userdomain "github.com/ghuser/shareit/services/user/domain"
	usermodels "github.com/ghuser/shareit/services/user/domain/models"
)

type bookingRepoMock struct {
	saveFn            func(ctx context.Context, b *models.Booking) error
	updateFn          func(ctx context.Context, b *models.Booking) error
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	findByBookerFn    func(ctx context.Context, bookerID uuid.UUID, state models.StateFilter, now time.Time, opts repositories.QueryOpts) ([]*models.Booking, error)
	findByOwnerFn     func(ctx context.Context, ownerID uuid.UUID, state models.StateFilter, now time.Time, opts repositories.QueryOpts) ([]*models.Booking, error)
	findByItemsFn     func(ctx context.Context, itemIDs []uuid.UUID) ([]*models.Booking, error)
	existsCompletedFn func(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error)
}

func (m *bookingRepoMock) Save(ctx context.Context, b *models.Booking) error { return m.saveFn(ctx, b) }
func (m *bookingRepoMock) Update(ctx context.Context, b *models.Booking) error {
	return m.updateFn(ctx, b)
}
func (m *bookingRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return m.getByIDFn(ctx, id)
}
func (m *bookingRepoMock) FindByBooker(ctx context.Context, bookerID uuid.UUID, state models.StateFilter, now time.Time, opts repositories.QueryOpts) ([]*models.Booking, error) {
	return m.findByBookerFn(ctx, bookerID, state, now, opts)
}
func (m *bookingRepoMock) FindByOwner(ctx context.Context, ownerID uuid.UUID, state models.StateFilter, now time.Time, opts repositories.QueryOpts) ([]*models.Booking, error) {
	return m.findByOwnerFn(ctx, ownerID, state, now, opts)
}
func (m *bookingRepoMock) FindByItems(ctx context.Context, itemIDs []uuid.UUID) ([]*models.Booking, error) {
	return m.findByItemsFn(ctx, itemIDs)
}
func (m *bookingRepoMock) ExistsCompleted(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
	return m.existsCompletedFn(ctx, itemID, bookerID, now)
}

type itemRepoMock struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*itemmodels.Item, error)
}

func (m *itemRepoMock) Save(ctx context.Context, item *itemmodels.Item) error   { return nil }
func (m *itemRepoMock) Update(ctx context.Context, item *itemmodels.Item) error { return nil }
func (m *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*itemmodels.Item, error) {
	return m.getByIDFn(ctx, id)
}
func (m *itemRepoMock) FindByOwner(ctx context.Context, ownerID uuid.UUID, opts itemrepos.QueryOpts) ([]*itemmodels.Item, error) {
	return nil, nil
}
func (m *itemRepoMock) Search(ctx context.Context, text string, opts itemrepos.QueryOpts) ([]*itemmodels.Item, error) {
	return nil, nil
}
func (m *itemRepoMock) FindByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]*itemmodels.Item, error) {
	return nil, nil
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

func existingUser(id uuid.UUID) *userRepoMock {
	return &userRepoMock{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*usermodels.User, error) {
			if got != id {
				return nil, userdomain.ErrUserNotFound
			}
			return &usermodels.User{ID: got, Name: "u", Email: "u@x.com"}, nil
		},
	}
}

func existingUsers(ids ...uuid.UUID) *userRepoMock {
	return &userRepoMock{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*usermodels.User, error) {
			for _, id := range ids {
				if got == id {
					return &usermodels.User{ID: got, Name: "u", Email: "u@x.com"}, nil
				}
			}
			return nil, userdomain.ErrUserNotFound
		},
	}
}

func availableItem(id, ownerID uuid.UUID) *itemRepoMock {
	return &itemRepoMock{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*itemmodels.Item, error) {
			if got != id {
				return nil, itemdomain.ErrItemNotFound
			}
			return &itemmodels.Item{ID: got, Name: "drill", Available: true, OwnerID: ownerID}, nil
		},
	}
}

func TestCreateBooking(t *testing.T) {
	booker, owner, itemID := uuid.New(), uuid.New(), uuid.New()
	start := time.Now().Add(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	var saved *models.Booking
	bookings := &bookingRepoMock{
		saveFn: func(ctx context.Context, b *models.Booking) error {
			saved = b
			return nil
		},
	}

	svc := appsvcs.NewBookingService(bookings, availableItem(itemID, owner), existingUser(booker))
	b, err := svc.Create(context.Background(), booker, itemID, start, end)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if b.Status != models.StatusWaiting {
		t.Errorf("status = %s, want WAITING", b.Status)
	}
	if saved == nil || saved.ID != b.ID {
		t.Error("booking was not saved")
	}
}

func TestCreateBookingUnknownBooker(t *testing.T) {
	svc := appsvcs.NewBookingService(&bookingRepoMock{}, availableItem(uuid.New(), uuid.New()), existingUser(uuid.New()))

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), time.Now(), time.Now().Add(time.Hour))
	if !errors.Is(err, userdomain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestCreateBookingUnavailableItem(t *testing.T) {
	booker, itemID := uuid.New(), uuid.New()
	items := &itemRepoMock{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*itemmodels.Item, error) {
			return &itemmodels.Item{ID: id, Available: false, OwnerID: uuid.New()}, nil
		},
	}

	svc := appsvcs.NewBookingService(&bookingRepoMock{}, items, existingUser(booker))
	_, err := svc.Create(context.Background(), booker, itemID, time.Now(), time.Now().Add(time.Hour))
	if !errors.Is(err, bookingdomain.ErrItemUnavailable) {
		t.Fatalf("err = %v, want ErrItemUnavailable", err)
	}
}

func TestCreateBookingOwnItem(t *testing.T) {
	owner, itemID := uuid.New(), uuid.New()

	svc := appsvcs.NewBookingService(&bookingRepoMock{}, availableItem(itemID, owner), existingUser(owner))
	_, err := svc.Create(context.Background(), owner, itemID, time.Now(), time.Now().Add(time.Hour))
	if !errors.Is(err, bookingdomain.ErrOwnItemBooking) {
		t.Fatalf("err = %v, want ErrOwnItemBooking", err)
	}
}

func TestDecideBooking(t *testing.T) {
	booker, owner, itemID := uuid.New(), uuid.New(), uuid.New()
	booking := models.NewBooking(itemID, booker, time.Now().Add(time.Hour), time.Now().Add(2*time.Hour))

	var updated *models.Booking
	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
		updateFn: func(ctx context.Context, b *models.Booking) error {
			updated = b
			return nil
		},
	}

	svc := appsvcs.NewBookingService(bookings, availableItem(itemID, owner), existingUser(owner))
	b, err := svc.Decide(context.Background(), owner, booking.ID, true)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if b.Status != models.StatusApproved {
		t.Errorf("status = %s, want APPROVED", b.Status)
	}
	if updated == nil {
		t.Error("decision was not persisted")
	}
}

func TestDecideBookingNotOwner(t *testing.T) {
	booker, owner, itemID := uuid.New(), uuid.New(), uuid.New()
	booking := models.NewBooking(itemID, booker, time.Now(), time.Now().Add(time.Hour))

	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
	}

	svc := appsvcs.NewBookingService(bookings, availableItem(itemID, owner), existingUser(booker))

	// Even the booker may not decide; only the item's owner.
	_, err := svc.Decide(context.Background(), booker, booking.ID, true)
	if !errors.Is(err, bookingdomain.ErrBookingAccessDenied) {
		t.Fatalf("err = %v, want ErrBookingAccessDenied", err)
	}
}

func TestDecideBookingTwice(t *testing.T) {
	booker, owner, itemID := uuid.New(), uuid.New(), uuid.New()
	booking := models.NewBooking(itemID, booker, time.Now(), time.Now().Add(time.Hour))
	if err := booking.Decide(true); err != nil {
		t.Fatal(err)
	}

	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
	}

	svc := appsvcs.NewBookingService(bookings, availableItem(itemID, owner), existingUser(owner))
	_, err := svc.Decide(context.Background(), owner, booking.ID, false)
	if !errors.Is(err, bookingdomain.ErrAlreadyDecided) {
		t.Fatalf("err = %v, want ErrAlreadyDecided", err)
	}
}

func TestGetBookingAccess(t *testing.T) {
	booker, owner, stranger, itemID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	booking := models.NewBooking(itemID, booker, time.Now(), time.Now().Add(time.Hour))

	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
	}
	svc := appsvcs.NewBookingService(bookings, availableItem(itemID, owner), existingUsers(booker, owner, stranger))

	for _, caller := range []uuid.UUID{booker, owner} {
		if _, err := svc.GetByID(context.Background(), caller, booking.ID); err != nil {
			t.Errorf("GetByID by party %s: %v", caller, err)
		}
	}
	if _, err := svc.GetByID(context.Background(), stranger, booking.ID); !errors.Is(err, bookingdomain.ErrBookingAccessDenied) {
		t.Errorf("stranger err = %v, want ErrBookingAccessDenied", err)
	}
}

func TestDecideBookingUnknownCaller(t *testing.T) {
	booker, owner, itemID := uuid.New(), uuid.New(), uuid.New()
	booking := models.NewBooking(itemID, booker, time.Now(), time.Now().Add(time.Hour))

	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
	}
	svc := appsvcs.NewBookingService(bookings, availableItem(itemID, owner), existingUsers(booker, owner))

	// A caller id that matches no user is not-found, not access-denied.
	_, err := svc.Decide(context.Background(), uuid.New(), booking.ID, true)
	if !errors.Is(err, userdomain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestGetBookingUnknownCaller(t *testing.T) {
	booker, owner, itemID := uuid.New(), uuid.New(), uuid.New()
	booking := models.NewBooking(itemID, booker, time.Now(), time.Now().Add(time.Hour))

	bookings := &bookingRepoMock{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
			return booking, nil
		},
	}
	svc := appsvcs.NewBookingService(bookings, availableItem(itemID, owner), existingUsers(booker, owner))

	_, err := svc.GetByID(context.Background(), uuid.New(), booking.ID)
	if !errors.Is(err, userdomain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestListByBookerUnsupportedState(t *testing.T) {
	booker := uuid.New()
	svc := appsvcs.NewBookingService(&bookingRepoMock{}, &itemRepoMock{}, existingUser(booker))

	_, err := svc.ListByBooker(context.Background(), booker, "SOMEDAY", repositories.QueryOpts{Limit: 10})
	if !errors.Is(err, bookingdomain.ErrUnsupportedState) {
		t.Fatalf("err = %v, want ErrUnsupportedState", err)
	}
}

func TestListUnknownUserCheckedBeforeState(t *testing.T) {
	// A missing user surfaces as not-found even when the state filter is also
	// invalid; existence is checked first.
	svc := appsvcs.NewBookingService(&bookingRepoMock{}, &itemRepoMock{}, existingUsers())

	if _, err := svc.ListByBooker(context.Background(), uuid.New(), "SOMEDAY", repositories.QueryOpts{Limit: 10}); !errors.Is(err, userdomain.ErrUserNotFound) {
		t.Errorf("booker err = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.ListByOwner(context.Background(), uuid.New(), "SOMEDAY", repositories.QueryOpts{Limit: 10}); !errors.Is(err, userdomain.ErrUserNotFound) {
		t.Errorf("owner err = %v, want ErrUserNotFound", err)
	}
}

func TestListByBookerPassesCapturedNow(t *testing.T) {
	booker := uuid.New()
	var gotState models.StateFilter
	var gotNow time.Time

	bookings := &bookingRepoMock{
		findByBookerFn: func(ctx context.Context, bookerID uuid.UUID, state models.StateFilter, now time.Time, opts repositories.QueryOpts) ([]*models.Booking, error) {
			gotState, gotNow = state, now
			return []*models.Booking{}, nil
		},
	}

	svc := appsvcs.NewBookingService(bookings, &itemRepoMock{}, existingUser(booker))
	before := time.Now().UTC()
	if _, err := svc.ListByBooker(context.Background(), booker, "current", repositories.QueryOpts{Limit: 10}); err != nil {
		t.Fatalf("ListByBooker: %v", err)
	}
	after := time.Now().UTC()

	if gotState != models.StateCurrent {
		t.Errorf("state = %s, want CURRENT", gotState)
	}
	if gotNow.Before(before) || gotNow.After(after) {
		t.Errorf("now = %v outside [%v, %v]", gotNow, before, after)
	}
}
