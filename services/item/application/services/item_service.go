package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgcache "github.com/ghuser/shareit/pkg/cache"
	bookingmodels "github.com/ghuser/shareit/services/booking/domain/models"
	bookingrepos "github.com/ghuser/shareit/services/booking/domain/repositories"
	"github.com/ghuser/shareit/services/item/domain"
	"github.com/ghuser/shareit/services/item/domain/models"
	"github.com/ghuser/shareit/services/item/domain/repositories"
	requestrepos "github.com/ghuser/shareit/services/request/domain/repositories"
	userrepos "github.com/ghuser/shareit/services/user/domain/repositories"
)

// BookingSummary is the slim next/last booking projection attached to an item
// when its owner asks for it.
type BookingSummary struct {
	ID       uuid.UUID
	BookerID uuid.UUID
}

// ItemDetails is an item enriched for read endpoints: comments always, the
// next/last booking summary only when the caller owns the item.
type ItemDetails struct {
	Item        *models.Item
	NextBooking *BookingSummary
	LastBooking *BookingSummary
	Comments    []*models.Comment
}

// ItemService orchestrates catalog and comment operations.
// Event publishing is handled by the repository layer (outbox pattern).
// The bare item record is served from Redis when available; booking and
// comment enrichment always hits the database.
type ItemService struct {
	items    repositories.ItemRepository
	comments repositories.CommentRepository
	users    userrepos.UserRepository
	requests requestrepos.RequestRepository
	bookings bookingrepos.BookingRepository
	cache    *pkgcache.ItemCache
}

// NewItemService returns an ItemService wired with the given collaborators.
func NewItemService(
	items repositories.ItemRepository,
	comments repositories.CommentRepository,
	users userrepos.UserRepository,
	requests requestrepos.RequestRepository,
	bookings bookingrepos.BookingRepository,
	itemCache *pkgcache.ItemCache,
) *ItemService {
	return &ItemService{
		items:    items,
		comments: comments,
		users:    users,
		requests: requests,
		bookings: bookings,
		cache:    itemCache,
	}
}

// Create lists a new item for ownerID. When requestID is set the item is
// recorded as fulfilling that request; the request must exist.
func (s *ItemService) Create(ctx context.Context, ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID) (*models.Item, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("get owner: %w", err)
	}

	if requestID != nil {
		if _, err := s.requests.GetByID(ctx, *requestID); err != nil {
			return nil, fmt.Errorf("get request: %w", err)
		}
	}

	item := models.NewItem(ownerID, name, description, available, requestID)
	if err := s.items.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	return item, nil
}

// Update applies a partial patch; only the owner may edit.
func (s *ItemService) Update(ctx context.Context, itemID, callerID uuid.UUID, name, description *string, available *bool) (*models.Item, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if item.OwnerID != callerID {
		return nil, domain.ErrItemForbidden
	}

	item.Patch(name, description, available)

	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), item.ID)
	}
	return item, nil
}

// Delete removes an item unconditionally; no ownership check is exposed.
func (s *ItemService) Delete(ctx context.Context, itemID uuid.UUID) error {
	if err := s.items.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), itemID)
	}
	return nil
}

// GetByID returns the item with comments, and with the next/last booking
// summary only when callerID owns it. The bare record is read through the
// cache; a miss falls back to Postgres and warms the cache asynchronously.
func (s *ItemService) GetByID(ctx context.Context, callerID, itemID uuid.UUID) (*ItemDetails, error) {
	item, err := s.getItemCached(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	details := &ItemDetails{Item: item}

	if item.OwnerID == callerID {
		now := time.Now().UTC()
		bookings, err := s.bookings.FindByItems(ctx, []uuid.UUID{item.ID})
		if err != nil {
			return nil, fmt.Errorf("load bookings: %w", err)
		}
		details.NextBooking, details.LastBooking = bookingSummaries(bookings, now)
	}

	comments, err := s.comments.FindByItem(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	details.Comments = comments

	return details, nil
}

// ListByOwner returns the owner's items sorted by id ascending, each enriched
// with its comments and booking summary. Bookings and comments are
// batch-loaded over the whole page rather than queried per item.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID uuid.UUID, opts repositories.QueryOpts) ([]*ItemDetails, error) {
	items, err := s.items.FindByOwner(ctx, ownerID, opts)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if len(items) == 0 {
		return []*ItemDetails{}, nil
	}

	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	bookings, err := s.bookings.FindByItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	byItem := make(map[uuid.UUID][]*bookingmodels.Booking)
	for _, b := range bookings {
		byItem[b.ItemID] = append(byItem[b.ItemID], b)
	}

	commentsByItem, err := s.comments.FindByItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}

	now := time.Now().UTC()
	out := make([]*ItemDetails, 0, len(items))
	for _, it := range items {
		d := &ItemDetails{Item: it, Comments: commentsByItem[it.ID]}
		d.NextBooking, d.LastBooking = bookingSummaries(byItem[it.ID], now)
		out = append(out, d)
	}
	return out, nil
}

// Search returns available items matching text in name or description,
// case-insensitively. Blank text returns an empty result without touching
// storage.
func (s *ItemService) Search(ctx context.Context, text string, opts repositories.QueryOpts) ([]*models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []*models.Item{}, nil
	}

	items, err := s.items.Search(ctx, text, opts)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return items, nil
}

// CreateComment lets authorID comment on itemID, but only with a qualifying
// rental: an APPROVED booking on the item that ended before now.
func (s *ItemService) CreateComment(ctx context.Context, itemID, authorID uuid.UUID, text string) (*models.Comment, error) {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	now := time.Now().UTC()
	ok, err := s.bookings.ExistsCompleted(ctx, item.ID, author.ID, now)
	if err != nil {
		return nil, fmt.Errorf("check qualifying booking: %w", err)
	}
	if !ok {
		return nil, domain.ErrCommentNotAllowed
	}

	comment := models.NewComment(item.ID, author.ID, author.Name, text, now)
	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, fmt.Errorf("save comment: %w", err)
	}
	return comment, nil
}

// getItemCached is the read-through path for the bare item record.
func (s *ItemService) getItemCached(ctx context.Context, itemID uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		// A miss or a cache error both fall through to Postgres.
		if cached, err := s.cache.Get(ctx, itemID); err == nil {
			return cachedToItem(cached), nil
		}
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), itemToCached(item))
		}()
	}
	return item, nil
}

// bookingSummaries selects, from one item's bookings, the earliest APPROVED
// booking starting after now (next) and the booking with the latest end
// starting before now (last). The same captured now serves both selections.
func bookingSummaries(bookings []*bookingmodels.Booking, now time.Time) (next, last *BookingSummary) {
	var nextB, lastB *bookingmodels.Booking
	for _, b := range bookings {
		if b.Start.After(now) && b.Status == bookingmodels.StatusApproved {
			if nextB == nil || b.Start.Before(nextB.Start) {
				nextB = b
			}
		}
		if b.Start.Before(now) {
			if lastB == nil || b.End.After(lastB.End) {
				lastB = b
			}
		}
	}
	if nextB != nil {
		next = &BookingSummary{ID: nextB.ID, BookerID: nextB.BookerID}
	}
	if lastB != nil {
		last = &BookingSummary{ID: lastB.ID, BookerID: lastB.BookerID}
	}
	return next, last
}

func cachedToItem(c *pkgcache.CachedItem) *models.Item {
	item := &models.Item{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Available:   c.Available,
		OwnerID:     c.OwnerID,
	}
	if c.RequestID != "" {
		if rid, err := uuid.Parse(c.RequestID); err == nil {
			item.RequestID = &rid
		}
	}
	return item
}

func itemToCached(item *models.Item) *pkgcache.CachedItem {
	c := &pkgcache.CachedItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		OwnerID:     item.OwnerID,
	}
	if item.RequestID != nil {
		c.RequestID = item.RequestID.String()
	}
	return c
}
