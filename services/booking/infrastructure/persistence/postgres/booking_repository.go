package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/shareit/pkg/database"
	pkgevents "github.com/ghuser/shareit/pkg/events"
	bookingdomain "github.com/ghuser/shareit/services/booking/domain"
	"github.com/ghuser/shareit/services/booking/domain/events"
	"github.com/ghuser/shareit/services/booking/domain/models"
	"github.com/ghuser/shareit/services/booking/domain/repositories"
)

const bookingColumns = `id, start_at, end_at, item_id, booker_id, status`

// BookingRepository implements repositories.BookingRepository against
// PostgreSQL. Update publishes BookingDecidedEvent in the same transaction as
// the status change.
type BookingRepository struct {
	db  *database.Database
	bus *pkgevents.EventBus
}

// NewBookingRepository returns a BookingRepository backed by the given pool
// and bus.
func NewBookingRepository(db *database.Database, bus *pkgevents.EventBus) *BookingRepository {
	return &BookingRepository{db: db, bus: bus}
}

// Save persists a new booking.
func (r *BookingRepository) Save(ctx context.Context, booking *models.Booking) error {
	_, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO bookings (id, start_at, end_at, item_id, booker_id, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		booking.ID, booking.Start, booking.End, booking.ItemID, booking.BookerID, string(booking.Status),
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// Update persists a status transition and publishes booking.decided
// transactionally when the booking has left WAITING.
func (r *BookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`UPDATE bookings SET status = $2 WHERE id = $1`,
			booking.ID, string(booking.Status),
		)
		if err != nil {
			return fmt.Errorf("update booking: %w", err)
		}
		if booking.Status == models.StatusWaiting {
			return nil
		}
		return r.publishDecided(ctx, tx, booking)
	})
}

// publishDecided writes the BookingDecidedEvent into the outbox within tx.
// The item's owner id is resolved inside the same transaction.
func (r *BookingRepository) publishDecided(ctx context.Context, tx *sql.Tx, booking *models.Booking) error {
	if r.bus == nil {
		return nil
	}

	var ownerID uuid.UUID
	if err := tx.QueryRowContext(ctx,
		`SELECT owner_id FROM items WHERE id = $1`, booking.ItemID,
	).Scan(&ownerID); err != nil {
		return fmt.Errorf("resolve item owner: %w", err)
	}

	pub, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("tx publisher: %w", err)
	}

	evt := events.BookingDecidedEvent{
		EventID:    uuid.New(),
		Version:    1,
		BookingID:  booking.ID,
		ItemID:     booking.ItemID,
		OwnerID:    ownerID,
		BookerID:   booking.BookerID,
		Status:     string(booking.Status),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal booking decided event: %w", err)
	}

	msg := message.NewMessage(evt.EventID.String(), payload)
	if err := pub.Publish(events.TopicBookingDecided, msg); err != nil {
		return fmt.Errorf("publish booking decided: %w", err)
	}
	return nil
}

// GetByID returns ErrBookingNotFound when no booking matches.
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var b models.Booking
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id,
	).Scan(&b.ID, &b.Start, &b.End, &b.ItemID, &b.BookerID, &b.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookingdomain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("query booking: %w", err)
	}
	return &b, nil
}

// FindByBooker returns the booker's bookings in the given state category,
// ordered by start descending.
func (r *BookingRepository) FindByBooker(ctx context.Context, bookerID uuid.UUID, state models.StateFilter, now time.Time, opts repositories.QueryOpts) ([]*models.Booking, error) {
	where, args := stateClause(state, now, 1, "")
	args = append([]any{bookerID}, args...)
	limitPos := len(args) + 1

	query := `SELECT ` + bookingColumns + ` FROM bookings
		 WHERE booker_id = $1` + where + `
		 ORDER BY start_at DESC
		 LIMIT $` + itoa(limitPos) + ` OFFSET $` + itoa(limitPos+1)
	args = append(args, opts.Limit, opts.Offset)

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings by booker: %w", err)
	}
	return collectBookings(rows)
}

// FindByOwner returns bookings of items owned by ownerID in the given state
// category, ordered by start descending.
func (r *BookingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, state models.StateFilter, now time.Time, opts repositories.QueryOpts) ([]*models.Booking, error) {
	where, args := stateClause(state, now, 1, "b.")
	args = append([]any{ownerID}, args...)
	limitPos := len(args) + 1

	query := `SELECT b.id, b.start_at, b.end_at, b.item_id, b.booker_id, b.status
		 FROM bookings b
		 JOIN items i ON i.id = b.item_id
		 WHERE i.owner_id = $1` + where + `
		 ORDER BY b.start_at DESC
		 LIMIT $` + itoa(limitPos) + ` OFFSET $` + itoa(limitPos+1)
	args = append(args, opts.Limit, opts.Offset)

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings by owner: %w", err)
	}
	return collectBookings(rows)
}

// FindByItems batch-loads all bookings for the given items.
func (r *BookingRepository) FindByItems(ctx context.Context, itemIDs []uuid.UUID) ([]*models.Booking, error) {
	if len(itemIDs) == 0 {
		return []*models.Booking{}, nil
	}

	placeholders := make([]string, len(itemIDs))
	args := make([]any, len(itemIDs))
	for i, id := range itemIDs {
		placeholders[i] = "$" + itoa(i+1)
		args[i] = id
	}

	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE item_id IN (`+strings.Join(placeholders, ", ")+`)`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query bookings by items: %w", err)
	}
	return collectBookings(rows)
}

// ExistsCompleted reports whether bookerID has an APPROVED booking of itemID
// that ended before now.
func (r *BookingRepository) ExistsCompleted(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1 AND booker_id = $2 AND status = $3 AND end_at < $4
		 )`,
		itemID, bookerID, string(models.StatusApproved), now,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query completed booking: %w", err)
	}
	return exists, nil
}

// stateClause renders the state-category predicate as an AND clause with
// columns qualified by prefix. Placeholders start after the first `base`
// positional arguments. CURRENT compares both window ends against the same
// captured now.
func stateClause(state models.StateFilter, now time.Time, base int, prefix string) (string, []any) {
	switch state {
	case models.StateCurrent:
		return fmt.Sprintf(" AND %sstart_at <= $%d AND %send_at >= $%d", prefix, base+1, prefix, base+2), []any{now, now}
	case models.StatePast:
		return fmt.Sprintf(" AND %send_at < $%d", prefix, base+1), []any{now}
	case models.StateFuture:
		return fmt.Sprintf(" AND %sstart_at > $%d", prefix, base+1), []any{now}
	case models.StateWaiting:
		return fmt.Sprintf(" AND %sstatus = $%d", prefix, base+1), []any{string(models.StatusWaiting)}
	case models.StateRejected:
		return fmt.Sprintf(" AND %sstatus = $%d", prefix, base+1), []any{string(models.StatusRejected)}
	default: // ALL
		return "", nil
	}
}

func collectBookings(rows *sql.Rows) ([]*models.Booking, error) {
	defer rows.Close() //nolint:errcheck

	bookings := []*models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.Start, &b.End, &b.ItemID, &b.BookerID, &b.Status); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}
