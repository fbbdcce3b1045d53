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
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/shareit/pkg/database"
	pkgevents "github.com/ghuser/shareit/pkg/events"
	itemdomain "github.com/ghuser/shareit/services/item/domain"
	"github.com/ghuser/shareit/services/item/domain/events"
	"github.com/ghuser/shareit/services/item/domain/models"
	"github.com/ghuser/shareit/services/item/domain/repositories"
)

const uniqueViolation = "23505"

const itemColumns = `id, name, description, available, owner_id, request_id`

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// Save publishes ItemCreatedEvent in the same transaction as the insert, so
// the event and the row commit or roll back together.
type ItemRepository struct {
	db  *database.Database
	bus *pkgevents.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given pool and bus.
func NewItemRepository(db *database.Database, bus *pkgevents.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Save persists a new item and publishes item.created transactionally.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO items (id, name, description, available, owner_id, request_id)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.Name, item.Description, item.Available, item.OwnerID, item.RequestID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return itemdomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("insert item: %w", err)
		}
		return r.publishCreated(tx, item)
	})
}

// publishCreated writes the ItemCreatedEvent into the outbox within tx.
func (r *ItemRepository) publishCreated(tx *sql.Tx, item *models.Item) error {
	if r.bus == nil {
		return nil
	}

	pub, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("tx publisher: %w", err)
	}

	evt := events.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		OwnerID:    item.OwnerID,
		Name:       item.Name,
		Available:  item.Available,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal item created event: %w", err)
	}

	msg := message.NewMessage(evt.EventID.String(), payload)
	if err := pub.Publish(events.TopicItemCreated, msg); err != nil {
		return fmt.Errorf("publish item created: %w", err)
	}
	return nil
}

// Update persists changes to an existing item.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`UPDATE items SET name = $2, description = $3, available = $4 WHERE id = $1`,
			item.ID, item.Name, item.Description, item.Available,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return itemdomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("update item: %w", err)
		}
		return nil
	})
}

// GetByID returns ErrItemNotFound when no item matches.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// FindByOwner retrieves the owner's items ordered by id ascending.
func (r *ItemRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, opts repositories.QueryOpts) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items
		 WHERE owner_id = $1
		 ORDER BY id ASC
		 LIMIT $2 OFFSET $3`,
		ownerID, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query items by owner: %w", err)
	}
	return collectItems(rows)
}

// Search matches name or description case-insensitively among available items.
func (r *ItemRepository) Search(ctx context.Context, text string, opts repositories.QueryOpts) ([]*models.Item, error) {
	pattern := "%" + text + "%"
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items
		 WHERE available = TRUE
		   AND (name ILIKE $1 OR description ILIKE $1)
		 ORDER BY id ASC
		 LIMIT $2 OFFSET $3`,
		pattern, opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return collectItems(rows)
}

// FindByRequestIDs returns items listed against any of the given requests.
func (r *ItemRepository) FindByRequestIDs(ctx context.Context, requestIDs []uuid.UUID) ([]*models.Item, error) {
	if len(requestIDs) == 0 {
		return []*models.Item{}, nil
	}

	placeholders, args := inClause(requestIDs)
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE request_id IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query items by request ids: %w", err)
	}
	return collectItems(rows)
}

// Delete removes an item by id; deleting an absent id is a no-op.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var (
		item      models.Item
		requestID uuid.NullUUID
	)
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Available, &item.OwnerID, &requestID); err != nil {
		return nil, err
	}
	if requestID.Valid {
		item.RequestID = &requestID.UUID
	}
	return &item, nil
}

func collectItems(rows *sql.Rows) ([]*models.Item, error) {
	defer rows.Close() //nolint:errcheck

	items := []*models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// inClause builds "$1, $2, ..." placeholders and the matching args slice.
func inClause(ids []uuid.UUID) (string, []any) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	return strings.Join(placeholders, ", "), args
}

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
