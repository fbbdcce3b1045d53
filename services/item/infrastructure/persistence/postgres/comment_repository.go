package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/shareit/pkg/database"
	"github.com/ghuser/shareit/services/item/domain/models"
)

const commentColumns = `id, text, item_id, author_id, author_name, created`

// CommentRepository implements repositories.CommentRepository against
// PostgreSQL. The author's name is denormalized into the row at save time so
// reads need no join against users.
type CommentRepository struct {
	db *database.Database
}

// NewCommentRepository returns a CommentRepository backed by the given pool.
func NewCommentRepository(db *database.Database) *CommentRepository {
	return &CommentRepository{db: db}
}

// Save persists a new comment.
func (r *CommentRepository) Save(ctx context.Context, comment *models.Comment) error {
	_, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO comments (id, text, item_id, author_id, author_name, created)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		comment.ID, comment.Text, comment.ItemID, comment.AuthorID, comment.AuthorName, comment.Created,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// FindByItem returns all comments on an item, oldest first.
func (r *CommentRepository) FindByItem(ctx context.Context, itemID uuid.UUID) ([]*models.Comment, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE item_id = $1 ORDER BY created ASC`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	comments := []*models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// FindByItems batch-loads comments for several items, grouped by item id,
// oldest first within each group.
func (r *CommentRepository) FindByItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]*models.Comment, error) {
	out := make(map[uuid.UUID][]*models.Comment, len(itemIDs))
	if len(itemIDs) == 0 {
		return out, nil
	}

	placeholders, args := inClause(itemIDs)
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+commentColumns+` FROM comments
		 WHERE item_id IN (`+placeholders+`)
		 ORDER BY created ASC`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query comments by items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		out[c.ItemID] = append(out[c.ItemID], &c)
	}
	return out, rows.Err()
}
