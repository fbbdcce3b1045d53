package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/shareit/services/item/domain/models"
)

// CommentRepository is the persistence interface for comments. There are no
// update or delete operations: comments are immutable.
type CommentRepository interface {
	Save(ctx context.Context, comment *models.Comment) error

	// FindByItem returns all comments on an item, oldest first.
	FindByItem(ctx context.Context, itemID uuid.UUID) ([]*models.Comment, error)

	// FindByItems batch-loads comments for several items in one query.
	FindByItems(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]*models.Comment, error)
}
