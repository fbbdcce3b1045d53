package domain

import "errors"

// Sentinel errors for the item catalog. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemForbidden indicates the caller is not the item's owner.
	ErrItemForbidden = errors.New("only the owner may edit the item")

	// ErrItemAlreadyExists indicates a uniqueness violation at save time.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrCommentNotAllowed indicates the author has no finished approved
	// booking for the item.
	ErrCommentNotAllowed = errors.New("comments require a completed booking of the item")
)
