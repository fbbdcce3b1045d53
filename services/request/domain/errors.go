package domain

import "errors"

// ErrRequestNotFound indicates the item request does not exist.
var ErrRequestNotFound = errors.New("item request not found")
