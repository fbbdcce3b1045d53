package models

import (
	"github.com/google/uuid"
)

// User is the aggregate for the user directory. Email is unique across the
// directory; uniqueness is enforced by the storage layer.
type User struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// NewUser constructs a User with a generated id.
func NewUser(name, email string) *User {
	return &User{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
	}
}

// Patch applies partial-update semantics: nil fields keep their current value.
func (u *User) Patch(name, email *string) {
	if name != nil {
		u.Name = *name
	}
	if email != nil {
		u.Email = *email
	}
}
