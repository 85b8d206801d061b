package store

import "school-in-go/pkg/model"

// UsersStore abstracts user storage operations.
type UsersStore interface {
	// CreateUser persists a new user.
	CreateUser(user *model.User) error

	// FetchUser retrieves a user by ID, or ErrNotFound.
	FetchUser(id string) (*model.User, error)

	// FetchUserByLogin retrieves a user by email or username, or ErrNotFound.
	FetchUserByLogin(login string) (*model.User, error)

	// ListUsers returns users ordered by creation time.
	ListUsers(limit, offset int) ([]model.User, error)

	// UpdateUser persists changes to an existing user, or ErrNotFound.
	UpdateUser(user *model.User) error

	// DeleteUser removes a user and clears its role associations.
	// Roles themselves are never deleted.
	DeleteUser(id string) error
}
