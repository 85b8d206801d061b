package store

import "school-in-go/pkg/model"

// RolesStore abstracts role storage and the user/role association.
//
// The association is a set keyed by role ID. Assigning an already-held
// role and removing an unheld one are both no-ops, and each mutation is
// a single atomic statement on the join table so concurrent writers on
// the same user cannot drop each other's changes.
type RolesStore interface {
	// CreateRole persists a new role.
	CreateRole(role *model.Role) error

	// FetchRole retrieves a role by ID, or ErrNotFound.
	FetchRole(id string) (*model.Role, error)

	// FetchRoleByName retrieves a role by its unique name, or ErrNotFound.
	FetchRoleByName(name string) (*model.Role, error)

	// ListRoles returns all roles ordered by name.
	ListRoles() ([]model.Role, error)

	// UpdateRole persists changes to an existing role, or ErrNotFound.
	UpdateRole(role *model.Role) error

	// DeleteRole removes a role and clears its user associations.
	// Users themselves are never deleted.
	DeleteRole(id string) error

	// AssignRole adds a role to a user's role set and returns the full
	// set after assignment. ErrNotFound if either side is missing.
	AssignRole(userID, roleID string) ([]model.Role, error)

	// RemoveRole removes a role from a user's role set and returns the
	// remaining set. ErrNotFound if the user is missing; removing an
	// unheld role is not an error.
	RemoveRole(userID, roleID string) ([]model.Role, error)

	// ListRolesForUser returns the user's current role set, or
	// ErrNotFound if the user is missing.
	ListRolesForUser(userID string) ([]model.Role, error)

	// ListUsersForRole returns the holders of a role projected to their
	// public shape, or ErrNotFound if the role is missing.
	ListUsersForRole(roleID string) ([]model.Summary, error)
}
