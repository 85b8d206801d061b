package policy

import (
	"fmt"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server/store"
)

// RoleStore is the slice of the roles store the loader needs.
type RoleStore interface {
	FetchRoleByName(name string) (*model.Role, error)
	CreateRole(role *model.Role) error
	UpdateRole(role *model.Role) error
	AssignRole(userID, roleID string) ([]model.Role, error)
}

// UserStore is the slice of the users store the loader needs.
type UserStore interface {
	FetchUserByLogin(login string) (*model.User, error)
}

// Summary reports what a load changed.
type Summary struct {
	RolesCreated  int
	RolesUpdated  int
	RolesAssigned int
}

// Loader applies role documents to storage.
type Loader struct {
	roles RoleStore
	users UserStore
}

// NewLoader creates a loader over the given stores.
func NewLoader(roles RoleStore, users UserStore) *Loader {
	return &Loader{roles: roles, users: users}
}

// Load applies the document. Roles are created or updated by name,
// then assignments are applied. Assigning an already-held role is a
// no-op, so reloading the same document is safe.
func (l *Loader) Load(doc *Document) (Summary, error) {
	var summary Summary

	for _, def := range doc.Roles {
		existing, err := l.roles.FetchRoleByName(def.Name)
		if err != nil {
			if !store.IsNotFound(err) {
				return summary, err
			}
			role := model.Role{
				Name:        def.Name,
				Description: def.Description,
				Permissions: def.Permissions.Permissions,
				Active:      true,
			}
			if err := l.roles.CreateRole(&role); err != nil {
				return summary, fmt.Errorf("failed to create role %q: %w", def.Name, err)
			}
			summary.RolesCreated++
			continue
		}

		existing.Permissions = def.Permissions.Permissions
		if def.Description != "" {
			existing.Description = def.Description
		}
		if err := l.roles.UpdateRole(existing); err != nil {
			return summary, fmt.Errorf("failed to update role %q: %w", def.Name, err)
		}
		summary.RolesUpdated++
	}

	for _, assignment := range doc.Assignments {
		user, err := l.users.FetchUserByLogin(assignment.User)
		if err != nil {
			return summary, fmt.Errorf("user %q: %w", assignment.User, err)
		}

		for _, roleName := range assignment.Roles {
			role, err := l.roles.FetchRoleByName(roleName)
			if err != nil {
				return summary, fmt.Errorf("role %q: %w", roleName, err)
			}
			if _, err := l.roles.AssignRole(user.ID, role.ID); err != nil {
				return summary, fmt.Errorf("failed to assign %q to %q: %w", roleName, assignment.User, err)
			}
			summary.RolesAssigned++
		}
	}

	return summary, nil
}
