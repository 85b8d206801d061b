package gorm

import (
	"errors"

	"gorm.io/gorm"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server/store"
)

// Ensure RolesStore implements store.RolesStore
var _ store.RolesStore = (*RolesStore)(nil)

// RolesStore implements store.RolesStore using GORM
type RolesStore struct {
	db *gorm.DB
}

// NewRolesStore creates a new RolesStore
func NewRolesStore(db *gorm.DB) *RolesStore {
	return &RolesStore{db: db}
}

// CreateRole persists a new role
func (s *RolesStore) CreateRole(role *model.Role) error {
	return s.db.Create(role).Error
}

// FetchRole retrieves a role by ID
func (s *RolesStore) FetchRole(id string) (*model.Role, error) {
	var role model.Role
	err := s.db.First(&role, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.NotFound("role", id)
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// FetchRoleByName retrieves a role by its unique name
func (s *RolesStore) FetchRoleByName(name string) (*model.Role, error) {
	var role model.Role
	err := s.db.First(&role, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.NotFound("role", name)
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// ListRoles returns all roles ordered by name
func (s *RolesStore) ListRoles() ([]model.Role, error) {
	var roles []model.Role
	if err := s.db.Order("name").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// UpdateRole persists changes to an existing role
func (s *RolesStore) UpdateRole(role *model.Role) error {
	if !s.roleExists(role.ID) {
		return store.NotFound("role", role.ID)
	}
	return s.db.Save(role).Error
}

// DeleteRole removes a role and clears its user associations. Users
// holding the role are untouched.
func (s *RolesStore) DeleteRole(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM user_roles WHERE role_id = ?`, id).Error; err != nil {
			return err
		}
		result := tx.Exec(`DELETE FROM roles WHERE id = ?`, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.NotFound("role", id)
		}
		return nil
	})
}

// AssignRole adds a role to a user's role set. The insert is a single
// atomic statement keyed on (user_id, role_id), so re-assigning an
// already-held role is a no-op and concurrent assigns on the same user
// cannot drop each other's rows.
func (s *RolesStore) AssignRole(userID, roleID string) ([]model.Role, error) {
	if !s.userExists(userID) {
		return nil, store.NotFound("user", userID)
	}
	if !s.roleExists(roleID) {
		return nil, store.NotFound("role", roleID)
	}

	err := s.db.Exec(`
		INSERT INTO user_roles (user_id, role_id)
		VALUES (?, ?)
		ON CONFLICT DO NOTHING
	`, userID, roleID).Error
	if err != nil {
		return nil, err
	}

	return s.rolesForUser(userID)
}

// RemoveRole removes a role from a user's role set. Removing an unheld
// role deletes nothing and is not an error.
func (s *RolesStore) RemoveRole(userID, roleID string) ([]model.Role, error) {
	if !s.userExists(userID) {
		return nil, store.NotFound("user", userID)
	}

	err := s.db.Exec(`DELETE FROM user_roles WHERE user_id = ? AND role_id = ?`, userID, roleID).Error
	if err != nil {
		return nil, err
	}

	return s.rolesForUser(userID)
}

// ListRolesForUser returns the user's current role set
func (s *RolesStore) ListRolesForUser(userID string) ([]model.Role, error) {
	if !s.userExists(userID) {
		return nil, store.NotFound("user", userID)
	}
	return s.rolesForUser(userID)
}

// ListUsersForRole returns the holders of a role, id and email only
func (s *RolesStore) ListUsersForRole(roleID string) ([]model.Summary, error) {
	if !s.roleExists(roleID) {
		return nil, store.NotFound("role", roleID)
	}

	var summaries []model.Summary
	err := s.db.Raw(`
		SELECT u.id, u.email
		FROM users u
		JOIN user_roles ur ON ur.user_id = u.id
		WHERE ur.role_id = ?
		ORDER BY u.email
	`, roleID).Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *RolesStore) rolesForUser(userID string) ([]model.Role, error) {
	var roles []model.Role
	err := s.db.Raw(`
		SELECT r.*
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = ?
		ORDER BY r.name
	`, userID).Scan(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *RolesStore) userExists(id string) bool {
	var exists bool
	s.db.Raw(`SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`, id).Scan(&exists)
	return exists
}

func (s *RolesStore) roleExists(id string) bool {
	var exists bool
	s.db.Raw(`SELECT EXISTS(SELECT 1 FROM roles WHERE id = ?)`, id).Scan(&exists)
	return exists
}
