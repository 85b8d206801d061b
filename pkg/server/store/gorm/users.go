package gorm

import (
	"errors"

	"gorm.io/gorm"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// CreateUser persists a new user
func (s *UsersStore) CreateUser(user *model.User) error {
	return s.db.Create(user).Error
}

// FetchUser retrieves a user by ID
func (s *UsersStore) FetchUser(id string) (*model.User, error) {
	var user model.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.NotFound("user", id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FetchUserByLogin retrieves a user by email or username
func (s *UsersStore) FetchUserByLogin(login string) (*model.User, error) {
	var user model.User
	err := s.db.First(&user, "email = ? OR username = ?", login, login).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.NotFound("user", login)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns users ordered by creation time
func (s *UsersStore) ListUsers(limit, offset int) ([]model.User, error) {
	query := s.db.Order("created_at")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var users []model.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser persists changes to an existing user
func (s *UsersStore) UpdateUser(user *model.User) error {
	if !s.userExists(user.ID) {
		return store.NotFound("user", user.ID)
	}
	return s.db.Save(user).Error
}

// DeleteUser removes a user and clears its role associations. The join
// rows go first so the role side is untouched.
func (s *UsersStore) DeleteUser(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM user_roles WHERE user_id = ?`, id).Error; err != nil {
			return err
		}
		result := tx.Exec(`DELETE FROM users WHERE id = ?`, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.NotFound("user", id)
		}
		return nil
	})
}

func (s *UsersStore) userExists(id string) bool {
	var exists bool
	s.db.Raw(`SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`, id).Scan(&exists)
	return exists
}
