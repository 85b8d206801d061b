package gorm

import (
	"errors"

	"gorm.io/gorm"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server/store"
)

// Ensure TeachersStore implements store.TeachersStore
var _ store.TeachersStore = (*TeachersStore)(nil)

// TeachersStore implements store.TeachersStore using GORM
type TeachersStore struct {
	db *gorm.DB
}

// NewTeachersStore creates a new TeachersStore
func NewTeachersStore(db *gorm.DB) *TeachersStore {
	return &TeachersStore{db: db}
}

func (s *TeachersStore) CreateTeacher(teacher *model.Teacher) error {
	return s.db.Create(teacher).Error
}

func (s *TeachersStore) FetchTeacher(id string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := s.db.First(&teacher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.NotFound("teacher", id)
	}
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (s *TeachersStore) ListTeachers(schoolID string) ([]model.Teacher, error) {
	query := s.db.Order("last_name, first_name")
	if schoolID != "" {
		query = query.Where("school_id = ?", schoolID)
	}

	var teachers []model.Teacher
	if err := query.Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}

func (s *TeachersStore) UpdateTeacher(teacher *model.Teacher) error {
	var exists bool
	s.db.Raw(`SELECT EXISTS(SELECT 1 FROM teachers WHERE id = ?)`, teacher.ID).Scan(&exists)
	if !exists {
		return store.NotFound("teacher", teacher.ID)
	}
	return s.db.Save(teacher).Error
}

func (s *TeachersStore) DeleteTeacher(id string) error {
	result := s.db.Exec(`DELETE FROM teachers WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.NotFound("teacher", id)
	}
	return nil
}
