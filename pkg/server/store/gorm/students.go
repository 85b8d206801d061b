package gorm

import (
	"errors"

	"gorm.io/gorm"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server/store"
)

// Ensure StudentsStore implements store.StudentsStore
var _ store.StudentsStore = (*StudentsStore)(nil)

// StudentsStore implements store.StudentsStore using GORM
type StudentsStore struct {
	db *gorm.DB
}

// NewStudentsStore creates a new StudentsStore
func NewStudentsStore(db *gorm.DB) *StudentsStore {
	return &StudentsStore{db: db}
}

func (s *StudentsStore) CreateStudent(student *model.Student) error {
	return s.db.Create(student).Error
}

func (s *StudentsStore) FetchStudent(id string) (*model.Student, error) {
	var student model.Student
	err := s.db.First(&student, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.NotFound("student", id)
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *StudentsStore) ListStudents(schoolID string, limit, offset int) ([]model.Student, error) {
	query := s.db.Order("last_name, first_name")
	if schoolID != "" {
		query = query.Where("school_id = ?", schoolID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var students []model.Student
	if err := query.Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (s *StudentsStore) UpdateStudent(student *model.Student) error {
	var exists bool
	s.db.Raw(`SELECT EXISTS(SELECT 1 FROM students WHERE id = ?)`, student.ID).Scan(&exists)
	if !exists {
		return store.NotFound("student", student.ID)
	}
	return s.db.Save(student).Error
}

func (s *StudentsStore) DeleteStudent(id string) error {
	result := s.db.Exec(`DELETE FROM students WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.NotFound("student", id)
	}
	return nil
}
