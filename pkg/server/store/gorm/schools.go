package gorm

import (
	"errors"

	"gorm.io/gorm"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server/store"
)

// Ensure SchoolsStore implements store.SchoolsStore
var _ store.SchoolsStore = (*SchoolsStore)(nil)

// SchoolsStore implements store.SchoolsStore using GORM
type SchoolsStore struct {
	db *gorm.DB
}

// NewSchoolsStore creates a new SchoolsStore
func NewSchoolsStore(db *gorm.DB) *SchoolsStore {
	return &SchoolsStore{db: db}
}

func (s *SchoolsStore) CreateSchool(school *model.School) error {
	return s.db.Create(school).Error
}

func (s *SchoolsStore) FetchSchool(id string) (*model.School, error) {
	var school model.School
	err := s.db.First(&school, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.NotFound("school", id)
	}
	if err != nil {
		return nil, err
	}
	return &school, nil
}

func (s *SchoolsStore) ListSchools() ([]model.School, error) {
	var schools []model.School
	if err := s.db.Order("name").Find(&schools).Error; err != nil {
		return nil, err
	}
	return schools, nil
}

func (s *SchoolsStore) UpdateSchool(school *model.School) error {
	var exists bool
	s.db.Raw(`SELECT EXISTS(SELECT 1 FROM schools WHERE id = ?)`, school.ID).Scan(&exists)
	if !exists {
		return store.NotFound("school", school.ID)
	}
	return s.db.Save(school).Error
}

func (s *SchoolsStore) DeleteSchool(id string) error {
	result := s.db.Exec(`DELETE FROM schools WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.NotFound("school", id)
	}
	return nil
}
