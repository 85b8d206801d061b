package gorm

import (
	"errors"

	"gorm.io/gorm"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server/store"
)

// Ensure FeesStore implements store.FeesStore
var _ store.FeesStore = (*FeesStore)(nil)

// FeesStore implements store.FeesStore using GORM
type FeesStore struct {
	db *gorm.DB
}

// NewFeesStore creates a new FeesStore
func NewFeesStore(db *gorm.DB) *FeesStore {
	return &FeesStore{db: db}
}

func (s *FeesStore) CreateFee(fee *model.FeeRecord) error {
	return s.db.Create(fee).Error
}

func (s *FeesStore) FetchFee(id string) (*model.FeeRecord, error) {
	var fee model.FeeRecord
	err := s.db.First(&fee, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.NotFound("fee", id)
	}
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

func (s *FeesStore) ListFeesForStudent(studentID string) ([]model.FeeRecord, error) {
	var fees []model.FeeRecord
	err := s.db.Where("student_id = ?", studentID).Order("created_at").Find(&fees).Error
	if err != nil {
		return nil, err
	}
	return fees, nil
}

// MarkFeePaid flips the paid flag in a single statement.
func (s *FeesStore) MarkFeePaid(id string) (*model.FeeRecord, error) {
	result := s.db.Exec(`UPDATE fee_records SET paid = true, updated_at = now() WHERE id = ?`, id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, store.NotFound("fee", id)
	}
	return s.FetchFee(id)
}

func (s *FeesStore) DeleteFee(id string) error {
	result := s.db.Exec(`DELETE FROM fee_records WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.NotFound("fee", id)
	}
	return nil
}
