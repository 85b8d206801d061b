package gorm

import (
	"errors"

	"gorm.io/gorm"

	"school-in-go/pkg/model"
	"school-in-go/pkg/server/store"
)

// Ensure AnnouncementsStore implements store.AnnouncementsStore
var _ store.AnnouncementsStore = (*AnnouncementsStore)(nil)

// AnnouncementsStore implements store.AnnouncementsStore using GORM
type AnnouncementsStore struct {
	db *gorm.DB
}

// NewAnnouncementsStore creates a new AnnouncementsStore
func NewAnnouncementsStore(db *gorm.DB) *AnnouncementsStore {
	return &AnnouncementsStore{db: db}
}

func (s *AnnouncementsStore) CreateAnnouncement(a *model.Announcement) error {
	return s.db.Create(a).Error
}

func (s *AnnouncementsStore) FetchAnnouncement(id string) (*model.Announcement, error) {
	var a model.Announcement
	err := s.db.First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.NotFound("announcement", id)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListAnnouncements returns school-scoped and global announcements,
// newest first. An empty schoolID returns only the global ones.
func (s *AnnouncementsStore) ListAnnouncements(schoolID string) ([]model.Announcement, error) {
	query := s.db.Order("created_at DESC")
	if schoolID != "" {
		query = query.Where("school_id = ? OR school_id IS NULL", schoolID)
	} else {
		query = query.Where("school_id IS NULL")
	}

	var announcements []model.Announcement
	if err := query.Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

func (s *AnnouncementsStore) DeleteAnnouncement(id string) error {
	result := s.db.Exec(`DELETE FROM announcements WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.NotFound("announcement", id)
	}
	return nil
}
