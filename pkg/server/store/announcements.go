package store

import "school-in-go/pkg/model"

// AnnouncementsStore abstracts announcement storage operations.
type AnnouncementsStore interface {
	CreateAnnouncement(a *model.Announcement) error
	FetchAnnouncement(id string) (*model.Announcement, error)

	// ListAnnouncements returns school-scoped and global announcements,
	// newest first.
	ListAnnouncements(schoolID string) ([]model.Announcement, error)

	DeleteAnnouncement(id string) error
}
