package model

import "time"

// Announcement is a notice written in markdown. A nil SchoolID means it
// is visible to every school.
type Announcement struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	SchoolID  *string   `gorm:"column:school_id;type:uuid" json:"school_id,omitempty"`
	AuthorID  string    `gorm:"column:author_id;not null;type:uuid" json:"author_id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Body      string    `gorm:"column:body;not null" json:"body"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}
