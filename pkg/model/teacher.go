package model

import "time"

// Teacher is a member of teaching staff at a school. UserID links the
// teacher to their login account when they have one.
type Teacher struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	SchoolID  string    `gorm:"column:school_id;not null;index;type:uuid" json:"school_id"`
	UserID    *string   `gorm:"column:user_id;type:uuid" json:"user_id,omitempty"`
	FirstName string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;not null" json:"last_name"`
	Phone     string    `gorm:"column:phone;type:varchar(20)" json:"phone,omitempty"`
	Specialty string    `gorm:"column:specialty" json:"specialty,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Teacher) TableName() string {
	return "teachers"
}
