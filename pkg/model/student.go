package model

import "time"

// Student is a pupil enrolled at a school.
type Student struct {
	ID            string     `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	SchoolID      string     `gorm:"column:school_id;not null;index;type:uuid" json:"school_id"`
	FirstName     string     `gorm:"column:first_name;not null" json:"first_name"`
	LastName      string     `gorm:"column:last_name;not null" json:"last_name"`
	Gender        string     `gorm:"column:gender;type:varchar(10)" json:"gender,omitempty"`
	DateOfBirth   *time.Time `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	GuardianName  string     `gorm:"column:guardian_name" json:"guardian_name,omitempty"`
	GuardianPhone string     `gorm:"column:guardian_phone;type:varchar(20)" json:"guardian_phone,omitempty"`
	Active        bool       `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}
