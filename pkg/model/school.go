package model

import "time"

// School is a tenant. Students, teachers and most users hang off one.
type School struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Address   string    `gorm:"column:address" json:"address,omitempty"`
	Phone     string    `gorm:"column:phone;type:varchar(20)" json:"phone,omitempty"`
	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (School) TableName() string {
	return "schools"
}
