package model

import "time"

// FeeRecord is a fee charged to a student. Amounts are in cents to keep
// arithmetic exact.
type FeeRecord struct {
	ID          string     `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	StudentID   string     `gorm:"column:student_id;not null;index;type:uuid" json:"student_id"`
	Description string     `gorm:"column:description;not null" json:"description"`
	AmountCents int64      `gorm:"column:amount_cents;not null" json:"amount_cents"`
	Paid        bool       `gorm:"column:paid;not null;default:false" json:"paid"`
	DueDate     *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FeeRecord) TableName() string {
	return "fee_records"
}
