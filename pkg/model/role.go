package model

import (
	"time"

	"school-in-go/pkg/rbac"
)

// Role is a named, reusable bundle of permissions assignable to users.
type Role struct {
	ID          string           `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name        string           `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Description string           `gorm:"column:description" json:"description,omitempty"`
	Permissions rbac.Permissions `gorm:"column:permissions;type:jsonb" json:"permissions"`
	Active      bool             `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Role) TableName() string {
	return "roles"
}

// UserRole is the user/role association. The composite primary key is
// what makes assignment a set operation: inserting an existing pair is
// a no-op at the database level.
type UserRole struct {
	UserID    string    `gorm:"column:user_id;primaryKey;type:uuid" json:"user_id"`
	RoleID    string    `gorm:"column:role_id;primaryKey;type:uuid" json:"role_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
