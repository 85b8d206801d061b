package model

import (
	"time"

	"school-in-go/pkg/rbac"
)

// User represents an account in the school service. The password hash is
// never serialized; callers that need a public projection use Summary.
type User struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	FirstName    string    `gorm:"column:first_name;not null" json:"first_name"`
	LastName     string    `gorm:"column:last_name;not null" json:"last_name"`
	Email        string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Username     string    `gorm:"column:username;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	SchoolID     *string   `gorm:"column:school_id;type:uuid" json:"school_id,omitempty"`
	Active       bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Roles []Role `gorm:"many2many:user_roles;" json:"roles,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Summary is the minimal public projection of a user: identifier and
// email only. It is what role-membership listings expose.
type Summary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Summary projects the user to its public shape.
func (u User) Summary() Summary {
	return Summary{ID: u.ID, Email: u.Email}
}

// PermissionDocs collects the permission documents of the user's roles
// for evaluation with rbac.HasPermission.
func PermissionDocs(roles []Role) []rbac.Permissions {
	docs := make([]rbac.Permissions, 0, len(roles))
	for _, role := range roles {
		docs = append(docs, role.Permissions)
	}
	return docs
}
