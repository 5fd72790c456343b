package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username  string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Roles   []Role   `gorm:"many2many:user_roles" json:"roles,omitempty"`
	Vet     *Vet     `gorm:"foreignKey:UserID" json:"vet,omitempty"`
	Shelter *Shelter `gorm:"foreignKey:UserID" json:"shelter,omitempty"`
	Visitor *Visitor `gorm:"foreignKey:UserID" json:"visitor,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// HasRole reports whether the user currently holds the given role.
func (u *User) HasRole(name RoleName) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

func (u *User) IsShelter() bool {
	return u.HasRole(RoleShelter)
}

func (u *User) IsVet() bool {
	return u.HasRole(RoleVet)
}

func (u *User) IsVisitor() bool {
	return u.HasRole(RoleVisitor)
}

// RoleNames returns the user's role names, for token claims.
func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		names[i] = string(r.Name)
	}
	return names
}
