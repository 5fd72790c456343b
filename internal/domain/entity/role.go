package entity

// RoleName is the closed set of roles known to the system.
type RoleName string

const (
	RoleUser    RoleName = "ROLE_USER"
	RoleAdmin   RoleName = "ROLE_ADMIN"
	RoleVet     RoleName = "ROLE_VET"
	RoleShelter RoleName = "ROLE_SHELTER"
	RoleVisitor RoleName = "ROLE_VISITOR"
)

// AllRoleNames lists every seedable role, in seeding order.
func AllRoleNames() []RoleName {
	return []RoleName{RoleUser, RoleAdmin, RoleVet, RoleShelter, RoleVisitor}
}

// Valid reports whether the name belongs to the closed role set.
func (n RoleName) Valid() bool {
	switch n {
	case RoleUser, RoleAdmin, RoleVet, RoleShelter, RoleVisitor:
		return true
	}
	return false
}

// Role represents a user role in the system
type Role struct {
	ID   int      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name RoleName `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`

	// Relationships
	Users []User `gorm:"many2many:user_roles" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}
