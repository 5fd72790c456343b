package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisitorSex mirrors the visitor form's sex field.
type VisitorSex string

const (
	VisitorSexMale   VisitorSex = "MALE"
	VisitorSexFemale VisitorSex = "FEMALE"
)

// Visitor represents a visitor profile, keyed by the owning user.
// Adopted animals and planned visits are resolved through
// AnimalRepository queries.
type Visitor struct {
	UserID    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	FirstName string     `gorm:"type:varchar(60);not null" json:"first_name"`
	LastName  string     `gorm:"type:varchar(60);not null" json:"last_name"`
	Phone     string     `gorm:"type:varchar(30);uniqueIndex;not null" json:"phone"`
	Address   string     `gorm:"type:varchar(255);not null" json:"address"`
	Sex       VisitorSex `gorm:"type:varchar(12);not null" json:"sex"`
	Age       int        `gorm:"not null" json:"age"`
	Bio       string     `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Visitor) TableName() string {
	return "visitors"
}

// CopyEditableFields applies the owner-editable fields from src.
// Adoption and visit associations are never overwritten here.
func (v *Visitor) CopyEditableFields(src *Visitor) {
	v.FirstName = src.FirstName
	v.LastName = src.LastName
	v.Phone = src.Phone
	v.Address = src.Address
	v.Sex = src.Sex
	v.Age = src.Age
	v.Bio = src.Bio
}
