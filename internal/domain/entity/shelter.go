package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shelter represents a shelter profile, keyed by the owning user.
// Animals owned by the shelter are resolved through AnimalRepository
// rather than held as a slice here.
type Shelter struct {
	UserID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name       string     `gorm:"type:varchar(150);not null;index" json:"name"`
	Address    string     `gorm:"type:varchar(255)" json:"address,omitempty"`
	City       string     `gorm:"type:varchar(60)" json:"city,omitempty"`
	Phone      string     `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Authorized bool       `gorm:"not null;default:false" json:"authorized"`
	VetID      *uuid.UUID `gorm:"type:uuid;index" json:"vet_id,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Vet  *Vet `gorm:"foreignKey:VetID" json:"vet,omitempty"`
}

func (Shelter) TableName() string {
	return "shelters"
}

// ToggleAuthorization flips the admin gate. A de-authorized shelter
// cannot retain an assigned vet.
func (s *Shelter) ToggleAuthorization() {
	s.Authorized = !s.Authorized
	if !s.Authorized {
		s.ClearVet()
	}
}

// ClearVet drops the assigned vet reference.
func (s *Shelter) ClearVet() {
	s.VetID = nil
	s.Vet = nil
}

// CopyEditableFields applies the owner-editable fields from src.
// The authorized flag and associations are deliberately excluded.
func (s *Shelter) CopyEditableFields(src *Shelter) {
	s.Name = src.Name
	s.Address = src.Address
	s.City = src.City
	s.Phone = src.Phone
}
