package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vet represents a veterinarian profile, keyed by the owning user.
// Assigned shelters are resolved through ShelterRepository.FindByVetID.
type Vet struct {
	UserID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	FirstName            string    `gorm:"type:varchar(60);not null" json:"first_name"`
	LastName             string    `gorm:"type:varchar(60);not null" json:"last_name"`
	IdentificationNumber string    `gorm:"type:char(10);uniqueIndex" json:"identification_number,omitempty"`
	Authorized           bool      `gorm:"not null;default:false" json:"authorized"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Vet) TableName() string {
	return "vets"
}

// ToggleAuthorization flips the admin gate. Clearing the assignments
// of a de-authorized vet is the caller's cascade.
func (v *Vet) ToggleAuthorization() {
	v.Authorized = !v.Authorized
}

// CopyEditableFields applies the owner-editable fields from src.
func (v *Vet) CopyEditableFields(src *Vet) {
	v.FirstName = src.FirstName
	v.LastName = src.LastName
	v.IdentificationNumber = src.IdentificationNumber
}
