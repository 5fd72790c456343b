package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnimalStatus represents the adoption status of an animal
type AnimalStatus string

const (
	AnimalStatusAvailable AnimalStatus = "AVAILABLE"
	AnimalStatusPending   AnimalStatus = "PENDING"
	AnimalStatusAdopted   AnimalStatus = "ADOPTED"
)

// Valid reports whether the status belongs to the closed set.
func (s AnimalStatus) Valid() bool {
	switch s {
	case AnimalStatusAvailable, AnimalStatusPending, AnimalStatusAdopted:
		return true
	}
	return false
}

// rank orders statuses along the forward-only lifecycle.
func (s AnimalStatus) rank() int {
	switch s {
	case AnimalStatusAvailable:
		return 0
	case AnimalStatusPending:
		return 1
	case AnimalStatusAdopted:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether the lifecycle allows moving from s
// to next. The lifecycle is forward-only: AVAILABLE -> PENDING -> ADOPTED.
func (s AnimalStatus) CanTransitionTo(next AnimalStatus) bool {
	return next.Valid() && next.rank() >= s.rank()
}

// AnimalSex represents the sex of an animal
type AnimalSex string

const (
	AnimalSexMale    AnimalSex = "MALE"
	AnimalSexFemale  AnimalSex = "FEMALE"
	AnimalSexUnknown AnimalSex = "UNKNOWN"
)

// Animal represents an animal listed by a shelter. The visit-request
// protocol is carried on the record itself: a visitor requests a visit
// (RequestToBeVisited + PlanningVisitorID), the shelter approves
// (ToBeVisited) or denies, and adoption consumes the planning visitor.
type Animal struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string       `gorm:"type:varchar(120);not null" json:"name"`
	Species     string       `gorm:"type:varchar(60);not null;index" json:"species"`
	Breed       string       `gorm:"type:varchar(120)" json:"breed,omitempty"`
	AgeYears    int          `gorm:"not null;default:0" json:"age_years"`
	AgeMonths   int          `gorm:"not null;default:0" json:"age_months"`
	Sex         AnimalSex    `gorm:"type:varchar(12)" json:"sex,omitempty"`
	Status      AnimalStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE';index" json:"status"`
	Vaccinated  bool         `gorm:"not null;default:false" json:"vaccinated"`
	Neutered    bool         `gorm:"not null;default:false" json:"neutered"`
	PhotoURL    string       `gorm:"type:varchar(2048)" json:"photo_url,omitempty"`
	Description string       `gorm:"type:text" json:"description,omitempty"`
	Accepted    bool         `gorm:"not null;default:false" json:"accepted"`

	ShelterID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"shelter_id"`
	VisitorID          *uuid.UUID `gorm:"type:uuid;index" json:"visitor_id,omitempty"`
	PlanningVisitorID  *uuid.UUID `gorm:"type:uuid;index" json:"planning_visitor_id,omitempty"`
	RequestToBeVisited bool       `gorm:"not null;default:false" json:"request_to_be_visited"`
	ToBeVisited        bool       `gorm:"not null;default:false" json:"to_be_visited"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Shelter         Shelter  `gorm:"foreignKey:ShelterID" json:"shelter,omitempty"`
	Visitor         *Visitor `gorm:"foreignKey:VisitorID" json:"visitor,omitempty"`
	PlanningVisitor *Visitor `gorm:"foreignKey:PlanningVisitorID" json:"planning_visitor,omitempty"`
}

func (Animal) TableName() string {
	return "animals"
}

// IsAdopted checks if the animal has been adopted
func (a *Animal) IsAdopted() bool {
	return a.Status == AnimalStatusAdopted
}

// VisitRequested checks if a visitor has an active visit request
func (a *Animal) VisitRequested() bool {
	return a.RequestToBeVisited
}

// ToggleAccepted flips the vet sign-off gate. It never touches the
// adoption status.
func (a *Animal) ToggleAccepted() {
	a.Accepted = !a.Accepted
}

// ToggleVisitRequest drives the visitor side of the visit protocol.
// From idle it attaches the visitor and raises the request; from the
// requested state it clears both again. The shelter approval flag is
// forced off on either edge, so approval can never outlive a request.
func (a *Animal) ToggleVisitRequest(visitorID uuid.UUID) {
	if !a.RequestToBeVisited {
		id := visitorID
		a.PlanningVisitorID = &id
		a.PlanningVisitor = nil
		a.RequestToBeVisited = true
	} else {
		a.PlanningVisitorID = nil
		a.PlanningVisitor = nil
		a.RequestToBeVisited = false
	}
	a.ToBeVisited = false
}

// ApproveVisit marks the pending request as approved by the shelter.
func (a *Animal) ApproveVisit() {
	a.ToBeVisited = true
}

// DenyVisit resets the visit protocol to idle in one step.
func (a *Animal) DenyVisit() {
	a.ToBeVisited = false
	a.RequestToBeVisited = false
	a.PlanningVisitorID = nil
	a.PlanningVisitor = nil
}

// FinalizeAdoption moves the animal to ADOPTED and consumes the visit
// protocol: the planning visitor, if any, becomes the permanent
// adopter, and all request/approval state is cleared.
func (a *Animal) FinalizeAdoption() {
	a.Status = AnimalStatusAdopted
	if a.PlanningVisitorID != nil {
		a.VisitorID = a.PlanningVisitorID
		a.PlanningVisitorID = nil
	}
	a.PlanningVisitor = nil
	a.ToBeVisited = false
	a.RequestToBeVisited = false
}

// CopyEditableFields applies the shelter-editable descriptive fields
// from src. Lifecycle flags and visit/adoption references are owned by
// the protocol methods, never by form input.
func (a *Animal) CopyEditableFields(src *Animal) {
	a.Name = src.Name
	a.Species = src.Species
	a.Breed = src.Breed
	a.AgeYears = src.AgeYears
	a.AgeMonths = src.AgeMonths
	a.Sex = src.Sex
	a.Vaccinated = src.Vaccinated
	a.Neutered = src.Neutered
	a.PhotoURL = src.PhotoURL
	a.Description = src.Description
}
