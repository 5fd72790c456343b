package usecase

import (
	"testing"

	"shelternet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listedAnimal() entity.Animal {
	shelterOwner := uuid.New()
	return entity.Animal{
		ID:        uuid.New(),
		Name:      "Max",
		Species:   "dog",
		Status:    entity.AnimalStatusAvailable,
		Accepted:  true,
		ShelterID: shelterOwner,
		Shelter: entity.Shelter{
			UserID: shelterOwner,
			User: entity.User{
				ID:    shelterOwner,
				Roles: []entity.Role{{Name: entity.RoleShelter}},
			},
		},
	}
}

func TestFilterSearchableAnimals(t *testing.T) {
	me := uuid.New()
	other := uuid.New()

	visible := listedAnimal()

	notAccepted := listedAnimal()
	notAccepted.Accepted = false

	adopted := listedAnimal()
	adopted.Status = entity.AnimalStatusAdopted

	shelterLostRole := listedAnimal()
	shelterLostRole.Shelter.User.Roles = []entity.Role{{Name: entity.RoleUser}}

	lockedByOther := listedAnimal()
	lockedByOther.RequestToBeVisited = true
	lockedByOther.PlanningVisitorID = &other

	requestedByMe := listedAnimal()
	requestedByMe.RequestToBeVisited = true
	requestedByMe.PlanningVisitorID = &me

	animals := []entity.Animal{visible, notAccepted, adopted, shelterLostRole, lockedByOther, requestedByMe}

	result := filterSearchableAnimals(animals, me)

	require.Len(t, result, 2)
	assert.Equal(t, visible.ID, result[0].ID)
	assert.Equal(t, requestedByMe.ID, result[1].ID)
}

func TestFilterSearchableAnimalsRequestWithoutVisitorIsLocked(t *testing.T) {
	me := uuid.New()

	// A raised request with no visitor attached must not be offered to
	// anyone.
	broken := listedAnimal()
	broken.RequestToBeVisited = true
	broken.PlanningVisitorID = nil

	result := filterSearchableAnimals([]entity.Animal{broken}, me)

	assert.Empty(t, result)
}
