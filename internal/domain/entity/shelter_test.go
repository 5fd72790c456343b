package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestShelterToggleAuthorizationClearsVet(t *testing.T) {
	vetID := uuid.New()
	shelter := &Shelter{UserID: uuid.New(), Authorized: true, VetID: &vetID}

	shelter.ToggleAuthorization()

	assert.False(t, shelter.Authorized)
	assert.Nil(t, shelter.VetID)
}

func TestShelterToggleAuthorizationKeepsVetWhenAuthorizing(t *testing.T) {
	shelter := &Shelter{UserID: uuid.New()}

	shelter.ToggleAuthorization()

	assert.True(t, shelter.Authorized)
	assert.Nil(t, shelter.VetID)
}

func TestShelterCopyEditableFieldsExcludesAuthorization(t *testing.T) {
	vetID := uuid.New()
	shelter := &Shelter{
		UserID:     uuid.New(),
		Name:       "Old Name",
		Authorized: true,
		VetID:      &vetID,
	}

	shelter.CopyEditableFields(&Shelter{
		Name:    "New Name",
		City:    "Berlin",
		Phone:   "030123456",
		Address: "Somewhere 1",
	})

	assert.Equal(t, "New Name", shelter.Name)
	assert.Equal(t, "Berlin", shelter.City)
	assert.True(t, shelter.Authorized)
	assert.Equal(t, &vetID, shelter.VetID)
}

func TestVetToggleAuthorization(t *testing.T) {
	vet := &Vet{UserID: uuid.New()}

	vet.ToggleAuthorization()
	assert.True(t, vet.Authorized)

	vet.ToggleAuthorization()
	assert.False(t, vet.Authorized)
}
