package usecase

import (
	"testing"

	"shelternet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachVet(t *testing.T) {
	vet := &entity.Vet{UserID: uuid.New(), Authorized: true}
	shelter := &entity.Shelter{UserID: uuid.New(), Authorized: true}

	require.NoError(t, attachVet(shelter, vet))
	require.NotNil(t, shelter.VetID)
	assert.Equal(t, vet.UserID, *shelter.VetID)
}

func TestAttachVetReplacesDifferentVet(t *testing.T) {
	previous := uuid.New()
	vet := &entity.Vet{UserID: uuid.New(), Authorized: true}
	shelter := &entity.Shelter{UserID: uuid.New(), Authorized: true, VetID: &previous}

	require.NoError(t, attachVet(shelter, vet))
	require.NotNil(t, shelter.VetID)
	assert.Equal(t, vet.UserID, *shelter.VetID)
}

func TestAttachVetSameVetConflicts(t *testing.T) {
	vet := &entity.Vet{UserID: uuid.New(), Authorized: true}
	shelter := &entity.Shelter{UserID: uuid.New(), Authorized: true, VetID: &vet.UserID}

	assert.ErrorIs(t, attachVet(shelter, vet), ErrVetAlreadyAssigned)
}

func TestAttachVetRequiresAuthorization(t *testing.T) {
	unauthorizedVet := &entity.Vet{UserID: uuid.New()}
	shelter := &entity.Shelter{UserID: uuid.New(), Authorized: true}
	assert.ErrorIs(t, attachVet(shelter, unauthorizedVet), ErrVetNotAuthorized)

	vet := &entity.Vet{UserID: uuid.New(), Authorized: true}
	unauthorizedShelter := &entity.Shelter{UserID: uuid.New()}
	assert.ErrorIs(t, attachVet(unauthorizedShelter, vet), ErrShelterNotAuthorized)
	assert.Nil(t, unauthorizedShelter.VetID)
}
