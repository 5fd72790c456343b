package converter

import (
	"testing"

	"shelternet/internal/delivery/dto"
	"shelternet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimalToResponse(t *testing.T) {
	visitorID := uuid.New()
	animal := &entity.Animal{
		ID:                 uuid.New(),
		Name:               "Luna",
		Species:            "cat",
		Sex:                entity.AnimalSexFemale,
		Status:             entity.AnimalStatusPending,
		Accepted:           true,
		ShelterID:          uuid.New(),
		PlanningVisitorID:  &visitorID,
		RequestToBeVisited: true,
	}

	resp := AnimalToResponse(animal)

	require.NotNil(t, resp)
	assert.Equal(t, animal.ID, resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "FEMALE", resp.Sex)
	assert.True(t, resp.Accepted)
	assert.True(t, resp.RequestToBeVisited)
	assert.Equal(t, &visitorID, resp.PlanningVisitorID)
}

func TestAnimalToResponseNil(t *testing.T) {
	assert.Nil(t, AnimalToResponse(nil))
}

func TestCreateAnimalRequestToEntityStartsIdle(t *testing.T) {
	req := &dto.CreateAnimalRequest{
		Name:    "Rex",
		Species: "dog",
		Sex:     "MALE",
	}

	animal := CreateAnimalRequestToEntity(req)

	assert.Equal(t, entity.AnimalStatusAvailable, animal.Status)
	assert.False(t, animal.Accepted)
	assert.False(t, animal.RequestToBeVisited)
	assert.False(t, animal.ToBeVisited)
	assert.Nil(t, animal.PlanningVisitorID)
	assert.Nil(t, animal.VisitorID)
	assert.Equal(t, entity.AnimalSexMale, animal.Sex)
}

func TestUpdateAnimalRequestToEntityIgnoresStatus(t *testing.T) {
	req := &dto.UpdateAnimalRequest{
		Name:   "Rex",
		Status: "ADOPTED",
	}

	animal := UpdateAnimalRequestToEntity(req)

	// The status transition is decided by the usecase, not the mapper.
	assert.Empty(t, animal.Status)
	assert.Equal(t, "Rex", animal.Name)
}
