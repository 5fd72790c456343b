package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimalStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AnimalStatus
		to      AnimalStatus
		allowed bool
	}{
		{"available to pending", AnimalStatusAvailable, AnimalStatusPending, true},
		{"available to adopted", AnimalStatusAvailable, AnimalStatusAdopted, true},
		{"pending to adopted", AnimalStatusPending, AnimalStatusAdopted, true},
		{"pending to available", AnimalStatusPending, AnimalStatusAvailable, false},
		{"adopted to available", AnimalStatusAdopted, AnimalStatusAvailable, false},
		{"adopted to pending", AnimalStatusAdopted, AnimalStatusPending, false},
		{"same status", AnimalStatusPending, AnimalStatusPending, true},
		{"unknown target", AnimalStatusAvailable, AnimalStatus("LOST"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAnimalStatusValid(t *testing.T) {
	assert.True(t, AnimalStatusAvailable.Valid())
	assert.True(t, AnimalStatusPending.Valid())
	assert.True(t, AnimalStatusAdopted.Valid())
	assert.False(t, AnimalStatus("").Valid())
	assert.False(t, AnimalStatus("LOST").Valid())
}

func TestToggleAccepted(t *testing.T) {
	animal := &Animal{Status: AnimalStatusAvailable}

	animal.ToggleAccepted()
	assert.True(t, animal.Accepted)
	assert.Equal(t, AnimalStatusAvailable, animal.Status)

	animal.ToggleAccepted()
	assert.False(t, animal.Accepted)
}

func TestToggleVisitRequestAttachesVisitor(t *testing.T) {
	visitorID := uuid.New()
	animal := &Animal{Status: AnimalStatusAvailable, Accepted: true}

	animal.ToggleVisitRequest(visitorID)

	require.NotNil(t, animal.PlanningVisitorID)
	assert.Equal(t, visitorID, *animal.PlanningVisitorID)
	assert.True(t, animal.RequestToBeVisited)
	assert.False(t, animal.ToBeVisited)
}

func TestToggleVisitRequestWithdrawsRequest(t *testing.T) {
	visitorID := uuid.New()
	animal := &Animal{Status: AnimalStatusAvailable, Accepted: true}

	animal.ToggleVisitRequest(visitorID)
	animal.ApproveVisit()
	require.True(t, animal.ToBeVisited)

	// Withdrawing clears the request and any approval with it.
	animal.ToggleVisitRequest(visitorID)

	assert.Nil(t, animal.PlanningVisitorID)
	assert.False(t, animal.RequestToBeVisited)
	assert.False(t, animal.ToBeVisited)
}

func TestDenyVisitResetsProtocol(t *testing.T) {
	visitorID := uuid.New()
	animal := &Animal{Status: AnimalStatusAvailable, Accepted: true}

	animal.ToggleVisitRequest(visitorID)
	animal.ApproveVisit()

	animal.DenyVisit()

	assert.Nil(t, animal.PlanningVisitorID)
	assert.False(t, animal.RequestToBeVisited)
	assert.False(t, animal.ToBeVisited)
}

func TestFinalizeAdoptionConsumesPlanningVisitor(t *testing.T) {
	visitorID := uuid.New()
	animal := &Animal{Status: AnimalStatusPending, Accepted: true}
	animal.ToggleVisitRequest(visitorID)
	animal.ApproveVisit()

	animal.FinalizeAdoption()

	assert.Equal(t, AnimalStatusAdopted, animal.Status)
	require.NotNil(t, animal.VisitorID)
	assert.Equal(t, visitorID, *animal.VisitorID)
	assert.Nil(t, animal.PlanningVisitorID)
	assert.False(t, animal.RequestToBeVisited)
	assert.False(t, animal.ToBeVisited)
	assert.True(t, animal.IsAdopted())
}

func TestFinalizeAdoptionWithoutPlanningVisitor(t *testing.T) {
	animal := &Animal{Status: AnimalStatusAvailable, Accepted: true}

	animal.FinalizeAdoption()

	assert.Equal(t, AnimalStatusAdopted, animal.Status)
	assert.Nil(t, animal.VisitorID)
}

func TestCopyEditableFieldsLeavesProtocolUntouched(t *testing.T) {
	visitorID := uuid.New()
	animal := &Animal{
		Name:     "Rex",
		Species:  "dog",
		Status:   AnimalStatusPending,
		Accepted: true,
	}
	animal.ToggleVisitRequest(visitorID)

	src := &Animal{
		Name:    "Bello",
		Species: "dog",
		Breed:   "mix",
		Sex:     AnimalSexMale,
	}
	animal.CopyEditableFields(src)

	assert.Equal(t, "Bello", animal.Name)
	assert.Equal(t, "mix", animal.Breed)
	assert.Equal(t, AnimalStatusPending, animal.Status)
	assert.True(t, animal.Accepted)
	assert.True(t, animal.RequestToBeVisited)
	require.NotNil(t, animal.PlanningVisitorID)
	assert.Equal(t, visitorID, *animal.PlanningVisitorID)
}
