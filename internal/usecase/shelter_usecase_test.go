package usecase

import (
	"testing"

	"shelternet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestedAnimal(visitorID uuid.UUID) entity.Animal {
	return entity.Animal{
		ID:                 uuid.New(),
		Name:               "Luna",
		Species:            "cat",
		Status:             entity.AnimalStatusAvailable,
		Accepted:           true,
		ShelterID:          uuid.New(),
		PlanningVisitorID:  &visitorID,
		RequestToBeVisited: true,
		PlanningVisitor: &entity.Visitor{
			UserID:    visitorID,
			FirstName: "Jo",
			LastName:  "Smith",
		},
	}
}

func TestBuildPendingVisitRows(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	animals := []entity.Animal{requestedAnimal(first), requestedAnimal(second)}

	rows, err := buildPendingVisitRows(animals)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, animals[0].ID, rows[0].Animal.ID)
	assert.Equal(t, first, rows[0].VisitorUserID)
	assert.Equal(t, "Jo", rows[0].Visitor.FirstName)
	assert.Equal(t, second, rows[1].VisitorUserID)
}

func TestBuildPendingVisitRowsEmpty(t *testing.T) {
	rows, err := buildPendingVisitRows(nil)

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestBuildPendingVisitRowsFailsOnMissingVisitor(t *testing.T) {
	broken := requestedAnimal(uuid.New())
	broken.PlanningVisitor = nil

	_, err := buildPendingVisitRows([]entity.Animal{broken})

	assert.ErrorIs(t, err, ErrVisitWithoutVisitor)
}

func TestBuildPendingVisitRowsFailsOnDetachedRequest(t *testing.T) {
	broken := requestedAnimal(uuid.New())
	broken.PlanningVisitorID = nil

	_, err := buildPendingVisitRows([]entity.Animal{broken})

	assert.ErrorIs(t, err, ErrVisitWithoutVisitor)
}
