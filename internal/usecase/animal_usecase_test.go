package usecase

import (
	"testing"

	"shelternet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVisitToggleGuardAllowsFreshAnimal(t *testing.T) {
	// A newly listed animal has no vet sign-off yet; the request must
	// still go through.
	animal := &entity.Animal{Status: entity.AnimalStatusAvailable, Accepted: false}

	assert.NoError(t, visitToggleGuard(animal, uuid.New()))
}

func TestVisitToggleGuardAllowsOwnWithdrawal(t *testing.T) {
	me := uuid.New()
	animal := &entity.Animal{Status: entity.AnimalStatusAvailable, Accepted: true}
	animal.ToggleVisitRequest(me)

	assert.NoError(t, visitToggleGuard(animal, me))
}

func TestVisitToggleGuardRejectsAdopted(t *testing.T) {
	animal := &entity.Animal{Status: entity.AnimalStatusAdopted}

	assert.ErrorIs(t, visitToggleGuard(animal, uuid.New()), ErrAnimalAdopted)
}

func TestVisitToggleGuardLocksForOtherVisitor(t *testing.T) {
	other := uuid.New()
	animal := &entity.Animal{Status: entity.AnimalStatusAvailable, Accepted: true}
	animal.ToggleVisitRequest(other)

	assert.ErrorIs(t, visitToggleGuard(animal, uuid.New()), ErrForbidden)
}

func TestVisitToggleGuardLocksDetachedRequest(t *testing.T) {
	animal := &entity.Animal{
		Status:             entity.AnimalStatusAvailable,
		RequestToBeVisited: true,
	}

	assert.ErrorIs(t, visitToggleGuard(animal, uuid.New()), ErrForbidden)
}
