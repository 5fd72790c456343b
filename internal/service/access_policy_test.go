package service

import (
	"testing"

	"shelternet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func userWithRoles(id uuid.UUID, roles ...entity.RoleName) *entity.User {
	user := &entity.User{ID: id}
	for _, name := range roles {
		user.Roles = append(user.Roles, entity.Role{Name: name})
	}
	return user
}

func TestCanAccessShelter(t *testing.T) {
	policy := NewAccessPolicy()

	ownerID := uuid.New()
	vetUserID := uuid.New()
	shelter := &entity.Shelter{UserID: ownerID, VetID: &vetUserID}

	tests := []struct {
		name    string
		actor   *entity.User
		allowed bool
	}{
		{"admin", userWithRoles(uuid.New(), entity.RoleAdmin), true},
		{"owner with shelter role", userWithRoles(ownerID, entity.RoleUser, entity.RoleShelter), true},
		{"owner without shelter role", userWithRoles(ownerID, entity.RoleUser), false},
		{"assigned vet", userWithRoles(vetUserID, entity.RoleVet), true},
		{"other vet", userWithRoles(uuid.New(), entity.RoleVet), false},
		{"any visitor", userWithRoles(uuid.New(), entity.RoleVisitor), true},
		{"plain user", userWithRoles(uuid.New(), entity.RoleUser), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, policy.CanAccessShelter(tt.actor, shelter))
		})
	}
}

func TestCanAccessShelterWithoutVet(t *testing.T) {
	policy := NewAccessPolicy()
	shelter := &entity.Shelter{UserID: uuid.New()}

	vet := userWithRoles(uuid.New(), entity.RoleVet)
	assert.False(t, policy.CanAccessShelter(vet, shelter))
}

func TestCanAccessVet(t *testing.T) {
	policy := NewAccessPolicy()

	ownerID := uuid.New()
	vet := &entity.Vet{UserID: ownerID}

	assert.True(t, policy.CanAccessVet(userWithRoles(uuid.New(), entity.RoleAdmin), vet))
	assert.True(t, policy.CanAccessVet(userWithRoles(ownerID, entity.RoleVet), vet))
	assert.False(t, policy.CanAccessVet(userWithRoles(uuid.New(), entity.RoleVet), vet))
	assert.False(t, policy.CanAccessVet(userWithRoles(uuid.New(), entity.RoleShelter), vet))
}

func TestCanAccessVisitor(t *testing.T) {
	policy := NewAccessPolicy()

	ownerID := uuid.New()
	visitor := &entity.Visitor{UserID: ownerID}

	assert.True(t, policy.CanAccessVisitor(userWithRoles(uuid.New(), entity.RoleAdmin), visitor))
	assert.True(t, policy.CanAccessVisitor(userWithRoles(uuid.New(), entity.RoleShelter), visitor))
	assert.True(t, policy.CanAccessVisitor(userWithRoles(ownerID, entity.RoleVisitor), visitor))
	assert.False(t, policy.CanAccessVisitor(userWithRoles(uuid.New(), entity.RoleVisitor), visitor))
}

func TestCanMutateAnimalDerivesFromShelter(t *testing.T) {
	policy := NewAccessPolicy()

	ownerID := uuid.New()
	animal := &entity.Animal{
		ShelterID: ownerID,
		Shelter:   entity.Shelter{UserID: ownerID},
	}

	owner := userWithRoles(ownerID, entity.RoleShelter)
	stranger := userWithRoles(uuid.New(), entity.RoleUser)

	assert.True(t, policy.CanMutateAnimal(owner, animal))
	assert.False(t, policy.CanMutateAnimal(stranger, animal))
}

func TestPolicyDeniesNilInputs(t *testing.T) {
	policy := NewAccessPolicy()
	actor := userWithRoles(uuid.New(), entity.RoleAdmin)

	assert.False(t, policy.CanAccessShelter(nil, &entity.Shelter{}))
	assert.False(t, policy.CanAccessShelter(actor, nil))
	assert.False(t, policy.CanAccessVet(actor, nil))
	assert.False(t, policy.CanAccessVisitor(actor, nil))
	assert.False(t, policy.CanMutateAnimal(actor, nil))
}
