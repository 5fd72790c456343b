package service

import (
	"shelternet/internal/domain/entity"
)

// AccessPolicy decides, for an already-authenticated actor, whether an
// action on a Shelter, Vet, Visitor or Animal is permitted. All checks
// are pure: they read the loaded entities and never touch the store.
// Callers resolve missing targets to a not-found failure before
// consulting the policy.
type AccessPolicy struct{}

func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{}
}

// CanAccessShelter permits admins, the owner while it holds the
// shelter role, the user behind the assigned vet, and any visitor
// (visitors may browse every shelter's animals).
func (p *AccessPolicy) CanAccessShelter(actor *entity.User, shelter *entity.Shelter) bool {
	if actor == nil || shelter == nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if shelter.UserID == actor.ID && actor.IsShelter() {
		return true
	}
	if shelter.VetID != nil && *shelter.VetID == actor.ID {
		return true
	}
	return actor.IsVisitor()
}

// CanAccessVet permits admins and the owning user only. There is no
// cross-vet visibility.
func (p *AccessPolicy) CanAccessVet(actor *entity.User, vet *entity.Vet) bool {
	if actor == nil || vet == nil {
		return false
	}
	return actor.IsAdmin() || vet.UserID == actor.ID
}

// CanAccessVisitor permits admins, shelter-role holders (shelters read
// applicant profiles), and the owning user.
func (p *AccessPolicy) CanAccessVisitor(actor *entity.User, visitor *entity.Visitor) bool {
	if actor == nil || visitor == nil {
		return false
	}
	return actor.IsAdmin() || actor.IsShelter() || visitor.UserID == actor.ID
}

// CanMutateAnimal derives from the animal's parent shelter: whoever
// can access the shelter may act on its animals.
func (p *AccessPolicy) CanMutateAnimal(actor *entity.User, animal *entity.Animal) bool {
	if actor == nil || animal == nil {
		return false
	}
	return p.CanAccessShelter(actor, &animal.Shelter)
}
