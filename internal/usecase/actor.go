package usecase

import (
	"shelternet/internal/domain/entity"
	"shelternet/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// loadActor resolves the authenticated user with its current role set.
// Policy checks always run against the stored roles, not token claims.
func loadActor(db *gorm.DB, userRepo repository.UserRepository, id uuid.UUID) (*entity.User, error) {
	actor, err := userRepo.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, ErrUserNotFound
	}
	return actor, nil
}

// grantRole attaches the named role to the user. Used by the profile
// upserts that imply a role, such as completing a visitor profile.
func grantRole(tx *gorm.DB, log *logrus.Logger, roleRepo repository.RoleRepository, userRepo repository.UserRepository, user *entity.User, name entity.RoleName) error {
	role, err := roleRepo.FindByName(tx, name)
	if err != nil {
		log.Warnf("Failed to find role %s: %+v", name, err)
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}
	if err := userRepo.AddRole(tx, user, role); err != nil {
		log.Warnf("Failed to grant role %s: %+v", name, err)
		return err
	}
	return nil
}

// revokeRole detaches the named role from the user if held.
func revokeRole(tx *gorm.DB, log *logrus.Logger, roleRepo repository.RoleRepository, userRepo repository.UserRepository, user *entity.User, name entity.RoleName) error {
	role, err := roleRepo.FindByName(tx, name)
	if err != nil {
		log.Warnf("Failed to find role %s: %+v", name, err)
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}
	if err := userRepo.RemoveRole(tx, user, role); err != nil {
		log.Warnf("Failed to revoke role %s: %+v", name, err)
		return err
	}
	return nil
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func checkPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
