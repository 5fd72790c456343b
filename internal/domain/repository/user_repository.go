package repository

import (
	"shelternet/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	// FindByID loads the user together with its current role set.
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	AddRole(db *gorm.DB, user *entity.User, role *entity.Role) error
	RemoveRole(db *gorm.DB, user *entity.User, role *entity.Role) error
}
