package repository

import (
	"shelternet/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindByName(db *gorm.DB, name entity.RoleName) (*entity.Role, error)
	// Upsert inserts the role if it does not exist yet. Safe to call on
	// every boot.
	Upsert(db *gorm.DB, role *entity.Role) error
}
