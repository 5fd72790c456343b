package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	user := &User{Roles: []Role{{Name: RoleUser}, {Name: RoleShelter}}}

	assert.True(t, user.HasRole(RoleUser))
	assert.True(t, user.IsShelter())
	assert.False(t, user.IsAdmin())
	assert.False(t, user.IsVet())
	assert.False(t, user.IsVisitor())

	var nilUser *User
	assert.False(t, nilUser.HasRole(RoleAdmin))
}

func TestRoleNames(t *testing.T) {
	user := &User{Roles: []Role{{Name: RoleUser}, {Name: RoleVisitor}}}
	assert.Equal(t, []string{"ROLE_USER", "ROLE_VISITOR"}, user.RoleNames())

	empty := &User{}
	assert.Empty(t, empty.RoleNames())
}

func TestRoleNameValid(t *testing.T) {
	for _, name := range AllRoleNames() {
		assert.True(t, name.Valid(), "expected %s to be valid", name)
	}
	assert.False(t, RoleName("ROLE_SUPERUSER").Valid())
	assert.False(t, RoleName("").Valid())
}
