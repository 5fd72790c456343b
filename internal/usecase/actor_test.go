package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hashed, err := hashPassword("hunter2secret")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2secret", hashed)

	assert.True(t, checkPassword(hashed, "hunter2secret"))
	assert.False(t, checkPassword(hashed, "wrong"))
	assert.False(t, checkPassword("not-a-hash", "hunter2secret"))
}
