package identity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates active user with hashed password", func(t *testing.T) {
		u, err := NewUser(tenantID, "Maria", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "maria", u.Username)
		assert.Equal(t, UserStatusActive, u.Status)
		assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
		assert.True(t, u.VerifyPassword("s3cret-pass"))
		assert.False(t, u.VerifyPassword("wrong"))
	})

	t.Run("rejects short username", func(t *testing.T) {
		_, err := NewUser(tenantID, "ab", "s3cret-pass")
		assert.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser(tenantID, "maria", "short")
		assert.Error(t, err)
	})
}

func TestUserChangePassword(t *testing.T) {
	u, err := NewUser(uuid.New(), "maria", "s3cret-pass")
	require.NoError(t, err)

	t.Run("rejects wrong current password", func(t *testing.T) {
		assert.Error(t, u.ChangePassword("wrong", "new-password"))
	})

	t.Run("changes with correct current password", func(t *testing.T) {
		require.NoError(t, u.ChangePassword("s3cret-pass", "new-password"))
		assert.True(t, u.VerifyPassword("new-password"))
		assert.False(t, u.VerifyPassword("s3cret-pass"))
	})
}

func TestUserSetEmail(t *testing.T) {
	u, err := NewUser(uuid.New(), "maria", "s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, u.SetEmail("Maria@Example.COM"))
	assert.Equal(t, "maria@example.com", u.Email)

	assert.Error(t, u.SetEmail("not-an-email"))
}

func TestUserLockout(t *testing.T) {
	t.Run("locks after max attempts", func(t *testing.T) {
		u, err := NewUser(uuid.New(), "maria", "s3cret-pass")
		require.NoError(t, err)

		assert.False(t, u.RecordLoginFailure(3, time.Hour))
		assert.False(t, u.RecordLoginFailure(3, time.Hour))
		assert.True(t, u.RecordLoginFailure(3, time.Hour))
		assert.True(t, u.IsLocked())
		assert.False(t, u.CanLogin())
	})

	t.Run("expired lock allows login again", func(t *testing.T) {
		u, err := NewUser(uuid.New(), "maria", "s3cret-pass")
		require.NoError(t, err)
		u.RecordLoginFailure(1, -time.Minute)

		assert.False(t, u.IsLocked())
		assert.True(t, u.CanLogin())
	})

	t.Run("success resets counter and lock", func(t *testing.T) {
		u, err := NewUser(uuid.New(), "maria", "s3cret-pass")
		require.NoError(t, err)
		u.RecordLoginFailure(5, time.Hour)

		u.RecordLoginSuccess()
		assert.Equal(t, 0, u.FailedAttempts)
		assert.NotNil(t, u.LastLoginAt)
	})

	t.Run("unlock clears an active lock", func(t *testing.T) {
		u, err := NewUser(uuid.New(), "maria", "s3cret-pass")
		require.NoError(t, err)
		u.RecordLoginFailure(1, time.Hour)
		require.True(t, u.IsLocked())

		require.NoError(t, u.Unlock())
		assert.True(t, u.CanLogin())
		assert.Error(t, u.Unlock())
	})
}

func TestUserDeactivate(t *testing.T) {
	u, err := NewUser(uuid.New(), "maria", "s3cret-pass")
	require.NoError(t, err)

	require.NoError(t, u.Deactivate())
	assert.False(t, u.CanLogin())
	assert.Error(t, u.Deactivate())
}
