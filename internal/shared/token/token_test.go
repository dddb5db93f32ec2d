package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("test-secret-at-least-16", time.Minute, time.Hour)

	pair, err := m.Issue("user-1", "COLLEGE", "college-1")
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessJTI, pair.RefreshJTI)

	claims, err := m.Parse(pair.AccessToken, TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "COLLEGE", claims.Role)
	assert.Equal(t, "college-1", claims.OrgID)
	assert.Equal(t, pair.AccessJTI, claims.ID)

	t.Run("wrong token type", func(t *testing.T) {
		_, err := m.Parse(pair.RefreshToken, TypeAccess)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewManager("another-secret-value", time.Minute, time.Hour)
		_, err := other.Parse(pair.AccessToken, TypeAccess)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-jwt", "")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestManager_Expired(t *testing.T) {
	m := NewManager("test-secret-at-least-16", time.Minute, time.Hour)
	base := time.Now()
	m.now = func() time.Time { return base }

	pair, err := m.Issue("user-1", "ADMIN", "")
	require.NoError(t, err)

	m.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = m.Parse(pair.AccessToken, TypeAccess)
	assert.ErrorIs(t, err, ErrTokenExpired)

	claims, err := m.Parse(pair.RefreshToken, TypeRefresh)
	require.NoError(t, err)
	assert.InDelta(t, float64(58*time.Minute), float64(claims.Remaining(m.now())), float64(time.Second))
}
