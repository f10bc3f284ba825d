package token_test

import (
	"testing"
	"time"

	"hr-portal/internal/shared/clock"
	"hr-portal/internal/shared/token"

	"github.com/stretchr/testify/assert"
)

func TestManager(t *testing.T) {
	clk := clock.NewFixed(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))
	m := token.NewManager("secret", 15*time.Minute, 7*24*time.Hour, clk)

	t.Run("round trip", func(t *testing.T) {
		raw, err := m.Issue("user-1", "hr", token.KindAccess)
		assert.NoError(t, err)

		claims, err := m.Parse(raw, token.KindAccess)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "hr", claims.Role)
	})

	t.Run("refresh token rejected as access", func(t *testing.T) {
		raw, err := m.Issue("user-1", "employee", token.KindRefresh)
		assert.NoError(t, err)

		_, err = m.Parse(raw, token.KindAccess)
		assert.ErrorIs(t, err, token.ErrInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		raw, err := m.Issue("user-1", "hr", token.KindAccess)
		assert.NoError(t, err)

		clk.Advance(16 * time.Minute)
		_, err = m.Parse(raw, token.KindAccess)
		assert.ErrorIs(t, err, token.ErrExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := token.NewManager("other", time.Minute, time.Minute, clk)
		raw, err := other.Issue("user-1", "hr", token.KindAccess)
		assert.NoError(t, err)

		_, err = m.Parse(raw, token.KindAccess)
		assert.ErrorIs(t, err, token.ErrInvalid)
	})
}
