package client

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates client with trimmed fields", func(t *testing.T) {
		added := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
		c, err := NewClient(ownerID, "  Israel Israeli ", "050-1234567", "israel@example.com", added, true)
		require.NoError(t, err)
		assert.Equal(t, "Israel Israeli", c.Name)
		assert.Equal(t, ownerID, c.OwnerID)
		assert.Equal(t, added, c.DateAdded)
		assert.True(t, c.IsActive)
		assert.NotEqual(t, uuid.Nil, c.ID)
	})

	t.Run("defaults date added to today", func(t *testing.T) {
		c, err := NewClient(ownerID, "Michal", "", "", time.Time{}, false)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), c.DateAdded, time.Minute)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewClient(ownerID, "   ", "", "", time.Time{}, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		_, err := NewClient(uuid.Nil, "David", "", "", time.Time{}, true)
		require.Error(t, err)
	})
}

func TestClient_Update(t *testing.T) {
	added := time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)
	c, err := NewClient(uuid.New(), "David Cohen", "054-9876543", "david@example.com", added, true)
	require.NoError(t, err)

	require.NoError(t, c.Update("David Cohen", "054-0000000", "d@example.com", time.Time{}, false))
	assert.Equal(t, "054-0000000", c.Phone)
	assert.False(t, c.IsActive)
	assert.Equal(t, added, c.DateAdded)

	assert.Error(t, c.Update("", "", "", time.Time{}, true))
}

func TestStatusFilter_IsValid(t *testing.T) {
	assert.True(t, StatusFilter("").IsValid())
	assert.True(t, StatusFilterActive.IsValid())
	assert.True(t, StatusFilterInactive.IsValid())
	assert.False(t, StatusFilter("archived").IsValid())
}
