package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/bizdash/backend/internal/application/finance"
	"github.com/bizdash/backend/internal/application/ledger"
	"github.com/bizdash/backend/internal/domain/employee"
	"github.com/bizdash/backend/internal/infrastructure/auth"
	"github.com/bizdash/backend/internal/infrastructure/cache"
	"github.com/bizdash/backend/tests/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisShiftStore(t *testing.T) {
	client := NewTestRedis(t)
	store := cache.NewRedisShiftStore(client, "it:shift:")
	ctx := testutil.ContextWithTimeout(t, 30*time.Second)

	owner, other := uuid.New(), uuid.New()
	emp := uuid.New()
	started := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Begin(ctx, employee.ActiveShift{OwnerID: owner, EmployeeID: emp, StartedAt: started}))
	assert.ErrorIs(t, store.Begin(ctx, employee.ActiveShift{OwnerID: owner, EmployeeID: emp, StartedAt: started}), employee.ErrShiftAlreadyStarted)

	found, err := store.Find(ctx, owner, emp)
	require.NoError(t, err)
	assert.True(t, started.Equal(found.StartedAt))

	running, err := store.ListForOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, running, 1)

	running, err = store.ListForOwner(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, running)

	_, err = store.Find(ctx, other, emp)
	assert.ErrorIs(t, err, employee.ErrShiftNotStarted)

	ended, err := store.End(ctx, owner, emp)
	require.NoError(t, err)
	assert.Equal(t, emp, ended.EmployeeID)

	_, err = store.End(ctx, owner, emp)
	assert.ErrorIs(t, err, employee.ErrShiftNotStarted)
}

func TestRedisTokenBlacklist(t *testing.T) {
	client := NewTestRedis(t)
	blacklist := auth.NewRedisTokenBlacklist(client)
	ctx := testutil.ContextWithTimeout(t, 30*time.Second)

	revoked, err := blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-1", time.Minute))
	revoked, err = blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	ownerID := uuid.NewString()
	issued := time.Now().Add(-time.Hour)
	invalidated, err := blacklist.IsOwnerInvalidated(ctx, ownerID, issued)
	require.NoError(t, err)
	assert.False(t, invalidated)

	require.NoError(t, blacklist.InvalidateOwner(ctx, ownerID, time.Hour))
	invalidated, err = blacklist.IsOwnerInvalidated(ctx, ownerID, issued)
	require.NoError(t, err)
	assert.True(t, invalidated)

	invalidated, err = blacklist.IsOwnerInvalidated(ctx, ownerID, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, invalidated, "tokens issued after the cutoff stay valid")
}

func TestHourlyShiftsWithRedis(t *testing.T) {
	db := NewTestDB(t)
	client := NewTestRedis(t)
	srv := newAPIServer(t, db.Database, auth.NewRedisTokenBlacklist(client), cache.NewRedisShiftStore(client, ""))
	api, _ := srv.signedIn(t, "shifts@example.com")

	w := api.Do(http.MethodPost, "/api/v1/employees", map[string]any{
		"name": "Noa", "salary_type": "hourly", "hourly_rate": "50",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	emp := testutil.DecodeData[map[string]any](t, w)
	id := emp["id"].(string)

	testutil.AssertErrorResponse(t, api.Do(http.MethodPost, "/api/v1/employees/"+id+"/shift/end", nil), http.StatusConflict, "SHIFT_NOT_STARTED")

	w = api.Do(http.MethodPost, "/api/v1/employees/"+id+"/shift/start", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	testutil.AssertErrorResponse(t, api.Do(http.MethodPost, "/api/v1/employees/"+id+"/shift/start", nil), http.StatusConflict, "SHIFT_ALREADY_STARTED")

	w = api.Do(http.MethodGet, "/api/v1/employees/shifts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, testutil.DecodeData[[]ledger.ShiftResponse](t, w), 1)

	srv.Clock.Advance(2 * time.Hour)

	w = api.Do(http.MethodPost, "/api/v1/employees/"+id+"/shift/end", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ended := testutil.DecodeData[ledger.ShiftEndResponse](t, w)
	assert.True(t, decimal.NewFromInt(2).Equal(ended.Hours), ended.Hours.String())
	assert.True(t, decimal.NewFromInt(100).Equal(ended.Earned), ended.Earned.String())

	w = api.Do(http.MethodGet, "/api/v1/finances", nil)
	require.Equal(t, http.StatusOK, w.Code)
	txs := testutil.DecodeData[[]finance.TransactionResponse](t, w)
	require.Len(t, txs, 1)
	assert.Equal(t, "Hourly salary for Noa", txs[0].Description)
	assert.Equal(t, "expense", txs[0].Type)
	assert.True(t, decimal.NewFromInt(100).Equal(txs[0].Amount))

	// the shift key is gone once the shift ends
	keys, err := client.Keys(context.Background(), "ledger:shift:*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys)
}
