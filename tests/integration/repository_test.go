package integration

import (
	"context"
	"testing"
	"time"

	"github.com/bizdash/backend/internal/domain/identity"
	"github.com/bizdash/backend/internal/domain/order"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/domain/task"
	"github.com/bizdash/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOwner(t *testing.T, users *persistence.GormUserRepository, email string) uuid.UUID {
	t.Helper()
	u, err := identity.NewUser(email, "s3cret-pass", identity.Profile{FullName: "Owner", BusinessName: "Shop"})
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), u))
	return u.ID
}

func TestRepositories_Postgres(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	users := persistence.NewGormUserRepository(db.DB)

	t.Run("tasks are listed oldest first", func(t *testing.T) {
		db.CleanTables(t)
		owner := createOwner(t, users, "tasks@example.com")
		repo := persistence.NewGormTaskRepository(db.DB)

		for _, name := range []string{"first", "second", "third"} {
			tk, err := task.NewTask(owner, name, nil, "")
			require.NoError(t, err)
			require.NoError(t, repo.Save(ctx, tk))
			time.Sleep(5 * time.Millisecond)
		}

		got, err := repo.FindAllForOwner(ctx, owner, task.Filter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "first", got[0].Name)
		assert.Equal(t, "third", got[2].Name)
	})

	t.Run("records are scoped to their owner", func(t *testing.T) {
		db.CleanTables(t)
		owner := createOwner(t, users, "a@example.com")
		stranger := createOwner(t, users, "b@example.com")
		repo := persistence.NewGormOrderRepository(db.DB)

		o, err := order.NewOrder(owner, "ORD-2024-001", order.Details{
			Client:      "Acme",
			OrderDate:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			TotalAmount: decimal.NewFromInt(250),
		})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, o))

		_, err = repo.FindByIDForOwner(ctx, stranger, o.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.DeleteForOwner(ctx, stranger, o.ID), shared.ErrNotFound)

		exists, err := repo.ExistsByNumber(ctx, stranger, "ORD-2024-001")
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.ExistsByNumber(ctx, owner, "ORD-2024-001")
		require.NoError(t, err)
		assert.True(t, exists)

		found, err := repo.FindByIDForOwner(ctx, owner, o.ID)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(250).Equal(found.TotalAmount))
		assert.Equal(t, order.StatusPending, found.Status)
	})

	t.Run("deleting a user cascades to their records", func(t *testing.T) {
		db.CleanTables(t)
		owner := createOwner(t, users, "gone@example.com")
		repo := persistence.NewGormTaskRepository(db.DB)
		tk, err := task.NewTask(owner, "orphan", nil, "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, tk))

		require.NoError(t, db.DB.Exec("DELETE FROM users WHERE id = ?", owner).Error)

		got, err := repo.FindAllForOwner(ctx, owner, task.Filter{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
