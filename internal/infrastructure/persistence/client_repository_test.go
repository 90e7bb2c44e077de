package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bizdash/backend/internal/domain/client"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientColumns = []string{"id", "owner_id", "name", "phone", "email", "date_added", "is_active", "created_at", "updated_at"}

func TestGormClientRepository_FindAllForOwner(t *testing.T) {
	t.Run("filters by owner and active tab", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormClientRepository(gormDB)

		ownerID := uuid.New()
		now := time.Now()
		rows := sqlmock.NewRows(clientColumns).
			AddRow(uuid.New(), ownerID, "Acme", "050-1234567", "acme@example.com", now, true, now, now)

		mock.ExpectQuery(`SELECT \* FROM "clients" WHERE owner_id = \$1 AND is_active = \$2 ORDER BY created_at ASC`).
			WithArgs(ownerID, true).
			WillReturnRows(rows)

		clients, err := repo.FindAllForOwner(context.Background(), ownerID, client.Filter{Status: client.StatusFilterActive})

		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, "Acme", clients[0].Name)
		assert.Equal(t, ownerID, clients[0].OwnerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("all tab adds no status filter", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormClientRepository(gormDB)

		ownerID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "clients" WHERE owner_id = \$1 ORDER BY created_at ASC`).
			WithArgs(ownerID).
			WillReturnRows(sqlmock.NewRows(clientColumns))

		clients, err := repo.FindAllForOwner(context.Background(), ownerID, client.Filter{Status: client.StatusFilterAll})

		require.NoError(t, err)
		assert.Empty(t, clients)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClientRepository_FindByIDForOwner(t *testing.T) {
	t.Run("another owner's client is not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormClientRepository(gormDB)

		ownerID, clientID := uuid.New(), uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "clients" WHERE owner_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(ownerID, clientID, 1).
			WillReturnRows(sqlmock.NewRows(clientColumns))

		found, err := repo.FindByIDForOwner(context.Background(), ownerID, clientID)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormClientRepository_Save(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormClientRepository(gormDB)

	c, err := client.NewClient(uuid.New(), "Acme", "", "", time.Time{}, true)
	require.NoError(t, err)

	mock.ExpectExec(`UPDATE "clients" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormClientRepository_DeleteForOwner(t *testing.T) {
	t.Run("deletes within owner", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormClientRepository(gormDB)

		ownerID, clientID := uuid.New(), uuid.New()
		mock.ExpectExec(`DELETE FROM "clients" WHERE owner_id = \$1 AND id = \$2`).
			WithArgs(ownerID, clientID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteForOwner(context.Background(), ownerID, clientID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when nothing matched", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormClientRepository(gormDB)

		ownerID, clientID := uuid.New(), uuid.New()
		mock.ExpectExec(`DELETE FROM "clients" WHERE owner_id = \$1 AND id = \$2`).
			WithArgs(ownerID, clientID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteForOwner(context.Background(), ownerID, clientID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
