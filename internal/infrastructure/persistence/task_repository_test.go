package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/domain/task"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var taskColumns = []string{"id", "owner_id", "name", "due_date", "status", "repeat", "created_at", "updated_at"}

func TestGormTaskRepository_FindAllForOwner(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormTaskRepository(gormDB)

	ownerID := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE owner_id = \$1 AND status = \$2 ORDER BY created_at ASC`).
		WithArgs(ownerID, task.StatusOpen).
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow(uuid.New(), ownerID, "Pay rent", nil, "open", "monthly", now, now))

	tasks, err := repo.FindAllForOwner(context.Background(), ownerID, task.Filter{Status: task.StatusOpen})

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Nil(t, tasks[0].DueDate)
	assert.Equal(t, task.RepeatMonthly, tasks[0].Repeat)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTaskRepository_FindByIDForOwner(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormTaskRepository(gormDB)

	ownerID, taskID := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE owner_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
		WithArgs(ownerID, taskID, 1).
		WillReturnRows(sqlmock.NewRows(taskColumns))

	_, err := repo.FindByIDForOwner(context.Background(), ownerID, taskID)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
