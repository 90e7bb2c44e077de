package persistence

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bizdash/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockGormDB opens GORM over sqlmock with the postgres dialector
func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func newMockDatabase(t *testing.T) (*Database, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockGormDB(t)
	return &Database{DB: gormDB, driver: DriverPostgres}, mock, mockDB
}

func TestDialector(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		d, err := Dialector(&config.DatabaseConfig{Driver: DriverPostgres, Host: "localhost", Port: 5432})
		require.NoError(t, err)
		assert.Equal(t, "postgres", d.Name())
	})

	t.Run("sqlite", func(t *testing.T) {
		d, err := Dialector(&config.DatabaseConfig{Driver: DriverSQLite, SQLitePath: "local.db"})
		require.NoError(t, err)
		assert.Equal(t, "sqlite", d.Name())
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Dialector(&config.DatabaseConfig{Driver: "mysql"})
		assert.Error(t, err)
	})
}

func TestNewDatabase_SQLiteAutoMigrate(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:     DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "bizdash.db"),
	}

	db, err := NewDatabase(cfg, nil)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, DriverSQLite, db.Driver())
	require.NoError(t, db.AutoMigrate())

	for _, table := range []string{"users", "clients", "employees", "financial_transactions", "inventory_items", "tasks", "orders", "device_tokens"} {
		assert.True(t, db.DB.Migrator().HasTable(table), table)
	}

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MaxOpenConnections)
}

func TestDatabase_Ping(t *testing.T) {
	db, mock, mockDB := newMockDatabase(t)
	defer mockDB.Close()

	mock.ExpectPing()

	assert.NoError(t, db.Ping())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabase_Close(t *testing.T) {
	db, mock, _ := newMockDatabase(t)

	mock.ExpectClose()

	assert.NoError(t, db.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnerScope(t *testing.T) {
	t.Run("adds owner filter", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		type Record struct {
			ID      uint
			OwnerID uuid.UUID
		}
		ownerID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "records" WHERE owner_id = \$1 ORDER BY created_at ASC`).
			WithArgs(ownerID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id"}).AddRow(1, ownerID))

		var out []Record
		require.NoError(t, gormDB.Scopes(OwnerScope(ownerID), CreatedOrder).Find(&out).Error)
		assert.Len(t, out, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil owner never reaches the database", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		type Record struct{ ID uint }
		var out []Record
		err := ownedDB(t.Context(), gormDB, uuid.Nil).Find(&out).Error

		assert.ErrorIs(t, err, ErrOwnerIDRequired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
