package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bizdash/backend/internal/domain/notification"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormDeviceTokenRepository_Upsert(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormDeviceTokenRepository(gormDB)

	token, err := notification.NewDeviceToken(uuid.New(), "fcm-token", notification.PlatformAndroid)
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "device_tokens" .* ON CONFLICT \("token"\) DO UPDATE SET "owner_id"="excluded"."owner_id"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Upsert(context.Background(), token))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormDeviceTokenRepository_DeleteForOwner(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormDeviceTokenRepository(gormDB)

	ownerID := uuid.New()
	mock.ExpectExec(`DELETE FROM "device_tokens" WHERE owner_id = \$1 AND token = \$2`).
		WithArgs(ownerID, "fcm-token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteForOwner(context.Background(), ownerID, "fcm-token")

	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
