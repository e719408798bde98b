package services

import (
	"context"
	"testing"

	"github.com/addsmd/healthy-api/internal/database"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupActivityService(t *testing.T) (*ActivityService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewActivityService(db), mock
}

func TestActivityService_List(t *testing.T) {
	svc, mock := setupActivityService(t)
	ctx := context.Background()
	id1 := uuid.New()
	id2 := uuid.New()

	rows := pgxmock.NewRows([]string{"id", "name", "active"}).
		AddRow(id1, "yoga", true).
		AddRow(id2, "running", false)

	mock.ExpectQuery(`SELECT .+ FROM activities`).
		WillReturnRows(rows)

	activities, err := svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "yoga", activities[0].Name)
	assert.False(t, activities[1].Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityService_List_Empty(t *testing.T) {
	svc, mock := setupActivityService(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .+ FROM activities`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "active"}))

	activities, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Empty(t, activities)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityService_List_StorageError(t *testing.T) {
	svc, mock := setupActivityService(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .+ FROM activities`).
		WillReturnError(assert.AnError)

	_, err := svc.List(ctx)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
