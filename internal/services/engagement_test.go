package services

import (
	"context"
	"testing"

	"github.com/addsmd/healthy-api/internal/database"
	"github.com/addsmd/healthy-api/internal/models"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEngagementService(t *testing.T) (*EngagementService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewEngagementService(db), mock
}

func TestEngagementService_AddParticipation(t *testing.T) {
	svc, mock := setupEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	mock.ExpectExec(`INSERT INTO event_visitors`).
		WithArgs(userID, eventID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := svc.AddParticipation(ctx, userID, eventID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngagementService_AddParticipation_Duplicate(t *testing.T) {
	svc, mock := setupEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	// ON CONFLICT DO NOTHING: duplicate insert affects zero rows and is not
	// an error
	mock.ExpectExec(`INSERT INTO event_visitors`).
		WithArgs(userID, eventID).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err := svc.AddParticipation(ctx, userID, eventID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngagementService_RemoveParticipation_Missing(t *testing.T) {
	svc, mock := setupEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	// Removing a pair that was never added is a no-op
	mock.ExpectExec(`DELETE FROM event_visitors`).
		WithArgs(userID, eventID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := svc.RemoveParticipation(ctx, userID, eventID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngagementService_AddLike_RemoveLike(t *testing.T) {
	svc, mock := setupEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	eventID := uuid.New()

	mock.ExpectExec(`INSERT INTO event_likes`).
		WithArgs(userID, eventID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	mock.ExpectExec(`DELETE FROM event_likes`).
		WithArgs(userID, eventID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, svc.AddLike(ctx, userID, eventID))
	require.NoError(t, svc.RemoveLike(ctx, userID, eventID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngagementService_AddLike_StorageError(t *testing.T) {
	svc, mock := setupEngagementService(t)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO event_likes`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(assert.AnError)

	err := svc.AddLike(ctx, uuid.New(), uuid.New())

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngagementService_ListParticipants(t *testing.T) {
	svc, mock := setupEngagementService(t)
	ctx := context.Background()
	eventID := uuid.New()
	user1 := uuid.New()
	user2 := uuid.New()
	picture := "https://example.com/p.png"

	rows := pgxmock.NewRows([]string{"id", "name", "picture"}).
		AddRow(user1, "Alice", &picture).
		AddRow(user2, "Bob", nil)

	mock.ExpectQuery(`SELECT .+ FROM event_visitors ev`).
		WithArgs(eventID).
		WillReturnRows(rows)

	participants, err := svc.ListParticipants(ctx, eventID)

	require.NoError(t, err)
	require.Len(t, participants, 2)
	assert.Equal(t, user1, participants[0].UserID)
	assert.Equal(t, "Alice", participants[0].Name)
	assert.Nil(t, participants[1].Picture)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngagementService_LikedEventIDs(t *testing.T) {
	svc, mock := setupEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	event1 := uuid.New()
	event2 := uuid.New()

	rows := pgxmock.NewRows([]string{"event_id"}).
		AddRow(event1).
		AddRow(event2)

	mock.ExpectQuery(`SELECT event_id FROM event_likes`).
		WithArgs(userID).
		WillReturnRows(rows)

	liked, err := svc.LikedEventIDs(ctx, userID)

	require.NoError(t, err)
	assert.True(t, liked[event1])
	assert.True(t, liked[event2])
	assert.False(t, liked[uuid.New()])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngagementService_AnnotateLikes(t *testing.T) {
	svc, mock := setupEngagementService(t)
	ctx := context.Background()
	userID := uuid.New()
	likedEvent := uuid.New()
	otherEvent := uuid.New()

	events := []models.Event{
		{ID: likedEvent},
		{ID: otherEvent},
	}

	rows := pgxmock.NewRows([]string{"event_id"}).
		AddRow(likedEvent)

	mock.ExpectQuery(`SELECT event_id FROM event_likes`).
		WithArgs(userID).
		WillReturnRows(rows)

	err := svc.AnnotateLikes(ctx, events, &userID)

	require.NoError(t, err)
	assert.True(t, events[0].Like)
	assert.False(t, events[1].Like)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEngagementService_AnnotateLikes_Anonymous(t *testing.T) {
	svc, mock := setupEngagementService(t)
	ctx := context.Background()

	events := []models.Event{
		{ID: uuid.New()},
		{ID: uuid.New()},
	}

	// No user -> no query, every event stays unliked
	err := svc.AnnotateLikes(ctx, events, nil)

	require.NoError(t, err)
	assert.False(t, events[0].Like)
	assert.False(t, events[1].Like)
	assert.NoError(t, mock.ExpectationsWereMet())
}
