package integration

import (
	"context"
	"testing"

	"github.com/addsmd/healthy-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Integration_FindOrCreateByEmail_CreateNew(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	user, err := svc.FindOrCreateByEmail(ctx, "newuser@example.com", "New User", "https://example.com/avatar.png")

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "newuser@example.com", user.Email)
	assert.Equal(t, "New User", user.Name)
	require.NotNil(t, user.Picture)
	assert.Equal(t, "https://example.com/avatar.png", *user.Picture)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserService_Integration_FindOrCreateByEmail_FindExisting(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	// Create user first
	user1, err := svc.FindOrCreateByEmail(ctx, "existing@example.com", "Existing User", "")
	require.NoError(t, err)

	// Repeat login with the same email resolves the same row
	user2, err := svc.FindOrCreateByEmail(ctx, "existing@example.com", "Existing User", "")
	require.NoError(t, err)

	assert.Equal(t, user1.ID, user2.ID)
}

func TestUserService_Integration_FindOrCreateByEmail_KeepsStoredProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	user1, err := svc.FindOrCreateByEmail(ctx, "stable@example.com", "Original Name", "")
	require.NoError(t, err)

	// A later login with a changed display name does not overwrite the row
	user2, err := svc.FindOrCreateByEmail(ctx, "stable@example.com", "Changed Name", "https://example.com/new.png")
	require.NoError(t, err)

	assert.Equal(t, user1.ID, user2.ID)
	assert.Equal(t, "Original Name", user2.Name)
	assert.Nil(t, user2.Picture)
}

func TestUserService_Integration_GetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	created, err := svc.FindOrCreateByEmail(ctx, "getbyid@example.com", "Test User", "")
	require.NoError(t, err)

	found, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.Email, found.Email)
	assert.Equal(t, created.Name, found.Name)
}

func TestUserService_Integration_GetByEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	created, err := svc.FindOrCreateByEmail(ctx, "byemail@example.com", "Test User", "")
	require.NoError(t, err)

	found, err := svc.GetByEmail(ctx, "byemail@example.com")
	require.NoError(t, err)

	assert.Equal(t, created.ID, found.ID)
}
