package testutil

import (
	"context"

	"github.com/addsmd/healthy-api/internal/models"
	"github.com/addsmd/healthy-api/internal/oauth"
	"github.com/addsmd/healthy-api/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserService mocks the UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) FindOrCreateByEmail(ctx context.Context, email, name, picture string) (*models.User, error) {
	args := m.Called(ctx, email, name, picture)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockJWTService mocks the JWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) IssueToken(userID uuid.UUID, email, name, picture string) (string, error) {
	args := m.Called(userID, email, name, picture)
	return args.String(0), args.Error(1)
}

// MockActivityService mocks the ActivityService
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) List(ctx context.Context) ([]models.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Activity), args.Error(1)
}

// MockEventService mocks the EventService
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Create(ctx context.Context, params services.CreateEventParams, createdBy uuid.UUID) (*models.Event, error) {
	args := m.Called(ctx, params, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventService) List(ctx context.Context, filter services.EventFilter) ([]models.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

// MockEngagementService mocks the EngagementService
type MockEngagementService struct {
	mock.Mock
}

func (m *MockEngagementService) AddParticipation(ctx context.Context, userID, eventID uuid.UUID) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

func (m *MockEngagementService) RemoveParticipation(ctx context.Context, userID, eventID uuid.UUID) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

func (m *MockEngagementService) AddLike(ctx context.Context, userID, eventID uuid.UUID) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

func (m *MockEngagementService) RemoveLike(ctx context.Context, userID, eventID uuid.UUID) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

func (m *MockEngagementService) ListParticipants(ctx context.Context, eventID uuid.UUID) ([]models.Participant, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Participant), args.Error(1)
}

func (m *MockEngagementService) AnnotateLikes(ctx context.Context, events []models.Event, userID *uuid.UUID) error {
	args := m.Called(ctx, events, userID)
	return args.Error(0)
}

// MockOAuthProvider mocks an oauth.Provider
type MockOAuthProvider struct {
	mock.Mock
}

func (m *MockOAuthProvider) GetConsentURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockOAuthProvider) ExchangeCode(ctx context.Context, code string) (*oauth.UserInfo, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth.UserInfo), args.Error(1)
}

func (m *MockOAuthProvider) Name() string {
	args := m.Called()
	return args.String(0)
}
