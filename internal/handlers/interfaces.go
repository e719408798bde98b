package handlers

import (
	"context"

	"github.com/addsmd/healthy-api/internal/models"
	"github.com/addsmd/healthy-api/internal/services"
	"github.com/google/uuid"
)

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	FindOrCreateByEmail(ctx context.Context, email, name, picture string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// JWTServiceInterface defines the methods used by handlers from JWTService
type JWTServiceInterface interface {
	IssueToken(userID uuid.UUID, email, name, picture string) (string, error)
}

// ActivityServiceInterface defines the methods used by handlers from ActivityService
type ActivityServiceInterface interface {
	List(ctx context.Context) ([]models.Activity, error)
}

// EventServiceInterface defines the methods used by handlers from EventService
type EventServiceInterface interface {
	Create(ctx context.Context, params services.CreateEventParams, createdBy uuid.UUID) (*models.Event, error)
	List(ctx context.Context, filter services.EventFilter) ([]models.Event, error)
}

// EngagementServiceInterface defines the methods used by handlers from EngagementService
type EngagementServiceInterface interface {
	AddParticipation(ctx context.Context, userID, eventID uuid.UUID) error
	RemoveParticipation(ctx context.Context, userID, eventID uuid.UUID) error
	AddLike(ctx context.Context, userID, eventID uuid.UUID) error
	RemoveLike(ctx context.Context, userID, eventID uuid.UUID) error
	ListParticipants(ctx context.Context, eventID uuid.UUID) ([]models.Participant, error)
	AnnotateLikes(ctx context.Context, events []models.Event, userID *uuid.UUID) error
}
