package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/addsmd/healthy-api/internal/models"
	"github.com/google/uuid"
)

// Fixtures provides helpers for seeding test data
type Fixtures struct {
	db *TestDB
}

func NewFixtures(db *TestDB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateUser inserts a user and returns it
func (f *Fixtures) CreateUser(t *testing.T, email, name string) *models.User {
	t.Helper()
	ctx := context.Background()

	var user models.User
	err := f.db.DB.Pool.QueryRow(ctx,
		`INSERT INTO users (email, name) VALUES ($1, $2)
		 RETURNING id, email, name, picture, created_at`,
		email, name,
	).Scan(&user.ID, &user.Email, &user.Name, &user.Picture, &user.CreatedAt)
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

// CreateActivity inserts an activity and returns it
func (f *Fixtures) CreateActivity(t *testing.T, name string) *models.Activity {
	t.Helper()
	ctx := context.Background()

	var activity models.Activity
	err := f.db.DB.Pool.QueryRow(ctx,
		`INSERT INTO activities (name) VALUES ($1) RETURNING id, name, active`,
		name,
	).Scan(&activity.ID, &activity.Name, &activity.Active)
	if err != nil {
		t.Fatalf("failed to create test activity: %v", err)
	}
	return &activity
}

// EventOption customizes a fixture event before insertion
type EventOption func(*models.Event)

func WithStartTime(ts time.Time) EventOption {
	return func(e *models.Event) { e.StartTime = ts }
}

func WithPaid(paid bool) EventOption {
	return func(e *models.Event) { e.Paid = paid }
}

func WithActivity(id uuid.UUID) EventOption {
	return func(e *models.Event) { e.Activity = &id }
}

func WithCity(city string) EventOption {
	return func(e *models.Event) { e.City = city }
}

// CreateEvent inserts an event owned by createdBy and returns it
func (f *Fixtures) CreateEvent(t *testing.T, title string, createdBy uuid.UUID, opts ...EventOption) *models.Event {
	t.Helper()
	ctx := context.Background()

	event := &models.Event{
		Title:     title,
		StartTime: time.Now().Add(24 * time.Hour),
		City:      "Chisinau",
		Place:     "Central Park",
	}
	for _, opt := range opts {
		opt(event)
	}

	err := f.db.DB.Pool.QueryRow(ctx,
		`INSERT INTO events (title, start_time, city, place, paid, description, organization_description, paid_description, activity, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		event.Title, event.StartTime, event.City, event.Place, event.Paid,
		event.Description, event.OrganizationDescription, event.PaidDescription,
		event.Activity, createdBy,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		t.Fatalf("failed to create test event: %v", err)
	}
	event.CreatedBy = &createdBy
	return event
}
