package services

import (
	"context"
	"fmt"
	"time"

	"github.com/addsmd/healthy-api/internal/database"
	"github.com/addsmd/healthy-api/internal/models"
	"github.com/google/uuid"
)

type EventService struct {
	db *database.DB
}

func NewEventService(db *database.DB) *EventService {
	return &EventService{db: db}
}

type CreateEventParams struct {
	Title                   string
	StartTime               time.Time
	City                    string
	Place                   string
	Paid                    bool
	Description             string
	OrganizationDescription string
	PaidDescription         string
	Activity                uuid.UUID
}

func (s *EventService) Create(ctx context.Context, params CreateEventParams, createdBy uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO events (title, start_time, city, place, paid, description, organization_description, paid_description, activity, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, title, start_time, city, place, paid, description, organization_description, paid_description, activity, created_by, created_at
	`, params.Title, params.StartTime, params.City, params.Place, params.Paid,
		params.Description, params.OrganizationDescription, params.PaidDescription,
		params.Activity, createdBy).Scan(
		&event.ID, &event.Title, &event.StartTime, &event.City, &event.Place,
		&event.Paid, &event.Description, &event.OrganizationDescription,
		&event.PaidDescription, &event.Activity, &event.CreatedBy, &event.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &event, nil
}

// List returns events matching the filter, soonest first. Like annotation is
// the EngagementService's job; rows come back with Like=false.
func (s *EventService) List(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	where, args := filter.Where()

	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, title, start_time, city, place, paid, description, organization_description, paid_description, activity, created_by, created_at
		FROM events
		WHERE `+where+`
		ORDER BY start_time ASC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(
			&event.ID, &event.Title, &event.StartTime, &event.City, &event.Place,
			&event.Paid, &event.Description, &event.OrganizationDescription,
			&event.PaidDescription, &event.Activity, &event.CreatedBy, &event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}
