package models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID                      uuid.UUID  `json:"id"`
	Title                   string     `json:"title"`
	StartTime               time.Time  `json:"start_time"`
	City                    string     `json:"city"`
	Place                   string     `json:"place"`
	Paid                    bool       `json:"paid"`
	Description             string     `json:"description"`
	OrganizationDescription string     `json:"organization_description"`
	PaidDescription         string     `json:"paid_description"`
	Activity                *uuid.UUID `json:"activity"`
	CreatedBy               *uuid.UUID `json:"-"`
	CreatedAt               time.Time  `json:"created_at"`

	// Like is set per request for the authenticated caller, false otherwise.
	Like bool `json:"like"`
}

// Participant is a user joined through the event_visitors relation.
type Participant struct {
	UserID  uuid.UUID `json:"user_id"`
	Name    string    `json:"name"`
	Picture *string   `json:"picture"`
}
