package dto

import "github.com/google/uuid"

type EventCreateRequest struct {
	Title                   string `json:"title"`
	StartTime               string `json:"start_time"`
	City                    string `json:"city"`
	Place                   string `json:"place"`
	Paid                    bool   `json:"paid"`
	Description             string `json:"description"`
	OrganizationDescription string `json:"organization_description"`
	PaidDescription         string `json:"paid_description"`
	Activity                string `json:"activity"`
}

type EventResponse struct {
	ID                      uuid.UUID  `json:"id"`
	Title                   string     `json:"title"`
	StartTime               string     `json:"start_time"`
	City                    string     `json:"city"`
	Place                   string     `json:"place"`
	Paid                    bool       `json:"paid"`
	Description             string     `json:"description"`
	OrganizationDescription string     `json:"organization_description"`
	PaidDescription         string     `json:"paid_description"`
	Activity                *uuid.UUID `json:"activity"`
	Like                    bool       `json:"like"`
}

type ParticipantResponse struct {
	UserID  uuid.UUID `json:"user_id"`
	Name    string    `json:"name"`
	Picture *string   `json:"picture"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
