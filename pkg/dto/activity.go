package dto

import "github.com/google/uuid"

type ActivityResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
