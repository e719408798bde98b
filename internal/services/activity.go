package services

import (
	"context"
	"fmt"

	"github.com/addsmd/healthy-api/internal/database"
	"github.com/addsmd/healthy-api/internal/models"
)

type ActivityService struct {
	db *database.DB
}

func NewActivityService(db *database.DB) *ActivityService {
	return &ActivityService{db: db}
}

// List returns every activity in the reference table. The table is managed
// externally (see cmd/seed-activities); this service never writes to it.
func (s *ActivityService) List(ctx context.Context) ([]models.Activity, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, name, active FROM activities
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.Active); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}

	return activities, nil
}
