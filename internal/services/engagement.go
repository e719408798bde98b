package services

import (
	"context"
	"fmt"

	"github.com/addsmd/healthy-api/internal/database"
	"github.com/addsmd/healthy-api/internal/models"
	"github.com/google/uuid"
)

// EngagementService owns the participation and like relations between users
// and events. Both relations are UNIQUE(user_id, event_id): adding twice is a
// no-op, and so is removing a pair that was never there.
type EngagementService struct {
	db *database.DB
}

func NewEngagementService(db *database.DB) *EngagementService {
	return &EngagementService{db: db}
}

func (s *EngagementService) AddParticipation(ctx context.Context, userID, eventID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO event_visitors (user_id, event_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, eventID)
	if err != nil {
		return fmt.Errorf("failed to add participation: %w", err)
	}
	return nil
}

func (s *EngagementService) RemoveParticipation(ctx context.Context, userID, eventID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `
		DELETE FROM event_visitors
		WHERE user_id = $1 AND event_id = $2
	`, userID, eventID)
	if err != nil {
		return fmt.Errorf("failed to remove participation: %w", err)
	}
	return nil
}

func (s *EngagementService) AddLike(ctx context.Context, userID, eventID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO event_likes (user_id, event_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, eventID)
	if err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}
	return nil
}

func (s *EngagementService) RemoveLike(ctx context.Context, userID, eventID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `
		DELETE FROM event_likes
		WHERE user_id = $1 AND event_id = $2
	`, userID, eventID)
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

func (s *EngagementService) ListParticipants(ctx context.Context, eventID uuid.UUID) ([]models.Participant, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT u.id, u.name, u.picture
		FROM event_visitors ev
		JOIN users u ON ev.user_id = u.id
		WHERE ev.event_id = $1
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.UserID, &p.Name, &p.Picture); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}

// LikedEventIDs fetches the set of event ids the user has liked in one query.
func (s *EngagementService) LikedEventIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT event_id FROM event_likes WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch likes: %w", err)
	}
	defer rows.Close()

	liked := make(map[uuid.UUID]bool)
	for rows.Next() {
		var eventID uuid.UUID
		if err := rows.Scan(&eventID); err != nil {
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		liked[eventID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate likes: %w", err)
	}

	return liked, nil
}

// AnnotateLikes sets Like on each event for the given user. A nil user leaves
// every event at Like=false. The in-memory match against the user's like set
// is equivalent to a per-row existence check.
func (s *EngagementService) AnnotateLikes(ctx context.Context, events []models.Event, userID *uuid.UUID) error {
	if userID == nil {
		return nil
	}

	liked, err := s.LikedEventIDs(ctx, *userID)
	if err != nil {
		return err
	}

	for i := range events {
		events[i].Like = liked[events[i].ID]
	}
	return nil
}
