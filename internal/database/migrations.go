package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		picture VARCHAR(500),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		title VARCHAR(255) NOT NULL,
		start_time TIMESTAMP WITH TIME ZONE NOT NULL,
		city VARCHAR(255),
		place VARCHAR(255),
		paid BOOLEAN NOT NULL DEFAULT FALSE,
		description TEXT,
		organization_description TEXT,
		paid_description TEXT,
		activity UUID REFERENCES activities(id),
		created_by UUID REFERENCES users(id),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS event_visitors (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		UNIQUE(user_id, event_id)
	)`,

	`CREATE TABLE IF NOT EXISTS event_likes (
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		UNIQUE(user_id, event_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_start_time ON events(start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_events_activity ON events(activity)`,
	`CREATE INDEX IF NOT EXISTS idx_event_visitors_event_id ON event_visitors(event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_event_likes_user_id ON event_likes(user_id)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
