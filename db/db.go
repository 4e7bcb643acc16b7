package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // Import postgres driver
)

func Connect(dsn string, timeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database handle: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify the connection with a timeout
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database within %v: %w (close error: %v)", timeout, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database within %v: %w", timeout, err)
	}

	return db, nil
}

// Migrate создаёт схему при старте процесса, если её ещё нет.
// Timestamp-колонки матча хранятся как RFC3339-текст, списки игроков и состав
// турнира - как JSON-текст.
func Migrate(ctx context.Context, db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS tournaments (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			location TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			teams TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS matches (
			id BIGSERIAL PRIMARY KEY,
			tournament_id BIGINT REFERENCES tournaments(id),
			team1 TEXT NOT NULL,
			team2 TEXT NOT NULL,
			date TEXT NOT NULL,
			location TEXT NOT NULL,
			status TEXT NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			shots_on_goal1 INTEGER NOT NULL DEFAULT 0,
			shots_on_goal2 INTEGER NOT NULL DEFAULT 0,
			shots_on_target1 INTEGER NOT NULL DEFAULT 0,
			shots_on_target2 INTEGER NOT NULL DEFAULT 0,
			yellow_cards1 INTEGER NOT NULL DEFAULT 0,
			yellow_cards2 INTEGER NOT NULL DEFAULT 0,
			red_cards1 INTEGER NOT NULL DEFAULT 0,
			red_cards2 INTEGER NOT NULL DEFAULT 0,
			corners1 INTEGER NOT NULL DEFAULT 0,
			corners2 INTEGER NOT NULL DEFAULT 0,
			possession1 INTEGER NOT NULL DEFAULT 0,
			possession2 INTEGER NOT NULL DEFAULT 0,
			start_time TEXT,
			duration INTEGER,
			goal_scorers1 TEXT,
			goal_scorers2 TEXT,
			yellow_card_players1 TEXT,
			yellow_card_players2 TEXT,
			red_card_players1 TEXT,
			red_card_players2 TEXT,
			match_type TEXT,
			referee TEXT,
			stage TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_tournament_id ON matches(tournament_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
