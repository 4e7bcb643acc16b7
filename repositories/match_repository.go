package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avrusanov/sport-match-manager/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound          = errors.New("match not found")
	ErrMatchTournamentInvalid = errors.New("match tournament reference invalid")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, row *models.MatchRow) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.MatchRow, error)
	List(ctx context.Context) ([]*models.MatchRow, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.MatchRow, error)
	Update(ctx context.Context, exec SQLExecutor, row *models.MatchRow) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const matchColumns = `
	id, tournament_id, team1, team2, date, location, status, score1, score2,
	shots_on_goal1, shots_on_goal2, shots_on_target1, shots_on_target2,
	yellow_cards1, yellow_cards2, red_cards1, red_cards2,
	corners1, corners2, possession1, possession2,
	start_time, duration,
	goal_scorers1, goal_scorers2, yellow_card_players1, yellow_card_players2,
	red_card_players1, red_card_players2,
	match_type, referee, stage`

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, row *models.MatchRow) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO matches (
			tournament_id, team1, team2, date, location, status, score1, score2,
			shots_on_goal1, shots_on_goal2, shots_on_target1, shots_on_target2,
			yellow_cards1, yellow_cards2, red_cards1, red_cards2,
			corners1, corners2, possession1, possession2,
			start_time, duration,
			goal_scorers1, goal_scorers2, yellow_card_players1, yellow_card_players2,
			red_card_players1, red_card_players2,
			match_type, referee, stage
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22,
			$23, $24, $25, $26, $27, $28,
			$29, $30, $31
		)
		RETURNING id`

	err := executor.QueryRowContext(ctx, query,
		row.TournamentID, row.Team1, row.Team2, row.Date, row.Location, row.Status,
		row.Score1, row.Score2,
		row.ShotsOnGoal1, row.ShotsOnGoal2, row.ShotsOnTarget1, row.ShotsOnTarget2,
		row.YellowCards1, row.YellowCards2, row.RedCards1, row.RedCards2,
		row.Corners1, row.Corners2, row.Possession1, row.Possession2,
		row.StartTime, row.Duration,
		row.GoalScorers1, row.GoalScorers2, row.YellowCardPlayers1, row.YellowCardPlayers2,
		row.RedCardPlayers1, row.RedCardPlayers2,
		row.MatchType, row.Referee, row.Stage,
	).Scan(&row.ID)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.MatchRow, error) {
	executor := r.getExecutor(exec)
	query := `SELECT` + matchColumns + ` FROM matches WHERE id = $1`

	row := &models.MatchRow{}
	err := scanMatchRow(executor.QueryRowContext(ctx, query, id), row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match by id %d: %w", id, err)
	}
	return row, nil
}

func (r *postgresMatchRepository) List(ctx context.Context) ([]*models.MatchRow, error) {
	query := `SELECT` + matchColumns + ` FROM matches ORDER BY id ASC`
	return r.queryMatches(ctx, query)
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.MatchRow, error) {
	query := `SELECT` + matchColumns + ` FROM matches WHERE tournament_id = $1 ORDER BY id ASC`
	return r.queryMatches(ctx, query, tournamentID)
}

func (r *postgresMatchRepository) queryMatches(ctx context.Context, query string, args ...interface{}) ([]*models.MatchRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.MatchRow, 0)
	for rows.Next() {
		row := &models.MatchRow{}
		if scanErr := scanMatchRow(rows, row); scanErr != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", scanErr)
		}
		matches = append(matches, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}

func (r *postgresMatchRepository) Update(ctx context.Context, exec SQLExecutor, row *models.MatchRow) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE matches SET
			tournament_id = $1, team1 = $2, team2 = $3, date = $4, location = $5,
			status = $6, score1 = $7, score2 = $8,
			shots_on_goal1 = $9, shots_on_goal2 = $10,
			shots_on_target1 = $11, shots_on_target2 = $12,
			yellow_cards1 = $13, yellow_cards2 = $14,
			red_cards1 = $15, red_cards2 = $16,
			corners1 = $17, corners2 = $18,
			possession1 = $19, possession2 = $20,
			start_time = $21, duration = $22,
			goal_scorers1 = $23, goal_scorers2 = $24,
			yellow_card_players1 = $25, yellow_card_players2 = $26,
			red_card_players1 = $27, red_card_players2 = $28,
			match_type = $29, referee = $30, stage = $31
		WHERE id = $32`

	result, err := executor.ExecContext(ctx, query,
		row.TournamentID, row.Team1, row.Team2, row.Date, row.Location,
		row.Status, row.Score1, row.Score2,
		row.ShotsOnGoal1, row.ShotsOnGoal2, row.ShotsOnTarget1, row.ShotsOnTarget2,
		row.YellowCards1, row.YellowCards2, row.RedCards1, row.RedCards2,
		row.Corners1, row.Corners2, row.Possession1, row.Possession2,
		row.StartTime, row.Duration,
		row.GoalScorers1, row.GoalScorers2, row.YellowCardPlayers1, row.YellowCardPlayers2,
		row.RedCardPlayers1, row.RedCardPlayers2,
		row.MatchType, row.Referee, row.Stage,
		row.ID,
	)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

// rowScanner покрывает *sql.Row и *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMatchRow(s rowScanner, row *models.MatchRow) error {
	return s.Scan(
		&row.ID, &row.TournamentID, &row.Team1, &row.Team2, &row.Date,
		&row.Location, &row.Status, &row.Score1, &row.Score2,
		&row.ShotsOnGoal1, &row.ShotsOnGoal2, &row.ShotsOnTarget1, &row.ShotsOnTarget2,
		&row.YellowCards1, &row.YellowCards2, &row.RedCards1, &row.RedCards2,
		&row.Corners1, &row.Corners2, &row.Possession1, &row.Possession2,
		&row.StartTime, &row.Duration,
		&row.GoalScorers1, &row.GoalScorers2, &row.YellowCardPlayers1, &row.YellowCardPlayers2,
		&row.RedCardPlayers1, &row.RedCardPlayers2,
		&row.MatchType, &row.Referee, &row.Stage,
	)
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// "23503": foreign_key_violation
		if pqErr.Constraint == "matches_tournament_id_fkey" {
			return ErrMatchTournamentInvalid
		}
	}
	return err
}
