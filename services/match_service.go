package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avrusanov/sport-match-manager/codec"
	"github.com/avrusanov/sport-match-manager/models"
	"github.com/avrusanov/sport-match-manager/repositories"
)

// createBackdateWindow - допуск на расхождение часов и сетевые задержки.
// Матчи, датированные раньше, чем now−5min, считаются задним числом.
const createBackdateWindow = 5 * time.Minute

type MatchService interface {
	CreateMatch(ctx context.Context, input *models.Match) (*models.Match, error)
	ListMatches(ctx context.Context) ([]*models.Match, error)
	ListMatchesByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error)
	UpdateMatch(ctx context.Context, id int, patch *models.MatchPatch) (*models.Match, error)
}

type matchService struct {
	db             *sql.DB // для транзакций на мутирующих операциях
	matchRepo      repositories.MatchRepository
	tournamentRepo repositories.TournamentRepository

	// Лейбл статуса, по которому проставляется start_time (из конфигурации).
	inProgressStatus string

	now func() time.Time
}

func NewMatchService(
	db *sql.DB,
	matchRepo repositories.MatchRepository,
	tournamentRepo repositories.TournamentRepository,
	inProgressStatus string,
) MatchService {
	return &matchService{
		db:               db,
		matchRepo:        matchRepo,
		tournamentRepo:   tournamentRepo,
		inProgressStatus: inProgressStatus,
		now:              time.Now,
	}
}

// withTx выполняет fn в рамках одной транзакции. Без подключения к базе
// (db == nil) запросы идут напрямую через репозитории.
func (s *matchService) withTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	if s.db == nil {
		return fn(nil)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// validateCreateMatch проверяет обязательные поля создаваемого матча.
func validateCreateMatch(input *models.Match) error {
	switch {
	case strings.TrimSpace(input.Team1) == "":
		return fmt.Errorf("%w: team1 is required", ErrValidation)
	case strings.TrimSpace(input.Team2) == "":
		return fmt.Errorf("%w: team2 is required", ErrValidation)
	case input.Date.IsZero():
		return fmt.Errorf("%w: date is required", ErrValidation)
	case strings.TrimSpace(input.Location) == "":
		return fmt.Errorf("%w: location is required", ErrValidation)
	case strings.TrimSpace(input.Status) == "":
		return fmt.Errorf("%w: status is required", ErrValidation)
	}
	return nil
}

func (s *matchService) CreateMatch(ctx context.Context, input *models.Match) (*models.Match, error) {
	if err := validateCreateMatch(input); err != nil {
		return nil, err
	}

	bufferTime := s.now().UTC().Add(-createBackdateWindow)
	if input.Date.Before(bufferTime) {
		return nil, ErrMatchDateTooOld
	}

	row, err := codec.EncodeMatch(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode match: %w", err)
	}

	err = s.withTx(ctx, func(exec repositories.SQLExecutor) error {
		if input.TournamentID != nil {
			if _, err := s.tournamentRepo.GetByID(ctx, exec, *input.TournamentID); err != nil {
				if errors.Is(err, repositories.ErrTournamentNotFound) {
					return ErrTournamentNotFound
				}
				return fmt.Errorf("failed to check tournament %d: %w", *input.TournamentID, err)
			}
		}

		if err := s.matchRepo.Create(ctx, exec, row); err != nil {
			if errors.Is(err, repositories.ErrMatchTournamentInvalid) {
				return ErrTournamentNotFound
			}
			return fmt.Errorf("failed to insert match: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return codec.DecodeMatch(row)
}

func (s *matchService) ListMatches(ctx context.Context) ([]*models.Match, error) {
	rows, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return decodeMatchRows(rows)
}

func (s *matchService) ListMatchesByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	// Существование турнира не проверяется: для неизвестного id возвращается
	// пустой список.
	rows, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for tournament %d: %w", tournamentID, err)
	}
	return decodeMatchRows(rows)
}

func (s *matchService) UpdateMatch(ctx context.Context, id int, patch *models.MatchPatch) (*models.Match, error) {
	var updated *models.Match

	err := s.withTx(ctx, func(exec repositories.SQLExecutor) error {
		row, err := s.matchRepo.GetByID(ctx, exec, id)
		if err != nil {
			if errors.Is(err, repositories.ErrMatchNotFound) {
				return ErrMatchNotFound
			}
			return fmt.Errorf("failed to load match %d: %w", id, err)
		}

		current, err := codec.DecodeMatch(row)
		if err != nil {
			return err
		}

		s.applyPatch(current, patch)

		newRow, err := codec.EncodeMatch(current)
		if err != nil {
			return fmt.Errorf("failed to encode match %d: %w", id, err)
		}

		if err := s.matchRepo.Update(ctx, exec, newRow); err != nil {
			if errors.Is(err, repositories.ErrMatchNotFound) {
				return ErrMatchNotFound
			}
			if errors.Is(err, repositories.ErrMatchTournamentInvalid) {
				return ErrTournamentNotFound
			}
			return fmt.Errorf("failed to update match %d: %w", id, err)
		}

		updated, err = codec.DecodeMatch(newRow)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// applyPatch накладывает на матч только переданные поля; явный null
// в nullable-поле сбрасывает его в NULL. Если статус переводится в
// "матч идёт" и start_time ещё не проставлен, start_time выставляется
// в текущее время; явно переданный start_time имеет приоритет.
func (s *matchService) applyPatch(m *models.Match, patch *models.MatchPatch) {
	if patch.Status != nil && *patch.Status == s.inProgressStatus && m.StartTime == nil {
		stamped := s.now().UTC()
		m.StartTime = &stamped
	}

	if patch.TournamentID.Set {
		m.TournamentID = patch.TournamentID.Ptr()
	}
	if patch.Team1 != nil {
		m.Team1 = *patch.Team1
	}
	if patch.Team2 != nil {
		m.Team2 = *patch.Team2
	}
	if patch.Date != nil {
		m.Date = *patch.Date
	}
	if patch.Location != nil {
		m.Location = *patch.Location
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.Score1 != nil {
		m.Score1 = *patch.Score1
	}
	if patch.Score2 != nil {
		m.Score2 = *patch.Score2
	}
	if patch.ShotsOnGoal1 != nil {
		m.ShotsOnGoal1 = *patch.ShotsOnGoal1
	}
	if patch.ShotsOnGoal2 != nil {
		m.ShotsOnGoal2 = *patch.ShotsOnGoal2
	}
	if patch.ShotsOnTarget1 != nil {
		m.ShotsOnTarget1 = *patch.ShotsOnTarget1
	}
	if patch.ShotsOnTarget2 != nil {
		m.ShotsOnTarget2 = *patch.ShotsOnTarget2
	}
	if patch.YellowCards1 != nil {
		m.YellowCards1 = *patch.YellowCards1
	}
	if patch.YellowCards2 != nil {
		m.YellowCards2 = *patch.YellowCards2
	}
	if patch.RedCards1 != nil {
		m.RedCards1 = *patch.RedCards1
	}
	if patch.RedCards2 != nil {
		m.RedCards2 = *patch.RedCards2
	}
	if patch.Corners1 != nil {
		m.Corners1 = *patch.Corners1
	}
	if patch.Corners2 != nil {
		m.Corners2 = *patch.Corners2
	}
	if patch.Possession1 != nil {
		m.Possession1 = *patch.Possession1
	}
	if patch.Possession2 != nil {
		m.Possession2 = *patch.Possession2
	}
	if patch.StartTime.Set {
		m.StartTime = patch.StartTime.Ptr()
	}
	if patch.Duration.Set {
		m.Duration = patch.Duration.Ptr()
	}
	if patch.GoalScorers1 != nil {
		m.GoalScorers1 = patch.GoalScorers1
	}
	if patch.GoalScorers2 != nil {
		m.GoalScorers2 = patch.GoalScorers2
	}
	if patch.YellowCardPlayers1 != nil {
		m.YellowCardPlayers1 = patch.YellowCardPlayers1
	}
	if patch.YellowCardPlayers2 != nil {
		m.YellowCardPlayers2 = patch.YellowCardPlayers2
	}
	if patch.RedCardPlayers1 != nil {
		m.RedCardPlayers1 = patch.RedCardPlayers1
	}
	if patch.RedCardPlayers2 != nil {
		m.RedCardPlayers2 = patch.RedCardPlayers2
	}
	if patch.MatchType.Set {
		m.MatchType = patch.MatchType.Ptr()
	}
	if patch.Referee.Set {
		m.Referee = patch.Referee.Ptr()
	}
	if patch.Stage.Set {
		m.Stage = patch.Stage.Ptr()
	}
}

func decodeMatchRows(rows []*models.MatchRow) ([]*models.Match, error) {
	matches := make([]*models.Match, 0, len(rows))
	for _, row := range rows {
		m, err := codec.DecodeMatch(row)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, nil
}
