package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/avrusanov/sport-match-manager/codec"
	"github.com/avrusanov/sport-match-manager/models"
	"github.com/avrusanov/sport-match-manager/repositories"
)

type CreateTournamentInput struct {
	Name      string        `json:"name"`
	Location  string        `json:"location"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Teams     []models.Team `json:"teams"`
}

type TournamentService interface {
	CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	ListTournaments(ctx context.Context) ([]models.Tournament, error)
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
}

func NewTournamentService(tournamentRepo repositories.TournamentRepository) TournamentService {
	return &tournamentService{tournamentRepo: tournamentRepo}
}

// validateCreateTournament проверяет обязательные поля создаваемого турнира.
func validateCreateTournament(input CreateTournamentInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case strings.TrimSpace(input.Location) == "":
		return fmt.Errorf("%w: location is required", ErrValidation)
	case strings.TrimSpace(input.StartDate) == "":
		return fmt.Errorf("%w: startDate is required", ErrValidation)
	case strings.TrimSpace(input.EndDate) == "":
		return fmt.Errorf("%w: endDate is required", ErrValidation)
	}
	return nil
}

func (s *tournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	if err := validateCreateTournament(input); err != nil {
		return nil, err
	}

	// Состав команд записывается один раз при создании и в ответах
	// возвращается как записан, без обратного декодирования.
	teams, err := codec.EncodeTeams(input.Teams)
	if err != nil {
		return nil, err
	}

	tournament := &models.Tournament{
		Name:      input.Name,
		Location:  input.Location,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Teams:     teams,
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return tournament, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	if tournaments == nil {
		return []models.Tournament{}, nil
	}
	return tournaments, nil
}
