package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avrusanov/sport-match-manager/handlers"
	"github.com/avrusanov/sport-match-manager/models"
	"github.com/avrusanov/sport-match-manager/services"
	"github.com/go-chi/chi/v5"
)

type stubMatchService struct {
	createResult *models.Match
	createErr    error
	listResult   []*models.Match
	listErr      error
	updateResult *models.Match
	updateErr    error

	listTournamentID int
}

func (s *stubMatchService) CreateMatch(ctx context.Context, input *models.Match) (*models.Match, error) {
	return s.createResult, s.createErr
}

func (s *stubMatchService) ListMatches(ctx context.Context) ([]*models.Match, error) {
	return s.listResult, s.listErr
}

func (s *stubMatchService) ListMatchesByTournament(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	s.listTournamentID = tournamentID
	return s.listResult, s.listErr
}

func (s *stubMatchService) UpdateMatch(ctx context.Context, id int, patch *models.MatchPatch) (*models.Match, error) {
	return s.updateResult, s.updateErr
}

type stubTournamentService struct {
	createResult *models.Tournament
	createErr    error
	listResult   []models.Tournament
	listErr      error
}

func (s *stubTournamentService) CreateTournament(ctx context.Context, input services.CreateTournamentInput) (*models.Tournament, error) {
	return s.createResult, s.createErr
}

func (s *stubTournamentService) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	return s.listResult, s.listErr
}

func newTestServer(ms services.MatchService, ts services.TournamentService) *httptest.Server {
	router := chi.NewRouter()
	SetupRoutes(router, []string{"http://localhost:5173"}, handlers.NewMatchHandler(ms), handlers.NewTournamentHandler(ts))
	return httptest.NewServer(router)
}

func doRequest(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestCreateMatchReturnsCreatedRecord(t *testing.T) {
	created := &models.Match{
		ID:           1,
		Team1:        "Спартак",
		Team2:        "Зенит",
		Date:         time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC),
		Status:       "Scheduled",
		GoalScorers1: []string{"Alice"},
	}
	srv := newTestServer(&stubMatchService{createResult: created}, &stubTournamentService{})
	defer srv.Close()

	resp := doRequest(t, http.MethodPost, srv.URL+"/matches/", `{"team1":"Спартак","team2":"Зенит","date":"2025-06-14T18:00:00Z","location":"Москва","status":"Scheduled","score1":0,"score2":0}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var got models.Match
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.ID != 1 || got.Team1 != "Спартак" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if len(got.GoalScorers1) != 1 || got.GoalScorers1[0] != "Alice" {
		t.Fatalf("goal scorers missing from response: %+v", got.GoalScorers1)
	}
}

func TestCreateMatchBackdatedReturns400(t *testing.T) {
	srv := newTestServer(&stubMatchService{createErr: services.ErrMatchDateTooOld}, &stubTournamentService{})
	defer srv.Close()

	resp := doRequest(t, http.MethodPost, srv.URL+"/matches/", `{"team1":"A","team2":"B","date":"2020-01-01T00:00:00Z","location":"x","status":"Scheduled","score1":0,"score2":0}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCreateMatchUnknownTournamentReturns404(t *testing.T) {
	srv := newTestServer(&stubMatchService{createErr: services.ErrTournamentNotFound}, &stubTournamentService{})
	defer srv.Close()

	resp := doRequest(t, http.MethodPost, srv.URL+"/matches/", `{"tournament_id":99,"team1":"A","team2":"B","date":"2025-06-14T18:00:00Z","location":"x","status":"Scheduled","score1":0,"score2":0}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCreateMatchMissingRequiredFieldReturns400(t *testing.T) {
	createErr := fmt.Errorf("%w: team1 is required", services.ErrValidation)
	srv := newTestServer(&stubMatchService{createErr: createErr}, &stubTournamentService{})
	defer srv.Close()

	resp := doRequest(t, http.MethodPost, srv.URL+"/matches/", `{"date":"2025-06-14T18:00:00Z"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["error"] != createErr.Error() {
		t.Fatalf("unexpected error message: %q", body["error"])
	}
}

func TestCreateMatchMalformedBodyReturns400(t *testing.T) {
	srv := newTestServer(&stubMatchService{}, &stubTournamentService{})
	defer srv.Close()

	resp := doRequest(t, http.MethodPost, srv.URL+"/matches/", `{"team1":`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUpdateMatchNotFoundReturns404(t *testing.T) {
	srv := newTestServer(&stubMatchService{updateErr: services.ErrMatchNotFound}, &stubTournamentService{})
	defer srv.Close()

	resp := doRequest(t, http.MethodPut, srv.URL+"/matches/42", `{"score1":3}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestUpdateMatchInvalidIDReturns400(t *testing.T) {
	srv := newTestServer(&stubMatchService{}, &stubTournamentService{})
	defer srv.Close()

	resp := doRequest(t, http.MethodPut, srv.URL+"/matches/abc", `{"score1":3}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestListTournamentMatchesEmptyReturnsEmptyArray(t *testing.T) {
	ms := &stubMatchService{listResult: []*models.Match{}}
	srv := newTestServer(ms, &stubTournamentService{})
	defer srv.Close()

	resp := doRequest(t, http.MethodGet, srv.URL+"/tournaments/5/matches/", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ms.listTournamentID != 5 {
		t.Fatalf("expected tournament id 5, got %d", ms.listTournamentID)
	}
	var got []models.Match
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty array, got %v", got)
	}
}

func TestCreateTournamentReturnsStoredRoster(t *testing.T) {
	created := &models.Tournament{
		ID:        1,
		Name:      "Кубок",
		Teams:     `[{"name":"Спартак"}]`,
		StartDate: "2025-07-01",
		EndDate:   "2025-07-14",
	}
	srv := newTestServer(&stubMatchService{}, &stubTournamentService{createResult: created})
	defer srv.Close()

	resp := doRequest(t, http.MethodPost, srv.URL+"/tournaments/", `{"name":"Кубок","location":"Казань","startDate":"2025-07-01","endDate":"2025-07-14","teams":[{"name":"Спартак"}]}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var got models.Tournament
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Teams != `[{"name":"Спартак"}]` {
		t.Fatalf("roster not returned as stored: %s", got.Teams)
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	srv := newTestServer(&stubMatchService{listResult: []*models.Match{}}, &stubTournamentService{})
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/matches/", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Origin", "http://localhost:5173")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected allowed origin to be echoed, got %q", got)
	}
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	srv := newTestServer(&stubMatchService{listResult: []*models.Match{}}, &stubTournamentService{})
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/matches/", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Origin", "https://evil.example.com")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS header for unknown origin, got %q", got)
	}
}
