// Package codec выполняет двустороннее преобразование матча между
// API-представлением (типизированные timestamps, списки игроков) и
// представлением хранилища (RFC3339-текст, JSON-текст в колонках).
package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/avrusanov/sport-match-manager/models"
)

// EncodePlayerList сериализует список игроков в JSON-текст для колонки.
// Пустой или отсутствующий список нормализуется в NULL (nil), а не в "[]".
func EncodePlayerList(players []string) (*string, error) {
	if len(players) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(players)
	if err != nil {
		return nil, fmt.Errorf("failed to encode player list: %w", err)
	}
	s := string(data)
	return &s, nil
}

// DecodePlayerList разбирает JSON-текст колонки обратно в список игроков.
// NULL в колонке - отсутствующее значение, возвращается nil.
func DecodePlayerList(raw *string) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	var players []string
	if err := json.Unmarshal([]byte(*raw), &players); err != nil {
		return nil, fmt.Errorf("failed to decode player list %q: %w", *raw, err)
	}
	return players, nil
}

// EncodeTime сериализует опциональный timestamp в RFC3339-текст.
func EncodeTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339Nano)
	return &s
}

// DecodeTime разбирает RFC3339-текст колонки в опциональный timestamp.
func DecodeTime(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, *raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode timestamp %q: %w", *raw, err)
	}
	return &t, nil
}

// EncodeMatch преобразует API-представление матча в строку таблицы.
// Отсутствующие значения кодируются как NULL; ошибок на nil-входе не бывает.
func EncodeMatch(m *models.Match) (*models.MatchRow, error) {
	row := &models.MatchRow{
		ID:             m.ID,
		TournamentID:   m.TournamentID,
		Team1:          m.Team1,
		Team2:          m.Team2,
		Date:           m.Date.Format(time.RFC3339Nano),
		Location:       m.Location,
		Status:         m.Status,
		Score1:         m.Score1,
		Score2:         m.Score2,
		ShotsOnGoal1:   m.ShotsOnGoal1,
		ShotsOnGoal2:   m.ShotsOnGoal2,
		ShotsOnTarget1: m.ShotsOnTarget1,
		ShotsOnTarget2: m.ShotsOnTarget2,
		YellowCards1:   m.YellowCards1,
		YellowCards2:   m.YellowCards2,
		RedCards1:      m.RedCards1,
		RedCards2:      m.RedCards2,
		Corners1:       m.Corners1,
		Corners2:       m.Corners2,
		Possession1:    m.Possession1,
		Possession2:    m.Possession2,
		StartTime:      EncodeTime(m.StartTime),
		Duration:       m.Duration,
		MatchType:      m.MatchType,
		Referee:        m.Referee,
		Stage:          m.Stage,
	}

	lists := []struct {
		src []string
		dst **string
	}{
		{m.GoalScorers1, &row.GoalScorers1},
		{m.GoalScorers2, &row.GoalScorers2},
		{m.YellowCardPlayers1, &row.YellowCardPlayers1},
		{m.YellowCardPlayers2, &row.YellowCardPlayers2},
		{m.RedCardPlayers1, &row.RedCardPlayers1},
		{m.RedCardPlayers2, &row.RedCardPlayers2},
	}
	for _, l := range lists {
		encoded, err := EncodePlayerList(l.src)
		if err != nil {
			return nil, err
		}
		*l.dst = encoded
	}

	return row, nil
}

// DecodeMatch восстанавливает API-представление матча из строки таблицы.
// Возвращает ошибку, если текст в колонках повреждён (не RFC3339 / не JSON).
func DecodeMatch(row *models.MatchRow) (*models.Match, error) {
	date, err := time.Parse(time.RFC3339Nano, row.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to decode match %d date %q: %w", row.ID, row.Date, err)
	}
	startTime, err := DecodeTime(row.StartTime)
	if err != nil {
		return nil, fmt.Errorf("failed to decode match %d start_time: %w", row.ID, err)
	}

	m := &models.Match{
		ID:             row.ID,
		TournamentID:   row.TournamentID,
		Team1:          row.Team1,
		Team2:          row.Team2,
		Date:           date,
		Location:       row.Location,
		Status:         row.Status,
		Score1:         row.Score1,
		Score2:         row.Score2,
		ShotsOnGoal1:   row.ShotsOnGoal1,
		ShotsOnGoal2:   row.ShotsOnGoal2,
		ShotsOnTarget1: row.ShotsOnTarget1,
		ShotsOnTarget2: row.ShotsOnTarget2,
		YellowCards1:   row.YellowCards1,
		YellowCards2:   row.YellowCards2,
		RedCards1:      row.RedCards1,
		RedCards2:      row.RedCards2,
		Corners1:       row.Corners1,
		Corners2:       row.Corners2,
		Possession1:    row.Possession1,
		Possession2:    row.Possession2,
		StartTime:      startTime,
		Duration:       row.Duration,
		MatchType:      row.MatchType,
		Referee:        row.Referee,
		Stage:          row.Stage,
	}

	lists := []struct {
		src *string
		dst *[]string
	}{
		{row.GoalScorers1, &m.GoalScorers1},
		{row.GoalScorers2, &m.GoalScorers2},
		{row.YellowCardPlayers1, &m.YellowCardPlayers1},
		{row.YellowCardPlayers2, &m.YellowCardPlayers2},
		{row.RedCardPlayers1, &m.RedCardPlayers1},
		{row.RedCardPlayers2, &m.RedCardPlayers2},
	}
	for _, l := range lists {
		decoded, err := DecodePlayerList(l.src)
		if err != nil {
			return nil, fmt.Errorf("failed to decode match %d: %w", row.ID, err)
		}
		*l.dst = decoded
	}

	return m, nil
}

// EncodeTeams сериализует состав турнира в JSON-текст. Состав записывается
// один раз при создании; пустой список кодируется как "[]".
func EncodeTeams(teams []models.Team) (string, error) {
	if teams == nil {
		teams = []models.Team{}
	}
	data, err := json.Marshal(teams)
	if err != nil {
		return "", fmt.Errorf("failed to encode team roster: %w", err)
	}
	return string(data), nil
}
