package models

import "time"

// Match - API-представление матча: типизированные timestamps и списки игроков.
// JSON-имена полей совпадают с контрактом фронтенда (camelCase для статистики,
// snake_case для служебных полей).
type Match struct {
	ID             int        `json:"id"`
	TournamentID   *int       `json:"tournament_id,omitempty"`
	Team1          string     `json:"team1"`
	Team2          string     `json:"team2"`
	Date           time.Time  `json:"date"`
	Location       string     `json:"location"`
	Status         string     `json:"status"`
	Score1         int        `json:"score1"`
	Score2         int        `json:"score2"`
	ShotsOnGoal1   int        `json:"shotsOnGoal1"`
	ShotsOnGoal2   int        `json:"shotsOnGoal2"`
	ShotsOnTarget1 int        `json:"shotsOnTarget1"`
	ShotsOnTarget2 int        `json:"shotsOnTarget2"`
	YellowCards1   int        `json:"yellowCards1"`
	YellowCards2   int        `json:"yellowCards2"`
	RedCards1      int        `json:"redCards1"`
	RedCards2      int        `json:"redCards2"`
	Corners1       int        `json:"corners1"`
	Corners2       int        `json:"corners2"`
	Possession1    int        `json:"possession1"`
	Possession2    int        `json:"possession2"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	Duration       *int       `json:"duration,omitempty"`

	// Списки игроков. nil - значение отсутствует (в хранилище NULL).
	GoalScorers1       []string `json:"goalScorers1,omitempty"`
	GoalScorers2       []string `json:"goalScorers2,omitempty"`
	YellowCardPlayers1 []string `json:"yellowCardPlayers1,omitempty"`
	YellowCardPlayers2 []string `json:"yellowCardPlayers2,omitempty"`
	RedCardPlayers1    []string `json:"redCardPlayers1,omitempty"`
	RedCardPlayers2    []string `json:"redCardPlayers2,omitempty"`

	MatchType *string `json:"match_type,omitempty"`
	Referee   *string `json:"referee,omitempty"`
	Stage     *string `json:"stage,omitempty"`
}

// MatchRow - представление матча в хранилище: плоская строка таблицы.
// Timestamps хранятся как RFC3339-текст, списки игроков - как JSON-текст
// (NULL, если список пуст или отсутствует).
type MatchRow struct {
	ID             int     `db:"id"`
	TournamentID   *int    `db:"tournament_id"`
	Team1          string  `db:"team1"`
	Team2          string  `db:"team2"`
	Date           string  `db:"date"`
	Location       string  `db:"location"`
	Status         string  `db:"status"`
	Score1         int     `db:"score1"`
	Score2         int     `db:"score2"`
	ShotsOnGoal1   int     `db:"shots_on_goal1"`
	ShotsOnGoal2   int     `db:"shots_on_goal2"`
	ShotsOnTarget1 int     `db:"shots_on_target1"`
	ShotsOnTarget2 int     `db:"shots_on_target2"`
	YellowCards1   int     `db:"yellow_cards1"`
	YellowCards2   int     `db:"yellow_cards2"`
	RedCards1      int     `db:"red_cards1"`
	RedCards2      int     `db:"red_cards2"`
	Corners1       int     `db:"corners1"`
	Corners2       int     `db:"corners2"`
	Possession1    int     `db:"possession1"`
	Possession2    int     `db:"possession2"`
	StartTime      *string `db:"start_time"`
	Duration       *int    `db:"duration"`

	GoalScorers1       *string `db:"goal_scorers1"`
	GoalScorers2       *string `db:"goal_scorers2"`
	YellowCardPlayers1 *string `db:"yellow_card_players1"`
	YellowCardPlayers2 *string `db:"yellow_card_players2"`
	RedCardPlayers1    *string `db:"red_card_players1"`
	RedCardPlayers2    *string `db:"red_card_players2"`

	MatchType *string `db:"match_type"`
	Referee   *string `db:"referee"`
	Stage     *string `db:"stage"`
}

// MatchPatch - типизированный частичный апдейт матча (PUT /matches/{matchID}).
// nil-указатель означает "поле не передано, сохранить текущее значение".
// Nullable-поля объявлены через Optional: явный null в теле сбрасывает
// хранимое значение в NULL, отсутствие поля оставляет его как есть.
// Для списков игроков: nil - не передано, пустой не-nil срез - явная очистка
// (в хранилище станет NULL).
type MatchPatch struct {
	// ID в теле запроса игнорируется: идентификатор матча берётся из URL.
	ID *int `json:"id"`

	TournamentID   Optional[int]       `json:"tournament_id"`
	Team1          *string             `json:"team1"`
	Team2          *string             `json:"team2"`
	Date           *time.Time          `json:"date"`
	Location       *string             `json:"location"`
	Status         *string             `json:"status"`
	Score1         *int                `json:"score1"`
	Score2         *int                `json:"score2"`
	ShotsOnGoal1   *int                `json:"shotsOnGoal1"`
	ShotsOnGoal2   *int                `json:"shotsOnGoal2"`
	ShotsOnTarget1 *int                `json:"shotsOnTarget1"`
	ShotsOnTarget2 *int                `json:"shotsOnTarget2"`
	YellowCards1   *int                `json:"yellowCards1"`
	YellowCards2   *int                `json:"yellowCards2"`
	RedCards1      *int                `json:"redCards1"`
	RedCards2      *int                `json:"redCards2"`
	Corners1       *int                `json:"corners1"`
	Corners2       *int                `json:"corners2"`
	Possession1    *int                `json:"possession1"`
	Possession2    *int                `json:"possession2"`
	StartTime      Optional[time.Time] `json:"start_time"`
	Duration       Optional[int]       `json:"duration"`

	GoalScorers1       []string `json:"goalScorers1"`
	GoalScorers2       []string `json:"goalScorers2"`
	YellowCardPlayers1 []string `json:"yellowCardPlayers1"`
	YellowCardPlayers2 []string `json:"yellowCardPlayers2"`
	RedCardPlayers1    []string `json:"redCardPlayers1"`
	RedCardPlayers2    []string `json:"redCardPlayers2"`

	MatchType Optional[string] `json:"match_type"`
	Referee   Optional[string] `json:"referee"`
	Stage     Optional[string] `json:"stage"`
}
