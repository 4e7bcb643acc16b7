package models

// Team - элемент состава турнира. ID опционален: фронтенд может прислать
// команды без идентификаторов.
type Team struct {
	ID   *int   `json:"id,omitempty"`
	Name string `json:"name"`
}

// Tournament - турнир в том виде, в котором он хранится и возвращается:
// состав команд остаётся JSON-текстом, как записан при создании.
type Tournament struct {
	ID        int    `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Location  string `json:"location" db:"location"`
	StartDate string `json:"startDate" db:"start_date"`
	EndDate   string `json:"endDate" db:"end_date"`
	Teams     string `json:"teams" db:"teams"`
}
