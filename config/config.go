package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Лейбл статуса "матч идёт" - бизнес-настройка, а не константа протокола:
// фронтенд исторически присылает его по-русски.
const defaultInProgressStatus = "Идет"

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://sport-match-manager-frontend.onrender.com",
}

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL      string
	ServerPort       int
	AllowedOrigins   []string
	InProgressStatus string
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// Загружаем .env файл, если он есть. Ошибку не считаем фатальной.
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080" // Порт по умолчанию
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	origins := defaultAllowedOrigins
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = nil
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		if len(origins) == 0 {
			return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS is set but contains no origins")
		}
	}

	inProgress := os.Getenv("MATCH_IN_PROGRESS_STATUS")
	if inProgress == "" {
		inProgress = defaultInProgressStatus
	}

	cfg := &Config{
		DatabaseURL:      dbURL,
		ServerPort:       port,
		AllowedOrigins:   origins,
		InProgressStatus: inProgress,
	}

	return cfg, nil
}
