package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/matches")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("MATCH_IN_PROGRESS_STATUS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerPort != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.ServerPort)
	}
	if cfg.InProgressStatus != "Идет" {
		t.Fatalf("unexpected default in-progress status: %q", cfg.InProgressStatus)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("expected default allowed origins, got %v", cfg.AllowedOrigins)
	}
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is not set")
	}
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/matches")

	for _, port := range []string{"abc", "0", "70000"} {
		t.Setenv("SERVER_PORT", port)
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for SERVER_PORT=%q", port)
		}
	}
}

func TestLoadCustomOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/matches")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "https://a.example.com" || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadCustomInProgressStatus(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/matches")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("MATCH_IN_PROGRESS_STATUS", "In Progress")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.InProgressStatus != "In Progress" {
		t.Fatalf("unexpected in-progress status: %q", cfg.InProgressStatus)
	}
}
