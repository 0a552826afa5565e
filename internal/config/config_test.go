package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/pokeview/internal/pokeapi"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(BaseURLEnv, "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source != "" {
		t.Fatalf("Source = %q, want empty", cfg.Source)
	}
	if cfg.API.BaseURL != pokeapi.DefaultBaseURL {
		t.Fatalf("BaseURL = %q, want %q", cfg.API.BaseURL, pokeapi.DefaultBaseURL)
	}
	if cfg.Catalog.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.Catalog.PageSize, defaultPageSize)
	}
	if cfg.Storage.Backend != "file" {
		t.Fatalf("Backend = %q, want file", cfg.Storage.Backend)
	}
	wantLog, err := ExpandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("ExpandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.Log.File != wantLog {
		t.Fatalf("Log.File = %q, want %q", cfg.Log.File, wantLog)
	}
	if len(cfg.Warnings) != 0 {
		t.Fatalf("Warnings = %v, want none", cfg.Warnings)
	}
}

func TestLoad_ParsesTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(BaseURLEnv, "")

	path := writeConfig(t, `
[api]
base_url = "  https://mirror.example/api/v2  "
timeout = "3s"

[catalog]
page_size = 50

[storage]
backend = " Redis "
redis_addr = "10.0.0.5:6379"
redis_db = 2
path = "~/pokeview/favs.db"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Source != path {
		t.Fatalf("Source = %q, want %q", cfg.Source, path)
	}
	if cfg.API.BaseURL != "https://mirror.example/api/v2" {
		t.Fatalf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Fatalf("Timeout = %s, want 3s", cfg.API.Timeout)
	}
	if cfg.Catalog.PageSize != 50 {
		t.Fatalf("PageSize = %d, want 50", cfg.Catalog.PageSize)
	}
	if cfg.Storage.Backend != "redis" || cfg.Storage.RedisAddr != "10.0.0.5:6379" || cfg.Storage.RedisDB != 2 {
		t.Fatalf("Storage = %#v", cfg.Storage)
	}
	if !strings.HasPrefix(cfg.Storage.Path, home) {
		t.Fatalf("Storage.Path = %q, want it under HOME %q", cfg.Storage.Path, home)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_EnvOverridesBaseURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(BaseURLEnv, "http://localhost:8080/api/v2")

	path := writeConfig(t, `
[api]
base_url = "https://mirror.example/api/v2"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8080/api/v2" {
		t.Fatalf("BaseURL = %q, want env value", cfg.API.BaseURL)
	}
}

func TestLoad_InvalidValuesFallBackWithWarnings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(BaseURLEnv, "not a url")

	path := writeConfig(t, `
[catalog]
page_size = 0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != pokeapi.DefaultBaseURL {
		t.Fatalf("BaseURL = %q, want default", cfg.API.BaseURL)
	}
	if cfg.Catalog.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.Catalog.PageSize, defaultPageSize)
	}
	if len(cfg.Warnings) != 2 {
		t.Fatalf("Warnings = %v, want 2 entries", cfg.Warnings)
	}
	if !strings.Contains(cfg.Warnings[0], "not a url") {
		t.Fatalf("warning %q does not name the bad url", cfg.Warnings[0])
	}
}

func TestLoad_MalformedTOMLFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "[api\nbase_url = ")
	if _, err := Load(path); err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
}

func TestValidBaseURL(t *testing.T) {
	cases := map[string]bool{
		"https://pokeapi.co/api/v2": true,
		"http://localhost:8080":     true,
		"":                          false,
		"   ":                       false,
		"pokeapi.co/api/v2":         false,
		"/api/v2":                   false,
		"://broken":                 false,
	}
	for in, want := range cases {
		if got := ValidBaseURL(in); got != want {
			t.Fatalf("ValidBaseURL(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "a", "b") {
		t.Fatalf("ExpandPath = %q, want %q", got, filepath.Join(home, "a", "b"))
	}
	if _, err := ExpandPath("  "); err == nil {
		t.Fatalf("ExpandPath(blank) returned nil error")
	}
}
