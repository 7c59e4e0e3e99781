package env

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks the keys Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "OPENAI_API_KEY", "DEBUG_ECHO_API_KEY", "OTEL_ENDPOINT", "OTEL_ENABLED"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	return path
}

func TestLoad_ReadsAPIKeyFromFile(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "OPENAI_API_KEY=sk-test-1234567890\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OpenAIApiKey != "sk-test-1234567890" {
		t.Errorf("OpenAIApiKey = %q, want %q", cfg.OpenAIApiKey, "sk-test-1234567890")
	}
	if !cfg.HasAPIKey() {
		t.Error("HasAPIKey() = false, want true")
	}
}

func TestLoad_MissingKeyIsNotAnError(t *testing.T) {
	clearEnv(t)
	path := writeEnvFile(t, "LOG_LEVEL=debug\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HasAPIKey() {
		t.Errorf("HasAPIKey() = true, want false (key %q)", cfg.OpenAIApiKey)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_MissingFileFallsBackToEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "from-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OpenAIApiKey != "from-env" {
		t.Errorf("OpenAIApiKey = %q, want from-env", cfg.OpenAIApiKey)
	}
}

func TestLoad_ProcessEnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "from-env")
	path := writeEnvFile(t, "OPENAI_API_KEY=from-file\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OpenAIApiKey != "from-env" {
		t.Errorf("OpenAIApiKey = %q, want from-env", cfg.OpenAIApiKey)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %q, want development", cfg.AppEnv)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.EchoAPIKey {
		t.Error("EchoAPIKey = true, want false")
	}
	if cfg.OTELEnabled {
		t.Error("OTELEnabled = true, want false")
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		defaultVal bool
		want       bool
	}{
		{"true", "true", false, true},
		{"one", "1", false, true},
		{"false", "false", true, false},
		{"invalid uses default", "maybe", true, true},
		{"empty uses default", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL_VAR", tt.value)
			if got := getEnvBool("TEST_BOOL_VAR", tt.defaultVal); got != tt.want {
				t.Errorf("getEnvBool() = %v, want %v", got, tt.want)
			}
		})
	}
}
