package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-adobeconnect/internal/config"
)

// Notes:
// - Tests touching the config file redirect it with t.Setenv("XDG_CONFIG_HOME")
//   and therefore cannot use t.Parallel().
// - Environment fallbacks go through env.Getenv, so they are injected with
//   staticEnv rather than t.Setenv.

// ---------------------------------------------------------------------------
// Unit tests for helper functions
// ---------------------------------------------------------------------------

func TestIsValidConfigKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		expected bool
	}{
		{"url", config.KeyURL, true},
		{"login", config.KeyLogin, true},
		{"account id", config.KeyAccountID, true},
		{"password is never stored", "password", false},
		{"empty string", "", false},
		{"wrong format with underscore", "account_id", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsValidConfigKey(tt.key); got != tt.expected {
				t.Errorf("IsValidConfigKey(%q) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestValidConfigKeys_HaveEnvFallback(t *testing.T) {
	t.Parallel()

	for _, key := range ValidConfigKeys {
		if config.EnvFor(key) == "" {
			t.Errorf("config key %q has no environment fallback", key)
		}
	}
}

// ---------------------------------------------------------------------------
// Tests for runConfigSet
// ---------------------------------------------------------------------------

func TestRunConfigSet_ValidKey(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvURL, "")

	env, mocks := testEnv()

	if err := RunConfigSet(env, config.KeyURL, "https://meet.example.com"); err != nil {
		t.Fatalf("RunConfigSet() unexpected error: %v", err)
	}

	if got := mocks.stderr.String(); !strings.Contains(got, "Set url = https://meet.example.com") {
		t.Errorf("stderr = %q, want confirmation", got)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() unexpected error: %v", err)
	}
	if cfg.URL != "https://meet.example.com" {
		t.Errorf("config.Load().URL = %q, want saved value", cfg.URL)
	}
}

func TestRunConfigSet_InvalidKey(t *testing.T) {
	t.Parallel()

	env, _ := testEnv()

	err := RunConfigSet(env, "password", "secret")
	if !errors.Is(err, config.ErrInvalidKey) {
		t.Fatalf("RunConfigSet(password) error = %v, want ErrInvalidKey", err)
	}
	if !strings.Contains(err.Error(), "unknown") {
		t.Errorf("error = %q, want containing %q", err.Error(), "unknown")
	}
}

func TestRunConfigSet_InvalidURL(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	env, _ := testEnv()

	for _, value := range []string{"meet.example.com", "ftp://meet.example.com", "https://"} {
		if err := RunConfigSet(env, config.KeyURL, value); err == nil {
			t.Errorf("RunConfigSet(url, %q) = nil, want error", value)
		}
	}

	if got, _ := config.Get(config.KeyURL); got != "" {
		t.Errorf("invalid url was saved: %q", got)
	}
}

// ---------------------------------------------------------------------------
// Tests for runConfigGet
// ---------------------------------------------------------------------------

func TestRunConfigGet(t *testing.T) {
	t.Run("prints file value", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		if err := config.Save(config.KeyLogin, "api@example.com"); err != nil {
			t.Fatal(err)
		}

		env, mocks := testEnv()
		if err := RunConfigGet(env, config.KeyLogin); err != nil {
			t.Fatalf("RunConfigGet() unexpected error: %v", err)
		}
		if got := mocks.stdout.String(); got != "api@example.com\n" {
			t.Errorf("stdout = %q, want value", got)
		}
	})

	t.Run("falls back to env var", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		env, mocks := testEnv(withTestGetenv(staticEnv(map[string]string{
			config.EnvAccountID: "42",
		})))
		if err := RunConfigGet(env, config.KeyAccountID); err != nil {
			t.Fatalf("RunConfigGet() unexpected error: %v", err)
		}
		if got := mocks.stdout.String(); got != "42\n" {
			t.Errorf("stdout = %q, want env value", got)
		}
	})

	t.Run("prints nothing when unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		env, mocks := testEnv()
		if err := RunConfigGet(env, config.KeyURL); err != nil {
			t.Fatalf("RunConfigGet() unexpected error: %v", err)
		}
		if got := mocks.stdout.String(); got != "" {
			t.Errorf("stdout = %q, want empty", got)
		}
	})

	t.Run("rejects unknown key", func(t *testing.T) {
		env, _ := testEnv()
		if err := RunConfigGet(env, "nope"); !errors.Is(err, config.ErrInvalidKey) {
			t.Errorf("RunConfigGet(nope) error = %v, want ErrInvalidKey", err)
		}
	})
}

// ---------------------------------------------------------------------------
// Tests for runConfigList
// ---------------------------------------------------------------------------

func TestRunConfigList(t *testing.T) {
	t.Run("empty shows available settings", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		env, mocks := testEnv()
		if err := RunConfigList(env); err != nil {
			t.Fatalf("RunConfigList() unexpected error: %v", err)
		}
		out := mocks.stdout.String()
		if !containsAll(out, "No configuration set.", "url", "login", "account-id") {
			t.Errorf("stdout = %q, want available settings", out)
		}
	})

	t.Run("file and env values sorted", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		if err := config.Save(config.KeyURL, "https://meet.example.com"); err != nil {
			t.Fatal(err)
		}

		env, mocks := testEnv(withTestGetenv(staticEnv(map[string]string{
			config.EnvLogin: "env-user",
			config.EnvURL:   "https://ignored.example.com",
		})))
		if err := RunConfigList(env); err != nil {
			t.Fatalf("RunConfigList() unexpected error: %v", err)
		}

		want := "login=env-user (from env)\nurl=https://meet.example.com\n"
		if got := mocks.stdout.String(); got != want {
			t.Errorf("stdout = %q, want %q", got, want)
		}
	})
}
