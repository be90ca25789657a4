package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/alnah/go-adobeconnect/internal/config"
	"github.com/alnah/go-adobeconnect/internal/log"
)

// ---------------------------------------------------------------------------
// syncBuffer - thread-safe bytes.Buffer for concurrent test output
// ---------------------------------------------------------------------------

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Compile-time check that syncBuffer implements io.Writer.
var _ io.Writer = (*syncBuffer)(nil)

// ---------------------------------------------------------------------------
// testEnv - creates a fully mocked Env for testing
// ---------------------------------------------------------------------------

type testMocks struct {
	configLoader  *mockConfigLoader
	clientFactory *mockClientFactory
	api           *mockAPI
	stdout        *syncBuffer
	stderr        *syncBuffer
}

// testEnvOption configures testEnv.
type testEnvOption func(*Env, *testMocks)

// withTestGetenv replaces the default test environment.
func withTestGetenv(fn func(string) string) testEnvOption {
	return func(e *Env, _ *testMocks) {
		e.Getenv = fn
	}
}

// withTestConfig makes the config loader return cfg.
func withTestConfig(cfg config.Config) testEnvOption {
	return func(_ *Env, m *testMocks) {
		m.configLoader.LoadFunc = func() (config.Config, error) { return cfg, nil }
	}
}

// testEnv creates a test Env with all dependencies mocked.
// Returns the Env and the mocks for assertions.
func testEnv(opts ...testEnvOption) (*Env, *testMocks) {
	api := &mockAPI{}
	mocks := &testMocks{
		configLoader:  &mockConfigLoader{},
		clientFactory: &mockClientFactory{mockAPI: api},
		api:           api,
		stdout:        &syncBuffer{},
		stderr:        &syncBuffer{},
	}

	env := &Env{
		Stdout:        mocks.stdout,
		Stderr:        mocks.stderr,
		Getenv:        defaultTestEnv,
		Now:           fixedTime(time.Date(2026, 10, 17, 14, 30, 52, 0, time.UTC)),
		Logger:        log.NewNop(),
		ConfigLoader:  mocks.configLoader,
		ClientFactory: mocks.clientFactory,
	}

	for _, opt := range opts {
		opt(env, mocks)
	}

	return env, mocks
}

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// fixedTime returns a function that always returns the given time.
func fixedTime(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// staticEnv returns a getenv function that returns values from the given map.
func staticEnv(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

// defaultTestEnv returns the API password.
func defaultTestEnv(key string) string {
	if key == config.EnvPassword {
		return "test-password"
	}
	return ""
}

// testCmd returns a bare command carrying ctx, for calling run* functions.
func testCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(ctx)
	return cmd
}

// writeResponse writes an XML response fixture and returns its path.
func writeResponse(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write response fixture: %v", err)
	}
	return path
}

// containsAll reports whether s contains every substring.
func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
