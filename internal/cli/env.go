package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alnah/go-adobeconnect/internal/adobeconnect"
	"github.com/alnah/go-adobeconnect/internal/config"
	"github.com/alnah/go-adobeconnect/internal/log"
)

// Env holds injectable dependencies for CLI commands.
// This is the central injection point for testing CLI commands in isolation.
//
// All fields have sensible defaults via DefaultEnv(). Tests can override
// specific fields using the With* options or by creating a custom Env.
//
// Env must not be nil when passed to command functions. Use DefaultEnv()
// or NewEnv() to create a valid instance.
type Env struct {
	// I/O and environment
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
	Now    func() time.Time

	// Logger receives diagnostics from the API client and the status
	// parser. The root command replaces it once the log flags are parsed.
	Logger log.Logger

	// Factories for domain objects
	ConfigLoader  ConfigLoader
	ClientFactory ClientFactory
}

// ConfigLoader loads and provides access to configuration.
type ConfigLoader interface {
	Load() (config.Config, error)
}

// ClientFactory creates API clients for an Adobe Connect server.
type ClientFactory interface {
	NewClient(baseURL, login, password string, opts ...adobeconnect.ClientOption) (API, error)
}

// API is the subset of the Adobe Connect client used by the commands.
type API interface {
	CommonInfo(ctx context.Context) (adobeconnect.CommonInfo, error)
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	MeetingsFolder(ctx context.Context) (adobeconnect.Sco, error)
	CreateMeeting(ctx context.Context, folderID string, req adobeconnect.MeetingRequest) (adobeconnect.Sco, error)
	UpdateMeeting(ctx context.Context, scoID string, req adobeconnect.MeetingRequest) error
	DeleteSco(ctx context.Context, scoID string) error
	ScoInfoAll(ctx context.Context, ids []string, maxParallel int) ([]adobeconnect.Sco, error)
	FindPrincipal(ctx context.Context, login string) (adobeconnect.Principal, error)
	CreatePrincipal(ctx context.Context, req adobeconnect.PrincipalRequest) (adobeconnect.Principal, error)
	SetPermission(ctx context.Context, aclID, principalID string, perm adobeconnect.Permission) error
	MakePublic(ctx context.Context, scoID string) error
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithStdout sets the stdout writer.
func WithStdout(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stdout = w
	}
}

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stderr = w
	}
}

// WithGetenv sets the environment variable getter.
func WithGetenv(fn func(string) string) EnvOption {
	return func(e *Env) {
		e.Getenv = fn
	}
}

// WithNow sets the time provider.
func WithNow(fn func() time.Time) EnvOption {
	return func(e *Env) {
		e.Now = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) EnvOption {
	return func(e *Env) {
		e.Logger = l
	}
}

// WithConfigLoader sets the config loader.
func WithConfigLoader(l ConfigLoader) EnvOption {
	return func(e *Env) {
		e.ConfigLoader = l
	}
}

// WithClientFactory sets the client factory.
func WithClientFactory(f ClientFactory) EnvOption {
	return func(e *Env) {
		e.ClientFactory = f
	}
}

// DefaultEnv returns an Env with production defaults.
func DefaultEnv() *Env {
	return &Env{
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		Getenv:        os.Getenv,
		Now:           time.Now,
		Logger:        log.NewZap(log.LevelWarn, os.Stderr),
		ConfigLoader:  &defaultConfigLoader{},
		ClientFactory: &defaultClientFactory{},
	}
}

// NewEnv creates an Env with the given options applied to defaults.
func NewEnv(opts ...EnvOption) *Env {
	env := DefaultEnv()
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// ---------------------------------------------------------------------------
// Default implementations - delegate to real packages
// ---------------------------------------------------------------------------

// defaultConfigLoader implements ConfigLoader using the config package.
type defaultConfigLoader struct{}

func (defaultConfigLoader) Load() (config.Config, error) {
	return config.Load()
}

// defaultClientFactory implements ClientFactory using the adobeconnect package.
type defaultClientFactory struct{}

func (defaultClientFactory) NewClient(baseURL, login, password string, opts ...adobeconnect.ClientOption) (API, error) {
	c, err := adobeconnect.NewClient(baseURL, login, password, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Compile-time interface verification.
var (
	_ ConfigLoader  = (*defaultConfigLoader)(nil)
	_ ClientFactory = (*defaultClientFactory)(nil)
	_ API           = (*adobeconnect.Client)(nil)
)
