package cli

import (
	"fmt"

	"github.com/alnah/go-adobeconnect/internal/adobeconnect"
	"github.com/alnah/go-adobeconnect/internal/config"
)

// connect loads the configuration and builds an API client.
// When needLogin is false only the server URL is required.
func connect(env *Env, needLogin bool) (API, error) {
	cfg, err := env.ConfigLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.URL == "" {
		return nil, ErrURLMissing
	}

	password := env.Getenv(config.EnvPassword)
	if needLogin && (cfg.Login == "" || password == "") {
		return nil, ErrCredentialsMissing
	}

	opts := []adobeconnect.ClientOption{adobeconnect.WithLogger(env.Logger)}
	if cfg.AccountID != "" {
		opts = append(opts, adobeconnect.WithAccountID(cfg.AccountID))
	}
	return env.ClientFactory.NewClient(cfg.URL, cfg.Login, password, opts...)
}
