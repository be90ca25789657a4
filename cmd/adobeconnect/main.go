package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alnah/go-adobeconnect/internal/adobeconnect"
	"github.com/alnah/go-adobeconnect/internal/apierr"
	"github.com/alnah/go-adobeconnect/internal/cli"
	"github.com/alnah/go-adobeconnect/internal/config"
	"github.com/alnah/go-adobeconnect/internal/log"
)

// Injected at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitGeneral    = 1
	ExitUsage      = 2
	ExitSetup      = 3
	ExitValidation = 4
	ExitAPI        = 5
	ExitVendor     = 6
	ExitInterrupt  = 130
)

func main() {
	// Load .env file if present (ignore error if missing).
	_ = godotenv.Load()

	// Context with signal cancellation.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	env := cli.DefaultEnv()
	rootCmd := newRootCmd(env)

	err := rootCmd.ExecuteContext(ctx)
	_ = env.Logger.Sync(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// newRootCmd builds the command tree. The logger in env is replaced before
// any subcommand runs: --verbose forces debug level, otherwise --log-level
// applies.
func newRootCmd(env *cli.Env) *cobra.Command {
	var (
		verbose  bool
		logLevel string
	)

	rootCmd := &cobra.Command{
		Use:     "adobeconnect",
		Short:   "Manage Adobe Connect meetings and decode API responses",
		Version: fmt.Sprintf("%s (commit: %s)", version, commit),
		// Silence Cobra's default error/usage printing; we handle it ourselves.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.LevelDebug
			if !verbose {
				var err error
				if level, err = log.ParseLevel(logLevel); err != nil {
					return err
				}
			}
			env.Logger = log.NewZap(level, env.Stderr)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log API traffic, including response bodies")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", log.LevelWarn.String(), "Log level: debug, info, warn, error")

	rootCmd.AddCommand(cli.CheckCmd(env))
	rootCmd.AddCommand(cli.InfoCmd(env))
	rootCmd.AddCommand(cli.MeetingCmd(env))
	rootCmd.AddCommand(cli.PrincipalCmd(env))
	rootCmd.AddCommand(cli.PermissionCmd(env))
	rootCmd.AddCommand(cli.ConfigCmd(env))

	return rootCmd
}

// exitCode maps errors to exit codes.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	// Check for context cancellation (interrupt).
	if errors.Is(err, context.Canceled) {
		return ExitInterrupt
	}

	// Setup errors (ExitSetup = 3).
	if errors.Is(err, cli.ErrURLMissing) || errors.Is(err, cli.ErrCredentialsMissing) ||
		errors.Is(err, adobeconnect.ErrMissingURL) || errors.Is(err, adobeconnect.ErrNotLoggedIn) ||
		errors.Is(err, apierr.ErrAuthFailed) {
		return ExitSetup
	}

	// Validation errors (ExitValidation = 4).
	if errors.Is(err, cli.ErrFileNotFound) || errors.Is(err, cli.ErrInvalidTime) ||
		errors.Is(err, cli.ErrInvalidDuration) || errors.Is(err, cli.ErrInvalidPermission) ||
		errors.Is(err, config.ErrInvalidKey) || errors.Is(err, log.ErrInvalidLevel) ||
		errors.Is(err, adobeconnect.ErrInvalidRequest) ||
		errors.Is(err, adobeconnect.ErrMalformedResponse) {
		return ExitValidation
	}

	// API and transport errors (ExitAPI = 5).
	if errors.Is(err, apierr.ErrRateLimit) || errors.Is(err, apierr.ErrTimeout) ||
		errors.Is(err, apierr.ErrServer) || errors.Is(err, apierr.ErrBadRequest) {
		return ExitAPI
	}

	// Vendor-reported errors (ExitVendor = 6).
	if errors.Is(err, adobeconnect.ErrVendorReported) || errors.Is(err, adobeconnect.ErrNotFound) {
		return ExitVendor
	}

	// Usage errors (ExitUsage = 2): Cobra flag/arg parsing errors.
	// Cobra doesn't expose typed errors, so we check for known error message
	// patterns. Sentinels come first: server messages may contain the same words.
	if isCobraUsageError(err) {
		return ExitUsage
	}

	return ExitGeneral
}

// cobraUsageErrorPatterns contains error message substrings that indicate Cobra usage errors.
// These patterns are stable across Cobra versions (tested with v1.8+).
// Cobra doesn't expose typed errors, so string matching is the only reliable approach.
var cobraUsageErrorPatterns = []string{
	"required flag",             // Missing required flag
	"unknown flag",              // Flag doesn't exist
	"unknown shorthand",         // Short flag doesn't exist
	"unknown command",           // Subcommand doesn't exist
	"flag needs an argument",    // Flag provided without value
	"invalid argument",          // Invalid flag value type
	"if any flags in the group", // Mutually exclusive flag violation
	"accepts ",                  // Wrong number of arguments (e.g., "accepts 1 arg(s)")
	"requires at least",         // Too few arguments
	"requires at most",          // Too many arguments
}

// isCobraUsageError checks if an error is a Cobra usage/parsing error.
func isCobraUsageError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := err.Error()
	for _, pattern := range cobraUsageErrorPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
