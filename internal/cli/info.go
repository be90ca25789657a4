package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alnah/go-adobeconnect/internal/format"
)

// InfoCmd creates the info command.
// The env parameter provides injectable dependencies for testing.
func InfoCmd(env *Env) *cobra.Command {
	var login bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show server information",
		Long: `Show the server version and account reported by common-info.

With --login, also checks that the configured credentials are accepted.`,
		Example: `  adobeconnect info
  adobeconnect info --login`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, env, login)
		},
	}

	cmd.Flags().BoolVar(&login, "login", false, "Log in with the configured credentials")

	return cmd
}

func runInfo(cmd *cobra.Command, env *Env, login bool) error {
	ctx := cmd.Context()

	api, err := connect(env, login)
	if err != nil {
		return err
	}

	info, err := api.CommonInfo(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "version:    %s\n", format.Value(info.Version))
	fmt.Fprintf(env.Stdout, "host:       %s\n", format.Value(info.Host))
	fmt.Fprintf(env.Stdout, "account-id: %s\n", format.Value(info.AccountID))

	if !login {
		return nil
	}
	if err := api.Login(ctx); err != nil {
		return err
	}
	defer func() { _ = api.Logout(ctx) }()

	fmt.Fprintln(env.Stdout, "login:      ok")
	return nil
}
