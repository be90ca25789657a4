package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alnah/go-adobeconnect/internal/adobeconnect"
)

// PrincipalCmd creates the principal command with subcommands.
// The env parameter provides injectable dependencies for testing.
func PrincipalCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "principal",
		Short: "Find and create users",
	}

	cmd.AddCommand(principalFindCmd(env))
	cmd.AddCommand(principalCreateCmd(env))

	return cmd
}

func principalFindCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:     "find <login>",
		Short:   "Look up a user by login",
		Example: `  adobeconnect principal find jdoe@example.com`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrincipalFind(cmd, env, args[0])
		},
	}
}

func runPrincipalFind(cmd *cobra.Command, env *Env, login string) error {
	ctx := cmd.Context()

	api, err := connect(env, true)
	if err != nil {
		return err
	}
	defer func() { _ = api.Logout(ctx) }()

	p, err := api.FindPrincipal(ctx, login)
	if err != nil {
		return err
	}

	printPrincipal(env.Stdout, p)
	return nil
}

func principalCreateCmd(env *Env) *cobra.Command {
	var req adobeconnect.PrincipalRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Long: `Create a user account. No welcome email is sent.

Without --password the account cannot log in with a password, which suits
accounts that are only used through a session handed out by another system.`,
		Example: `  adobeconnect principal create --login jdoe@example.com --first-name Jo --last-name Doe`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrincipalCreate(cmd, env, req)
		},
	}

	cmd.Flags().StringVar(&req.Login, "login", "", "User login")
	cmd.Flags().StringVar(&req.Password, "password", "", "User password")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")

	return cmd
}

func runPrincipalCreate(cmd *cobra.Command, env *Env, req adobeconnect.PrincipalRequest) error {
	ctx := cmd.Context()

	api, err := connect(env, true)
	if err != nil {
		return err
	}
	defer func() { _ = api.Logout(ctx) }()

	p, err := api.CreatePrincipal(ctx, req)
	if err != nil {
		return fmt.Errorf("create %s: %w", req.Login, err)
	}

	printPrincipal(env.Stdout, p)
	return nil
}
