package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alnah/go-adobeconnect/internal/adobeconnect"
)

// PermissionCmd creates the permission command with subcommands.
// The env parameter provides injectable dependencies for testing.
func PermissionCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permission",
		Short: "Manage access to meeting rooms",
	}

	cmd.AddCommand(permissionSetCmd(env))

	return cmd
}

func permissionSetCmd(env *Env) *cobra.Command {
	var public bool

	cmd := &cobra.Command{
		Use:   "set <sco-id> [<principal-id> <permission>]",
		Short: "Grant a permission on a meeting room",
		Long: fmt.Sprintf(`Grant a principal a permission on a sco.

Permissions: %v

With --public, the room is opened to guests and no principal is needed.`, adobeconnect.Permissions()),
		Example: `  adobeconnect permission set 12345 67890 host
  adobeconnect permission set 12345 --public`,
		Args: func(cmd *cobra.Command, args []string) error {
			if public {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if public {
				return runPermissionPublic(cmd, env, args[0])
			}
			return runPermissionSet(cmd, env, args[0], args[1], args[2])
		},
	}

	cmd.Flags().BoolVar(&public, "public", false, "Allow guests to enter without an account")

	return cmd
}

func runPermissionSet(cmd *cobra.Command, env *Env, scoID, principalID, name string) error {
	ctx := cmd.Context()

	perm, ok := adobeconnect.ParsePermission(name)
	if !ok {
		return fmt.Errorf("%w %q (valid: %v)", ErrInvalidPermission, name, adobeconnect.Permissions())
	}

	api, err := connect(env, true)
	if err != nil {
		return err
	}
	defer func() { _ = api.Logout(ctx) }()

	if err := api.SetPermission(ctx, scoID, principalID, perm); err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Granted %s on %s to %s\n", perm, scoID, principalID)
	return nil
}

func runPermissionPublic(cmd *cobra.Command, env *Env, scoID string) error {
	ctx := cmd.Context()

	api, err := connect(env, true)
	if err != nil {
		return err
	}
	defer func() { _ = api.Logout(ctx) }()

	if err := api.MakePublic(ctx, scoID); err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Opened %s to guests\n", scoID)
	return nil
}
