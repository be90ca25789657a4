package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alnah/go-adobeconnect/internal/adobeconnect"
)

// CheckCmd creates the check command.
// The env parameter provides injectable dependencies for testing.
func CheckCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "check <response.xml>...",
		Short: "Decode the status of saved API responses",
		Long: `Decode the status of saved Adobe Connect XML responses.

Each file is reported as "ok" or "failed" followed by the decoded error
records. A file that is not well-formed XML is reported as "failed" with no
records. No server is contacted.`,
		Example: `  adobeconnect check reply.xml
  adobeconnect check --verbose responses/*.xml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, env, args)
		},
	}
}

// runCheck decodes every file and returns an error if any is not ok.
// Vendor-reported failures wrap adobeconnect.ErrVendorReported;
// unparseable files wrap adobeconnect.ErrMalformedResponse.
func runCheck(cmd *cobra.Command, env *Env, paths []string) error {
	ctx := cmd.Context()
	parser := adobeconnect.NewStatusParser(env.Logger)

	var failures []error
	for _, p := range paths {
		f, err := os.Open(p) // #nosec G304 -- user-specified input file
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: %s", ErrFileNotFound, p)
			}
			return fmt.Errorf("cannot open %s: %w", p, err)
		}

		errs := &adobeconnect.Errors{}
		if parser.Check(ctx, f, errs) {
			fmt.Fprintf(env.Stdout, "%s: ok\n", p)
			continue
		}

		fmt.Fprintf(env.Stdout, "%s: failed\n", p)
		if !errs.HasErrors() {
			fmt.Fprintln(env.Stdout, "  malformed response")
			failures = append(failures, fmt.Errorf("%s: %w", p, adobeconnect.ErrMalformedResponse))
			continue
		}
		for _, rec := range errs.All() {
			fmt.Fprintf(env.Stdout, "  %s\n", describeRecord(rec))
		}
		failures = append(failures, fmt.Errorf("%s: %w", p, errs))
	}

	if len(failures) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d responses not ok: %w", len(failures), len(paths), errors.Join(failures...))
}

// describeRecord renders one error record for terminal output.
// Example: "missingParameter field=name"
func describeRecord(rec adobeconnect.Error) string {
	var b strings.Builder
	b.WriteString(rec.Code.String())
	for _, arg := range rec.Arguments {
		b.WriteString(" field=")
		b.WriteString(arg)
	}
	if rec.Code == adobeconnect.CodeUnknown && rec.VendorCode() != "" {
		fmt.Fprintf(&b, " (vendor code=%s", rec.VendorCode())
		if sub := rec.VendorSubcode(); sub != "" {
			fmt.Fprintf(&b, " subcode=%s", sub)
		}
		b.WriteString(")")
	}
	return b.String()
}
