package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alnah/go-adobeconnect/internal/adobeconnect"
)

// defaultMeetingLength is used by "meeting create" when neither --end nor
// --duration is given.
const defaultMeetingLength = time.Hour

// timeLayouts are the accepted --begin/--end formats, tried in order.
// Layouts without a zone are read in the local time zone.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// meetingFlags holds the flags shared by "meeting create" and "meeting update".
type meetingFlags struct {
	name        string
	description string
	urlPath     string
	template    string
	begin       string
	end         string
	duration    string
}

func (f *meetingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Meeting name")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "Meeting description")
	cmd.Flags().StringVar(&f.urlPath, "url-path", "", "Custom room URL path")
	cmd.Flags().StringVar(&f.template, "template", "", "Sco id of a meeting template to copy")
	cmd.Flags().StringVar(&f.begin, "begin", "", "Start time (RFC 3339 or \"2006-01-02 15:04\")")
	cmd.Flags().StringVar(&f.end, "end", "", "End time (RFC 3339 or \"2006-01-02 15:04\")")
	cmd.Flags().StringVar(&f.duration, "duration", "", "Meeting length when --end is not set (e.g., 90m, 2h)")
}

// parseTime parses s with the first matching layout in timeLayouts.
func parseTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (use RFC 3339 or \"2006-01-02 15:04\")", ErrInvalidTime, s)
}

// meetingRequest converts flags into a request.
// For creation, a missing begin defaults to now (truncated to the minute)
// and a missing end defaults to begin plus defaultMeetingLength.
func meetingRequest(f meetingFlags, now time.Time, create bool) (adobeconnect.MeetingRequest, error) {
	req := adobeconnect.MeetingRequest{
		Name:        f.name,
		Description: f.description,
		URLPath:     f.urlPath,
		TemplateID:  f.template,
	}

	loc := now.Location()
	switch {
	case f.begin != "":
		t, err := parseTime(f.begin, loc)
		if err != nil {
			return req, err
		}
		req.Begin = t
	case create:
		req.Begin = now.Truncate(time.Minute)
	}

	if f.end != "" && f.duration != "" {
		return req, fmt.Errorf("--end and --duration are mutually exclusive: %w", ErrInvalidDuration)
	}

	switch {
	case f.end != "":
		t, err := parseTime(f.end, loc)
		if err != nil {
			return req, err
		}
		req.End = t
	case f.duration != "":
		d, err := time.ParseDuration(f.duration)
		if err != nil || d <= 0 {
			return req, fmt.Errorf("%w: %q (use e.g. 90m, 2h)", ErrInvalidDuration, f.duration)
		}
		if req.Begin.IsZero() {
			return req, fmt.Errorf("--duration needs --begin: %w", ErrInvalidDuration)
		}
		req.End = req.Begin.Add(d)
	case create:
		req.End = req.Begin.Add(defaultMeetingLength)
	}

	return req, nil
}

// MeetingCmd creates the meeting command with subcommands.
// The env parameter provides injectable dependencies for testing.
func MeetingCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meeting",
		Short: "Manage meeting rooms",
		Long: `Create, update, delete and inspect meeting rooms.

Meetings are created in the shared meetings folder, or in the user's own
meetings folder when the account has no shared one.`,
	}

	cmd.AddCommand(meetingCreateCmd(env))
	cmd.AddCommand(meetingUpdateCmd(env))
	cmd.AddCommand(meetingDeleteCmd(env))
	cmd.AddCommand(meetingInfoCmd(env))

	return cmd
}

func meetingCreateCmd(env *Env) *cobra.Command {
	var (
		flags  meetingFlags
		public bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a meeting room",
		Example: `  adobeconnect meeting create -n "Weekly review" --begin "2026-10-20 10:00" --duration 90m
  adobeconnect meeting create -n Lecture --url-path lecture-01 --public`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeetingCreate(cmd, env, flags, public)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&public, "public", false, "Allow guests to enter without an account")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runMeetingCreate(cmd *cobra.Command, env *Env, flags meetingFlags, public bool) error {
	ctx := cmd.Context()

	req, err := meetingRequest(flags, env.Now(), true)
	if err != nil {
		return err
	}

	api, err := connect(env, true)
	if err != nil {
		return err
	}
	defer func() { _ = api.Logout(ctx) }()

	folder, err := api.MeetingsFolder(ctx)
	if err != nil {
		return err
	}

	sco, err := api.CreateMeeting(ctx, folder.ID, req)
	if err != nil {
		return err
	}

	if public {
		if err := api.MakePublic(ctx, sco.ID); err != nil {
			return fmt.Errorf("meeting %s created but not made public: %w", sco.ID, err)
		}
	}

	printSco(env.Stdout, sco)
	return nil
}

func meetingUpdateCmd(env *Env) *cobra.Command {
	var flags meetingFlags

	cmd := &cobra.Command{
		Use:   "update <sco-id>",
		Short: "Update a meeting room",
		Long: `Update a meeting room. The name is always sent; other fields are only
changed when their flag is given.`,
		Example: `  adobeconnect meeting update 12345 -n "Weekly review" --begin "2026-10-27 10:00" --duration 1h`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeetingUpdate(cmd, env, args[0], flags)
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runMeetingUpdate(cmd *cobra.Command, env *Env, scoID string, flags meetingFlags) error {
	ctx := cmd.Context()

	req, err := meetingRequest(flags, env.Now(), false)
	if err != nil {
		return err
	}

	api, err := connect(env, true)
	if err != nil {
		return err
	}
	defer func() { _ = api.Logout(ctx) }()

	if err := api.UpdateMeeting(ctx, scoID, req); err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Updated %s\n", scoID)
	return nil
}

func meetingDeleteCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <sco-id>...",
		Short:   "Delete meeting rooms",
		Example: `  adobeconnect meeting delete 12345 12346`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeetingDelete(cmd, env, args)
		},
	}
}

// runMeetingDelete deletes scos in order and stops at the first failure.
func runMeetingDelete(cmd *cobra.Command, env *Env, ids []string) error {
	ctx := cmd.Context()

	api, err := connect(env, true)
	if err != nil {
		return err
	}
	defer func() { _ = api.Logout(ctx) }()

	for _, id := range ids {
		if err := api.DeleteSco(ctx, id); err != nil {
			return fmt.Errorf("delete %s: %w", id, err)
		}
		fmt.Fprintf(env.Stdout, "Deleted %s\n", id)
	}
	return nil
}

func meetingInfoCmd(env *Env) *cobra.Command {
	var parallel int

	cmd := &cobra.Command{
		Use:   "info <sco-id>...",
		Short: "Show meeting rooms",
		Example: `  adobeconnect meeting info 12345
  adobeconnect meeting info -p 4 12345 12346 12347`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeetingInfo(cmd, env, args, parallel)
		},
	}

	cmd.Flags().IntVarP(&parallel, "parallel", "p", adobeconnect.MaxRecommendedParallel,
		fmt.Sprintf("Max concurrent API requests (1-%d)", adobeconnect.MaxRecommendedParallel))

	return cmd
}

func runMeetingInfo(cmd *cobra.Command, env *Env, ids []string, parallel int) error {
	ctx := cmd.Context()

	api, err := connect(env, true)
	if err != nil {
		return err
	}
	defer func() { _ = api.Logout(ctx) }()

	scos, err := api.ScoInfoAll(ctx, ids, clampParallel(parallel))
	if err != nil {
		return err
	}

	for i, sco := range scos {
		if i > 0 {
			fmt.Fprintln(env.Stdout)
		}
		printSco(env.Stdout, sco)
	}
	return nil
}

// clampParallel constrains parallel request count to valid range [1, MaxRecommendedParallel].
func clampParallel(n int) int {
	if n < 1 {
		return 1
	}
	if n > adobeconnect.MaxRecommendedParallel {
		return adobeconnect.MaxRecommendedParallel
	}
	return n
}
