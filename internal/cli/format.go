package cli

import (
	"fmt"
	"github.com/spf13/cobra"
	"time"
)

// NewFormatCommand creates the format command.
func NewFormatCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "format [RFC3339 time|now]",
		Short: "Format a point in time with the configured styles",
		Long: `Format a point in time with the configured styles. The time is given in RFC 3339 form, and keeps its own
UTC offset. With no argument, or 'now', the current time is formatted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "now"
			if len(args) == 1 {
				input = args[0]
			}

			return runFormat(rootOpts, cmd, input, time.Now)
		},
	}
}

func runFormat(opts *RootOptions, cmd *cobra.Command, input string, now func() time.Time) error {
	t := now()

	if input != "now" {
		var err error
		if t, err = time.Parse(time.RFC3339, input); err != nil {
			return fmt.Errorf("could not parse %q as an RFC 3339 time: %w", input, err)
		}
	}

	text, err := opts.Codec.FormatTime(t)
	if err != nil {
		return fmt.Errorf("could not format %s: %w", t.Format(time.RFC3339), err)
	}

	opts.Logger.Debug().Time("time", t).Str("text", text).Msg("formatted time")

	return render(cmd.OutOrStdout(), opts.Config.Output, Result{
		Input: input,
		Text:  text,
		Time:  t.Format(time.RFC3339),
	})
}
