package cli

import (
	"fmt"
	"github.com/spf13/cobra"
	"time"
)

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse text written with the configured styles",
		Long: `Parse text written with the configured styles, and print the fields that could be read. Parsing stops at
the first field that is missing or malformed; only a missing or out of range year is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, cmd, args[0])
		},
	}
}

func runParse(opts *RootOptions, cmd *cobra.Command, input string) error {
	clock, err := opts.Codec.Parse(input)
	if err != nil {
		return fmt.Errorf("could not parse %q: %w", input, err)
	}

	opts.Logger.Debug().Str("input", input).Stringer("clock", clock).Msg("parsed text")

	return render(cmd.OutOrStdout(), opts.Config.Output, Result{
		Input:  input,
		Text:   clock.String(),
		Fields: clock.Map(),
		Time:   clock.Time().Format(time.RFC3339),
	})
}
