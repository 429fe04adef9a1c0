package cli

import (
	"fmt"
	"github.com/davejbax/go-iso8601"
	"github.com/spf13/cobra"
)

// ConvertOptions holds the target styles for the convert command. Empty styles keep the configured style.
type ConvertOptions struct {
	DateStyle     string
	TimeStyle     string
	TimeZoneStyle string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <text>",
		Short: "Re-write text from the configured styles to other styles",
		Long: `Parse text written with the configured styles and format the result with the target styles. Fields that
could not be parsed take the first value of their range.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.DateStyle, "to-date-style", "", "target date style (default: --date-style)")
	cmd.Flags().StringVar(&opts.TimeStyle, "to-time-style", "", "target time style (default: --time-style)")
	cmd.Flags().StringVar(&opts.TimeZoneStyle, "to-tz-style", "", "target time zone style (default: --tz-style)")

	return cmd
}

// target returns config with the target styles applied.
func (o *ConvertOptions) target(config iso8601.Config) (iso8601.Config, error) {
	var err error

	if o.DateStyle != "" {
		if config.DateStyle, err = iso8601.ParseDateStyle(o.DateStyle); err != nil {
			return config, err
		}
	}

	if o.TimeStyle != "" {
		if config.TimeStyle, err = iso8601.ParseTimeStyle(o.TimeStyle); err != nil {
			return config, err
		}
	}

	if o.TimeZoneStyle != "" {
		if config.TimeZoneStyle, err = iso8601.ParseTimeZoneStyle(o.TimeZoneStyle); err != nil {
			return config, err
		}
	}

	return config, nil
}

func runConvert(rootOpts *RootOptions, opts *ConvertOptions, cmd *cobra.Command, input string) error {
	target, err := opts.target(rootOpts.Codec.Config())
	if err != nil {
		return err
	}

	clock, err := rootOpts.Codec.Parse(input)
	if err != nil {
		return fmt.Errorf("could not parse %q: %w", input, err)
	}

	text, err := iso8601.NewCodec(target).Format(clock)
	if err != nil {
		return fmt.Errorf("could not format %v: %w", clock, err)
	}

	rootOpts.Logger.Debug().Stringer("clock", clock).Str("text", text).Msg("converted text")

	return render(cmd.OutOrStdout(), rootOpts.Config.Output, Result{
		Input:  input,
		Text:   text,
		Fields: clock.Map(),
	})
}
