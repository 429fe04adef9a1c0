package cli

import (
	"fmt"
	"github.com/davejbax/go-iso8601"
	"github.com/davejbax/go-iso8601/internal/cliconfig"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RootOptions holds global flags and the state derived from them, shared by all commands.
type RootOptions struct {
	ConfigPath string
	Config     cliconfig.Config

	// Set before any subcommand runs
	Codec  *iso8601.Codec
	Logger zerolog.Logger
}

// NewRootCommand creates the root command for the iso8601 CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Config: cliconfig.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "iso8601",
		Short: "Format and parse ISO 8601 dates and times",
		Long: `Format and parse ISO 8601 calendar, ordinal and week dates, with an optional time of day and UTC offset.

Styles are configured with flags, ISO8601_* environment variables or a TOML file (~/.iso8601/config.toml by
default). Flags take precedence over the environment, which takes precedence over the file.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "path to a TOML config file (default ~/.iso8601/config.toml)")
	flags.StringVar(&opts.Config.DateStyle, "date-style", opts.Config.DateStyle, "date style (calendar-long|calendar-short|ordinal-long|ordinal-short|week-long|week-short)")
	flags.StringVar(&opts.Config.TimeStyle, "time-style", opts.Config.TimeStyle, "time style (none|long|short)")
	flags.StringVar(&opts.Config.TimeZoneStyle, "tz-style", opts.Config.TimeZoneStyle, "time zone style (none|utc|long|short)")
	flags.StringVar(&opts.Config.FractionSeparator, "fraction-separator", opts.Config.FractionSeparator, "fraction separator (comma|dot)")
	flags.IntVar(&opts.Config.FractionDigits, "fraction-digits", opts.Config.FractionDigits, "number of fraction digits")
	flags.StringVarP(&opts.Config.Output, "output", "o", opts.Config.Output, "output format (text|json|yaml)")
	flags.BoolVarP(&opts.Config.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewFormatCommand(opts))
	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewPackCommand(opts))
	cmd.AddCommand(NewUnpackCommand(opts))

	return cmd
}

// load layers the config file and environment under any flags that were set, then builds the codec and logger.
func (o *RootOptions) load(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := o.ConfigPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	} else if !cliconfig.FileExists(cfgFile) {
		return fmt.Errorf("config file %s does not exist", cfgFile)
	}

	loadedFile := false
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		cliconfig.ApplyFileConfig(&o.Config, fc, changed)
		loadedFile = true
	}

	if err := cliconfig.ApplyEnvConfig(&o.Config, changed); err != nil {
		return fmt.Errorf("load environment: %w", err)
	}

	if err := o.Config.Validate(); err != nil {
		return err
	}

	o.Logger = cliconfig.NewLogger(cmd.ErrOrStderr(), o.Config.Verbose)
	if loadedFile {
		o.Logger.Debug().Str("path", cfgFile).Msg("loaded config file")
	}
	o.Logger.Debug().Interface("config", o.Config).Msg("configuration")

	codec, err := o.Config.Codec()
	if err != nil {
		return err
	}

	o.Codec = codec
	return nil
}
