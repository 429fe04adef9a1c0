package cli

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"github.com/davejbax/go-iso8601"
	"github.com/spf13/cobra"
	"io"
)

// RecordOptions selects between the 7-byte numerical and 17-byte digit date and time records.
type RecordOptions struct {
	Long bool
}

// NewPackCommand creates the pack command.
func NewPackCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecordOptions{}

	cmd := &cobra.Command{
		Use:   "pack <text>",
		Short: "Encode text as an ECMA-119 date and time record",
		Long: `Parse text written with the configured styles, and print the hex encoding of the ECMA-119 (ISO 9660)
date and time record holding it. The 7-byte numerical record is written by default; --long writes the 17-byte digit
record used in volume descriptors. Offsets must be a whole number of 15 minutes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(rootOpts, opts, cmd, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.Long, "long", false, "write the 17-byte digit record")

	return cmd
}

// NewUnpackCommand creates the unpack command.
func NewUnpackCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecordOptions{}

	cmd := &cobra.Command{
		Use:   "unpack <hex>",
		Short: "Decode an ECMA-119 date and time record and format it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnpack(rootOpts, opts, cmd, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.Long, "long", false, "read the 17-byte digit record")

	return cmd
}

func (o *RecordOptions) write(w io.Writer, clock iso8601.Clock) (int64, error) {
	if o.Long {
		return iso8601.WriteLongDateTime(w, clock)
	}

	return iso8601.WriteDateTime(w, clock)
}

func (o *RecordOptions) read(r io.Reader) (iso8601.Clock, error) {
	if o.Long {
		return iso8601.ReadLongDateTime(r)
	}

	return iso8601.ReadDateTime(r)
}

func (o *RecordOptions) size() int {
	if o.Long {
		return iso8601.LongDateTimeSize
	}

	return iso8601.DateTimeSize
}

func runPack(rootOpts *RootOptions, opts *RecordOptions, cmd *cobra.Command, input string) error {
	clock, err := rootOpts.Codec.Parse(input)
	if err != nil {
		return fmt.Errorf("could not parse %q: %w", input, err)
	}

	var buff bytes.Buffer

	written, err := opts.write(&buff, clock)
	if err != nil {
		return fmt.Errorf("could not pack %v: %w", clock, err)
	}

	rootOpts.Logger.Debug().Int64("bytes", written).Bool("long", opts.Long).Msg("packed record")

	return render(cmd.OutOrStdout(), rootOpts.Config.Output, Result{
		Input:  input,
		Text:   hex.EncodeToString(buff.Bytes()),
		Fields: clock.Map(),
	})
}

func runUnpack(rootOpts *RootOptions, opts *RecordOptions, cmd *cobra.Command, input string) error {
	data, err := hex.DecodeString(input)
	if err != nil {
		return fmt.Errorf("could not decode hex: %w", err)
	}

	if len(data) != opts.size() {
		return fmt.Errorf("record should be %d bytes, got %d", opts.size(), len(data))
	}

	clock, err := opts.read(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("could not unpack record: %w", err)
	}

	text, err := rootOpts.Codec.Format(clock)
	if err != nil {
		return fmt.Errorf("could not format %v: %w", clock, err)
	}

	return render(cmd.OutOrStdout(), rootOpts.Config.Output, Result{
		Input:  input,
		Text:   text,
		Fields: clock.Map(),
	})
}
