package main

import (
	"fmt"

	"github.com/abcfe/ethutils/codec"
	"github.com/abcfe/ethutils/common/logger"
	prt "github.com/abcfe/ethutils/protocol"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// formatValue --convert 플래그 값
type formatValue prt.AddressFormat

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string {
	return prt.AddressFormat(*f).String()
}

func (f *formatValue) Set(s string) error {
	v, ok := prt.ParseAddressFormat(s)
	if !ok {
		return fmt.Errorf("invalid value %q, must be one of: checksum, plain", s)
	}
	*f = formatValue(v)
	return nil
}

func (f *formatValue) Type() string {
	return "checksum|plain"
}

func addressCmd(root *rootOptions) *cobra.Command {
	var (
		convert  = formatValue(prt.FormatChecksum)
		tolerate bool
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "address <ADDRESS>",
		Short: "Convert an address to checksum or plain form",
		Example: `  ethutils address 0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed
  ethutils address -c plain 0x5aAeb6053f3e94c9b9a09f33669435E7Ef1BeAed
  ethutils address -t 1390849295786071768276380950238675083608645509734`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := prt.AddressFormat(convert)
			opts := codec.Options{Tolerant: tolerate, VerifyChecksum: strict}

			// config values apply only where the flag was not given
			if cfg := root.cfg; cfg != nil {
				if !cmd.Flags().Changed("convert") {
					format = cfg.AddressFormat()
				}
				if !cmd.Flags().Changed("tolerate") {
					opts.Tolerant = cfg.Convert.Tolerate
				}
				if !cmd.Flags().Changed("strict") {
					opts.VerifyChecksum = cfg.Convert.Strict
				}
			}

			out, err := codec.Convert(args[0], format, opts)
			if err != nil {
				return err
			}

			logger.Info("address converted, format=", format, " tolerant=", opts.Tolerant)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().VarP(&convert, "convert", "c", "Output format")
	cmd.Flags().BoolVarP(&tolerate, "tolerate", "t", false, "Tolerate invalid address, try to parse it as a 256-bit decimal integer")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject mixed-case input whose casing is not a valid checksum")

	return cmd
}
