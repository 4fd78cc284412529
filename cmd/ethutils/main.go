package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abcfe/ethutils/codec"
	"github.com/abcfe/ethutils/common/logger"
	"github.com/abcfe/ethutils/config"
	"github.com/abcfe/ethutils/internal/styles"
	"github.com/spf13/cobra"
)

// Version info (Injected from Makefile)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const (
	exitOK         = 0
	exitParseError = 1
	exitUsage      = 2
)

type rootOptions struct {
	configFile string
	debug      bool
	cfg        *config.Config
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stderr)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	defer logger.Sync()
	if err == nil {
		return exitOK
	}

	diag := styles.NewDiagnostic(stderr)
	var parseErr *codec.ParseError
	if errors.As(err, &parseErr) {
		logger.Error("invalid address ", parseErr.Input, ": ", parseErr)
		fmt.Fprintln(stderr, diag.Line("Invalid address:", parseErr.Error()))
		return exitParseError
	}

	fmt.Fprintln(stderr, diag.Line("Error:", err.Error()))
	return exitUsage
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	var rootCmd = &cobra.Command{
		Use:           "ethutils",
		Short:         "Ethereum address utilities",
		Long:          `Convert Ethereum address to checksum address or back.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// flags and args are valid past this point
			cmd.SilenceUsage = true

			cfg, err := config.NewConfig(opts.configFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return logger.InitLogger(cfg, opts.debug, stderr)
		},
	}

	// Register global flags
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to config file (default "+config.DefaultPath()+" if present)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write debug logs to stderr")

	rootCmd.AddCommand(addressCmd(opts))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ethutils %s (built %s)\n", Version, BuildTime)
		},
	}
}
