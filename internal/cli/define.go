package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagerenn/lexi/internal/buildinfo"
	"github.com/sagerenn/lexi/internal/console"
)

// errUndefined marks a define run where at least one word had no entry.
var errUndefined = errors.New("some words are not defined")

func defineCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "define WORD...",
		Short: "Look up words without prompting",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, log, err := setup(cmd, *opts)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			if !console.Define(cmd.OutOrStdout(), engine, args) {
				return errUndefined
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
