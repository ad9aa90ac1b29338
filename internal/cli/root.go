package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sagerenn/lexi/internal/dict"
)

const (
	MsgTerminating = "Terminating program..."
	MsgProblem     = "There was a problem running the program."
)

// Execute runs the command line against the process streams and returns
// the exit status.
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes args and prints the terminating message last on every path.
func Run(args []string, in io.Reader, out, errOut io.Writer) int {
	defer fmt.Fprintln(out, MsgTerminating)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	err := guard(func() error { return cmd.ExecuteContext(ctx) })
	return report(out, err)
}

func guard(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return fn()
}

func report(out io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(out)
		return 130
	}
	if errors.Is(err, errUndefined) {
		return 2
	}
	var nf *dict.NotFoundError
	if errors.As(err, &nf) {
		fmt.Fprintf(out, "ERROR: No such file or directory: %s could not be found.\n", nf.Name)
		return 0
	}
	fmt.Fprintln(out, MsgProblem)
	fmt.Fprintln(out, err)
	return 1
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "lexi",
		Short:         "Look up word definitions in a local word list",
		Long:          "Look up word definitions in a local word list, with close-match suggestions for misspelled words.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, opts)
		},
	}

	opts.bind(cmd)
	cmd.AddCommand(defineCmd(&opts))
	cmd.AddCommand(versionCmd())
	return cmd
}
