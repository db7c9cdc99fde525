package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

// Process exit statuses returned through ExitError.
const (
	ExitMissingArgs     = 1
	ExitMissingInput    = 2
	ExitInvalidSortType = 3
	ExitParseFailure    = 4
)

// ExitError carries a process exit status out of a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 1
}

type rootFlags struct {
	debug bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:          "recordsort",
		Short:        "Parse, sort and serve delimited person records",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable verbose logging to .recordsort/logs/recordsort.log")

	cmd.AddCommand(
		sortCmd(&flags),
		serveCmd(&flags),
		validateCmd(&flags),
		versionCmd(),
	)
	return cmd
}
