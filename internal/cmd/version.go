package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erpdoc/cli/internal/cmdutil"
	oerrors "github.com/erpdoc/cli/internal/errors"
	"github.com/erpdoc/cli/internal/output"
	"github.com/erpdoc/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var outFlags cmdutil.OutputFlags

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show erpdoc version information.

Displays:
  - erpdoc version, commit, and build date
  - CUE SDK version (embedded in erpdoc)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outFlags.Parse()
			if err != nil {
				return &oerrors.ExitError{Code: oerrors.ExitUsage, Err: err}
			}

			info := version.Get()
			if format != output.FormatTable {
				return output.Encode(cmd.OutOrStdout(), format, info)
			}
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return nil
		},
	}

	outFlags.AddTo(cmd)

	return cmd
}
