// Package cmdutil provides shared command utilities.
// It centralizes flag group management, database loading, module resolution
// and output formatting helpers used by the erpdoc subcommands.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/erpdoc/cli/internal/errors"
	"github.com/erpdoc/cli/internal/output"
)

// Flag names read back when resolving settings.
const (
	FlagNoDeps       = "no-deps"
	FlagTargetDir    = "target-dir"
	FlagNoSourceCode = "no-source-code"
	FlagOutput       = "output"
)

// DependencyFlags holds flags for commands that take a list of modules
// (resolve, models, generate).
type DependencyFlags struct {
	NoDeps bool
}

// AddTo registers the dependency flags on the given cobra command.
func (f *DependencyFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.NoDeps, FlagNoDeps, false,
		"Do not pull in the dependencies of requested modules (env: ERPDOC_AUTO_DEPENDENCIES=false)")
}

// OutputFlags holds the output format flag.
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, FlagOutput, "o", string(output.FormatTable),
		fmt.Sprintf("Output format: %s", strings.Join(output.ValidFormats(), ", ")))
}

// Parse validates the format flag.
func (f *OutputFlags) Parse() (output.Format, error) {
	format, ok := output.ParseFormat(f.Format)
	if !ok {
		return "", oerrors.NewUsageError(
			fmt.Sprintf("unknown output format %q", f.Format),
			fmt.Sprintf("Use one of: %s.", strings.Join(output.ValidFormats(), ", ")),
		)
	}
	return format, nil
}

// SiteFlags holds flags for the generate command.
type SiteFlags struct {
	TargetDir    string
	Clean        bool
	NoSourceCode bool
}

// AddTo registers the site flags on the given cobra command.
func (f *SiteFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.TargetDir, FlagTargetDir, "",
		"Directory the site is written to (default: build, env: ERPDOC_TARGET_DIR)")
	cmd.Flags().BoolVar(&f.Clean, "clean", false,
		"Remove the target directory before generating")
	cmd.Flags().BoolVar(&f.NoSourceCode, FlagNoSourceCode, false,
		"Do not render source pages or link to them (env: ERPDOC_SOURCE_CODE=false)")
}
