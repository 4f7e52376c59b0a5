package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erpdoc/cli/internal/cmdutil"
	oerrors "github.com/erpdoc/cli/internal/errors"
	"github.com/erpdoc/cli/internal/index"
	"github.com/erpdoc/cli/internal/output"
)

// modelEntry is one canonical model in structured output.
type modelEntry struct {
	Name      string `json:"name" yaml:"name"`
	Module    string `json:"module" yaml:"module"`
	Key       string `json:"key" yaml:"key"`
	ClassName string `json:"className,omitempty" yaml:"className,omitempty"`
}

// NewModelsCmd creates the models command.
func NewModelsCmd() *cobra.Command {
	var (
		depFlags cmdutil.DependencyFlags
		outFlags cmdutil.OutputFlags
	)

	cmd := &cobra.Command{
		Use:   "models [modules...|all]",
		Short: "List the canonical models of the resolved modules",
		Long: `List one entry per logical model name across the resolved modules,
sorted by name.

A base definition (no _inherit) is preferred over extensions of the same
name; among several base definitions the last one in database order wins.

Examples:
  # Every documented model
  erpdoc models all

  # Models visible when documenting sale, as YAML
  erpdoc models sale -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModels(cmd, args, &outFlags)
		},
	}

	depFlags.AddTo(cmd)
	outFlags.AddTo(cmd)

	return cmd
}

func runModels(cmd *cobra.Command, args []string, outFlags *cmdutil.OutputFlags) error {
	format, err := outFlags.Parse()
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitUsage, Err: err}
	}

	res, err := loadAndResolve(args)
	if err != nil {
		return err
	}

	canonical := index.CanonicalModels(res.DB)
	entries := make([]modelEntry, len(canonical))
	for i, ref := range canonical {
		entries[i] = modelEntry{
			Name:      ref.Name(),
			Module:    ref.Module,
			Key:       ref.Key,
			ClassName: ref.Model.ClassName,
		}
	}

	w := cmd.OutOrStdout()
	if format != output.FormatTable {
		return output.Encode(w, format, entries)
	}

	tbl := output.NewTable("MODEL", "MODULE", "KEY", "CLASS")
	for _, e := range entries {
		tbl.Row(e.Name, e.Module, e.Key, e.ClassName)
	}
	fmt.Fprintln(w, tbl.String())
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("%d model(s) in %d module(s)", len(entries), res.DB.Len())))
	return nil
}
