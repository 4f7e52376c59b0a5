package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erpdoc/cli/internal/cmdutil"
	oerrors "github.com/erpdoc/cli/internal/errors"
	"github.com/erpdoc/cli/internal/metadata"
	"github.com/erpdoc/cli/internal/output"
)

// resolveOutput is the structured form of `erpdoc resolve`.
type resolveOutput struct {
	Requested []string `json:"requested" yaml:"requested"`
	Modules   []string `json:"modules" yaml:"modules"`
	Unknown   []string `json:"unknown,omitempty" yaml:"unknown,omitempty"`
}

// NewResolveCmd creates the resolve command.
func NewResolveCmd() *cobra.Command {
	var (
		depFlags cmdutil.DependencyFlags
		outFlags cmdutil.OutputFlags
	)

	cmd := &cobra.Command{
		Use:   "resolve [modules...|all]",
		Short: "Show the modules needed to document the requested ones",
		Long: `Compute the transitive closure of the requested modules over their
declared dependencies.

Names missing from the metadata database are reported once and skipped.

Arguments:
  modules    Module names, or 'all' for every module in the database

Examples:
  # Modules required by sale
  erpdoc resolve sale

  # Only the listed modules, as JSON
  erpdoc resolve sale crm --no-deps -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, &outFlags)
		},
	}

	depFlags.AddTo(cmd)
	outFlags.AddTo(cmd)

	return cmd
}

func runResolve(cmd *cobra.Command, args []string, outFlags *cmdutil.OutputFlags) error {
	format, err := outFlags.Parse()
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitUsage, Err: err}
	}

	res, err := loadAndResolve(args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if format != output.FormatTable {
		return output.Encode(w, format, resolveOutput{
			Requested: res.Requested,
			Modules:   res.Result.Modules.Names(),
			Unknown:   res.Result.Unknown,
		})
	}

	requested := make(map[string]bool, len(res.Requested))
	for _, name := range res.Requested {
		requested[name] = true
	}

	styles := output.GetStyles()
	tbl := output.NewTable("MODULE", "VERSION", "DEPENDS", "REQUESTED")
	for _, name := range res.Result.Modules.Names() {
		mark := ""
		if requested[name] {
			mark = "yes"
		}
		mod, ok := res.DB.Module(name)
		if !ok {
			tbl.Row(name, styles.Muted.Render("not available"), "", mark)
			continue
		}
		tbl.Row(mod.Name, mod.Manifest.Version, strings.Join(mod.Manifest.Depends, ", "), mark)
	}
	fmt.Fprintln(w, tbl.String())
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("%d module(s) resolved, %d available", res.Result.Modules.Len(), res.DB.Len())))
	return nil
}

// loadAndResolve loads the configured database and resolves args against it.
// Errors come back as ExitErrors already printed.
func loadAndResolve(args []string) (*cmdutil.Resolution, error) {
	s := GetSettings()

	db, err := loadDatabase(s.Database)
	if err != nil {
		return nil, err
	}

	res, err := cmdutil.ResolveModules(db, cmdutil.ResolveOptions{
		Args:             args,
		DatabasePath:     s.Database,
		AutoDependencies: s.AutoDependencies,
		Verbose:          IsVerbose(),
	})
	if err != nil {
		cmdutil.PrintError("resolving modules failed", err)
		return nil, &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
	}
	return res, nil
}

func loadDatabase(path string) (*metadata.Database, error) {
	db, err := cmdutil.LoadDatabase(path)
	if err != nil {
		cmdutil.PrintError("loading metadata database failed", err)
		return nil, &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
	}
	return db, nil
}
