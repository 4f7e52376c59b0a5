package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erpdoc/cli/internal/cmdutil"
	oerrors "github.com/erpdoc/cli/internal/errors"
	"github.com/erpdoc/cli/internal/output"
	"github.com/erpdoc/cli/internal/site"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	var (
		depFlags  cmdutil.DependencyFlags
		siteFlags cmdutil.SiteFlags
	)

	cmd := &cobra.Command{
		Use:   "generate [modules...|all]",
		Short: "Render the documentation site",
		Long: `Render a static HTML site for the requested modules and their
dependencies: an index page, one page per model and, unless disabled, one
highlighted page per linked source file.

Source files are read relative to the working directory, using the paths
recorded in the metadata database.

Arguments:
  modules    Module names, or 'all' for every module in the database

Examples:
  # Document sale and everything it depends on
  erpdoc generate sale

  # Rebuild the whole site from scratch into ./docs
  erpdoc generate all --target-dir docs --clean

  # Skip source pages
  erpdoc generate sale --no-source-code`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, &siteFlags)
		},
	}

	depFlags.AddTo(cmd)
	siteFlags.AddTo(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, siteFlags *cmdutil.SiteFlags) error {
	res, err := loadAndResolve(args)
	if err != nil {
		return err
	}
	s := GetSettings()

	gen, err := site.NewGenerator(res.DB, site.Options{
		TargetDir:  s.TargetDir,
		Clean:      siteFlags.Clean,
		ShowSource: s.SourceCode,
	})
	if err != nil {
		cmdutil.PrintError("preparing generator failed", err)
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err, Printed: true}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var report *site.Report
	err = output.RunWithSpinner(ctx, func(ctx context.Context) error {
		var genErr error
		report, genErr = gen.Generate(ctx)
		return genErr
	}, output.WithTitle(fmt.Sprintf("Generating documentation for %d module(s)...", res.DB.Len())))
	if err != nil {
		cmdutil.PrintError("generating site failed", err)
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err, Printed: true}
	}

	for _, path := range report.MissingSources {
		output.Warn("source page skipped", "file", path)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf(
		"%s: %d module(s), %d model page(s), %d source page(s)",
		output.StyleNoun.Render(s.TargetDir), report.Modules, report.ModelPages, report.SourcePages,
	)))
	return nil
}
