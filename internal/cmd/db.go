package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erpdoc/cli/internal/cmdutil"
	oerrors "github.com/erpdoc/cli/internal/errors"
	"github.com/erpdoc/cli/internal/metadata"
	"github.com/erpdoc/cli/internal/output"
)

// NewDBCmd creates the db command group.
func NewDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Inspect metadata database documents",
		Long: `Commands for checking and comparing metadata database documents
(the JSON cache written by the introspection step, or YAML with the same layout).`,
	}

	cmd.AddCommand(newDBVetCmd())
	cmd.AddCommand(newDBDiffCmd())

	return cmd
}

func newDBVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet [path]",
		Short: "Validate a metadata database against its schema",
		Long: `Validate a metadata database document against the embedded CUE schema.

Every violation is reported with its field path. Without a path the configured
database is checked.

Examples:
  erpdoc db vet
  erpdoc db vet fixtures/db.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDBVet,
	}
}

func runDBVet(cmd *cobra.Command, args []string) error {
	path := GetSettings().Database
	if len(args) == 1 {
		path = args[0]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			err = oerrors.NewNotFoundError("metadata database not found", path, "")
		}
		cmdutil.PrintError("reading metadata database failed", err)
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
	}

	vetter, err := metadata.NewVetter()
	if err != nil {
		return fmt.Errorf("loading database schema: %w", err)
	}

	issues, err := vetter.Vet(data, path)
	if err != nil {
		err = oerrors.NewValidationError(err.Error(), path, "", "")
		cmdutil.PrintError("database is not a valid document", err)
		return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err, Printed: true}
	}

	w := cmd.OutOrStdout()
	if len(issues) > 0 {
		cmdutil.PrintIssues(w, path, issues)
		return &oerrors.ExitError{
			Code:    oerrors.ExitValidationError,
			Err:     oerrors.Wrap(oerrors.ErrValidation, fmt.Sprintf("%d issue(s) in %s", len(issues), path)),
			Printed: true,
		}
	}

	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("%s is valid", output.StyleNoun.Render(path))))
	return nil
}

func newDBDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two metadata database snapshots",
		Long: `Compare two metadata database snapshots. Added and removed modules are
listed first, followed by a structural diff of the changed content.

JSON and YAML snapshots with the same content compare equal.

Examples:
  erpdoc db diff db.old.json db.json`,
		Args: cobra.ExactArgs(2),
		RunE: runDBDiff,
	}
}

func runDBDiff(cmd *cobra.Command, args []string) error {
	before, err := loadDatabase(args[0])
	if err != nil {
		return err
	}
	after, err := loadDatabase(args[1])
	if err != nil {
		return err
	}

	cmp, err := metadata.Compare(before, after, output.IsTTY())
	if err != nil {
		cmdutil.PrintError("comparing snapshots failed", err)
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err, Printed: true}
	}

	modified := make([]output.ModifiedItem, 0, len(cmp.ChangedModules))
	for _, name := range cmp.ChangedModules {
		modified = append(modified, output.ModifiedItem{Name: name})
	}

	w := cmd.OutOrStdout()
	styles := output.GetStyles()
	fmt.Fprint(w, output.RenderDiff(cmp.AddedModules, cmp.RemovedModules, modified, styles))
	if cmp.Report != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styles.Bold.Render("Details:"))
		fmt.Fprint(w, output.IndentDiff(cmp.Report, "  "))
	}
	return nil
}
