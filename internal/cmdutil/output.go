package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	oerrors "github.com/erpdoc/cli/internal/errors"
	"github.com/erpdoc/cli/internal/metadata"
	"github.com/erpdoc/cli/internal/output"
)

// PrintError reports err on the logger. Structured errors are printed whole
// so their location and hint stay readable.
func PrintError(msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(msg)
		fmt.Fprint(os.Stderr, detail.Error())
		return
	}
	output.Error(msg, "error", err)
}

// PrintIssues writes one line per issue followed by a summary.
func PrintIssues(w io.Writer, file string, issues []metadata.Issue) {
	for _, issue := range issues {
		fmt.Fprintln(w, output.FormatIssue(issue.Path, issue.Message))
	}
	fmt.Fprintln(w, output.FormatCross(fmt.Sprintf("%s: %d issue(s)", file, len(issues))))
}
