package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erpdoc/cli/internal/cmdutil"
	oerrors "github.com/erpdoc/cli/internal/errors"
	"github.com/erpdoc/cli/internal/index"
	"github.com/erpdoc/cli/internal/metadata"
	"github.com/erpdoc/cli/internal/output"
)

type modelRef struct {
	Module string `json:"module" yaml:"module"`
	Key    string `json:"key" yaml:"key"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
}

type recordRef struct {
	Module string `json:"module" yaml:"module"`
	ID     string `json:"id" yaml:"id"`
	Model  string `json:"model" yaml:"model"`
}

// modelOutput is the structured form of `erpdoc model`.
type modelOutput struct {
	Module     string      `json:"module" yaml:"module"`
	Key        string      `json:"key" yaml:"key"`
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	Inherit    string      `json:"inherit,omitempty" yaml:"inherit,omitempty"`
	Top        *modelRef   `json:"top,omitempty" yaml:"top,omitempty"`
	Neighbours []modelRef  `json:"neighbours" yaml:"neighbours"`
	Views      []recordRef `json:"views" yaml:"views"`
	Actions    []recordRef `json:"actions" yaml:"actions"`
}

// NewModelCmd creates the model command.
func NewModelCmd() *cobra.Command {
	var (
		depFlags cmdutil.DependencyFlags
		outFlags cmdutil.OutputFlags
	)

	cmd := &cobra.Command{
		Use:   "model <module> <model-key>",
		Short: "Show where a model is defined, extended and displayed",
		Long: `Show the relationships of one model record: the module holding its top
(base) definition, the models of other modules sharing its identity, and the
views and actions that target it.

Lookups run over the module and its dependencies, as a generated page would.

Arguments:
  module       Module owning the model record
  model-key    Key of the record in the module's models mapping

Examples:
  # Relationships of an extension of res.partner
  erpdoc model sale res_partner

  # As JSON
  erpdoc model base res_partner -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModel(cmd, args, &outFlags)
		},
	}

	depFlags.AddTo(cmd)
	outFlags.AddTo(cmd)

	return cmd
}

func runModel(cmd *cobra.Command, args []string, outFlags *cmdutil.OutputFlags) error {
	format, err := outFlags.Parse()
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitUsage, Err: err}
	}
	moduleName, key := args[0], args[1]

	res, err := loadAndResolve([]string{moduleName})
	if err != nil {
		return err
	}

	mod, ok := res.DB.Module(moduleName)
	var model *metadata.Model
	if ok {
		model, ok = mod.Models.Get(key)
	}
	if !ok || model == nil {
		err := oerrors.NewNotFoundError(
			fmt.Sprintf("module %q has no model %q", moduleName, key),
			GetSettings().Database,
			fmt.Sprintf("Run 'erpdoc models %s' to list its models.", moduleName),
		)
		cmdutil.PrintError("model lookup failed", err)
		return &oerrors.ExitError{Code: oerrors.ExitNotFound, Err: err, Printed: true}
	}

	out := modelOutput{
		Module:     moduleName,
		Key:        key,
		Name:       model.LogicalName(),
		Inherit:    model.InheritName(),
		Neighbours: []modelRef{},
		Views:      []recordRef{},
		Actions:    []recordRef{},
	}

	topName := out.Name
	if model.IsExtension() {
		topName = out.Inherit
	}
	if top, ok := index.FindTopModel(res.DB, topName); ok && topName != "" {
		out.Top = &modelRef{Module: top.Module, Key: top.Key, Name: top.Name()}
	} else {
		output.Debug("no top definition visible", "model", topName)
	}

	for _, n := range index.FindNeighbours(res.DB, moduleName, model) {
		out.Neighbours = append(out.Neighbours, modelRef{Module: n.Module, Key: n.Key, Name: n.Name()})
	}

	assoc := index.FindViewsAndActions(res.DB, out.Name)
	for _, v := range assoc.Views {
		out.Views = append(out.Views, recordRef{Module: v.Module, ID: v.ID, Model: v.View.Model})
	}
	for _, a := range assoc.Actions {
		out.Actions = append(out.Actions, recordRef{Module: a.Module, ID: a.ID, Model: a.Action.Model})
	}

	w := cmd.OutOrStdout()
	if format != output.FormatTable {
		return output.Encode(w, format, out)
	}

	styles := output.GetStyles()
	fmt.Fprintf(w, "%s %s\n", styles.Bold.Render(displayName(out)), output.StyleDim.Render(moduleName+"/"+key))
	if out.Top != nil {
		fmt.Fprintf(w, "  top:      %s\n", output.StyleNoun.Render(out.Top.Module+"/"+out.Top.Key))
	} else {
		fmt.Fprintf(w, "  top:      %s\n", styles.Muted.Render("not visible"))
	}

	if len(out.Neighbours) > 0 {
		tbl := output.NewTable("NEIGHBOUR", "KEY", "NAME")
		for _, n := range out.Neighbours {
			tbl.Row(n.Module, n.Key, n.Name)
		}
		fmt.Fprintln(w, tbl.String())
	}

	if len(out.Views)+len(out.Actions) > 0 {
		tbl := output.NewTable("KIND", "MODULE", "ID", "TARGET")
		for _, v := range out.Views {
			tbl.Row("view", v.Module, v.ID, v.Model)
		}
		for _, a := range out.Actions {
			tbl.Row("action", a.Module, a.ID, a.Model)
		}
		fmt.Fprintln(w, tbl.String())
	}
	return nil
}

func displayName(out modelOutput) string {
	switch {
	case out.Name != "":
		return out.Name
	case out.Inherit != "":
		return out.Inherit + " (extension)"
	default:
		return out.Key
	}
}
