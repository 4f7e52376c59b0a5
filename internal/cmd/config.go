package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erpdoc/cli/internal/cmdutil"
	"github.com/erpdoc/cli/internal/config"
	oerrors "github.com/erpdoc/cli/internal/errors"
	"github.com/erpdoc/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the erpdoc configuration file",
		Long: `Create and validate the erpdoc configuration file.

The file lives at ~/.erpdoc/config.yaml unless --config or ERPDOC_CONFIG
names another location.`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigVetCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: `Create a configuration file holding the default values.

An existing file is left untouched unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if !force {
		exists, err := config.ConfigFileExists(path)
		if err != nil {
			return fmt.Errorf("checking config file: %w", err)
		}
		if exists {
			err := oerrors.NewUsageError("config file already exists: "+path, "Use --force to overwrite it.")
			cmdutil.PrintError("config init failed", err)
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err, Printed: true}
		}
	}

	if err := config.WriteDefault(path, force); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Config file written: "+output.StyleNoun.Render(path)))
	return nil
}

func newConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the configuration file against the embedded CUE schema.

Unknown keys and values of the wrong type are reported with their field path.`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, _ []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		err := oerrors.NewNotFoundError("config file not found", path, "Run 'erpdoc config init' to create one.")
		cmdutil.PrintError("config vet failed", err)
		return &oerrors.ExitError{Code: oerrors.ExitNotFound, Err: err, Printed: true}
	}

	w := cmd.OutOrStdout()
	if err := validator.ValidateFile(path); err != nil {
		var verrs config.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating config: %w", err)
		}
		for _, e := range verrs {
			fmt.Fprintln(w, output.FormatIssue(e.Field, e.Message))
		}
		fmt.Fprintln(w, output.FormatCross(fmt.Sprintf("%s: %d issue(s)", path, len(verrs))))
		return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err, Printed: true}
	}

	fmt.Fprintln(w, output.FormatCheckmark("Config file is valid: "+output.StyleNoun.Render(path)))
	return nil
}

// configFilePath returns the config path chosen by the root pre-run, or the
// default location when none was resolved.
func configFilePath() (string, error) {
	if path := GetConfigPath(); path != "" {
		return path, nil
	}
	path, err := config.GetConfigFile()
	if err != nil {
		return "", fmt.Errorf("getting config file path: %w", err)
	}
	return path, nil
}
