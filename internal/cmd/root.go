// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/erpdoc/cli/internal/cmdutil"
	"github.com/erpdoc/cli/internal/config"
	"github.com/erpdoc/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	databaseFlag   string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	loadedConfig *config.Config
	settings     *config.Settings
)

// NewRootCmd creates the root command for the erpdoc CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "erpdoc",
		Short: "Documentation generator for modular ERP code bases",
		Long: `erpdoc resolves the modules, models, views and actions recorded in a
metadata database and renders them as a static documentation site.

The metadata database is the JSON cache written by the introspection step
(db.json by default). YAML documents with the same layout are accepted too.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: ERPDOC_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&databaseFlag, "database", "", "Path to the metadata database (env: ERPDOC_DATABASE)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewResolveCmd())
	rootCmd.AddCommand(NewModelsCmd())
	rootCmd.AddCommand(NewModelCmd())
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewDBCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration, resolves settings and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	pathResult, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return err
	}

	loadedConfig, err = config.NewLoader().Load(pathResult.ConfigPath)
	if err != nil {
		// Don't fail here - `config vet` reports the problem, other
		// commands fall back to env and defaults.
		output.Warn("ignoring config file", "path", pathResult.ConfigPath, "error", err)
		loadedConfig = nil
	}

	settings, err = config.ResolveSettings(loadedConfig, pathResult.ConfigPath, flagOverrides(cmd))
	if err != nil {
		return err
	}

	output.SetupLogging(output.LogConfig{
		Verbose:    verboseFlag,
		Timestamps: output.BoolPtr(settings.Timestamps),
	})

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", pathResult.ConfigPath,
			"configSource", pathResult.Source,
		)
		config.LogResolvedValues(settings.Values)
	}

	return nil
}

// flagOverrides collects the flags the user set explicitly. cmd is the
// command being executed, so its flag set holds both the persistent flags and
// its own.
func flagOverrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()

	if flags.Changed("database") {
		o.Database = &databaseFlag
	}
	if flags.Changed("timestamps") {
		o.Timestamps = &timestampsFlag
	}
	if flags.Changed(cmdutil.FlagTargetDir) {
		if v, err := flags.GetString(cmdutil.FlagTargetDir); err == nil {
			o.TargetDir = &v
		}
	}
	if flags.Changed(cmdutil.FlagNoDeps) {
		if v, err := flags.GetBool(cmdutil.FlagNoDeps); err == nil {
			auto := !v
			o.AutoDependencies = &auto
		}
	}
	if flags.Changed(cmdutil.FlagNoSourceCode) {
		if v, err := flags.GetBool(cmdutil.FlagNoSourceCode); err == nil {
			show := !v
			o.SourceCode = &show
		}
	}
	return o
}

// GetSettings returns the resolved settings, or the defaults when the root
// pre-run has not happened (commands constructed directly in tests).
func GetSettings() *config.Settings {
	if settings != nil {
		return settings
	}
	s, err := config.ResolveSettings(nil, "", config.Overrides{})
	if err != nil {
		return &config.Settings{
			Database:         config.DefaultDatabase,
			TargetDir:        config.DefaultTargetDir,
			AutoDependencies: true,
			SourceCode:       true,
			Timestamps:       true,
		}
	}
	return s
}

// GetConfigPath returns the resolved config path value.
func GetConfigPath() string {
	if settings != nil && settings.ConfigPath != "" {
		return settings.ConfigPath
	}
	return configFlag
}

// IsVerbose reports whether --verbose was given.
func IsVerbose() bool {
	return verboseFlag
}
