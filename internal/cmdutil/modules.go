package cmdutil

import (
	"github.com/charmbracelet/log"

	"github.com/erpdoc/cli/internal/deps"
	oerrors "github.com/erpdoc/cli/internal/errors"
	"github.com/erpdoc/cli/internal/metadata"
	"github.com/erpdoc/cli/internal/output"
)

// ResolveOptions controls ResolveModules.
type ResolveOptions struct {
	// Args are the module names given on the command line, "all" included.
	Args []string

	// DatabasePath is used in error messages.
	DatabasePath string

	AutoDependencies bool
	Verbose          bool

	// Logger defaults to the global logger.
	Logger *log.Logger
}

// Resolution is a resolved module set together with the restricted database.
type Resolution struct {
	Requested []string
	Result    *deps.Result
	DB        *metadata.Database
}

// ResolveModules expands "all", resolves dependencies and restricts db to the
// result. No arguments is a usage error; a set that resolves to no known
// module is reported as unknown modules.
func ResolveModules(db *metadata.Database, opts ResolveOptions) (*Resolution, error) {
	if len(opts.Args) == 0 {
		return nil, oerrors.NewUsageError(
			"no modules requested",
			"Pass one or more module names, or 'all' to document every module.",
		)
	}

	logger := opts.Logger
	if logger == nil {
		logger = output.Logger()
	}

	requested := deps.ExpandRequested(opts.Args, db)
	result := deps.Resolve(requested, db, deps.Options{
		AutoDependencies: opts.AutoDependencies,
		Verbose:          opts.Verbose,
		Logger:           logger,
	})

	if !opts.AutoDependencies {
		// Pass-through keeps absent names in the set; report them here since
		// the resolver did not look them up.
		for _, name := range result.Modules.Names() {
			if !db.Has(name) {
				logger.Warn("module is not available", "module", name)
				result.Unknown = append(result.Unknown, name)
			}
		}
	}

	restricted := db.Restrict(result.Modules)
	if restricted.Len() == 0 {
		return nil, oerrors.NewUnknownModuleError(result.Unknown, opts.DatabasePath)
	}

	logger.Debug("modules resolved",
		"requested", len(requested),
		"resolved", restricted.Len(),
		"unknown", len(result.Unknown),
	)

	return &Resolution{
		Requested: requested,
		Result:    result,
		DB:        restricted,
	}, nil
}
