// Package deps computes the closed set of modules required to document a
// requested set of modules.
package deps

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/erpdoc/cli/internal/metadata"
	"github.com/erpdoc/cli/internal/output"
)

// AllModules is the keyword that requests every module of the database.
const AllModules = "all"

// Options controls dependency resolution.
type Options struct {
	// AutoDependencies follows declared dependencies. When false the
	// requested names pass through unchanged (deduplicated).
	AutoDependencies bool

	// Verbose logs each dependency as it is scheduled.
	Verbose bool

	// Logger receives warnings and debug lines. Defaults to the global logger.
	Logger *log.Logger
}

// Result is the outcome of a resolution pass.
type Result struct {
	// Modules is the resolved module set.
	Modules *Set

	// Unknown lists names absent from the database, once each, in the order
	// they were encountered.
	Unknown []string
}

// Resolve computes the transitive closure of requested over the
// depends-on edges declared in db.
//
// A declared dependency joins the result as soon as it is scheduled, even when
// db does not hold it. Requested names absent from db are left out. Every
// absent name produces one warning. Every name is scheduled at most once, so
// self-dependencies and cycles terminate.
func Resolve(requested []string, db *metadata.Database, opts Options) *Result {
	logger := opts.Logger
	if logger == nil {
		logger = output.Logger()
	}

	result := &Result{Modules: NewSet()}

	if !opts.AutoDependencies {
		for _, name := range requested {
			result.Modules.Add(name)
		}
		logger.Debug("dependency auto-inclusion disabled", "modules", result.Modules.Len())
		return result
	}

	// Work-list used as a stack: the most recently scheduled name is processed
	// first. The order affects diagnostics only, never the resulting set.
	scheduled := make(map[string]bool, len(requested))
	pending := make([]string, 0, len(requested))
	for _, name := range requested {
		if scheduled[name] {
			continue
		}
		scheduled[name] = true
		pending = append(pending, name)
	}
	slices.Reverse(pending)

	for len(pending) > 0 {
		name := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		mod, ok := db.Module(name)
		if !ok {
			logger.Warn("module is not available", "module", name)
			result.Unknown = append(result.Unknown, name)
			continue
		}

		for _, dep := range mod.Manifest.Depends {
			if !result.Modules.Has(dep) {
				result.Modules.Add(dep)
				if opts.Verbose {
					logger.Debug("adding dependency", "module", name, "dependency", dep)
				}
			}
			if dep == name || scheduled[dep] {
				continue
			}
			scheduled[dep] = true
			pending = append(pending, dep)
		}

		result.Modules.Add(name)
	}

	return result
}

// ExpandRequested replaces the "all" keyword with every module name of db, in
// database order. Other names are kept as given.
func ExpandRequested(args []string, db *metadata.Database) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == AllModules {
			out = append(out, db.Names()...)
			continue
		}
		out = append(out, arg)
	}
	return out
}
