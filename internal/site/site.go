// Package site renders the static documentation site: an index page, one
// page per model and one page per linked source file.
package site

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/erpdoc/cli/internal/index"
	"github.com/erpdoc/cli/internal/metadata"
	"github.com/erpdoc/cli/internal/output"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets/style.css
var styleCSS []byte

// StaticDir is the directory, relative to the target, holding stylesheets.
const StaticDir = "static"

// Options configures a generation pass.
type Options struct {
	// TargetDir is where the site is written.
	TargetDir string

	// Clean removes TargetDir before writing.
	Clean bool

	// ShowSource links model pages to highlighted source pages.
	ShowSource bool

	// Logger defaults to the global logger.
	Logger *log.Logger
}

// Report summarises a generation pass.
type Report struct {
	Modules     int
	ModelPages  int
	SourcePages int

	// MissingSources lists requested source files that could not be read.
	MissingSources []string
}

// Generator renders one database into a site.
type Generator struct {
	db     *metadata.Database
	opts   Options
	logger *log.Logger

	pages       *template.Template
	highlighter *highlighter
	markdown    *descriptions
}

// NewGenerator parses the page templates. db should already be restricted to
// the resolved module set.
func NewGenerator(db *metadata.Database, opts Options) (*Generator, error) {
	if opts.TargetDir == "" {
		return nil, errors.New("target directory is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = output.Logger()
	}

	pages, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Generator{
		db:          db,
		opts:        opts,
		logger:      logger,
		pages:       pages,
		highlighter: newHighlighter(),
		markdown:    newDescriptions(),
	}, nil
}

// Generate writes the whole site. The context is checked between pages.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	if err := g.prepareTarget(); err != nil {
		return nil, err
	}

	report := &Report{Modules: g.db.Len()}
	canonical := index.CanonicalModels(g.db)

	home, err := g.buildIndex(canonical)
	if err != nil {
		return nil, err
	}
	if err := g.render("index.html", home, "index.html"); err != nil {
		return nil, err
	}

	files := NewFileRequests()
	for mod := range g.db.Modules() {
		logger := output.ModuleLogger(g.logger, mod.Name)
		logger.Debug("rendering module", "models", mod.Models.Len())

		for key, model := range mod.Models.All() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			page, err := g.buildModelPage(mod.Name, key, model, files)
			if err != nil {
				return nil, fmt.Errorf("model %s/%s: %w", mod.Name, key, err)
			}
			if err := g.render("model.html", page, mod.Name, key+".html"); err != nil {
				return nil, err
			}
			report.ModelPages++
		}
	}

	if !g.opts.ShowSource {
		return report, nil
	}

	for _, f := range files.Files() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := g.renderSource(f)
		if err != nil {
			return nil, err
		}
		if !ok {
			report.MissingSources = append(report.MissingSources, f.Path)
			continue
		}
		report.SourcePages++
	}
	return report, nil
}

// prepareTarget cleans the target when asked and writes the stylesheets.
func (g *Generator) prepareTarget() error {
	if g.opts.Clean {
		if _, err := os.Stat(g.opts.TargetDir); err == nil {
			g.logger.Debug("removing target directory", "path", g.opts.TargetDir)
			if err := os.RemoveAll(g.opts.TargetDir); err != nil {
				return fmt.Errorf("cleaning target directory: %w", err)
			}
		}
	}

	static := filepath.Join(g.opts.TargetDir, StaticDir)
	if err := os.MkdirAll(static, 0o755); err != nil {
		return fmt.Errorf("creating target directory: %w", err)
	}

	if err := writeIfMissing(filepath.Join(static, "style.css"), styleCSS); err != nil {
		return err
	}

	var css bytes.Buffer
	if err := g.highlighter.WriteCSS(&css); err != nil {
		return fmt.Errorf("writing highlight stylesheet: %w", err)
	}
	return os.WriteFile(filepath.Join(static, "highlight.css"), css.Bytes(), 0o644)
}

// writeIfMissing leaves an existing file alone so a customised stylesheet
// survives regeneration without --clean.
func writeIfMissing(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (g *Generator) render(name string, data any, elem ...string) error {
	var buf bytes.Buffer
	if err := g.pages.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}

	path := filepath.Join(append([]string{g.opts.TargetDir}, elem...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (g *Generator) renderSource(f SourceFile) (bool, error) {
	content, err := os.ReadFile(f.Path)
	if err != nil {
		g.logger.Warn("source file is not readable", "module", f.Module, "path", f.Path, "err", err)
		return false, nil
	}

	var code bytes.Buffer
	if err := g.highlighter.Highlight(&code, f.Path, string(content)); err != nil {
		return false, err
	}

	page := sourcePage{
		Module: f.Module,
		Path:   f.Path,
		Code:   template.HTML(code.String()),
	}
	return true, g.render("source.html", page, f.Module, "file", f.Name+".html")
}

// modelURL is the site-absolute link of a model page.
func modelURL(module, key string) string {
	return "/" + module + "/" + key + ".html"
}

func lineAnchor(url string, line int) string {
	if url == "" || line <= 0 {
		return url
	}
	return url + "#line" + strconv.Itoa(line)
}
