package metadata

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	sigsyaml "sigs.k8s.io/yaml"
)

//go:embed schema/database.cue
var databaseSchema []byte

// Issue is one schema violation found in a database document.
type Issue struct {
	// Path is the dotted field path, e.g. "sale.models.m2._name".
	Path string `json:"path" yaml:"path"`

	// Message describes the violation.
	Message string `json:"message" yaml:"message"`
}

// String returns "path: message".
func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Vetter validates database documents against the embedded CUE schema.
type Vetter struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewVetter compiles the embedded database schema.
func NewVetter() (*Vetter, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(databaseSchema, cue.Filename("database.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling database schema: %w", schema.Err())
	}

	def := schema.LookupPath(cue.ParsePath("#Database"))
	if def.Err() != nil {
		return nil, fmt.Errorf("looking up #Database: %w", def.Err())
	}

	return &Vetter{ctx: ctx, schema: def}, nil
}

// Vet checks a raw JSON or YAML document. The returned issues are sorted by
// path. A document that cannot be parsed at all returns an error instead.
func (v *Vetter) Vet(data []byte, filename string) ([]Issue, error) {
	var jsonData []byte
	if IsJSONPath(filename) {
		normalized, err := canonicalJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filename, err)
		}
		jsonData = normalized
	} else {
		converted, err := sigsyaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("converting %s to JSON: %w", filename, err)
		}
		jsonData = converted
	}

	doc := v.ctx.CompileBytes(jsonData, cue.Filename(filename))
	if doc.Err() != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, doc.Err())
	}

	unified := v.schema.Unify(doc)
	err := unified.Validate(cue.Concrete(true), cue.All())
	if err == nil {
		return nil, nil
	}

	seen := make(map[string]bool)
	var issues []Issue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		issue := Issue{
			Path:    joinPath(e.Path()),
			Message: fmt.Sprintf(format, args...),
		}
		if seen[issue.String()] {
			continue
		}
		seen[issue.String()] = true
		issues = append(issues, issue)
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Path < issues[j].Path
	})
	return issues, nil
}

// joinPath renders a CUE error path with quoted labels unquoted, so that
// "__openerp__" and "_name" read the same as in the source document.
func joinPath(elems []string) string {
	out := make([]string, len(elems))
	for i, e := range elems {
		if unquoted, err := strconv.Unquote(e); err == nil {
			e = unquoted
		}
		out[i] = e
	}
	return strings.Join(out, ".")
}
