package site

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// SourceFile is one source file requested by a model page.
type SourceFile struct {
	// Path is the absolute path of the file on disk.
	Path string

	// Module is the module whose page requested the file.
	Module string

	// Name is the page name under <module>/file/, without extension.
	Name string
}

// URL returns the site-absolute link of the file's page.
func (f SourceFile) URL() string {
	return "/" + f.Module + "/file/" + f.Name + ".html"
}

// FileRequests accumulates the source files model pages link to. It belongs to
// one generation pass and is not safe for concurrent use.
type FileRequests struct {
	files map[SourceFile]struct{}
}

// NewFileRequests creates an empty accumulator.
func NewFileRequests() *FileRequests {
	return &FileRequests{files: make(map[SourceFile]struct{})}
}

// Request records that module links to path and returns the URL of the
// page that will hold it.
func (r *FileRequests) Request(module, path string) string {
	f := SourceFile{Path: path, Module: module, Name: FormatFileName(module, path)}
	r.files[f] = struct{}{}
	return f.URL()
}

// Len returns the number of distinct requests.
func (r *FileRequests) Len() int {
	return len(r.files)
}

// Files returns the distinct requests sorted by module then name.
func (r *FileRequests) Files() []SourceFile {
	out := make([]SourceFile, 0, len(r.files))
	for f := range r.files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Module != out[j].Module {
			return out[i].Module < out[j].Module
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Path < out[j].Path
	})
	return out
}

// FormatFileName turns a source path into a flat page name: the part after
// the first occurrence of the module name, minus its leading separator, with
// dots and slashes replaced by underscores.
//
//	FormatFileName("sale", "/srv/addons/sale/wizard/make.py") == "wizard_make_py"
func FormatFileName(module, path string) string {
	rest := path
	if module != "" {
		if i := strings.Index(path, module); i >= 0 {
			rest = path[i+len(module):]
		}
	}
	if rest != "" {
		_, size := utf8.DecodeRuneInString(rest)
		rest = rest[size:]
	}
	return strings.NewReplacer(".", "_", "/", "_").Replace(rest)
}
