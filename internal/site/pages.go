package site

import (
	"html/template"
	"sort"

	"github.com/erpdoc/cli/internal/index"
	"github.com/erpdoc/cli/internal/metadata"
)

type link struct {
	Module string
	Name   string
	Label  string
	URL    string
}

type moduleSection struct {
	Name        string
	Title       string
	Version     string
	Summary     string
	Depends     []string
	Description template.HTML
	Models      []link
}

type indexPage struct {
	Models  []link
	Modules []moduleSection
}

type recordItem struct {
	Module string
	ID     string
	Name   string
	Type   string
}

type methodItem struct {
	Name      string
	Signature string
	SourceURL string
	Doc       template.HTML
}

type modelPage struct {
	Module     string
	Key        string
	Title      string
	ClassName  string
	Inherit    string
	TopURL     string
	SourceURL  string
	Doc        template.HTML
	Neighbours []link
	Views      []recordItem
	Actions    []recordItem
	Methods    []methodItem
}

type sourcePage struct {
	Module string
	Path   string
	Code   template.HTML
}

func (g *Generator) buildIndex(canonical []index.Ref) (indexPage, error) {
	var page indexPage
	for _, ref := range canonical {
		page.Models = append(page.Models, link{
			Module: ref.Module,
			Name:   ref.Name(),
			URL:    modelURL(ref.Module, ref.Key),
		})
	}

	for mod := range g.db.Modules() {
		desc, err := g.markdown.Render(mod.Manifest.Description)
		if err != nil {
			return indexPage{}, err
		}
		section := moduleSection{
			Name:        mod.Name,
			Title:       mod.Manifest.Name,
			Version:     mod.Manifest.Version,
			Summary:     mod.Manifest.Summary,
			Depends:     mod.Manifest.Depends,
			Description: desc,
		}
		for key, model := range mod.Models.All() {
			section.Models = append(section.Models, link{
				Module: mod.Name,
				Name:   model.LogicalName(),
				Label:  modelLabel(key, model),
				URL:    modelURL(mod.Name, key),
			})
		}
		page.Modules = append(page.Modules, section)
	}
	sort.SliceStable(page.Modules, func(i, j int) bool {
		return page.Modules[i].Name < page.Modules[j].Name
	})
	return page, nil
}

func (g *Generator) buildModelPage(module, key string, model *metadata.Model, files *FileRequests) (modelPage, error) {
	page := modelPage{
		Module: module,
		Key:    key,
		Title:  modelLabel(key, model),
	}
	if model == nil {
		return page, nil
	}
	page.ClassName = model.ClassName
	page.Inherit = model.InheritName()

	// Extensions link to the base they extend; bases link to the first base
	// of the same name when that is another record.
	topName := model.LogicalName()
	if model.IsExtension() {
		topName = model.InheritName()
	}
	if topName != "" {
		if top, ok := index.FindTopModel(g.db, topName); ok && (top.Module != module || top.Key != key) {
			page.TopURL = modelURL(top.Module, top.Key)
		}
	}

	var fileURL string
	if g.opts.ShowSource && model.File != "" {
		fileURL = files.Request(module, model.File)
		page.SourceURL = lineAnchor(fileURL, model.Line)
	}

	doc, err := g.markdown.Render(model.Doc)
	if err != nil {
		return modelPage{}, err
	}
	page.Doc = doc

	for _, n := range index.FindNeighbours(g.db, module, model) {
		page.Neighbours = append(page.Neighbours, link{
			Module: n.Module,
			Name:   n.Name(),
			Label:  modelLabel(n.Key, n.Model),
			URL:    modelURL(n.Module, n.Key),
		})
	}

	assoc := index.FindViewsAndActions(g.db, model.LogicalName())
	for _, v := range assoc.Views {
		page.Views = append(page.Views, recordItem{Module: v.Module, ID: v.ID, Name: v.View.Name, Type: v.View.Type})
	}
	for _, a := range assoc.Actions {
		page.Actions = append(page.Actions, recordItem{Module: a.Module, ID: a.ID, Name: a.Action.Name})
	}

	for name, method := range model.Methods.All() {
		item := methodItem{
			Name:      name,
			Signature: FormatMethodArguments(method),
		}
		if method != nil {
			item.SourceURL = lineAnchor(fileURL, method.Line)
			if item.Doc, err = g.markdown.Render(method.Doc); err != nil {
				return modelPage{}, err
			}
		}
		page.Methods = append(page.Methods, item)
	}
	return page, nil
}

// modelLabel prefers the logical name, then the inherited name, then the key.
func modelLabel(key string, model *metadata.Model) string {
	switch {
	case !model.IsDocumentable():
		return key
	case model.HasName():
		return model.LogicalName()
	default:
		return model.InheritName()
	}
}
