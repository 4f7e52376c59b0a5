package metadata

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"gopkg.in/yaml.v3"
)

// Comparison is the result of comparing two database snapshots.
type Comparison struct {
	// AddedModules are modules present only in the newer snapshot.
	AddedModules []string

	// RemovedModules are modules present only in the older snapshot.
	RemovedModules []string

	// ChangedModules are modules present in both whose content differs.
	ChangedModules []string

	// Report is the rendered dyff report, empty when nothing changed.
	Report string
}

// HasChanges reports whether the snapshots differ.
func (c *Comparison) HasChanges() bool {
	return len(c.AddedModules) > 0 || len(c.RemovedModules) > 0 || len(c.ChangedModules) > 0
}

// Compare diffs two databases. Both sides are re-encoded through the ordered
// YAML encoder first, so a JSON cache and a YAML fixture compare equal when
// their content is equal.
func Compare(before, after *Database, useColor bool) (*Comparison, error) {
	cmp := &Comparison{}

	for _, name := range after.Names() {
		if !before.Has(name) {
			cmp.AddedModules = append(cmp.AddedModules, name)
		}
	}
	for _, name := range before.Names() {
		if !after.Has(name) {
			cmp.RemovedModules = append(cmp.RemovedModules, name)
			continue
		}
		same, err := sameModule(before, after, name)
		if err != nil {
			return nil, err
		}
		if !same {
			cmp.ChangedModules = append(cmp.ChangedModules, name)
		}
	}

	if !cmp.HasChanges() {
		return cmp, nil
	}

	beforeYAML, err := encodeYAML(before)
	if err != nil {
		return nil, fmt.Errorf("encoding old snapshot: %w", err)
	}
	afterYAML, err := encodeYAML(after)
	if err != nil {
		return nil, fmt.Errorf("encoding new snapshot: %w", err)
	}

	report, err := diffYAML(beforeYAML, afterYAML, useColor)
	if err != nil {
		return nil, err
	}
	cmp.Report = report
	return cmp, nil
}

func sameModule(before, after *Database, name string) (bool, error) {
	b, _ := before.Module(name)
	a, _ := after.Module(name)

	by, err := encodeYAML(b)
	if err != nil {
		return false, fmt.Errorf("encoding module %s: %w", name, err)
	}
	ay, err := encodeYAML(a)
	if err != nil {
		return false, fmt.Errorf("encoding module %s: %w", name, err)
	}
	return bytes.Equal(by, ay), nil
}

func encodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// diffYAML computes a YAML-aware diff using dyff.
func diffYAML(before, after []byte, useColor bool) (string, error) {
	beforeInput, err := parseYAMLInput("old", before)
	if err != nil {
		return "", fmt.Errorf("parsing old snapshot: %w", err)
	}
	afterInput, err := parseYAMLInput("new", after)
	if err != nil {
		return "", fmt.Errorf("parsing new snapshot: %w", err)
	}

	report, err := dyff.CompareInputFiles(beforeInput, afterInput)
	if err != nil {
		return "", fmt.Errorf("comparing snapshots: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
