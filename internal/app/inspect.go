package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/jmespath/go-jmespath"
	"gopkg.in/yaml.v3"

	"autosar-arxml/internal/types"
)

// Inspect summarizes one file's package tree. With a query, the summary is
// also searched with JMESPath.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("ARXML file path is required")
	}
	read, err := s.Files.Load(ctx, path)
	if err != nil {
		return InspectResult{}, err
	}
	result := InspectResult{Summary: summarizeDocument(path, read.Document)}
	if strings.TrimSpace(req.Query) == "" {
		return result, nil
	}
	result.Query, err = querySummary(result.Summary, req.Query)
	if err != nil {
		return InspectResult{}, err
	}
	return result, nil
}

func summarizeDocument(file string, doc *types.Document) DocumentSummary {
	summary := DocumentSummary{
		File:          file,
		SchemaVersion: doc.SchemaVersion,
		Kinds:         map[string]int{},
	}
	var visit func(pkg *types.Package)
	visit = func(pkg *types.Package) {
		entry := PackageSummary{Path: pkg.Path(), Category: pkg.Category}
		for _, element := range pkg.Elements {
			entry.Elements = append(entry.Elements, ElementSummary{
				Name: element.ShortName(),
				Kind: string(element.Kind()),
			})
			summary.Kinds[string(element.Kind())]++
			summary.ElementCount++
		}
		summary.Packages = append(summary.Packages, entry)
		for _, child := range pkg.Packages {
			visit(child)
		}
	}
	for _, pkg := range doc.Packages {
		visit(pkg)
	}
	return summary
}

// querySummary runs a JMESPath expression over the YAML form of summary,
// so field names in queries match the printed output.
func querySummary(summary DocumentSummary, query string) (any, error) {
	encoded, err := yaml.Marshal(summary)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode summary").
			WithCause(err)
	}
	var generic map[string]any
	if err := yaml.Unmarshal(encoded, &generic); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to decode summary").
			WithCause(err)
	}
	found, err := jmespath.Search(query, generic)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid query %q", query)).
			WithCause(err)
	}
	return found, nil
}

// SortedKinds lists the element kinds of the summary in name order.
func (d DocumentSummary) SortedKinds() []string {
	kinds := make([]string, 0, len(d.Kinds))
	for kind := range d.Kinds {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
