package app

import "autosar-arxml/internal/types"

type ValidateRequest struct {
	Paths []string
}

// FileReport describes one file loaded for validation.
type FileReport struct {
	Path          string
	SchemaVersion int
	Elements      int
	Problems      []*types.ParseError
}

type ValidateResult struct {
	Files      []FileReport
	Unresolved []types.UnresolvedReference
}

// ProblemCount sums parse problems and unresolved references.
func (r ValidateResult) ProblemCount() int {
	count := len(r.Unresolved)
	for _, file := range r.Files {
		count += len(file.Problems)
	}
	return count
}

type FormatRequest struct {
	Paths []string
	// Check reports files that are not canonical without rewriting them.
	Check bool
	// Strict refuses to write documents with unresolved references.
	Strict bool
}

type FormattedFile struct {
	Path    string
	Changed bool
}

type FormatResult struct {
	Files []FormattedFile
}

// Changed lists the files that were, or would be, rewritten.
func (r FormatResult) Changed() []string {
	var changed []string
	for _, file := range r.Files {
		if file.Changed {
			changed = append(changed, file.Path)
		}
	}
	return changed
}

type InspectRequest struct {
	Path  string
	Query string
}

type ElementSummary struct {
	Name string `yaml:"name" json:"name"`
	Kind string `yaml:"kind" json:"kind"`
}

type PackageSummary struct {
	Path     string           `yaml:"path" json:"path"`
	Category string           `yaml:"category,omitempty" json:"category,omitempty"`
	Elements []ElementSummary `yaml:"elements,omitempty" json:"elements,omitempty"`
}

type DocumentSummary struct {
	File          string           `yaml:"file" json:"file"`
	SchemaVersion int              `yaml:"schema_version" json:"schema_version"`
	ElementCount  int              `yaml:"element_count" json:"element_count"`
	Kinds         map[string]int   `yaml:"kinds,omitempty" json:"kinds,omitempty"`
	Packages      []PackageSummary `yaml:"packages,omitempty" json:"packages,omitempty"`
}

type InspectResult struct {
	Summary DocumentSummary
	// Query holds the JMESPath result when a query was given.
	Query any
}

type FindRequest struct {
	Paths   []string
	Element string
}

type FindResult struct {
	File     string
	Path     string
	Kind     types.IdentifiableKind
	Fragment []byte
}

type OrderRequest struct {
	Paths []string
}

type OrderedType struct {
	Path string
	Kind types.IdentifiableKind
	File string
}

type OrderResult struct {
	Types []OrderedType
}

type InitRequest struct {
	Output        string
	ConfigFiles   []string
	Inline        *types.NamespaceConfigFile
	Namespace     string
	SchemaVersion int
	Force         bool
}

type InitResult struct {
	Path      string
	Namespace string
	Packages  []string
}
