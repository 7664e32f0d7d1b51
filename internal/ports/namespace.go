package ports

import "autosar-arxml/internal/types"

// NamespaceConfigPort loads namespace definitions from layered YAML files.
//
// Each call to LoadConfig adds a layer. When two layers define the same
// namespace, the last-loaded layer wins.
type NamespaceConfigPort interface {
	LoadConfig(path string) error
	LoadConfigInline(file types.NamespaceConfigFile) error

	// Namespaces returns the merged namespace table.
	Namespaces() map[string]types.NamespaceSpec

	// DefaultNamespace is the last non-empty default_namespace seen.
	DefaultNamespace() string
}
