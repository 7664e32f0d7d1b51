package adapters

import (
	"maps"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"autosar-arxml/internal/ports"
	"autosar-arxml/internal/types"
)

// NamespaceConfigAdapter implements NamespaceConfigPort using layered
// namespaces.yaml files. Each load merges new namespaces into the table;
// later loads replace earlier ones by name.
type NamespaceConfigAdapter struct {
	merged           map[string]types.NamespaceSpec
	defaultNamespace string

	// layers tracks load order for provenance.
	layers []string
}

func NewNamespaceConfigAdapter() *NamespaceConfigAdapter {
	return &NamespaceConfigAdapter{
		merged: make(map[string]types.NamespaceSpec),
	}
}

// LoadConfig reads a namespaces.yaml file and merges its namespaces.
func (a *NamespaceConfigAdapter) LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read namespace config: " + path).
			WithCause(err)
	}

	var file types.NamespaceConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse namespace config: " + path).
			WithCause(err)
	}
	return a.merge(file, path)
}

// LoadConfigInline merges namespaces that did not come from a file, such
// as the CLI's own config. It has the same precedence rules as LoadConfig.
func (a *NamespaceConfigAdapter) LoadConfigInline(file types.NamespaceConfigFile) error {
	return a.merge(file, "<inline>")
}

func (a *NamespaceConfigAdapter) merge(file types.NamespaceConfigFile, source string) error {
	if file.ConfigVersion == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("namespace config missing config_version: " + source)
	}

	// Validate the whole layer before touching the merged table.
	staged := make(map[string]types.NamespaceSpec, len(file.Namespaces))
	for name, spec := range file.Namespaces {
		normalized := strings.TrimSpace(name)
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(spec.Base, "/") {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("namespace '" + normalized + "' needs an absolute base path in " + source)
		}
		for role, path := range spec.Roles {
			if _, err := types.ParsePackageRole(string(role)); err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("namespace '" + normalized + "' has invalid role '" + string(role) + "' in " + source).
					WithCause(err)
			}
			if strings.TrimSpace(path) == "" {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("namespace '" + normalized + "' has empty path for role '" + string(role) + "' in " + source)
			}
		}
		staged[normalized] = spec
	}

	for name, spec := range staged {
		if _, exists := a.merged[name]; exists {
			log.Debug().
				Str("namespace", name).
				Str("layer", source).
				Msg("namespace overridden by later layer")
		}
		a.merged[name] = spec
	}
	if file.DefaultNamespace != "" {
		a.defaultNamespace = file.DefaultNamespace
	}

	a.layers = append(a.layers, source)
	log.Debug().
		Str("source", source).
		Int("namespaces", len(staged)).
		Int("total", len(a.merged)).
		Msg("namespace layer loaded")
	return nil
}

// Namespaces returns a copy of the merged namespace table.
func (a *NamespaceConfigAdapter) Namespaces() map[string]types.NamespaceSpec {
	return maps.Clone(a.merged)
}

func (a *NamespaceConfigAdapter) DefaultNamespace() string {
	return a.defaultNamespace
}

// Layers lists the loaded sources in load order.
func (a *NamespaceConfigAdapter) Layers() []string {
	return append([]string(nil), a.layers...)
}

var _ ports.NamespaceConfigPort = (*NamespaceConfigAdapter)(nil)
