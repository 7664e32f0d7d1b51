package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"autosar-arxml/internal/shared"
	"autosar-arxml/internal/types"
)

// Namespace binds package roles to absolute package paths.
type Namespace struct {
	Name  string
	Base  string
	Roles map[types.PackageRole]string
}

// NewNamespace resolves relative role paths against base.
func NewNamespace(name string, base string, roles map[types.PackageRole]string) (Namespace, error) {
	if strings.TrimSpace(name) == "" {
		return Namespace{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("namespace name must not be empty")
	}
	if !strings.HasPrefix(base, "/") || len(shared.SplitPath(base)) == 0 {
		return Namespace{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("namespace %s: base %q must be an absolute package path", name, base))
	}
	ns := Namespace{
		Name:  name,
		Base:  shared.JoinPath(shared.SplitPath(base)...),
		Roles: make(map[types.PackageRole]string, len(roles)),
	}
	for role, path := range roles {
		if _, err := types.ParsePackageRole(string(role)); err != nil {
			return Namespace{}, err
		}
		absolute, err := absoluteRolePath(ns.Base, path)
		if err != nil {
			return Namespace{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("namespace %s: role %s", name, role)).
				WithCause(err)
		}
		ns.Roles[role] = absolute
	}
	return ns, nil
}

// PathFor returns the package path bound to role.
func (n Namespace) PathFor(role types.PackageRole) (string, bool) {
	path, ok := n.Roles[role]
	return path, ok
}

func absoluteRolePath(base string, path string) (string, error) {
	segments := shared.SplitPath(path)
	if len(segments) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package path must not be empty")
	}
	if strings.HasPrefix(strings.TrimSpace(path), "/") {
		return shared.JoinPath(segments...), nil
	}
	return shared.JoinPath(append(shared.SplitPath(base), segments...)...), nil
}

// ValidateNamespaceConfig checks a merged namespace table before it is
// installed in a workspace.
func ValidateNamespaceConfig(ctx context.Context, namespaces map[string]types.NamespaceSpec, defaultNamespace string) error {
	if len(namespaces) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("namespace config defines no namespaces")
	}
	names := make([]string, 0, len(namespaces))
	for name := range namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		assert.NotEmpty(ctx, name, "namespace name must be set")
		if _, err := NewNamespace(name, namespaces[name].Base, namespaces[name].Roles); err != nil {
			return err
		}
	}
	if defaultNamespace != "" {
		if _, ok := namespaces[defaultNamespace]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("default namespace %s is not defined", defaultNamespace))
		}
	}
	log.Ctx(ctx).Debug().Int("namespaces", len(namespaces)).Msg("namespace config validated")
	return nil
}
