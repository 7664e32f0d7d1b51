package types

import (
	"strings"

	"autosar-arxml/internal/shared"
)

// Referrable is anything a reference can point at.
type Referrable interface {
	ShortName() string
	Kind() IdentifiableKind
	Path() string
}

// Element is a top-level package element.
type Element interface {
	Referrable
	References() []Reference
	identity() *Identifiable
	linkChildren()
}

// ChildFinder is implemented by elements that own addressable children.
type ChildFinder interface {
	FindChild(name string) Referrable
}

// Container owns identifiable children and anchors their paths.
type Container interface {
	Path() string
}

// LanguageText is one L-4 or L-2 entry.
type LanguageText struct {
	Lang string
	Text string
}

// Identifiable holds the fields every named element shares.
type Identifiable struct {
	Name      string
	UUID      string
	LongName  []LanguageText
	Desc      []LanguageText
	AdminData *AdminData

	parent Container
}

func (i *Identifiable) ShortName() string { return i.Name }

func (i *Identifiable) identity() *Identifiable { return i }

// Parent returns the owning container or nil when detached.
func (i *Identifiable) Parent() Container { return i.parent }

// Path is the absolute path through the owning containers. A detached
// element reports "/" plus its name.
func (i *Identifiable) Path() string {
	if i.parent == nil {
		return shared.JoinPath(i.Name)
	}
	parent := i.parent.Path()
	if parent == "/" || parent == "" {
		return shared.JoinPath(i.Name)
	}
	return parent + "/" + i.Name
}

func (i *Identifiable) attach(parent Container) { i.parent = parent }

// linkChildren re-attaches owned children after direct field assignment.
// Elements without children keep this no-op.
func (i *Identifiable) linkChildren() {}

func validateShortName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalidArgument("SHORT-NAME must not be empty")
	}
	if strings.Contains(name, "/") {
		return invalidArgument("SHORT-NAME %q must not contain '/'", name)
	}
	return nil
}

type named interface {
	Referrable
	identity() *Identifiable
}

// appendChild adds child to list after checking the sibling namespace and
// attaches it to parent.
func appendChild[T named](parent Container, list []T, child T) ([]T, error) {
	if err := validateShortName(child.ShortName()); err != nil {
		return list, err
	}
	for _, existing := range list {
		if existing.ShortName() == child.ShortName() {
			return list, alreadyExists("%s already contains an element named %q", parent.Path(), child.ShortName())
		}
	}
	child.identity().attach(parent)
	return append(list, child), nil
}

func findNamed[T Referrable](list []T, name string) Referrable {
	for _, item := range list {
		if item.ShortName() == name {
			return item
		}
	}
	return nil
}
