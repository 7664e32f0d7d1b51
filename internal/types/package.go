package types

import (
	"autosar-arxml/internal/shared"
)

// Package is an AR-PACKAGE. Elements and sub-packages share one sibling
// namespace.
type Package struct {
	Identifiable
	Category string
	Elements []Element
	Packages []*Package
}

func NewPackage(name string) (*Package, error) {
	if err := validateShortName(name); err != nil {
		return nil, err
	}
	return &Package{Identifiable: Identifiable{Name: name}}, nil
}

func (*Package) Kind() IdentifiableKind { return KindPackage }

// Child returns the element or sub-package named name, or nil.
func (p *Package) Child(name string) Referrable {
	for _, pkg := range p.Packages {
		if pkg.Name == name {
			return pkg
		}
	}
	for _, element := range p.Elements {
		if element.ShortName() == name {
			return element
		}
	}
	return nil
}

// Append adds a sub-package.
func (p *Package) Append(pkg *Package) error {
	if pkg == nil {
		return invalidArgument("cannot append a nil package to %s", p.Path())
	}
	if err := validateShortName(pkg.Name); err != nil {
		return err
	}
	if p.Child(pkg.Name) != nil {
		return alreadyExists("%s already contains an element named %q", p.Path(), pkg.Name)
	}
	pkg.attach(p)
	pkg.linkChildren()
	p.Packages = append(p.Packages, pkg)
	return nil
}

func (p *Package) AppendElement(element Element) error {
	if element == nil {
		return invalidArgument("cannot append a nil element to %s", p.Path())
	}
	if err := validateShortName(element.ShortName()); err != nil {
		return err
	}
	if p.Child(element.ShortName()) != nil {
		return alreadyExists("%s already contains an element named %q", p.Path(), element.ShortName())
	}
	element.identity().attach(p)
	element.linkChildren()
	p.Elements = append(p.Elements, element)
	return nil
}

// ReplaceElement swaps the element sharing element's name for element,
// keeping its position. The previous element is returned detached.
func (p *Package) ReplaceElement(element Element) (Element, error) {
	if element == nil {
		return nil, invalidArgument("cannot replace with a nil element in %s", p.Path())
	}
	for i, existing := range p.Elements {
		if existing.ShortName() != element.ShortName() {
			continue
		}
		existing.identity().attach(nil)
		element.identity().attach(p)
		element.linkChildren()
		p.Elements[i] = element
		return existing, nil
	}
	return nil, notFound("%s has no element named %q", p.Path(), element.ShortName())
}

// Package returns the direct sub-package named name, or nil.
func (p *Package) Package(name string) *Package {
	for _, pkg := range p.Packages {
		if pkg.Name == name {
			return pkg
		}
	}
	return nil
}

// Element returns the direct element named name, or nil.
func (p *Package) Element(name string) Element {
	for _, element := range p.Elements {
		if element.ShortName() == name {
			return element
		}
	}
	return nil
}

// Find resolves a path relative to this package. Absence returns nil.
func (p *Package) Find(path string) Referrable {
	return findSegments(p, shared.SplitPath(path))
}

// FindPackage resolves a relative package path.
func (p *Package) FindPackage(path string) *Package {
	pkg, _ := p.Find(path).(*Package)
	return pkg
}

// MakePackages returns the package at the relative path, creating missing
// packages along the way.
func (p *Package) MakePackages(path string) (*Package, error) {
	current := p
	for _, name := range shared.SplitPath(path) {
		next := current.Package(name)
		if next == nil {
			created, err := NewPackage(name)
			if err != nil {
				return nil, err
			}
			if err := current.Append(created); err != nil {
				return nil, err
			}
			next = created
		}
		current = next
	}
	return current, nil
}

func (p *Package) linkChildren() {
	for _, pkg := range p.Packages {
		pkg.attach(p)
		pkg.linkChildren()
	}
	for _, element := range p.Elements {
		element.identity().attach(p)
		element.linkChildren()
	}
}

// Walk visits every element of the package tree depth first, elements
// before sub-packages.
func (p *Package) Walk(fn func(Element) error) error {
	for _, element := range p.Elements {
		if err := fn(element); err != nil {
			return err
		}
	}
	for _, pkg := range p.Packages {
		if err := pkg.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

func findSegments(start *Package, segments []string) Referrable {
	if len(segments) == 0 {
		return start
	}
	var current Referrable = start
	for _, name := range segments {
		var next Referrable
		switch node := current.(type) {
		case *Package:
			next = node.Child(name)
		case ChildFinder:
			next = node.FindChild(name)
		}
		if next == nil {
			return nil
		}
		current = next
	}
	return current
}
