package types

import (
	"fmt"

	"autosar-arxml/internal/shared"
)

const (
	DefaultSchemaVersion = 51
	SchemaNamespace      = "http://autosar.org/schema/r4.0"
)

// SchemaFile names the XSD for a schema version, e.g. AUTOSAR_00051.xsd.
func SchemaFile(version int) string {
	return fmt.Sprintf("AUTOSAR_%05d.xsd", version)
}

type Sd struct {
	GID   string
	Value string
}

type Sdg struct {
	GID string
	Sds []Sd
}

// FileInfo is the FILE-INFO-COMMENT block.
type FileInfo struct {
	Sdgs []Sdg
}

func (f *FileInfo) IsEmpty() bool { return f == nil || len(f.Sdgs) == 0 }

// AdminData is an ADMIN-DATA block. Its special data groups are kept;
// an empty block still round-trips as <ADMIN-DATA/>.
type AdminData struct {
	Sdgs []Sdg
}

// Document is one ARXML file: ordered top-level packages plus a name index.
type Document struct {
	Packages      []*Package
	SchemaVersion int
	FileInfo      *FileInfo
	AdminData     *AdminData

	byName map[string]*Package
}

func NewDocument() *Document {
	return &Document{SchemaVersion: DefaultSchemaVersion, byName: map[string]*Package{}}
}

// Path anchors top-level packages at the root.
func (d *Document) Path() string { return "/" }

func (d *Document) Append(pkg *Package) error {
	if pkg == nil {
		return invalidArgument("cannot append a nil package to document")
	}
	if err := validateShortName(pkg.Name); err != nil {
		return err
	}
	if d.Package(pkg.Name) != nil {
		return alreadyExists("document already contains a package named %q", pkg.Name)
	}
	if d.byName == nil {
		d.byName = map[string]*Package{}
	}
	pkg.attach(d)
	pkg.linkChildren()
	d.Packages = append(d.Packages, pkg)
	d.byName[pkg.Name] = pkg
	return nil
}

// Package returns the top-level package named name, or nil.
func (d *Document) Package(name string) *Package {
	if pkg, ok := d.byName[name]; ok {
		return pkg
	}
	for _, pkg := range d.Packages {
		if pkg.Name == name {
			return pkg
		}
	}
	return nil
}

// Find resolves an absolute path. Absence returns nil.
func (d *Document) Find(path string) Referrable {
	segments := shared.SplitPath(path)
	if len(segments) == 0 {
		return nil
	}
	root := d.Package(segments[0])
	if root == nil {
		return nil
	}
	return findSegments(root, segments[1:])
}

func (d *Document) FindPackage(path string) *Package {
	pkg, _ := d.Find(path).(*Package)
	return pkg
}

// MakePackages returns the package at path, creating missing packages.
func (d *Document) MakePackages(path string) (*Package, error) {
	segments := shared.SplitPath(path)
	if len(segments) == 0 {
		return nil, invalidArgument("package path %q is empty", path)
	}
	root := d.Package(segments[0])
	if root == nil {
		created, err := NewPackage(segments[0])
		if err != nil {
			return nil, err
		}
		if err := d.Append(created); err != nil {
			return nil, err
		}
		root = created
	}
	return root.MakePackages(shared.JoinPath(segments[1:]...))
}

// Relink restores parent links after packages were assigned directly.
func (d *Document) Relink() {
	d.byName = make(map[string]*Package, len(d.Packages))
	for _, pkg := range d.Packages {
		pkg.attach(d)
		pkg.linkChildren()
		d.byName[pkg.Name] = pkg
	}
}

// Walk visits every element in document order.
func (d *Document) Walk(fn func(Element) error) error {
	for _, pkg := range d.Packages {
		if err := pkg.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// ReadResult is the outcome of a tolerant read: the document built from
// the well-formed parts plus every parse problem found.
type ReadResult struct {
	Document *Document
	Problems []*ParseError
}
