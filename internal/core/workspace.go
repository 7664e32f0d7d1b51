package core

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"autosar-arxml/internal/ports"
	"autosar-arxml/internal/shared"
	"autosar-arxml/internal/types"
)

// Workspace is the mutable context a model is built in: one package tree,
// the namespaces that place elements into it, a role scope stack, and the
// set of documents the tree is split into on save.
//
// A Workspace is not safe for concurrent use. Build one per goroutine and
// combine the results with MergeDocuments.
type Workspace struct {
	root       *types.Document
	placement  ports.PlacementPort
	namespaces map[string]Namespace
	defaultNS  string
	scopes     []*RoleScope
	nextScope  int

	documents []*workspaceDocument
	owners    map[string]string
}

type workspaceDocument struct {
	file          string
	packages      []string
	schemaVersion int
	fileInfo      *types.FileInfo
	adminData     *types.AdminData
}

// RoleScope overrides role placement until it is closed. Scopes must be
// closed in reverse order of creation.
type RoleScope struct {
	ws     *Workspace
	id     int
	roles  map[types.PackageRole]string
	closed bool
}

func NewWorkspace(placement ports.PlacementPort) *Workspace {
	return &Workspace{
		root:       types.NewDocument(),
		placement:  placement,
		namespaces: map[string]Namespace{},
		owners:     map[string]string{},
	}
}

// Root exposes the whole package tree as one document.
func (w *Workspace) Root() *types.Document { return w.root }

// Find resolves an absolute path. Absence returns nil.
func (w *Workspace) Find(path string) types.Referrable {
	return w.root.Find(path)
}

// Resolve dereferences ref against the workspace.
func (w *Workspace) Resolve(ref types.Reference) (types.Referrable, error) {
	return types.ResolveReference(w.root, ref)
}

// MakePackages creates every package path that does not exist yet.
func (w *Workspace) MakePackages(paths ...string) ([]*types.Package, error) {
	created := make([]*types.Package, 0, len(paths))
	for _, path := range paths {
		pkg, err := w.root.MakePackages(path)
		if err != nil {
			return nil, err
		}
		created = append(created, pkg)
	}
	return created, nil
}

// AddElement places element in the package its role maps to under the
// active scopes and default namespace.
func (w *Workspace) AddElement(element types.Element) (*types.Package, error) {
	if element == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("cannot add a nil element")
	}
	if w.placement == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("workspace has no placement policy")
	}
	role, err := w.placement.RoleFor(element.Kind())
	if err != nil {
		return nil, err
	}
	path, err := w.PackagePathForRole(role)
	if err != nil {
		return nil, err
	}
	return w.AddElementAt(path, element)
}

// AddElementAt appends element to the package at path, creating it.
func (w *Workspace) AddElementAt(path string, element types.Element) (*types.Package, error) {
	pkg, err := w.root.MakePackages(path)
	if err != nil {
		return nil, err
	}
	if err := pkg.AppendElement(element); err != nil {
		return nil, err
	}
	return pkg, nil
}

// CreateNamespace registers a namespace. The first namespace becomes the
// default.
func (w *Workspace) CreateNamespace(name string, base string, roles map[types.PackageRole]string) (Namespace, error) {
	if _, exists := w.namespaces[name]; exists {
		return Namespace{}, errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("namespace %s already exists", name))
	}
	ns, err := NewNamespace(name, base, roles)
	if err != nil {
		return Namespace{}, err
	}
	w.namespaces[name] = ns
	if w.defaultNS == "" {
		w.defaultNS = name
	}
	return ns, nil
}

// ApplyNamespaceConfig installs a validated namespace table.
func (w *Workspace) ApplyNamespaceConfig(ctx context.Context, namespaces map[string]types.NamespaceSpec, defaultNamespace string) error {
	if err := ValidateNamespaceConfig(ctx, namespaces, defaultNamespace); err != nil {
		return err
	}
	for _, name := range sortedKeys(namespaces) {
		spec := namespaces[name]
		if _, err := w.CreateNamespace(name, spec.Base, spec.Roles); err != nil {
			return err
		}
	}
	if defaultNamespace != "" {
		return w.SetDefaultNamespace(defaultNamespace)
	}
	return nil
}

func (w *Workspace) Namespace(name string) (Namespace, bool) {
	ns, ok := w.namespaces[name]
	return ns, ok
}

func (w *Workspace) DefaultNamespace() string { return w.defaultNS }

func (w *Workspace) SetDefaultNamespace(name string) error {
	if _, ok := w.namespaces[name]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("namespace %s does not exist", name))
	}
	w.defaultNS = name
	return nil
}

// PackagePathForRole looks role up in the open scopes, newest first, and
// then in the default namespace.
func (w *Workspace) PackagePathForRole(role types.PackageRole) (string, error) {
	for i := len(w.scopes) - 1; i >= 0; i-- {
		if path, ok := w.scopes[i].roles[role]; ok {
			return path, nil
		}
	}
	if w.defaultNS == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no namespace is defined to place role %s", role))
	}
	return w.PackagePathForRoleIn(w.defaultNS, role)
}

func (w *Workspace) PackagePathForRoleIn(namespace string, role types.PackageRole) (string, error) {
	ns, ok := w.namespaces[namespace]
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("namespace %s does not exist", namespace))
	}
	path, ok := ns.PathFor(role)
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("namespace %s has no package for role %s", namespace, role))
	}
	return path, nil
}

// PushRoles opens a scope overriding the given roles. Relative paths are
// resolved against the default namespace base.
func (w *Workspace) PushRoles(roles map[types.PackageRole]string) (*RoleScope, error) {
	base := "/"
	if ns, ok := w.namespaces[w.defaultNS]; ok {
		base = ns.Base
	}
	resolved := make(map[types.PackageRole]string, len(roles))
	for role, path := range roles {
		if _, err := types.ParsePackageRole(string(role)); err != nil {
			return nil, err
		}
		absolute, err := absoluteRolePath(base, path)
		if err != nil {
			return nil, err
		}
		resolved[role] = absolute
	}
	w.nextScope++
	scope := &RoleScope{ws: w, id: w.nextScope, roles: resolved}
	w.scopes = append(w.scopes, scope)
	return scope, nil
}

// Roles returns a copy of the overrides the scope installed.
func (s *RoleScope) Roles() map[types.PackageRole]string {
	return maps.Clone(s.roles)
}

// Close restores the placement that was active before the scope opened.
// Closing anything but the innermost open scope is an error.
func (s *RoleScope) Close() error {
	if s.closed {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("role scope %d is already closed", s.id))
	}
	scopes := s.ws.scopes
	if len(scopes) == 0 || scopes[len(scopes)-1] != s {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("role scope %d closed out of order", s.id))
	}
	s.ws.scopes = scopes[:len(scopes)-1]
	s.closed = true
	return nil
}

// CreateDocument declares a file made of the package subtrees at
// packagePaths, creating missing packages.
func (w *Workspace) CreateDocument(file string, packagePaths ...string) error {
	if strings.TrimSpace(file) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document file name must not be empty")
	}
	if w.document(file) != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("document %s already exists", file))
	}
	doc := &workspaceDocument{file: file, schemaVersion: types.DefaultSchemaVersion}
	for _, path := range packagePaths {
		pkg, err := w.root.MakePackages(path)
		if err != nil {
			return err
		}
		doc.packages = append(doc.packages, pkg.Path())
	}
	w.documents = append(w.documents, doc)
	return nil
}

// LoadDocument merges doc into the workspace and records file as the owner
// of every element it contributed. Duplicates are handled by action, see
// policies.ResolveConflict.
func (w *Workspace) LoadDocument(ctx context.Context, doc *types.Document, file string, action string) error {
	if doc == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("cannot load a nil document")
	}
	if w.document(file) != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("document %s is already loaded", file))
	}
	var added []string
	err := mergeInto(w.root, doc, action, func(path string) {
		added = append(added, path)
	})
	if err != nil {
		return err
	}
	entry := &workspaceDocument{
		file:          file,
		schemaVersion: doc.SchemaVersion,
		fileInfo:      doc.FileInfo,
		adminData:     doc.AdminData,
	}
	for _, path := range added {
		w.owners[path] = file
	}
	w.documents = append(w.documents, entry)
	log.Ctx(ctx).Debug().
		Str("file", file).
		Int("elements", len(added)).
		Msg("document loaded into workspace")
	return nil
}

// DocumentOf names the file that owns path: the loaded file that
// contributed the element, or else the created document with the deepest
// matching package.
func (w *Workspace) DocumentOf(path string) (string, bool) {
	for current := shared.JoinPath(shared.SplitPath(path)...); current != "/"; current = shared.ParentPath(current) {
		if file, ok := w.owners[current]; ok {
			return file, true
		}
	}
	best, bestDepth := "", -1
	for _, doc := range w.documents {
		for _, pkg := range doc.packages {
			if path == pkg || strings.HasPrefix(path, pkg+"/") {
				if depth := len(shared.SplitPath(pkg)); depth > bestDepth {
					best, bestDepth = doc.file, depth
				}
			}
		}
	}
	return best, bestDepth >= 0
}

// Documents lists the declared files in creation order.
func (w *Workspace) Documents() []string {
	files := make([]string, 0, len(w.documents))
	for _, doc := range w.documents {
		files = append(files, doc.file)
	}
	return files
}

// DocumentView assembles the document for file: the elements DocumentOf
// assigns to it, nested in copies of their packages. The elements are
// shared with the workspace, so paths and references stay intact.
func (w *Workspace) DocumentView(file string) (*types.Document, error) {
	entry := w.document(file)
	if entry == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("document %s does not exist", file))
	}
	listed := make(map[string]struct{}, len(entry.packages))
	for _, path := range entry.packages {
		listed[path] = struct{}{}
	}
	view := &types.Document{
		SchemaVersion: entry.schemaVersion,
		FileInfo:      entry.fileInfo,
		AdminData:     entry.adminData,
	}
	for _, pkg := range w.root.Packages {
		if shell := w.packageView(pkg, file, listed); shell != nil {
			view.Packages = append(view.Packages, shell)
		}
	}
	return view, nil
}

func (w *Workspace) packageView(pkg *types.Package, file string, listed map[string]struct{}) *types.Package {
	shell := &types.Package{
		Identifiable: types.Identifiable{
			Name:     pkg.Name,
			UUID:     pkg.UUID,
			LongName:  pkg.LongName,
			AdminData: pkg.AdminData,
			Desc:     pkg.Desc,
		},
		Category: pkg.Category,
	}
	for _, element := range pkg.Elements {
		if owner, _ := w.DocumentOf(element.Path()); owner == file {
			shell.Elements = append(shell.Elements, element)
		}
	}
	for _, child := range pkg.Packages {
		if sub := w.packageView(child, file, listed); sub != nil {
			shell.Packages = append(shell.Packages, sub)
		}
	}
	if _, ok := listed[pkg.Path()]; ok {
		return shell
	}
	if len(shell.Elements) == 0 && len(shell.Packages) == 0 {
		return nil
	}
	return shell
}

// CheckReferences resolves every reference in the workspace.
func (w *Workspace) CheckReferences() []types.UnresolvedReference {
	return types.CheckReferences(w.root, w.root.Elements())
}

func (w *Workspace) document(file string) *workspaceDocument {
	for _, doc := range w.documents {
		if doc.file == file {
			return doc
		}
	}
	return nil
}
