package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosar-arxml/internal/policies"
	"autosar-arxml/internal/types"
)

func newTestWorkspace(t *testing.T) *Workspace {
	t.Helper()
	ws := NewWorkspace(policies.NewPlacementPolicy())
	_, err := ws.CreateNamespace("Default", "/Vehicle", map[types.PackageRole]string{
		types.RoleBaseType:               "DataTypes/BaseTypes",
		types.RoleImplementationDataType: "DataTypes/ImplementationTypes",
		types.RoleCompuMethod:            "DataTypes/CompuMethods",
		types.RoleDataConstraint:         "DataTypes/DataConstrs",
		types.RoleConstant:               "/Shared/Constants",
	})
	require.NoError(t, err)
	return ws
}

func baseType(name string) *types.SwBaseType {
	size := 8
	return &types.SwBaseType{
		Identifiable:      types.Identifiable{Name: name},
		Category:          "FIXED_LENGTH",
		Size:              &size,
		Encoding:          "NONE",
		NativeDeclaration: name,
	}
}

func valueType(t *testing.T, name string, basePath string) *types.ImplementationDataType {
	t.Helper()
	idt, err := types.NewImplementationDataType(name, types.ValueLayout{
		Props: types.SwDataDefProps{
			BaseTypeRef: types.MustRef[types.SwBaseTypeRefClass](basePath, ""),
		},
	})
	require.NoError(t, err)
	return idt
}

func typeRefType(t *testing.T, name string, target string) *types.ImplementationDataType {
	t.Helper()
	idt, err := types.NewImplementationDataType(name, types.TypeReferenceLayout{
		Props: types.SwDataDefProps{
			ImplementationTypeRef: types.MustRef[types.ImplementationDataTypeRefClass](target, ""),
		},
	})
	require.NoError(t, err)
	return idt
}

func TestWorkspaceFind(t *testing.T) {
	ws := newTestWorkspace(t)
	pkg, err := ws.AddElement(baseType("uint8"))
	require.NoError(t, err)
	assert.Equal(t, "/Vehicle/DataTypes/BaseTypes", pkg.Path())

	found := ws.Find("/Vehicle/DataTypes/BaseTypes/uint8")
	require.NotNil(t, found)
	assert.Equal(t, types.KindSwBaseType, found.Kind())
	assert.Nil(t, ws.Find("/Vehicle/DataTypes/BaseTypes/uint16"))
	assert.Nil(t, ws.Find("/Nowhere"))
}

func TestWorkspaceMakePackages(t *testing.T) {
	ws := NewWorkspace(policies.NewPlacementPolicy())
	_, err := ws.MakePackages("/DataTypes/CompuMethods", "/DataTypes/DataConstrs")
	require.NoError(t, err)
	require.NotNil(t, ws.Root().FindPackage("/DataTypes/CompuMethods"))
	require.NotNil(t, ws.Root().FindPackage("/DataTypes/DataConstrs"))

	pkg := ws.Root().FindPackage("/DataTypes")
	duplicate, err := types.NewPackage("CompuMethods")
	require.NoError(t, err)
	err = pkg.Append(duplicate)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
}

func TestWorkspaceResolve(t *testing.T) {
	ws := newTestWorkspace(t)
	_, err := ws.AddElement(baseType("uint8"))
	require.NoError(t, err)
	_, err = ws.AddElement(valueType(t, "Speed", "/Vehicle/DataTypes/BaseTypes/uint8"))
	require.NoError(t, err)

	target, err := ws.Resolve(types.MustRef[types.SwBaseTypeRefClass]("/Vehicle/DataTypes/BaseTypes/uint8", ""))
	require.NoError(t, err)
	assert.Equal(t, "uint8", target.ShortName())

	_, err = ws.Resolve(types.MustRef[types.SwBaseTypeRefClass]("/Vehicle/DataTypes/BaseTypes/missing", ""))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	_, err = ws.Resolve(types.MustRef[types.SwBaseTypeRefClass]("/Vehicle/DataTypes/ImplementationTypes/Speed", ""))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestWorkspaceAddElementPlacement(t *testing.T) {
	ws := newTestWorkspace(t)
	constant := &types.ConstantSpecification{
		Identifiable: types.Identifiable{Name: "Zero"},
		Value:        &types.NumericalValue{Value: types.Int(0)},
	}
	pkg, err := ws.AddElement(constant)
	require.NoError(t, err)
	assert.Equal(t, "/Shared/Constants", pkg.Path())
	assert.Equal(t, "/Shared/Constants/Zero", constant.Path())

	_, err = ws.AddElement(&types.Unit{Identifiable: types.Identifiable{Name: "Km"}})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "no package for role Unit")
}

func TestWorkspaceAddElementWithoutNamespace(t *testing.T) {
	ws := NewWorkspace(policies.NewPlacementPolicy())
	_, err := ws.AddElement(baseType("uint8"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestWorkspaceNamespaces(t *testing.T) {
	ws := newTestWorkspace(t)
	assert.Equal(t, "Default", ws.DefaultNamespace())

	_, err := ws.CreateNamespace("Default", "/Other", nil)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))

	_, err = ws.CreateNamespace("Platform", "/Platform", map[types.PackageRole]string{
		types.RoleBaseType: "BaseTypes",
	})
	require.NoError(t, err)
	require.NoError(t, ws.SetDefaultNamespace("Platform"))

	path, err := ws.PackagePathForRole(types.RoleBaseType)
	require.NoError(t, err)
	assert.Equal(t, "/Platform/BaseTypes", path)

	path, err = ws.PackagePathForRoleIn("Default", types.RoleBaseType)
	require.NoError(t, err)
	assert.Equal(t, "/Vehicle/DataTypes/BaseTypes", path)

	err = ws.SetDefaultNamespace("Missing")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestWorkspaceRoleScopes(t *testing.T) {
	ws := newTestWorkspace(t)

	outer, err := ws.PushRoles(map[types.PackageRole]string{types.RoleBaseType: "Outer"})
	require.NoError(t, err)
	inner, err := ws.PushRoles(map[types.PackageRole]string{types.RoleBaseType: "/Inner/BaseTypes"})
	require.NoError(t, err)

	path, err := ws.PackagePathForRole(types.RoleBaseType)
	require.NoError(t, err)
	assert.Equal(t, "/Inner/BaseTypes", path)

	path, err = ws.PackagePathForRole(types.RoleCompuMethod)
	require.NoError(t, err)
	assert.Equal(t, "/Vehicle/DataTypes/CompuMethods", path)

	err = outer.Close()
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "out of order")

	require.NoError(t, inner.Close())
	path, err = ws.PackagePathForRole(types.RoleBaseType)
	require.NoError(t, err)
	assert.Equal(t, "/Vehicle/Outer", path)

	require.NoError(t, outer.Close())
	path, err = ws.PackagePathForRole(types.RoleBaseType)
	require.NoError(t, err)
	assert.Equal(t, "/Vehicle/DataTypes/BaseTypes", path)

	err = outer.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already closed")
}

func TestWorkspaceRoleScopeRejectsUnknownRole(t *testing.T) {
	ws := newTestWorkspace(t)
	_, err := ws.PushRoles(map[types.PackageRole]string{"Bogus": "Somewhere"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestWorkspaceDocuments(t *testing.T) {
	ws := newTestWorkspace(t)
	require.NoError(t, ws.CreateDocument("datatypes.arxml", "/Vehicle/DataTypes"))
	require.NoError(t, ws.CreateDocument("base.arxml", "/Vehicle/DataTypes/BaseTypes"))
	require.NoError(t, ws.CreateDocument("constants.arxml", "/Shared"))

	err := ws.CreateDocument("base.arxml")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))

	_, err = ws.AddElement(baseType("uint8"))
	require.NoError(t, err)
	_, err = ws.AddElement(valueType(t, "Speed", "/Vehicle/DataTypes/BaseTypes/uint8"))
	require.NoError(t, err)

	tests := []struct {
		path string
		file string
		ok   bool
	}{
		{path: "/Vehicle/DataTypes/BaseTypes/uint8", file: "base.arxml", ok: true},
		{path: "/Vehicle/DataTypes/ImplementationTypes/Speed", file: "datatypes.arxml", ok: true},
		{path: "/Shared/Constants", file: "constants.arxml", ok: true},
		{path: "/Vehicle", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			file, ok := ws.DocumentOf(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.file, file)
		})
	}
	assert.Equal(t, []string{"datatypes.arxml", "base.arxml", "constants.arxml"}, ws.Documents())
}

func TestWorkspaceDocumentView(t *testing.T) {
	ws := newTestWorkspace(t)
	require.NoError(t, ws.CreateDocument("base.arxml", "/Vehicle/DataTypes/BaseTypes"))
	require.NoError(t, ws.CreateDocument("impl.arxml", "/Vehicle/DataTypes/ImplementationTypes"))
	_, err := ws.AddElement(baseType("uint8"))
	require.NoError(t, err)
	_, err = ws.AddElement(valueType(t, "Speed", "/Vehicle/DataTypes/BaseTypes/uint8"))
	require.NoError(t, err)

	view, err := ws.DocumentView("impl.arxml")
	require.NoError(t, err)
	require.NotNil(t, view.FindPackage("/Vehicle/DataTypes/ImplementationTypes"))
	assert.Nil(t, view.Find("/Vehicle/DataTypes/BaseTypes"))

	speed := view.Find("/Vehicle/DataTypes/ImplementationTypes/Speed")
	require.NotNil(t, speed)
	assert.Equal(t, "/Vehicle/DataTypes/ImplementationTypes/Speed", speed.Path())
	assert.Same(t, ws.Find("/Vehicle/DataTypes/ImplementationTypes/Speed"), speed)

	_, err = ws.DocumentView("missing.arxml")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestWorkspaceLoadDocument(t *testing.T) {
	ws := NewWorkspace(policies.NewPlacementPolicy())

	first := types.NewDocument()
	pkg, err := first.MakePackages("/DataTypes/BaseTypes")
	require.NoError(t, err)
	require.NoError(t, pkg.AppendElement(baseType("uint8")))
	require.NoError(t, ws.LoadDocument(t.Context(), first, "base.arxml", ""))

	second := types.NewDocument()
	pkg, err = second.MakePackages("/DataTypes/ImplementationTypes")
	require.NoError(t, err)
	require.NoError(t, pkg.AppendElement(valueType(t, "Speed", "/DataTypes/BaseTypes/uint8")))
	require.NoError(t, ws.LoadDocument(t.Context(), second, "impl.arxml", ""))

	file, ok := ws.DocumentOf("/DataTypes/BaseTypes/uint8")
	require.True(t, ok)
	assert.Equal(t, "base.arxml", file)
	file, ok = ws.DocumentOf("/DataTypes/ImplementationTypes/Speed")
	require.True(t, ok)
	assert.Equal(t, "impl.arxml", file)
	assert.Empty(t, ws.CheckReferences())

	clash := types.NewDocument()
	pkg, err = clash.MakePackages("/DataTypes/BaseTypes")
	require.NoError(t, err)
	require.NoError(t, pkg.AppendElement(baseType("uint8")))
	err = ws.LoadDocument(t.Context(), clash, "clash.arxml", "")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "/DataTypes/BaseTypes/uint8 is defined more than once")

	err = ws.LoadDocument(t.Context(), types.NewDocument(), "base.arxml", "")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
}

func TestWorkspaceLoadDocumentConflictLeavesWorkspaceUnchanged(t *testing.T) {
	ws := NewWorkspace(policies.NewPlacementPolicy())
	first := types.NewDocument()
	pkg, err := first.MakePackages("/A")
	require.NoError(t, err)
	require.NoError(t, pkg.AppendElement(baseType("x")))
	require.NoError(t, ws.LoadDocument(t.Context(), first, "a.arxml", policies.ActionFail))

	tests := []struct {
		name  string
		build func(t *testing.T) *types.Document
	}{
		{
			name: "duplicate element after new one",
			build: func(t *testing.T) *types.Document {
				doc := types.NewDocument()
				pkg, err := doc.MakePackages("/A")
				require.NoError(t, err)
				require.NoError(t, pkg.AppendElement(baseType("y")))
				require.NoError(t, pkg.AppendElement(baseType("x")))
				return doc
			},
		},
		{
			name: "package over element in later package",
			build: func(t *testing.T) *types.Document {
				doc := types.NewDocument()
				_, err := doc.MakePackages("/B/y")
				require.NoError(t, err)
				_, err = doc.MakePackages("/A/x")
				require.NoError(t, err)
				return doc
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ws.LoadDocument(t.Context(), tt.build(t), "b.arxml", policies.ActionFail)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))

			assert.Nil(t, ws.Find("/A/y"))
			assert.Nil(t, ws.Find("/B"))
			assert.NotNil(t, ws.Find("/A/x"))
			assert.Equal(t, []string{"a.arxml"}, ws.Documents())
			_, ok := ws.DocumentOf("/A/y")
			assert.False(t, ok)
		})
	}
}

func TestWorkspaceCheckReferences(t *testing.T) {
	ws := newTestWorkspace(t)
	_, err := ws.AddElement(baseType("uint8"))
	require.NoError(t, err)
	_, err = ws.AddElement(valueType(t, "Good", "/Vehicle/DataTypes/BaseTypes/uint8"))
	require.NoError(t, err)
	_, err = ws.AddElement(valueType(t, "Bad", "/Vehicle/DataTypes/BaseTypes/uint99"))
	require.NoError(t, err)

	problems := ws.CheckReferences()
	require.Len(t, problems, 1)
	assert.Equal(t, "/Vehicle/DataTypes/ImplementationTypes/Bad", problems[0].Owner)
	assert.Equal(t, "/Vehicle/DataTypes/BaseTypes/uint99", problems[0].Ref.Value())
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(problems[0].Err))
}

func TestWorkspaceApplyNamespaceConfig(t *testing.T) {
	ws := NewWorkspace(policies.NewPlacementPolicy())
	err := ws.ApplyNamespaceConfig(t.Context(), map[string]types.NamespaceSpec{
		"A": {Base: "/A", Roles: map[types.PackageRole]string{types.RoleUnit: "Units"}},
		"B": {Base: "/B", Roles: map[types.PackageRole]string{types.RoleUnit: "Units"}},
	}, "B")
	require.NoError(t, err)
	assert.Equal(t, "B", ws.DefaultNamespace())

	path, err := ws.PackagePathForRole(types.RoleUnit)
	require.NoError(t, err)
	assert.Equal(t, "/B/Units", path)
}
