package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosar-arxml/internal/types"
)

func TestNewNamespaceResolvesRolePaths(t *testing.T) {
	ns, err := NewNamespace("Demo", "/Demo/", map[types.PackageRole]string{
		types.RoleBaseType:  "DataTypes/BaseTypes",
		types.RoleConstant:  "/Shared/Constants",
		types.RoleUnit:      "Units/",
	})
	require.NoError(t, err)
	assert.Equal(t, "/Demo", ns.Base)

	tests := []struct {
		role types.PackageRole
		path string
	}{
		{role: types.RoleBaseType, path: "/Demo/DataTypes/BaseTypes"},
		{role: types.RoleConstant, path: "/Shared/Constants"},
		{role: types.RoleUnit, path: "/Demo/Units"},
	}
	for _, tt := range tests {
		path, ok := ns.PathFor(tt.role)
		require.True(t, ok, tt.role)
		assert.Equal(t, tt.path, path)
	}
	_, ok := ns.PathFor(types.RoleComponentType)
	assert.False(t, ok)
}

func TestNewNamespaceValidation(t *testing.T) {
	tests := []struct {
		name     string
		nsName   string
		base     string
		roles    map[types.PackageRole]string
		contains string
	}{
		{name: "empty name", nsName: " ", base: "/A", contains: "name must not be empty"},
		{name: "relative base", nsName: "A", base: "A", contains: "absolute package path"},
		{name: "root base", nsName: "A", base: "/", contains: "absolute package path"},
		{name: "unknown role", nsName: "A", base: "/A", roles: map[types.PackageRole]string{"Widget": "W"}, contains: "Widget"},
		{name: "empty role path", nsName: "A", base: "/A", roles: map[types.PackageRole]string{types.RoleUnit: "/"}, contains: "must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNamespace(tt.nsName, tt.base, tt.roles)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateNamespaceConfig(t *testing.T) {
	valid := map[string]types.NamespaceSpec{
		"Demo": {Base: "/Demo", Roles: map[types.PackageRole]string{types.RoleUnit: "Units"}},
	}
	require.NoError(t, ValidateNamespaceConfig(t.Context(), valid, "Demo"))
	require.NoError(t, ValidateNamespaceConfig(t.Context(), valid, ""))

	err := ValidateNamespaceConfig(t.Context(), nil, "")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	err = ValidateNamespaceConfig(t.Context(), valid, "Other")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "default namespace Other")

	err = ValidateNamespaceConfig(t.Context(), map[string]types.NamespaceSpec{
		"Broken": {Base: "relative"},
	}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "namespace Broken")
}
