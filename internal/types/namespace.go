package types

// PackageRole names the kind of content a namespace package holds.
type PackageRole string

const (
	RoleBaseType               PackageRole = "BaseType"
	RoleCompuMethod            PackageRole = "CompuMethod"
	RoleDataConstraint         PackageRole = "DataConstraint"
	RoleUnit                   PackageRole = "Unit"
	RoleImplementationDataType PackageRole = "ImplementationDataType"
	RoleApplicationDataType    PackageRole = "ApplicationDataType"
	RoleDataTypeMappingSet     PackageRole = "DataTypeMappingSet"
	RoleConstant               PackageRole = "Constant"
	RoleModeDeclaration        PackageRole = "ModeDeclaration"
	RolePortInterface          PackageRole = "PortInterface"
	RoleComponentType          PackageRole = "ComponentType"
)

var packageRoles = []PackageRole{
	RoleBaseType,
	RoleCompuMethod,
	RoleDataConstraint,
	RoleUnit,
	RoleImplementationDataType,
	RoleApplicationDataType,
	RoleDataTypeMappingSet,
	RoleConstant,
	RoleModeDeclaration,
	RolePortInterface,
	RoleComponentType,
}

// PackageRoles lists every role in declaration order.
func PackageRoles() []PackageRole {
	return append([]PackageRole(nil), packageRoles...)
}

func ParsePackageRole(text string) (PackageRole, error) {
	return parseEnum(text, packageRoles, "package role")
}

// NamespaceSpec binds roles to package paths. Relative role paths are
// resolved against Base.
type NamespaceSpec struct {
	Base  string                 `yaml:"base"`
	Roles map[PackageRole]string `yaml:"roles"`
}

// NamespaceConfigFile is the top-level structure of a namespaces.yaml file.
//
// Multiple files can be layered; later layers replace earlier namespaces
// by name.
type NamespaceConfigFile struct {
	ConfigVersion    string                   `yaml:"config_version"`
	DefaultNamespace string                   `yaml:"default_namespace,omitempty"`
	Namespaces       map[string]NamespaceSpec `yaml:"namespaces"`
}
