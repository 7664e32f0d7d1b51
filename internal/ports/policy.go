package ports

import "autosar-arxml/internal/types"

// PlacementPort decides which namespace role owns an element kind.
type PlacementPort interface {
	RoleFor(kind types.IdentifiableKind) (types.PackageRole, error)
}
