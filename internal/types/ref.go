package types

import (
	"fmt"
	"strings"
)

// Reference is the read-only view shared by every typed reference.
type Reference interface {
	Value() string
	Dest() IdentifiableKind
	IsZero() bool
}

// RefClass names a reference class and the destination kinds it accepts.
type RefClass interface {
	RefClassName() string
	AcceptedKinds() []IdentifiableKind
}

// Ref is an immutable symbolic path to an element of one of C's accepted
// kinds. The zero value means "not set".
type Ref[C RefClass] struct {
	value string
	dest  IdentifiableKind
}

// NewRef builds a reference. An empty dest is inferred when C accepts
// exactly one kind.
func NewRef[C RefClass](value string, dest IdentifiableKind) (Ref[C], error) {
	var class C
	if strings.TrimSpace(value) == "" {
		return Ref[C]{}, invalidArgument("%s: reference path must not be empty", class.RefClassName())
	}
	accepted := class.AcceptedKinds()
	if dest == "" {
		if len(accepted) != 1 {
			return Ref[C]{}, invalidArgument("%s %q: dest is ambiguous, expected one of %s",
				class.RefClassName(), value, joinKinds(accepted))
		}
		return Ref[C]{value: value, dest: accepted[0]}, nil
	}
	if !acceptsKind(accepted, dest) {
		return Ref[C]{}, invalidArgument("%s %q: dest %s is not one of %s",
			class.RefClassName(), value, dest, joinKinds(accepted))
	}
	return Ref[C]{value: value, dest: dest}, nil
}

// MustRef is NewRef for statically known inputs; it panics on error.
func MustRef[C RefClass](value string, dest IdentifiableKind) Ref[C] {
	ref, err := NewRef[C](value, dest)
	if err != nil {
		panic(err)
	}
	return ref
}

// Retype converts any reference into class C. The source dest must be
// acceptable for C.
func Retype[C RefClass](ref Reference) (Ref[C], error) {
	if ref == nil || ref.IsZero() {
		var class C
		return Ref[C]{}, invalidArgument("%s: cannot retype an empty reference", class.RefClassName())
	}
	return NewRef[C](ref.Value(), ref.Dest())
}

// CoerceRef accepts a raw path string or another reference and produces a
// reference of class C.
func CoerceRef[C RefClass](v any) (Ref[C], error) {
	switch value := v.(type) {
	case Ref[C]:
		return value, nil
	case string:
		return NewRef[C](value, "")
	case Reference:
		return Retype[C](value)
	default:
		var class C
		return Ref[C]{}, invalidArgument("%s: cannot assign value of type %T", class.RefClassName(), v)
	}
}

// RefTo builds a reference to a live element from its path and kind.
func RefTo[C RefClass](target Referrable) (Ref[C], error) {
	return NewRef[C](target.Path(), target.Kind())
}

func (r Ref[C]) Value() string          { return r.value }
func (r Ref[C]) Dest() IdentifiableKind { return r.dest }
func (r Ref[C]) IsZero() bool           { return r.value == "" }
func (r Ref[C]) String() string         { return r.value }

// Equal compares path and dest.
func (r Ref[C]) Equal(other Ref[C]) bool {
	return r.value == other.value && r.dest == other.dest
}

// SamePath compares only the path, ignoring dest and class.
func (r Ref[C]) SamePath(other Reference) bool {
	return other != nil && r.value == other.Value()
}

func (r Ref[C]) GoString() string {
	var class C
	return fmt.Sprintf("%s(%s %q)", class.RefClassName(), r.dest, r.value)
}

func acceptsKind(accepted []IdentifiableKind, kind IdentifiableKind) bool {
	for _, candidate := range accepted {
		if candidate == kind {
			return true
		}
	}
	return false
}

func joinKinds(kinds []IdentifiableKind) string {
	if len(kinds) == 0 {
		return "<none>"
	}
	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, string(kind))
	}
	return strings.Join(parts, ", ")
}

// Reference classes.

type SwBaseTypeRefClass struct{}
type CompuMethodRefClass struct{}
type DataConstraintRefClass struct{}
type UnitRefClass struct{}
type PhysicalDimensionRefClass struct{}
type ImplementationDataTypeRefClass struct{}
type ApplicationDataTypeRefClass struct{}
type AutosarDataTypeRefClass struct{}
type ConstantRefClass struct{}
type ModeDeclarationGroupRefClass struct{}
type ModeDeclarationRefClass struct{}
type ModeDeclarationGroupPrototypeRefClass struct{}
type VariableDataPrototypeRefClass struct{}
type ParameterDataPrototypeRefClass struct{}
type ClientServerOperationRefClass struct{}
type ApplicationErrorRefClass struct{}
type PortInterfaceRefClass struct{}
type SwComponentTypeRefClass struct{}
type SwComponentPrototypeRefClass struct{}
type PortPrototypeRefClass struct{}
type RPortPrototypeRefClass struct{}
type PPortPrototypeRefClass struct{}

func (SwBaseTypeRefClass) RefClassName() string { return "SwBaseTypeRef" }
func (SwBaseTypeRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindSwBaseType}
}

func (CompuMethodRefClass) RefClassName() string { return "CompuMethodRef" }
func (CompuMethodRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindCompuMethod}
}

func (DataConstraintRefClass) RefClassName() string { return "DataConstraintRef" }
func (DataConstraintRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindDataConstraint}
}

func (UnitRefClass) RefClassName() string { return "UnitRef" }
func (UnitRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindUnit}
}

func (PhysicalDimensionRefClass) RefClassName() string { return "PhysicalDimensionRef" }
func (PhysicalDimensionRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindPhysicalDimension}
}

func (ImplementationDataTypeRefClass) RefClassName() string { return "ImplementationDataTypeRef" }
func (ImplementationDataTypeRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindImplementationDataType}
}

func (ApplicationDataTypeRefClass) RefClassName() string { return "ApplicationDataTypeRef" }
func (ApplicationDataTypeRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{
		KindApplicationPrimitiveDataType,
		KindApplicationArrayDataType,
		KindApplicationRecordDataType,
	}
}

func (AutosarDataTypeRefClass) RefClassName() string { return "AutosarDataTypeRef" }
func (AutosarDataTypeRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{
		KindApplicationPrimitiveDataType,
		KindApplicationArrayDataType,
		KindApplicationRecordDataType,
		KindImplementationDataType,
	}
}

func (ConstantRefClass) RefClassName() string { return "ConstantRef" }
func (ConstantRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindConstantSpecification}
}

func (ModeDeclarationGroupRefClass) RefClassName() string { return "ModeDeclarationGroupRef" }
func (ModeDeclarationGroupRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindModeDeclarationGroup}
}

func (ModeDeclarationRefClass) RefClassName() string { return "ModeDeclarationRef" }
func (ModeDeclarationRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindModeDeclaration}
}

func (ModeDeclarationGroupPrototypeRefClass) RefClassName() string {
	return "ModeDeclarationGroupPrototypeRef"
}
func (ModeDeclarationGroupPrototypeRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindModeDeclarationGroupPrototype}
}

func (VariableDataPrototypeRefClass) RefClassName() string { return "VariableDataPrototypeRef" }
func (VariableDataPrototypeRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindVariableDataPrototype}
}

func (ParameterDataPrototypeRefClass) RefClassName() string { return "ParameterDataPrototypeRef" }
func (ParameterDataPrototypeRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindParameterDataPrototype}
}

func (ClientServerOperationRefClass) RefClassName() string { return "ClientServerOperationRef" }
func (ClientServerOperationRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindClientServerOperation}
}

func (ApplicationErrorRefClass) RefClassName() string { return "ApplicationErrorRef" }
func (ApplicationErrorRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindApplicationError}
}

func (PortInterfaceRefClass) RefClassName() string { return "PortInterfaceRef" }
func (PortInterfaceRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{
		KindSenderReceiverInterface,
		KindClientServerInterface,
		KindModeSwitchInterface,
		KindParameterInterface,
		KindNvDataInterface,
	}
}

func (SwComponentTypeRefClass) RefClassName() string { return "SwComponentTypeRef" }
func (SwComponentTypeRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{
		KindApplicationSwComponentType,
		KindComplexDeviceDriverComponentType,
		KindCompositionSwComponentType,
		KindSensorActuatorSwComponentType,
		KindServiceSwComponentType,
	}
}

func (SwComponentPrototypeRefClass) RefClassName() string { return "SwComponentPrototypeRef" }
func (SwComponentPrototypeRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindSwComponentPrototype}
}

func (PortPrototypeRefClass) RefClassName() string { return "PortPrototypeRef" }
func (PortPrototypeRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindRPortPrototype, KindPPortPrototype, KindPRPortPrototype}
}

func (RPortPrototypeRefClass) RefClassName() string { return "RPortPrototypeRef" }
func (RPortPrototypeRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindRPortPrototype}
}

func (PPortPrototypeRefClass) RefClassName() string { return "PPortPrototypeRef" }
func (PPortPrototypeRefClass) AcceptedKinds() []IdentifiableKind {
	return []IdentifiableKind{KindPPortPrototype}
}

type (
	SwBaseTypeRef                    = Ref[SwBaseTypeRefClass]
	CompuMethodRef                   = Ref[CompuMethodRefClass]
	DataConstraintRef                = Ref[DataConstraintRefClass]
	UnitRef                          = Ref[UnitRefClass]
	PhysicalDimensionRef             = Ref[PhysicalDimensionRefClass]
	ImplementationDataTypeRef        = Ref[ImplementationDataTypeRefClass]
	ApplicationDataTypeRef           = Ref[ApplicationDataTypeRefClass]
	AutosarDataTypeRef               = Ref[AutosarDataTypeRefClass]
	ConstantRef                      = Ref[ConstantRefClass]
	ModeDeclarationGroupRef          = Ref[ModeDeclarationGroupRefClass]
	ModeDeclarationRef               = Ref[ModeDeclarationRefClass]
	ModeDeclarationGroupPrototypeRef = Ref[ModeDeclarationGroupPrototypeRefClass]
	VariableDataPrototypeRef         = Ref[VariableDataPrototypeRefClass]
	ParameterDataPrototypeRef        = Ref[ParameterDataPrototypeRefClass]
	ClientServerOperationRef         = Ref[ClientServerOperationRefClass]
	ApplicationErrorRef              = Ref[ApplicationErrorRefClass]
	PortInterfaceRef                 = Ref[PortInterfaceRefClass]
	SwComponentTypeRef               = Ref[SwComponentTypeRefClass]
	SwComponentPrototypeRef          = Ref[SwComponentPrototypeRefClass]
	PortPrototypeRef                 = Ref[PortPrototypeRefClass]
	RPortPrototypeRef                = Ref[RPortPrototypeRefClass]
	PPortPrototypeRef                = Ref[PPortPrototypeRefClass]
)

// collectRefs appends every set reference to dst.
func collectRefs(dst []Reference, refs ...Reference) []Reference {
	for _, ref := range refs {
		if ref != nil && !ref.IsZero() {
			dst = append(dst, ref)
		}
	}
	return dst
}
