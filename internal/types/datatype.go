package types

type SwBaseType struct {
	Identifiable
	Category          string
	Size              *int
	Encoding          string
	MemAlignment      *int
	ByteOrder         ByteOrder
	NativeDeclaration string
}

func (*SwBaseType) Kind() IdentifiableKind { return KindSwBaseType }

func (*SwBaseType) References() []Reference { return nil }

// Limit is a LOWER-LIMIT or UPPER-LIMIT with its INTERVAL-TYPE attribute.
type Limit struct {
	Value    Number
	Interval IntervalType
}

func (l *Limit) IsEmpty() bool {
	return l == nil || (l.Value.IsZero() && l.Interval == "")
}

// CompuContent is the closed set of COMPU-SCALE payloads.
type CompuContent interface {
	IsEmpty() bool
	compuContent()
}

// CompuConst is COMPU-CONST: either a VT text or a V number.
type CompuConst struct {
	Text  string
	Value Number
}

func (c *CompuConst) IsEmpty() bool { return c == nil || (c.Text == "" && c.Value.IsZero()) }
func (*CompuConst) compuContent()   {}

// RationalCoeffs is COMPU-RATIONAL-COEFFS.
type RationalCoeffs struct {
	Numerator   []Number
	Denominator []Number
}

func (c *RationalCoeffs) IsEmpty() bool {
	return c == nil || (len(c.Numerator) == 0 && len(c.Denominator) == 0)
}
func (*RationalCoeffs) compuContent() {}

type CompuScale struct {
	Label      string
	Symbol     string
	Mask       Number
	LowerLimit *Limit
	UpperLimit *Limit
	Content    CompuContent
}

// IsEmpty reports whether the scale has no children. A set pointer or
// content counts as a child even when it is itself empty.
func (s *CompuScale) IsEmpty() bool {
	return s.Label == "" && s.Symbol == "" && s.Mask.IsZero() &&
		s.LowerLimit == nil && s.UpperLimit == nil && s.Content == nil
}

// Computation is COMPU-INTERNAL-TO-PHYS or COMPU-PHYS-TO-INTERNAL.
type Computation struct {
	Scales       []CompuScale
	DefaultValue *CompuConst
}

func (c *Computation) IsEmpty() bool {
	return c == nil || (len(c.Scales) == 0 && c.DefaultValue == nil)
}

type CompuMethod struct {
	Identifiable
	Category       string
	UnitRef        UnitRef
	InternalToPhys *Computation
	PhysToInternal *Computation
}

func (*CompuMethod) Kind() IdentifiableKind { return KindCompuMethod }

func (c *CompuMethod) References() []Reference {
	return collectRefs(nil, c.UnitRef)
}

// ScaleConstraint is PHYS-CONSTRS or INTERNAL-CONSTRS.
type ScaleConstraint struct {
	LowerLimit *Limit
	UpperLimit *Limit
	UnitRef    UnitRef
}

func (s *ScaleConstraint) IsEmpty() bool {
	return s == nil || (s.LowerLimit == nil && s.UpperLimit == nil && s.UnitRef.IsZero())
}

type DataConstraintRule struct {
	Level    *int
	Phys     *ScaleConstraint
	Internal *ScaleConstraint
}

func (r *DataConstraintRule) IsEmpty() bool {
	return r.Level == nil && r.Phys == nil && r.Internal == nil
}

type DataConstraint struct {
	Identifiable
	Rules []DataConstraintRule
}

func (*DataConstraint) Kind() IdentifiableKind { return KindDataConstraint }

func (d *DataConstraint) References() []Reference {
	var refs []Reference
	for _, rule := range d.Rules {
		if rule.Phys != nil {
			refs = collectRefs(refs, rule.Phys.UnitRef)
		}
		if rule.Internal != nil {
			refs = collectRefs(refs, rule.Internal.UnitRef)
		}
	}
	return refs
}

type Unit struct {
	Identifiable
	DisplayName          string
	FactorSIToUnit       *float64
	OffsetSIToUnit       *float64
	PhysicalDimensionRef PhysicalDimensionRef
}

func (*Unit) Kind() IdentifiableKind { return KindUnit }

func (u *Unit) References() []Reference {
	return collectRefs(nil, u.PhysicalDimensionRef)
}

type SwPointerTargetProps struct {
	TargetCategory string
	Props          *SwDataDefProps
}

func (p *SwPointerTargetProps) IsEmpty() bool {
	return p == nil || (p.TargetCategory == "" && p.Props == nil)
}

// SwDataDefProps is the single conditional of SW-DATA-DEF-PROPS.
type SwDataDefProps struct {
	BaseTypeRef           SwBaseTypeRef
	CalibrationAccess     SwCalibrationAccess
	DisplayFormat         string
	CompuMethodRef        CompuMethodRef
	DataConstraintRef     DataConstraintRef
	ImplPolicy            SwImplPolicy
	ImplementationTypeRef ImplementationDataTypeRef
	PointerTargetProps    *SwPointerTargetProps
	UnitRef               UnitRef
}

func (p *SwDataDefProps) IsEmpty() bool {
	return p == nil || (p.BaseTypeRef.IsZero() &&
		p.CalibrationAccess == "" &&
		p.DisplayFormat == "" &&
		p.CompuMethodRef.IsZero() &&
		p.DataConstraintRef.IsZero() &&
		p.ImplPolicy == "" &&
		p.ImplementationTypeRef.IsZero() &&
		p.PointerTargetProps == nil &&
		p.UnitRef.IsZero())
}

func (p *SwDataDefProps) references(dst []Reference) []Reference {
	if p == nil {
		return dst
	}
	dst = collectRefs(dst, p.BaseTypeRef, p.CompuMethodRef, p.DataConstraintRef,
		p.ImplementationTypeRef, p.UnitRef)
	if p.PointerTargetProps != nil {
		dst = p.PointerTargetProps.Props.references(dst)
	}
	return dst
}

type ApplicationPrimitiveDataType struct {
	Identifiable
	Category string
	Props    *SwDataDefProps
}

func (*ApplicationPrimitiveDataType) Kind() IdentifiableKind {
	return KindApplicationPrimitiveDataType
}

func (a *ApplicationPrimitiveDataType) References() []Reference {
	return a.Props.references(nil)
}

type ApplicationArrayElement struct {
	Identifiable
	Category            string
	TypeRef             ApplicationDataTypeRef
	ArraySizeHandling   ArraySizeHandling
	ArraySizeSemantics  ArraySizeSemantics
	MaxNumberOfElements *int
}

func (*ApplicationArrayElement) Kind() IdentifiableKind { return KindApplicationArrayElement }

type ApplicationArrayDataType struct {
	Identifiable
	Category string
	Props    *SwDataDefProps
	Element  *ApplicationArrayElement
}

func (*ApplicationArrayDataType) Kind() IdentifiableKind { return KindApplicationArrayDataType }

func (a *ApplicationArrayDataType) linkChildren() {
	if a.Element != nil {
		a.Element.attach(a)
	}
}

func (a *ApplicationArrayDataType) FindChild(name string) Referrable {
	if a.Element != nil && a.Element.Name == name {
		return a.Element
	}
	return nil
}

func (a *ApplicationArrayDataType) References() []Reference {
	refs := a.Props.references(nil)
	if a.Element != nil {
		refs = collectRefs(refs, a.Element.TypeRef)
	}
	return refs
}

type ApplicationRecordElement struct {
	Identifiable
	Category string
	TypeRef  ApplicationDataTypeRef
}

func (*ApplicationRecordElement) Kind() IdentifiableKind { return KindApplicationRecordElement }

type ApplicationRecordDataType struct {
	Identifiable
	Category string
	Props    *SwDataDefProps
	Elements []*ApplicationRecordElement
}

func (*ApplicationRecordDataType) Kind() IdentifiableKind { return KindApplicationRecordDataType }

func (a *ApplicationRecordDataType) AppendElement(element *ApplicationRecordElement) error {
	elements, err := appendChild(a, a.Elements, element)
	a.Elements = elements
	return err
}

func (a *ApplicationRecordDataType) linkChildren() {
	for _, element := range a.Elements {
		element.attach(a)
	}
}

func (a *ApplicationRecordDataType) FindChild(name string) Referrable {
	return findNamed(a.Elements, name)
}

func (a *ApplicationRecordDataType) References() []Reference {
	refs := a.Props.references(nil)
	for _, element := range a.Elements {
		refs = collectRefs(refs, element.TypeRef)
	}
	return refs
}

type DataTypeMap struct {
	ApplicationTypeRef    ApplicationDataTypeRef
	ImplementationTypeRef ImplementationDataTypeRef
}

type ModeRequestTypeMap struct {
	ImplementationTypeRef ImplementationDataTypeRef
	ModeGroupRef          ModeDeclarationGroupRef
}

type DataTypeMappingSet struct {
	Identifiable
	DataTypeMaps        []DataTypeMap
	ModeRequestTypeMaps []ModeRequestTypeMap
}

func (*DataTypeMappingSet) Kind() IdentifiableKind { return KindDataTypeMappingSet }

func (d *DataTypeMappingSet) References() []Reference {
	var refs []Reference
	for _, m := range d.DataTypeMaps {
		refs = collectRefs(refs, m.ApplicationTypeRef, m.ImplementationTypeRef)
	}
	for _, m := range d.ModeRequestTypeMaps {
		refs = collectRefs(refs, m.ImplementationTypeRef, m.ModeGroupRef)
	}
	return refs
}
