package types

const (
	CategoryValue         = "VALUE"
	CategoryArray         = "ARRAY"
	CategoryStructure     = "STRUCTURE"
	CategoryTypeReference = "TYPE_REFERENCE"
	CategoryDataReference = "DATA_REFERENCE"
)

// Layout is the category-specific substructure of an implementation data
// type or one of its sub-elements.
type Layout interface {
	Category() string
	validate(owner string) error
	link(parent Container)
	references(dst []Reference) []Reference
}

// ValueLayout is CATEGORY VALUE. Props must carry a base type reference.
type ValueLayout struct {
	Props SwDataDefProps
}

func (ValueLayout) Category() string { return CategoryValue }

func (l ValueLayout) validate(owner string) error {
	if l.Props.BaseTypeRef.IsZero() {
		return invalidArgument("%s: category VALUE requires BASE-TYPE-REF", owner)
	}
	return nil
}

func (ValueLayout) link(Container) {}

func (l ValueLayout) references(dst []Reference) []Reference {
	return l.Props.references(dst)
}

// TypeReferenceLayout is CATEGORY TYPE_REFERENCE.
type TypeReferenceLayout struct {
	Props SwDataDefProps
}

func (TypeReferenceLayout) Category() string { return CategoryTypeReference }

func (l TypeReferenceLayout) validate(owner string) error {
	if l.Props.ImplementationTypeRef.IsZero() {
		return invalidArgument("%s: category TYPE_REFERENCE requires IMPLEMENTATION-DATA-TYPE-REF", owner)
	}
	return nil
}

func (TypeReferenceLayout) link(Container) {}

func (l TypeReferenceLayout) references(dst []Reference) []Reference {
	return l.Props.references(dst)
}

// DataReferenceLayout is CATEGORY DATA_REFERENCE (a pointer).
type DataReferenceLayout struct {
	Props SwDataDefProps
}

func (DataReferenceLayout) Category() string { return CategoryDataReference }

func (l DataReferenceLayout) validate(owner string) error {
	if l.Props.PointerTargetProps.IsEmpty() {
		return invalidArgument("%s: category DATA_REFERENCE requires SW-POINTER-TARGET-PROPS", owner)
	}
	return nil
}

func (DataReferenceLayout) link(Container) {}

func (l DataReferenceLayout) references(dst []Reference) []Reference {
	return l.Props.references(dst)
}

// ArrayLayout is CATEGORY ARRAY with exactly one sub-element.
type ArrayLayout struct {
	Props   *SwDataDefProps
	Element *ImplementationDataTypeElement
}

func (ArrayLayout) Category() string { return CategoryArray }

func (l ArrayLayout) validate(owner string) error {
	if l.Element == nil {
		return invalidArgument("%s: category ARRAY requires exactly one sub-element", owner)
	}
	if err := validateShortName(l.Element.Name); err != nil {
		return err
	}
	if l.Element.ArraySize == nil && l.Element.ArraySizeSemantics != ArraySizeVariable {
		return invalidArgument("%s: array element %q requires ARRAY-SIZE", owner, l.Element.Name)
	}
	return l.Element.validate()
}

func (l ArrayLayout) link(parent Container) {
	if l.Element != nil {
		l.Element.attach(parent)
		l.Element.linkChildren()
	}
}

func (l ArrayLayout) references(dst []Reference) []Reference {
	dst = l.Props.references(dst)
	if l.Element != nil {
		dst = l.Element.references(dst)
	}
	return dst
}

// StructureLayout is CATEGORY STRUCTURE with one or more sub-elements.
type StructureLayout struct {
	Props    *SwDataDefProps
	Elements []*ImplementationDataTypeElement
}

func (StructureLayout) Category() string { return CategoryStructure }

func (l StructureLayout) validate(owner string) error {
	if len(l.Elements) == 0 {
		return invalidArgument("%s: category STRUCTURE requires at least one sub-element", owner)
	}
	seen := make(map[string]struct{}, len(l.Elements))
	for _, element := range l.Elements {
		if element == nil {
			return invalidArgument("%s: nil structure element", owner)
		}
		if err := validateShortName(element.Name); err != nil {
			return err
		}
		if _, ok := seen[element.Name]; ok {
			return alreadyExists("%s already contains an element named %q", owner, element.Name)
		}
		seen[element.Name] = struct{}{}
		if err := element.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (l StructureLayout) link(parent Container) {
	for _, element := range l.Elements {
		element.attach(parent)
		element.linkChildren()
	}
}

func (l StructureLayout) references(dst []Reference) []Reference {
	dst = l.Props.references(dst)
	for _, element := range l.Elements {
		dst = element.references(dst)
	}
	return dst
}

func findInLayout(layout Layout, name string) Referrable {
	switch l := layout.(type) {
	case ArrayLayout:
		if l.Element != nil && l.Element.Name == name {
			return l.Element
		}
	case StructureLayout:
		return findNamed(l.Elements, name)
	}
	return nil
}

func validateLayout(layout Layout, owner string) error {
	if layout == nil {
		return UnsupportedCategoryError(owner, "")
	}
	return layout.validate(owner)
}

type ImplementationDataType struct {
	Identifiable
	Layout      Layout
	TypeEmitter string
}

// NewImplementationDataType validates the layout and links sub-elements.
func NewImplementationDataType(name string, layout Layout) (*ImplementationDataType, error) {
	if err := validateShortName(name); err != nil {
		return nil, err
	}
	idt := &ImplementationDataType{Identifiable: Identifiable{Name: name}}
	if err := idt.SetLayout(layout); err != nil {
		return nil, err
	}
	return idt, nil
}

func (*ImplementationDataType) Kind() IdentifiableKind { return KindImplementationDataType }

// Category is derived from the layout.
func (t *ImplementationDataType) Category() string {
	if t.Layout == nil {
		return ""
	}
	return t.Layout.Category()
}

func (t *ImplementationDataType) SetLayout(layout Layout) error {
	if err := validateLayout(layout, "IMPLEMENTATION-DATA-TYPE "+t.Name); err != nil {
		return err
	}
	t.Layout = layout
	layout.link(t)
	return nil
}

// Validate checks the layout required substructure.
func (t *ImplementationDataType) Validate() error {
	return validateLayout(t.Layout, "IMPLEMENTATION-DATA-TYPE "+t.Name)
}

func (t *ImplementationDataType) linkChildren() {
	if t.Layout != nil {
		t.Layout.link(t)
	}
}

func (t *ImplementationDataType) FindChild(name string) Referrable {
	return findInLayout(t.Layout, name)
}

func (t *ImplementationDataType) References() []Reference {
	if t.Layout == nil {
		return nil
	}
	return t.Layout.references(nil)
}

// ImplementationDataTypeElement is a SUB-ELEMENTS entry.
type ImplementationDataTypeElement struct {
	Identifiable
	Layout             Layout
	ArraySize          *int
	ArraySizeHandling  ArraySizeHandling
	ArraySizeSemantics ArraySizeSemantics
	ArrayImplPolicy    ArrayImplPolicy
	IsOptional         *bool
}

func (*ImplementationDataTypeElement) Kind() IdentifiableKind {
	return KindImplementationDataTypeElement
}

func (e *ImplementationDataTypeElement) Category() string {
	if e.Layout == nil {
		return ""
	}
	return e.Layout.Category()
}

func (e *ImplementationDataTypeElement) validate() error {
	return validateLayout(e.Layout, "IMPLEMENTATION-DATA-TYPE-ELEMENT "+e.Name)
}

func (e *ImplementationDataTypeElement) linkChildren() {
	if e.Layout != nil {
		e.Layout.link(e)
	}
}

func (e *ImplementationDataTypeElement) FindChild(name string) Referrable {
	return findInLayout(e.Layout, name)
}

func (e *ImplementationDataTypeElement) references(dst []Reference) []Reference {
	if e.Layout == nil {
		return dst
	}
	return e.Layout.references(dst)
}
