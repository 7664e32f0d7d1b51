package types

// ValueSpecification is the closed union of constant and init values.
type ValueSpecification interface {
	ValueLabel() string
	IsEmpty() bool
	valueSpecification()
}

type TextValue struct {
	Label string
	Value string
}

type NumericalValue struct {
	Label string
	Value Number
}

type NotAvailableValue struct {
	Label          string
	DefaultPattern *int
}

type ArrayValue struct {
	Label                              string
	IntendedPartialInitializationCount *int
	Elements                           []ValueSpecification
}

type RecordValue struct {
	Label  string
	Fields []ValueSpecification
}

// SwValue is one V or VT entry of SW-VALUES-PHYS.
type SwValue struct {
	V  Number
	VT string
}

type SwAxisCont struct {
	Category  string
	UnitRef   UnitRef
	AxisIndex *int
	ArraySize []Number
	Values    []SwValue
}

func (c *SwAxisCont) IsEmpty() bool {
	return c.Category == "" && c.UnitRef.IsZero() && c.AxisIndex == nil &&
		len(c.ArraySize) == 0 && len(c.Values) == 0
}

type SwValueCont struct {
	UnitRef   UnitRef
	ArraySize []Number
	Values    []SwValue
}

func (c *SwValueCont) IsEmpty() bool {
	return c == nil || (c.UnitRef.IsZero() && len(c.ArraySize) == 0 && len(c.Values) == 0)
}

type ApplicationValue struct {
	Label     string
	Category  string
	AxisConts []SwAxisCont
	ValueCont *SwValueCont
}

type ConstantReference struct {
	Label       string
	ConstantRef ConstantRef
}

func (v *TextValue) ValueLabel() string         { return v.Label }
func (v *NumericalValue) ValueLabel() string    { return v.Label }
func (v *NotAvailableValue) ValueLabel() string { return v.Label }
func (v *ArrayValue) ValueLabel() string        { return v.Label }
func (v *RecordValue) ValueLabel() string       { return v.Label }
func (v *ApplicationValue) ValueLabel() string  { return v.Label }
func (v *ConstantReference) ValueLabel() string { return v.Label }

func (v *TextValue) IsEmpty() bool      { return v.Label == "" && v.Value == "" }
func (v *NumericalValue) IsEmpty() bool { return v.Label == "" && v.Value.IsZero() }
func (v *NotAvailableValue) IsEmpty() bool {
	return v.Label == "" && v.DefaultPattern == nil
}
func (v *ArrayValue) IsEmpty() bool {
	return v.Label == "" && v.IntendedPartialInitializationCount == nil && len(v.Elements) == 0
}
func (v *RecordValue) IsEmpty() bool { return v.Label == "" && len(v.Fields) == 0 }
func (v *ApplicationValue) IsEmpty() bool {
	return v.Label == "" && v.Category == "" && len(v.AxisConts) == 0 && v.ValueCont == nil
}
func (v *ConstantReference) IsEmpty() bool { return v.Label == "" && v.ConstantRef.IsZero() }

func (*TextValue) valueSpecification()         {}
func (*NumericalValue) valueSpecification()    {}
func (*NotAvailableValue) valueSpecification() {}
func (*ArrayValue) valueSpecification()        {}
func (*RecordValue) valueSpecification()       {}
func (*ApplicationValue) valueSpecification()  {}
func (*ConstantReference) valueSpecification() {}

func valueReferences(dst []Reference, value ValueSpecification) []Reference {
	switch v := value.(type) {
	case *ArrayValue:
		for _, element := range v.Elements {
			dst = valueReferences(dst, element)
		}
	case *RecordValue:
		for _, field := range v.Fields {
			dst = valueReferences(dst, field)
		}
	case *ApplicationValue:
		for _, axis := range v.AxisConts {
			dst = collectRefs(dst, axis.UnitRef)
		}
		if v.ValueCont != nil {
			dst = collectRefs(dst, v.ValueCont.UnitRef)
		}
	case *ConstantReference:
		dst = collectRefs(dst, v.ConstantRef)
	}
	return dst
}

type ConstantSpecification struct {
	Identifiable
	Value ValueSpecification
}

func (*ConstantSpecification) Kind() IdentifiableKind { return KindConstantSpecification }

func (c *ConstantSpecification) References() []Reference {
	return valueReferences(nil, c.Value)
}
