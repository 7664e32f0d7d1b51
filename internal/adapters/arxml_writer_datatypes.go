package adapters

import (
	"autosar-arxml/internal/types"
)

func (e *arxmlEncoder) swBaseType(v *types.SwBaseType) {
	e.beginIdentifiable("SW-BASE-TYPE", &v.Identifiable, v.Category)
	e.x.intPtr("BASE-TYPE-SIZE", v.Size)
	e.x.text("BASE-TYPE-ENCODING", v.Encoding)
	e.x.intPtr("MEM-ALIGNMENT", v.MemAlignment)
	e.x.text("BYTE-ORDER", string(v.ByteOrder))
	e.x.text("NATIVE-DECLARATION", v.NativeDeclaration)
	e.x.end("SW-BASE-TYPE")
}

func (e *arxmlEncoder) limit(tag string, l *types.Limit) {
	if l == nil {
		return
	}
	var attrs []xmlAttr
	if l.Interval != "" {
		attrs = append(attrs, xmlAttr{name: "INTERVAL-TYPE", value: string(l.Interval)})
	}
	if l.Value.IsZero() {
		e.x.empty(tag, attrs...)
		return
	}
	e.x.leaf(tag, l.Value.String(), attrs...)
}

func (e *arxmlEncoder) compuConst(tag string, c *types.CompuConst) {
	if c == nil {
		return
	}
	if c.IsEmpty() {
		e.x.empty(tag)
		return
	}
	e.x.begin(tag)
	e.x.text("VT", c.Text)
	e.x.number("V", c.Value)
	e.x.end(tag)
}

func (e *arxmlEncoder) numberList(tag string, values []types.Number) {
	if len(values) == 0 {
		return
	}
	e.x.begin(tag)
	for _, value := range values {
		e.x.number("V", value)
	}
	e.x.end(tag)
}

func (e *arxmlEncoder) compuScale(s *types.CompuScale) {
	if s.IsEmpty() {
		e.x.empty("COMPU-SCALE")
		return
	}
	e.x.begin("COMPU-SCALE")
	e.x.text("SHORT-LABEL", s.Label)
	e.x.text("SYMBOL", s.Symbol)
	e.x.number("MASK", s.Mask)
	e.limit("LOWER-LIMIT", s.LowerLimit)
	e.limit("UPPER-LIMIT", s.UpperLimit)
	switch content := s.Content.(type) {
	case *types.CompuConst:
		e.compuConst("COMPU-CONST", content)
	case *types.RationalCoeffs:
		if content.IsEmpty() {
			e.x.empty("COMPU-RATIONAL-COEFFS")
			break
		}
		e.x.begin("COMPU-RATIONAL-COEFFS")
		e.numberList("COMPU-NUMERATOR", content.Numerator)
		e.numberList("COMPU-DENOMINATOR", content.Denominator)
		e.x.end("COMPU-RATIONAL-COEFFS")
	}
	e.x.end("COMPU-SCALE")
}

func (e *arxmlEncoder) computation(tag string, c *types.Computation) {
	if c == nil {
		return
	}
	if c.IsEmpty() {
		e.x.empty(tag)
		return
	}
	e.x.begin(tag)
	if len(c.Scales) > 0 {
		e.x.begin("COMPU-SCALES")
		for i := range c.Scales {
			e.compuScale(&c.Scales[i])
		}
		e.x.end("COMPU-SCALES")
	}
	e.compuConst("COMPU-DEFAULT-VALUE", c.DefaultValue)
	e.x.end(tag)
}

func (e *arxmlEncoder) compuMethod(v *types.CompuMethod) {
	e.beginIdentifiable("COMPU-METHOD", &v.Identifiable, v.Category)
	e.x.ref("UNIT-REF", v.UnitRef)
	e.computation("COMPU-INTERNAL-TO-PHYS", v.InternalToPhys)
	e.computation("COMPU-PHYS-TO-INTERNAL", v.PhysToInternal)
	e.x.end("COMPU-METHOD")
}

func (e *arxmlEncoder) scaleConstraint(tag string, s *types.ScaleConstraint) {
	if s == nil {
		return
	}
	if s.IsEmpty() {
		e.x.empty(tag)
		return
	}
	e.x.begin(tag)
	e.limit("LOWER-LIMIT", s.LowerLimit)
	e.limit("UPPER-LIMIT", s.UpperLimit)
	e.x.ref("UNIT-REF", s.UnitRef)
	e.x.end(tag)
}

func (e *arxmlEncoder) dataConstraint(v *types.DataConstraint) {
	e.beginIdentifiable("DATA-CONSTR", &v.Identifiable, "")
	if len(v.Rules) > 0 {
		e.x.begin("DATA-CONSTR-RULES")
		for i := range v.Rules {
			rule := &v.Rules[i]
			if rule.IsEmpty() {
				e.x.empty("DATA-CONSTR-RULE")
				continue
			}
			e.x.begin("DATA-CONSTR-RULE")
			e.x.intPtr("CONSTR-LEVEL", rule.Level)
			e.scaleConstraint("PHYS-CONSTRS", rule.Phys)
			e.scaleConstraint("INTERNAL-CONSTRS", rule.Internal)
			e.x.end("DATA-CONSTR-RULE")
		}
		e.x.end("DATA-CONSTR-RULES")
	}
	e.x.end("DATA-CONSTR")
}

func (e *arxmlEncoder) unit(v *types.Unit) {
	e.beginIdentifiable("UNIT", &v.Identifiable, "")
	e.x.text("DISPLAY-NAME", v.DisplayName)
	e.x.floatPtr("FACTOR-SI-TO-UNIT", v.FactorSIToUnit)
	e.x.floatPtr("OFFSET-SI-TO-UNIT", v.OffsetSIToUnit)
	e.x.ref("PHYSICAL-DIMENSION-REF", v.PhysicalDimensionRef)
	e.x.end("UNIT")
}

func (e *arxmlEncoder) swDataDefProps(p *types.SwDataDefProps) {
	if p == nil {
		return
	}
	if p.IsEmpty() {
		e.x.empty("SW-DATA-DEF-PROPS")
		return
	}
	e.x.begin("SW-DATA-DEF-PROPS")
	e.x.begin("SW-DATA-DEF-PROPS-VARIANTS")
	e.x.begin("SW-DATA-DEF-PROPS-CONDITIONAL")
	e.x.ref("BASE-TYPE-REF", p.BaseTypeRef)
	e.x.text("SW-CALIBRATION-ACCESS", string(p.CalibrationAccess))
	e.x.text("DISPLAY-FORMAT", p.DisplayFormat)
	e.x.ref("COMPU-METHOD-REF", p.CompuMethodRef)
	e.x.ref("DATA-CONSTR-REF", p.DataConstraintRef)
	e.x.text("SW-IMPL-POLICY", string(p.ImplPolicy))
	e.x.ref("IMPLEMENTATION-DATA-TYPE-REF", p.ImplementationTypeRef)
	if target := p.PointerTargetProps; target != nil {
		if target.IsEmpty() {
			e.x.empty("SW-POINTER-TARGET-PROPS")
		} else {
			e.x.begin("SW-POINTER-TARGET-PROPS")
			e.x.text("TARGET-CATEGORY", target.TargetCategory)
			e.swDataDefProps(target.Props)
			e.x.end("SW-POINTER-TARGET-PROPS")
		}
	}
	e.x.ref("UNIT-REF", p.UnitRef)
	e.x.end("SW-DATA-DEF-PROPS-CONDITIONAL")
	e.x.end("SW-DATA-DEF-PROPS-VARIANTS")
	e.x.end("SW-DATA-DEF-PROPS")
}

// layoutParts splits a layout into its SW-DATA-DEF-PROPS and SUB-ELEMENTS.
func layoutParts(layout types.Layout) (*types.SwDataDefProps, []*types.ImplementationDataTypeElement) {
	switch l := layout.(type) {
	case types.ValueLayout:
		return &l.Props, nil
	case types.TypeReferenceLayout:
		return &l.Props, nil
	case types.DataReferenceLayout:
		return &l.Props, nil
	case types.ArrayLayout:
		return l.Props, []*types.ImplementationDataTypeElement{l.Element}
	case types.StructureLayout:
		return l.Props, l.Elements
	}
	return nil, nil
}

func (e *arxmlEncoder) subElements(elements []*types.ImplementationDataTypeElement) {
	if len(elements) == 0 {
		return
	}
	e.x.begin("SUB-ELEMENTS")
	for _, element := range elements {
		e.implementationElement(element)
	}
	e.x.end("SUB-ELEMENTS")
}

func (e *arxmlEncoder) implementationDataType(v *types.ImplementationDataType) {
	if err := v.Validate(); err != nil {
		e.fail(err)
		return
	}
	props, elements := layoutParts(v.Layout)
	e.beginIdentifiable("IMPLEMENTATION-DATA-TYPE", &v.Identifiable, v.Category())
	e.swDataDefProps(props)
	e.subElements(elements)
	e.x.text("TYPE-EMITTER", v.TypeEmitter)
	e.x.end("IMPLEMENTATION-DATA-TYPE")
}

func (e *arxmlEncoder) implementationElement(v *types.ImplementationDataTypeElement) {
	if v.Layout == nil {
		e.fail(types.UnsupportedCategoryError("IMPLEMENTATION-DATA-TYPE-ELEMENT "+v.Name, ""))
		return
	}
	props, elements := layoutParts(v.Layout)
	e.beginIdentifiable("IMPLEMENTATION-DATA-TYPE-ELEMENT", &v.Identifiable, v.Category())
	e.x.text("ARRAY-IMPL-POLICY", string(v.ArrayImplPolicy))
	e.x.intPtr("ARRAY-SIZE", v.ArraySize)
	e.x.text("ARRAY-SIZE-HANDLING", string(v.ArraySizeHandling))
	e.x.text("ARRAY-SIZE-SEMANTICS", string(v.ArraySizeSemantics))
	e.x.boolPtr("IS-OPTIONAL", v.IsOptional)
	e.subElements(elements)
	e.swDataDefProps(props)
	e.x.end("IMPLEMENTATION-DATA-TYPE-ELEMENT")
}

func (e *arxmlEncoder) applicationPrimitive(v *types.ApplicationPrimitiveDataType) {
	e.beginIdentifiable("APPLICATION-PRIMITIVE-DATA-TYPE", &v.Identifiable, v.Category)
	e.swDataDefProps(v.Props)
	e.x.end("APPLICATION-PRIMITIVE-DATA-TYPE")
}

func (e *arxmlEncoder) applicationArray(v *types.ApplicationArrayDataType) {
	e.beginIdentifiable("APPLICATION-ARRAY-DATA-TYPE", &v.Identifiable, v.Category)
	e.swDataDefProps(v.Props)
	if element := v.Element; element != nil {
		e.beginIdentifiable("ELEMENT", &element.Identifiable, element.Category)
		e.x.ref("TYPE-TREF", element.TypeRef)
		e.x.text("ARRAY-SIZE-HANDLING", string(element.ArraySizeHandling))
		e.x.text("ARRAY-SIZE-SEMANTICS", string(element.ArraySizeSemantics))
		e.x.intPtr("MAX-NUMBER-OF-ELEMENTS", element.MaxNumberOfElements)
		e.x.end("ELEMENT")
	}
	e.x.end("APPLICATION-ARRAY-DATA-TYPE")
}

func (e *arxmlEncoder) applicationRecord(v *types.ApplicationRecordDataType) {
	e.beginIdentifiable("APPLICATION-RECORD-DATA-TYPE", &v.Identifiable, v.Category)
	e.swDataDefProps(v.Props)
	if len(v.Elements) > 0 {
		e.x.begin("ELEMENTS")
		for _, element := range v.Elements {
			e.beginIdentifiable("APPLICATION-RECORD-ELEMENT", &element.Identifiable, element.Category)
			e.x.ref("TYPE-TREF", element.TypeRef)
			e.x.end("APPLICATION-RECORD-ELEMENT")
		}
		e.x.end("ELEMENTS")
	}
	e.x.end("APPLICATION-RECORD-DATA-TYPE")
}

func (e *arxmlEncoder) dataTypeMappingSet(v *types.DataTypeMappingSet) {
	e.beginIdentifiable("DATA-TYPE-MAPPING-SET", &v.Identifiable, "")
	if len(v.DataTypeMaps) > 0 {
		e.x.begin("DATA-TYPE-MAPS")
		for _, m := range v.DataTypeMaps {
			if m.ApplicationTypeRef.IsZero() && m.ImplementationTypeRef.IsZero() {
				e.x.empty("DATA-TYPE-MAP")
				continue
			}
			e.x.begin("DATA-TYPE-MAP")
			e.x.ref("APPLICATION-DATA-TYPE-REF", m.ApplicationTypeRef)
			e.x.ref("IMPLEMENTATION-DATA-TYPE-REF", m.ImplementationTypeRef)
			e.x.end("DATA-TYPE-MAP")
		}
		e.x.end("DATA-TYPE-MAPS")
	}
	if len(v.ModeRequestTypeMaps) > 0 {
		e.x.begin("MODE-REQUEST-TYPE-MAPS")
		for _, m := range v.ModeRequestTypeMaps {
			if m.ImplementationTypeRef.IsZero() && m.ModeGroupRef.IsZero() {
				e.x.empty("MODE-REQUEST-TYPE-MAP")
				continue
			}
			e.x.begin("MODE-REQUEST-TYPE-MAP")
			e.x.ref("IMPLEMENTATION-DATA-TYPE-REF", m.ImplementationTypeRef)
			e.x.ref("MODE-GROUP-REF", m.ModeGroupRef)
			e.x.end("MODE-REQUEST-TYPE-MAP")
		}
		e.x.end("MODE-REQUEST-TYPE-MAPS")
	}
	e.x.end("DATA-TYPE-MAPPING-SET")
}
