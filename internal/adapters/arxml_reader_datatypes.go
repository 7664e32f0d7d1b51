package adapters

import (
	"autosar-arxml/internal/types"
)

func (d *arxmlDecoder) swBaseType(n *xmlNode) (*types.SwBaseType, error) {
	v := &types.SwBaseType{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		switch c.tag {
		case "CATEGORY":
			v.Category = c.value()
		case "BASE-TYPE-SIZE":
			return readInt(c, &v.Size)
		case "BASE-TYPE-ENCODING":
			v.Encoding = c.value()
		case "MEM-ALIGNMENT":
			return readInt(c, &v.MemAlignment)
		case "BYTE-ORDER":
			return readEnum(c, &v.ByteOrder, types.ParseByteOrder)
		case "NATIVE-DECLARATION":
			v.NativeDeclaration = c.value()
		default:
			return unexpectedTag()
		}
		return nil
	})
	return v, err
}

func (d *arxmlDecoder) limit(n *xmlNode) (*types.Limit, error) {
	l := &types.Limit{}
	if interval, ok := n.attr("INTERVAL-TYPE"); ok {
		value, err := types.ParseIntervalType(interval)
		if err != nil {
			return nil, d.errorAt(n, err)
		}
		l.Interval = value
	}
	if n.value() != "" {
		if err := readNumber(n, &l.Value); err != nil {
			return nil, d.errorAt(n, err)
		}
	}
	return l, nil
}

func (d *arxmlDecoder) compuConst(n *xmlNode) (*types.CompuConst, error) {
	c := &types.CompuConst{}
	err := d.fields(n, nil, func(f *xmlNode) error {
		switch f.tag {
		case "VT":
			c.Text = f.rawValue()
		case "V":
			return readNumber(f, &c.Value)
		default:
			return unexpectedTag()
		}
		return nil
	})
	return c, err
}

func (d *arxmlDecoder) compuScale(n *xmlNode) (*types.CompuScale, error) {
	s := &types.CompuScale{}
	err := d.fields(n, nil, func(c *xmlNode) error {
		var err error
		switch c.tag {
		case "SHORT-LABEL":
			s.Label = c.rawValue()
		case "SYMBOL":
			s.Symbol = c.value()
		case "MASK":
			return readNumber(c, &s.Mask)
		case "LOWER-LIMIT":
			s.LowerLimit, err = d.limit(c)
		case "UPPER-LIMIT":
			s.UpperLimit, err = d.limit(c)
		case "COMPU-CONST":
			var content *types.CompuConst
			content, err = d.compuConst(c)
			s.Content = content
		case "COMPU-RATIONAL-COEFFS":
			coeffs := &types.RationalCoeffs{}
			err = d.fields(c, nil, func(cc *xmlNode) error {
				switch cc.tag {
				case "COMPU-NUMERATOR":
					return d.readNumbers(cc, &coeffs.Numerator)
				case "COMPU-DENOMINATOR":
					return d.readNumbers(cc, &coeffs.Denominator)
				}
				return unexpectedTag()
			})
			s.Content = coeffs
		default:
			return unexpectedTag()
		}
		return err
	})
	return s, err
}

func (d *arxmlDecoder) computation(n *xmlNode) (*types.Computation, error) {
	comp := &types.Computation{}
	err := d.fields(n, nil, func(c *xmlNode) error {
		switch c.tag {
		case "COMPU-SCALES":
			return d.fields(c, nil, func(sc *xmlNode) error {
				if sc.tag != "COMPU-SCALE" {
					return unexpectedTag()
				}
				scale, err := d.compuScale(sc)
				if err != nil {
					return err
				}
				comp.Scales = append(comp.Scales, *scale)
				return nil
			})
		case "COMPU-DEFAULT-VALUE":
			value, err := d.compuConst(c)
			comp.DefaultValue = value
			return err
		}
		return unexpectedTag()
	})
	return comp, err
}

func (d *arxmlDecoder) compuMethod(n *xmlNode) (*types.CompuMethod, error) {
	v := &types.CompuMethod{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		var err error
		switch c.tag {
		case "CATEGORY":
			v.Category = c.value()
		case "UNIT-REF":
			return readRef(c, &v.UnitRef)
		case "COMPU-INTERNAL-TO-PHYS":
			v.InternalToPhys, err = d.computation(c)
		case "COMPU-PHYS-TO-INTERNAL":
			v.PhysToInternal, err = d.computation(c)
		default:
			return unexpectedTag()
		}
		return err
	})
	return v, err
}

func (d *arxmlDecoder) scaleConstraint(n *xmlNode) (*types.ScaleConstraint, error) {
	s := &types.ScaleConstraint{}
	err := d.fields(n, nil, func(c *xmlNode) error {
		var err error
		switch c.tag {
		case "LOWER-LIMIT":
			s.LowerLimit, err = d.limit(c)
		case "UPPER-LIMIT":
			s.UpperLimit, err = d.limit(c)
		case "UNIT-REF":
			return readRef(c, &s.UnitRef)
		default:
			return unexpectedTag()
		}
		return err
	})
	return s, err
}

func (d *arxmlDecoder) dataConstraint(n *xmlNode) (*types.DataConstraint, error) {
	v := &types.DataConstraint{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		if c.tag != "DATA-CONSTR-RULES" {
			return unexpectedTag()
		}
		return d.fields(c, nil, func(rc *xmlNode) error {
			if rc.tag != "DATA-CONSTR-RULE" {
				return unexpectedTag()
			}
			var rule types.DataConstraintRule
			err := d.fields(rc, nil, func(f *xmlNode) error {
				var err error
				switch f.tag {
				case "CONSTR-LEVEL":
					return readInt(f, &rule.Level)
				case "PHYS-CONSTRS":
					rule.Phys, err = d.scaleConstraint(f)
				case "INTERNAL-CONSTRS":
					rule.Internal, err = d.scaleConstraint(f)
				default:
					return unexpectedTag()
				}
				return err
			})
			v.Rules = append(v.Rules, rule)
			return err
		})
	})
	return v, err
}

func (d *arxmlDecoder) unit(n *xmlNode) (*types.Unit, error) {
	v := &types.Unit{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		switch c.tag {
		case "DISPLAY-NAME":
			v.DisplayName = c.rawValue()
		case "FACTOR-SI-TO-UNIT":
			return readFloat(c, &v.FactorSIToUnit)
		case "OFFSET-SI-TO-UNIT":
			return readFloat(c, &v.OffsetSIToUnit)
		case "PHYSICAL-DIMENSION-REF":
			return readRef(c, &v.PhysicalDimensionRef)
		default:
			return unexpectedTag()
		}
		return nil
	})
	return v, err
}

// swDataDefProps reads the single conditional variant.
func (d *arxmlDecoder) swDataDefProps(n *xmlNode) (*types.SwDataDefProps, error) {
	p := &types.SwDataDefProps{}
	err := d.fields(n, nil, func(vc *xmlNode) error {
		if vc.tag != "SW-DATA-DEF-PROPS-VARIANTS" {
			return unexpectedTag()
		}
		return d.fields(vc, nil, func(cc *xmlNode) error {
			if cc.tag != "SW-DATA-DEF-PROPS-CONDITIONAL" {
				return unexpectedTag()
			}
			return d.fields(cc, nil, func(c *xmlNode) error {
				return d.swDataDefPropsField(p, c)
			})
		})
	})
	return p, err
}

func (d *arxmlDecoder) swDataDefPropsField(p *types.SwDataDefProps, c *xmlNode) error {
	switch c.tag {
	case "BASE-TYPE-REF":
		return readRef(c, &p.BaseTypeRef)
	case "SW-CALIBRATION-ACCESS":
		return readEnum(c, &p.CalibrationAccess, types.ParseSwCalibrationAccess)
	case "DISPLAY-FORMAT":
		p.DisplayFormat = c.value()
	case "COMPU-METHOD-REF":
		return readRef(c, &p.CompuMethodRef)
	case "DATA-CONSTR-REF":
		return readRef(c, &p.DataConstraintRef)
	case "SW-IMPL-POLICY":
		return readEnum(c, &p.ImplPolicy, types.ParseSwImplPolicy)
	case "IMPLEMENTATION-DATA-TYPE-REF":
		return readRef(c, &p.ImplementationTypeRef)
	case "SW-POINTER-TARGET-PROPS":
		target := &types.SwPointerTargetProps{}
		err := d.fields(c, nil, func(tc *xmlNode) error {
			switch tc.tag {
			case "TARGET-CATEGORY":
				target.TargetCategory = tc.value()
				return nil
			case "SW-DATA-DEF-PROPS":
				props, err := d.swDataDefProps(tc)
				target.Props = props
				return err
			}
			return unexpectedTag()
		})
		p.PointerTargetProps = target
		return err
	case "UNIT-REF":
		return readRef(c, &p.UnitRef)
	default:
		return unexpectedTag()
	}
	return nil
}

// buildLayout maps CATEGORY text and the parsed substructure to a layout.
func buildLayout(owner string, category string, props *types.SwDataDefProps, elements []*types.ImplementationDataTypeElement) (types.Layout, error) {
	var flat types.SwDataDefProps
	if props != nil {
		flat = *props
	}
	switch category {
	case types.CategoryValue:
		return types.ValueLayout{Props: flat}, nil
	case types.CategoryTypeReference:
		return types.TypeReferenceLayout{Props: flat}, nil
	case types.CategoryDataReference:
		return types.DataReferenceLayout{Props: flat}, nil
	case types.CategoryArray:
		layout := types.ArrayLayout{Props: props}
		if len(elements) > 1 {
			return nil, invalidTag(owner + ": category ARRAY requires exactly one sub-element")
		}
		if len(elements) == 1 {
			layout.Element = elements[0]
		}
		return layout, nil
	case types.CategoryStructure:
		return types.StructureLayout{Props: props, Elements: elements}, nil
	}
	return nil, types.UnsupportedCategoryError(owner, category)
}

func (d *arxmlDecoder) subElements(n *xmlNode) ([]*types.ImplementationDataTypeElement, error) {
	var elements []*types.ImplementationDataTypeElement
	err := d.fields(n, nil, func(c *xmlNode) error {
		if c.tag != "IMPLEMENTATION-DATA-TYPE-ELEMENT" {
			return unexpectedTag()
		}
		element, err := d.implementationElement(c)
		if err != nil {
			return err
		}
		elements = append(elements, element)
		return nil
	})
	return elements, err
}

func (d *arxmlDecoder) implementationDataType(n *xmlNode) (*types.ImplementationDataType, error) {
	v := &types.ImplementationDataType{}
	var category string
	var props *types.SwDataDefProps
	var elements []*types.ImplementationDataTypeElement
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		var err error
		switch c.tag {
		case "CATEGORY":
			category = c.value()
		case "SW-DATA-DEF-PROPS":
			props, err = d.swDataDefProps(c)
		case "SUB-ELEMENTS":
			elements, err = d.subElements(c)
		case "TYPE-EMITTER":
			v.TypeEmitter = c.value()
		default:
			return unexpectedTag()
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	owner := "IMPLEMENTATION-DATA-TYPE " + v.Name
	layout, err := buildLayout(owner, category, props, elements)
	if err == nil {
		err = v.SetLayout(layout)
	}
	if err != nil {
		return nil, d.errorAt(n, err)
	}
	return v, nil
}

func (d *arxmlDecoder) implementationElement(n *xmlNode) (*types.ImplementationDataTypeElement, error) {
	v := &types.ImplementationDataTypeElement{}
	var category string
	var props *types.SwDataDefProps
	var elements []*types.ImplementationDataTypeElement
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		var err error
		switch c.tag {
		case "CATEGORY":
			category = c.value()
		case "ARRAY-IMPL-POLICY":
			return readEnum(c, &v.ArrayImplPolicy, types.ParseArrayImplPolicy)
		case "ARRAY-SIZE":
			return readInt(c, &v.ArraySize)
		case "ARRAY-SIZE-HANDLING":
			return readEnum(c, &v.ArraySizeHandling, types.ParseArraySizeHandling)
		case "ARRAY-SIZE-SEMANTICS":
			return readEnum(c, &v.ArraySizeSemantics, types.ParseArraySizeSemantics)
		case "IS-OPTIONAL":
			return readBool(c, &v.IsOptional)
		case "SUB-ELEMENTS":
			elements, err = d.subElements(c)
		case "SW-DATA-DEF-PROPS":
			props, err = d.swDataDefProps(c)
		default:
			return unexpectedTag()
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	layout, err := buildLayout("IMPLEMENTATION-DATA-TYPE-ELEMENT "+v.Name, category, props, elements)
	if err != nil {
		return nil, d.errorAt(n, err)
	}
	v.Layout = layout
	return v, nil
}

func (d *arxmlDecoder) applicationPrimitive(n *xmlNode) (*types.ApplicationPrimitiveDataType, error) {
	v := &types.ApplicationPrimitiveDataType{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		var err error
		switch c.tag {
		case "CATEGORY":
			v.Category = c.value()
		case "SW-DATA-DEF-PROPS":
			v.Props, err = d.swDataDefProps(c)
		default:
			return unexpectedTag()
		}
		return err
	})
	return v, err
}

func (d *arxmlDecoder) applicationArray(n *xmlNode) (*types.ApplicationArrayDataType, error) {
	v := &types.ApplicationArrayDataType{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		var err error
		switch c.tag {
		case "CATEGORY":
			v.Category = c.value()
		case "SW-DATA-DEF-PROPS":
			v.Props, err = d.swDataDefProps(c)
		case "ELEMENT":
			element := &types.ApplicationArrayElement{}
			err = d.fields(c, &element.Identifiable, func(ec *xmlNode) error {
				switch ec.tag {
				case "CATEGORY":
					element.Category = ec.value()
				case "TYPE-TREF":
					return readRef(ec, &element.TypeRef)
				case "ARRAY-SIZE-HANDLING":
					return readEnum(ec, &element.ArraySizeHandling, types.ParseArraySizeHandling)
				case "ARRAY-SIZE-SEMANTICS":
					return readEnum(ec, &element.ArraySizeSemantics, types.ParseArraySizeSemantics)
				case "MAX-NUMBER-OF-ELEMENTS":
					return readInt(ec, &element.MaxNumberOfElements)
				default:
					return unexpectedTag()
				}
				return nil
			})
			v.Element = element
		default:
			return unexpectedTag()
		}
		return err
	})
	return v, err
}

func (d *arxmlDecoder) applicationRecord(n *xmlNode) (*types.ApplicationRecordDataType, error) {
	v := &types.ApplicationRecordDataType{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		var err error
		switch c.tag {
		case "CATEGORY":
			v.Category = c.value()
		case "SW-DATA-DEF-PROPS":
			v.Props, err = d.swDataDefProps(c)
		case "ELEMENTS":
			err = d.fields(c, nil, func(ec *xmlNode) error {
				if ec.tag != "APPLICATION-RECORD-ELEMENT" {
					return unexpectedTag()
				}
				element := &types.ApplicationRecordElement{}
				err := d.fields(ec, &element.Identifiable, func(f *xmlNode) error {
					switch f.tag {
					case "CATEGORY":
						element.Category = f.value()
					case "TYPE-TREF":
						return readRef(f, &element.TypeRef)
					default:
						return unexpectedTag()
					}
					return nil
				})
				if err != nil {
					return err
				}
				return v.AppendElement(element)
			})
		default:
			return unexpectedTag()
		}
		return err
	})
	return v, err
}

func (d *arxmlDecoder) dataTypeMappingSet(n *xmlNode) (*types.DataTypeMappingSet, error) {
	v := &types.DataTypeMappingSet{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		switch c.tag {
		case "DATA-TYPE-MAPS":
			return d.fields(c, nil, func(mc *xmlNode) error {
				if mc.tag != "DATA-TYPE-MAP" {
					return unexpectedTag()
				}
				var m types.DataTypeMap
				err := d.fields(mc, nil, func(f *xmlNode) error {
					switch f.tag {
					case "APPLICATION-DATA-TYPE-REF":
						return readRef(f, &m.ApplicationTypeRef)
					case "IMPLEMENTATION-DATA-TYPE-REF":
						return readRef(f, &m.ImplementationTypeRef)
					}
					return unexpectedTag()
				})
				v.DataTypeMaps = append(v.DataTypeMaps, m)
				return err
			})
		case "MODE-REQUEST-TYPE-MAPS":
			return d.fields(c, nil, func(mc *xmlNode) error {
				if mc.tag != "MODE-REQUEST-TYPE-MAP" {
					return unexpectedTag()
				}
				var m types.ModeRequestTypeMap
				err := d.fields(mc, nil, func(f *xmlNode) error {
					switch f.tag {
					case "IMPLEMENTATION-DATA-TYPE-REF":
						return readRef(f, &m.ImplementationTypeRef)
					case "MODE-GROUP-REF":
						return readRef(f, &m.ModeGroupRef)
					}
					return unexpectedTag()
				})
				v.ModeRequestTypeMaps = append(v.ModeRequestTypeMaps, m)
				return err
			})
		}
		return unexpectedTag()
	})
	return v, err
}
