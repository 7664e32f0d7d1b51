package adapters

import (
	"autosar-arxml/internal/types"
)

var valueSpecTags = map[string]struct{}{
	"TEXT-VALUE-SPECIFICATION":          {},
	"NUMERICAL-VALUE-SPECIFICATION":     {},
	"NOT-AVAILABLE-VALUE-SPECIFICATION": {},
	"ARRAY-VALUE-SPECIFICATION":         {},
	"RECORD-VALUE-SPECIFICATION":        {},
	"APPLICATION-VALUE-SPECIFICATION":   {},
	"CONSTANT-REFERENCE":                {},
}

var requiredComSpecTags = map[string]struct{}{
	"NONQUEUED-RECEIVER-COM-SPEC":   {},
	"QUEUED-RECEIVER-COM-SPEC":      {},
	"CLIENT-COM-SPEC":               {},
	"MODE-SWITCH-RECEIVER-COM-SPEC": {},
	"PARAMETER-REQUIRE-COM-SPEC":    {},
}

var providedComSpecTags = map[string]struct{}{
	"NONQUEUED-SENDER-COM-SPEC":   {},
	"QUEUED-SENDER-COM-SPEC":      {},
	"SERVER-COM-SPEC":             {},
	"MODE-SWITCH-SENDER-COM-SPEC": {},
}

func (d *arxmlDecoder) valueSpec(n *xmlNode) (types.ValueSpecification, error) {
	switch n.tag {
	case "TEXT-VALUE-SPECIFICATION":
		v := &types.TextValue{}
		return v, d.fields(n, nil, func(c *xmlNode) error {
			switch c.tag {
			case "SHORT-LABEL":
				v.Label = c.rawValue()
			case "VALUE":
				v.Value = c.rawValue()
			default:
				return unexpectedTag()
			}
			return nil
		})
	case "NUMERICAL-VALUE-SPECIFICATION":
		v := &types.NumericalValue{}
		return v, d.fields(n, nil, func(c *xmlNode) error {
			switch c.tag {
			case "SHORT-LABEL":
				v.Label = c.rawValue()
			case "VALUE":
				return readNumber(c, &v.Value)
			default:
				return unexpectedTag()
			}
			return nil
		})
	case "NOT-AVAILABLE-VALUE-SPECIFICATION":
		v := &types.NotAvailableValue{}
		return v, d.fields(n, nil, func(c *xmlNode) error {
			switch c.tag {
			case "SHORT-LABEL":
				v.Label = c.rawValue()
			case "DEFAULT-PATTERN":
				return readInt(c, &v.DefaultPattern)
			default:
				return unexpectedTag()
			}
			return nil
		})
	case "ARRAY-VALUE-SPECIFICATION":
		v := &types.ArrayValue{}
		return v, d.fields(n, nil, func(c *xmlNode) error {
			switch c.tag {
			case "SHORT-LABEL":
				v.Label = c.rawValue()
			case "INTENDED-PARTIAL-INITIALIZATION-COUNT":
				return readInt(c, &v.IntendedPartialInitializationCount)
			case "ELEMENTS":
				elements, err := d.valueSpecs(c)
				v.Elements = elements
				return err
			default:
				return unexpectedTag()
			}
			return nil
		})
	case "RECORD-VALUE-SPECIFICATION":
		v := &types.RecordValue{}
		return v, d.fields(n, nil, func(c *xmlNode) error {
			switch c.tag {
			case "SHORT-LABEL":
				v.Label = c.rawValue()
			case "FIELDS":
				fields, err := d.valueSpecs(c)
				v.Fields = fields
				return err
			default:
				return unexpectedTag()
			}
			return nil
		})
	case "APPLICATION-VALUE-SPECIFICATION":
		return d.applicationValue(n)
	case "CONSTANT-REFERENCE":
		v := &types.ConstantReference{}
		return v, d.fields(n, nil, func(c *xmlNode) error {
			switch c.tag {
			case "SHORT-LABEL":
				v.Label = c.rawValue()
			case "CONSTANT-REF":
				return readRef(c, &v.ConstantRef)
			default:
				return unexpectedTag()
			}
			return nil
		})
	}
	return nil, d.errorAt(n, invalidTag("unsupported value specification"))
}

func (d *arxmlDecoder) valueSpecs(n *xmlNode) ([]types.ValueSpecification, error) {
	var values []types.ValueSpecification
	err := d.fields(n, nil, func(c *xmlNode) error {
		value, err := d.valueSpec(c)
		if err != nil {
			return err
		}
		values = append(values, value)
		return nil
	})
	return values, err
}

// optionalValue reads the single value specification inside a role tag.
func (d *arxmlDecoder) optionalValue(n *xmlNode) (types.ValueSpecification, error) {
	var value types.ValueSpecification
	err := d.fields(n, nil, func(c *xmlNode) error {
		if value != nil {
			return invalidTag("more than one value specification")
		}
		var err error
		value, err = d.valueSpec(c)
		return err
	})
	return value, err
}

func (d *arxmlDecoder) swValues(n *xmlNode, dst *[]types.SwValue) error {
	return d.fields(n, nil, func(c *xmlNode) error {
		switch c.tag {
		case "V":
			var value types.Number
			if err := readNumber(c, &value); err != nil {
				return err
			}
			*dst = append(*dst, types.SwValue{V: value})
		case "VT":
			*dst = append(*dst, types.SwValue{VT: c.rawValue()})
		default:
			return unexpectedTag()
		}
		return nil
	})
}

func (d *arxmlDecoder) applicationValue(n *xmlNode) (*types.ApplicationValue, error) {
	v := &types.ApplicationValue{}
	err := d.fields(n, nil, func(c *xmlNode) error {
		switch c.tag {
		case "SHORT-LABEL":
			v.Label = c.rawValue()
		case "CATEGORY":
			v.Category = c.value()
		case "SW-AXIS-CONTS":
			return d.fields(c, nil, func(ac *xmlNode) error {
				if ac.tag != "SW-AXIS-CONT" {
					return unexpectedTag()
				}
				var axis types.SwAxisCont
				err := d.fields(ac, nil, func(f *xmlNode) error {
					switch f.tag {
					case "CATEGORY":
						axis.Category = f.value()
					case "UNIT-REF":
						return readRef(f, &axis.UnitRef)
					case "SW-AXIS-INDEX":
						return readInt(f, &axis.AxisIndex)
					case "SW-ARRAYSIZE":
						return d.readNumbers(f, &axis.ArraySize)
					case "SW-VALUES-PHYS":
						return d.swValues(f, &axis.Values)
					default:
						return unexpectedTag()
					}
					return nil
				})
				v.AxisConts = append(v.AxisConts, axis)
				return err
			})
		case "SW-VALUE-CONT":
			cont := &types.SwValueCont{}
			v.ValueCont = cont
			return d.fields(c, nil, func(f *xmlNode) error {
				switch f.tag {
				case "UNIT-REF":
					return readRef(f, &cont.UnitRef)
				case "SW-ARRAYSIZE":
					return d.readNumbers(f, &cont.ArraySize)
				case "SW-VALUES-PHYS":
					return d.swValues(f, &cont.Values)
				}
				return unexpectedTag()
			})
		default:
			return unexpectedTag()
		}
		return nil
	})
	return v, err
}

func (d *arxmlDecoder) constantSpecification(n *xmlNode) (*types.ConstantSpecification, error) {
	v := &types.ConstantSpecification{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		if c.tag != "VALUE-SPEC" {
			return unexpectedTag()
		}
		value, err := d.optionalValue(c)
		v.Value = value
		return err
	})
	return v, err
}

func (d *arxmlDecoder) modeDeclaration(n *xmlNode) (*types.ModeDeclaration, error) {
	v := &types.ModeDeclaration{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		if c.tag != "VALUE" {
			return unexpectedTag()
		}
		return readInt(c, &v.Value)
	})
	return v, err
}

func (d *arxmlDecoder) modeDeclarationGroup(n *xmlNode) (*types.ModeDeclarationGroup, error) {
	v := &types.ModeDeclarationGroup{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		switch c.tag {
		case "CATEGORY":
			v.Category = c.value()
		case "INITIAL-MODE-REF":
			return readRef(c, &v.InitialModeRef)
		case "MODE-DECLARATIONS":
			return d.fields(c, nil, func(mc *xmlNode) error {
				if mc.tag != "MODE-DECLARATION" {
					return unexpectedTag()
				}
				mode, err := d.modeDeclaration(mc)
				if err != nil {
					return err
				}
				return v.AppendModeDeclaration(mode)
			})
		case "ON-TRANSITION-VALUE":
			return readInt(c, &v.OnTransitionValue)
		default:
			return unexpectedTag()
		}
		return nil
	})
	return v, err
}

func (d *arxmlDecoder) variableDataPrototype(n *xmlNode) (*types.VariableDataPrototype, error) {
	v := &types.VariableDataPrototype{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		var err error
		switch c.tag {
		case "SW-DATA-DEF-PROPS":
			v.Props, err = d.swDataDefProps(c)
		case "TYPE-TREF":
			return readRef(c, &v.TypeRef)
		case "INIT-VALUE":
			v.InitValue, err = d.optionalValue(c)
		default:
			return unexpectedTag()
		}
		return err
	})
	return v, err
}

func (d *arxmlDecoder) parameterDataPrototype(n *xmlNode) (*types.ParameterDataPrototype, error) {
	v := &types.ParameterDataPrototype{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		var err error
		switch c.tag {
		case "SW-DATA-DEF-PROPS":
			v.Props, err = d.swDataDefProps(c)
		case "TYPE-TREF":
			return readRef(c, &v.TypeRef)
		case "INIT-VALUE":
			v.InitValue, err = d.optionalValue(c)
		default:
			return unexpectedTag()
		}
		return err
	})
	return v, err
}

// dataElements reads a list of VARIABLE-DATA-PROTOTYPE into appendFn.
func (d *arxmlDecoder) dataElements(n *xmlNode, appendFn func(*types.VariableDataPrototype) error) error {
	return d.fields(n, nil, func(c *xmlNode) error {
		if c.tag != "VARIABLE-DATA-PROTOTYPE" {
			return unexpectedTag()
		}
		element, err := d.variableDataPrototype(c)
		if err != nil {
			return err
		}
		return appendFn(element)
	})
}

func (d *arxmlDecoder) senderReceiverInterface(n *xmlNode) (*types.SenderReceiverInterface, error) {
	v := &types.SenderReceiverInterface{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		switch c.tag {
		case "IS-SERVICE":
			return readBool(c, &v.IsService)
		case "DATA-ELEMENTS":
			return d.dataElements(c, v.AppendDataElement)
		}
		return unexpectedTag()
	})
	return v, err
}

func (d *arxmlDecoder) nvDataInterface(n *xmlNode) (*types.NvDataInterface, error) {
	v := &types.NvDataInterface{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		switch c.tag {
		case "IS-SERVICE":
			return readBool(c, &v.IsService)
		case "NV-DATAS":
			return d.dataElements(c, v.AppendNvData)
		}
		return unexpectedTag()
	})
	return v, err
}

func (d *arxmlDecoder) parameterInterface(n *xmlNode) (*types.ParameterInterface, error) {
	v := &types.ParameterInterface{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		switch c.tag {
		case "IS-SERVICE":
			return readBool(c, &v.IsService)
		case "PARAMETERS":
			return d.fields(c, nil, func(pc *xmlNode) error {
				if pc.tag != "PARAMETER-DATA-PROTOTYPE" {
					return unexpectedTag()
				}
				parameter, err := d.parameterDataPrototype(pc)
				if err != nil {
					return err
				}
				return v.AppendParameter(parameter)
			})
		}
		return unexpectedTag()
	})
	return v, err
}

func (d *arxmlDecoder) argument(n *xmlNode) (*types.ArgumentDataPrototype, error) {
	v := &types.ArgumentDataPrototype{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		var err error
		switch c.tag {
		case "SW-DATA-DEF-PROPS":
			v.Props, err = d.swDataDefProps(c)
		case "TYPE-TREF":
			return readRef(c, &v.TypeRef)
		case "DIRECTION":
			return readEnum(c, &v.Direction, types.ParseArgumentDirection)
		case "SERVER-ARGUMENT-IMPL-POLICY":
			return readEnum(c, &v.ServerArgumentImplPolicy, types.ParseServerArgumentImplPolicy)
		default:
			return unexpectedTag()
		}
		return err
	})
	return v, err
}

func (d *arxmlDecoder) operation(n *xmlNode) (*types.ClientServerOperation, error) {
	v := &types.ClientServerOperation{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		switch c.tag {
		case "ARGUMENTS":
			return d.fields(c, nil, func(ac *xmlNode) error {
				if ac.tag != "ARGUMENT-DATA-PROTOTYPE" {
					return unexpectedTag()
				}
				argument, err := d.argument(ac)
				if err != nil {
					return err
				}
				return v.AppendArgument(argument)
			})
		case "POSSIBLE-ERROR-REFS":
			return d.fields(c, nil, func(rc *xmlNode) error {
				if rc.tag != "POSSIBLE-ERROR-REF" {
					return unexpectedTag()
				}
				var ref types.ApplicationErrorRef
				if err := readRef(rc, &ref); err != nil {
					return err
				}
				v.PossibleErrorRefs = append(v.PossibleErrorRefs, ref)
				return nil
			})
		}
		return unexpectedTag()
	})
	return v, err
}

func (d *arxmlDecoder) clientServerInterface(n *xmlNode) (*types.ClientServerInterface, error) {
	v := &types.ClientServerInterface{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		switch c.tag {
		case "IS-SERVICE":
			return readBool(c, &v.IsService)
		case "OPERATIONS":
			return d.fields(c, nil, func(oc *xmlNode) error {
				if oc.tag != "CLIENT-SERVER-OPERATION" {
					return unexpectedTag()
				}
				operation, err := d.operation(oc)
				if err != nil {
					return err
				}
				return v.AppendOperation(operation)
			})
		case "POSSIBLE-ERRORS":
			return d.fields(c, nil, func(ec *xmlNode) error {
				if ec.tag != "APPLICATION-ERROR" {
					return unexpectedTag()
				}
				appErr := &types.ApplicationError{}
				err := d.fields(ec, &appErr.Identifiable, func(f *xmlNode) error {
					if f.tag != "ERROR-CODE" {
						return unexpectedTag()
					}
					return readInt(f, &appErr.ErrorCode)
				})
				if err != nil {
					return err
				}
				return v.AppendPossibleError(appErr)
			})
		}
		return unexpectedTag()
	})
	return v, err
}

func (d *arxmlDecoder) modeSwitchInterface(n *xmlNode) (*types.ModeSwitchInterface, error) {
	v := &types.ModeSwitchInterface{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		switch c.tag {
		case "IS-SERVICE":
			return readBool(c, &v.IsService)
		case "MODE-GROUP":
			group := &types.ModeDeclarationGroupPrototype{}
			v.ModeGroup = group
			return d.fields(c, &group.Identifiable, func(f *xmlNode) error {
				if f.tag != "TYPE-TREF" {
					return unexpectedTag()
				}
				return readRef(f, &group.TypeRef)
			})
		}
		return unexpectedTag()
	})
	return v, err
}

func (d *arxmlDecoder) dataFilter(n *xmlNode) (*types.DataFilter, error) {
	f := &types.DataFilter{}
	err := d.fields(n, nil, func(c *xmlNode) error {
		switch c.tag {
		case "DATA-FILTER-TYPE":
			return readEnum(c, &f.Type, types.ParseDataFilterType)
		case "MASK":
			return readNumber(c, &f.Mask)
		case "MAX":
			return readNumber(c, &f.Max)
		case "MIN":
			return readNumber(c, &f.Min)
		case "OFFSET":
			return readInt(c, &f.Offset)
		case "PERIOD":
			return readInt(c, &f.Period)
		case "X":
			return readNumber(c, &f.X)
		}
		return unexpectedTag()
	})
	return f, err
}

func (d *arxmlDecoder) requiredComSpec(n *xmlNode) (types.RequiredComSpec, error) {
	switch n.tag {
	case "NONQUEUED-RECEIVER-COM-SPEC":
		c := &types.NonqueuedReceiverComSpec{}
		return c, d.fields(n, nil, func(f *xmlNode) error {
			var err error
			switch f.tag {
			case "DATA-ELEMENT-REF":
				return readRef(f, &c.DataElementRef)
			case "USES-END-TO-END-PROTECTION":
				return readBool(f, &c.UsesEndToEndProtection)
			case "ALIVE-TIMEOUT":
				return readFloat(f, &c.AliveTimeout)
			case "ENABLE-UPDATE":
				return readBool(f, &c.EnableUpdate)
			case "FILTER":
				c.Filter, err = d.dataFilter(f)
			case "HANDLE-NEVER-RECEIVED":
				return readBool(f, &c.HandleNeverReceived)
			case "HANDLE-TIMEOUT-TYPE":
				c.HandleTimeoutType = f.value()
			case "INIT-VALUE":
				c.InitValue, err = d.optionalValue(f)
			default:
				return unexpectedTag()
			}
			return err
		})
	case "QUEUED-RECEIVER-COM-SPEC":
		c := &types.QueuedReceiverComSpec{}
		return c, d.fields(n, nil, func(f *xmlNode) error {
			switch f.tag {
			case "DATA-ELEMENT-REF":
				return readRef(f, &c.DataElementRef)
			case "USES-END-TO-END-PROTECTION":
				return readBool(f, &c.UsesEndToEndProtection)
			case "QUEUE-LENGTH":
				return readInt(f, &c.QueueLength)
			}
			return unexpectedTag()
		})
	case "CLIENT-COM-SPEC":
		c := &types.ClientComSpec{}
		return c, d.fields(n, nil, func(f *xmlNode) error {
			if f.tag != "OPERATION-REF" {
				return unexpectedTag()
			}
			return readRef(f, &c.OperationRef)
		})
	case "MODE-SWITCH-RECEIVER-COM-SPEC":
		c := &types.ModeSwitchReceiverComSpec{}
		return c, d.fields(n, nil, func(f *xmlNode) error {
			switch f.tag {
			case "ENHANCED-MODE-API":
				return readBool(f, &c.EnhancedModeAPI)
			case "MODE-GROUP-REF":
				return readRef(f, &c.ModeGroupRef)
			case "SUPPORTS-ASYNCHRONOUS-MODE-SWITCH":
				return readBool(f, &c.SupportsAsynchronousModeSwitch)
			}
			return unexpectedTag()
		})
	case "PARAMETER-REQUIRE-COM-SPEC":
		c := &types.ParameterRequireComSpec{}
		return c, d.fields(n, nil, func(f *xmlNode) error {
			var err error
			switch f.tag {
			case "INIT-VALUE":
				c.InitValue, err = d.optionalValue(f)
			case "PARAMETER-REF":
				return readRef(f, &c.ParameterRef)
			default:
				return unexpectedTag()
			}
			return err
		})
	}
	return nil, d.errorAt(n, invalidTag("unsupported required com-spec"))
}

func (d *arxmlDecoder) providedComSpec(n *xmlNode) (types.ProvidedComSpec, error) {
	switch n.tag {
	case "NONQUEUED-SENDER-COM-SPEC":
		c := &types.NonqueuedSenderComSpec{}
		return c, d.fields(n, nil, func(f *xmlNode) error {
			var err error
			switch f.tag {
			case "DATA-ELEMENT-REF":
				return readRef(f, &c.DataElementRef)
			case "USES-END-TO-END-PROTECTION":
				return readBool(f, &c.UsesEndToEndProtection)
			case "INIT-VALUE":
				c.InitValue, err = d.optionalValue(f)
			default:
				return unexpectedTag()
			}
			return err
		})
	case "QUEUED-SENDER-COM-SPEC":
		c := &types.QueuedSenderComSpec{}
		return c, d.fields(n, nil, func(f *xmlNode) error {
			switch f.tag {
			case "DATA-ELEMENT-REF":
				return readRef(f, &c.DataElementRef)
			case "USES-END-TO-END-PROTECTION":
				return readBool(f, &c.UsesEndToEndProtection)
			}
			return unexpectedTag()
		})
	case "SERVER-COM-SPEC":
		c := &types.ServerComSpec{}
		return c, d.fields(n, nil, func(f *xmlNode) error {
			switch f.tag {
			case "OPERATION-REF":
				return readRef(f, &c.OperationRef)
			case "QUEUE-LENGTH":
				return readInt(f, &c.QueueLength)
			}
			return unexpectedTag()
		})
	case "MODE-SWITCH-SENDER-COM-SPEC":
		c := &types.ModeSwitchSenderComSpec{}
		return c, d.fields(n, nil, func(f *xmlNode) error {
			switch f.tag {
			case "ENHANCED-MODE-API":
				return readBool(f, &c.EnhancedModeAPI)
			case "MODE-GROUP-REF":
				return readRef(f, &c.ModeGroupRef)
			case "MODE-SWITCHED-ACK":
				return d.fields(f, nil, func(ac *xmlNode) error {
					if ac.tag != "TIMEOUT" {
						return unexpectedTag()
					}
					return readFloat(ac, &c.ModeSwitchedAckTimeout)
				})
			case "QUEUE-LENGTH":
				return readInt(f, &c.QueueLength)
			}
			return unexpectedTag()
		})
	}
	return nil, d.errorAt(n, invalidTag("unsupported provided com-spec"))
}

func (d *arxmlDecoder) requiredComSpecs(n *xmlNode, dst *[]types.RequiredComSpec) error {
	return d.fields(n, nil, func(c *xmlNode) error {
		spec, err := d.requiredComSpec(c)
		if err != nil {
			return err
		}
		*dst = append(*dst, spec)
		return nil
	})
}

func (d *arxmlDecoder) providedComSpecs(n *xmlNode, dst *[]types.ProvidedComSpec) error {
	return d.fields(n, nil, func(c *xmlNode) error {
		spec, err := d.providedComSpec(c)
		if err != nil {
			return err
		}
		*dst = append(*dst, spec)
		return nil
	})
}

func (d *arxmlDecoder) port(n *xmlNode) (types.PortPrototype, error) {
	switch n.tag {
	case "R-PORT-PROTOTYPE":
		p := &types.RPortPrototype{}
		err := d.fields(n, &p.Identifiable, func(c *xmlNode) error {
			switch c.tag {
			case "REQUIRED-COM-SPECS":
				return d.requiredComSpecs(c, &p.ComSpecs)
			case "REQUIRED-INTERFACE-TREF":
				return readRef(c, &p.RequiredInterfaceRef)
			}
			return unexpectedTag()
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	case "P-PORT-PROTOTYPE":
		p := &types.PPortPrototype{}
		err := d.fields(n, &p.Identifiable, func(c *xmlNode) error {
			switch c.tag {
			case "PROVIDED-COM-SPECS":
				return d.providedComSpecs(c, &p.ComSpecs)
			case "PROVIDED-INTERFACE-TREF":
				return readRef(c, &p.ProvidedInterfaceRef)
			}
			return unexpectedTag()
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	case "PR-PORT-PROTOTYPE":
		p := &types.PRPortPrototype{}
		err := d.fields(n, &p.Identifiable, func(c *xmlNode) error {
			switch c.tag {
			case "PROVIDED-COM-SPECS":
				return d.providedComSpecs(c, &p.ProvidedComSpecs)
			case "REQUIRED-COM-SPECS":
				return d.requiredComSpecs(c, &p.RequiredComSpecs)
			case "PROVIDED-REQUIRED-INTERFACE-TREF":
				return readRef(c, &p.ProvidedRequiredInterfaceRef)
			}
			return unexpectedTag()
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, d.errorAt(n, invalidTag("unsupported port prototype"))
}

// ports reads PORTS into a component through its AppendPort.
func (d *arxmlDecoder) ports(n *xmlNode, component types.SwComponentType) error {
	return d.fields(n, nil, func(c *xmlNode) error {
		port, err := d.port(c)
		if err != nil {
			return err
		}
		return component.AppendPort(port)
	})
}

// atomicComponent reads the PORTS of a component without internal structure.
func (d *arxmlDecoder) atomicComponent(n *xmlNode, id *types.Identifiable, component types.SwComponentType) error {
	return d.fields(n, id, func(c *xmlNode) error {
		if c.tag != "PORTS" {
			return unexpectedTag()
		}
		return d.ports(c, component)
	})
}

func (d *arxmlDecoder) applicationComponent(n *xmlNode) (*types.ApplicationSwComponentType, error) {
	v := &types.ApplicationSwComponentType{}
	return v, d.atomicComponent(n, &v.Identifiable, v)
}

func (d *arxmlDecoder) complexDeviceDriverComponent(n *xmlNode) (*types.ComplexDeviceDriverSwComponentType, error) {
	v := &types.ComplexDeviceDriverSwComponentType{}
	return v, d.atomicComponent(n, &v.Identifiable, v)
}

func (d *arxmlDecoder) sensorActuatorComponent(n *xmlNode) (*types.SensorActuatorSwComponentType, error) {
	v := &types.SensorActuatorSwComponentType{}
	return v, d.atomicComponent(n, &v.Identifiable, v)
}

func (d *arxmlDecoder) serviceComponent(n *xmlNode) (*types.ServiceSwComponentType, error) {
	v := &types.ServiceSwComponentType{}
	return v, d.atomicComponent(n, &v.Identifiable, v)
}

func (d *arxmlDecoder) pPortInstance(n *xmlNode) (*types.PPortInstanceRef, error) {
	iref := &types.PPortInstanceRef{}
	err := d.fields(n, nil, func(c *xmlNode) error {
		switch c.tag {
		case "CONTEXT-COMPONENT-REF":
			return readRef(c, &iref.ContextComponentRef)
		case "TARGET-P-PORT-REF":
			return readRef(c, &iref.TargetPortRef)
		}
		return unexpectedTag()
	})
	return iref, err
}

func (d *arxmlDecoder) rPortInstance(n *xmlNode) (*types.RPortInstanceRef, error) {
	iref := &types.RPortInstanceRef{}
	err := d.fields(n, nil, func(c *xmlNode) error {
		switch c.tag {
		case "CONTEXT-COMPONENT-REF":
			return readRef(c, &iref.ContextComponentRef)
		case "TARGET-R-PORT-REF":
			return readRef(c, &iref.TargetPortRef)
		}
		return unexpectedTag()
	})
	return iref, err
}

func (d *arxmlDecoder) connector(n *xmlNode) (types.SwConnector, error) {
	switch n.tag {
	case "ASSEMBLY-SW-CONNECTOR":
		c := &types.AssemblySwConnector{}
		err := d.fields(n, &c.Identifiable, func(f *xmlNode) error {
			var err error
			switch f.tag {
			case "PROVIDER-IREF":
				c.Provider, err = d.pPortInstance(f)
			case "REQUESTER-IREF":
				c.Requester, err = d.rPortInstance(f)
			default:
				return unexpectedTag()
			}
			return err
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	case "DELEGATION-SW-CONNECTOR":
		c := &types.DelegationSwConnector{}
		err := d.fields(n, &c.Identifiable, func(f *xmlNode) error {
			switch f.tag {
			case "INNER-PORT-IREF":
				return d.fields(f, nil, func(ic *xmlNode) error {
					switch ic.tag {
					case "P-PORT-IN-COMPOSITION-INSTANCE-REF":
						inner, err := d.pPortInstance(ic)
						c.InnerPort = inner
						return err
					case "R-PORT-IN-COMPOSITION-INSTANCE-REF":
						inner, err := d.rPortInstance(ic)
						c.InnerPort = inner
						return err
					}
					return unexpectedTag()
				})
			case "OUTER-PORT-REF":
				return readRef(f, &c.OuterPortRef)
			}
			return unexpectedTag()
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, d.errorAt(n, invalidTag("unsupported connector"))
}

func (d *arxmlDecoder) composition(n *xmlNode) (*types.CompositionSwComponentType, error) {
	v := &types.CompositionSwComponentType{}
	err := d.fields(n, &v.Identifiable, func(c *xmlNode) error {
		switch c.tag {
		case "PORTS":
			return d.ports(c, v)
		case "COMPONENTS":
			return d.fields(c, nil, func(pc *xmlNode) error {
				if pc.tag != "SW-COMPONENT-PROTOTYPE" {
					return unexpectedTag()
				}
				prototype := &types.SwComponentPrototype{}
				err := d.fields(pc, &prototype.Identifiable, func(f *xmlNode) error {
					if f.tag != "TYPE-TREF" {
						return unexpectedTag()
					}
					return readRef(f, &prototype.TypeRef)
				})
				if err != nil {
					return err
				}
				return v.AppendComponent(prototype)
			})
		case "CONNECTORS":
			return d.fields(c, nil, func(cc *xmlNode) error {
				connector, err := d.connector(cc)
				if err != nil {
					return err
				}
				return v.AppendConnector(connector)
			})
		}
		return unexpectedTag()
	})
	return v, err
}
