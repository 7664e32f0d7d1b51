package adapters

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"autosar-arxml/internal/types"
)

func (e *arxmlEncoder) swValues(tag string, values []types.SwValue) {
	if len(values) == 0 {
		return
	}
	e.x.begin(tag)
	for _, value := range values {
		if value.VT != "" {
			e.x.leaf("VT", value.VT)
			continue
		}
		e.x.number("V", value.V)
	}
	e.x.end(tag)
}

func (e *arxmlEncoder) valueSpec(value types.ValueSpecification) {
	switch v := value.(type) {
	case *types.TextValue:
		if v.IsEmpty() {
			e.x.empty("TEXT-VALUE-SPECIFICATION")
			return
		}
		e.x.begin("TEXT-VALUE-SPECIFICATION")
		e.x.text("SHORT-LABEL", v.Label)
		e.x.text("VALUE", v.Value)
		e.x.end("TEXT-VALUE-SPECIFICATION")
	case *types.NumericalValue:
		if v.IsEmpty() {
			e.x.empty("NUMERICAL-VALUE-SPECIFICATION")
			return
		}
		e.x.begin("NUMERICAL-VALUE-SPECIFICATION")
		e.x.text("SHORT-LABEL", v.Label)
		e.x.number("VALUE", v.Value)
		e.x.end("NUMERICAL-VALUE-SPECIFICATION")
	case *types.NotAvailableValue:
		if v.IsEmpty() {
			e.x.empty("NOT-AVAILABLE-VALUE-SPECIFICATION")
			return
		}
		e.x.begin("NOT-AVAILABLE-VALUE-SPECIFICATION")
		e.x.text("SHORT-LABEL", v.Label)
		e.x.intPtr("DEFAULT-PATTERN", v.DefaultPattern)
		e.x.end("NOT-AVAILABLE-VALUE-SPECIFICATION")
	case *types.ArrayValue:
		if v.IsEmpty() {
			e.x.empty("ARRAY-VALUE-SPECIFICATION")
			return
		}
		e.x.begin("ARRAY-VALUE-SPECIFICATION")
		e.x.text("SHORT-LABEL", v.Label)
		e.x.intPtr("INTENDED-PARTIAL-INITIALIZATION-COUNT", v.IntendedPartialInitializationCount)
		if len(v.Elements) > 0 {
			e.x.begin("ELEMENTS")
			for _, element := range v.Elements {
				e.valueSpec(element)
			}
			e.x.end("ELEMENTS")
		}
		e.x.end("ARRAY-VALUE-SPECIFICATION")
	case *types.RecordValue:
		if v.IsEmpty() {
			e.x.empty("RECORD-VALUE-SPECIFICATION")
			return
		}
		e.x.begin("RECORD-VALUE-SPECIFICATION")
		e.x.text("SHORT-LABEL", v.Label)
		if len(v.Fields) > 0 {
			e.x.begin("FIELDS")
			for _, field := range v.Fields {
				e.valueSpec(field)
			}
			e.x.end("FIELDS")
		}
		e.x.end("RECORD-VALUE-SPECIFICATION")
	case *types.ApplicationValue:
		e.applicationValue(v)
	case *types.ConstantReference:
		if v.IsEmpty() {
			e.x.empty("CONSTANT-REFERENCE")
			return
		}
		e.x.begin("CONSTANT-REFERENCE")
		e.x.text("SHORT-LABEL", v.Label)
		e.x.ref("CONSTANT-REF", v.ConstantRef)
		e.x.end("CONSTANT-REFERENCE")
	default:
		e.fail(errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no ARXML writer for value specification %T", value)))
	}
}

func (e *arxmlEncoder) applicationValue(v *types.ApplicationValue) {
	if v.IsEmpty() {
		e.x.empty("APPLICATION-VALUE-SPECIFICATION")
		return
	}
	e.x.begin("APPLICATION-VALUE-SPECIFICATION")
	e.x.text("SHORT-LABEL", v.Label)
	e.x.text("CATEGORY", v.Category)
	if len(v.AxisConts) > 0 {
		e.x.begin("SW-AXIS-CONTS")
		for i := range v.AxisConts {
			axis := &v.AxisConts[i]
			if axis.IsEmpty() {
				e.x.empty("SW-AXIS-CONT")
				continue
			}
			e.x.begin("SW-AXIS-CONT")
			e.x.text("CATEGORY", axis.Category)
			e.x.ref("UNIT-REF", axis.UnitRef)
			e.x.intPtr("SW-AXIS-INDEX", axis.AxisIndex)
			e.numberList("SW-ARRAYSIZE", axis.ArraySize)
			e.swValues("SW-VALUES-PHYS", axis.Values)
			e.x.end("SW-AXIS-CONT")
		}
		e.x.end("SW-AXIS-CONTS")
	}
	if cont := v.ValueCont; cont != nil {
		if cont.IsEmpty() {
			e.x.empty("SW-VALUE-CONT")
		} else {
			e.x.begin("SW-VALUE-CONT")
			e.x.ref("UNIT-REF", cont.UnitRef)
			e.numberList("SW-ARRAYSIZE", cont.ArraySize)
			e.swValues("SW-VALUES-PHYS", cont.Values)
			e.x.end("SW-VALUE-CONT")
		}
	}
	e.x.end("APPLICATION-VALUE-SPECIFICATION")
}

// optionalValue wraps a value specification in its role tag.
func (e *arxmlEncoder) optionalValue(tag string, value types.ValueSpecification) {
	if value == nil {
		return
	}
	e.x.begin(tag)
	e.valueSpec(value)
	e.x.end(tag)
}

func (e *arxmlEncoder) constantSpecification(v *types.ConstantSpecification) {
	e.beginIdentifiable("CONSTANT-SPECIFICATION", &v.Identifiable, "")
	e.optionalValue("VALUE-SPEC", v.Value)
	e.x.end("CONSTANT-SPECIFICATION")
}

func (e *arxmlEncoder) modeDeclaration(v *types.ModeDeclaration) {
	e.beginIdentifiable("MODE-DECLARATION", &v.Identifiable, "")
	e.x.intPtr("VALUE", v.Value)
	e.x.end("MODE-DECLARATION")
}

func (e *arxmlEncoder) modeDeclarationGroup(v *types.ModeDeclarationGroup) {
	e.beginIdentifiable("MODE-DECLARATION-GROUP", &v.Identifiable, v.Category)
	e.x.ref("INITIAL-MODE-REF", v.InitialModeRef)
	if len(v.ModeDeclarations) > 0 {
		e.x.begin("MODE-DECLARATIONS")
		for _, mode := range v.ModeDeclarations {
			e.modeDeclaration(mode)
		}
		e.x.end("MODE-DECLARATIONS")
	}
	e.x.intPtr("ON-TRANSITION-VALUE", v.OnTransitionValue)
	e.x.end("MODE-DECLARATION-GROUP")
}

func (e *arxmlEncoder) variableDataPrototype(v *types.VariableDataPrototype) {
	e.beginIdentifiable("VARIABLE-DATA-PROTOTYPE", &v.Identifiable, "")
	e.swDataDefProps(v.Props)
	e.x.ref("TYPE-TREF", v.TypeRef)
	e.optionalValue("INIT-VALUE", v.InitValue)
	e.x.end("VARIABLE-DATA-PROTOTYPE")
}

func (e *arxmlEncoder) parameterDataPrototype(v *types.ParameterDataPrototype) {
	e.beginIdentifiable("PARAMETER-DATA-PROTOTYPE", &v.Identifiable, "")
	e.swDataDefProps(v.Props)
	e.x.ref("TYPE-TREF", v.TypeRef)
	e.optionalValue("INIT-VALUE", v.InitValue)
	e.x.end("PARAMETER-DATA-PROTOTYPE")
}

func (e *arxmlEncoder) dataElements(tag string, elements []*types.VariableDataPrototype) {
	if len(elements) == 0 {
		return
	}
	e.x.begin(tag)
	for _, element := range elements {
		e.variableDataPrototype(element)
	}
	e.x.end(tag)
}

func (e *arxmlEncoder) senderReceiverInterface(v *types.SenderReceiverInterface) {
	e.beginIdentifiable("SENDER-RECEIVER-INTERFACE", &v.Identifiable, "")
	e.x.boolPtr("IS-SERVICE", v.IsService)
	e.dataElements("DATA-ELEMENTS", v.DataElements)
	e.x.end("SENDER-RECEIVER-INTERFACE")
}

func (e *arxmlEncoder) nvDataInterface(v *types.NvDataInterface) {
	e.beginIdentifiable("NV-DATA-INTERFACE", &v.Identifiable, "")
	e.x.boolPtr("IS-SERVICE", v.IsService)
	e.dataElements("NV-DATAS", v.NvDatas)
	e.x.end("NV-DATA-INTERFACE")
}

func (e *arxmlEncoder) parameterInterface(v *types.ParameterInterface) {
	e.beginIdentifiable("PARAMETER-INTERFACE", &v.Identifiable, "")
	e.x.boolPtr("IS-SERVICE", v.IsService)
	if len(v.Parameters) > 0 {
		e.x.begin("PARAMETERS")
		for _, parameter := range v.Parameters {
			e.parameterDataPrototype(parameter)
		}
		e.x.end("PARAMETERS")
	}
	e.x.end("PARAMETER-INTERFACE")
}

func (e *arxmlEncoder) operation(v *types.ClientServerOperation) {
	e.beginIdentifiable("CLIENT-SERVER-OPERATION", &v.Identifiable, "")
	if len(v.Arguments) > 0 {
		e.x.begin("ARGUMENTS")
		for _, argument := range v.Arguments {
			e.beginIdentifiable("ARGUMENT-DATA-PROTOTYPE", &argument.Identifiable, "")
			e.swDataDefProps(argument.Props)
			e.x.ref("TYPE-TREF", argument.TypeRef)
			e.x.text("DIRECTION", string(argument.Direction))
			e.x.text("SERVER-ARGUMENT-IMPL-POLICY", string(argument.ServerArgumentImplPolicy))
			e.x.end("ARGUMENT-DATA-PROTOTYPE")
		}
		e.x.end("ARGUMENTS")
	}
	if len(v.PossibleErrorRefs) > 0 {
		e.x.begin("POSSIBLE-ERROR-REFS")
		for _, ref := range v.PossibleErrorRefs {
			e.x.ref("POSSIBLE-ERROR-REF", ref)
		}
		e.x.end("POSSIBLE-ERROR-REFS")
	}
	e.x.end("CLIENT-SERVER-OPERATION")
}

func (e *arxmlEncoder) clientServerInterface(v *types.ClientServerInterface) {
	e.beginIdentifiable("CLIENT-SERVER-INTERFACE", &v.Identifiable, "")
	e.x.boolPtr("IS-SERVICE", v.IsService)
	if len(v.Operations) > 0 {
		e.x.begin("OPERATIONS")
		for _, operation := range v.Operations {
			e.operation(operation)
		}
		e.x.end("OPERATIONS")
	}
	if len(v.PossibleErrors) > 0 {
		e.x.begin("POSSIBLE-ERRORS")
		for _, appErr := range v.PossibleErrors {
			e.beginIdentifiable("APPLICATION-ERROR", &appErr.Identifiable, "")
			e.x.intPtr("ERROR-CODE", appErr.ErrorCode)
			e.x.end("APPLICATION-ERROR")
		}
		e.x.end("POSSIBLE-ERRORS")
	}
	e.x.end("CLIENT-SERVER-INTERFACE")
}

func (e *arxmlEncoder) modeSwitchInterface(v *types.ModeSwitchInterface) {
	e.beginIdentifiable("MODE-SWITCH-INTERFACE", &v.Identifiable, "")
	e.x.boolPtr("IS-SERVICE", v.IsService)
	if group := v.ModeGroup; group != nil {
		e.beginIdentifiable("MODE-GROUP", &group.Identifiable, "")
		e.x.ref("TYPE-TREF", group.TypeRef)
		e.x.end("MODE-GROUP")
	}
	e.x.end("MODE-SWITCH-INTERFACE")
}

func (e *arxmlEncoder) dataFilter(tag string, f *types.DataFilter) {
	if f == nil {
		return
	}
	if f.IsEmpty() {
		e.x.empty(tag)
		return
	}
	e.x.begin(tag)
	e.x.text("DATA-FILTER-TYPE", string(f.Type))
	e.x.number("MASK", f.Mask)
	e.x.number("MAX", f.Max)
	e.x.number("MIN", f.Min)
	e.x.intPtr("OFFSET", f.Offset)
	e.x.intPtr("PERIOD", f.Period)
	e.x.number("X", f.X)
	e.x.end(tag)
}

func (e *arxmlEncoder) requiredComSpec(spec types.RequiredComSpec) {
	switch c := spec.(type) {
	case *types.NonqueuedReceiverComSpec:
		if c.DataElementRef.IsZero() && c.UsesEndToEndProtection == nil && c.AliveTimeout == nil &&
			c.EnableUpdate == nil && c.Filter == nil && c.HandleNeverReceived == nil &&
			c.HandleTimeoutType == "" && c.InitValue == nil {
			e.x.empty("NONQUEUED-RECEIVER-COM-SPEC")
			return
		}
		e.x.begin("NONQUEUED-RECEIVER-COM-SPEC")
		e.x.ref("DATA-ELEMENT-REF", c.DataElementRef)
		e.x.boolPtr("USES-END-TO-END-PROTECTION", c.UsesEndToEndProtection)
		e.x.floatPtr("ALIVE-TIMEOUT", c.AliveTimeout)
		e.x.boolPtr("ENABLE-UPDATE", c.EnableUpdate)
		e.dataFilter("FILTER", c.Filter)
		e.x.boolPtr("HANDLE-NEVER-RECEIVED", c.HandleNeverReceived)
		e.x.text("HANDLE-TIMEOUT-TYPE", c.HandleTimeoutType)
		e.optionalValue("INIT-VALUE", c.InitValue)
		e.x.end("NONQUEUED-RECEIVER-COM-SPEC")
	case *types.QueuedReceiverComSpec:
		if c.DataElementRef.IsZero() && c.UsesEndToEndProtection == nil && c.QueueLength == nil {
			e.x.empty("QUEUED-RECEIVER-COM-SPEC")
			return
		}
		e.x.begin("QUEUED-RECEIVER-COM-SPEC")
		e.x.ref("DATA-ELEMENT-REF", c.DataElementRef)
		e.x.boolPtr("USES-END-TO-END-PROTECTION", c.UsesEndToEndProtection)
		e.x.intPtr("QUEUE-LENGTH", c.QueueLength)
		e.x.end("QUEUED-RECEIVER-COM-SPEC")
	case *types.ClientComSpec:
		if c.OperationRef.IsZero() {
			e.x.empty("CLIENT-COM-SPEC")
			return
		}
		e.x.begin("CLIENT-COM-SPEC")
		e.x.ref("OPERATION-REF", c.OperationRef)
		e.x.end("CLIENT-COM-SPEC")
	case *types.ModeSwitchReceiverComSpec:
		if c.ModeGroupRef.IsZero() && c.EnhancedModeAPI == nil && c.SupportsAsynchronousModeSwitch == nil {
			e.x.empty("MODE-SWITCH-RECEIVER-COM-SPEC")
			return
		}
		e.x.begin("MODE-SWITCH-RECEIVER-COM-SPEC")
		e.x.boolPtr("ENHANCED-MODE-API", c.EnhancedModeAPI)
		e.x.ref("MODE-GROUP-REF", c.ModeGroupRef)
		e.x.boolPtr("SUPPORTS-ASYNCHRONOUS-MODE-SWITCH", c.SupportsAsynchronousModeSwitch)
		e.x.end("MODE-SWITCH-RECEIVER-COM-SPEC")
	case *types.ParameterRequireComSpec:
		if c.ParameterRef.IsZero() && c.InitValue == nil {
			e.x.empty("PARAMETER-REQUIRE-COM-SPEC")
			return
		}
		e.x.begin("PARAMETER-REQUIRE-COM-SPEC")
		e.optionalValue("INIT-VALUE", c.InitValue)
		e.x.ref("PARAMETER-REF", c.ParameterRef)
		e.x.end("PARAMETER-REQUIRE-COM-SPEC")
	default:
		e.fail(errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no ARXML writer for com-spec %T", spec)))
	}
}

func (e *arxmlEncoder) providedComSpec(spec types.ProvidedComSpec) {
	switch c := spec.(type) {
	case *types.NonqueuedSenderComSpec:
		if c.DataElementRef.IsZero() && c.UsesEndToEndProtection == nil && c.InitValue == nil {
			e.x.empty("NONQUEUED-SENDER-COM-SPEC")
			return
		}
		e.x.begin("NONQUEUED-SENDER-COM-SPEC")
		e.x.ref("DATA-ELEMENT-REF", c.DataElementRef)
		e.x.boolPtr("USES-END-TO-END-PROTECTION", c.UsesEndToEndProtection)
		e.optionalValue("INIT-VALUE", c.InitValue)
		e.x.end("NONQUEUED-SENDER-COM-SPEC")
	case *types.QueuedSenderComSpec:
		if c.DataElementRef.IsZero() && c.UsesEndToEndProtection == nil {
			e.x.empty("QUEUED-SENDER-COM-SPEC")
			return
		}
		e.x.begin("QUEUED-SENDER-COM-SPEC")
		e.x.ref("DATA-ELEMENT-REF", c.DataElementRef)
		e.x.boolPtr("USES-END-TO-END-PROTECTION", c.UsesEndToEndProtection)
		e.x.end("QUEUED-SENDER-COM-SPEC")
	case *types.ServerComSpec:
		if c.OperationRef.IsZero() && c.QueueLength == nil {
			e.x.empty("SERVER-COM-SPEC")
			return
		}
		e.x.begin("SERVER-COM-SPEC")
		e.x.ref("OPERATION-REF", c.OperationRef)
		e.x.intPtr("QUEUE-LENGTH", c.QueueLength)
		e.x.end("SERVER-COM-SPEC")
	case *types.ModeSwitchSenderComSpec:
		if c.ModeGroupRef.IsZero() && c.EnhancedModeAPI == nil && c.QueueLength == nil &&
			c.ModeSwitchedAckTimeout == nil {
			e.x.empty("MODE-SWITCH-SENDER-COM-SPEC")
			return
		}
		e.x.begin("MODE-SWITCH-SENDER-COM-SPEC")
		e.x.boolPtr("ENHANCED-MODE-API", c.EnhancedModeAPI)
		e.x.ref("MODE-GROUP-REF", c.ModeGroupRef)
		if c.ModeSwitchedAckTimeout != nil {
			e.x.begin("MODE-SWITCHED-ACK")
			e.x.floatPtr("TIMEOUT", c.ModeSwitchedAckTimeout)
			e.x.end("MODE-SWITCHED-ACK")
		}
		e.x.intPtr("QUEUE-LENGTH", c.QueueLength)
		e.x.end("MODE-SWITCH-SENDER-COM-SPEC")
	default:
		e.fail(errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no ARXML writer for com-spec %T", spec)))
	}
}

func (e *arxmlEncoder) requiredComSpecs(specs []types.RequiredComSpec) {
	if len(specs) == 0 {
		return
	}
	e.x.begin("REQUIRED-COM-SPECS")
	for _, spec := range specs {
		e.requiredComSpec(spec)
	}
	e.x.end("REQUIRED-COM-SPECS")
}

func (e *arxmlEncoder) providedComSpecs(specs []types.ProvidedComSpec) {
	if len(specs) == 0 {
		return
	}
	e.x.begin("PROVIDED-COM-SPECS")
	for _, spec := range specs {
		e.providedComSpec(spec)
	}
	e.x.end("PROVIDED-COM-SPECS")
}

func (e *arxmlEncoder) port(port types.PortPrototype) {
	switch p := port.(type) {
	case *types.RPortPrototype:
		e.beginIdentifiable("R-PORT-PROTOTYPE", &p.Identifiable, "")
		e.requiredComSpecs(p.ComSpecs)
		e.x.ref("REQUIRED-INTERFACE-TREF", p.RequiredInterfaceRef)
		e.x.end("R-PORT-PROTOTYPE")
	case *types.PPortPrototype:
		e.beginIdentifiable("P-PORT-PROTOTYPE", &p.Identifiable, "")
		e.providedComSpecs(p.ComSpecs)
		e.x.ref("PROVIDED-INTERFACE-TREF", p.ProvidedInterfaceRef)
		e.x.end("P-PORT-PROTOTYPE")
	case *types.PRPortPrototype:
		e.beginIdentifiable("PR-PORT-PROTOTYPE", &p.Identifiable, "")
		e.providedComSpecs(p.ProvidedComSpecs)
		e.requiredComSpecs(p.RequiredComSpecs)
		e.x.ref("PROVIDED-REQUIRED-INTERFACE-TREF", p.ProvidedRequiredInterfaceRef)
		e.x.end("PR-PORT-PROTOTYPE")
	default:
		e.fail(errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no ARXML writer for port %T", port)))
	}
}

func (e *arxmlEncoder) ports(ports []types.PortPrototype) {
	if len(ports) == 0 {
		return
	}
	e.x.begin("PORTS")
	for _, port := range ports {
		e.port(port)
	}
	e.x.end("PORTS")
}

func (e *arxmlEncoder) atomicComponent(tag string, base *types.ComponentBase) {
	e.beginIdentifiable(tag, &base.Identifiable, "")
	e.ports(base.Ports)
	e.x.end(tag)
}

func (e *arxmlEncoder) pPortInstance(tag string, iref *types.PPortInstanceRef) {
	if iref == nil {
		return
	}
	if iref.ContextComponentRef.IsZero() && iref.TargetPortRef.IsZero() {
		e.x.empty(tag)
		return
	}
	e.x.begin(tag)
	e.x.ref("CONTEXT-COMPONENT-REF", iref.ContextComponentRef)
	e.x.ref("TARGET-P-PORT-REF", iref.TargetPortRef)
	e.x.end(tag)
}

func (e *arxmlEncoder) rPortInstance(tag string, iref *types.RPortInstanceRef) {
	if iref == nil {
		return
	}
	if iref.ContextComponentRef.IsZero() && iref.TargetPortRef.IsZero() {
		e.x.empty(tag)
		return
	}
	e.x.begin(tag)
	e.x.ref("CONTEXT-COMPONENT-REF", iref.ContextComponentRef)
	e.x.ref("TARGET-R-PORT-REF", iref.TargetPortRef)
	e.x.end(tag)
}

func (e *arxmlEncoder) connector(connector types.SwConnector) {
	switch c := connector.(type) {
	case *types.AssemblySwConnector:
		e.beginIdentifiable("ASSEMBLY-SW-CONNECTOR", &c.Identifiable, "")
		e.pPortInstance("PROVIDER-IREF", c.Provider)
		e.rPortInstance("REQUESTER-IREF", c.Requester)
		e.x.end("ASSEMBLY-SW-CONNECTOR")
	case *types.DelegationSwConnector:
		e.beginIdentifiable("DELEGATION-SW-CONNECTOR", &c.Identifiable, "")
		switch inner := c.InnerPort.(type) {
		case *types.PPortInstanceRef:
			e.x.begin("INNER-PORT-IREF")
			e.pPortInstance("P-PORT-IN-COMPOSITION-INSTANCE-REF", inner)
			e.x.end("INNER-PORT-IREF")
		case *types.RPortInstanceRef:
			e.x.begin("INNER-PORT-IREF")
			e.rPortInstance("R-PORT-IN-COMPOSITION-INSTANCE-REF", inner)
			e.x.end("INNER-PORT-IREF")
		}
		e.x.ref("OUTER-PORT-REF", c.OuterPortRef)
		e.x.end("DELEGATION-SW-CONNECTOR")
	default:
		e.fail(errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no ARXML writer for connector %T", connector)))
	}
}

func (e *arxmlEncoder) composition(v *types.CompositionSwComponentType) {
	e.beginIdentifiable("COMPOSITION-SW-COMPONENT-TYPE", &v.Identifiable, "")
	e.ports(v.Ports)
	if len(v.Components) > 0 {
		e.x.begin("COMPONENTS")
		for _, component := range v.Components {
			e.beginIdentifiable("SW-COMPONENT-PROTOTYPE", &component.Identifiable, "")
			e.x.ref("TYPE-TREF", component.TypeRef)
			e.x.end("SW-COMPONENT-PROTOTYPE")
		}
		e.x.end("COMPONENTS")
	}
	if len(v.Connectors) > 0 {
		e.x.begin("CONNECTORS")
		for _, connector := range v.Connectors {
			e.connector(connector)
		}
		e.x.end("CONNECTORS")
	}
	e.x.end("COMPOSITION-SW-COMPONENT-TYPE")
}
