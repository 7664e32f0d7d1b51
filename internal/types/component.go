package types

// DataFilter is FILTER on a nonqueued receiver com-spec.
type DataFilter struct {
	Type   DataFilterType
	Mask   Number
	X      Number
	Min    Number
	Max    Number
	Offset *int
	Period *int
}

func (f *DataFilter) IsEmpty() bool {
	return f == nil || (f.Type == "" && f.Mask.IsZero() && f.X.IsZero() &&
		f.Min.IsZero() && f.Max.IsZero() && f.Offset == nil && f.Period == nil)
}

// ComSpec is the closed set of port com-specs.
type ComSpec interface {
	comSpec()
	references(dst []Reference) []Reference
}

// RequiredComSpec marks com-specs legal in REQUIRED-COM-SPECS.
type RequiredComSpec interface {
	ComSpec
	requiredComSpec()
}

// ProvidedComSpec marks com-specs legal in PROVIDED-COM-SPECS.
type ProvidedComSpec interface {
	ComSpec
	providedComSpec()
}

type NonqueuedReceiverComSpec struct {
	DataElementRef         VariableDataPrototypeRef
	UsesEndToEndProtection *bool
	AliveTimeout           *float64
	EnableUpdate           *bool
	Filter                 *DataFilter
	HandleNeverReceived    *bool
	HandleTimeoutType      string
	InitValue              ValueSpecification
}

type QueuedReceiverComSpec struct {
	DataElementRef         VariableDataPrototypeRef
	UsesEndToEndProtection *bool
	QueueLength            *int
}

type ClientComSpec struct {
	OperationRef ClientServerOperationRef
}

type ModeSwitchReceiverComSpec struct {
	ModeGroupRef                   ModeDeclarationGroupPrototypeRef
	EnhancedModeAPI                *bool
	SupportsAsynchronousModeSwitch *bool
}

type ParameterRequireComSpec struct {
	ParameterRef ParameterDataPrototypeRef
	InitValue    ValueSpecification
}

type NonqueuedSenderComSpec struct {
	DataElementRef         VariableDataPrototypeRef
	UsesEndToEndProtection *bool
	InitValue              ValueSpecification
}

type QueuedSenderComSpec struct {
	DataElementRef         VariableDataPrototypeRef
	UsesEndToEndProtection *bool
}

type ServerComSpec struct {
	OperationRef ClientServerOperationRef
	QueueLength  *int
}

type ModeSwitchSenderComSpec struct {
	ModeGroupRef           ModeDeclarationGroupPrototypeRef
	EnhancedModeAPI        *bool
	QueueLength            *int
	ModeSwitchedAckTimeout *float64
}

func (*NonqueuedReceiverComSpec) comSpec()  {}
func (*QueuedReceiverComSpec) comSpec()     {}
func (*ClientComSpec) comSpec()             {}
func (*ModeSwitchReceiverComSpec) comSpec() {}
func (*ParameterRequireComSpec) comSpec()   {}
func (*NonqueuedSenderComSpec) comSpec()    {}
func (*QueuedSenderComSpec) comSpec()       {}
func (*ServerComSpec) comSpec()             {}
func (*ModeSwitchSenderComSpec) comSpec()   {}

func (*NonqueuedReceiverComSpec) requiredComSpec()  {}
func (*QueuedReceiverComSpec) requiredComSpec()     {}
func (*ClientComSpec) requiredComSpec()             {}
func (*ModeSwitchReceiverComSpec) requiredComSpec() {}
func (*ParameterRequireComSpec) requiredComSpec()   {}

func (*NonqueuedSenderComSpec) providedComSpec()  {}
func (*QueuedSenderComSpec) providedComSpec()     {}
func (*ServerComSpec) providedComSpec()           {}
func (*ModeSwitchSenderComSpec) providedComSpec() {}

func (c *NonqueuedReceiverComSpec) references(dst []Reference) []Reference {
	return valueReferences(collectRefs(dst, c.DataElementRef), c.InitValue)
}

func (c *QueuedReceiverComSpec) references(dst []Reference) []Reference {
	return collectRefs(dst, c.DataElementRef)
}

func (c *ClientComSpec) references(dst []Reference) []Reference {
	return collectRefs(dst, c.OperationRef)
}

func (c *ModeSwitchReceiverComSpec) references(dst []Reference) []Reference {
	return collectRefs(dst, c.ModeGroupRef)
}

func (c *ParameterRequireComSpec) references(dst []Reference) []Reference {
	return valueReferences(collectRefs(dst, c.ParameterRef), c.InitValue)
}

func (c *NonqueuedSenderComSpec) references(dst []Reference) []Reference {
	return valueReferences(collectRefs(dst, c.DataElementRef), c.InitValue)
}

func (c *QueuedSenderComSpec) references(dst []Reference) []Reference {
	return collectRefs(dst, c.DataElementRef)
}

func (c *ServerComSpec) references(dst []Reference) []Reference {
	return collectRefs(dst, c.OperationRef)
}

func (c *ModeSwitchSenderComSpec) references(dst []Reference) []Reference {
	return collectRefs(dst, c.ModeGroupRef)
}

// PortPrototype is the closed set of R-, P- and PR-port prototypes.
type PortPrototype interface {
	Referrable
	InterfaceRef() PortInterfaceRef
	identity() *Identifiable
	references(dst []Reference) []Reference
}

type RPortPrototype struct {
	Identifiable
	RequiredInterfaceRef PortInterfaceRef
	ComSpecs             []RequiredComSpec
}

func (*RPortPrototype) Kind() IdentifiableKind           { return KindRPortPrototype }
func (p *RPortPrototype) InterfaceRef() PortInterfaceRef { return p.RequiredInterfaceRef }

func (p *RPortPrototype) references(dst []Reference) []Reference {
	for _, spec := range p.ComSpecs {
		dst = spec.references(dst)
	}
	return collectRefs(dst, p.RequiredInterfaceRef)
}

type PPortPrototype struct {
	Identifiable
	ProvidedInterfaceRef PortInterfaceRef
	ComSpecs             []ProvidedComSpec
}

func (*PPortPrototype) Kind() IdentifiableKind           { return KindPPortPrototype }
func (p *PPortPrototype) InterfaceRef() PortInterfaceRef { return p.ProvidedInterfaceRef }

func (p *PPortPrototype) references(dst []Reference) []Reference {
	for _, spec := range p.ComSpecs {
		dst = spec.references(dst)
	}
	return collectRefs(dst, p.ProvidedInterfaceRef)
}

type PRPortPrototype struct {
	Identifiable
	ProvidedRequiredInterfaceRef PortInterfaceRef
	ProvidedComSpecs             []ProvidedComSpec
	RequiredComSpecs             []RequiredComSpec
}

func (*PRPortPrototype) Kind() IdentifiableKind           { return KindPRPortPrototype }
func (p *PRPortPrototype) InterfaceRef() PortInterfaceRef { return p.ProvidedRequiredInterfaceRef }

func (p *PRPortPrototype) references(dst []Reference) []Reference {
	for _, spec := range p.ProvidedComSpecs {
		dst = spec.references(dst)
	}
	for _, spec := range p.RequiredComSpecs {
		dst = spec.references(dst)
	}
	return collectRefs(dst, p.ProvidedRequiredInterfaceRef)
}

// SwComponentPrototype is a COMPONENTS entry of a composition.
type SwComponentPrototype struct {
	Identifiable
	TypeRef SwComponentTypeRef
}

func (*SwComponentPrototype) Kind() IdentifiableKind { return KindSwComponentPrototype }

// PPortInstanceRef addresses a P-port of a component prototype
// (PROVIDER-IREF, P-PORT-IN-COMPOSITION-INSTANCE-REF).
type PPortInstanceRef struct {
	ContextComponentRef SwComponentPrototypeRef
	TargetPortRef       PPortPrototypeRef
}

// RPortInstanceRef addresses an R-port of a component prototype
// (REQUESTER-IREF, R-PORT-IN-COMPOSITION-INSTANCE-REF).
type RPortInstanceRef struct {
	ContextComponentRef SwComponentPrototypeRef
	TargetPortRef       RPortPrototypeRef
}

// InnerPortRef is the INNER-PORT-IREF of a delegation connector.
type InnerPortRef interface {
	innerPortRef()
	references(dst []Reference) []Reference
}

func (*PPortInstanceRef) innerPortRef() {}
func (*RPortInstanceRef) innerPortRef() {}

func (r *PPortInstanceRef) references(dst []Reference) []Reference {
	if r == nil {
		return dst
	}
	return collectRefs(dst, r.ContextComponentRef, r.TargetPortRef)
}

func (r *RPortInstanceRef) references(dst []Reference) []Reference {
	if r == nil {
		return dst
	}
	return collectRefs(dst, r.ContextComponentRef, r.TargetPortRef)
}

// SwConnector is the closed set of composition connectors.
type SwConnector interface {
	Referrable
	identity() *Identifiable
	references(dst []Reference) []Reference
}

type AssemblySwConnector struct {
	Identifiable
	Provider  *PPortInstanceRef
	Requester *RPortInstanceRef
}

func (*AssemblySwConnector) Kind() IdentifiableKind { return KindAssemblySwConnector }

func (c *AssemblySwConnector) references(dst []Reference) []Reference {
	dst = c.Provider.references(dst)
	return c.Requester.references(dst)
}

type DelegationSwConnector struct {
	Identifiable
	InnerPort    InnerPortRef
	OuterPortRef PortPrototypeRef
}

func (*DelegationSwConnector) Kind() IdentifiableKind { return KindDelegationSwConnector }

func (c *DelegationSwConnector) references(dst []Reference) []Reference {
	if c.InnerPort != nil {
		dst = c.InnerPort.references(dst)
	}
	return collectRefs(dst, c.OuterPortRef)
}

// SwComponentType is the closed set of component types.
type SwComponentType interface {
	Element
	PortList() []PortPrototype
	AppendPort(port PortPrototype) error
}

// ComponentBase holds the PORTS every component type carries.
type ComponentBase struct {
	Identifiable
	Ports []PortPrototype
}

func (c *ComponentBase) PortList() []PortPrototype { return c.Ports }

func (c *ComponentBase) appendPort(owner Container, port PortPrototype) error {
	ports, err := appendChild(owner, c.Ports, port)
	c.Ports = ports
	return err
}

func (c *ComponentBase) linkPorts(owner Container) {
	for _, port := range c.Ports {
		port.identity().attach(owner)
	}
}

func (c *ComponentBase) portReferences(dst []Reference) []Reference {
	for _, port := range c.Ports {
		dst = port.references(dst)
	}
	return dst
}

type ApplicationSwComponentType struct {
	ComponentBase
}

func (*ApplicationSwComponentType) Kind() IdentifiableKind { return KindApplicationSwComponentType }

func (c *ApplicationSwComponentType) AppendPort(port PortPrototype) error {
	return c.appendPort(c, port)
}

func (c *ApplicationSwComponentType) linkChildren() { c.linkPorts(c) }

func (c *ApplicationSwComponentType) FindChild(name string) Referrable {
	return findNamed(c.Ports, name)
}

func (c *ApplicationSwComponentType) References() []Reference {
	return c.portReferences(nil)
}

type ComplexDeviceDriverSwComponentType struct {
	ComponentBase
}

func (*ComplexDeviceDriverSwComponentType) Kind() IdentifiableKind {
	return KindComplexDeviceDriverComponentType
}

func (c *ComplexDeviceDriverSwComponentType) AppendPort(port PortPrototype) error {
	return c.appendPort(c, port)
}

func (c *ComplexDeviceDriverSwComponentType) linkChildren() { c.linkPorts(c) }

func (c *ComplexDeviceDriverSwComponentType) FindChild(name string) Referrable {
	return findNamed(c.Ports, name)
}

func (c *ComplexDeviceDriverSwComponentType) References() []Reference {
	return c.portReferences(nil)
}

type SensorActuatorSwComponentType struct {
	ComponentBase
}

func (*SensorActuatorSwComponentType) Kind() IdentifiableKind {
	return KindSensorActuatorSwComponentType
}

func (c *SensorActuatorSwComponentType) AppendPort(port PortPrototype) error {
	return c.appendPort(c, port)
}

func (c *SensorActuatorSwComponentType) linkChildren() { c.linkPorts(c) }

func (c *SensorActuatorSwComponentType) FindChild(name string) Referrable {
	return findNamed(c.Ports, name)
}

func (c *SensorActuatorSwComponentType) References() []Reference {
	return c.portReferences(nil)
}

type ServiceSwComponentType struct {
	ComponentBase
}

func (*ServiceSwComponentType) Kind() IdentifiableKind { return KindServiceSwComponentType }

func (c *ServiceSwComponentType) AppendPort(port PortPrototype) error {
	return c.appendPort(c, port)
}

func (c *ServiceSwComponentType) linkChildren() { c.linkPorts(c) }

func (c *ServiceSwComponentType) FindChild(name string) Referrable {
	return findNamed(c.Ports, name)
}

func (c *ServiceSwComponentType) References() []Reference {
	return c.portReferences(nil)
}

type CompositionSwComponentType struct {
	ComponentBase
	Components []*SwComponentPrototype
	Connectors []SwConnector
}

func (*CompositionSwComponentType) Kind() IdentifiableKind { return KindCompositionSwComponentType }

func (c *CompositionSwComponentType) AppendPort(port PortPrototype) error {
	if c.FindChild(port.ShortName()) != nil {
		return alreadyExists("%s already contains an element named %q", c.Path(), port.ShortName())
	}
	return c.appendPort(c, port)
}

func (c *CompositionSwComponentType) AppendComponent(component *SwComponentPrototype) error {
	if c.FindChild(component.Name) != nil {
		return alreadyExists("%s already contains an element named %q", c.Path(), component.Name)
	}
	components, err := appendChild(c, c.Components, component)
	c.Components = components
	return err
}

func (c *CompositionSwComponentType) AppendConnector(connector SwConnector) error {
	if c.FindChild(connector.ShortName()) != nil {
		return alreadyExists("%s already contains an element named %q", c.Path(), connector.ShortName())
	}
	connectors, err := appendChild(c, c.Connectors, connector)
	c.Connectors = connectors
	return err
}

func (c *CompositionSwComponentType) linkChildren() {
	c.linkPorts(c)
	for _, component := range c.Components {
		component.attach(c)
	}
	for _, connector := range c.Connectors {
		connector.identity().attach(c)
	}
}

func (c *CompositionSwComponentType) FindChild(name string) Referrable {
	if found := findNamed(c.Ports, name); found != nil {
		return found
	}
	if found := findNamed(c.Components, name); found != nil {
		return found
	}
	return findNamed(c.Connectors, name)
}

func (c *CompositionSwComponentType) References() []Reference {
	refs := c.portReferences(nil)
	for _, component := range c.Components {
		refs = collectRefs(refs, component.TypeRef)
	}
	for _, connector := range c.Connectors {
		refs = connector.references(refs)
	}
	return refs
}
