package types

// VariableDataPrototype is a DATA-ELEMENTS or NV-DATAS entry.
type VariableDataPrototype struct {
	Identifiable
	Props     *SwDataDefProps
	TypeRef   AutosarDataTypeRef
	InitValue ValueSpecification
}

func (*VariableDataPrototype) Kind() IdentifiableKind { return KindVariableDataPrototype }

func (p *VariableDataPrototype) references(dst []Reference) []Reference {
	dst = p.Props.references(dst)
	dst = collectRefs(dst, p.TypeRef)
	return valueReferences(dst, p.InitValue)
}

type ParameterDataPrototype struct {
	Identifiable
	Props     *SwDataDefProps
	TypeRef   AutosarDataTypeRef
	InitValue ValueSpecification
}

func (*ParameterDataPrototype) Kind() IdentifiableKind { return KindParameterDataPrototype }

func (p *ParameterDataPrototype) references(dst []Reference) []Reference {
	dst = p.Props.references(dst)
	dst = collectRefs(dst, p.TypeRef)
	return valueReferences(dst, p.InitValue)
}

type SenderReceiverInterface struct {
	Identifiable
	IsService    *bool
	DataElements []*VariableDataPrototype
}

func (*SenderReceiverInterface) Kind() IdentifiableKind { return KindSenderReceiverInterface }

func (i *SenderReceiverInterface) AppendDataElement(element *VariableDataPrototype) error {
	elements, err := appendChild(i, i.DataElements, element)
	i.DataElements = elements
	return err
}

func (i *SenderReceiverInterface) linkChildren() {
	for _, element := range i.DataElements {
		element.attach(i)
	}
}

func (i *SenderReceiverInterface) FindChild(name string) Referrable {
	return findNamed(i.DataElements, name)
}

func (i *SenderReceiverInterface) References() []Reference {
	var refs []Reference
	for _, element := range i.DataElements {
		refs = element.references(refs)
	}
	return refs
}

type NvDataInterface struct {
	Identifiable
	IsService *bool
	NvDatas   []*VariableDataPrototype
}

func (*NvDataInterface) Kind() IdentifiableKind { return KindNvDataInterface }

func (i *NvDataInterface) AppendNvData(element *VariableDataPrototype) error {
	elements, err := appendChild(i, i.NvDatas, element)
	i.NvDatas = elements
	return err
}

func (i *NvDataInterface) linkChildren() {
	for _, element := range i.NvDatas {
		element.attach(i)
	}
}

func (i *NvDataInterface) FindChild(name string) Referrable {
	return findNamed(i.NvDatas, name)
}

func (i *NvDataInterface) References() []Reference {
	var refs []Reference
	for _, element := range i.NvDatas {
		refs = element.references(refs)
	}
	return refs
}

type ParameterInterface struct {
	Identifiable
	IsService  *bool
	Parameters []*ParameterDataPrototype
}

func (*ParameterInterface) Kind() IdentifiableKind { return KindParameterInterface }

func (i *ParameterInterface) AppendParameter(parameter *ParameterDataPrototype) error {
	parameters, err := appendChild(i, i.Parameters, parameter)
	i.Parameters = parameters
	return err
}

func (i *ParameterInterface) linkChildren() {
	for _, parameter := range i.Parameters {
		parameter.attach(i)
	}
}

func (i *ParameterInterface) FindChild(name string) Referrable {
	return findNamed(i.Parameters, name)
}

func (i *ParameterInterface) References() []Reference {
	var refs []Reference
	for _, parameter := range i.Parameters {
		refs = parameter.references(refs)
	}
	return refs
}

type ArgumentDataPrototype struct {
	Identifiable
	Props                    *SwDataDefProps
	TypeRef                  AutosarDataTypeRef
	Direction                ArgumentDirection
	ServerArgumentImplPolicy ServerArgumentImplPolicy
}

func (*ArgumentDataPrototype) Kind() IdentifiableKind { return KindArgumentDataPrototype }

type ApplicationError struct {
	Identifiable
	ErrorCode *int
}

func (*ApplicationError) Kind() IdentifiableKind { return KindApplicationError }

type ClientServerOperation struct {
	Identifiable
	Arguments         []*ArgumentDataPrototype
	PossibleErrorRefs []ApplicationErrorRef
}

func (*ClientServerOperation) Kind() IdentifiableKind { return KindClientServerOperation }

func (o *ClientServerOperation) AppendArgument(argument *ArgumentDataPrototype) error {
	arguments, err := appendChild(o, o.Arguments, argument)
	o.Arguments = arguments
	return err
}

func (o *ClientServerOperation) linkChildren() {
	for _, argument := range o.Arguments {
		argument.attach(o)
	}
}

func (o *ClientServerOperation) FindChild(name string) Referrable {
	return findNamed(o.Arguments, name)
}

func (o *ClientServerOperation) references(dst []Reference) []Reference {
	for _, argument := range o.Arguments {
		dst = argument.Props.references(dst)
		dst = collectRefs(dst, argument.TypeRef)
	}
	for _, ref := range o.PossibleErrorRefs {
		dst = collectRefs(dst, ref)
	}
	return dst
}

type ClientServerInterface struct {
	Identifiable
	IsService      *bool
	Operations     []*ClientServerOperation
	PossibleErrors []*ApplicationError
}

func (*ClientServerInterface) Kind() IdentifiableKind { return KindClientServerInterface }

func (i *ClientServerInterface) AppendOperation(operation *ClientServerOperation) error {
	if i.FindChild(operation.Name) != nil {
		return alreadyExists("%s already contains an element named %q", i.Path(), operation.Name)
	}
	operations, err := appendChild(i, i.Operations, operation)
	i.Operations = operations
	return err
}

func (i *ClientServerInterface) AppendPossibleError(appErr *ApplicationError) error {
	if i.FindChild(appErr.Name) != nil {
		return alreadyExists("%s already contains an element named %q", i.Path(), appErr.Name)
	}
	errs, err := appendChild(i, i.PossibleErrors, appErr)
	i.PossibleErrors = errs
	return err
}

func (i *ClientServerInterface) linkChildren() {
	for _, operation := range i.Operations {
		operation.attach(i)
		operation.linkChildren()
	}
	for _, appErr := range i.PossibleErrors {
		appErr.attach(i)
	}
}

func (i *ClientServerInterface) FindChild(name string) Referrable {
	if found := findNamed(i.Operations, name); found != nil {
		return found
	}
	return findNamed(i.PossibleErrors, name)
}

func (i *ClientServerInterface) References() []Reference {
	var refs []Reference
	for _, operation := range i.Operations {
		refs = operation.references(refs)
	}
	return refs
}

type ModeSwitchInterface struct {
	Identifiable
	IsService *bool
	ModeGroup *ModeDeclarationGroupPrototype
}

func (*ModeSwitchInterface) Kind() IdentifiableKind { return KindModeSwitchInterface }

func (i *ModeSwitchInterface) linkChildren() {
	if i.ModeGroup != nil {
		i.ModeGroup.attach(i)
	}
}

func (i *ModeSwitchInterface) FindChild(name string) Referrable {
	if i.ModeGroup != nil && i.ModeGroup.Name == name {
		return i.ModeGroup
	}
	return nil
}

func (i *ModeSwitchInterface) References() []Reference {
	if i.ModeGroup == nil {
		return nil
	}
	return collectRefs(nil, i.ModeGroup.TypeRef)
}
