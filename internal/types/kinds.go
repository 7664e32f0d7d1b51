package types

// IdentifiableKind is the closed DEST vocabulary: the XML tag of every
// identifiable element a reference may point at.
type IdentifiableKind string

const (
	KindPackage                          IdentifiableKind = "AR-PACKAGE"
	KindSwBaseType                       IdentifiableKind = "SW-BASE-TYPE"
	KindCompuMethod                      IdentifiableKind = "COMPU-METHOD"
	KindDataConstraint                   IdentifiableKind = "DATA-CONSTR"
	KindUnit                             IdentifiableKind = "UNIT"
	KindPhysicalDimension                IdentifiableKind = "PHYSICAL-DIMENSION"
	KindImplementationDataType           IdentifiableKind = "IMPLEMENTATION-DATA-TYPE"
	KindImplementationDataTypeElement    IdentifiableKind = "IMPLEMENTATION-DATA-TYPE-ELEMENT"
	KindApplicationPrimitiveDataType     IdentifiableKind = "APPLICATION-PRIMITIVE-DATA-TYPE"
	KindApplicationArrayDataType         IdentifiableKind = "APPLICATION-ARRAY-DATA-TYPE"
	KindApplicationRecordDataType        IdentifiableKind = "APPLICATION-RECORD-DATA-TYPE"
	KindApplicationArrayElement          IdentifiableKind = "APPLICATION-ARRAY-ELEMENT"
	KindApplicationRecordElement         IdentifiableKind = "APPLICATION-RECORD-ELEMENT"
	KindDataTypeMappingSet               IdentifiableKind = "DATA-TYPE-MAPPING-SET"
	KindConstantSpecification            IdentifiableKind = "CONSTANT-SPECIFICATION"
	KindModeDeclarationGroup             IdentifiableKind = "MODE-DECLARATION-GROUP"
	KindModeDeclaration                  IdentifiableKind = "MODE-DECLARATION"
	KindModeDeclarationGroupPrototype    IdentifiableKind = "MODE-DECLARATION-GROUP-PROTOTYPE"
	KindSenderReceiverInterface          IdentifiableKind = "SENDER-RECEIVER-INTERFACE"
	KindClientServerInterface            IdentifiableKind = "CLIENT-SERVER-INTERFACE"
	KindModeSwitchInterface              IdentifiableKind = "MODE-SWITCH-INTERFACE"
	KindParameterInterface               IdentifiableKind = "PARAMETER-INTERFACE"
	KindNvDataInterface                  IdentifiableKind = "NV-DATA-INTERFACE"
	KindVariableDataPrototype            IdentifiableKind = "VARIABLE-DATA-PROTOTYPE"
	KindParameterDataPrototype           IdentifiableKind = "PARAMETER-DATA-PROTOTYPE"
	KindArgumentDataPrototype            IdentifiableKind = "ARGUMENT-DATA-PROTOTYPE"
	KindClientServerOperation            IdentifiableKind = "CLIENT-SERVER-OPERATION"
	KindApplicationError                 IdentifiableKind = "APPLICATION-ERROR"
	KindApplicationSwComponentType       IdentifiableKind = "APPLICATION-SW-COMPONENT-TYPE"
	KindComplexDeviceDriverComponentType IdentifiableKind = "COMPLEX-DEVICE-DRIVER-SW-COMPONENT-TYPE"
	KindCompositionSwComponentType       IdentifiableKind = "COMPOSITION-SW-COMPONENT-TYPE"
	KindSensorActuatorSwComponentType    IdentifiableKind = "SENSOR-ACTUATOR-SW-COMPONENT-TYPE"
	KindServiceSwComponentType           IdentifiableKind = "SERVICE-SW-COMPONENT-TYPE"
	KindSwComponentPrototype             IdentifiableKind = "SW-COMPONENT-PROTOTYPE"
	KindRPortPrototype                   IdentifiableKind = "R-PORT-PROTOTYPE"
	KindPPortPrototype                   IdentifiableKind = "P-PORT-PROTOTYPE"
	KindPRPortPrototype                  IdentifiableKind = "PR-PORT-PROTOTYPE"
	KindAssemblySwConnector              IdentifiableKind = "ASSEMBLY-SW-CONNECTOR"
	KindDelegationSwConnector            IdentifiableKind = "DELEGATION-SW-CONNECTOR"
)

var identifiableKinds = map[IdentifiableKind]struct{}{
	KindPackage:                          {},
	KindSwBaseType:                       {},
	KindCompuMethod:                      {},
	KindDataConstraint:                   {},
	KindUnit:                             {},
	KindPhysicalDimension:                {},
	KindImplementationDataType:           {},
	KindImplementationDataTypeElement:    {},
	KindApplicationPrimitiveDataType:     {},
	KindApplicationArrayDataType:         {},
	KindApplicationRecordDataType:        {},
	KindApplicationArrayElement:          {},
	KindApplicationRecordElement:         {},
	KindDataTypeMappingSet:               {},
	KindConstantSpecification:            {},
	KindModeDeclarationGroup:             {},
	KindModeDeclaration:                  {},
	KindModeDeclarationGroupPrototype:    {},
	KindSenderReceiverInterface:          {},
	KindClientServerInterface:            {},
	KindModeSwitchInterface:              {},
	KindParameterInterface:               {},
	KindNvDataInterface:                  {},
	KindVariableDataPrototype:            {},
	KindParameterDataPrototype:           {},
	KindArgumentDataPrototype:            {},
	KindClientServerOperation:            {},
	KindApplicationError:                 {},
	KindApplicationSwComponentType:       {},
	KindComplexDeviceDriverComponentType: {},
	KindCompositionSwComponentType:       {},
	KindSensorActuatorSwComponentType:    {},
	KindServiceSwComponentType:           {},
	KindSwComponentPrototype:             {},
	KindRPortPrototype:                   {},
	KindPPortPrototype:                   {},
	KindPRPortPrototype:                  {},
	KindAssemblySwConnector:              {},
	KindDelegationSwConnector:            {},
}

// ParseIdentifiableKind validates DEST attribute text.
func ParseIdentifiableKind(text string) (IdentifiableKind, error) {
	kind := IdentifiableKind(text)
	if _, ok := identifiableKinds[kind]; !ok {
		return "", invalidArgument("unknown DEST value %q", text)
	}
	return kind, nil
}
