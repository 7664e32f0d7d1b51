package adapters

import (
	"testing"

	"github.com/stretchr/testify/require"

	"autosar-arxml/internal/types"
)

func boolPtr(v bool) *bool          { return &v }
func floatPtr(v float64) *float64   { return &v }
func ref[C types.RefClass](path string) types.Ref[C] {
	return types.MustRef[C](path, "")
}
func destRef[C types.RefClass](path string, dest types.IdentifiableKind) types.Ref[C] {
	return types.MustRef[C](path, dest)
}

func named(name string) types.Identifiable {
	return types.Identifiable{Name: name}
}

func appendAll(t *testing.T, doc *types.Document, path string, elements ...types.Element) {
	t.Helper()
	pkg, err := doc.MakePackages(path)
	require.NoError(t, err)
	for _, element := range elements {
		require.NoError(t, pkg.AppendElement(element))
	}
}

// buildFullDocument covers every element type with all references
// resolvable inside the document.
func buildFullDocument(t *testing.T) *types.Document {
	t.Helper()
	doc := types.NewDocument()
	doc.FileInfo = &types.FileInfo{Sdgs: []types.Sdg{{GID: "generator", Sds: []types.Sd{{GID: "tool", Value: "arxml"}}}}}

	uint8Type := &types.SwBaseType{
		Identifiable: types.Identifiable{
			Name:     "uint8",
			UUID:     "6c1b0c1e-0000-4000-8000-000000000001",
			LongName: []types.LanguageText{{Lang: "EN", Text: "Unsigned 8 bit"}},
			Desc:     []types.LanguageText{{Lang: "EN", Text: "Plain byte & more"}},
		},
		Category:          "FIXED_LENGTH",
		Size:              intPtr(8),
		Encoding:          "NONE",
		NativeDeclaration: "uint8",
	}
	float32Type := &types.SwBaseType{
		Identifiable: named("float32"),
		Category:     "FIXED_LENGTH",
		Size:         intPtr(32),
		Encoding:     "IEEE754",
		MemAlignment: intPtr(4),
		ByteOrder:    types.ByteOrderMostSignificantLast,
	}
	appendAll(t, doc, "/DataTypes/BaseTypes", uint8Type, float32Type)

	appendAll(t, doc, "/DataTypes/Units", &types.Unit{
		Identifiable:   named("KmPerHour"),
		DisplayName:    "km/h",
		FactorSIToUnit: floatPtr(3.6),
		OffsetSIToUnit: floatPtr(0),
	})

	appendAll(t, doc, "/DataTypes/CompuMethods",
		&types.CompuMethod{
			Identifiable: named("OnOff"),
			Category:     "TEXTTABLE",
			InternalToPhys: &types.Computation{
				Scales: []types.CompuScale{
					{
						LowerLimit: &types.Limit{Value: types.Int(0), Interval: types.IntervalClosed},
						UpperLimit: &types.Limit{Value: types.Int(0), Interval: types.IntervalClosed},
						Content:    &types.CompuConst{Text: "OFF"},
					},
					{
						Label:      "on",
						Symbol:     "ON",
						Mask:       types.Int(1),
						LowerLimit: &types.Limit{Value: types.Int(1)},
						UpperLimit: &types.Limit{Value: types.NumberPattern("INF"), Interval: types.IntervalInfinite},
						Content:    &types.CompuConst{Text: "ON"},
					},
				},
				DefaultValue: &types.CompuConst{Value: types.Int(0)},
			},
		},
		&types.CompuMethod{
			Identifiable: named("Speed"),
			Category:     "LINEAR",
			UnitRef:      ref[types.UnitRefClass]("/DataTypes/Units/KmPerHour"),
			InternalToPhys: &types.Computation{
				Scales: []types.CompuScale{{
					Content: &types.RationalCoeffs{
						Numerator:   []types.Number{types.Float(-10.5), types.Float(0.4)},
						Denominator: []types.Number{types.Int(1)},
					},
				}},
			},
		},
	)

	appendAll(t, doc, "/DataTypes/DataConstrs", &types.DataConstraint{
		Identifiable: named("SpeedLimits"),
		Rules: []types.DataConstraintRule{{
			Level: intPtr(0),
			Phys: &types.ScaleConstraint{
				LowerLimit: &types.Limit{Value: types.Int(0), Interval: types.IntervalClosed},
				UpperLimit: &types.Limit{Value: types.Float(300), Interval: types.IntervalOpen},
				UnitRef:    ref[types.UnitRefClass]("/DataTypes/Units/KmPerHour"),
			},
			Internal: &types.ScaleConstraint{
				UpperLimit: &types.Limit{Value: types.NumberPattern("0xFF")},
			},
		}},
	})

	uint8Ref := ref[types.SwBaseTypeRefClass]("/DataTypes/BaseTypes/uint8")
	speedType, err := types.NewImplementationDataType("Speed", types.ValueLayout{Props: types.SwDataDefProps{
		BaseTypeRef:       uint8Ref,
		CalibrationAccess: types.CalibrationAccessReadOnly,
		CompuMethodRef:    ref[types.CompuMethodRefClass]("/DataTypes/CompuMethods/Speed"),
		DataConstraintRef: ref[types.DataConstraintRefClass]("/DataTypes/DataConstrs/SpeedLimits"),
		ImplPolicy:        types.ImplPolicyStandard,
	}})
	require.NoError(t, err)
	speedType.TypeEmitter = "RTE"
	arrayType, err := types.NewImplementationDataType("Array8", types.ArrayLayout{
		Element: &types.ImplementationDataTypeElement{
			Identifiable:       named("Elem"),
			Layout:             types.ValueLayout{Props: types.SwDataDefProps{BaseTypeRef: uint8Ref}},
			ArraySize:          intPtr(8),
			ArraySizeSemantics: types.ArraySizeFixed,
			ArrayImplPolicy:    types.ArrayImplPayloadAsArray,
		},
	})
	require.NoError(t, err)
	recordType, err := types.NewImplementationDataType("Record", types.StructureLayout{
		Props: &types.SwDataDefProps{DisplayFormat: "%d"},
		Elements: []*types.ImplementationDataTypeElement{
			{
				Identifiable: named("a"),
				Layout: types.TypeReferenceLayout{Props: types.SwDataDefProps{
					ImplementationTypeRef: ref[types.ImplementationDataTypeRefClass]("/DataTypes/ImplementationTypes/Speed"),
				}},
			},
			{
				Identifiable: named("b"),
				Layout: types.ValueLayout{Props: types.SwDataDefProps{
					BaseTypeRef: ref[types.SwBaseTypeRefClass]("/DataTypes/BaseTypes/float32"),
				}},
				IsOptional: boolPtr(true),
			},
		},
	})
	require.NoError(t, err)
	pointerType, err := types.NewImplementationDataType("Pointer", types.DataReferenceLayout{Props: types.SwDataDefProps{
		PointerTargetProps: &types.SwPointerTargetProps{
			TargetCategory: "VALUE",
			Props:          &types.SwDataDefProps{BaseTypeRef: uint8Ref},
		},
	}})
	require.NoError(t, err)
	appendAll(t, doc, "/DataTypes/ImplementationTypes", speedType, arrayType, recordType, pointerType)

	speedAppRef := destRef[types.ApplicationDataTypeRefClass]("/DataTypes/ApplicationTypes/SpeedApp", types.KindApplicationPrimitiveDataType)
	record := &types.ApplicationRecordDataType{Identifiable: named("SpeedRecord"), Category: "STRUCTURE"}
	require.NoError(t, record.AppendElement(&types.ApplicationRecordElement{Identifiable: named("Front"), Category: "VALUE", TypeRef: speedAppRef}))
	require.NoError(t, record.AppendElement(&types.ApplicationRecordElement{Identifiable: named("Rear"), TypeRef: speedAppRef}))
	appendAll(t, doc, "/DataTypes/ApplicationTypes",
		&types.ApplicationPrimitiveDataType{
			Identifiable: named("SpeedApp"),
			Category:     "VALUE",
			Props: &types.SwDataDefProps{
				CalibrationAccess: types.CalibrationAccessReadWrite,
				CompuMethodRef:    ref[types.CompuMethodRefClass]("/DataTypes/CompuMethods/Speed"),
				UnitRef:           ref[types.UnitRefClass]("/DataTypes/Units/KmPerHour"),
			},
		},
		&types.ApplicationArrayDataType{
			Identifiable: named("SpeedArray"),
			Category:     "ARRAY",
			Element: &types.ApplicationArrayElement{
				Identifiable:        named("Item"),
				Category:            "VALUE",
				TypeRef:             speedAppRef,
				ArraySizeHandling:   types.ArraySizeHandlingAllIndicesSame,
				ArraySizeSemantics:  types.ArraySizeFixed,
				MaxNumberOfElements: intPtr(4),
			},
		},
		record,
	)

	appendAll(t, doc, "/DataTypes/Mappings", &types.DataTypeMappingSet{
		Identifiable: named("Map"),
		DataTypeMaps: []types.DataTypeMap{{
			ApplicationTypeRef:    speedAppRef,
			ImplementationTypeRef: ref[types.ImplementationDataTypeRefClass]("/DataTypes/ImplementationTypes/Speed"),
		}},
		ModeRequestTypeMaps: []types.ModeRequestTypeMap{{
			ImplementationTypeRef: ref[types.ImplementationDataTypeRefClass]("/DataTypes/ImplementationTypes/Speed"),
			ModeGroupRef:          ref[types.ModeDeclarationGroupRefClass]("/ModeDeclarations/DriveModes"),
		}},
	})

	appendAll(t, doc, "/Constants",
		&types.ConstantSpecification{
			Identifiable: named("DefaultSpeed"),
			Value: &types.RecordValue{
				Label: "DefaultSpeed",
				Fields: []types.ValueSpecification{
					&types.NumericalValue{Label: "speed", Value: types.Float(0.4)},
					&types.TextValue{Value: "x"},
					&types.ArrayValue{
						IntendedPartialInitializationCount: intPtr(1),
						Elements: []types.ValueSpecification{
							&types.NumericalValue{Value: types.Int(1)},
							&types.NumericalValue{Value: types.Int(65280)},
						},
					},
					&types.NotAvailableValue{DefaultPattern: intPtr(0)},
					&types.ApplicationValue{
						Category: "VALUE",
						AxisConts: []types.SwAxisCont{{
							Category:  "STD_AXIS",
							AxisIndex: intPtr(1),
							Values:    []types.SwValue{{V: types.Int(1)}},
						}},
						ValueCont: &types.SwValueCont{
							UnitRef:   ref[types.UnitRefClass]("/DataTypes/Units/KmPerHour"),
							ArraySize: []types.Number{types.Int(2)},
							Values:    []types.SwValue{{V: types.Float(1.5)}, {VT: "ON"}},
						},
					},
					&types.ConstantReference{ConstantRef: ref[types.ConstantRefClass]("/Constants/Zero")},
				},
			},
		},
		&types.ConstantSpecification{
			Identifiable: named("Zero"),
			Value:        &types.NumericalValue{Value: types.Int(0)},
		},
	)

	modes := &types.ModeDeclarationGroup{
		Identifiable:      named("DriveModes"),
		Category:          "ALPHABETIC_ORDER",
		InitialModeRef:    ref[types.ModeDeclarationRefClass]("/ModeDeclarations/DriveModes/Off"),
		OnTransitionValue: intPtr(255),
	}
	require.NoError(t, modes.AppendModeDeclaration(&types.ModeDeclaration{Identifiable: named("Off"), Value: intPtr(0)}))
	require.NoError(t, modes.AppendModeDeclaration(&types.ModeDeclaration{Identifiable: named("On"), Value: intPtr(1)}))
	appendAll(t, doc, "/ModeDeclarations", modes)

	speedIDTRef := destRef[types.AutosarDataTypeRefClass]("/DataTypes/ImplementationTypes/Speed", types.KindImplementationDataType)
	speedIf := &types.SenderReceiverInterface{Identifiable: named("SpeedIf"), IsService: boolPtr(false)}
	require.NoError(t, speedIf.AppendDataElement(&types.VariableDataPrototype{
		Identifiable: named("Speed"),
		Props:        &types.SwDataDefProps{CalibrationAccess: types.CalibrationAccessReadOnly},
		TypeRef:      speedIDTRef,
		InitValue:    &types.ConstantReference{ConstantRef: ref[types.ConstantRefClass]("/Constants/Zero")},
	}))
	settingsIf := &types.NvDataInterface{Identifiable: named("SettingsIf")}
	require.NoError(t, settingsIf.AppendNvData(&types.VariableDataPrototype{Identifiable: named("Settings"), TypeRef: speedIDTRef}))
	calibIf := &types.ParameterInterface{Identifiable: named("CalibIf")}
	require.NoError(t, calibIf.AppendParameter(&types.ParameterDataPrototype{
		Identifiable: named("Gain"),
		TypeRef:      speedIDTRef,
		InitValue:    &types.NumericalValue{Value: types.Float(0.5)},
	}))
	diagIf := &types.ClientServerInterface{Identifiable: named("DiagIf"), IsService: boolPtr(true)}
	read := &types.ClientServerOperation{
		Identifiable:      named("Read"),
		PossibleErrorRefs: []types.ApplicationErrorRef{ref[types.ApplicationErrorRefClass]("/PortInterfaces/DiagIf/E_NOT_OK")},
	}
	require.NoError(t, read.AppendArgument(&types.ArgumentDataPrototype{
		Identifiable:             named("value"),
		TypeRef:                  speedIDTRef,
		Direction:                types.DirectionOut,
		ServerArgumentImplPolicy: types.ServerArgumentUseArgumentType,
	}))
	require.NoError(t, diagIf.AppendOperation(read))
	require.NoError(t, diagIf.AppendPossibleError(&types.ApplicationError{Identifiable: named("E_NOT_OK"), ErrorCode: intPtr(1)}))
	modeIf := &types.ModeSwitchInterface{
		Identifiable: named("ModeIf"),
		ModeGroup: &types.ModeDeclarationGroupPrototype{
			Identifiable: named("mode"),
			TypeRef:      ref[types.ModeDeclarationGroupRefClass]("/ModeDeclarations/DriveModes"),
		},
	}
	appendAll(t, doc, "/PortInterfaces", speedIf, settingsIf, calibIf, diagIf, modeIf)

	ifRef := func(path string, kind types.IdentifiableKind) types.PortInterfaceRef {
		return destRef[types.PortInterfaceRefClass](path, kind)
	}
	speedElementRef := ref[types.VariableDataPrototypeRefClass]("/PortInterfaces/SpeedIf/Speed")
	readRef := ref[types.ClientServerOperationRefClass]("/PortInterfaces/DiagIf/Read")
	modeGroupRef := ref[types.ModeDeclarationGroupPrototypeRefClass]("/PortInterfaces/ModeIf/mode")

	sensor := &types.ApplicationSwComponentType{}
	sensor.Name = "Sensor"
	require.NoError(t, sensor.AppendPort(&types.PPortPrototype{
		Identifiable:         named("SpeedOut"),
		ProvidedInterfaceRef: ifRef("/PortInterfaces/SpeedIf", types.KindSenderReceiverInterface),
		ComSpecs: []types.ProvidedComSpec{&types.NonqueuedSenderComSpec{
			DataElementRef:         speedElementRef,
			UsesEndToEndProtection: boolPtr(false),
			InitValue:              &types.NumericalValue{Value: types.Int(0)},
		}},
	}))
	require.NoError(t, sensor.AppendPort(&types.PPortPrototype{
		Identifiable:         named("Diag"),
		ProvidedInterfaceRef: ifRef("/PortInterfaces/DiagIf", types.KindClientServerInterface),
		ComSpecs:             []types.ProvidedComSpec{&types.ServerComSpec{OperationRef: readRef, QueueLength: intPtr(1)}},
	}))
	require.NoError(t, sensor.AppendPort(&types.RPortPrototype{
		Identifiable:         named("ModeIn"),
		RequiredInterfaceRef: ifRef("/PortInterfaces/ModeIf", types.KindModeSwitchInterface),
		ComSpecs: []types.RequiredComSpec{&types.ModeSwitchReceiverComSpec{
			ModeGroupRef:    modeGroupRef,
			EnhancedModeAPI: boolPtr(false),
		}},
	}))

	controller := &types.ApplicationSwComponentType{}
	controller.Name = "Controller"
	require.NoError(t, controller.AppendPort(&types.RPortPrototype{
		Identifiable:         named("SpeedIn"),
		RequiredInterfaceRef: ifRef("/PortInterfaces/SpeedIf", types.KindSenderReceiverInterface),
		ComSpecs: []types.RequiredComSpec{&types.NonqueuedReceiverComSpec{
			DataElementRef:      speedElementRef,
			AliveTimeout:        floatPtr(0.1),
			EnableUpdate:        boolPtr(true),
			Filter:              &types.DataFilter{Type: types.FilterAlways},
			HandleNeverReceived: boolPtr(false),
			HandleTimeoutType:   "NONE",
			InitValue:           &types.NumericalValue{Value: types.Int(0)},
		}},
	}))
	require.NoError(t, controller.AppendPort(&types.RPortPrototype{
		Identifiable:         named("Calib"),
		RequiredInterfaceRef: ifRef("/PortInterfaces/CalibIf", types.KindParameterInterface),
		ComSpecs: []types.RequiredComSpec{&types.ParameterRequireComSpec{
			ParameterRef: ref[types.ParameterDataPrototypeRefClass]("/PortInterfaces/CalibIf/Gain"),
			InitValue:    &types.NumericalValue{Value: types.Float(0.5)},
		}},
	}))
	require.NoError(t, controller.AppendPort(&types.PRPortPrototype{
		Identifiable:                 named("Settings"),
		ProvidedRequiredInterfaceRef: ifRef("/PortInterfaces/SettingsIf", types.KindNvDataInterface),
		ProvidedComSpecs: []types.ProvidedComSpec{&types.QueuedSenderComSpec{
			DataElementRef: ref[types.VariableDataPrototypeRefClass]("/PortInterfaces/SettingsIf/Settings"),
		}},
		RequiredComSpecs: []types.RequiredComSpec{&types.QueuedReceiverComSpec{
			DataElementRef: ref[types.VariableDataPrototypeRefClass]("/PortInterfaces/SettingsIf/Settings"),
			QueueLength:    intPtr(4),
		}},
	}))
	require.NoError(t, controller.AppendPort(&types.RPortPrototype{
		Identifiable:         named("DiagClient"),
		RequiredInterfaceRef: ifRef("/PortInterfaces/DiagIf", types.KindClientServerInterface),
		ComSpecs:             []types.RequiredComSpec{&types.ClientComSpec{OperationRef: readRef}},
	}))

	driver := &types.ComplexDeviceDriverSwComponentType{}
	driver.Name = "Driver"
	require.NoError(t, driver.AppendPort(&types.PPortPrototype{
		Identifiable:         named("ModeOut"),
		ProvidedInterfaceRef: ifRef("/PortInterfaces/ModeIf", types.KindModeSwitchInterface),
		ComSpecs: []types.ProvidedComSpec{&types.ModeSwitchSenderComSpec{
			ModeGroupRef:           modeGroupRef,
			EnhancedModeAPI:        boolPtr(true),
			QueueLength:            intPtr(2),
			ModeSwitchedAckTimeout: floatPtr(0.5),
		}},
	}))

	driver.Desc = []types.LanguageText{{Lang: "EN", Text: "  Mode switch\n  driver  "}}
	driver.AdminData = &types.AdminData{Sdgs: []types.Sdg{{
		GID: "origin",
		Sds: []types.Sd{{GID: "owner", Value: " powertrain "}},
	}}}

	actuator := &types.SensorActuatorSwComponentType{}
	actuator.Name = "Actuator"
	require.NoError(t, actuator.AppendPort(&types.RPortPrototype{
		Identifiable:         named("SpeedIn"),
		RequiredInterfaceRef: ifRef("/PortInterfaces/SpeedIf", types.KindSenderReceiverInterface),
	}))

	diagnostics := &types.ServiceSwComponentType{}
	diagnostics.Name = "Diagnostics"
	diagnostics.AdminData = &types.AdminData{}
	require.NoError(t, diagnostics.AppendPort(&types.PPortPrototype{
		Identifiable:         named("DiagServer"),
		ProvidedInterfaceRef: ifRef("/PortInterfaces/DiagIf", types.KindClientServerInterface),
	}))

	system := &types.CompositionSwComponentType{}
	system.Name = "System"
	require.NoError(t, system.AppendPort(&types.PPortPrototype{
		Identifiable:         named("SpeedOut"),
		ProvidedInterfaceRef: ifRef("/PortInterfaces/SpeedIf", types.KindSenderReceiverInterface),
	}))
	require.NoError(t, system.AppendComponent(&types.SwComponentPrototype{
		Identifiable: named("sensor"),
		TypeRef:      destRef[types.SwComponentTypeRefClass]("/Components/Sensor", types.KindApplicationSwComponentType),
	}))
	require.NoError(t, system.AppendComponent(&types.SwComponentPrototype{
		Identifiable: named("controller"),
		TypeRef:      destRef[types.SwComponentTypeRefClass]("/Components/Controller", types.KindApplicationSwComponentType),
	}))
	require.NoError(t, system.AppendComponent(&types.SwComponentPrototype{
		Identifiable: named("actuator"),
		TypeRef:      destRef[types.SwComponentTypeRefClass]("/Components/Actuator", types.KindSensorActuatorSwComponentType),
	}))
	require.NoError(t, system.AppendComponent(&types.SwComponentPrototype{
		Identifiable: named("diagnostics"),
		TypeRef:      destRef[types.SwComponentTypeRefClass]("/Components/Diagnostics", types.KindServiceSwComponentType),
	}))
	sensorProto := ref[types.SwComponentPrototypeRefClass]("/Components/System/sensor")
	require.NoError(t, system.AppendConnector(&types.AssemblySwConnector{
		Identifiable: named("sensorToController"),
		Provider: &types.PPortInstanceRef{
			ContextComponentRef: sensorProto,
			TargetPortRef:       ref[types.PPortPrototypeRefClass]("/Components/Sensor/SpeedOut"),
		},
		Requester: &types.RPortInstanceRef{
			ContextComponentRef: ref[types.SwComponentPrototypeRefClass]("/Components/System/controller"),
			TargetPortRef:       ref[types.RPortPrototypeRefClass]("/Components/Controller/SpeedIn"),
		},
	}))
	require.NoError(t, system.AppendConnector(&types.DelegationSwConnector{
		Identifiable: named("speedOut"),
		InnerPort: &types.PPortInstanceRef{
			ContextComponentRef: sensorProto,
			TargetPortRef:       ref[types.PPortPrototypeRefClass]("/Components/Sensor/SpeedOut"),
		},
		OuterPortRef: destRef[types.PortPrototypeRefClass]("/Components/System/SpeedOut", types.KindPPortPrototype),
	}))
	appendAll(t, doc, "/Components", sensor, controller, driver, actuator, diagnostics, system)

	doc.FindPackage("/Components").Category = "COMPONENTS"
	return doc
}
