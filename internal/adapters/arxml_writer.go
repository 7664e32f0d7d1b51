package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"autosar-arxml/internal/ports"
	"autosar-arxml/internal/types"
)

const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

// WriterOptions configures ARXMLWriterAdapter. A non-nil Resolver enables
// strict mode: every reference must resolve before output is produced.
type WriterOptions struct {
	Resolver ports.Finder
}

type ARXMLWriterAdapter struct {
	opts WriterOptions
}

func NewARXMLWriterAdapter(opts WriterOptions) ARXMLWriterAdapter {
	return ARXMLWriterAdapter{opts: opts}
}

// arxmlEncoder carries the output buffer and the first error seen.
type arxmlEncoder struct {
	x   xmlWriter
	err error
}

func (e *arxmlEncoder) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (a ARXMLWriterAdapter) WriteDocument(ctx context.Context, doc *types.Document) ([]byte, error) {
	if doc == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("document is nil")
	}
	if a.opts.Resolver != nil {
		if err := checkStrict(a.opts.Resolver, doc.Elements()); err != nil {
			return nil, err
		}
	}
	version := doc.SchemaVersion
	if version == 0 {
		version = types.DefaultSchemaVersion
	}

	enc := &arxmlEncoder{}
	enc.x.declaration()
	enc.x.begin("AUTOSAR",
		xmlAttr{name: "xmlns", value: types.SchemaNamespace},
		xmlAttr{name: "xmlns:xsi", value: xsiNamespace},
		xmlAttr{name: "xsi:schemaLocation", value: types.SchemaNamespace + " " + types.SchemaFile(version)},
	)
	enc.fileInfo(doc.FileInfo)
	enc.adminData(doc.AdminData)
	if len(doc.Packages) > 0 {
		enc.x.begin("AR-PACKAGES")
		for _, pkg := range doc.Packages {
			enc.arPackage(pkg)
		}
		enc.x.end("AR-PACKAGES")
	}
	enc.x.end("AUTOSAR")
	if enc.err != nil {
		return nil, enc.err
	}

	log.Ctx(ctx).Debug().
		Int("packages", len(doc.Packages)).
		Int("schema_version", version).
		Int("bytes", enc.x.buf.Len()).
		Msg("arxml document written")
	return enc.x.output(), nil
}

// WriteFragment serializes one free-standing element or sub-structure with
// the same per-type logic WriteDocument uses.
func (a ARXMLWriterAdapter) WriteFragment(ctx context.Context, value any) ([]byte, error) {
	if a.opts.Resolver != nil {
		if element, ok := value.(types.Element); ok {
			if err := checkStrict(a.opts.Resolver, []types.Element{element}); err != nil {
				return nil, err
			}
		}
	}
	enc := &arxmlEncoder{}
	switch v := value.(type) {
	case *types.Package:
		enc.arPackage(v)
	case types.Element:
		enc.element(v)
	case types.ValueSpecification:
		enc.valueSpec(v)
	case *types.SwDataDefProps:
		enc.swDataDefProps(v)
	case *types.DataFilter:
		enc.dataFilter("DATA-FILTER", v)
	case *types.CompuScale:
		enc.compuScale(v)
	case *types.ImplementationDataTypeElement:
		enc.implementationElement(v)
	case *types.VariableDataPrototype:
		enc.variableDataPrototype(v)
	case *types.ParameterDataPrototype:
		enc.parameterDataPrototype(v)
	case *types.ClientServerOperation:
		enc.operation(v)
	case *types.ModeDeclaration:
		enc.modeDeclaration(v)
	case types.PortPrototype:
		enc.port(v)
	case types.RequiredComSpec:
		enc.requiredComSpec(v)
	case types.ProvidedComSpec:
		enc.providedComSpec(v)
	case types.SwConnector:
		enc.connector(v)
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no ARXML fragment form for %T", value))
	}
	if enc.err != nil {
		return nil, enc.err
	}
	log.Ctx(ctx).Debug().
		Str("type", fmt.Sprintf("%T", value)).
		Int("bytes", enc.x.buf.Len()).
		Msg("arxml fragment written")
	return enc.x.output(), nil
}

func checkStrict(finder ports.Finder, elements []types.Element) error {
	problems := types.CheckReferences(finder, elements)
	if len(problems) == 0 {
		return nil
	}
	lines := make([]string, 0, len(problems))
	for _, problem := range problems {
		lines = append(lines, fmt.Sprintf("%s: %v", problem.Owner, problem.Err))
	}
	code := errbuilder.CodeNotFound
	if errbuilder.CodeOf(problems[0].Err) == errbuilder.CodeFailedPrecondition {
		code = errbuilder.CodeFailedPrecondition
	}
	return errbuilder.New().
		WithCode(code).
		WithMsg(fmt.Sprintf("%d unresolved reference(s): %s", len(problems), strings.Join(lines, "; "))).
		WithCause(problems[0].Err)
}

func (e *arxmlEncoder) fileInfo(info *types.FileInfo) {
	if info.IsEmpty() {
		return
	}
	e.x.begin("FILE-INFO-COMMENT")
	e.sdgs(info.Sdgs)
	e.x.end("FILE-INFO-COMMENT")
}

func (e *arxmlEncoder) adminData(admin *types.AdminData) {
	if admin == nil {
		return
	}
	if len(admin.Sdgs) == 0 {
		e.x.empty("ADMIN-DATA")
		return
	}
	e.x.begin("ADMIN-DATA")
	e.sdgs(admin.Sdgs)
	e.x.end("ADMIN-DATA")
}

func (e *arxmlEncoder) sdgs(sdgs []types.Sdg) {
	e.x.begin("SDGS")
	for _, sdg := range sdgs {
		attrs := gidAttr(sdg.GID)
		if len(sdg.Sds) == 0 {
			e.x.empty("SDG", attrs...)
			continue
		}
		e.x.begin("SDG", attrs...)
		for _, sd := range sdg.Sds {
			e.x.leaf("SD", sd.Value, gidAttr(sd.GID)...)
		}
		e.x.end("SDG")
	}
	e.x.end("SDGS")
}

func gidAttr(gid string) []xmlAttr {
	if gid == "" {
		return nil
	}
	return []xmlAttr{{name: "GID", value: gid}}
}

// beginIdentifiable opens tag and writes the shared identifiable header,
// including the element's CATEGORY when it has one.
func (e *arxmlEncoder) beginIdentifiable(tag string, id *types.Identifiable, category string) {
	var attrs []xmlAttr
	if id.UUID != "" {
		attrs = append(attrs, xmlAttr{name: "UUID", value: id.UUID})
	}
	e.x.begin(tag, attrs...)
	e.x.leaf("SHORT-NAME", id.Name)
	e.languageText("LONG-NAME", "L-4", id.LongName)
	e.languageText("DESC", "L-2", id.Desc)
	e.x.text("CATEGORY", category)
	e.adminData(id.AdminData)
}

func (e *arxmlEncoder) languageText(tag string, entry string, texts []types.LanguageText) {
	if len(texts) == 0 {
		return
	}
	e.x.begin(tag)
	for _, text := range texts {
		var attrs []xmlAttr
		if text.Lang != "" {
			attrs = append(attrs, xmlAttr{name: "L", value: text.Lang})
		}
		e.x.leaf(entry, text.Text, attrs...)
	}
	e.x.end(tag)
}

func (e *arxmlEncoder) arPackage(pkg *types.Package) {
	e.beginIdentifiable("AR-PACKAGE", &pkg.Identifiable, pkg.Category)
	if len(pkg.Elements) > 0 {
		e.x.begin("ELEMENTS")
		for _, element := range pkg.Elements {
			e.element(element)
		}
		e.x.end("ELEMENTS")
	}
	if len(pkg.Packages) > 0 {
		e.x.begin("AR-PACKAGES")
		for _, child := range pkg.Packages {
			e.arPackage(child)
		}
		e.x.end("AR-PACKAGES")
	}
	e.x.end("AR-PACKAGE")
}

func (e *arxmlEncoder) element(element types.Element) {
	switch v := element.(type) {
	case *types.SwBaseType:
		e.swBaseType(v)
	case *types.CompuMethod:
		e.compuMethod(v)
	case *types.DataConstraint:
		e.dataConstraint(v)
	case *types.Unit:
		e.unit(v)
	case *types.ImplementationDataType:
		e.implementationDataType(v)
	case *types.ApplicationPrimitiveDataType:
		e.applicationPrimitive(v)
	case *types.ApplicationArrayDataType:
		e.applicationArray(v)
	case *types.ApplicationRecordDataType:
		e.applicationRecord(v)
	case *types.DataTypeMappingSet:
		e.dataTypeMappingSet(v)
	case *types.ConstantSpecification:
		e.constantSpecification(v)
	case *types.ModeDeclarationGroup:
		e.modeDeclarationGroup(v)
	case *types.SenderReceiverInterface:
		e.senderReceiverInterface(v)
	case *types.NvDataInterface:
		e.nvDataInterface(v)
	case *types.ParameterInterface:
		e.parameterInterface(v)
	case *types.ClientServerInterface:
		e.clientServerInterface(v)
	case *types.ModeSwitchInterface:
		e.modeSwitchInterface(v)
	case *types.ApplicationSwComponentType:
		e.atomicComponent("APPLICATION-SW-COMPONENT-TYPE", &v.ComponentBase)
	case *types.ComplexDeviceDriverSwComponentType:
		e.atomicComponent("COMPLEX-DEVICE-DRIVER-SW-COMPONENT-TYPE", &v.ComponentBase)
	case *types.SensorActuatorSwComponentType:
		e.atomicComponent("SENSOR-ACTUATOR-SW-COMPONENT-TYPE", &v.ComponentBase)
	case *types.ServiceSwComponentType:
		e.atomicComponent("SERVICE-SW-COMPONENT-TYPE", &v.ComponentBase)
	case *types.CompositionSwComponentType:
		e.composition(v)
	default:
		e.fail(errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no ARXML writer for element %T", element)))
	}
}
