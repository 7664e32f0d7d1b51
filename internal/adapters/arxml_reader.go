package adapters

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"autosar-arxml/internal/types"
)

var schemaFilePattern = regexp.MustCompile(`AUTOSAR_(\d{5})\.xsd`)

// ReaderOptions configures ARXMLReaderAdapter. With CollectErrors set the
// reader skips every malformed element, records it in ReadResult.Problems
// and keeps going; otherwise the first problem aborts the read.
type ReaderOptions struct {
	CollectErrors bool
}

type ARXMLReaderAdapter struct {
	opts ReaderOptions
}

func NewARXMLReaderAdapter(opts ReaderOptions) ARXMLReaderAdapter {
	return ARXMLReaderAdapter{opts: opts}
}

type arxmlDecoder struct {
	file     string
	collect  bool
	problems []*types.ParseError
}

func (a ARXMLReaderAdapter) ReadDocument(ctx context.Context, data []byte, file string) (types.ReadResult, error) {
	root, err := parseXMLTree(data)
	if err != nil {
		return types.ReadResult{}, err
	}
	d := &arxmlDecoder{file: file, collect: a.opts.CollectErrors}
	if root.tag != "AUTOSAR" {
		return types.ReadResult{}, parseFailure(d.errorAt(root, invalidTag("root element must be AUTOSAR")))
	}

	doc := types.NewDocument()
	if location, ok := root.attr("schemaLocation"); ok {
		if match := schemaFilePattern.FindStringSubmatch(location); match != nil {
			version, _ := strconv.Atoi(match[1])
			doc.SchemaVersion = version
		}
	}
	for _, c := range root.children {
		var err error
		switch c.tag {
		case "ADMIN-DATA":
			doc.AdminData, err = d.adminData(c)
		case "FILE-INFO-COMMENT":
			doc.FileInfo, err = d.fileInfo(c)
		case "AR-PACKAGES":
			for _, pc := range c.children {
				if err := d.documentPackage(doc, pc); err != nil {
					return types.ReadResult{}, parseFailure(err)
				}
			}
		default:
			err = d.wrap(c, unexpectedTag())
		}
		if err != nil {
			if err := d.report(err); err != nil {
				return types.ReadResult{}, parseFailure(err)
			}
		}
	}

	log.Ctx(ctx).Debug().
		Str("file", file).
		Int("packages", len(doc.Packages)).
		Int("schema_version", doc.SchemaVersion).
		Int("problems", len(d.problems)).
		Msg("arxml document read")
	return types.ReadResult{Document: doc, Problems: d.problems}, nil
}

func (d *arxmlDecoder) documentPackage(doc *types.Document, n *xmlNode) error {
	if n.tag != "AR-PACKAGE" {
		return d.report(d.wrap(n, unexpectedTag()))
	}
	pkg, err := d.arPackage(n)
	if err == nil {
		err = d.wrap(n, doc.Append(pkg))
	}
	if err != nil {
		return d.report(err)
	}
	return nil
}

// ReadFragment decodes one free-standing element or sub-structure. The
// root tag selects the type, as in WriteFragment.
func (a ARXMLReaderAdapter) ReadFragment(ctx context.Context, data []byte) (any, error) {
	root, err := parseXMLTree(data)
	if err != nil {
		return nil, err
	}
	d := &arxmlDecoder{}
	value, err := d.fragment(root)
	if err != nil {
		return nil, parseFailure(err)
	}
	log.Ctx(ctx).Debug().
		Str("tag", root.tag).
		Str("type", fmt.Sprintf("%T", value)).
		Msg("arxml fragment read")
	return value, nil
}

func (d *arxmlDecoder) fragment(n *xmlNode) (any, error) {
	if n.tag == "AR-PACKAGE" {
		return d.arPackage(n)
	}
	if decode, ok := elementDecoders[n.tag]; ok {
		return decode(d, n)
	}
	if _, ok := valueSpecTags[n.tag]; ok {
		return d.valueSpec(n)
	}
	switch n.tag {
	case "SW-DATA-DEF-PROPS":
		return d.swDataDefProps(n)
	case "DATA-FILTER":
		return d.dataFilter(n)
	case "COMPU-SCALE":
		return d.compuScale(n)
	case "IMPLEMENTATION-DATA-TYPE-ELEMENT":
		return d.implementationElement(n)
	case "VARIABLE-DATA-PROTOTYPE":
		return d.variableDataPrototype(n)
	case "PARAMETER-DATA-PROTOTYPE":
		return d.parameterDataPrototype(n)
	case "CLIENT-SERVER-OPERATION":
		return d.operation(n)
	case "MODE-DECLARATION":
		return d.modeDeclaration(n)
	case "R-PORT-PROTOTYPE", "P-PORT-PROTOTYPE", "PR-PORT-PROTOTYPE":
		return d.port(n)
	case "ASSEMBLY-SW-CONNECTOR", "DELEGATION-SW-CONNECTOR":
		return d.connector(n)
	}
	if _, ok := requiredComSpecTags[n.tag]; ok {
		return d.requiredComSpec(n)
	}
	if _, ok := providedComSpecTags[n.tag]; ok {
		return d.providedComSpec(n)
	}
	return nil, d.errorAt(n, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("no ARXML fragment form for <%s>", n.tag)))
}

// parseFailure turns a ParseError into the reader's returned error. The code
// of the underlying failure is kept for unsupported categories.
func parseFailure(err error) error {
	var pe *types.ParseError
	if !errors.As(err, &pe) {
		return err
	}
	code := errbuilder.CodeInvalidArgument
	if pe.Err != nil && errbuilder.CodeOf(pe.Err) == errbuilder.CodeFailedPrecondition {
		code = errbuilder.CodeFailedPrecondition
	}
	return errbuilder.New().
		WithCode(code).
		WithMsg(pe.Error()).
		WithCause(pe)
}

// report records err in collect mode and returns nil, otherwise returns it.
func (d *arxmlDecoder) report(err error) error {
	if err == nil {
		return nil
	}
	var pe *types.ParseError
	if !errors.As(err, &pe) {
		pe = &types.ParseError{File: d.file, Msg: err.Error(), Err: err}
	}
	if !d.collect {
		return pe
	}
	d.problems = append(d.problems, pe)
	return nil
}

func (d *arxmlDecoder) errorAt(n *xmlNode, err error) *types.ParseError {
	pe := &types.ParseError{
		File: d.file,
		Line: n.line,
		Tag:  n.tag,
		Path: identifiablePath(n),
		Msg:  err.Error(),
		Err:  err,
	}
	if n.parent != nil {
		pe.Parent = n.parent.tag
	}
	return pe
}

// wrap attaches node context to err unless it already carries some.
func (d *arxmlDecoder) wrap(n *xmlNode, err error) error {
	if err == nil {
		return nil
	}
	var pe *types.ParseError
	if errors.As(err, &pe) {
		return err
	}
	return d.errorAt(n, err)
}

// identifiablePath joins the SHORT-NAMEs of n and its ancestors.
func identifiablePath(n *xmlNode) string {
	var names []string
	for cur := n; cur != nil; cur = cur.parent {
		if short := cur.child("SHORT-NAME"); short != nil {
			names = append(names, short.value())
		}
	}
	if len(names) == 0 {
		return ""
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return "/" + strings.Join(names, "/")
}

func unexpectedTag() error {
	return invalidTag("unexpected element")
}

func invalidTag(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
}

// fields walks the children of n. The identifiable header is consumed when
// id is non-nil; every other child goes to fn.
func (d *arxmlDecoder) fields(n *xmlNode, id *types.Identifiable, fn func(c *xmlNode) error) error {
	if id != nil {
		if uuid, ok := n.attr("UUID"); ok {
			id.UUID = uuid
		}
	}
	for _, c := range n.children {
		var err error
		switch {
		case id != nil && c.tag == "SHORT-NAME":
			id.Name = c.value()
		case id != nil && c.tag == "LONG-NAME":
			id.LongName, err = d.languageTexts(c, "L-4")
		case id != nil && c.tag == "DESC":
			id.Desc, err = d.languageTexts(c, "L-2")
		case id != nil && c.tag == "ADMIN-DATA":
			id.AdminData, err = d.adminData(c)
		default:
			err = fn(c)
		}
		if err == nil {
			err = d.leaf(c)
		}
		if err != nil {
			return d.wrap(c, err)
		}
	}
	if id != nil && id.Name == "" {
		return d.errorAt(n, invalidTag("missing SHORT-NAME"))
	}
	return nil
}

// leaf rejects child elements under a node that was read as text.
func (d *arxmlDecoder) leaf(n *xmlNode) error {
	if n.leaf && len(n.children) > 0 {
		return d.errorAt(n.children[0], unexpectedTag())
	}
	return nil
}

func (d *arxmlDecoder) languageTexts(n *xmlNode, entry string) ([]types.LanguageText, error) {
	var texts []types.LanguageText
	err := d.fields(n, nil, func(c *xmlNode) error {
		if c.tag != entry {
			return unexpectedTag()
		}
		lang, _ := c.attr("L")
		texts = append(texts, types.LanguageText{Lang: lang, Text: c.rawValue()})
		return nil
	})
	return texts, err
}

func (d *arxmlDecoder) fileInfo(n *xmlNode) (*types.FileInfo, error) {
	info := &types.FileInfo{}
	err := d.fields(n, nil, func(c *xmlNode) error {
		if c.tag != "SDGS" {
			return unexpectedTag()
		}
		return d.sdgs(c, &info.Sdgs)
	})
	return info, err
}

// adminData keeps the SDGS of an ADMIN-DATA block. Revisions and language
// settings are not modeled and are reported like any other unknown tag.
func (d *arxmlDecoder) adminData(n *xmlNode) (*types.AdminData, error) {
	admin := &types.AdminData{}
	err := d.fields(n, nil, func(c *xmlNode) error {
		if c.tag != "SDGS" {
			return unexpectedTag()
		}
		return d.sdgs(c, &admin.Sdgs)
	})
	return admin, err
}

func (d *arxmlDecoder) sdgs(n *xmlNode, dst *[]types.Sdg) error {
	return d.fields(n, nil, func(sc *xmlNode) error {
		if sc.tag != "SDG" {
			return unexpectedTag()
		}
		gid, _ := sc.attr("GID")
		sdg := types.Sdg{GID: gid}
		err := d.fields(sc, nil, func(sd *xmlNode) error {
			if sd.tag != "SD" {
				return unexpectedTag()
			}
			gid, _ := sd.attr("GID")
			sdg.Sds = append(sdg.Sds, types.Sd{GID: gid, Value: sd.rawValue()})
			return nil
		})
		*dst = append(*dst, sdg)
		return err
	})
}

func (d *arxmlDecoder) arPackage(n *xmlNode) (*types.Package, error) {
	pkg := &types.Package{}
	var elements, packages *xmlNode
	err := d.fields(n, &pkg.Identifiable, func(c *xmlNode) error {
		switch c.tag {
		case "CATEGORY":
			pkg.Category = c.value()
		case "ELEMENTS":
			elements = c
		case "AR-PACKAGES":
			packages = c
		default:
			return unexpectedTag()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if elements != nil {
		for _, c := range elements.children {
			element, err := d.element(c)
			if err == nil {
				err = d.wrap(c, pkg.AppendElement(element))
			}
			if err := d.report(err); err != nil {
				return nil, err
			}
		}
	}
	if packages != nil {
		for _, c := range packages.children {
			if c.tag != "AR-PACKAGE" {
				if err := d.report(d.wrap(c, unexpectedTag())); err != nil {
					return nil, err
				}
				continue
			}
			child, err := d.arPackage(c)
			if err == nil {
				err = d.wrap(c, pkg.Append(child))
			}
			if err := d.report(err); err != nil {
				return nil, err
			}
		}
	}
	return pkg, nil
}

type elementDecoder func(d *arxmlDecoder, n *xmlNode) (types.Element, error)

// decodeAs adapts a typed element decoder to the dispatch table.
func decodeAs[T types.Element](fn func(d *arxmlDecoder, n *xmlNode) (T, error)) elementDecoder {
	return func(d *arxmlDecoder, n *xmlNode) (types.Element, error) {
		element, err := fn(d, n)
		if err != nil {
			return nil, err
		}
		return element, nil
	}
}

var elementDecoders map[string]elementDecoder

func init() {
	elementDecoders = map[string]elementDecoder{
		"SW-BASE-TYPE":                            decodeAs((*arxmlDecoder).swBaseType),
		"COMPU-METHOD":                            decodeAs((*arxmlDecoder).compuMethod),
		"DATA-CONSTR":                             decodeAs((*arxmlDecoder).dataConstraint),
		"UNIT":                                    decodeAs((*arxmlDecoder).unit),
		"IMPLEMENTATION-DATA-TYPE":                decodeAs((*arxmlDecoder).implementationDataType),
		"APPLICATION-PRIMITIVE-DATA-TYPE":         decodeAs((*arxmlDecoder).applicationPrimitive),
		"APPLICATION-ARRAY-DATA-TYPE":             decodeAs((*arxmlDecoder).applicationArray),
		"APPLICATION-RECORD-DATA-TYPE":            decodeAs((*arxmlDecoder).applicationRecord),
		"DATA-TYPE-MAPPING-SET":                   decodeAs((*arxmlDecoder).dataTypeMappingSet),
		"CONSTANT-SPECIFICATION":                  decodeAs((*arxmlDecoder).constantSpecification),
		"MODE-DECLARATION-GROUP":                  decodeAs((*arxmlDecoder).modeDeclarationGroup),
		"SENDER-RECEIVER-INTERFACE":               decodeAs((*arxmlDecoder).senderReceiverInterface),
		"NV-DATA-INTERFACE":                       decodeAs((*arxmlDecoder).nvDataInterface),
		"PARAMETER-INTERFACE":                     decodeAs((*arxmlDecoder).parameterInterface),
		"CLIENT-SERVER-INTERFACE":                 decodeAs((*arxmlDecoder).clientServerInterface),
		"MODE-SWITCH-INTERFACE":                   decodeAs((*arxmlDecoder).modeSwitchInterface),
		"APPLICATION-SW-COMPONENT-TYPE":           decodeAs((*arxmlDecoder).applicationComponent),
		"COMPLEX-DEVICE-DRIVER-SW-COMPONENT-TYPE": decodeAs((*arxmlDecoder).complexDeviceDriverComponent),
		"COMPOSITION-SW-COMPONENT-TYPE":           decodeAs((*arxmlDecoder).composition),
		"SENSOR-ACTUATOR-SW-COMPONENT-TYPE":       decodeAs((*arxmlDecoder).sensorActuatorComponent),
		"SERVICE-SW-COMPONENT-TYPE":               decodeAs((*arxmlDecoder).serviceComponent),
	}
}

func (d *arxmlDecoder) element(n *xmlNode) (types.Element, error) {
	decode, ok := elementDecoders[n.tag]
	if !ok {
		return nil, d.errorAt(n, invalidTag("unsupported package element"))
	}
	return decode(d, n)
}

// Leaf parsers. Errors carry no node context; fields adds it.

func readRef[C types.RefClass](n *xmlNode, dst *types.Ref[C]) error {
	var dest types.IdentifiableKind
	if text, ok := n.attr("DEST"); ok {
		kind, err := types.ParseIdentifiableKind(text)
		if err != nil {
			return err
		}
		dest = kind
	}
	ref, err := types.NewRef[C](n.value(), dest)
	if err != nil {
		return err
	}
	*dst = ref
	return nil
}

func readEnum[T ~string](n *xmlNode, dst *T, parse func(string) (T, error)) error {
	value, err := parse(n.value())
	if err != nil {
		return err
	}
	*dst = value
	return nil
}

func readInt(n *xmlNode, dst **int) error {
	value, err := types.ParseIntText(n.value())
	if err != nil {
		return err
	}
	*dst = &value
	return nil
}

func readFloat(n *xmlNode, dst **float64) error {
	value, err := types.ParseFloatText(n.value())
	if err != nil {
		return err
	}
	*dst = &value
	return nil
}

func readBool(n *xmlNode, dst **bool) error {
	value, err := types.ParseBoolText(n.value())
	if err != nil {
		return err
	}
	*dst = &value
	return nil
}

func readNumber(n *xmlNode, dst *types.Number) error {
	value, err := types.ParseNumber(n.value())
	if err != nil {
		return err
	}
	*dst = value
	return nil
}

// readNumbers reads a list of V children.
func (d *arxmlDecoder) readNumbers(n *xmlNode, dst *[]types.Number) error {
	return d.fields(n, nil, func(c *xmlNode) error {
		if c.tag != "V" {
			return unexpectedTag()
		}
		var value types.Number
		if err := readNumber(c, &value); err != nil {
			return err
		}
		*dst = append(*dst, value)
		return nil
	})
}
