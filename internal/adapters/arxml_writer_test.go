package adapters

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosar-arxml/internal/types"
)

const baseTypesDocument = `<?xml version="1.0" encoding="utf-8"?>
<AUTOSAR xmlns="http://autosar.org/schema/r4.0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://autosar.org/schema/r4.0 AUTOSAR_00051.xsd">
  <AR-PACKAGES>
    <AR-PACKAGE>
      <SHORT-NAME>DataTypes</SHORT-NAME>
      <AR-PACKAGES>
        <AR-PACKAGE>
          <SHORT-NAME>BaseTypes</SHORT-NAME>
          <ELEMENTS>
            <SW-BASE-TYPE>
              <SHORT-NAME>uint8</SHORT-NAME>
              <CATEGORY>FIXED_LENGTH</CATEGORY>
              <BASE-TYPE-SIZE>8</BASE-TYPE-SIZE>
              <BASE-TYPE-ENCODING>NONE</BASE-TYPE-ENCODING>
              <NATIVE-DECLARATION>uint8</NATIVE-DECLARATION>
            </SW-BASE-TYPE>
          </ELEMENTS>
        </AR-PACKAGE>
        <AR-PACKAGE>
          <SHORT-NAME>ImplementationTypes</SHORT-NAME>
          <ELEMENTS>
            <IMPLEMENTATION-DATA-TYPE>
              <SHORT-NAME>Typename</SHORT-NAME>
              <CATEGORY>VALUE</CATEGORY>
              <SW-DATA-DEF-PROPS>
                <SW-DATA-DEF-PROPS-VARIANTS>
                  <SW-DATA-DEF-PROPS-CONDITIONAL>
                    <BASE-TYPE-REF DEST="SW-BASE-TYPE">/DataTypes/BaseTypes/uint8</BASE-TYPE-REF>
                  </SW-DATA-DEF-PROPS-CONDITIONAL>
                </SW-DATA-DEF-PROPS-VARIANTS>
              </SW-DATA-DEF-PROPS>
            </IMPLEMENTATION-DATA-TYPE>
          </ELEMENTS>
        </AR-PACKAGE>
      </AR-PACKAGES>
    </AR-PACKAGE>
  </AR-PACKAGES>
</AUTOSAR>
`

func intPtr(v int) *int { return &v }

func buildBaseTypesDocument(t *testing.T) *types.Document {
	t.Helper()
	doc := types.NewDocument()
	basePkg, err := doc.MakePackages("/DataTypes/BaseTypes")
	require.NoError(t, err)
	uint8Type := &types.SwBaseType{
		Identifiable:      types.Identifiable{Name: "uint8"},
		Category:          "FIXED_LENGTH",
		Size:              intPtr(8),
		Encoding:          "NONE",
		NativeDeclaration: "uint8",
	}
	require.NoError(t, basePkg.AppendElement(uint8Type))

	implPkg, err := doc.MakePackages("/DataTypes/ImplementationTypes")
	require.NoError(t, err)
	baseRef, err := types.RefTo[types.SwBaseTypeRefClass](uint8Type)
	require.NoError(t, err)
	typename, err := types.NewImplementationDataType("Typename", types.ValueLayout{
		Props: types.SwDataDefProps{BaseTypeRef: baseRef},
	})
	require.NoError(t, err)
	require.NoError(t, implPkg.AppendElement(typename))
	return doc
}

func TestWriteDocumentBaseTypes(t *testing.T) {
	doc := buildBaseTypesDocument(t)
	writer := NewARXMLWriterAdapter(WriterOptions{})
	out, err := writer.WriteDocument(t.Context(), doc)
	require.NoError(t, err)
	assert.Equal(t, baseTypesDocument, string(out))
}

func TestWriteDocumentStrictResolvesReferences(t *testing.T) {
	doc := buildBaseTypesDocument(t)
	writer := NewARXMLWriterAdapter(WriterOptions{Resolver: doc})
	_, err := writer.WriteDocument(t.Context(), doc)
	require.NoError(t, err)
}

func TestWriteDocumentStrictRejectsDanglingReference(t *testing.T) {
	doc := buildBaseTypesDocument(t)
	pkg := doc.FindPackage("/DataTypes/ImplementationTypes")
	require.NotNil(t, pkg)
	dangling, err := types.NewImplementationDataType("Dangling", types.ValueLayout{
		Props: types.SwDataDefProps{
			BaseTypeRef: types.MustRef[types.SwBaseTypeRefClass]("/DataTypes/BaseTypes/missing", ""),
		},
	})
	require.NoError(t, err)
	require.NoError(t, pkg.AppendElement(dangling))

	writer := NewARXMLWriterAdapter(WriterOptions{Resolver: doc})
	_, err = writer.WriteDocument(t.Context(), doc)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "/DataTypes/ImplementationTypes/Dangling")
	assert.Contains(t, err.Error(), "/DataTypes/BaseTypes/missing")

	lax := NewARXMLWriterAdapter(WriterOptions{})
	_, err = lax.WriteDocument(t.Context(), doc)
	require.NoError(t, err)
}

func TestWriteFragmentEmptyDataFilter(t *testing.T) {
	writer := NewARXMLWriterAdapter(WriterOptions{})
	out, err := writer.WriteFragment(t.Context(), &types.DataFilter{})
	require.NoError(t, err)
	assert.Equal(t, "<DATA-FILTER/>\n", string(out))
}

func TestWriteFragmentNumberFormatting(t *testing.T) {
	tests := []struct {
		name  string
		value types.Number
		text  string
	}{
		{name: "decimal float", value: types.Float(0.4), text: "0.4"},
		{name: "integer", value: types.Int(65280), text: "65280"},
		{name: "integral float keeps fraction", value: types.Float(1), text: "1.0"},
		{name: "negative float", value: types.Float(-2.5), text: "-2.5"},
		{name: "hex pattern", value: types.NumberPattern("0xFF00"), text: "0xFF00"},
	}
	writer := NewARXMLWriterAdapter(WriterOptions{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := writer.WriteFragment(t.Context(), &types.NumericalValue{Value: tt.value})
			require.NoError(t, err)
			expected := "<NUMERICAL-VALUE-SPECIFICATION>\n" +
				"  <VALUE>" + tt.text + "</VALUE>\n" +
				"</NUMERICAL-VALUE-SPECIFICATION>\n"
			assert.Equal(t, expected, string(out))
		})
	}
}

func TestWriteFragmentEscapesText(t *testing.T) {
	writer := NewARXMLWriterAdapter(WriterOptions{})
	out, err := writer.WriteFragment(t.Context(), &types.TextValue{Value: `a<b & "c"`})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<VALUE>a&lt;b &amp; \"c\"</VALUE>")
}

func TestWriteFragmentEmptyStructuresSelfClose(t *testing.T) {
	writer := NewARXMLWriterAdapter(WriterOptions{})
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "props", value: &types.SwDataDefProps{}, expected: "<SW-DATA-DEF-PROPS/>\n"},
		{name: "array value", value: &types.ArrayValue{}, expected: "<ARRAY-VALUE-SPECIFICATION/>\n"},
		{name: "compu scale", value: &types.CompuScale{}, expected: "<COMPU-SCALE/>\n"},
		{name: "client com spec", value: &types.ClientComSpec{}, expected: "<CLIENT-COM-SPEC/>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := writer.WriteFragment(t.Context(), tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestWriteFragmentUnsupportedValue(t *testing.T) {
	writer := NewARXMLWriterAdapter(WriterOptions{})
	_, err := writer.WriteFragment(t.Context(), 42)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestWriteDocumentRejectsMissingLayout(t *testing.T) {
	doc := types.NewDocument()
	pkg, err := doc.MakePackages("/Types")
	require.NoError(t, err)
	require.NoError(t, pkg.AppendElement(&types.ImplementationDataType{
		Identifiable: types.Identifiable{Name: "Broken"},
	}))

	writer := NewARXMLWriterAdapter(WriterOptions{})
	_, err = writer.WriteDocument(t.Context(), doc)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "unsupported category")
}

func TestWriteDocumentSchemaVersionAndFileInfo(t *testing.T) {
	doc := types.NewDocument()
	doc.SchemaVersion = 49
	doc.FileInfo = &types.FileInfo{Sdgs: []types.Sdg{{
		GID: "generator",
		Sds: []types.Sd{{GID: "tool", Value: "arxml"}},
	}}}

	writer := NewARXMLWriterAdapter(WriterOptions{})
	out, err := writer.WriteDocument(t.Context(), doc)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, `xsi:schemaLocation="http://autosar.org/schema/r4.0 AUTOSAR_00049.xsd"`)
	assert.Contains(t, text, "  <FILE-INFO-COMMENT>\n    <SDGS>\n      <SDG GID=\"generator\">\n        <SD GID=\"tool\">arxml</SD>\n")
	assert.NotContains(t, text, "AR-PACKAGES")
}
