package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaCatalogParse(t *testing.T) {
	catalog, err := NewSchemaCatalog("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSchemaSupport, catalog.Specifier())

	tests := []struct {
		input   string
		version int
		code    errbuilder.ErrCode
		wantErr bool
	}{
		{input: "51", version: 51},
		{input: "00049", version: 49},
		{input: "AUTOSAR_00053.xsd", version: 53},
		{input: "47", wantErr: true, code: errbuilder.CodeFailedPrecondition},
		{input: "54", wantErr: true, code: errbuilder.CodeFailedPrecondition},
		{input: "4.3.0", wantErr: true, code: errbuilder.CodeInvalidArgument},
		{input: "latest", wantErr: true, code: errbuilder.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			version, err := catalog.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.code, errbuilder.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.version, version)
		})
	}
}

func TestSchemaCatalogReleaseMessage(t *testing.T) {
	catalog, err := NewSchemaCatalog("")
	require.NoError(t, err)
	_, err = catalog.Parse("4.3.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTOSAR release, not a schema revision")
}

func TestSchemaCatalogCustomRange(t *testing.T) {
	catalog, err := NewSchemaCatalog("==51")
	require.NoError(t, err)
	require.NoError(t, catalog.Check(51))
	assert.Error(t, catalog.Check(50))

	_, err = NewSchemaCatalog("not a range")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
