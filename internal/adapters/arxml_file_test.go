package adapters

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autosar-arxml/tests/testutil"
)

func newFileAdapter() *ARXMLFileAdapter {
	return NewARXMLFileAdapter(NewARXMLReaderAdapter(ReaderOptions{}), NewARXMLWriterAdapter(WriterOptions{}))
}

func TestARXMLFileAdapter_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "base.arxml")
	adapter := newFileAdapter()

	doc := buildBaseTypesDocument(t)
	require.NoError(t, adapter.Save(t.Context(), path, doc))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, baseTypesDocument, string(content))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")

	result, err := adapter.Load(t.Context(), path)
	require.NoError(t, err)
	if diff := cmp.Diff(doc, result.Document, testutil.ModelOptions()...); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestARXMLFileAdapter_CacheInvalidatedOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.arxml")
	require.NoError(t, os.WriteFile(path, []byte(baseTypesDocument), 0644))
	adapter := newFileAdapter()

	first, err := adapter.Load(t.Context(), path)
	require.NoError(t, err)
	second, err := adapter.Load(t.Context(), path)
	require.NoError(t, err)
	assert.NotSame(t, first.Document, second.Document)

	empty := `<?xml version="1.0" encoding="utf-8"?>
<AUTOSAR xmlns="http://autosar.org/schema/r4.0"/>
`
	require.NoError(t, os.WriteFile(path, []byte(empty), 0644))
	later := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, later, later))

	third, err := adapter.Load(t.Context(), path)
	require.NoError(t, err)
	assert.Empty(t, third.Document.Packages)
}

func TestARXMLFileAdapter_MissingFile(t *testing.T) {
	_, err := newFileAdapter().Load(t.Context(), filepath.Join(t.TempDir(), "missing.arxml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestARXMLFileAdapter_ParseErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.arxml")
	require.NoError(t, os.WriteFile(path, []byte("<AR-PACKAGE/>"), 0644))

	_, err := newFileAdapter().Load(t.Context(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
