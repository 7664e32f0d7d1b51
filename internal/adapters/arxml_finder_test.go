package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestARXMLFinderAdapter_FindARXML(t *testing.T) {
	root := t.TempDir()
	types := filepath.Join(root, "types")
	comps := filepath.Join(root, "components")
	require.NoError(t, os.MkdirAll(types, 0755))
	require.NoError(t, os.MkdirAll(comps, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(types, "base.arxml"), []byte("<AUTOSAR/>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(comps, "swc.ARXML"), []byte("<AUTOSAR/>"), 0644))
	// Other files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(types, "notes.txt"), []byte("notes"), 0644))

	paths, err := NewARXMLFinderAdapter().FindARXML(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(comps, "swc.ARXML"),
		filepath.Join(types, "base.arxml"),
	}, paths)
}

func TestARXMLFinderAdapter_SkipsBuildDirs(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"build", "out", ".git", ".cache"} {
		ignored := filepath.Join(root, dir)
		require.NoError(t, os.MkdirAll(ignored, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(ignored, "gen.arxml"), []byte("<AUTOSAR/>"), 0644))
	}
	real := filepath.Join(root, "src", "model.arxml")
	require.NoError(t, os.MkdirAll(filepath.Dir(real), 0755))
	require.NoError(t, os.WriteFile(real, []byte("<AUTOSAR/>"), 0644))

	paths, err := NewARXMLFinderAdapter().FindARXML(root)
	require.NoError(t, err)
	assert.Equal(t, []string{real}, paths)
}

func TestARXMLFinderAdapter_SingleFileRoot(t *testing.T) {
	file := filepath.Join(t.TempDir(), "model.xml")
	require.NoError(t, os.WriteFile(file, []byte("<AUTOSAR/>"), 0644))

	paths, err := NewARXMLFinderAdapter().FindARXML(file)
	require.NoError(t, err)
	assert.Equal(t, []string{file}, paths)
}

func TestARXMLFinderAdapter_EmptyRootErrors(t *testing.T) {
	_, err := NewARXMLFinderAdapter().FindARXML("")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "search root is empty")
}

func TestARXMLFinderAdapter_NonExistentRootErrors(t *testing.T) {
	_, err := NewARXMLFinderAdapter().FindARXML("/nonexistent/path/that/does/not/exist")
	require.Error(t, err)
}

func TestARXMLFinderAdapter_EmptyDirReturnsNil(t *testing.T) {
	paths, err := NewARXMLFinderAdapter().FindARXML(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, paths)
}
