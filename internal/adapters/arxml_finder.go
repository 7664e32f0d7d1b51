package adapters

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"autosar-arxml/internal/ports"
)

// ARXMLFinderAdapter discovers .arxml files below a directory.
type ARXMLFinderAdapter struct{}

func NewARXMLFinderAdapter() ARXMLFinderAdapter {
	return ARXMLFinderAdapter{}
}

// FindARXML returns every .arxml file under root in lexical order. A root
// that names a single file is returned as is.
func (a ARXMLFinderAdapter) FindARXML(root string) ([]string, error) {
	var paths []string
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("search root is empty")
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && shouldSkipSearchDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if isARXMLFile(path) || path == root {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan " + root).
			WithCause(err)
	}
	slices.Sort(paths)
	return paths, nil
}

func isARXMLFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".arxml")
}

func shouldSkipSearchDir(name string) bool {
	switch name {
	case "build", "out", ".git", "node_modules":
		return true
	default:
		return strings.HasPrefix(name, ".")
	}
}

var _ ports.ARXMLFinderPort = ARXMLFinderAdapter{}
