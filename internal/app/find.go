package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Find looks up one element by absolute path and renders it as an ARXML
// fragment.
func (s Service) Find(ctx context.Context, req FindRequest) (FindResult, error) {
	path := strings.TrimSpace(req.Element)
	if !strings.HasPrefix(path, "/") {
		return FindResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("element path %q must be absolute", req.Element))
	}
	ws, _, err := s.loadPaths(ctx, req.Paths)
	if err != nil {
		return FindResult{}, err
	}
	found := ws.Find(path)
	if found == nil {
		return FindResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no element at %s", path))
	}
	fragment, err := s.Writer.WriteFragment(ctx, found)
	if err != nil {
		return FindResult{}, err
	}
	file, _ := ws.DocumentOf(found.Path())
	return FindResult{
		File:     file,
		Path:     found.Path(),
		Kind:     found.Kind(),
		Fragment: fragment,
	}, nil
}
