package app

import (
	"context"

	"autosar-arxml/internal/core"
)

// Order lists base and implementation data types so that each comes after
// the types it refers to.
func (s Service) Order(ctx context.Context, req OrderRequest) (OrderResult, error) {
	ws, _, err := s.loadPaths(ctx, req.Paths)
	if err != nil {
		return OrderResult{}, err
	}
	ordered, err := core.TypeOrder(ctx, ws.Root(), ws.Root().Elements())
	if err != nil {
		return OrderResult{}, err
	}
	result := OrderResult{Types: make([]OrderedType, 0, len(ordered))}
	for _, element := range ordered {
		file, _ := ws.DocumentOf(element.Path())
		result.Types = append(result.Types, OrderedType{
			Path: element.Path(),
			Kind: element.Kind(),
			File: file,
		})
	}
	return result, nil
}
