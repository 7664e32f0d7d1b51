package app

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Validate reads every file, then resolves all references across them.
// Problems are returned in the result; the error reports that there were
// any.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	ws, reports, err := s.loadPaths(ctx, req.Paths)
	if err != nil {
		return ValidateResult{}, err
	}
	result := ValidateResult{
		Files:      reports,
		Unresolved: ws.CheckReferences(),
	}
	if count := result.ProblemCount(); count > 0 {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("validation found %d problems in %d files", count, len(reports)))
	}
	return result, nil
}
