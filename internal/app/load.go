package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"autosar-arxml/internal/core"
	"autosar-arxml/internal/shared"
	"autosar-arxml/internal/types"
)

// expandPaths turns files and directories into a sorted, de-duplicated
// list of ARXML files.
func (s Service) expandPaths(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		found, err := s.Finder.FindARXML(path)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	files = shared.DedupeStrings(files)
	if len(files) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no ARXML files found in %s", strings.Join(paths, ", ")))
	}
	return files, nil
}

// loadWorkspace reads files into one workspace so references may cross
// file boundaries.
func (s Service) loadWorkspace(ctx context.Context, files []string) (*core.Workspace, []FileReport, error) {
	catalog, err := core.NewSchemaCatalog(s.Options.SchemaSupport)
	if err != nil {
		return nil, nil, err
	}
	ws := core.NewWorkspace(s.Placement)
	reports := make([]FileReport, 0, len(files))
	for _, file := range files {
		result, err := s.Files.Load(ctx, file)
		if err != nil {
			return nil, nil, err
		}
		if err := catalog.Check(result.Document.SchemaVersion); err != nil {
			return nil, nil, errbuilder.New().
				WithCode(errbuilder.CodeOf(err)).
				WithMsg(fmt.Sprintf("%s: unsupported schema", file)).
				WithCause(err)
		}
		report := FileReport{
			Path:          file,
			SchemaVersion: result.Document.SchemaVersion,
			Elements:      elementCount(result.Document),
			Problems:      result.Problems,
		}
		if err := ws.LoadDocument(ctx, result.Document, file, s.Options.MergeAction); err != nil {
			return nil, nil, err
		}
		reports = append(reports, report)
		log.Ctx(ctx).Debug().
			Str("file", file).
			Int("elements", report.Elements).
			Int("problems", len(report.Problems)).
			Msg("arxml file loaded")
	}
	return ws, reports, nil
}

func (s Service) loadPaths(ctx context.Context, paths []string) (*core.Workspace, []FileReport, error) {
	files, err := s.expandPaths(paths)
	if err != nil {
		return nil, nil, err
	}
	return s.loadWorkspace(ctx, files)
}

func elementCount(doc *types.Document) int {
	return len(doc.Elements())
}
