package app

import (
	"bytes"
	"context"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"autosar-arxml/internal/ports"
)

// Format rewrites files in canonical form. In strict mode every file is
// first loaded into a shared workspace that serves as the resolver.
func (s Service) Format(ctx context.Context, req FormatRequest) (FormatResult, error) {
	files, err := s.expandPaths(req.Paths)
	if err != nil {
		return FormatResult{}, err
	}
	writer := s.Writer
	if req.Strict {
		ws, _, err := s.loadWorkspace(ctx, files)
		if err != nil {
			return FormatResult{}, err
		}
		writer = s.strictWriter(ws.Root())
	}

	result := FormatResult{Files: make([]FormattedFile, 0, len(files))}
	for _, file := range files {
		changed, err := s.formatFile(ctx, writer, file, req.Check)
		if err != nil {
			return result, err
		}
		result.Files = append(result.Files, FormattedFile{Path: file, Changed: changed})
	}
	return result, nil
}

func (s Service) formatFile(ctx context.Context, writer ports.ARXMLWriterPort, file string, check bool) (bool, error) {
	original, err := os.ReadFile(file)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read " + file).
			WithCause(err)
	}
	read, err := s.Reader.ReadDocument(ctx, original, file)
	if err != nil {
		return false, err
	}
	if len(read.Problems) > 0 {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("refusing to format a file with parse problems: " + file).
			WithCause(read.Problems[0])
	}
	canonical, err := writer.WriteDocument(ctx, read.Document)
	if err != nil {
		return false, err
	}
	if bytes.Equal(original, canonical) {
		return false, nil
	}
	if check {
		return true, nil
	}
	if err := s.Files.Save(ctx, file, read.Document); err != nil {
		return false, err
	}
	log.Ctx(ctx).Debug().Str("file", file).Msg("arxml file formatted")
	return true, nil
}
