package ports

import (
	"context"

	"autosar-arxml/internal/types"
)

// Finder resolves absolute paths. Absence is a nil result, not an error.
type Finder interface {
	Find(path string) types.Referrable
}

// ARXMLWriterPort serializes documents and single fragments.
type ARXMLWriterPort interface {
	WriteDocument(ctx context.Context, doc *types.Document) ([]byte, error)
	WriteFragment(ctx context.Context, value any) ([]byte, error)
}

// ARXMLReaderPort parses documents and single fragments.
type ARXMLReaderPort interface {
	ReadDocument(ctx context.Context, data []byte, file string) (types.ReadResult, error)
	ReadFragment(ctx context.Context, data []byte) (any, error)
}

// ARXMLFilePort loads and stores whole ARXML files.
type ARXMLFilePort interface {
	Load(ctx context.Context, path string) (types.ReadResult, error)
	Save(ctx context.Context, path string, doc *types.Document) error
}
