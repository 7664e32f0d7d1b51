package app

import (
	"time"

	"autosar-arxml/internal/adapters"
	"autosar-arxml/internal/policies"
	"autosar-arxml/internal/ports"
	"autosar-arxml/internal/types"
)

// Options configures how a Service reads ARXML.
type Options struct {
	// CollectErrors keeps reading past malformed elements and reports
	// them instead of failing on the first one.
	CollectErrors bool
	// SchemaSupport is a PEP 440 range over schema revisions.
	SchemaSupport string
	// MergeAction decides what happens when two files define the same
	// element: fail, keep or replace.
	MergeAction string
}

type Service struct {
	Files        ports.ARXMLFilePort
	Reader       ports.ARXMLReaderPort
	Writer       ports.ARXMLWriterPort
	Finder       ports.ARXMLFinderPort
	Placement    ports.PlacementPort
	NewNamespace func() ports.NamespaceConfigPort
	Options      Options
	Clock        func() time.Time
}

func NewService(opts Options) Service {
	reader := adapters.NewARXMLReaderAdapter(adapters.ReaderOptions{CollectErrors: opts.CollectErrors})
	writer := adapters.NewARXMLWriterAdapter(adapters.WriterOptions{})
	return Service{
		Files:     adapters.NewARXMLFileAdapter(reader, writer),
		Reader:    reader,
		Writer:    writer,
		Finder:    adapters.NewARXMLFinderAdapter(),
		Placement: policies.NewPlacementPolicy(),
		NewNamespace: func() ports.NamespaceConfigPort {
			return adapters.NewNamespaceConfigAdapter()
		},
		Options: opts,
		Clock:   time.Now,
	}
}

// strictWriter checks every reference against resolver before writing.
func (s Service) strictWriter(resolver types.PathFinder) ports.ARXMLWriterPort {
	return adapters.NewARXMLWriterAdapter(adapters.WriterOptions{Resolver: resolver})
}
