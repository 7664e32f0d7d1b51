package adapters

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"autosar-arxml/internal/ports"
	"autosar-arxml/internal/types"
)

// ARXMLFileAdapter loads and stores ARXML files. Raw file content is
// cached by modification time; every Load still builds a fresh document.
type ARXMLFileAdapter struct {
	reader ports.ARXMLReaderPort
	writer ports.ARXMLWriterPort

	mu    sync.Mutex
	cache map[string]arxmlCacheEntry
}

type arxmlCacheEntry struct {
	modTime time.Time
	size    int64
	data    []byte
}

func NewARXMLFileAdapter(reader ports.ARXMLReaderPort, writer ports.ARXMLWriterPort) *ARXMLFileAdapter {
	return &ARXMLFileAdapter{
		reader: reader,
		writer: writer,
		cache:  map[string]arxmlCacheEntry{},
	}
}

func (a *ARXMLFileAdapter) Load(ctx context.Context, path string) (types.ReadResult, error) {
	data, err := a.readFile(path)
	if err != nil {
		return types.ReadResult{}, err
	}
	return a.reader.ReadDocument(ctx, data, path)
}

// Save writes doc next to path and renames it into place, so readers never
// observe a partial file.
func (a *ARXMLFileAdapter) Save(ctx context.Context, path string, doc *types.Document) error {
	data, err := a.writer.WriteDocument(ctx, doc)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	a.mu.Lock()
	delete(a.cache, path)
	a.mu.Unlock()
	log.Ctx(ctx).Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Msg("arxml document saved")
	return nil
}

func (a *ARXMLFileAdapter) readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read " + path).
			WithCause(err)
	}
	a.mu.Lock()
	if entry, ok := a.cache[path]; ok && entry.modTime.Equal(info.ModTime()) && entry.size == info.Size() {
		a.mu.Unlock()
		return entry.data, nil
	}
	a.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read " + path).
			WithCause(err)
	}
	a.mu.Lock()
	a.cache[path] = arxmlCacheEntry{modTime: info.ModTime(), size: info.Size(), data: data}
	a.mu.Unlock()
	return data, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create directory " + dir).
			WithCause(err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create temporary file for " + path).
			WithCause(err)
	}
	tmpPath := tmp.Name()
	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr == nil {
		writeErr = os.Chmod(tmpPath, 0644)
	}
	if writeErr == nil {
		writeErr = os.Rename(tmpPath, path)
	}
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + path).
			WithCause(writeErr)
	}
	return nil
}

var _ ports.ARXMLFilePort = (*ARXMLFileAdapter)(nil)
