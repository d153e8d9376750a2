package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/iksnae/cursor-chat-export/internal"
)

// Writer persists transcripts under <outDir>/<project>/
type Writer struct {
	outDir    string
	exporters []Exporter
	overwrite bool
	claimed   map[string]bool
}

// NewWriter creates a Writer. Unless overwrite is set, a transcript whose file
// name was already written during this run gets a " (2)", " (3)", ... suffix.
func NewWriter(outDir string, overwrite bool, exporters ...Exporter) *Writer {
	if len(exporters) == 0 {
		exporters = DefaultExporters()
	}
	return &Writer{
		outDir:    outDir,
		exporters: exporters,
		overwrite: overwrite,
		claimed:   make(map[string]bool),
	}
}

// Write renders t with every exporter and returns the paths written
func (w *Writer) Write(project string, t *internal.Transcript) ([]string, error) {
	dir := filepath.Join(w.outDir, project)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &internal.ExportError{Format: "dir", Path: dir, Err: err}
	}

	paths := make([]string, 0, len(w.exporters))
	for _, e := range w.exporters {
		path := w.resolvePath(dir, e.FileName(t), e.Extension())

		var buf bytes.Buffer
		if err := e.Export(t, &buf); err != nil {
			return paths, &internal.ExportError{Format: e.Extension(), Path: path, Err: err}
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return paths, &internal.ExportError{Format: e.Extension(), Path: path, Err: err}
		}

		internal.LogDebug("Wrote %s (%s)", path, humanize.Bytes(uint64(buf.Len())))
		paths = append(paths, path)
	}

	return paths, nil
}

func (w *Writer) resolvePath(dir, name, ext string) string {
	path := filepath.Join(dir, name+"."+ext)
	if w.overwrite {
		return path
	}
	for n := 2; w.claimed[path]; n++ {
		path = filepath.Join(dir, fmt.Sprintf("%s (%d).%s", name, n, ext))
	}
	w.claimed[path] = true
	return path
}
