package export

import (
	"io"

	"github.com/iksnae/cursor-chat-export/internal"
)

// Exporter renders a transcript into one document format
type Exporter interface {
	Export(t *internal.Transcript, w io.Writer) error
	Extension() string
	// FileName returns the base name (without extension) for t's document
	FileName(t *internal.Transcript) string
}

// DefaultExporters returns the structured and formatted renderings, in write order
func DefaultExporters() []Exporter {
	return []Exporter{&JSONExporter{}, &MarkdownExporter{}}
}
