package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/cursor-chat-export/internal"
)

// JSONExporter exports transcripts in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports a transcript to JSON format
func (e *JSONExporter) Export(t *internal.Transcript, w io.Writer) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}

// FileName uses the raw tab title unless it is too long for a file name
func (e *JSONExporter) FileName(t *internal.Transcript) string {
	return SafeTitle(t.SourceTitle)
}
