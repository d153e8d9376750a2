package export

import (
	"io"
	"strings"

	"github.com/iksnae/cursor-chat-export/internal"
)

// Separator is written after every assistant message
const Separator = "---"

// MarkdownExporter exports transcripts in Markdown format
type MarkdownExporter struct{}

// Export writes the title and summary lines followed by each message.
// Every assistant message is followed by a separator line.
func (e *MarkdownExporter) Export(t *internal.Transcript, w io.Writer) error {
	var b strings.Builder
	b.WriteString(t.Title + "\n")
	b.WriteString(t.Summary + "\n\n\n")

	for _, msg := range t.Messages {
		b.WriteString(msg.Text + "\n\n")
		if msg.Role == internal.RoleAssistant {
			b.WriteString(Separator + "\n\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}

// FileName derives the name from the rendered title
func (e *MarkdownExporter) FileName(t *internal.Transcript) string {
	return DerivedName(t.Title)
}
