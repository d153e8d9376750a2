package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/cursor-chat-export/internal"
	"github.com/iksnae/cursor-chat-export/testutil"
)

func TestMarkdownExporter_Export(t *testing.T) {
	transcripts, err := internal.ParseTranscripts("test", testutil.SampleChatData)
	if err != nil {
		t.Fatalf("ParseTranscripts() error = %v", err)
	}

	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(transcripts[0], &buf); err != nil {
		t.Fatalf("MarkdownExporter.Export() error = %v", err)
	}

	want := "# Fix bug\n" +
		"## summary text\n\n\n" +
		"👤: \n\n*why fail?*\n\n" +
		"🤖: \n\n**because X**\n\n" +
		"---\n\n"
	if got := buf.String(); got != want {
		t.Errorf("MarkdownExporter.Export() =\n%q\nwant\n%q", got, want)
	}
}

func TestMarkdownExporter_SeparatorFollowsEachAssistantMessage(t *testing.T) {
	tests := []struct {
		name  string
		roles []internal.Role
	}{
		{"no messages", nil},
		{"user only", []internal.Role{internal.RoleUser, internal.RoleUser}},
		{"alternating", []internal.Role{internal.RoleUser, internal.RoleAssistant, internal.RoleUser, internal.RoleAssistant}},
		{"consecutive assistant", []internal.Role{internal.RoleAssistant, internal.RoleAssistant, internal.RoleUser}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &internal.Transcript{Title: "# t"}
			for i, role := range tt.roles {
				tr.Messages = append(tr.Messages, internal.Message{
					Text: internal.FormatMessage(role, strings.Repeat("m", i+1)),
					Role: role,
				})
			}

			var buf bytes.Buffer
			if err := (&MarkdownExporter{}).Export(tr, &buf); err != nil {
				t.Fatalf("Export() error = %v", err)
			}

			blocks := strings.Split(buf.String(), "\n\n")
			separators := 0
			for i, block := range blocks {
				if block != Separator {
					continue
				}
				separators++
				if i < 2 || blocks[i-2] != "🤖: " || !strings.HasPrefix(blocks[i-1], "**") {
					t.Errorf("separator at block %d does not follow an assistant message", i)
				}
			}
			if separators != tr.AssistantCount() {
				t.Errorf("got %d separators, want %d", separators, tr.AssistantCount())
			}
		})
	}
}

func TestMarkdownExporter_FileName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"# Fix bug", "Fix bug"},
		{"# Fix bug || extra context", "Fix bug"},
		{"#   padded  ", "padded"},
		{"# a||b||c", "a"},
		{"# ", FallbackTitle},
		{"# dir/name", "dir_name"},
		{"# ..", FallbackTitle},
	}

	e := &MarkdownExporter{}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := e.FileName(&internal.Transcript{Title: tt.title}); got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
