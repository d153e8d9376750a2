package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iksnae/cursor-chat-export/internal"
	"gopkg.in/yaml.v3"
)

// Status describes how a workspace's pass ended
type Status string

const (
	StatusExported    Status = "exported"
	StatusNoChatData  Status = "no_chat_data"
	StatusScanFailed  Status = "scan_failed"
	StatusStoreFailed Status = "store_failed"
	StatusParseFailed Status = "parse_failed"
	StatusWriteFailed Status = "write_failed"
)

// WorkspaceResult is the outcome for one workspace directory
type WorkspaceResult struct {
	Dir         string                 `yaml:"dir"`
	Project     string                 `yaml:"project,omitempty"`
	Status      Status                 `yaml:"status"`
	Error       string                 `yaml:"error,omitempty"`
	Files       []string               `yaml:"files,omitempty"`
	Transcripts []*internal.Transcript `yaml:"-"`
}

// Failed reports whether the workspace ended in an error
func (r WorkspaceResult) Failed() bool {
	return r.Error != ""
}

// Report summarizes one run
type Report struct {
	Root       string            `yaml:"root"`
	OutputDir  string            `yaml:"output_dir"`
	Workspaces []WorkspaceResult `yaml:"workspaces"`
}

func (r *Report) add(res WorkspaceResult) {
	r.Workspaces = append(r.Workspaces, res)
}

// Transcripts returns every transcript produced in the run, in workspace order
func (r *Report) Transcripts() []*internal.Transcript {
	var all []*internal.Transcript
	for _, ws := range r.Workspaces {
		all = append(all, ws.Transcripts...)
	}
	return all
}

// FileCount returns the number of documents written
func (r *Report) FileCount() int {
	n := 0
	for _, ws := range r.Workspaces {
		n += len(ws.Files)
	}
	return n
}

// Failures returns the workspaces that ended in an error
func (r *Report) Failures() []WorkspaceResult {
	var failed []WorkspaceResult
	for _, ws := range r.Workspaces {
		if ws.Failed() {
			failed = append(failed, ws)
		}
	}
	return failed
}

// Failed reports whether any workspace ended in an error
func (r *Report) Failed() bool {
	return len(r.Failures()) > 0
}

func projectLabel(ws WorkspaceResult) string {
	if ws.Project == "" {
		return filepath.Base(ws.Dir)
	}
	return ws.Project
}

// WriteYAML saves the report to path
func (r *Report) WriteYAML(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// PrintSummary writes a short human-readable summary to w
func (r *Report) PrintSummary(w io.Writer) {
	for _, ws := range r.Workspaces {
		switch {
		case ws.Failed():
			internal.PrintWarning(w, fmt.Sprintf("%s: %s: %s", ws.Dir, ws.Status, ws.Error))
		case ws.Status == StatusExported:
			internal.PrintInfo(w, fmt.Sprintf("%s: %d transcript(s) → %s", projectLabel(ws), len(ws.Transcripts), filepath.Join(r.OutputDir, ws.Project)))
		}
	}

	msg := fmt.Sprintf("Exported %d transcript(s) as %d file(s) from %d workspace(s) to %s",
		len(r.Transcripts()), r.FileCount(), len(r.Workspaces), r.OutputDir)
	if r.Failed() {
		internal.PrintError(w, fmt.Sprintf("%s; %d workspace(s) failed", msg, len(r.Failures())))
		return
	}
	internal.PrintSuccess(w, msg)
}
