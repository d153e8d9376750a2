// Package pipeline runs the locate → read → parse → write pass over every workspace.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/iksnae/cursor-chat-export/internal"
	"github.com/iksnae/cursor-chat-export/internal/export"
)

// Run exports every workspace under cfg.WorkspaceRoot into cfg.OutputDir.
// Store and parse failures are recorded in the report and the workspace is
// skipped; a write failure stops the run and is returned with the partial report.
func Run(cfg internal.Config) (*Report, error) {
	if cfg.WorkspaceRoot == "" {
		return nil, errors.New("no workspace root configured")
	}

	refs, skipped, err := internal.LocateWorkspaces(cfg.WorkspaceRoot)
	if err != nil {
		return nil, err
	}
	internal.LogInfo("Found %d workspace(s) with a store under %s", len(refs), cfg.WorkspaceRoot)

	report := &Report{Root: cfg.WorkspaceRoot, OutputDir: cfg.OutputDir}
	for _, s := range skipped {
		report.add(WorkspaceResult{Dir: s.Dir, Status: StatusScanFailed, Error: s.Err.Error()})
	}

	reader := internal.NewStoreReader(cfg.CopyDB)
	writer := export.NewWriter(cfg.OutputDir, cfg.Overwrite)

	for _, ref := range refs {
		result, err := processWorkspace(reader, writer, ref)
		report.add(result)
		if err != nil {
			return report, &internal.WorkspaceError{Dir: ref.Dir, Err: err}
		}
	}

	return report, nil
}

// processWorkspace handles one workspace. Only write errors are returned;
// everything else degrades to a result with zero transcripts.
func processWorkspace(reader *internal.StoreReader, writer *export.Writer, ref internal.WorkspaceRef) (WorkspaceResult, error) {
	result := WorkspaceResult{Dir: ref.Dir, Project: ref.ProjectName}

	raw, found, err := reader.ReadChatData(ref.StorePath)
	if err != nil {
		internal.LogError("Failed to read %s: %v", ref, err)
		result.Status = StatusStoreFailed
		result.Error = err.Error()
		return result, nil
	}
	if !found {
		internal.LogDebug("No chat data in %s", ref)
		result.Status = StatusNoChatData
		return result, nil
	}

	transcripts, err := internal.ParseTranscripts(ref.StorePath, raw)
	if err != nil {
		internal.LogError("Failed to parse chat data for %s: %v", ref, err)
		result.Status = StatusParseFailed
		result.Error = err.Error()
		return result, nil
	}

	result.Transcripts = transcripts
	for _, t := range transcripts {
		paths, err := writer.Write(ref.ProjectName, t)
		result.Files = append(result.Files, paths...)
		if err != nil {
			result.Status = StatusWriteFailed
			result.Error = err.Error()
			return result, fmt.Errorf("write %q: %w", t.Title, err)
		}
	}

	result.Status = StatusExported
	internal.LogInfo("Exported %d transcript(s) from %s", len(transcripts), ref)
	return result, nil
}
