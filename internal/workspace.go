package internal

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// WorkspaceMetadataFile names the per-workspace metadata file
	WorkspaceMetadataFile = "workspace.json"

	// WorkspaceStoreFile names the per-workspace key-value store
	WorkspaceStoreFile = "state.vscdb"
)

// WorkspaceRef points at one workspace's store and the project it belongs to
type WorkspaceRef struct {
	Dir         string
	StorePath   string
	ProjectName string
}

// SkippedWorkspace records a workspace directory that could not be scanned
type SkippedWorkspace struct {
	Dir string
	Err error
}

// LocateWorkspaces scans root for workspace directories holding a store file.
// Directories without a store are skipped silently; directories that cannot be
// read are logged and returned in skipped. Only a failure to read root itself
// is returned as an error.
func LocateWorkspaces(root string) (refs []WorkspaceRef, skipped []SkippedWorkspace, err error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, nil, &StorageError{Path: root, Op: "readdir", Err: err}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())

		ref, ok, err := inspectWorkspace(dir)
		if err != nil {
			LogWarn("Skipping workspace %s: %v", dir, err)
			skipped = append(skipped, SkippedWorkspace{Dir: dir, Err: err})
			continue
		}
		if !ok {
			LogDebug("No %s in %s", WorkspaceStoreFile, dir)
			continue
		}
		refs = append(refs, ref)
	}

	return refs, skipped, nil
}

func inspectWorkspace(dir string) (WorkspaceRef, bool, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return WorkspaceRef{}, false, &StorageError{Path: dir, Op: "readdir", Err: err}
	}

	ref := WorkspaceRef{Dir: dir}
	for _, f := range files {
		switch f.Name() {
		case WorkspaceMetadataFile:
			ref.ProjectName = readProjectName(filepath.Join(dir, WorkspaceMetadataFile))
		case WorkspaceStoreFile:
			if !f.IsDir() {
				ref.StorePath = filepath.Join(dir, WorkspaceStoreFile)
			}
		}
	}

	return ref, ref.StorePath != "", nil
}

// readProjectName returns the last segment of the metadata's folder path, or ""
// when the file is unreadable or has no usable folder.
func readProjectName(metadataPath string) string {
	data, err := os.ReadFile(metadataPath)
	if err != nil {
		LogDebug("Failed to read %s: %v", metadataPath, err)
		return ""
	}

	var meta struct {
		Folder string `json:"folder"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		LogDebug("Malformed %s: %v", metadataPath, err)
		return ""
	}

	return ProjectNameFromFolder(meta.Folder)
}

// ProjectNameFromFolder extracts the final path segment of a folder path or file:// URI
func ProjectNameFromFolder(folder string) string {
	if folder == "" {
		return ""
	}
	if u, err := url.Parse(folder); err == nil && u.Scheme == "file" {
		folder = u.Path
	}
	folder = strings.TrimRight(strings.ReplaceAll(folder, "\\", "/"), "/")
	if folder == "" {
		return ""
	}
	return cleanProjectName(path.Base(folder))
}

// cleanProjectName keeps the project directory inside the output directory.
// "" means "write directly under the output directory".
func cleanProjectName(name string) string {
	name = strings.NewReplacer("/", "_", "\\", "_", "\x00", "_").Replace(name)
	if name == "." || name == ".." {
		return ""
	}
	return name
}

func (r WorkspaceRef) String() string {
	if r.ProjectName == "" {
		return filepath.Base(r.Dir)
	}
	return fmt.Sprintf("%s (%s)", r.ProjectName, filepath.Base(r.Dir))
}
