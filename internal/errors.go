package internal

import "fmt"

// StorageError represents errors accessing workspace directories or store files
type StorageError struct {
	Path string
	Op   string // "readdir", "open", "query"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ParseError represents errors decoding the stored chat data
type ParseError struct {
	Source string // store path
	Field  string // "json", "tabs", "bubbles"
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s] %s: %v", e.Field, e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WorkspaceError ties a failure to the workspace directory it happened in
type WorkspaceError struct {
	Dir string
	Err error
}

func (e *WorkspaceError) Error() string {
	return fmt.Sprintf("workspace %s: %v", e.Dir, e.Err)
}

func (e *WorkspaceError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
