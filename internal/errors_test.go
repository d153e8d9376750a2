package internal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStorageError(t *testing.T) {
	originalErr := errors.New("permission denied")
	err := &StorageError{
		Path: "/test/state.vscdb",
		Op:   "open",
		Err:  originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "storage error") {
		t.Errorf("StorageError.Error() should contain 'storage error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "/test/state.vscdb") {
		t.Errorf("StorageError.Error() should contain path, got: %q", errorMsg)
	}

	if !errors.Is(err, originalErr) {
		t.Error("StorageError.Unwrap() should return original error")
	}
}

func TestParseError(t *testing.T) {
	originalErr := errors.New("unexpected end of JSON input")
	err := &ParseError{
		Source: "/ws/state.vscdb",
		Field:  "json",
		Err:    originalErr,
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "parse error") {
		t.Errorf("ParseError.Error() should contain 'parse error', got: %q", errorMsg)
	}
	if !strings.Contains(errorMsg, "[json]") {
		t.Errorf("ParseError.Error() should contain field, got: %q", errorMsg)
	}

	if !errors.Is(err, originalErr) {
		t.Error("ParseError.Unwrap() should return original error")
	}
}

func TestWorkspaceError(t *testing.T) {
	inner := &ParseError{Source: "db", Field: "tabs", Err: errors.New("missing")}
	err := &WorkspaceError{Dir: "/ws/abc", Err: inner}

	if !strings.Contains(err.Error(), "/ws/abc") {
		t.Errorf("WorkspaceError.Error() should contain dir, got: %q", err.Error())
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatal("errors.As() should find the wrapped ParseError")
	}
	if parseErr.Field != "tabs" {
		t.Errorf("ParseError.Field = %q, want tabs", parseErr.Field)
	}
}

func TestExportError(t *testing.T) {
	originalErr := errors.New("disk full")
	err := fmt.Errorf("write failed: %w", &ExportError{
		Format: "md",
		Path:   "myproj/Fix bug.md",
		Err:    originalErr,
	})

	if !strings.Contains(err.Error(), "export error [md]") {
		t.Errorf("error should contain format, got: %q", err.Error())
	}
	if !errors.Is(err, originalErr) {
		t.Error("ExportError should unwrap through fmt.Errorf wrapping")
	}
}
