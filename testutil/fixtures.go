package testutil

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// ChatDataKey mirrors the key the exporter looks up
const ChatDataKey = "workbench.panel.aichat.view.aichat.chatdata"

// SampleChatData is a single-tab chat record with one user and one assistant bubble
const SampleChatData = `{"tabs":[{"chatTitle":"Fix bug","summary":{"text":"summary text"},"bubbles":[{"type":"user","text":"why fail?"},{"type":"ai","text":"because X"}]}]}`

// KV is one row of a key/value table
type KV struct {
	Key   string
	Value interface{}
}

// CreateStoreFixture creates a SQLite store at dbPath with a key/value table holding rows
func CreateStoreFixture(t *testing.T, dbPath, table string, rows ...KV) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createTableSQL := `CREATE TABLE IF NOT EXISTS "` + table + `" (
		key TEXT UNIQUE ON CONFLICT REPLACE,
		value BLOB
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	insertSQL := `INSERT INTO "` + table + `" (key, value) VALUES (?, ?)`
	for _, row := range rows {
		if _, err := db.Exec(insertSQL, row.Key, row.Value); err != nil {
			t.Fatalf("Failed to insert %s: %v", row.Key, err)
		}
	}
}

// CreateWorkspaceFixture creates root/hash with an optional workspace.json pointing at
// folder and, when chatData is non-nil, a state.vscdb whose ItemTable holds it.
func CreateWorkspaceFixture(t *testing.T, root, hash, folder string, chatData *string) string {
	t.Helper()
	workspaceDir := filepath.Join(root, hash)
	if err := os.MkdirAll(workspaceDir, 0755); err != nil {
		t.Fatalf("Failed to create workspace directory: %v", err)
	}

	if folder != "" {
		jsonData, _ := json.Marshal(map[string]interface{}{"folder": folder})
		if err := os.WriteFile(filepath.Join(workspaceDir, "workspace.json"), jsonData, 0644); err != nil {
			t.Fatalf("Failed to write workspace.json: %v", err)
		}
	}

	if chatData != nil {
		rows := []KV{{Key: "workbench.explorer.treeViewState", Value: "{}"}}
		if *chatData != "" {
			rows = append(rows, KV{Key: ChatDataKey, Value: *chatData})
		}
		CreateStoreFixture(t, filepath.Join(workspaceDir, "state.vscdb"), "ItemTable", rows...)
	}

	return workspaceDir
}

// Ptr returns a pointer to s
func Ptr(s string) *string {
	return &s
}
