package internal

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/iksnae/cursor-chat-export/testutil"
)

func TestOpenDatabase(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr bool
	}{
		{
			name: "valid database",
			setup: func(t *testing.T) string {
				dbPath := filepath.Join(testutil.CreateTempDir(t), "state.vscdb")
				testutil.CreateStoreFixture(t, dbPath, "ItemTable")
				return dbPath
			},
			wantErr: false,
		},
		{
			name: "non-existent database",
			setup: func(t *testing.T) string {
				// read-only mode must not create the file
				return filepath.Join(testutil.CreateTempDir(t), "nonexistent.db")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := OpenDatabase(tt.setup(t))
			if (err != nil) != tt.wantErr {
				t.Errorf("OpenDatabase() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if db != nil {
				db.Close()
			}
		})
	}
}

func TestOpenDatabase_ReadOnly(t *testing.T) {
	dbPath := filepath.Join(testutil.CreateTempDir(t), "state.vscdb")
	testutil.CreateStoreFixture(t, dbPath, "ItemTable")

	db, err := OpenDatabase(dbPath)
	if err != nil {
		t.Fatalf("OpenDatabase() error = %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`INSERT INTO ItemTable (key, value) VALUES ('k', 'v')`); err == nil {
		t.Error("write through a read-only handle should fail")
	}
}

func TestLookupKey(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T, dbPath string)
		wantValue string
		wantFound bool
	}{
		{
			name: "key in ItemTable",
			setup: func(t *testing.T, dbPath string) {
				testutil.CreateStoreFixture(t, dbPath, "ItemTable",
					testutil.KV{Key: "other", Value: "x"},
					testutil.KV{Key: ChatDataKey, Value: "payload"})
			},
			wantValue: "payload",
			wantFound: true,
		},
		{
			name: "key absent",
			setup: func(t *testing.T, dbPath string) {
				testutil.CreateStoreFixture(t, dbPath, "ItemTable", testutil.KV{Key: "other", Value: "x"})
			},
			wantFound: false,
		},
		{
			name: "key in second table",
			setup: func(t *testing.T, dbPath string) {
				testutil.CreateStoreFixture(t, dbPath, "ItemTable", testutil.KV{Key: "other", Value: "x"})
				testutil.CreateStoreFixture(t, dbPath, "cursorDiskKV", testutil.KV{Key: ChatDataKey, Value: "from disk kv"})
			},
			wantValue: "from disk kv",
			wantFound: true,
		},
		{
			name: "blob value",
			setup: func(t *testing.T, dbPath string) {
				testutil.CreateStoreFixture(t, dbPath, "ItemTable", testutil.KV{Key: ChatDataKey, Value: []byte(`{"tabs":[]}`)})
			},
			wantValue: `{"tabs":[]}`,
			wantFound: true,
		},
		{
			name: "empty value is treated as absent",
			setup: func(t *testing.T, dbPath string) {
				testutil.CreateStoreFixture(t, dbPath, "ItemTable", testutil.KV{Key: ChatDataKey, Value: ""})
			},
			wantFound: false,
		},
		{
			name: "empty value falls through to a later table",
			setup: func(t *testing.T, dbPath string) {
				testutil.CreateStoreFixture(t, dbPath, "ItemTable", testutil.KV{Key: ChatDataKey, Value: ""})
				testutil.CreateStoreFixture(t, dbPath, "cursorDiskKV", testutil.KV{Key: ChatDataKey, Value: "later"})
			},
			wantValue: "later",
			wantFound: true,
		},
		{
			name: "null value is treated as absent",
			setup: func(t *testing.T, dbPath string) {
				testutil.CreateStoreFixture(t, dbPath, "ItemTable", testutil.KV{Key: ChatDataKey, Value: nil})
			},
			wantFound: false,
		},
		{
			name: "table without key/value columns is skipped",
			setup: func(t *testing.T, dbPath string) {
				db, err := sql.Open("sqlite", dbPath)
				if err != nil {
					t.Fatal(err)
				}
				if _, err := db.Exec(`CREATE TABLE "odd table" (id INTEGER, body TEXT)`); err != nil {
					t.Fatal(err)
				}
				db.Close()
				testutil.CreateStoreFixture(t, dbPath, "ItemTable", testutil.KV{Key: ChatDataKey, Value: "found"})
			},
			wantValue: "found",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbPath := filepath.Join(testutil.CreateTempDir(t), "state.vscdb")
			tt.setup(t, dbPath)

			db, err := OpenDatabase(dbPath)
			if err != nil {
				t.Fatalf("OpenDatabase() error = %v", err)
			}
			defer db.Close()

			value, found, err := LookupKey(db, ChatDataKey)
			if err != nil {
				t.Fatalf("LookupKey() error = %v", err)
			}
			if found != tt.wantFound {
				t.Errorf("LookupKey() found = %v, want %v", found, tt.wantFound)
			}
			if value != tt.wantValue {
				t.Errorf("LookupKey() value = %q, want %q", value, tt.wantValue)
			}
		})
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := quoteIdent(`we"ird`); got != `"we""ird"` {
		t.Errorf("quoteIdent() = %s", got)
	}
}

func TestReadOnlyDSN(t *testing.T) {
	got := readOnlyDSN("/Users/x/Application Support/50%?#/state.vscdb")
	want := "file:/Users/x/Application Support/50%25%3f%23/state.vscdb?mode=ro"
	if got != want {
		t.Errorf("readOnlyDSN() = %q, want %q", got, want)
	}
}
