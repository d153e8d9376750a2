package internal

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// ChatDataKey is the key under which Cursor stores the aichat panel's tabs
const ChatDataKey = "workbench.panel.aichat.view.aichat.chatdata"

// OpenDatabase opens a SQLite database in read-only mode
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// ListTables returns the names of all tables in the database
func ListTables(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table'")
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return names, nil
}

// tableHasKeyValue reports whether table has both a key and a value column
func tableHasKeyValue(db *sql.DB, table string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("SELECT * FROM %s LIMIT 0", quoteIdent(table)))
	if err != nil {
		return false, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return false, fmt.Errorf("columns failed: %w", err)
	}

	var hasKey, hasValue bool
	for _, c := range cols {
		switch strings.ToLower(c) {
		case "key":
			hasKey = true
		case "value":
			hasValue = true
		}
	}
	return hasKey && hasValue, nil
}

// LookupKey scans every key/value table for key and returns the first non-NULL value.
// Table names are not assumed, since Cursor has used both ItemTable and cursorDiskKV.
func LookupKey(db *sql.DB, key string) (string, bool, error) {
	tables, err := ListTables(db)
	if err != nil {
		return "", false, err
	}

	for _, table := range tables {
		ok, err := tableHasKeyValue(db, table)
		if err != nil {
			return "", false, fmt.Errorf("inspect table %s: %w", table, err)
		}
		if !ok {
			LogDebug("Table %s has no key/value columns, skipping", table)
			continue
		}

		// value may be stored as TEXT or BLOB; an empty value counts as absent
		var value []byte
		query := fmt.Sprintf("SELECT value FROM %s WHERE key = ? AND value IS NOT NULL LIMIT 1", quoteIdent(table))
		err = db.QueryRow(query, key).Scan(&value)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return "", false, fmt.Errorf("query table %s: %w", table, err)
		}
		if len(value) == 0 {
			continue
		}
		return string(value), true, nil
	}

	return "", false, nil
}

// readOnlyDSN builds a file: URI so the driver honours mode=ro
func readOnlyDSN(path string) string {
	r := strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")
	return "file:" + r.Replace(filepath.ToSlash(path)) + "?mode=ro"
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
