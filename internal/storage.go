package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StoreReader pulls the raw chat-data record out of a workspace store
type StoreReader struct {
	copyDB bool
}

// NewStoreReader creates a StoreReader. With copyDB set, each store is copied
// to a temporary directory before it is opened, so a running editor holding
// the database does not get in the way.
func NewStoreReader(copyDB bool) *StoreReader {
	return &StoreReader{copyDB: copyDB}
}

// ReadChatData returns the raw chat-data value stored at path, or found=false
// when no table holds it. The database handle is closed on every return path.
func (r *StoreReader) ReadChatData(path string) (value string, found bool, err error) {
	dbPath := path
	if r.copyDB {
		tmpDir, err := os.MkdirTemp("", "cursor-chat-export-*")
		if err != nil {
			return "", false, &StorageError{Path: path, Op: "copy", Err: err}
		}
		defer func() {
			if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
				LogWarn("Failed to cleanup temporary files: %v", rmErr)
			}
		}()

		dbPath = filepath.Join(tmpDir, filepath.Base(path))
		if err := copyDatabaseWithWAL(path, dbPath); err != nil {
			return "", false, &StorageError{Path: path, Op: "copy", Err: err}
		}
	}

	db, err := OpenDatabase(dbPath)
	if err != nil {
		return "", false, &StorageError{Path: path, Op: "open", Err: err}
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			LogWarn("Failed to close %s: %v", path, closeErr)
		}
	}()

	value, found, err = LookupKey(db, ChatDataKey)
	if err != nil {
		return "", false, &StorageError{Path: path, Op: "query", Err: err}
	}
	return value, found, nil
}

// copyDatabaseWithWAL copies a SQLite file along with its -wal and -shm sidecars
func copyDatabaseWithWAL(src, dst string) error {
	if err := copyFile(src, dst); err != nil {
		return err
	}
	for _, suffix := range []string{"-wal", "-shm"} {
		if _, err := os.Stat(src + suffix); err != nil {
			continue
		}
		if err := copyFile(src+suffix, dst+suffix); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}
