package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DetectWorkspaceStorage returns the default Cursor workspaceStorage directory for the current OS
func DetectWorkspaceStorage() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return workspaceStorageFor(runtime.GOOS, home, os.Getenv("APPDATA"))
}

func workspaceStorageFor(goos, home, appData string) (string, error) {
	var basePath string
	switch goos {
	case "darwin":
		basePath = filepath.Join(home, "Library", "Application Support", "Cursor", "User")
	case "linux":
		basePath = filepath.Join(home, ".config", "Cursor", "User")
	case "windows":
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		basePath = filepath.Join(appData, "Cursor", "User")
	default:
		return "", fmt.Errorf("unsupported OS: %s", goos)
	}
	return filepath.Join(basePath, "workspaceStorage"), nil
}
