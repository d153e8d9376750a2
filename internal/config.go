package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the settings for one export run
type Config struct {
	WorkspaceRoot string // directory holding one subdirectory per workspace
	OutputDir     string // project directories are created under here
	CopyDB        bool   // read from a temporary copy of each store
	Overwrite     bool   // let later transcripts replace earlier ones with the same file name
}

type tomlConfig struct {
	WorkspaceRoot string `toml:"workspace_root"`
	OutputDir     string `toml:"output_dir"`
	CopyDB        *bool  `toml:"copy"`
	Overwrite     *bool  `toml:"overwrite"`
}

// DefaultConfigPath returns ~/.config/cursor-chat-export/config.toml
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "cursor-chat-export", "config.toml")
}

// LoadConfig builds a Config from OS defaults and, if it exists, the TOML file at path.
// A missing file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := Config{OutputDir: "."}

	root, err := DetectWorkspaceStorage()
	if err != nil {
		LogDebug("No default workspace storage: %v", err)
	} else {
		cfg.WorkspaceRoot = root
	}

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var tc tomlConfig
	if _, err := toml.DecodeFile(path, &tc); err != nil {
		return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if tc.WorkspaceRoot != "" {
		cfg.WorkspaceRoot = expandHome(tc.WorkspaceRoot)
	}
	if tc.OutputDir != "" {
		cfg.OutputDir = expandHome(tc.OutputDir)
	}
	if tc.CopyDB != nil {
		cfg.CopyDB = *tc.CopyDB
	}
	if tc.Overwrite != nil {
		cfg.Overwrite = *tc.Overwrite
	}
	return cfg, nil
}

func expandHome(p string) string {
	if len(p) < 2 || p[:2] != "~/" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
