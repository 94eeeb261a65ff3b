package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DataPaths holds the resolved filesystem locations for application state
type DataPaths struct {
	DataDir    string // base data directory
	DBPath     string // SQLite key-value store
	LogPath    string // application log file
	ConfigPath string // YAML configuration file
}

// DetectDataPaths resolves the per-OS application data directory
func DetectDataPaths() (DataPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return DataPaths{}, fmt.Errorf("failed to get home directory: %w", err)
	}

	var dataDir string
	switch runtime.GOOS {
	case "darwin":
		dataDir = filepath.Join(home, "Library/Application Support/AiCAD")
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			dataDir = filepath.Join(xdg, "aicad")
		} else {
			dataDir = filepath.Join(home, ".local/share/aicad")
		}
	default:
		return DataPaths{}, fmt.Errorf("unsupported OS: %s (only macOS and Linux are supported)", runtime.GOOS)
	}

	return pathsIn(dataDir), nil
}

// GetDataPaths returns the data paths, honoring a custom base directory
// when one is given, and creates the data directory if missing.
func GetDataPaths(custom string) (DataPaths, error) {
	var paths DataPaths
	if custom != "" {
		paths = pathsIn(custom)
	} else {
		detected, err := DetectDataPaths()
		if err != nil {
			return DataPaths{}, err
		}
		paths = detected
	}

	if err := os.MkdirAll(paths.DataDir, 0o755); err != nil {
		return DataPaths{}, fmt.Errorf("failed to create data directory: %w", err)
	}

	return paths, nil
}

func pathsIn(dataDir string) DataPaths {
	return DataPaths{
		DataDir:    dataDir,
		DBPath:     filepath.Join(dataDir, "aicad.db"),
		LogPath:    filepath.Join(dataDir, "aicad.log"),
		ConfigPath: filepath.Join(dataDir, "config.yaml"),
	}
}
