// Package gamefinder discovers autosplitter bundles on disk.
//
// A bundle is a directory under an "autosplitters" folder containing a
// config.json (game name and log file location) and a splits.json (the run
// definition).
package gamefinder

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// EnvBundleDir is the environment variable name for specifying the
// autosplitters directory.
const EnvBundleDir = "AUTOSPLIT_DIR"

// bundleDirName is the directory scanned for bundles.
const bundleDirName = "autosplitters"

// Sentinel errors.
var (
	ErrBundleDirNotFound = errors.New("autosplitters directory not found")
	ErrNoBundles         = errors.New("no autosplitter bundles found")
	ErrBundleNotFound    = errors.New("autosplitter bundle not found")
)

// Config is a bundle's config.json: which game it is for and where that
// game writes its log, relative to the user's home directory.
type Config struct {
	Game        string `json:"game"`
	LogLocation string `json:"log_location"`
}

// Bundle is a discovered autosplitter bundle.
type Bundle struct {
	// Name is the bundle's folder name, used for selection on the CLI.
	Name string

	// Game is the display name from config.json.
	Game string

	// SplitsPath is the absolute path to the bundle's splits.json.
	SplitsPath string

	// LogPath is the absolute path to the game's log file, resolved
	// against the home directory.
	LogPath string
}

// DefaultBundleDirs returns candidate autosplitters directories in priority
// order: the working directory first, then next to the executable.
func DefaultBundleDirs() []string {
	dirs := []string{bundleDirName}

	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), bundleDirName))
	}

	return dirs
}

// FindBundleDir returns the autosplitters directory.
//
// Priority:
//  1. explicit (if non-empty)
//  2. AUTOSPLIT_DIR environment variable
//  3. Auto-detect from DefaultBundleDirs()
//
// Returns ErrBundleDirNotFound if no valid directory is found.
func FindBundleDir(explicit string) (string, error) {
	if explicit != "" {
		if validBundleDir(explicit) {
			return explicit, nil
		}
		return "", fmt.Errorf("%w: specified directory does not exist", ErrBundleDirNotFound)
	}

	if envDir := os.Getenv(EnvBundleDir); envDir != "" {
		if validBundleDir(envDir) {
			return envDir, nil
		}
		return "", fmt.Errorf("%w: %s environment variable points to invalid directory", ErrBundleDirNotFound, EnvBundleDir)
	}

	for _, dir := range DefaultBundleDirs() {
		if validBundleDir(dir) {
			return dir, nil
		}
	}

	return "", ErrBundleDirNotFound
}

// ListBundles returns the bundles under dir, sorted by name. Directories
// missing either config.json or splits.json are ignored, as are configs
// that fail to parse; a broken bundle should not hide the working ones.
//
// Returns ErrNoBundles when the directory holds no usable bundle.
func ListBundles(dir string) ([]Bundle, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading autosplitters directory: %w", err)
	}

	var bundles []Bundle
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		bundle, ok := loadBundle(filepath.Join(dir, entry.Name()), entry.Name())
		if !ok {
			continue
		}
		bundles = append(bundles, bundle)
	}

	if len(bundles) == 0 {
		return nil, ErrNoBundles
	}

	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].Name < bundles[j].Name
	})

	return bundles, nil
}

// FindBundle returns the bundle whose folder name or game name matches name.
func FindBundle(dir, name string) (Bundle, error) {
	bundles, err := ListBundles(dir)
	if err != nil {
		return Bundle{}, err
	}

	for _, b := range bundles {
		if b.Name == name || b.Game == name {
			return b, nil
		}
	}

	return Bundle{}, fmt.Errorf("%w: %q", ErrBundleNotFound, name)
}

// validBundleDir reports whether dir exists and is a directory.
func validBundleDir(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// loadBundle validates one candidate bundle directory.
func loadBundle(dir, name string) (Bundle, bool) {
	configPath := filepath.Join(dir, "config.json")
	splitsPath := filepath.Join(dir, "splits.json")

	if _, err := os.Stat(splitsPath); err != nil {
		return Bundle{}, false
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return Bundle{}, false
	}

	var cfg Config
	if err := json.Unmarshal(content, &cfg); err != nil {
		return Bundle{}, false
	}

	return Bundle{
		Name:       name,
		Game:       cfg.Game,
		SplitsPath: splitsPath,
		LogPath:    resolveLogPath(cfg.LogLocation),
	}, true
}

// resolveLogPath resolves a config's log location against the user's home
// directory. Absolute paths pass through untouched.
func resolveLogPath(location string) string {
	if filepath.IsAbs(location) {
		return location
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return location
	}
	return filepath.Join(home, location)
}
