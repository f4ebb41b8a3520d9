// Package paths locates the typereg configuration and data directories.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDir is the directory name used under platform locations.
const appDir = "typereg"

// DefaultDataDirName is the data directory created in the working
// directory when nothing else is configured.
const DefaultDataDirName = ".typereg-db"

// Environment variables that override the directories.
const (
	EnvConfigDir = "TYPEREG_CONFIG_DIR"
	EnvDataDir   = "TYPEREG_DATA_DIR"
)

// platformDir is swapped out in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform configuration directory:
// $XDG_CONFIG_HOME/typereg or ~/.config/typereg on Linux, and
// os.UserConfigDir()/typereg elsewhere.
func DefaultConfigDir() (string, error) {
	return platformPath("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform data directory:
// $XDG_DATA_HOME/typereg or ~/.local/share/typereg on Linux, and
// os.UserConfigDir()/typereg elsewhere.
func DefaultDataDir() (string, error) {
	return platformPath("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func platformPath(xdgVar, homeRel string) (string, error) {
	if runtime.GOOS != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDir), nil
	}

	if xdg := os.Getenv(xdgVar); xdg != "" {
		return filepath.Join(xdg, appDir), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeRel, appDir), nil
}

// ResolveConfigDir returns the configuration directory: flag, then
// $TYPEREG_CONFIG_DIR, then DefaultConfigDir. Overrides are made
// absolute.
func ResolveConfigDir(flag string) (string, error) {
	if dir, ok := firstSet(flag, os.Getenv(EnvConfigDir)); ok {
		return filepath.Abs(dir)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory: flag, then the config file
// value, then $TYPEREG_DATA_DIR, then DefaultDataDirName in the working
// directory. The result is absolute.
func ResolveDataDir(flag, configValue string) (string, error) {
	if dir, ok := firstSet(flag, configValue, os.Getenv(EnvDataDir)); ok {
		return filepath.Abs(dir)
	}
	return filepath.Abs(DefaultDataDirName)
}

func firstSet(values ...string) (string, bool) {
	for _, v := range values {
		if v != "" {
			return v, true
		}
	}
	return "", false
}
