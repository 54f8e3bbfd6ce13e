package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/initgen-labs/initgen/internal/branding"
)

// PreferencesFile is the file name under the home directory.
const PreferencesFile = "preferences.yaml"

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// Root returns the path to the user data directory.
// It checks the INITGEN_HOME environment variable first,
// then falls back to ~/.initgen.
func Root() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// PreferencesPath returns the full path to preferences.yaml.
func PreferencesPath() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, PreferencesFile), nil
}
