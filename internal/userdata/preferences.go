package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Preferences represents user-wide state stored in preferences.yaml.
type Preferences struct {
	// LastDependencies is the dependency selection from the most recent
	// successfully generated project, newest run wins.
	LastDependencies []string `yaml:"last_dependencies,omitempty"`
	Editor           string   `yaml:"editor,omitempty"`

	// Extras holds arbitrary user-defined fields.
	Extras map[string]interface{} `yaml:",inline"`
}

// LoadPreferences reads and parses preferences.yaml.
// A missing file yields empty preferences, not an error.
func LoadPreferences() (*Preferences, error) {
	path, err := PreferencesPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Preferences{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}

	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preferences: %w", err)
	}
	return &p, nil
}

// SavePreferences writes preferences.yaml, creating the directory if needed.
func SavePreferences(p *Preferences) error {
	path, err := PreferencesPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), DirPermNormal); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	if err := os.WriteFile(path, data, FilePermNormal); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}

// RememberDependencies records ids as the last used dependency selection.
func RememberDependencies(ids []string) error {
	p, err := LoadPreferences()
	if err != nil {
		return err
	}
	p.LastDependencies = ids
	return SavePreferences(p)
}
