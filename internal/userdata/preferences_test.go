package userdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/initgen-labs/initgen/internal/branding"
)

func TestLoadPreferencesMissingFile(t *testing.T) {
	t.Setenv(branding.EnvVar("HOME"), t.TempDir())

	p, err := LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences() error: %v", err)
	}
	if len(p.LastDependencies) != 0 {
		t.Errorf("LastDependencies = %v, want empty", p.LastDependencies)
	}
}

func TestRememberDependenciesRoundTrip(t *testing.T) {
	t.Setenv(branding.EnvVar("HOME"), t.TempDir())

	if err := RememberDependencies([]string{"web", "data-jpa"}); err != nil {
		t.Fatalf("RememberDependencies() error: %v", err)
	}

	p, err := LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences() error: %v", err)
	}
	if len(p.LastDependencies) != 2 || p.LastDependencies[0] != "web" || p.LastDependencies[1] != "data-jpa" {
		t.Errorf("LastDependencies = %v", p.LastDependencies)
	}

	// Newest run wins.
	if err := RememberDependencies([]string{"security"}); err != nil {
		t.Fatalf("RememberDependencies() error: %v", err)
	}
	p, err = LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences() error: %v", err)
	}
	if len(p.LastDependencies) != 1 || p.LastDependencies[0] != "security" {
		t.Errorf("LastDependencies = %v, want [security]", p.LastDependencies)
	}
}

func TestSavePreferencesKeepsExtras(t *testing.T) {
	home := t.TempDir()
	t.Setenv(branding.EnvVar("HOME"), home)

	raw := "editor: vim\ntheme: dark\n"
	if err := os.WriteFile(filepath.Join(home, PreferencesFile), []byte(raw), FilePermNormal); err != nil {
		t.Fatal(err)
	}

	if err := RememberDependencies([]string{"web"}); err != nil {
		t.Fatalf("RememberDependencies() error: %v", err)
	}

	p, err := LoadPreferences()
	if err != nil {
		t.Fatalf("LoadPreferences() error: %v", err)
	}
	if p.Editor != "vim" {
		t.Errorf("Editor = %q, want vim", p.Editor)
	}
	if p.Extras["theme"] != "dark" {
		t.Errorf("Extras = %v, want theme preserved", p.Extras)
	}
}
