package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/initgen-labs/initgen/internal/wizard"
)

// Open method names as accepted in configuration (default_open_method).
const (
	MethodNewSession   = "new-session"
	MethodAddToCurrent = "add-to-current"
)

// Session abstracts the editing session a generated project can join.
type Session interface {
	// Roots returns the directories currently open in the session.
	Roots() []string
	// OpenNew opens dir as a fresh session.
	OpenNew(dir string) error
	// AddRoot adds dir to the current session's set of roots.
	AddRoot(dir string) error
}

// Open offers to open the generated project. method is the configured
// default; when it names neither offered action the user is prompted.
// Adding to the current session is only offered when one is open and the
// project is not already nested inside an existing root; a nested project
// is already visible, so no session mutation happens at all.
func Open(s Session, projectDir, method string, p wizard.Prompter) error {
	contained := containedInAny(projectDir, s.Roots())
	if method == MethodAddToCurrent && contained {
		return nil
	}

	offered := []wizard.SelectItem{
		{ID: MethodNewSession, Label: "Open in a new session"},
	}
	if len(s.Roots()) > 0 && !contained {
		offered = append(offered, wizard.SelectItem{ID: MethodAddToCurrent, Label: "Add to current session"})
	}

	choice := ""
	for _, item := range offered {
		if item.ID == method {
			choice = method
			break
		}
	}
	if choice == "" {
		items := append(offered, wizard.SelectItem{ID: "skip", Label: "Not now"})
		id, ok, err := p.Select("Project generated. Open it?", items)
		if err != nil {
			return err
		}
		if !ok || id == "skip" {
			return nil
		}
		choice = id
	}

	switch choice {
	case MethodNewSession:
		return s.OpenNew(projectDir)
	case MethodAddToCurrent:
		return s.AddRoot(projectDir)
	}
	return nil
}

// containedInAny reports whether dir equals or sits below any root.
func containedInAny(dir string, roots []string) bool {
	dir = filepath.Clean(dir)
	for _, root := range roots {
		root = filepath.Clean(root)
		if dir == root || strings.HasPrefix(dir, root+string(os.PathSeparator)) {
			return true
		}
	}
	return false
}
