package workspace

import (
	"fmt"
	"os"
	"os/exec"
)

// EditorSession drives an external editor command (VS Code style CLI:
// `<editor> <dir>` opens a window, `<editor> --add <dir>` extends one).
type EditorSession struct {
	editor string
	roots  []string
}

// NewEditorSession creates a session backed by the given editor command.
// An empty editor falls back to $EDITOR, then to "code". roots names the
// directories already open, when the caller knows them.
func NewEditorSession(editor string, roots []string) *EditorSession {
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "code"
	}
	return &EditorSession{editor: editor, roots: roots}
}

// Roots returns the directories the session was constructed with.
func (s *EditorSession) Roots() []string {
	return s.roots
}

// OpenNew opens dir in a fresh editor window.
func (s *EditorSession) OpenNew(dir string) error {
	if err := s.run(dir); err != nil {
		return fmt.Errorf("opening %s with %s: %w", dir, s.editor, err)
	}
	return nil
}

// AddRoot adds dir to the most recent editor window.
func (s *EditorSession) AddRoot(dir string) error {
	if err := s.run("--add", dir); err != nil {
		return fmt.Errorf("adding %s to session with %s: %w", dir, s.editor, err)
	}
	s.roots = append(s.roots, dir)
	return nil
}

func (s *EditorSession) run(args ...string) error {
	if _, err := exec.LookPath(s.editor); err != nil {
		return fmt.Errorf("editor %q not found in PATH", s.editor)
	}
	return exec.Command(s.editor, args...).Run()
}
