package wizard

import (
	"path/filepath"

	"github.com/initgen-labs/initgen/internal/generator"
	"github.com/initgen-labs/initgen/internal/initializr"
)

// CatalogClient is the slice of the service client the wizard needs.
type CatalogClient interface {
	Metadata(serviceURL string) (*initializr.Metadata, error)
}

// Wizard runs the fixed step sequence and hands the accumulated answers
// to the download pipeline. Collaborators are injected; Remember,
// Progress, and OpenProject may be nil.
type Wizard struct {
	Client   CatalogClient
	Prompter Prompter

	// ConfigValue looks up a configuration default by key; nil means
	// no configuration is available.
	ConfigValue func(key string) string

	// Generate fetches the archive at the URL and expands it into the
	// directory, reporting coarse phase progress.
	Generate func(downloadURL, destDir string, report generator.ProgressFunc) error

	// Remember persists the final dependency selection for future runs.
	Remember func(ids []string) error

	// Progress receives phase labels from the download pipeline.
	Progress generator.ProgressFunc

	// OpenProject offers to open the generated project.
	OpenProject func(projectDir string) error
}

// Result is the outcome of one successful wizard run.
type Result struct {
	Request    initializr.ProjectRequest
	ProjectDir string
}

// Run executes the steps strictly in order. The first step that yields a
// cancellation aborts the run with a *CanceledError; no later step runs
// and nothing is downloaded or written.
func (w *Wizard) Run(d Defaults) (*Result, error) {
	a := &Answers{}

	steps := []func(*Answers, Defaults) error{
		w.stepEndpoint,
		w.stepLanguage,
		w.stepGroupID,
		w.stepArtifactID,
		w.stepPackaging,
		w.stepPlatformVersion,
		w.stepDependencies,
		w.stepTargetDir,
	}
	for _, step := range steps {
		if err := step(a, d); err != nil {
			return nil, err
		}
	}

	req := a.request()
	downloadURL, err := initializr.DownloadURL(req)
	if err != nil {
		return nil, err
	}

	if err := w.Generate(downloadURL, a.TargetDir, w.Progress); err != nil {
		return nil, err
	}

	// The archive carries baseDir=artifactId, so the project root is one
	// level below the chosen target directory.
	projectDir := filepath.Join(a.TargetDir, a.ArtifactID)

	if w.Remember != nil {
		// Best effort: a failed preference write never fails the run.
		_ = w.Remember(a.Dependencies)
	}

	if w.OpenProject != nil {
		if err := w.OpenProject(projectDir); err != nil {
			return nil, err
		}
	}

	return &Result{Request: req, ProjectDir: projectDir}, nil
}

func (w *Wizard) cfg(key string) string {
	if w.ConfigValue == nil {
		return ""
	}
	return w.ConfigValue(key)
}
