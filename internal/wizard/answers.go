package wizard

import "github.com/initgen-labs/initgen/internal/initializr"

// Answers accumulates the choices of one wizard run. It is owned by the
// run that created it and discarded once the archive is materialized.
type Answers struct {
	ServiceURL      string
	Language        string
	GroupID         string
	ArtifactID      string
	Packaging       string
	PlatformVersion string
	Dependencies    []string
	TargetDir       string
}

// Defaults pre-answers any subset of steps for non-interactive use.
// A zero value runs every step interactively. Never mutated by the wizard.
type Defaults struct {
	ServiceURL      string
	Language        string
	GroupID         string
	ArtifactID      string
	Packaging       string
	PlatformVersion string
	Dependencies    []string
	TargetDir       string
}

// request derives the final download request from the accumulated answers.
func (a *Answers) request() initializr.ProjectRequest {
	return initializr.ProjectRequest{
		ServiceURL:      a.ServiceURL,
		Type:            defaultProjectType,
		Language:        a.Language,
		GroupID:         a.GroupID,
		ArtifactID:      a.ArtifactID,
		Packaging:       a.Packaging,
		PlatformVersion: a.PlatformVersion,
		Dependencies:    append([]string(nil), a.Dependencies...),
	}
}
