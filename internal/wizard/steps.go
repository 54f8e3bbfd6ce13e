package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/initgen-labs/initgen/internal/branding"
	"github.com/initgen-labs/initgen/internal/config"
)

// The quickstart flow always requests a Maven project layout.
const defaultProjectType = "maven-project"

// confirmItemID marks the terminal entry of the dependency select-loop.
// Catalog ids never start with an underscore, so it cannot collide.
const confirmItemID = "_confirm"

var (
	languageChoices  = []string{"Java", "Kotlin", "Groovy"}
	packagingChoices = []string{"Jar", "War"}

	lower = cases.Lower(language.English)
)

// stepEndpoint resolves the generation service base URL. It never prompts:
// the value comes from defaults, configuration, or the built-in default.
func (w *Wizard) stepEndpoint(a *Answers, d Defaults) error {
	url := d.ServiceURL
	if url == "" {
		url = w.cfg(config.KeyServiceURL)
	}
	if url == "" {
		url = branding.ServiceURL()
	}
	if url == "" {
		return canceled("service endpoint")
	}
	a.ServiceURL = strings.TrimRight(url, "/")
	return nil
}

func (w *Wizard) stepLanguage(a *Answers, d Defaults) error {
	v, err := w.fixedChoice("language", "Project language", languageChoices, d.Language, config.KeyDefaultLanguage)
	if err != nil {
		return err
	}
	a.Language = v
	return nil
}

func (w *Wizard) stepPackaging(a *Answers, d Defaults) error {
	v, err := w.fixedChoice("packaging", "Packaging type", packagingChoices, d.Packaging, config.KeyDefaultPackaging)
	if err != nil {
		return err
	}
	a.Packaging = v
	return nil
}

// fixedChoice resolves from defaults, then configuration, then an
// exclusive single-choice prompt over the enumerated set. The result is
// always lower-cased.
func (w *Wizard) fixedChoice(step, title string, choices []string, preset, cfgKey string) (string, error) {
	if preset == "" {
		preset = w.cfg(cfgKey)
	}
	if preset != "" {
		return lower.String(preset), nil
	}

	items := make([]SelectItem, 0, len(choices))
	for _, c := range choices {
		items = append(items, SelectItem{ID: lower.String(c), Label: c})
	}
	id, ok, err := w.Prompter.Select(title, items)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", canceled(step)
	}
	return lower.String(id), nil
}

func (w *Wizard) stepGroupID(a *Answers, d Defaults) error {
	if d.GroupID != "" {
		if err := ValidateGroupID(d.GroupID); err != nil {
			return err
		}
		a.GroupID = d.GroupID
		return nil
	}

	seed := w.cfg(config.KeyDefaultGroupID)
	if seed == "" {
		seed = "com.example"
	}
	v, ok, err := w.Prompter.Input("Group Id", seed, ValidateGroupID)
	if err != nil {
		return err
	}
	if !ok {
		return canceled("group id")
	}
	a.GroupID = v
	return nil
}

func (w *Wizard) stepArtifactID(a *Answers, d Defaults) error {
	if d.ArtifactID != "" {
		if err := ValidateArtifactID(d.ArtifactID); err != nil {
			return err
		}
		a.ArtifactID = d.ArtifactID
		return nil
	}

	seed := w.cfg(config.KeyDefaultArtifactID)
	if seed == "" {
		seed = "demo"
	}
	v, ok, err := w.Prompter.Input("Artifact Id", seed, ValidateArtifactID)
	if err != nil {
		return err
	}
	if !ok {
		return canceled("artifact id")
	}
	a.ArtifactID = v
	return nil
}

func (w *Wizard) stepPlatformVersion(a *Answers, d Defaults) error {
	if d.PlatformVersion != "" {
		a.PlatformVersion = d.PlatformVersion
		return nil
	}

	md, err := w.Client.Metadata(a.ServiceURL)
	if err != nil {
		return err
	}

	items := make([]SelectItem, 0, len(md.Versions))
	for _, v := range md.Versions {
		detail := ""
		if v.Default {
			detail = "default"
		}
		items = append(items, SelectItem{ID: v.ID, Label: v.Name, Detail: detail})
	}
	id, ok, err := w.Prompter.Select("Platform version", items)
	if err != nil {
		return err
	}
	if !ok {
		return canceled("platform version")
	}
	a.PlatformVersion = id
	return nil
}

// stepDependencies runs the select-loop: each iteration re-derives the
// catalog for the chosen platform version and shows toggle entries plus
// one confirm entry. Dismissing the prompt before confirming cancels the
// wizard and discards in-progress toggles.
func (w *Wizard) stepDependencies(a *Answers, d Defaults) error {
	if len(d.Dependencies) > 0 {
		a.Dependencies = append([]string(nil), d.Dependencies...)
		return nil
	}

	sel := NewSelection(nil)
	for {
		md, err := w.Client.Metadata(a.ServiceURL)
		if err != nil {
			return err
		}
		deps := md.DependenciesFor(a.PlatformVersion)

		items := make([]SelectItem, 0, len(deps)+1)
		items = append(items, SelectItem{
			ID:     confirmItemID,
			Label:  fmt.Sprintf("Selected %d dependencies", sel.Len()),
			Detail: "continue with the current selection",
		})
		for _, dep := range deps {
			mark := "[ ] "
			if sel.Has(dep.ID) {
				mark = "[x] "
			}
			items = append(items, SelectItem{
				ID:     dep.ID,
				Label:  mark + dep.Name,
				Detail: dep.Description,
			})
		}

		id, ok, err := w.Prompter.Select("Search for dependencies", items)
		if err != nil {
			return err
		}
		if !ok {
			return canceled("dependency selection")
		}
		if id == confirmItemID {
			a.Dependencies = sel.IDs()
			return nil
		}
		sel.Toggle(id)
	}
}

// stepTargetDir resolves the output directory with a conflict-retry loop:
// while a project-named subdirectory already exists under the candidate,
// the user chooses between generating anyway and picking another folder.
func (w *Wizard) stepTargetDir(a *Answers, d Defaults) error {
	dir := d.TargetDir
	if dir == "" {
		picked, ok, err := w.Prompter.PickFolder("Target directory")
		if err != nil {
			return err
		}
		if !ok {
			return canceled("target directory")
		}
		dir = picked
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, a.ArtifactID)); os.IsNotExist(err) {
			a.TargetDir = dir
			return nil
		}

		choice, ok, err := w.Prompter.Select(
			fmt.Sprintf("Folder %s already exists under %s", a.ArtifactID, dir),
			[]SelectItem{
				{ID: "continue", Label: "Continue", Detail: "generate into the existing folder"},
				{ID: "change", Label: "Choose another folder"},
			},
		)
		if err != nil {
			return err
		}
		if !ok {
			return canceled("target directory")
		}
		if choice == "continue" {
			a.TargetDir = dir
			return nil
		}

		picked, ok, err := w.Prompter.PickFolder("Target directory")
		if err != nil {
			return err
		}
		if !ok {
			return canceled("target directory")
		}
		dir = picked
	}
}
