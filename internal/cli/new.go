package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/initgen-labs/initgen/internal/config"
	"github.com/initgen-labs/initgen/internal/generator"
	"github.com/initgen-labs/initgen/internal/initializr"
	"github.com/initgen-labs/initgen/internal/prompt"
	"github.com/initgen-labs/initgen/internal/userdata"
	"github.com/initgen-labs/initgen/internal/wizard"
	"github.com/initgen-labs/initgen/internal/workspace"
)

var (
	newServiceURL      string
	newLanguage        string
	newGroupID         string
	newArtifactID      string
	newPackaging       string
	newPlatformVersion string
	newDependencies    []string
	newOutputDir       string
	newPlain           bool
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a project through the interactive wizard",
	Long: `Walk through the project generation steps and materialize the starter
archive on disk. Every flag pre-answers the matching step, so supplying
all of them runs the wizard without prompting:

  initgen new --language java --group-id com.example --artifact-id demo \
    --packaging jar --platform-version 3.3.2 --dependencies web,data-jpa \
    --output-dir ~/projects`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newServiceURL, "service-url", "", "Initializr service base URL")
	newCmd.Flags().StringVar(&newLanguage, "language", "", "Project language (java, kotlin, groovy)")
	newCmd.Flags().StringVar(&newGroupID, "group-id", "", "Group id (e.g. com.example)")
	newCmd.Flags().StringVar(&newArtifactID, "artifact-id", "", "Artifact id (e.g. demo)")
	newCmd.Flags().StringVar(&newPackaging, "packaging", "", "Packaging type (jar, war)")
	newCmd.Flags().StringVar(&newPlatformVersion, "platform-version", "", "Platform version id")
	newCmd.Flags().StringSliceVar(&newDependencies, "dependencies", nil, "Dependency ids (comma separated)")
	newCmd.Flags().StringVarP(&newOutputDir, "output-dir", "o", "", "Directory to generate the project under")
	newCmd.Flags().BoolVar(&newPlain, "plain", false, "Use plain numbered prompts instead of the full-screen UI")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	var prompter wizard.Prompter
	if newPlain || !prompt.IsTerminal(os.Stdin) {
		prompter = prompt.NewConsole(cmd.InOrStdin(), cmd.ErrOrStderr())
	} else {
		prompter = prompt.NewTUI()
	}

	prefs, err := userdata.LoadPreferences()
	if err != nil {
		prefs = &userdata.Preferences{}
	}
	session := workspace.NewEditorSession(prefs.Editor, nil)
	gen := generator.New()

	w := &wizard.Wizard{
		Client:      initializr.New(),
		Prompter:    prompter,
		ConfigValue: config.Get,
		Generate:    gen.Generate,
		Remember:    userdata.RememberDependencies,
		Progress: func(phase string) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s...\n", phase)
		},
		OpenProject: func(dir string) error {
			return workspace.Open(session, dir, config.Get(config.KeyDefaultOpenMethod), prompter)
		},
	}

	result, err := w.Run(wizard.Defaults{
		ServiceURL:      newServiceURL,
		Language:        newLanguage,
		GroupID:         newGroupID,
		ArtifactID:      newArtifactID,
		Packaging:       newPackaging,
		PlatformVersion: newPlatformVersion,
		Dependencies:    newDependencies,
		TargetDir:       newOutputDir,
	})
	if err != nil {
		if wizard.IsCanceled(err) {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return nil
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Project generated at %s\n", result.ProjectDir)
	return nil
}
