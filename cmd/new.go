// xylo new <path>
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xylo-build/xylo/internal/builder"
	"github.com/xylo-build/xylo/internal/config"
	"github.com/xylo-build/xylo/internal/msg"
	"github.com/xylo-build/xylo/internal/scaffold"
)

var (
	flagNoGit  bool
	flagForce  bool
	flagRemote string
)

func doNew(cmd *cobra.Command, args []string) {
	path := args[0]
	cfg, _ := userConfig()

	b, err := builder.New(path, cfg)
	if err != nil {
		msg.Fatal("%v", err)
	}

	// fail on a bad profile before anything touches the disk
	prof, err := cfg.Resolve(flagProfile)
	if err != nil {
		msg.Fatal("%v", err)
	}
	if _, err := b.Plan(prof.Name, flagTarget); err != nil {
		msg.Fatal("%v", err)
	}
	if targetDropped(prof, flagTarget) {
		msg.Warn("-t %s is not saved to %s, pass it again to later build and gen runs", flagTarget, config.ConfigFilename)
	}

	opts := scaffold.Options{
		Path:   b.Dir(),
		Force:  flagForce,
		NoGit:  flagNoGit,
		Remote: flagRemote,
	}
	if err := scaffold.Create(opts, prof); err != nil {
		msg.Fatal("%v", err)
	}

	if err := b.SaveConfig(); err != nil {
		msg.Fatal("failed to save project config: %v", err)
	}
	if err := b.Generate(prof.Name, flagTarget); err != nil {
		msg.Fatal("%v", err)
	}

	fmt.Printf("Project %s was successfully created (profile %s)\n",
		color.New(color.FgHiGreen, color.Bold).Sprint(path), color.HiCyanString(prof.Name))
}

// targetDropped reports whether target overrides prof's own triple, which
// the saved project config will not remember
func targetDropped(prof config.Profile, target string) bool {
	if target == "" {
		return false
	}
	return !prof.Build.HasTarget() || *prof.Build.Target != target
}

var newCmd = &cobra.Command{
	Use:   "new <project path>",
	Short: "Create a new project in a new directory",
	Args:  cobra.ExactArgs(1),
	Run:   doNew,
}

func addNewFlags(cmd *cobra.Command) {
	addProfileFlags(cmd)
	cmd.Flags().BoolVar(&flagNoGit, "no-git", false, "Skip git initialization")
	cmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Overwrite an existing directory")
	cmd.Flags().StringVar(&flagRemote, "remote", "", "Set the origin remote, e.g. gh:user/repo")
}

func init() {
	// xylo new subcommand
	rootCmd.AddCommand(newCmd)
	addNewFlags(newCmd)
}
