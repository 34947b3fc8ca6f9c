// xylo <path>
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xylo-build/xylo/internal/config"
	"github.com/xylo-build/xylo/internal/msg"
)

var (
	flagConfig  string
	flagProfile string
	flagTarget  string
)

var rootCmd = &cobra.Command{
	Use:   "xylo <project path>",
	Short: "Scaffold C projects with a Makefile and compile_commands.json",
	Long: `xylo creates C projects from profiles in xylo.toml and keeps their
Makefile and compile_commands.json in sync with the config.`,
	Args: cobra.ExactArgs(1),
	Run:  doNew,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "User config file (default is the OS config dir, e.g. ~/.config/xylo/xylo.toml)")
	addNewFlags(rootCmd)
}

// addProfileFlags registers the flags every generating command shares
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagProfile, "profile", "p", "", "Profile to use (default is default_profile)")
	cmd.Flags().StringVarP(&flagTarget, "target", "t", "", "Override the compiler target triple for this run (not saved to xylo.toml)")
}

// loadUserConfig loads the user config, writing the built-in default there
// on first use
func loadUserConfig() (*config.Config, string, error) {
	path := flagConfig
	if path == "" {
		var err error
		path, err = config.UserConfigPath()
		if err != nil {
			return nil, "", fmt.Errorf("could not locate the user config directory: %w", err)
		}
	}

	cfg, created, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, path, err
	}
	if created {
		msg.Info("wrote default config to %s", path)
	}
	return cfg, path, nil
}

// userConfig is loadUserConfig for commands that cannot go on without it
func userConfig() (*config.Config, string) {
	cfg, path, err := loadUserConfig()
	if err != nil {
		msg.Fatal("%v", err)
	}
	return cfg, path
}

func targetPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
