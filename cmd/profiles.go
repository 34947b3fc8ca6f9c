// xylo profiles [path], xylo config
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xylo-build/xylo/internal/config"
	"github.com/xylo-build/xylo/internal/msg"
)

func doProfiles(cmd *cobra.Command, args []string) {
	cfg := loadBuilder(args).Config()

	for _, name := range cfg.Profiles() {
		build := cfg.Profile[name].Build
		marker := "  "
		if name == cfg.DefaultProfile {
			marker = color.HiGreenString("* ")
		}
		fmt.Printf("%s%s\t%s %s\n", marker, color.HiCyanString(name), build.Compiler.Exec, build.Compiler.Args)
	}
	if _, ok := cfg.Profile[cfg.DefaultProfile]; !ok {
		msg.Warn("default_profile %q does not name a profile", cfg.DefaultProfile)
	}
}

var profilesCmd = &cobra.Command{
	Use:   "profiles [project path]",
	Short: "List the profiles of a project",
	Args:  cobra.MaximumNArgs(1),
	Run:   doProfiles,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the user config path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, path := userConfig()
		fmt.Println(path)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the user config",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _ := userConfig()
		data, err := config.Save(cfg)
		if err != nil {
			msg.Fatal("%v", err)
		}
		os.Stdout.Write(data)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the user config",
}

func init() {
	// xylo profiles subcommand
	rootCmd.AddCommand(profilesCmd)

	// xylo config subcommand
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
