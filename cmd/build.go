// xylo build [path]
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/xylo-build/xylo/internal/builder"
	"github.com/xylo-build/xylo/internal/config"
	"github.com/xylo-build/xylo/internal/gen"
	"github.com/xylo-build/xylo/internal/msg"
)

// loadBuilder opens the project at args[0] (or "."). The user config is only
// read when the project has no xylo.toml.
func loadBuilder(args []string) *builder.Builder {
	fallback := func() (*config.Config, error) {
		cfg, _, err := loadUserConfig()
		return cfg, err
	}
	b, err := builder.NewBuilderInDirectory(targetPath(args), fallback)
	if err != nil {
		msg.Fatal("%v", err)
	}
	return b
}

func warnUncoveredSources(b *builder.Builder) {
	sources, err := b.Sources()
	if err != nil {
		msg.Warn("could not list sources: %v", err)
		return
	}
	if len(sources) > 1 {
		msg.Warn("found %d C sources under src/, but %s only describes one translation unit", len(sources), gen.CompDBFilename)
	}
}

func doBuild(cmd *cobra.Command, args []string) {
	b := loadBuilder(args)
	warnUncoveredSources(b)

	out, err := b.Build(flagProfile, flagTarget)
	if len(out) > 0 {
		w := &msg.IndentWriter{Indent: "    ", W: os.Stdout}
		w.Write(out)
	}
	if err != nil {
		msg.Fatal("%v", err)
	}
	msg.Info("build finished")
}

var buildCmd = &cobra.Command{
	Use:   "build [project path]",
	Short: "Regenerate the artifacts and run make build",
	Long:  `Regenerate the Makefile and compile_commands.json, then run the build target. If no path is given, uses "."`,
	Args:  cobra.MaximumNArgs(1),
	Run:   doBuild,
}

func init() {
	// xylo build subcommand
	rootCmd.AddCommand(buildCmd)
	addProfileFlags(buildCmd)
}
