// xylo gen [path]
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xylo-build/xylo/internal/gen"
	"github.com/xylo-build/xylo/internal/msg"
)

var (
	flagCheck bool
	flagOnly  = newArtifactFlag(
		artifactChoice{"all", "Makefile and compile_commands.json (default)", gen.All()},
		artifactChoice{"makefile", "Only the Makefile", []gen.Generator{gen.MakefileGen{}}},
		artifactChoice{"compdb", "Only compile_commands.json", []gen.Generator{gen.CompDBGen{}}},
		artifactChoice{"ninja", "build.ninja, never part of all", []gen.Generator{gen.NinjaGen{}}},
	)
)

func doGen(cmd *cobra.Command, args []string) {
	b := loadBuilder(args)
	gens := flagOnly.Generators()

	if flagCheck {
		drift, err := b.Check(flagProfile, flagTarget, gens...)
		if err != nil {
			msg.Fatal("%v", err)
		}
		for _, d := range drift {
			fmt.Print(d.Diff)
		}
		if len(drift) > 0 {
			msg.Fatal("%d artifact(s) out of date, run without --check to regenerate", len(drift))
		}
		msg.Info("artifacts are up to date")
		return
	}

	warnUncoveredSources(b)
	if err := b.Generate(flagProfile, flagTarget, gens...); err != nil {
		msg.Fatal("%v", err)
	}
	for _, g := range gens {
		msg.Info("wrote %s", g.Filename())
	}
}

var genCmd = &cobra.Command{
	Use:   "gen [project path]",
	Short: "Regenerate the Makefile and compile_commands.json",
	Args:  cobra.MaximumNArgs(1),
	Run:   doGen,
}

func init() {
	// xylo gen subcommand
	rootCmd.AddCommand(genCmd)
	addProfileFlags(genCmd)
	genCmd.Flags().BoolVar(&flagCheck, "check", false, "Only report artifacts that differ from the config")
	genCmd.Flags().Var(flagOnly, "only", flagOnly.Usage())
	genCmd.RegisterFlagCompletionFunc("only", flagOnly.Complete)
}
