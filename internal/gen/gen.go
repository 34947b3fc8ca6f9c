// Package gen derives build artifacts from a resolved build configuration.
// Everything here is a pure function of its inputs: the same plan always
// yields byte-identical output.
package gen

import (
	"github.com/xylo-build/xylo/internal/config"
)

// Plan is everything a generator needs, already resolved and expanded.
type Plan struct {
	Build      config.BuildConfig
	Commands   *config.BuildCommands
	Invocation Invocation
	ProjectDir string // absolute
}

// NewPlan synthesizes the invocation for prof and bundles it with dir.
func NewPlan(prof config.Profile, dir string) Plan {
	return Plan{
		Build:      prof.Build,
		Commands:   prof.Commands,
		Invocation: Synthesize(prof.Build),
		ProjectDir: dir,
	}
}

type Generator interface {
	// Filename is the artifact's path relative to the project root
	Filename() string
	Generate(p Plan) ([]byte, error)
}

type MakefileGen struct{}

func (MakefileGen) Filename() string { return "Makefile" }

func (MakefileGen) Generate(p Plan) ([]byte, error) {
	return []byte(Makefile(p.Build, p.Invocation, p.Commands)), nil
}

type CompDBGen struct{}

func (CompDBGen) Filename() string { return CompDBFilename }

func (CompDBGen) Generate(p Plan) ([]byte, error) {
	return CompilationDatabase(p.Build, p.Invocation, p.ProjectDir)
}

// All returns every generator in the order artifacts are written.
func All() []Generator {
	return []Generator{MakefileGen{}, CompDBGen{}}
}
