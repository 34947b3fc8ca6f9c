package builder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/xylo-build/xylo/internal/config"
	"github.com/xylo-build/xylo/internal/gen"
	"github.com/xylo-build/xylo/internal/msg"
)

const sourcePattern = "src/**/*.c"

// Builder ties a project directory to the config it is built from
type Builder struct {
	cfg     *config.Config
	basedir string

	// MakeProgram runs the generated Makefile, $MAKE or "make" by default
	MakeProgram string
}

// New returns a builder for the project at path using cfg.
func New(path string, cfg *config.Config) (*Builder, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	makeProgram := os.Getenv("MAKE")
	if makeProgram == "" {
		makeProgram = "make"
	}
	return &Builder{cfg: cfg, basedir: path, MakeProgram: makeProgram}, nil
}

// NewBuilderInDirectory loads the project's xylo.toml. fallback is only
// called when the project has none, and may be nil.
func NewBuilderInDirectory(path string, fallback func() (*config.Config, error)) (*Builder, error) {
	cfgPath := filepath.Join(path, config.ConfigFilename)
	cfg, err := config.LoadFile(cfgPath)
	if errors.Is(err, fs.ErrNotExist) && fallback != nil {
		cfg, err = fallback()
	}
	if err != nil {
		return nil, err
	}
	return New(path, cfg)
}

func (b *Builder) Config() *config.Config { return b.cfg }
func (b *Builder) Dir() string            { return b.basedir }

// Plan resolves profile, applies a non-empty target override, expands
// expressions and synthesizes the commands. The loaded config is not touched.
func (b *Builder) Plan(profile, target string) (gen.Plan, error) {
	prof, err := b.cfg.Resolve(profile)
	if err != nil {
		return gen.Plan{}, err
	}
	if target != "" {
		prof.Build = prof.Build.WithTarget(target)
	}

	prof, err = config.Expand(prof, config.NewEnv(prof.Name))
	if err != nil {
		return gen.Plan{}, err
	}

	if prof.Build.HasTarget() && !config.AcceptsTarget(prof.Build.Compiler.Exec) {
		msg.Warn("%s may not understand -target %s", prof.Build.Compiler.Exec, *prof.Build.Target)
	}

	return gen.NewPlan(prof, b.basedir), nil
}

func generators(gens []gen.Generator) []gen.Generator {
	if len(gens) == 0 {
		return gen.All()
	}
	return gens
}

// Generate writes the artifacts of gens (all of them by default) into the
// project root, overwriting previous versions.
func (b *Builder) Generate(profile, target string, gens ...gen.Generator) error {
	plan, err := b.Plan(profile, target)
	if err != nil {
		return err
	}

	for _, g := range generators(gens) {
		out, err := g.Generate(plan)
		if err != nil {
			return fmt.Errorf("failed to generate %s: %w", g.Filename(), err)
		}
		if err := os.WriteFile(filepath.Join(b.basedir, g.Filename()), out, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Drift is an artifact whose on-disk content differs from what would be
// generated now
type Drift struct {
	Filename string
	Diff     string
}

// Check regenerates the artifacts in memory and compares them against the
// files on disk. A missing file counts as drift.
func (b *Builder) Check(profile, target string, gens ...gen.Generator) ([]Drift, error) {
	plan, err := b.Plan(profile, target)
	if err != nil {
		return nil, err
	}

	var drift []Drift
	for _, g := range generators(gens) {
		want, err := g.Generate(plan)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", g.Filename(), err)
		}
		have, err := os.ReadFile(filepath.Join(b.basedir, g.Filename()))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if d := gen.Diff(g.Filename(), string(have), string(want)); d != "" {
			drift = append(drift, Drift{Filename: g.Filename(), Diff: d})
		}
	}
	return drift, nil
}

// SaveConfig writes the builder's config verbatim into the project root.
func (b *Builder) SaveConfig() error {
	return config.SaveFile(b.cfg, filepath.Join(b.basedir, config.ConfigFilename))
}

// Sources lists the C sources under src/, relative to the project root
func (b *Builder) Sources() ([]string, error) {
	return doublestar.Glob(os.DirFS(b.basedir), sourcePattern, doublestar.WithFilesOnly())
}

// Build regenerates the artifacts and runs the Makefile's build target once.
// The captured standard output is returned as is, also on failure.
func (b *Builder) Build(profile, target string) ([]byte, error) {
	if err := b.Generate(profile, target); err != nil {
		return nil, err
	}
	return runMake(b.MakeProgram, b.basedir, gen.BuildTarget)
}
