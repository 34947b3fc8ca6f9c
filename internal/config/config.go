// Package config holds the xylo build model and its TOML representation.
package config

import (
	"slices"
)

// ConfigFilename is the name of the config file, both in the user's config
// directory and in a scaffolded project.
const ConfigFilename = "xylo.toml"

// Config is the canonical, profile-based configuration document
type Config struct {
	DefaultProfile string             `toml:"default_profile"`
	Profile        map[string]Profile `toml:"profile"`
}

// Profiles returns the sorted profile names
func (c Config) Profiles() []string {
	profiles := make([]string, 0, len(c.Profile))
	for k := range c.Profile {
		profiles = append(profiles, k)
	}
	slices.Sort(profiles)
	return profiles
}

// Profile defines a [profile.*] section. Name mirrors the table key and is not
// serialized.
type Profile struct {
	Name      string         `toml:"-"`
	Build     BuildConfig    `toml:"build"`
	Structure StructureSpec  `toml:"structure"`
	Commands  *BuildCommands `toml:"commands,omitempty"`
}

// BuildConfig defines the [profile.*.build] section
type BuildConfig struct {
	Compiler     BuildCompiler `toml:"compiler"`
	Linker       *BuildLinker  `toml:"linker,omitempty"`
	MainFilename string        `toml:"main_filename"`
	Target       *string       `toml:"target,omitempty"`
}

// HasTarget reports whether a target triple is configured.
func (b BuildConfig) HasTarget() bool {
	return b.Target != nil && *b.Target != ""
}

// WithTarget returns a copy of b with its target triple replaced. An empty
// triple clears it.
func (b BuildConfig) WithTarget(triple string) BuildConfig {
	if triple == "" {
		b.Target = nil
	} else {
		b.Target = &triple
	}
	return b
}

type BuildCompiler struct {
	Exec string `toml:"exec"`
	Args string `toml:"args"`
}

type BuildLinker struct {
	Exec string `toml:"exec"`
	Args string `toml:"args"`
}

// BuildCommands are shell hooks run around the compile step. Nil means no hook.
type BuildCommands struct {
	PreBuild  *string `toml:"pre_build,omitempty"`
	PostBuild *string `toml:"post_build,omitempty"`
	Clean     *string `toml:"clean,omitempty"`
}

// StructureSpec declares the scaffold layout. Paths are relative to the
// project root and kept in declaration order.
type StructureSpec struct {
	Directories []string `toml:"directories"`
	Files       []string `toml:"files"`
}

// normalize maps empty lists to nil, so an absent list and `[]` load the same
func (s StructureSpec) normalize() StructureSpec {
	if len(s.Directories) == 0 {
		s.Directories = nil
	}
	if len(s.Files) == 0 {
		s.Files = nil
	}
	return s
}

// Ptr is a shorthand for optional string fields.
func Ptr(s string) *string { return &s }
