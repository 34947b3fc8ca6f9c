package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LegacyProfileName is the profile a migrated single-[build] document ends
// up under.
const LegacyProfileName = "default"

var (
	errNoProfiles    = errors.New("no [profile.*] tables and no legacy [build] section")
	errMixedForms    = errors.New("legacy [build]/[structure]/[commands] sections cannot be mixed with default_profile or [profile.*] tables")
	errMissingField  = errors.New("missing required field")
	errEmptyProfName = errors.New("profile name must not be empty")
)

// document is the on-disk shape. It accepts both the canonical profile form
// and the legacy single-build form.
type document struct {
	DefaultProfile string             `toml:"default_profile"`
	Profile        map[string]Profile `toml:"profile"`

	Build     *BuildConfig   `toml:"build"`
	Structure *StructureSpec `toml:"structure"`
	Commands  *BuildCommands `toml:"commands"`
}

func (d document) isLegacy() bool {
	return d.Build != nil || d.Structure != nil || d.Commands != nil
}

// Load decodes a config. Unknown keys, type mismatches and missing required
// fields all fail the whole load with *InvalidConfigError. The legacy
// single-build form is migrated to a single "default" profile.
func Load(rdr io.Reader) (*Config, error) {
	var doc document
	dec := toml.NewDecoder(rdr).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var derr *toml.DecodeError
		var serr *toml.StrictMissingError
		switch {
		case errors.As(err, &derr):
			err = errors.New(derr.String())
		case errors.As(err, &serr):
			err = errors.New(serr.String())
		}
		return nil, &InvalidConfigError{Err: err}
	}

	cfg, err := fromDocument(doc)
	if err != nil {
		return nil, &InvalidConfigError{Err: err}
	}
	return cfg, nil
}

func fromDocument(doc document) (*Config, error) {
	if doc.isLegacy() {
		if doc.DefaultProfile != "" || len(doc.Profile) > 0 {
			return nil, errMixedForms
		}
		return migrateLegacy(doc)
	}

	if len(doc.Profile) == 0 {
		return nil, errNoProfiles
	}

	cfg := &Config{
		DefaultProfile: doc.DefaultProfile,
		Profile:        make(map[string]Profile, len(doc.Profile)),
	}
	for name, prof := range doc.Profile {
		if name == "" {
			return nil, errEmptyProfName
		}
		prof.Name = name
		prof.Structure = prof.Structure.normalize()
		cfg.Profile[name] = prof
	}

	for _, name := range cfg.Profiles() {
		if err := validateBuild(cfg.Profile[name].Build, "profile."+name+".build"); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// migrateLegacy turns the pre-profile document into the canonical form
func migrateLegacy(doc document) (*Config, error) {
	if doc.Build == nil {
		return nil, fmt.Errorf("build: %w", errMissingField)
	}
	if err := validateBuild(*doc.Build, "build"); err != nil {
		return nil, err
	}

	prof := Profile{
		Name:     LegacyProfileName,
		Build:    *doc.Build,
		Commands: doc.Commands,
	}
	if doc.Structure != nil {
		prof.Structure = doc.Structure.normalize()
	}

	return &Config{
		DefaultProfile: LegacyProfileName,
		Profile:        map[string]Profile{LegacyProfileName: prof},
	}, nil
}

func validateBuild(b BuildConfig, section string) error {
	if b.Compiler.Exec == "" {
		return fmt.Errorf("%s.compiler.exec: %w", section, errMissingField)
	}
	if b.MainFilename == "" {
		return fmt.Errorf("%s.main_filename: %w", section, errMissingField)
	}
	if b.Linker != nil && b.Linker.Exec == "" {
		return fmt.Errorf("%s.linker.exec: %w", section, errMissingField)
	}
	return nil
}

// LoadFile parses a config file from a filepath
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Load(bufio.NewReader(f))
	if err != nil {
		var ierr *InvalidConfigError
		if errors.As(err, &ierr) {
			ierr.Source = path
		}
		return nil, err
	}
	return cfg, nil
}

// Save serializes c in the canonical profile form.
func Save(c *Config) ([]byte, error) {
	b, err := toml.Marshal(c)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	return b, nil
}

// SaveFile serializes c and writes it to path, replacing any existing file.
func SaveFile(c *Config, path string) error {
	data, err := Save(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
