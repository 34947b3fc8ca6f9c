package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func fullConfig() *Config {
	return &Config{
		DefaultProfile: "debug",
		Profile: map[string]Profile{
			"debug": {
				Name: "debug",
				Build: BuildConfig{
					Compiler:     BuildCompiler{Exec: "clang", Args: "-Iinclude -g -o target/main"},
					MainFilename: "main",
				},
				Structure: StructureSpec{
					Directories: []string{"src/", "target/", "include/"},
					Files:       []string{"src/main.c"},
				},
				Commands: &BuildCommands{
					PreBuild:  Ptr("echo pre"),
					PostBuild: Ptr("echo post"),
				},
			},
			"cross": {
				Name: "cross",
				Build: BuildConfig{
					Compiler:     BuildCompiler{Exec: "clang", Args: "-c -O2"},
					Linker:       &BuildLinker{Exec: "ld.lld", Args: "-static"},
					MainFilename: "main",
					Target:       Ptr("aarch64-linux-gnu"),
				},
				Structure: StructureSpec{
					Directories: []string{"src/"},
					Files:       []string{"src/main.c", "include/main.h"},
				},
				Commands: &BuildCommands{Clean: Ptr("rm -rf target")},
			},
		},
	}
}

// bareConfig has no structure lists and no hooks
func bareConfig() *Config {
	return &Config{
		DefaultProfile: "min",
		Profile: map[string]Profile{
			"min": {
				Name: "min",
				Build: BuildConfig{
					Compiler:     BuildCompiler{Exec: "cc"},
					MainFilename: "main",
				},
			},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	for name, cfg := range map[string]*Config{
		"full":    fullConfig(),
		"default": Default(),
		"bare":    bareConfig(),
	} {
		t.Run(name, func(t *testing.T) {
			data, err := Save(cfg)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Load(strings.NewReader(string(data)))
			if err != nil {
				t.Fatalf("load after save: %v\n%s", err, data)
			}
			if !reflect.DeepEqual(got, cfg) {
				t.Errorf("round trip mismatch:\n got  %+v\n want %+v\n%s", got, cfg, data)
			}
		})
	}
}

func TestSaveDeterministic(t *testing.T) {
	a, err := Save(fullConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Save(fullConfig())
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Errorf("Save is not deterministic:\n%s\n---\n%s", a, b)
	}
}

func TestLoadProfiles(t *testing.T) {
	src := `default_profile = "release"

[profile.release.build]
main_filename = "app"
target = "x86_64-linux"

[profile.release.build.compiler]
exec = "clang"
args = "-O2"

[profile.release.structure]
directories = ["src/"]
files = ["src/app.c"]
`
	cfg, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	prof, ok := cfg.Profile["release"]
	if !ok {
		t.Fatal("profile release not loaded")
	}
	if prof.Name != "release" {
		t.Errorf("Name: got %q, want %q", prof.Name, "release")
	}
	if !prof.Build.HasTarget() || *prof.Build.Target != "x86_64-linux" {
		t.Errorf("Target: got %v", prof.Build.Target)
	}
	if prof.Build.Linker != nil {
		t.Errorf("Linker: got %+v, want nil", prof.Build.Linker)
	}
	if prof.Commands != nil {
		t.Errorf("Commands: got %+v, want nil", prof.Commands)
	}
}

func TestLoadEmptyStructureLists(t *testing.T) {
	src := `[profile.debug.build]
main_filename = "main"
[profile.debug.build.compiler]
exec = "clang"
args = ""
[profile.debug.structure]
directories = []
files = []
`
	cfg, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	st := cfg.Profile["debug"].Structure
	if st.Directories != nil || st.Files != nil {
		t.Errorf("empty lists not normalized to nil: %#v", st)
	}
}

func TestLoadLegacyMigrates(t *testing.T) {
	src := `[build]
main_filename = "main"

[build.compiler]
exec = "clang"
args = "-Iinclude -o target/main"

[structure]
directories = ["src/", "target/", "include/"]
files = ["src/main.c"]

[commands]
pre_build = "echo pre"
`
	cfg, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultProfile != LegacyProfileName {
		t.Errorf("DefaultProfile: got %q, want %q", cfg.DefaultProfile, LegacyProfileName)
	}
	prof, err := cfg.Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if prof.Build.Compiler.Args != "-Iinclude -o target/main" {
		t.Errorf("Compiler.Args: got %q", prof.Build.Compiler.Args)
	}
	if prof.Commands == nil || prof.Commands.PreBuild == nil || *prof.Commands.PreBuild != "echo pre" {
		t.Errorf("Commands: got %+v", prof.Commands)
	}
	if len(prof.Structure.Files) != 1 || prof.Structure.Files[0] != "src/main.c" {
		t.Errorf("Structure.Files: got %v", prof.Structure.Files)
	}

	// saving writes the canonical form only
	data, err := Save(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "\n[build]") || !strings.Contains(string(data), "[profile.default.build]") {
		t.Errorf("migrated config not saved in profile form:\n%s", data)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", "default_profile = \n"},
		{"empty", ""},
		{"unknown key", `[profile.debug.build]
main_filename = "main"
optimize = true
[profile.debug.build.compiler]
exec = "clang"
args = ""
`},
		{"type mismatch", `[profile.debug.build]
main_filename = "main"
[profile.debug.build.compiler]
exec = "clang"
args = 3
`},
		{"missing exec", `[profile.debug.build]
main_filename = "main"
[profile.debug.build.compiler]
args = "-O2"
`},
		{"missing main_filename", `[profile.debug.build.compiler]
exec = "clang"
args = "-O2"
`},
		{"linker without exec", `[profile.debug.build]
main_filename = "main"
[profile.debug.build.compiler]
exec = "clang"
args = ""
[profile.debug.build.linker]
args = "-static"
`},
		{"mixed forms", `default_profile = "debug"
[build]
main_filename = "main"
[build.compiler]
exec = "clang"
args = ""
`},
		{"legacy without build", `[structure]
directories = ["src/"]
files = []
`},
		{"duplicate profile", `[profile.debug.build]
main_filename = "main"
[profile.debug.build.compiler]
exec = "clang"
args = ""
[profile.debug.build]
main_filename = "other"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(strings.NewReader(tt.src))
			if err == nil {
				t.Fatalf("expected error, got config %+v", cfg)
			}
			var ierr *InvalidConfigError
			if !errors.As(err, &ierr) {
				t.Fatalf("expected *InvalidConfigError, got %T: %v", err, err)
			}
		})
	}
}

func TestLoadFileSetsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFilename)
	if err := os.WriteFile(path, []byte("[profile.debug.build]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	var ierr *InvalidConfigError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *InvalidConfigError, got %v", err)
	}
	if ierr.Source != path {
		t.Errorf("Source: got %q, want %q", ierr.Source, path)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestSaveFileLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFilename)
	want := fullConfig()
	if err := SaveFile(want, path); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xylo", ConfigFilename)

	cfg, created, err := LoadOrCreate(path)
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Error("first call: created = false, want true")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not persisted: %v", err)
	}

	again, created, err := LoadOrCreate(path)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("second call: created = true, want false")
	}
	if !reflect.DeepEqual(again, cfg) {
		t.Errorf("reloaded config differs:\n got  %+v\n want %+v", again, cfg)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.DefaultProfile != "debug" {
		t.Errorf("DefaultProfile: got %q, want debug", cfg.DefaultProfile)
	}
	if got := cfg.Profiles(); !reflect.DeepEqual(got, []string{"debug", "release"}) {
		t.Errorf("Profiles: got %v", got)
	}
	for _, name := range cfg.Profiles() {
		prof := cfg.Profile[name]
		if prof.Name != name {
			t.Errorf("%s: Name = %q", name, prof.Name)
		}
		if prof.Build.Compiler.Exec == "" {
			t.Errorf("%s: empty compiler", name)
		}
		if prof.Build.MainFilename != "main" {
			t.Errorf("%s: MainFilename = %q", name, prof.Build.MainFilename)
		}
	}
}

func TestDetectCompilerPrefersCC(t *testing.T) {
	t.Setenv("CC", "my-cc")
	if got := detectCompiler(); got != "my-cc" {
		t.Errorf("detectCompiler: got %q, want my-cc", got)
	}
}
