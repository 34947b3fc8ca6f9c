package config

import (
	"errors"
	"runtime"
	"testing"
)

func TestEvaluateString(t *testing.T) {
	env := Env{
		TargetOS:   "linux",
		TargetArch: "amd64",
		Environ:    map[string]string{"OPT": "3"},
		Profile:    "release",
	}

	tests := []struct {
		in, want string
	}{
		{"-O2", "-O2"},
		{"-O{{ environ.OPT }}", "-O3"},
		{"-o target/{{profile}}/main", "-o target/release/main"},
		{`{{ target_os == "windows" ? "-lws2_32" : "-lpthread" }}`, "-lpthread"},
		{"{{ target_os }}-{{ target_arch }}", "linux-amd64"},
	}
	for _, tt := range tests {
		got, err := evaluateString(tt.in, env)
		if err != nil {
			t.Errorf("evaluateString(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("evaluateString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpandLeavesInputUntouched(t *testing.T) {
	prof := Profile{
		Name: "debug",
		Build: BuildConfig{
			Compiler:     BuildCompiler{Exec: "clang", Args: "-o target/{{ profile }}"},
			Linker:       &BuildLinker{Exec: "ld.lld", Args: "{{ profile }}"},
			MainFilename: "main",
			Target:       Ptr("{{ target_arch }}-linux"),
		},
		Commands: &BuildCommands{PreBuild: Ptr("echo {{ profile }}")},
	}

	got, err := Expand(prof, NewEnv("debug"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Build.Compiler.Args != "-o target/debug" {
		t.Errorf("Compiler.Args: got %q", got.Build.Compiler.Args)
	}
	if got.Build.Linker.Args != "debug" {
		t.Errorf("Linker.Args: got %q", got.Build.Linker.Args)
	}
	if want := runtime.GOARCH + "-linux"; *got.Build.Target != want {
		t.Errorf("Target: got %q, want %q", *got.Build.Target, want)
	}
	if *got.Commands.PreBuild != "echo debug" {
		t.Errorf("PreBuild: got %q", *got.Commands.PreBuild)
	}

	if prof.Build.Compiler.Args != "-o target/{{ profile }}" ||
		prof.Build.Linker.Args != "{{ profile }}" ||
		*prof.Build.Target != "{{ target_arch }}-linux" ||
		*prof.Commands.PreBuild != "echo {{ profile }}" {
		t.Errorf("Expand modified its input: %+v", prof)
	}
}

func TestExpandError(t *testing.T) {
	prof := Profile{
		Name: "debug",
		Build: BuildConfig{
			Compiler:     BuildCompiler{Exec: "clang", Args: "{{ no_such_var }}"},
			MainFilename: "main",
		},
	}
	_, err := Expand(prof, NewEnv("debug"))
	var ierr *InvalidConfigError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *InvalidConfigError, got %v", err)
	}
}
