package config

import (
	"os"
	"os/exec"
	"path/filepath"
)

const fallbackCompiler = "clang"

// TODO: zig cc
var commonCCompilers = []string{"clang", "gcc", "icx", "icc", "tcc"}

// detectCompiler picks the compiler written into a freshly generated config:
// $CC if set, otherwise the first common C compiler found on PATH.
func detectCompiler() string {
	if cc := os.Getenv("CC"); cc != "" {
		return cc
	}

	for _, compiler := range commonCCompilers {
		// the bare name is stored, an absolute path would tie the config to this machine
		if _, err := exec.LookPath(compiler); err == nil {
			return compiler
		}
	}

	return fallbackCompiler
}

// AcceptsTarget reports whether the compiler understands clang's -target flag.
func AcceptsTarget(compiler string) bool {
	switch filepath.Base(compiler) {
	case "clang", "clang++", "icx", "icpx":
		return true
	}
	return false
}
