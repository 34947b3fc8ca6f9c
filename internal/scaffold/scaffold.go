// Package scaffold lays out a new project on disk: directories, stub files
// and an optional git repository. It never generates build artifacts.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xylo-build/xylo/internal/config"
	"github.com/xylo-build/xylo/internal/gen"
	"github.com/xylo-build/xylo/internal/msg"
)

var (
	errNotADirectory = errors.New("is not a directory")
	errAlreadyExists = errors.New("already exists (use --force to overwrite)")
)

const helloWorld = `#include <stdio.h>

int main(void) {
    puts("Hello, World!");
    return 0;
}
`

const gitignore = `target/
compile_commands.json
.clang-format
`

const clangFormat = `BasedOnStyle: LLVM
IndentWidth: 4
`

type Options struct {
	Path   string
	Force  bool   // remove an existing project directory first
	NoGit  bool   // skip .gitignore and git init
	Remote string // optional origin URL, shortcuts like gh:user/repo allowed
}

// Create scaffolds prof's structure at opts.Path. A failure midway leaves
// whatever was already created in place.
func Create(opts Options, prof config.Profile) error {
	path, err := filepath.Abs(opts.Path)
	if err != nil {
		return err
	}

	if err := prepareRoot(path, opts.Force); err != nil {
		return err
	}

	for _, dir := range prof.Structure.Directories {
		if err := mkdir(path, dir); err != nil {
			return err
		}
	}

	mainSource := filepath.Clean(gen.SourcePath(prof.Build))
	for _, file := range prof.Structure.Files {
		content := ""
		if filepath.Clean(file) == mainSource {
			content = helloWorld
		}
		if err := writefile(path, file, content); err != nil {
			return err
		}
	}

	if err := writefile(path, ".clang-format", clangFormat); err != nil {
		return err
	}

	if opts.NoGit {
		return nil
	}

	if err := writefile(path, ".gitignore", gitignore); err != nil {
		return err
	}
	return initRepo(path, opts.Remote)
}

// prepareRoot makes sure path is an empty directory we are allowed to fill
func prepareRoot(path string, force bool) error {
	stat, err := os.Stat(path)
	switch {
	case err == nil && !stat.IsDir():
		return fmt.Errorf("'%s' %w", path, errNotADirectory)
	case err == nil && force:
		if err := os.RemoveAll(path); err != nil {
			return err
		}
	case err == nil:
		return fmt.Errorf("'%s' %w", path, errAlreadyExists)
	case !os.IsNotExist(err):
		return err
	}
	return os.MkdirAll(path, 0o755)
}

func mkdir(root, dir string) error {
	if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	msg.Created("directory", filepath.ToSlash(dir))
	return nil
}

// writefile creates root/name with content unless it already exists
func writefile(root, name, content string) error {
	path := filepath.Join(root, name)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create file %s: %w", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("create file %s: %w", name, err)
	}
	msg.Created("file", filepath.ToSlash(name))
	return nil
}
