package gen

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"

	"github.com/xylo-build/xylo/internal/config"
)

const CompDBFilename = "compile_commands.json"

var errRelativeDir = errors.New("compilation database directory must be an absolute path")

// CompDBEntry is one translation unit of a clang JSON compilation database.
// The key names are fixed by the format.
type CompDBEntry struct {
	Directory string `json:"directory"`
	Command   string `json:"command"`
	File      string `json:"file"`
}

// CompilationDatabase renders compile_commands.json for the project at dir.
// The model has a single translation unit, so exactly one entry is produced.
func CompilationDatabase(b config.BuildConfig, inv Invocation, dir string) ([]byte, error) {
	if !filepath.IsAbs(dir) {
		return nil, errRelativeDir
	}

	db := []CompDBEntry{{
		Directory: dir,
		Command:   inv.Compile,
		File:      SourcePath(b),
	}}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(db); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), " \t\r\n"), nil
}
