package gen

import (
	"github.com/xylo-build/xylo/internal/config"
)

// Invocation holds the synthesized command lines. Link is empty when the
// build has no separate link step.
type Invocation struct {
	Compile string
	Link    string
}

// HasLink reports whether a separate link command was synthesized.
func (inv Invocation) HasLink() bool { return inv.Link != "" }

// Synthesize builds the compile (and, with a linker, link) command lines.
// Argument strings are opaque and concatenated verbatim, nothing is escaped.
// Each step uses its own executable.
func Synthesize(b config.BuildConfig) Invocation {
	inv := Invocation{
		Compile: command(b.Compiler.Exec, b.MainFilename, withTarget(b, b.Compiler.Args)),
	}
	if b.Linker != nil {
		inv.Link = command(b.Linker.Exec, b.MainFilename, withTarget(b, b.Linker.Args))
	}
	return inv
}

func withTarget(b config.BuildConfig, args string) string {
	if !b.HasTarget() {
		return args
	}
	return "-target " + *b.Target + " " + args
}

func command(exec, mainFilename, args string) string {
	return exec + " " + mainFilename + " " + args
}
