package gen

import (
	"strings"

	"github.com/xylo-build/xylo/internal/config"
)

// BuildTarget is the Makefile rule the build step invokes
const BuildTarget = "build"

// ObjectPath and SourcePath are the single translation unit the scaffolded
// layout describes.
func ObjectPath(b config.BuildConfig) string { return "target/" + b.MainFilename + ".o" }
func SourcePath(b config.BuildConfig) string { return "src/" + b.MainFilename + ".c" }

// Makefile renders the build file: an object rule whose recipe is the link
// command (or the compile command without a linker), then the build rule with
// pre-hook, compile command and post-hook in that order. A clean hook adds a
// trailing clean rule.
func Makefile(b config.BuildConfig, inv Invocation, cmds *config.BuildCommands) string {
	var sb strings.Builder

	obj := ObjectPath(b)

	writeln(&sb, obj, ": ", SourcePath(b))
	if inv.HasLink() {
		recipe(&sb, inv.Link)
	} else {
		recipe(&sb, inv.Compile)
	}

	writeln(&sb, BuildTarget, ": ", obj)
	if cmds != nil && cmds.PreBuild != nil {
		recipe(&sb, *cmds.PreBuild)
	}
	recipe(&sb, inv.Compile)
	if cmds != nil && cmds.PostBuild != nil {
		recipe(&sb, *cmds.PostBuild)
	}

	if cmds != nil && cmds.Clean != nil {
		writeln(&sb, "clean:")
		recipe(&sb, *cmds.Clean)
	}

	return sb.String()
}
