package gen

import (
	"strings"

	"github.com/xylo-build/xylo/internal/config"
)

// NinjaGen emits build.ninja with the same two steps as the Makefile. It is
// opt-in and not part of All.
type NinjaGen struct{}

func (NinjaGen) Filename() string { return "build.ninja" }

func (NinjaGen) Generate(p Plan) ([]byte, error) {
	return []byte(Ninja(p.Build, p.Invocation, p.Commands)), nil
}

var ninjaPathEscaper = strings.NewReplacer("$", "$$", ":", "$:", " ", "$ ")

func quote(s string) string { return ninjaPathEscaper.Replace(s) }

// ninjaCommand escapes a shell command for a rule's command variable
func ninjaCommand(s string) string { return strings.ReplaceAll(s, "$", "$$") }

// Ninja renders the build file: an object edge running the link (or compile)
// command and a build edge running pre-hook, compile command and post-hook
// chained with &&.
func Ninja(b config.BuildConfig, inv Invocation, cmds *config.BuildCommands) string {
	var sb strings.Builder

	obj := quote(ObjectPath(b))
	objCmd := inv.Compile
	if inv.HasLink() {
		objCmd = inv.Link
	}

	steps := make([]string, 0, 3)
	if cmds != nil && cmds.PreBuild != nil {
		steps = append(steps, *cmds.PreBuild)
	}
	steps = append(steps, inv.Compile)
	if cmds != nil && cmds.PostBuild != nil {
		steps = append(steps, *cmds.PostBuild)
	}

	writeln(&sb, "ninja_required_version = 1.1")
	writeln(&sb)

	writeln(&sb, "rule object")
	writeln(&sb, "  command = ", ninjaCommand(objCmd))
	writeln(&sb, "  description = OBJ $out")
	writeln(&sb, "rule ", BuildTarget)
	writeln(&sb, "  command = ", ninjaCommand(strings.Join(steps, " && ")))
	writeln(&sb, "  description = BUILD")
	writeln(&sb)

	writeln(&sb, "build ", obj, ": object ", quote(SourcePath(b)))
	writeln(&sb, "build ", BuildTarget, ": ", BuildTarget, " ", obj)
	writeln(&sb)
	writeln(&sb, "default ", BuildTarget)

	return sb.String()
}
