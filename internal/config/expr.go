package config

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strings"

	"github.com/expr-lang/expr"
)

// Env is what {{ ... }} expressions in build strings can see.
type Env struct {
	TargetOS   string            `expr:"target_os"`
	TargetArch string            `expr:"target_arch"`
	Environ    map[string]string `expr:"environ"`
	Profile    string            `expr:"profile"`
}

// NewEnv captures the host platform and process environment for profile.
func NewEnv(profile string) Env {
	environ := make(map[string]string)
	for _, e := range os.Environ() {
		if i := strings.Index(e, "="); i >= 0 {
			environ[e[:i]] = e[i+1:]
		}
	}

	return Env{
		TargetOS:   runtime.GOOS,
		TargetArch: runtime.GOARCH,
		Environ:    environ,
		Profile:    profile,
	}
}

var exprRegex = regexp.MustCompile(`\{\{(.+?)\}\}`)

// evaluateString finds and evaluates all {{...}} expressions in a string
func evaluateString(s string, env Env) (string, error) {
	matches := exprRegex.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	var sb strings.Builder
	lastIndex := 0

	for _, m := range matches {
		sb.WriteString(s[lastIndex:m[0]])

		expression := strings.TrimSpace(s[m[2]:m[3]])
		program, err := expr.Compile(expression, expr.Env(env))
		if err != nil {
			return "", fmt.Errorf("failed to compile expression %q: %w", expression, err)
		}

		result, err := expr.Run(program, env)
		if err != nil {
			return "", fmt.Errorf("failed to run expression %q: %w", expression, err)
		}

		fmt.Fprintf(&sb, "%v", result)
		lastIndex = m[1]
	}

	sb.WriteString(s[lastIndex:])
	return sb.String(), nil
}

// Expand returns a copy of prof with every build and hook string evaluated
// against env. The input is never modified, so a loaded config still saves
// back verbatim.
func Expand(prof Profile, env Env) (Profile, error) {
	out := prof
	var firstErr error
	eval := func(field string, s string) string {
		if firstErr != nil {
			return s
		}
		v, err := evaluateString(s, env)
		if err != nil {
			firstErr = fmt.Errorf("profile.%s.%s: %w", prof.Name, field, err)
			return s
		}
		return v
	}
	evalPtr := func(field string, s *string) *string {
		if s == nil {
			return nil
		}
		return Ptr(eval(field, *s))
	}

	b := &out.Build
	b.Compiler.Exec = eval("build.compiler.exec", b.Compiler.Exec)
	b.Compiler.Args = eval("build.compiler.args", b.Compiler.Args)
	b.MainFilename = eval("build.main_filename", b.MainFilename)
	b.Target = evalPtr("build.target", b.Target)
	if prof.Build.Linker != nil {
		b.Linker = &BuildLinker{
			Exec: eval("build.linker.exec", prof.Build.Linker.Exec),
			Args: eval("build.linker.args", prof.Build.Linker.Args),
		}
	}

	if prof.Commands != nil {
		out.Commands = &BuildCommands{
			PreBuild:  evalPtr("commands.pre_build", prof.Commands.PreBuild),
			PostBuild: evalPtr("commands.post_build", prof.Commands.PostBuild),
			Clean:     evalPtr("commands.clean", prof.Commands.Clean),
		}
	}

	if firstErr != nil {
		return Profile{}, &InvalidConfigError{Err: firstErr}
	}
	return out, nil
}
