package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xylo-build/xylo/internal/gen"
)

// artifactChoice is one name accepted by --only
type artifactChoice struct {
	name string
	help string
	gens []gen.Generator
}

// artifactFlag is a pflag.Value holding a comma separated list of artifact
// names. Help and completions list the choices in declaration order, the
// first choice is the default.
type artifactFlag struct {
	choices  []artifactChoice
	selected []int
}

func newArtifactFlag(choices ...artifactChoice) *artifactFlag {
	if len(choices) == 0 {
		panic("artifact flag without choices")
	}
	return &artifactFlag{choices: choices, selected: []int{0}}
}

func (f *artifactFlag) index(name string) int {
	return slices.IndexFunc(f.choices, func(c artifactChoice) bool { return c.name == name })
}

func (f *artifactFlag) names() []string {
	names := make([]string, len(f.choices))
	for i, c := range f.choices {
		names[i] = c.name
	}
	return names
}

func (f *artifactFlag) String() string {
	sel := make([]string, len(f.selected))
	for i, idx := range f.selected {
		sel[i] = f.choices[idx].name
	}
	return strings.Join(sel, ",")
}

func (f *artifactFlag) Type() string { return "artifacts" }

// Set replaces the selection. An unknown name fails and keeps the old one.
func (f *artifactFlag) Set(v string) error {
	var sel []int
	for _, name := range strings.Split(v, ",") {
		idx := f.index(strings.TrimSpace(name))
		if idx < 0 {
			return fmt.Errorf("unknown artifact %q, expected %s", name, strings.Join(f.names(), ", "))
		}
		if !slices.Contains(sel, idx) {
			sel = append(sel, idx)
		}
	}
	f.selected = sel
	return nil
}

// Generators returns the selected generators in the order they were named,
// dropping repeats of the same artifact file.
func (f *artifactFlag) Generators() []gen.Generator {
	var gens []gen.Generator
	seen := map[string]bool{}
	for _, idx := range f.selected {
		for _, g := range f.choices[idx].gens {
			if !seen[g.Filename()] {
				seen[g.Filename()] = true
				gens = append(gens, g)
			}
		}
	}
	return gens
}

func (f *artifactFlag) Usage() string {
	var sb strings.Builder
	sb.WriteString("Comma separated artifacts to generate:")
	for _, c := range f.choices {
		fmt.Fprintf(&sb, "\n  %-9s %s", c.name, c.help)
	}
	return sb.String()
}

// Complete offers the choices for the last element of a comma separated list
func (f *artifactFlag) Complete(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	head, last := "", toComplete
	if i := strings.LastIndexByte(toComplete, ','); i >= 0 {
		head, last = toComplete[:i+1], toComplete[i+1:]
	}

	var items []string
	for _, c := range f.choices {
		if !strings.HasPrefix(c.name, last) {
			continue
		}
		if c.help != "" {
			items = append(items, head+c.name+"\t"+c.help)
		} else {
			items = append(items, head+c.name)
		}
	}
	return items, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
