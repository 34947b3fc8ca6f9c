package gen

import "strings"

func write(sb *strings.Builder, s ...string) {
	for _, str := range s {
		sb.WriteString(str)
	}
}

func writeln(sb *strings.Builder, s ...string) {
	write(sb, s...)
	sb.WriteByte('\n')
}

// recipe writes a tab-indented recipe line
func recipe(sb *strings.Builder, cmd string) {
	writeln(sb, "\t", cmd)
}
