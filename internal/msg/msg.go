package msg

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Output is where messages go. Tests swap it out.
var Output io.Writer = os.Stdout

func printMsg(prefix, format string, a ...any) {
	fmt.Fprint(Output, prefix, ": ")
	fmt.Fprintf(Output, format, a...)
	fmt.Fprint(Output, "\n")
}

func Error(format string, a ...any) {
	printMsg(color.HiRedString("error"), format, a...)
}

func Warn(format string, a ...any) {
	printMsg(color.YellowString("warn"), format, a...)
}

func Fatal(format string, a ...any) {
	printMsg(color.RedString("fatal"), format, a...)
	os.Exit(1)
}

func Info(format string, a ...any) {
	printMsg(color.HiGreenString("info"), format, a...)
}

// Created reports a file or directory written by xylo
func Created(kind, path string) {
	fmt.Fprintf(Output, "%s %s: %s\n", color.HiGreenString("Created"), kind, path)
}

// IndentWriter prefixes every line written through it with Indent
type IndentWriter struct {
	Indent    string
	W         io.Writer
	didIndent bool
}

func (w *IndentWriter) Write(p []byte) (n int, err error) {
	start := 0
	for i, c := range p {
		if !w.didIndent {
			if _, err := io.WriteString(w.W, w.Indent); err != nil {
				return start, err
			}
			w.didIndent = true
		}
		if c == '\n' || c == '\r' {
			if _, err := w.W.Write(p[start : i+1]); err != nil {
				return start, err
			}
			start = i + 1
			w.didIndent = false
		}
	}
	if start < len(p) {
		if _, err := w.W.Write(p[start:]); err != nil {
			return start, err
		}
	}
	return len(p), nil
}
