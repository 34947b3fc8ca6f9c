package main

import "github.com/xylo-build/xylo/cmd"

func main() {
	cmd.Execute()
}
