package main

import "github.com/veriscan-io/veriscan-cli/cmd"

// execCmd indirection exists so tests can intercept Execute.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
