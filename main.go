package main

import (
	"fmt"
	"os"

	"github.com/zxq82lm/repo-readme-scanner/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the readme-scanner command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
