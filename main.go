// Package main is the entry point for fcf.
package main

import (
	"io"
	"os"
	"runtime/debug"

	"github.com/devantler-tech/fcf/internal/buildmeta"
	"github.com/devantler-tech/fcf/pkg/cli/cmd"
	"github.com/devantler-tech/fcf/pkg/notify"
)

func main() {
	os.Exit(runSafely(os.Args[1:], runWithArgs, os.Stderr))
}

// runSafely turns a panic in runner into an error message and exit status 1.
//
//nolint:nonamedreturns // Named return simplifies panic recovery logic.
func runSafely(args []string, runner func([]string) int, errWriter io.Writer) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			notify.Errorf(errWriter, "unexpected failure: %v\n%s", r, debug.Stack())

			exitCode = 1
		}
	}()

	return runner(args)
}

func runWithArgs(args []string) int {
	return run(args, os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := cmd.NewRootCmd(buildmeta.Version, buildmeta.Commit, buildmeta.Date)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := cmd.Execute(rootCmd)
	if err != nil {
		notify.Errorf(stderr, "%v", err)

		return 1
	}

	return 0
}
