package main

import (
	"fmt"
	"os"
	"runtime"
)

var (
	version   = "dev"
	gitCommit string
	buildTime string
)

const appName = "veil"

func formatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

func printVersion() {
	fmt.Printf("%s %s\n", appName, formatVersion())
	if buildTime != "" {
		fmt.Printf("  built:  %s\n", buildTime)
	}
	fmt.Printf("  go:     %s\n", runtime.Version())
}

func main() {
	if err := executeCLI(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
