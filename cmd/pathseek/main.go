package main

import (
	"fmt"
	"os"

	"github.com/harrison/pathseek/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()
	rootCmd.SetArgs(cmd.NormalizeArgs(rootCmd, os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
