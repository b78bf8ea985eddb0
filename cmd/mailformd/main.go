package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "mailformd",
	Short:   "mailformd - form submission processing daemon",
	Long:    "Serves declarative form schemas over HTTP, validating and sanitizing submissions and dispatching them as email.",
	Version: Version,
	RunE:    run,
}

func init() {
	rootCmd.Flags().String("schema", "", "path to the YAML form schema (overrides FORM_SCHEMA)")
	rootCmd.Flags().String("addr", "", "listen address (overrides SERVER_ADDR)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
