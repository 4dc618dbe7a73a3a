package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/springscaffold/internal/cli"
	"github.com/example/springscaffold/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "spring-scaffold",
		Short:   "Spring Boot code generator",
		Version: version.String(),
		Long: `spring-scaffold generates Spring Boot boilerplate into an existing project:
models, controllers, services, repositories, a JWT security bundle, or a new
project skeleton. Packages are resolved against the base package detected from
the project's source tree; existing files are never overwritten.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: cli.Bootstrap,
	}
	cli.AddGlobalFlags(rootCmd)

	// Generators
	rootCmd.AddCommand(cli.ModelCmd())
	rootCmd.AddCommand(cli.ControllerCmd())
	rootCmd.AddCommand(cli.ServiceCmd())
	rootCmd.AddCommand(cli.RepositoryCmd())
	rootCmd.AddCommand(cli.SecurityCmd())
	rootCmd.AddCommand(cli.ProjectCmd())

	// Journal and info
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.VersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed).Sprint("✗ Error:"), err)
		os.Exit(1)
	}
}
