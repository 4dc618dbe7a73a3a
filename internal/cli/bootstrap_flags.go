package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/springscaffold/internal/config"
	"github.com/example/springscaffold/internal/wire"
)

// AddGlobalFlags registers the flags shared by every subcommand.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringP("output", "o", ".", "Project directory to generate into")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolP("quiet", "q", false, "Only log warnings and errors")
	root.PersistentFlags().Bool("journal", false, "Record generated artifacts in <output>/.spring-scaffold/journal.db")
}

// Bootstrap loads the configuration and configures the service graph for cmd. It is
// installed as the root PersistentPreRunE.
func Bootstrap(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	output, err := outputDir(cmd)
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	journal, _ := cmd.Flags().GetBool("journal")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	wire.Configure(wire.Settings{
		Config:    cfg,
		OutputDir: output,
		DryRun:    dryRun,
		Journal:   journal || cfg.Journal,
		Verbose:   verbose,
		Quiet:     quiet,
		LogOutput: cmd.ErrOrStderr(),
	})
	if cfg.Path != "" {
		wire.Logger().Debug("loaded config", "path", cfg.Path)
	}
	return nil
}

// outputDir returns the absolute --output directory.
func outputDir(cmd *cobra.Command) (string, error) {
	output, _ := cmd.Flags().GetString("output")
	if strings.TrimSpace(output) == "" {
		output = "."
	}
	abs, err := filepath.Abs(output)
	if err != nil {
		return "", fmt.Errorf("invalid output directory %q: %w", output, err)
	}
	return abs, nil
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
