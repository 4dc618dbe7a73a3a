package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/springscaffold/internal/app"
	"github.com/example/springscaffold/internal/wire"
)

// HistoryCmd returns the history command.
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently generated artifacts",
		Long: `List the latest entries of the generation journal kept in
<output>/.spring-scaffold/journal.db. Runs are recorded with --journal or
journal: true in .spring-scaffold.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			defer wire.Close()
			_, err := wire.ScaffoldAdapterWithOutput(cmd.OutOrStdout()).History(cmd.Context(), limit)
			return err
		},
	}

	cmd.Flags().IntP("limit", "n", app.DefaultHistoryLimit, "Number of entries to show")

	return cmd
}
