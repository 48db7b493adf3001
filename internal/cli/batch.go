package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cognicore/nlplab/internal/batch"
)

func newBatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file.jsonl>",
		Short: "Run one request per JSON line and print one result per line",
		Long:  "Each input line is a request such as {\"op\":\"ner\",\"text\":\"...\"}.\nMalformed lines are skipped with a warning.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := batch.LoadFile(args[0], app.Logger)
			if err != nil {
				return err
			}
			stats, err := batch.Run(cmd.Context(), app.Engine, items, cmd.OutOrStdout())
			app.Logger.Info("batch finished",
				zap.String("file", args[0]),
				zap.Int("ok", stats.OK),
				zap.Int("failed", stats.Failed),
			)
			return err
		},
	}
}
