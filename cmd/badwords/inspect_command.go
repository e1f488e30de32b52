package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"badwords/internal/badwords"
	"badwords/internal/logging"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE...",
		Short: "Summarize bad-words files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries := make([]fileSummary, 0, len(args))
			for _, path := range args {
				f, err := badwords.ReadFile(path)
				if err != nil {
					return err
				}
				summaries = append(summaries, fileSummary{label: path, file: f, size: fileSize(path)})
			}

			fmt.Fprint(cmd.OutOrStdout(), renderInspectTable(summaries))
			ctx.log().Debug("inspected bad-words files", logging.Int("count", len(summaries)))
			return nil
		},
	}
}

func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "-"
	}
	return humanize.Bytes(uint64(info.Size()))
}
