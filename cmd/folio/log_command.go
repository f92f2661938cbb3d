package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newLogCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent project operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			journal := ctx.ensureJournal()
			if journal == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No operations recorded")
				return nil
			}
			events, err := journal.Tail(lines)
			if err != nil {
				return fmt.Errorf("read journal: %w", err)
			}
			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No operations recorded")
				return nil
			}

			if jsonOut {
				return writeJSON(cmd, events)
			}

			rows := make([][]string, 0, len(events))
			for _, evt := range events {
				rows = append(rows, []string{
					evt.Timestamp.Local().Format("2006-01-02 15:04:05"),
					evt.Operation,
					evt.Project,
					evt.Message,
					strconv.Itoa(len(evt.Warnings)),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]tableColumn{
					{header: "Time"},
					{header: "Operation"},
					{header: "Project", maxWidth: 28},
					{header: "Message", maxWidth: 48},
					{header: "Warnings", align: alignRight},
				},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 20, "Number of recent operations to show")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit events as JSON")
	return cmd
}
