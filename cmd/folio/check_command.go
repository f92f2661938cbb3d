package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/store"
)

type checkReport struct {
	Path     string   `json:"path"`
	Clean    bool     `json:"clean"`
	Warnings []string `json:"warnings,omitempty"`
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "check <project>",
		Short: "Report the repairs a load would apply, without saving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveIndexPath(args[0])
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()
			if jsonOut {
				logger = ctx.quietLogger()
			}
			p, warnings, err := store.Load(path, store.Options{Logger: logger})
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}

			if jsonOut {
				return writeJSON(cmd, checkReport{Path: path, Clean: len(warnings) == 0, Warnings: warnings})
			}

			out := cmd.OutOrStdout()
			if len(warnings) == 0 {
				fmt.Fprintf(out, "Project %q is clean\n", p.Name)
				return nil
			}
			fmt.Fprintf(out, "Project %q: %d fields would be repaired:\n", p.Name, len(warnings))
			for _, warning := range warnings {
				fmt.Fprintf(out, "  - %s\n", warning)
			}
			fmt.Fprintln(out, "Run `folio repair` to persist the repaired document.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the warning list as JSON")
	return cmd
}
