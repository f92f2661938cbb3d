package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/store"
)

func newRepairCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "repair <project>",
		Short: "Load with repair and write the repaired document back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path, err := resolveIndexPath(args[0])
			if err != nil {
				return err
			}
			target := path
			if trimmed := strings.TrimSpace(outPath); trimmed != "" {
				expanded, err := config.ExpandPath(trimmed)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				target = expanded
			}

			lock, err := store.LockProject(filepath.Dir(target))
			if err != nil {
				return err
			}
			defer lock.Unlock()

			logger := ctx.ensureLogger()
			p, warnings, err := store.Load(path, store.Options{Logger: logger})
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			if err := store.Save(p, target, storeOptions(cfg, logger)); err != nil {
				return err
			}
			ctx.recordEvent("repair", p.Name, fmt.Sprintf("repaired %d fields", len(warnings)), warnings)

			out := cmd.OutOrStdout()
			if len(warnings) == 0 {
				fmt.Fprintf(out, "Project %q was already clean; wrote %s\n", p.Name, target)
				return nil
			}
			fmt.Fprintf(out, "Repaired %d fields in %q:\n", len(warnings), p.Name)
			for _, warning := range warnings {
				fmt.Fprintf(out, "  - %s\n", warning)
			}
			fmt.Fprintf(out, "Wrote %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the repaired document here instead of back to the source")
	return cmd
}
