package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [project]",
		Short: "Check the installation and, optionally, one project directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var projectDir string
			if len(args) == 1 {
				path, err := config.ExpandPath(args[0])
				if err != nil {
					return err
				}
				if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
					path = filepath.Dir(path)
				}
				projectDir = path
			}

			results := preflight.RunAll(cmd.Context(), cfg, projectDir)

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			title := "Environment"
			if projectDir != "" {
				title = "Project " + projectDir
			}
			for _, line := range renderSectionHeader(title, colorize) {
				fmt.Fprintln(out, line)
			}
			failed := 0
			for _, result := range results {
				kind := statusOK
				if !result.Passed {
					kind = statusError
					failed++
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			fmt.Fprintln(out, "All checks passed")
			return nil
		},
	}
}
