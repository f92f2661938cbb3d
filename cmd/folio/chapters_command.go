package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/fileutil"
	"folio/internal/store"
)

func newChaptersCommand(ctx *commandContext) *cobra.Command {
	chaptersCmd := &cobra.Command{
		Use:   "chapters",
		Short: "Inspect and export manuscript chapters",
	}

	chaptersCmd.AddCommand(newChaptersListCommand(ctx))
	chaptersCmd.AddCommand(newChaptersExportCommand(ctx))

	return chaptersCmd
}

func newChaptersListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <project>",
		Short: "List chapters in manuscript order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveIndexPath(args[0])
			if err != nil {
				return err
			}
			p, _, err := store.Load(path, store.Options{Logger: ctx.ensureLogger()})
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}

			chapters := p.Manuscript.OrderedChapters()
			if len(chapters) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Manuscript has no chapters")
				return nil
			}
			rows := make([][]string, 0, len(chapters))
			for _, ch := range chapters {
				location := ch.FilePath
				if location == "" {
					location = "inline"
				}
				rows = append(rows, []string{
					strconv.Itoa(ch.Number),
					ch.Title,
					strconv.Itoa(ch.WordCount),
					location,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]tableColumn{
					{header: "No.", align: alignRight},
					{header: "Title", maxWidth: 40},
					{header: "Words", align: alignRight},
					{header: "File"},
				},
				rows,
			))
			return nil
		},
	}
}

func newChaptersExportCommand(ctx *commandContext) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export <project>",
		Short: "Write every chapter body to its own markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveIndexPath(args[0])
			if err != nil {
				return err
			}
			p, _, err := store.Load(path, store.Options{Logger: ctx.ensureLogger()})
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}

			target := strings.TrimSpace(outDir)
			if target == "" {
				target = filepath.Join(filepath.Dir(path), "export")
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve output directory: %w", err)
				}
				target = expanded
			}
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("create export directory %q: %w", target, err)
			}

			projectDir := filepath.Dir(path)
			exported := 0
			for _, ch := range p.Manuscript.OrderedChapters() {
				dst := filepath.Join(target, ch.FileName())
				if ch.FilePath != "" {
					src := filepath.Join(projectDir, filepath.FromSlash(ch.FilePath))
					if err := fileutil.CopyFile(src, dst); err != nil {
						return fmt.Errorf("export chapter %d: %w", ch.Number, err)
					}
				} else {
					if err := os.WriteFile(dst, []byte(ch.Content), 0o644); err != nil {
						return fmt.Errorf("export chapter %d: %w", ch.Number, err)
					}
				}
				exported++
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d chapters to %s\n", exported, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Export directory (defaults to <project>/export)")
	return cmd
}
