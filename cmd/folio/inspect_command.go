package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"folio/internal/schema"
	"folio/internal/store"
)

type inspectReport struct {
	Name        string         `json:"name"`
	Author      string         `json:"author,omitempty"`
	Path        string         `json:"path"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Chapters    int            `json:"chapters"`
	TotalWords  int            `json:"total_words"`
	Collections map[string]int `json:"collections"`
	Warnings    []string       `json:"warnings,omitempty"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "inspect <project>",
		Short: "Summarize a project document",
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

			collections := make(map[string]int)
			for _, d := range schema.All() {
				if d.Kind == schema.KindChapter {
					continue
				}
				if n := d.Len(p); n > 0 {
					collections[d.Collection] = n
				}
			}

			if jsonOut {
				return writeJSON(cmd, inspectReport{
					Name:        p.Name,
					Author:      p.Manuscript.Author,
					Path:        path,
					UpdatedAt:   p.UpdatedAt,
					Chapters:    len(p.Manuscript.Chapters),
					TotalWords:  p.Manuscript.TotalWordCount,
					Collections: collections,
					Warnings:    warnings,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Project:  %s\n", p.Name)
			if p.Manuscript.Author != "" {
				fmt.Fprintf(out, "Author:   %s\n", p.Manuscript.Author)
			}
			fmt.Fprintf(out, "Updated:  %s\n", p.UpdatedAt.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Chapters: %d (%d words)\n", len(p.Manuscript.Chapters), p.Manuscript.TotalWordCount)

			var rows [][]string
			for _, d := range schema.All() {
				if d.Kind == schema.KindChapter {
					continue
				}
				section := d.Section
				if section == "" {
					section = "project"
				}
				if n := d.Len(p); n > 0 {
					rows = append(rows, []string{section, d.Collection, strconv.Itoa(n)})
				}
			}
			if len(rows) > 0 {
				fmt.Fprintln(out, renderTable(
					[]tableColumn{
						{header: "Section"},
						{header: "Collection"},
						{header: "Records", align: alignRight},
					},
					rows,
				))
			} else {
				fmt.Fprintln(out, "No worldbuilding records")
			}

			if len(warnings) > 0 {
				fmt.Fprintf(out, "%d fields repaired in memory (run `folio repair` to persist):\n", len(warnings))
				for _, warning := range warnings {
					fmt.Fprintf(out, "  - %s\n", warning)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit a JSON summary instead of tables")
	return cmd
}
