package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/logging"
	"folio/internal/searchindex"
	"folio/internal/store"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var similar bool
	var rebuild bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "search <project> <query...>",
		Short: "Search the project's full-text index",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Search.Enabled {
				return errors.New("search is disabled (set search.enabled in the config)")
			}
			indexPath, err := resolveIndexPath(args[0])
			if err != nil {
				return err
			}
			query := strings.TrimSpace(strings.Join(args[1:], " "))

			logger := ctx.ensureLogger()
			if jsonOut {
				logger = ctx.quietLogger()
			}
			p, _, err := store.Load(indexPath, store.Options{Logger: logger})
			if err != nil {
				return fmt.Errorf("load %s: %w", indexPath, err)
			}

			searchLogger := logging.WithContext(
				logging.WithOperation(logging.WithProject(cmd.Context(), p.Name), "search"),
				logger,
			)
			dbPath := searchindex.PathFor(filepath.Dir(indexPath), cfg.Search.DBName)
			idx, err := searchindex.Open(dbPath, searchindex.Options{
				ChunkWords: cfg.Search.ChunkWords,
				Logger:     searchLogger,
			})
			if err != nil {
				return err
			}
			defer idx.Close()

			cmdCtx := cmd.Context()
			stale, err := idx.Stale(cmdCtx, p.UpdatedAt)
			if err != nil {
				return err
			}
			if stale || rebuild {
				if _, err := idx.Rebuild(cmdCtx, p); err != nil {
					return err
				}
			}

			var hits []searchindex.Hit
			if similar {
				hits, err = idx.Similar(cmdCtx, query, limit)
			} else {
				hits, err = idx.Search(cmdCtx, query, limit)
			}
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, hits)
			}

			out := cmd.OutOrStdout()
			if len(hits) == 0 {
				fmt.Fprintln(out, "No matches")
				return nil
			}
			rows := make([][]string, 0, len(hits))
			for _, hit := range hits {
				rows = append(rows, []string{
					hit.Kind,
					hit.Name,
					fmt.Sprintf("%.2f", hit.Score),
					hit.Snippet,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]tableColumn{
					{header: "Kind"},
					{header: "Name", maxWidth: 28},
					{header: "Score", align: alignRight},
					{header: "Snippet", maxWidth: 48},
				},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of records to return")
	cmd.Flags().BoolVar(&similar, "similar", false, "Rank by text similarity instead of keyword match")
	cmd.Flags().BoolVar(&rebuild, "rebuild", false, "Rebuild the index even if it is fresh")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit hits as JSON")
	return cmd
}
