package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/imports"
	"folio/internal/logging"
	"folio/internal/store"
)

type importReport struct {
	Project  string         `json:"project"`
	Source   string         `json:"source"`
	Imported map[string]int `json:"imported"`
	Total    int            `json:"total"`
	Warnings []string       `json:"warnings,omitempty"`
	Errors   []string       `json:"errors,omitempty"`
	Saved    bool           `json:"saved"`
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	var sections []string
	var policyFlag string
	var dryRun bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "import <project> <file>",
		Short: "Merge records from a JSON or YAML document into a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			indexPath, err := resolveIndexPath(args[0])
			if err != nil {
				return err
			}
			sourcePath, err := config.ExpandPath(args[1])
			if err != nil {
				return fmt.Errorf("resolve import file: %w", err)
			}

			policyName := strings.TrimSpace(policyFlag)
			if policyName == "" {
				policyName = cfg.Imports.DuplicatePolicy
			}
			policy, err := imports.ParsePolicy(policyName)
			if err != nil {
				return err
			}

			if !dryRun {
				lock, err := store.LockProject(filepath.Dir(indexPath))
				if err != nil {
					return err
				}
				defer lock.Unlock()
			}

			logger := ctx.ensureLogger()
			if jsonOut {
				logger = ctx.quietLogger()
			}
			p, _, err := store.Load(indexPath, store.Options{Logger: logger})
			if err != nil {
				return fmt.Errorf("load %s: %w", indexPath, err)
			}
			doc, err := imports.ParseFile(sourcePath)
			if err != nil {
				return err
			}

			mergeLogger := logging.WithContext(
				logging.WithOperation(logging.WithProject(cmd.Context(), p.Name), "import"),
				logger,
			)
			result := imports.Merge(p, doc, imports.Options{
				Collections: sections,
				Policy:      policy,
				Logger:      mergeLogger,
			})

			saved := false
			if !dryRun && result.Total() > 0 {
				if err := store.Save(p, indexPath, storeOptions(cfg, logger)); err != nil {
					return err
				}
				saved = true
			}
			ctx.recordEvent("import", p.Name,
				fmt.Sprintf("imported %d records from %s", result.Total(), filepath.Base(sourcePath)),
				append(append([]string{}, result.Warnings...), result.Errors...))

			if jsonOut {
				return writeJSON(cmd, importReport{
					Project:  p.Name,
					Source:   sourcePath,
					Imported: result.Imported,
					Total:    result.Total(),
					Warnings: result.Warnings,
					Errors:   result.Errors,
					Saved:    saved,
				})
			}

			out := cmd.OutOrStdout()
			if len(result.Imported) > 0 {
				collections := make([]string, 0, len(result.Imported))
				for collection := range result.Imported {
					collections = append(collections, collection)
				}
				sort.Strings(collections)
				rows := make([][]string, 0, len(collections))
				for _, collection := range collections {
					rows = append(rows, []string{collection, strconv.Itoa(result.Imported[collection])})
				}
				fmt.Fprintln(out, renderTable(
					[]tableColumn{
						{header: "Collection"},
						{header: "Imported", align: alignRight},
					},
					rows,
				))
			}
			for _, warning := range result.Warnings {
				fmt.Fprintf(out, "warning: %s\n", warning)
			}
			for _, errMsg := range result.Errors {
				fmt.Fprintf(out, "error: %s\n", errMsg)
			}
			switch {
			case dryRun:
				fmt.Fprintf(out, "Dry run: %d records would be imported into %q\n", result.Total(), p.Name)
			case saved:
				fmt.Fprintf(out, "Imported %d records into %q\n", result.Total(), p.Name)
			default:
				fmt.Fprintf(out, "Nothing to import into %q\n", p.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&sections, "sections", nil, "Collections to import (default: every importable collection present)")
	cmd.Flags().StringVar(&policyFlag, "policy", "", "Duplicate id policy: skip or rename (defaults to config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Merge in memory and report, but do not save")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the merge result as JSON")
	return cmd
}
