package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/project"
	"folio/internal/store"
	"folio/internal/textutil"
)

func newNewCommand(ctx *commandContext) *cobra.Command {
	var dirName string
	var author string

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a project skeleton and save it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			name := strings.TrimSpace(args[0])
			if name == "" {
				return errors.New("project name is required")
			}

			dir := strings.TrimSpace(dirName)
			if dir == "" {
				dir = textutil.SanitizeFileName(name)
			}
			projectDir := filepath.Join(cfg.Paths.ProjectsDir, dir)
			indexPath := filepath.Join(projectDir, store.IndexFileName)
			if _, err := os.Stat(indexPath); err == nil {
				return fmt.Errorf("project already exists at %s", indexPath)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("check project path: %w", err)
			}

			lock, err := store.LockProject(projectDir)
			if err != nil {
				return err
			}
			defer lock.Unlock()

			p := project.New(name)
			p.Manuscript.Title = name
			p.Manuscript.Author = strings.TrimSpace(author)
			if p.Manuscript.Author == "" {
				p.Manuscript.Author = cfg.Author.Name
			}

			if err := store.Save(p, indexPath, storeOptions(cfg, ctx.ensureLogger())); err != nil {
				return err
			}
			ctx.recordEvent("new", p.Name, "project created", nil)
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %q at %s\n", p.Name, indexPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dirName, "dir", "", "Directory name under the projects root (defaults to the sanitized project name)")
	cmd.Flags().StringVar(&author, "author", "", "Manuscript author (defaults to the configured author)")
	return cmd
}
