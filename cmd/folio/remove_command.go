package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/schema"
	"folio/internal/store"
)

type removeReport struct {
	Project string   `json:"project"`
	Kind    string   `json:"kind"`
	ID      string   `json:"id"`
	Name    string   `json:"name,omitempty"`
	Swept   []string `json:"swept,omitempty"`
	Saved   bool     `json:"saved"`
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "remove <project> <kind> <id>",
		Short: "Remove a record and sweep references to it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			indexPath, err := resolveIndexPath(args[0])
			if err != nil {
				return err
			}
			desc, err := resolveRecordKind(args[1])
			if err != nil {
				return err
			}
			id := strings.TrimSpace(args[2])
			if id == "" {
				return fmt.Errorf("record id is required")
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

			var name string
			if rec, ok := desc.Find(p, id); ok {
				name = desc.RecordName(rec)
			}
			removed, swept := schema.Remove(p, desc.Kind, id)
			if !removed {
				return fmt.Errorf("no %s with id %q in %q", desc.Kind, id, p.Name)
			}

			saved := false
			if !dryRun {
				if err := store.Save(p, indexPath, storeOptions(cfg, logger)); err != nil {
					return err
				}
				saved = true
			}
			ctx.recordEvent("remove", p.Name,
				fmt.Sprintf("removed %s %s", desc.Kind, id), swept)

			if jsonOut {
				return writeJSON(cmd, removeReport{
					Project: p.Name,
					Kind:    string(desc.Kind),
					ID:      id,
					Name:    name,
					Swept:   swept,
					Saved:   saved,
				})
			}

			out := cmd.OutOrStdout()
			for _, msg := range swept {
				fmt.Fprintf(out, "cleanup: %s\n", msg)
			}
			subject := id
			if name != "" {
				subject = fmt.Sprintf("%q (%s)", name, id)
			}
			if dryRun {
				fmt.Fprintf(out, "Dry run: %s %s would be removed from %q\n", desc.Kind, subject, p.Name)
			} else {
				fmt.Fprintf(out, "Removed %s %s from %q\n", desc.Kind, subject, p.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Apply the removal in memory and report, but do not save")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the removal result as JSON")
	return cmd
}

// resolveRecordKind accepts a singular kind name ("faction") or its collection
// key ("factions"). Chapters are manuscript structure, not removable records.
func resolveRecordKind(arg string) (*schema.Descriptor, error) {
	name := strings.ToLower(strings.TrimSpace(arg))
	desc, ok := schema.Lookup(schema.Kind(name))
	if !ok {
		desc, ok = schema.ByCollection(name)
	}
	if !ok {
		return nil, fmt.Errorf("unknown record kind %q (one of: %s)", arg, strings.Join(removableKinds(), ", "))
	}
	if desc.Kind == schema.KindChapter {
		return nil, fmt.Errorf("chapters cannot be removed here; edit the manuscript instead")
	}
	return desc, nil
}

func removableKinds() []string {
	all := schema.All()
	kinds := make([]string, 0, len(all))
	for _, d := range all {
		if d.Kind == schema.KindChapter {
			continue
		}
		kinds = append(kinds, string(d.Kind))
	}
	sort.Strings(kinds)
	return kinds
}
