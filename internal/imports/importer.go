package imports

import (
	"fmt"
	"log/slog"
	"strings"

	"folio/internal/logging"
	"folio/internal/project"
	"folio/internal/schema"
)

// Policy selects how identifier collisions resolve during a merge.
type Policy string

const (
	// PolicySkip discards colliding records.
	PolicySkip Policy = "skip"
	// PolicyRename appends colliding records under a fresh identifier.
	PolicyRename Policy = "rename"
)

// ParsePolicy normalizes a policy name from config or a CLI flag. An empty
// name selects the rename default.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rename":
		return PolicyRename, nil
	case "skip":
		return PolicySkip, nil
	default:
		return "", fmt.Errorf("duplicate policy must be \"skip\" or \"rename\", got %q", s)
	}
}

// Options control a merge call.
type Options struct {
	// Collections selects which collections to merge, by collection key.
	// Empty selects every importable collection present in the document.
	Collections []string
	// Policy resolves identifier collisions. Empty selects PolicyRename.
	Policy Policy
	// Logger receives merge progress. Nil selects the no-op logger.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	logger := o.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return logging.NewComponentLogger(logger, "imports")
}

// Result reports one merge call: how many records were appended per
// collection, plus every warning and error accumulated along the way.
// Collections that were selected but produced no constructible record have
// no Imported entry.
type Result struct {
	Imported map[string]int
	Warnings []string
	Errors   []string
}

// Total returns the number of records appended across all collections.
func (r Result) Total() int {
	total := 0
	for _, count := range r.Imported {
		total += count
	}
	return total
}

// DetectSections runs nested extraction and returns every importable
// collection present in the document with at least one candidate record,
// keyed by collection name. Unknown top-level keys are ignored.
func DetectSections(doc map[string]any) map[string][]any {
	expanded, _ := ExtractNested(doc)
	detected := make(map[string][]any)
	for _, d := range schema.Importable() {
		if list := candidateList(expanded, d); len(list) > 0 {
			detected[d.Collection] = list
		}
	}
	return detected
}

// ValidateSection filters each candidate's keys to the collection's
// recognized field set and attempts full typed construction. A record that
// still fails is skipped and reported with its 1-based index; the rest of
// the section is unaffected.
func ValidateSection(collection string, candidates []any) ([]any, []string) {
	d, ok := schema.ByCollection(collection)
	if !ok {
		return nil, []string{fmt.Sprintf("unknown section %q", collection)}
	}
	if !d.Importable {
		return nil, []string{fmt.Sprintf("section %q cannot be imported", collection)}
	}
	var valid []any
	var errs []string
	for i, candidate := range candidates {
		record, ok := candidate.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("%s #%d: element is not a mapping", d.Label, i+1))
			continue
		}
		constructed, err := d.Construct(record)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s #%d: %v", d.Label, i+1, err))
			continue
		}
		valid = append(valid, constructed)
	}
	return valid, errs
}

// Merge imports the document's records into the project. Nested records are
// extracted first, each selected collection is validated, and every valid
// record is appended unless its id collides with one already in the target
// collection, in which case the duplicate policy decides. Collisions are
// id-based and kind-scoped, and records appended earlier in the same call
// count as existing. The merge is all-or-nothing per record, never per call:
// errors in one collection do not hold back valid records in another.
func Merge(p *project.Project, doc map[string]any, opts Options) Result {
	logger := opts.logger()
	policy := opts.Policy
	if policy == "" {
		policy = PolicyRename
	}

	result := Result{Imported: map[string]int{}}

	expanded, messages := ExtractNested(doc)
	result.Warnings = append(result.Warnings, messages...)

	selected, errs := selectedDescriptors(opts.Collections)
	result.Errors = append(result.Errors, errs...)

	skipped, renamed := 0, 0
	for _, d := range selected {
		candidates := candidateList(expanded, d)
		if len(candidates) == 0 {
			continue
		}
		valid, errs := ValidateSection(d.Collection, candidates)
		result.Errors = append(result.Errors, errs...)
		if len(valid) == 0 {
			continue
		}

		existing := existingIDs(d, p)
		added := 0
		for _, record := range valid {
			id := d.RecordID(record)
			if _, collision := existing[id]; collision {
				if policy == PolicySkip {
					skipped++
					result.Warnings = append(result.Warnings, fmt.Sprintf("%s: skipped duplicate id %s", d.Collection, id))
					continue
				}
				fresh := project.NewID()
				record = d.WithID(record, fresh)
				renamed++
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s: renamed duplicate id %s to %s", d.Collection, id, fresh))
				id = fresh
			}
			if err := d.Append(p, record); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", d.Collection, err))
				continue
			}
			existing[id] = struct{}{}
			added++
		}
		result.Imported[d.Collection] = added
	}

	if len(result.Errors) > 0 {
		logging.WarnWithContext(logger, "some records could not be imported", "import_rejected",
			logging.Int("error_count", len(result.Errors)),
			logging.String(logging.FieldErrorHint, "inspect the import file for records missing required fields"),
			logging.String(logging.FieldImpact, "rejected records were not added to the project"))
	}
	logger.Info("import merged",
		logging.String("policy", string(policy)),
		logging.Int("records_imported", result.Total()),
		logging.Int("records_skipped", skipped),
		logging.Int("records_renamed", renamed),
		logging.Int("warning_count", len(result.Warnings)))

	return result
}

// selectedDescriptors resolves requested collection names against the
// registry, in registry order so merge output is deterministic regardless of
// flag order. Empty input selects every importable collection.
func selectedDescriptors(names []string) ([]*schema.Descriptor, []string) {
	if len(names) == 0 {
		return schema.Importable(), nil
	}
	want := make(map[string]bool, len(names))
	var errs []string
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		d, ok := schema.ByCollection(key)
		if !ok {
			errs = append(errs, fmt.Sprintf("unknown section %q", name))
			continue
		}
		if !d.Importable {
			errs = append(errs, fmt.Sprintf("section %q cannot be imported", name))
			continue
		}
		want[key] = true
	}
	var out []*schema.Descriptor
	for _, d := range schema.Importable() {
		if want[d.Collection] {
			out = append(out, d)
		}
	}
	return out, errs
}

func existingIDs(d *schema.Descriptor, p *project.Project) map[string]struct{} {
	refs := d.Refs(p)
	ids := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		ids[ref.ID] = struct{}{}
	}
	return ids
}
