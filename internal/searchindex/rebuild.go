package searchindex

import (
	"context"
	"fmt"
	"strings"
	"time"

	"folio/internal/logging"
	"folio/internal/project"
	"folio/internal/schema"
)

// chunk is one row bound for the FTS table.
type chunk struct {
	kind     string
	recordID string
	name     string
	body     string
}

// Rebuild replaces the entire index with the project's current content inside
// one transaction, so readers never observe a half-built index. It returns
// the number of chunks written.
func (ix *Index) Rebuild(ctx context.Context, p *project.Project) (int, error) {
	db, err := ix.conn()
	if err != nil {
		return 0, err
	}
	start := time.Now()
	chunks := ix.collectChunks(p)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin rebuild: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM chunks"); err != nil {
		return 0, fmt.Errorf("clear chunks: %w", err)
	}
	sampler := logging.NewProgressSampler(25)
	for i, c := range chunks {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO chunks (kind, record_id, name, body) VALUES (?, ?, ?, ?)",
			c.kind, c.recordID, c.name, c.body,
		); err != nil {
			return 0, fmt.Errorf("insert chunk for %s %s: %w", c.kind, c.recordID, err)
		}
		percent := float64(i+1) / float64(len(chunks)) * 100
		if sampler.ShouldLog(percent, "index", "") {
			ix.logger.Debug("search index rebuild progress",
				logging.Int("chunks_written", i+1),
				logging.Int("chunk_total", len(chunks)))
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO index_meta (key, value) VALUES ('project_updated_at', ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return 0, fmt.Errorf("record index meta: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit rebuild: %w", err)
	}

	ix.logger.Info("search index rebuilt",
		logging.String("project", p.Name),
		logging.Int("chunk_count", len(chunks)),
		logging.Duration("duration", time.Since(start)))
	return len(chunks), nil
}

// collectChunks flattens the project into indexable rows: chapter bodies
// split into word-bounded chunks, one row per entity otherwise.
func (ix *Index) collectChunks(p *project.Project) []chunk {
	var chunks []chunk

	for i := range p.Manuscript.Chapters {
		ch := &p.Manuscript.Chapters[i]
		pieces := splitWords(ch.Content, ix.chunkWords)
		if len(pieces) == 0 {
			pieces = []string{""}
		}
		for _, piece := range pieces {
			chunks = append(chunks, chunk{
				kind:     string(schema.KindChapter),
				recordID: ch.ID,
				name:     ch.Title,
				body:     strings.TrimSpace(piece + " " + ch.Notes),
			})
		}
	}

	for _, d := range schema.All() {
		if d.Kind == schema.KindChapter {
			continue
		}
		for _, text := range d.Texts(p) {
			chunks = append(chunks, chunk{
				kind:     string(d.Kind),
				recordID: text.ID,
				name:     text.Name,
				body:     text.Body,
			})
		}
	}
	return chunks
}

// splitWords breaks text into pieces of at most size words, never splitting
// inside a word.
func splitWords(text string, size int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	pieces := make([]string, 0, len(words)/size+1)
	for start := 0; start < len(words); start += size {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		pieces = append(pieces, strings.Join(words[start:end], " "))
	}
	return pieces
}
