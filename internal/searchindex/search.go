package searchindex

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"folio/internal/textutil"
)

// Hit is one search result. Score is normalized so larger is better across
// both ranking modes.
type Hit struct {
	Kind     string  `json:"kind"`
	RecordID string  `json:"record_id"`
	Name     string  `json:"name,omitempty"`
	Snippet  string  `json:"snippet,omitempty"`
	Score    float64 `json:"score"`
}

// Search ranks indexed chunks against the query with bm25 and returns the
// best hit per record, best first. limit bounds the number of records
// returned; values below one select 10.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	db, err := ix.conn()
	if err != nil {
		return nil, err
	}
	match := buildMatchQuery(query)
	if match == "" {
		return nil, errors.New("search query is empty")
	}
	limit = normalizeLimit(limit)

	// Fetch extra rows so per-record dedupe can still fill the limit when one
	// chapter dominates the ranking.
	rows, err := db.QueryContext(ctx,
		`SELECT kind, record_id, name, snippet(chunks, 3, '[', ']', '…', 12), bm25(chunks)
         FROM chunks WHERE chunks MATCH ?
         ORDER BY bm25(chunks) LIMIT ?`,
		match, limit*4,
	)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	defer rows.Close()

	var hits []Hit
	seen := make(map[string]bool)
	for rows.Next() {
		var hit Hit
		var rank float64
		if err := rows.Scan(&hit.Kind, &hit.RecordID, &hit.Name, &hit.Snippet, &rank); err != nil {
			return nil, fmt.Errorf("scan search hit: %w", err)
		}
		key := hit.Kind + "\x00" + hit.RecordID
		if seen[key] {
			continue
		}
		seen[key] = true
		// bm25 ranks smaller-is-better and negative for matches; flip it so
		// callers see larger-is-better everywhere.
		hit.Score = -rank
		hits = append(hits, hit)
		if len(hits) == limit {
			break
		}
	}
	return hits, rows.Err()
}

// Similar ranks indexed chunks by TF-IDF cosine similarity against free-form
// text and returns the best hit per record, best first. Unlike Search this
// needs no term overlap with any particular query syntax; it is used to find
// passages related to a piece of prose.
func (ix *Index) Similar(ctx context.Context, text string, limit int) ([]Hit, error) {
	db, err := ix.conn()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("similarity text is empty")
	}
	limit = normalizeLimit(limit)

	rows, err := db.QueryContext(ctx, "SELECT kind, record_id, name, body FROM chunks")
	if err != nil {
		return nil, fmt.Errorf("load chunks: %w", err)
	}
	defer rows.Close()

	type scored struct {
		hit Hit
		fp  *textutil.Fingerprint
	}
	var candidates []scored
	corpus := textutil.NewCorpus()
	for rows.Next() {
		var hit Hit
		var body string
		if err := rows.Scan(&hit.Kind, &hit.RecordID, &hit.Name, &body); err != nil {
			return nil, fmt.Errorf("scan chunk: %w", err)
		}
		fp := textutil.NewFingerprint(hit.Name + " " + body)
		if fp == nil {
			continue
		}
		corpus.Add(fp)
		hit.Snippet = leadingWords(body, 12)
		candidates = append(candidates, scored{hit: hit, fp: fp})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	idf := corpus.IDF()
	queryFP := textutil.NewFingerprint(text).WithIDF(idf)
	if queryFP == nil {
		return nil, nil
	}
	for i := range candidates {
		candidates[i].fp = candidates[i].fp.WithIDF(idf)
		candidates[i].hit.Score = textutil.CosineSimilarity(queryFP, candidates[i].fp)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].hit.Score > candidates[j].hit.Score
	})

	var hits []Hit
	seen := make(map[string]bool)
	for _, c := range candidates {
		if c.hit.Score <= 0 {
			break
		}
		key := c.hit.Kind + "\x00" + c.hit.RecordID
		if seen[key] {
			continue
		}
		seen[key] = true
		hits = append(hits, c.hit)
		if len(hits) == limit {
			break
		}
	}
	return hits, nil
}

// buildMatchQuery turns free-form user input into an FTS5 MATCH expression:
// every token is double-quoted so operator characters in the input cannot
// produce syntax errors, and tokens combine with the implicit AND.
func buildMatchQuery(query string) string {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return ""
	}
	quoted := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.ReplaceAll(token, `"`, "")
		if token == "" {
			continue
		}
		quoted = append(quoted, `"`+token+`"`)
	}
	return strings.Join(quoted, " ")
}

func normalizeLimit(limit int) int {
	if limit < 1 {
		return 10
	}
	return limit
}

func leadingWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ") + "…"
}
