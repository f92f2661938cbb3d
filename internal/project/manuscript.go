package project

import (
	"fmt"
	"sort"
	"time"

	"folio/internal/textutil"
)

// Manuscript holds the ordered chapter sequence plus title metadata and a
// cached total word count.
type Manuscript struct {
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	Chapters       []Chapter `json:"chapters"`
	TotalWordCount int       `json:"total_word_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ChapterByID returns the chapter with the given id, or nil.
func (m *Manuscript) ChapterByID(id string) *Chapter {
	for i := range m.Chapters {
		if m.Chapters[i].ID == id {
			return &m.Chapters[i]
		}
	}
	return nil
}

// OrderedChapters returns chapter pointers sorted by chapter number.
// The underlying slice order is left untouched.
func (m *Manuscript) OrderedChapters() []*Chapter {
	ordered := make([]*Chapter, 0, len(m.Chapters))
	for i := range m.Chapters {
		ordered = append(ordered, &m.Chapters[i])
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Number < ordered[j].Number
	})
	return ordered
}

// RefreshWordCounts recomputes every chapter's word count and the manuscript
// total, returning the total.
func (m *Manuscript) RefreshWordCounts() int {
	total := 0
	for i := range m.Chapters {
		total += m.Chapters[i].RefreshWordCount()
	}
	m.TotalWordCount = total
	return total
}

// Chapter is a single manuscript chapter. The id is assigned once and never
// reused; number is mutable and drives canonical ordering and file naming.
//
// When FilePath is set, the file holds the authoritative body text. Content
// is a cache: blanked before the index document is written so body text is
// not stored twice, and refreshed from the file after load and save.
type Chapter struct {
	ID          string            `json:"id"`
	Number      int               `json:"number"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	FilePath    string            `json:"file_path,omitempty"`
	Revisions   []ChapterRevision `json:"revisions"`
	Annotations []Annotation      `json:"annotations"`
	Notes       string            `json:"notes"`
	WordCount   int               `json:"word_count"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// FileName returns the deterministic body file name derived from the current
// chapter number, e.g. "chapter_003.md". Renumbering a chapter changes which
// file its content is written to on the next save, not retroactively.
func (c *Chapter) FileName() string {
	return fmt.Sprintf("chapter_%03d.md", c.Number)
}

// AddRevision snapshots the current content into the append-only revision log.
func (c *Chapter) AddRevision(notes string) {
	c.Revisions = append(c.Revisions, ChapterRevision{
		RevisionNumber: len(c.Revisions) + 1,
		Content:        c.Content,
		Timestamp:      time.Now().UTC(),
		Notes:          notes,
	})
}

// RefreshWordCount recomputes and stores the chapter word count.
func (c *Chapter) RefreshWordCount() int {
	c.WordCount = textutil.CountWords(c.Content)
	return c.WordCount
}

// ChapterRevision is one entry in a chapter's append-only revision history.
type ChapterRevision struct {
	RevisionNumber int       `json:"revision_number"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	Notes          string    `json:"notes"`
}

// AnnotationTypes are the accepted values for Annotation.Type.
var AnnotationTypes = []string{"note", "attribution", "recommendation"}

// Annotation is a line-anchored note inside a chapter. ReferencedType and
// ReferencedID optionally point at an entity elsewhere in the project; the
// reference is resolved by lookup, never embedded.
type Annotation struct {
	ID             string `json:"id"`
	LineNumber     int    `json:"line_number"`
	Type           string `json:"annotation_type"` // note, attribution, recommendation
	Content        string `json:"content"`
	ReferencedType string `json:"referenced_type,omitempty"`
	ReferencedID   string `json:"referenced_id,omitempty"`
}
