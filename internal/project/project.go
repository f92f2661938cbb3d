package project

import (
	"time"

	"github.com/google/uuid"
)

// Project is the root document encapsulating all work on a single book.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// ProjectPath records where the index document was last saved or loaded.
	// It is refreshed on every save and load, so a moved project directory
	// heals itself on the next load.
	ProjectPath string `json:"project_path,omitempty"`

	Worldbuilding   Worldbuilding    `json:"worldbuilding"`
	Characters      []Character      `json:"characters"`
	StoryPlanning   StoryPlanning    `json:"story_planning"`
	Manuscript      Manuscript       `json:"manuscript"`
	GeneratedImages []GeneratedImage `json:"generated_images"`
	AgentContacts   []AgentContact   `json:"agent_contacts"`
	Dictionary      Dictionary       `json:"dictionary"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates an empty project with initialized collections and timestamps.
func New(name string) *Project {
	now := time.Now().UTC()
	return &Project{
		Name:            name,
		Characters:      []Character{},
		GeneratedImages: []GeneratedImage{},
		AgentContacts:   []AgentContact{},
		Manuscript: Manuscript{
			Title:     "Untitled Manuscript",
			Chapters:  []Chapter{},
			CreatedAt: now,
			UpdatedAt: now,
		},
		StoryPlanning: StoryPlanning{
			FreytagPyramid: FreytagPyramid{Events: []PlotEvent{}},
			Subplots:       []Subplot{},
			Themes:         []string{},
		},
		Worldbuilding: NewWorldbuilding(),
		Dictionary: Dictionary{
			Words:       []string{},
			Definitions: map[string]string{},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the modification timestamp.
func (p *Project) Touch() {
	p.UpdatedAt = time.Now().UTC()
}

// CharacterByID returns the character with the given id, or nil.
func (p *Project) CharacterByID(id string) *Character {
	for i := range p.Characters {
		if p.Characters[i].ID == id {
			return &p.Characters[i]
		}
	}
	return nil
}

// NewID returns a fresh unique identifier for any record type.
func NewID() string {
	return uuid.NewString()
}

// GeneratedImage records AI-generated cover or scene art tied to the project.
type GeneratedImage struct {
	ID        string `json:"id"`
	ImagePath string `json:"image_path"`
	Prompt    string `json:"prompt"`
	ImageType string `json:"image_type"` // cover, character, scene
	// AssociatedID optionally links the image to a character or chapter.
	AssociatedID string    `json:"associated_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AgentContact is a literary agent or publisher contact record.
type AgentContact struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Agency      string           `json:"agency"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Notes       string           `json:"notes"`
	Submissions []map[string]any `json:"submissions"`
}

// Dictionary holds project-specific vocabulary for spell-check suppression
// and glossary export.
type Dictionary struct {
	Words       []string          `json:"words"`
	Definitions map[string]string `json:"definitions"`
}

// AddWord records a word in the dictionary if it is not already present.
func (d *Dictionary) AddWord(word string) bool {
	for _, existing := range d.Words {
		if existing == word {
			return false
		}
	}
	d.Words = append(d.Words, word)
	return true
}
