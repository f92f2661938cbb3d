package project

import "errors"

// Place is a named location: a planet, city, region, or landmark. Factions
// lists the ids of factions with a presence there.
type Place struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"place_type"` // planet, city, region, landmark
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Climate     string   `json:"climate"`
	Population  string   `json:"population"`
	Factions    []string `json:"factions"`
	Notes       string   `json:"notes"`
}

// Validate checks required fields.
func (p Place) Validate() error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if p.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	return errors.Join(errs...)
}

// Culture describes a people's values, traditions, and beliefs.
type Culture struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Values             []string `json:"values"`
	Traditions         []string `json:"traditions"`
	Language           string   `json:"language"`
	Religion           string   `json:"religion"`
	AssociatedFactions []string `json:"associated_factions"`
	Notes              string   `json:"notes"`
}

// Validate checks required fields.
func (c Culture) Validate() error {
	var errs []error
	if c.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if c.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	return errors.Join(errs...)
}

// Myth is a legend, religious tale, or founding story.
type Myth struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"myth_type"` // creation, hero, cautionary, ...
	AssociatedFactions []string `json:"associated_factions"`
	KeyFigures         []string `json:"key_figures"`
	TimePeriod         string   `json:"time_period"`
	MoralLesson        string   `json:"moral_lesson"`
	Description        string   `json:"description"`
	FullText           string   `json:"full_text"`
}

// Validate checks required fields.
func (m Myth) Validate() error {
	var errs []error
	if m.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if m.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	return errors.Join(errs...)
}

// HistoricalEvent is a dated event on the world timeline. Timestamp is an
// arbitrary sortable integer (in-world year or epoch offset), distinct from
// the human-readable Date.
type HistoricalEvent struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Date             string   `json:"date"`
	Timestamp        int      `json:"timestamp"`
	Type             string   `json:"event_type"` // war, treaty, discovery, ...
	KeyFigures       []string `json:"key_figures"`
	FactionsInvolved []string `json:"factions_involved"`
	Location         string   `json:"location"`
	Description      string   `json:"description"`
	Consequences     string   `json:"consequences"`
	RelatedEvents    []string `json:"related_events"`
}

// Validate checks required fields.
func (h HistoricalEvent) Validate() error {
	var errs []error
	if h.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if h.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	return errors.Join(errs...)
}
