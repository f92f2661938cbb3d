package project

import "errors"

// Technology is an invention or capability and its strategic footprint.
// GameChangingLevel and DestructiveLevel rate story impact on a 1-10 scale.
type Technology struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"technology_type"` // weapon, transport, medical, ...
	Description string `json:"description"`

	FactionsWithAccess []string `json:"factions_with_access"`
	InventorFaction    string   `json:"inventor_faction"`
	GameChangingLevel  int      `json:"game_changing_level"`
	DestructiveLevel   int      `json:"destructive_level"`
	DevelopmentDate    string   `json:"development_date"`
	TechLevel          string   `json:"tech_level"`
	CostToBuild        string   `json:"cost_to_build"`
	Prerequisites      []string `json:"prerequisites"`
	Applications       []string `json:"applications"`
	Limitations        string   `json:"limitations"`
	SideEffects        string   `json:"side_effects"`
	StoryRelevance     string   `json:"story_relevance"`
	Notes              string   `json:"notes"`
}

// Validate checks required fields.
func (t Technology) Validate() error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if t.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	return errors.Join(errs...)
}
