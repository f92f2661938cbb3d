package project

// Worldbuilding aggregates the structured entity collections plus the legacy
// free-text sections older documents were built from. Legacy fields are
// round-tripped untouched so upgrading a project never loses prose that was
// written before the structured editors existed.
type Worldbuilding struct {
	// Legacy single-text sections.
	Mythology      string            `json:"mythology"`
	Planets        string            `json:"planets"`
	Climate        string            `json:"climate"`
	History        string            `json:"history"`
	Politics       string            `json:"politics"`
	Military       string            `json:"military"`
	Economy        string            `json:"economy"`
	PowerHierarchy string            `json:"power_hierarchy"`
	CustomSections map[string]string `json:"custom_sections"`

	// Legacy named-element sections, keyed element name -> description.
	MythologyElements      map[string]string `json:"mythology_elements"`
	PlanetsElements        map[string]string `json:"planets_elements"`
	ClimateElements        map[string]string `json:"climate_elements"`
	HistoryElements        map[string]string `json:"history_elements"`
	PoliticsElements       map[string]string `json:"politics_elements"`
	MilitaryElements       map[string]string `json:"military_elements"`
	EconomyElements        map[string]string `json:"economy_elements"`
	PowerHierarchyElements map[string]string `json:"power_hierarchy_elements"`

	// Structured entity collections. Flat ordered lists; records reference
	// each other by id only.
	Factions         []Faction         `json:"factions"`
	Places           []Place           `json:"places"`
	Cultures         []Culture         `json:"cultures"`
	Myths            []Myth            `json:"myths"`
	HistoricalEvents []HistoricalEvent `json:"historical_events"`
	Armies           []Army            `json:"armies"`
	Economies        []Economy         `json:"economies"`
	PoliticalSystems []PoliticalSystem `json:"political_systems"`
	PowerHierarchies []PowerHierarchy  `json:"power_hierarchies"`
	Technologies     []Technology      `json:"technologies"`
	ClimatePresets   []ClimatePreset   `json:"climate_presets"`
	Flora            []Flora           `json:"flora"`
	Fauna            []Fauna           `json:"fauna"`
	Stars            []Star            `json:"stars"`
	StarSystems      []StarSystem      `json:"star_systems"`
}

// NewWorldbuilding returns a Worldbuilding with every collection initialized,
// so a fresh project serializes with empty lists rather than nulls.
func NewWorldbuilding() Worldbuilding {
	return Worldbuilding{
		CustomSections:         map[string]string{},
		MythologyElements:      map[string]string{},
		PlanetsElements:        map[string]string{},
		ClimateElements:        map[string]string{},
		HistoryElements:        map[string]string{},
		PoliticsElements:       map[string]string{},
		MilitaryElements:       map[string]string{},
		EconomyElements:        map[string]string{},
		PowerHierarchyElements: map[string]string{},
		Factions:               []Faction{},
		Places:                 []Place{},
		Cultures:               []Culture{},
		Myths:                  []Myth{},
		HistoricalEvents:       []HistoricalEvent{},
		Armies:                 []Army{},
		Economies:              []Economy{},
		PoliticalSystems:       []PoliticalSystem{},
		PowerHierarchies:       []PowerHierarchy{},
		Technologies:           []Technology{},
		ClimatePresets:         []ClimatePreset{},
		Flora:                  []Flora{},
		Fauna:                  []Fauna{},
		Stars:                  []Star{},
		StarSystems:            []StarSystem{},
	}
}

// FactionByID returns the faction with the given id, or nil.
func (w *Worldbuilding) FactionByID(id string) *Faction {
	for i := range w.Factions {
		if w.Factions[i].ID == id {
			return &w.Factions[i]
		}
	}
	return nil
}
