package project

import "errors"

// ClimatePreset is a reusable planetary climate profile ("Earth-like",
// "Desert World") applied to places during worldbuilding.
type ClimatePreset struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	DefaultZones           []string `json:"default_zones"`
	TemperatureRange       string   `json:"temperature_range"`
	PrecipitationPattern   string   `json:"precipitation_pattern"`
	Seasons                []string `json:"seasons"`
	AtmosphericComposition string   `json:"atmospheric_composition"`
	WeatherPatterns        string   `json:"weather_patterns"`
	ExtremeEvents          []string `json:"extreme_events"`
	Notes                  string   `json:"notes"`
}

// Validate checks required fields.
func (c ClimatePreset) Validate() error {
	var errs []error
	if c.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if c.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	return errors.Join(errs...)
}

// SpeciesInteraction records how a species relates to another species.
type SpeciesInteraction struct {
	SpeciesID   string `json:"species_id"`
	Type        string `json:"interaction_type"` // predator, prey, symbiotic, ...
	Description string `json:"description"`
}

// Flora is a plant species and its narrative-relevant properties.
type Flora struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"flora_type"` // tree, flower, fungus, ...
	Description    string   `json:"description"`
	ScientificName string   `json:"scientific_name"`
	CommonNames    []string `json:"common_names"`
	NativePlanets  []string `json:"native_planets"`

	PreferredClimate string `json:"preferred_climate"`
	Habitat          string `json:"habitat"`
	Size             string `json:"size"`
	Lifespan         string `json:"lifespan"`
	GrowthRate       string `json:"growth_rate"`
	Appearance       string `json:"appearance"`

	Edible              bool   `json:"edible"`
	MedicinalProperties string `json:"medicinal_properties"`
	Toxicity            string `json:"toxicity"`
	MagicalProperties   string `json:"magical_properties"`
	EconomicValue       string `json:"economic_value"`

	Interactions         []SpeciesInteraction `json:"interactions"`
	CulturalSignificance string               `json:"cultural_significance"`
	StoryRelevance       string               `json:"story_relevance"`
	Notes                string               `json:"notes"`
}

// Validate checks required fields.
func (f Flora) Validate() error {
	var errs []error
	if f.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if f.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	return errors.Join(errs...)
}

// Fauna is an animal species and its narrative-relevant properties.
type Fauna struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"fauna_type"` // mammal, reptile, avian, ...
	Description    string   `json:"description"`
	ScientificName string   `json:"scientific_name"`
	CommonNames    []string `json:"common_names"`
	NativePlanets  []string `json:"native_planets"`

	PreferredClimate string `json:"preferred_climate"`
	Habitat          string `json:"habitat"`
	TerritorySize    string `json:"territory_size"`
	Size             string `json:"size"`
	Weight           string `json:"weight"`
	Appearance       string `json:"appearance"`
	Lifespan         string `json:"lifespan"`

	Diet              string `json:"diet"`
	Behavior          string `json:"behavior"`
	SocialStructure   string `json:"social_structure"`
	IntelligenceLevel string `json:"intelligence_level"`
	Reproduction      string `json:"reproduction"`

	SpecialAbilities    []string `json:"special_abilities"`
	MagicalProperties   string   `json:"magical_properties"`
	DangerLevel         string   `json:"danger_level"`
	DomesticationStatus string   `json:"domestication_status"`

	Interactions         []SpeciesInteraction `json:"interactions"`
	EconomicValue        string               `json:"economic_value"`
	CulturalSignificance string               `json:"cultural_significance"`
	StoryRelevance       string               `json:"story_relevance"`
	Notes                string               `json:"notes"`
}

// Validate checks required fields.
func (f Fauna) Validate() error {
	var errs []error
	if f.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if f.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	return errors.Join(errs...)
}
