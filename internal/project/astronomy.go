package project

import "errors"

// Star is a single star described for worldbuilding purposes. Physical
// quantities are strings so authors can write "1.2 solar masses" or leave
// them loose.
type Star struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SpectralClass string `json:"spectral_class"` // O, B, A, F, G, K, M
	Mass          string `json:"mass"`
	Radius        string `json:"radius"`
	Temperature   string `json:"temperature"`
	Luminosity    string `json:"luminosity"`
	Age           string `json:"age"`
	Color         string `json:"color"`
	Description   string `json:"description"`
	Notes         string `json:"notes"`
}

// Validate checks required fields.
func (s Star) Validate() error {
	var errs []error
	if s.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if s.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	return errors.Join(errs...)
}

// StarSystem groups stars and places into a planetary system. PrimaryStar and
// CompanionStars hold star ids; PlanetIDs holds place ids.
type StarSystem struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           string   `json:"system_type"` // single, binary, trinary
	PrimaryStar    string   `json:"primary_star"`
	CompanionStars []string `json:"companion_stars"`
	PlanetIDs      []string `json:"planet_ids"`

	Galaxy             string `json:"galaxy"`
	Location           string `json:"location"`
	DistanceFromEarth  string `json:"distance_from_earth"`
	HabitableZoneInner string `json:"habitable_zone_inner"`
	HabitableZoneOuter string `json:"habitable_zone_outer"`
	Description        string `json:"description"`
	Notes              string `json:"notes"`
}

// Validate checks required fields.
func (s StarSystem) Validate() error {
	var errs []error
	if s.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if s.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	return errors.Join(errs...)
}
