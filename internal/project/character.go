package project

import (
	"errors"
	"time"
)

// CharacterTypes are the accepted values for Character.Type.
var CharacterTypes = []string{"protagonist", "antagonist", "major", "minor"}

// Character is a cast member with personality, backstory, and a name-keyed
// relationship map. FactionID optionally ties the character to a faction.
type Character struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"character_type"` // protagonist, antagonist, major, minor
	ImagePath   string `json:"image_path,omitempty"`
	Personality string `json:"personality"`
	Backstory   string `json:"backstory"`
	// SocialNetwork maps another character's name to the relationship
	// ("mentor", "rival"). Name-keyed by design: the legacy editor predates
	// stable character ids.
	SocialNetwork map[string]string `json:"social_network"`
	FactionID     string            `json:"faction_id,omitempty"`
	Notes         string            `json:"notes"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// Validate checks required fields and enum membership.
func (c Character) Validate() error {
	var errs []error
	if c.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if c.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if !oneOf(c.Type, CharacterTypes) {
		errs = append(errs, enumError("character_type", c.Type, CharacterTypes))
	}
	return errors.Join(errs...)
}
