package project

import "errors"

// Army is a faction's military force, broken down into branches. Allies,
// Enemies, and ActiveConflicts hold faction ids.
type Army struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	FactionID     string           `json:"faction_id"`
	TotalStrength int              `json:"total_strength"`
	Branches      []MilitaryBranch `json:"branches"`

	Allies          []string `json:"allies"`
	Enemies         []string `json:"enemies"`
	ActiveConflicts []string `json:"active_conflicts"`
	Victories       []string `json:"victories"`
	Defeats         []string `json:"defeats"`
	Description     string   `json:"description"`
}

// Validate checks required fields.
func (a Army) Validate() error {
	var errs []error
	if a.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if a.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if a.FactionID == "" {
		errs = append(errs, errors.New("faction_id must not be empty"))
	}
	return errors.Join(errs...)
}

// MilitaryBranch is one arm of an army (infantry, navy, void fleet).
type MilitaryBranch struct {
	Name           string   `json:"name"`
	Type           string   `json:"branch_type"` // infantry, navy, air, ...
	Size           int      `json:"size"`
	Commander      string   `json:"commander"`
	Equipment      []string `json:"equipment"`
	Specialization string   `json:"specialization"`
	Bases          []string `json:"bases"`
}
