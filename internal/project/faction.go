package project

import "errors"

// FactionTypes are the accepted values for Faction.Type.
var FactionTypes = []string{"nation", "organization", "religion", "tribe", "corporation", "individual", "other"}

// Faction is a nation, organization, or other power bloc. Allies and Enemies
// hold other faction ids; Resources maps a resource name to its quantity.
type Faction struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"faction_type"` // nation, organization, religion, ...
	Description string `json:"description"`
	Leader      string `json:"leader"`
	FoundedDate string `json:"founded_date"`
	Capital     string `json:"capital"`

	Territory []string       `json:"territory"`
	Allies    []string       `json:"allies"`
	Enemies   []string       `json:"enemies"`
	Resources map[string]int `json:"resources"`

	GovernmentType   string `json:"government_type"`
	MilitaryStrength string `json:"military_strength"`
	EconomicPower    string `json:"economic_power"`
	Notes            string `json:"notes"`
}

// Validate checks required fields and enum membership.
func (f Faction) Validate() error {
	var errs []error
	if f.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if f.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if !oneOf(f.Type, FactionTypes) {
		errs = append(errs, enumError("faction_type", f.Type, FactionTypes))
	}
	return errors.Join(errs...)
}
