package project

import "errors"

// EconomyTypes are the accepted values for Economy.Type.
var EconomyTypes = []string{"capitalist", "socialist", "feudal", "barter", "command", "mixed", "post_scarcity"}

// Economy describes a faction's economic system. An economy has no display
// name of its own; it is identified through its faction.
type Economy struct {
	ID        string `json:"id"`
	FactionID string `json:"faction_id"`
	Type      string `json:"economy_type"` // capitalist, feudal, barter, ...
	Currency  string `json:"currency"`
	GDP       string `json:"gdp"`

	MajorIndustries []string     `json:"major_industries"`
	Goods           []Good       `json:"goods"`
	TradeRoutes     []TradeRoute `json:"trade_routes"`
	TradePartners   []string     `json:"trade_partners"`
	Embargoes       []string     `json:"embargoes"`
	Description     string       `json:"description"`
}

// Validate checks required fields and enum membership.
func (e Economy) Validate() error {
	var errs []error
	if e.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if e.FactionID == "" {
		errs = append(errs, errors.New("faction_id must not be empty"))
	}
	if !oneOf(e.Type, EconomyTypes) {
		errs = append(errs, enumError("economy_type", e.Type, EconomyTypes))
	}
	return errors.Join(errs...)
}

// Good is a tradeable commodity within an economy.
type Good struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Value       string   `json:"value"`
	Unit        string   `json:"unit"`
	ProducedBy  []string `json:"produced_by"`
	ConsumedBy  []string `json:"consumed_by"`
	Description string   `json:"description"`
}

// TradeRoute is a recurring exchange between two factions.
type TradeRoute struct {
	FromFaction string   `json:"from_faction"`
	ToFaction   string   `json:"to_faction"`
	Goods       []string `json:"goods"`
	Volume      string   `json:"volume"`
	Value       string   `json:"value"`
	Type        string   `json:"route_type"` // land, sea, air, space
}
