package project

import "errors"

// PoliticalSystem describes how a faction governs itself. Like Economy it has
// no display name; it is identified through its faction.
type PoliticalSystem struct {
	ID           string             `json:"id"`
	FactionID    string             `json:"faction_id"`
	Type         string             `json:"system_type"` // democracy, monarchy, ...
	Constitution string             `json:"constitution"`
	Branches     []GovernmentBranch `json:"branches"`

	RulingParty      string   `json:"ruling_party"`
	OppositionParties []string `json:"opposition_parties"`
	Description      string   `json:"description"`
}

// Validate checks required fields.
func (p PoliticalSystem) Validate() error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if p.FactionID == "" {
		errs = append(errs, errors.New("faction_id must not be empty"))
	}
	return errors.Join(errs...)
}

// GovernmentBranch is one branch of a political system.
type GovernmentBranch struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"branch_type"` // executive, legislative, judicial
	Powers           []string `json:"powers"`
	SelectionMethod  string   `json:"selection_method"`
	TermLength       string   `json:"term_length"`
	CurrentOfficials []string `json:"current_officials"`
}

// PowerHierarchy is an org chart of offices and their holders. Nodes form a
// tree through ParentID/ChildrenIDs; RootNodeID names the apex office.
type PowerHierarchy struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       string          `json:"hierarchy_type"` // government, military, religious, corporate
	FactionID  string          `json:"faction_id,omitempty"`
	RootNodeID string          `json:"root_node_id"`
	Nodes      []HierarchyNode `json:"nodes"`

	Allies      []string `json:"allies"`
	Enemies     []string `json:"enemies"`
	Description string   `json:"description"`
}

// Validate checks required fields.
func (p PowerHierarchy) Validate() error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if p.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	return errors.Join(errs...)
}

// HierarchyNode is a single office in a power hierarchy.
type HierarchyNode struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	HeldBy      string   `json:"held_by"`
	Faction     string   `json:"faction"`
	ParentID    string   `json:"parent_id,omitempty"`
	ChildrenIDs []string `json:"children_ids"`
	// PowerLevel (1-10) ranks the office's influence.
	PowerLevel       int      `json:"power_level"`
	Responsibilities []string `json:"responsibilities"`
	Description      string   `json:"description"`
}
