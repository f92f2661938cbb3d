package project

// StoryPlanning captures plot structure: the Freytag pyramid, the main plot
// line, subplots, and themes.
type StoryPlanning struct {
	FreytagPyramid FreytagPyramid `json:"freytag_pyramid"`
	MainPlot       string         `json:"main_plot"`
	Subplots       []Subplot      `json:"subplots"`
	Themes         []string       `json:"themes"`
}

// PlotStages are the accepted values for PlotEvent.Stage, in dramatic order.
var PlotStages = []string{"exposition", "rising_action", "climax", "falling_action", "resolution"}

// FreytagPyramid holds the five-stage dramatic structure. The five text
// fields are the legacy per-stage summaries kept for older documents; newer
// documents describe the arc through Events.
type FreytagPyramid struct {
	Exposition    string `json:"exposition"`
	RisingAction  string `json:"rising_action"`
	Climax        string `json:"climax"`
	FallingAction string `json:"falling_action"`
	Resolution    string `json:"resolution"`

	Events []PlotEvent `json:"events"`
}

// PlotEvent is a single event in the dramatic structure.
type PlotEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Outcome     string `json:"outcome"`
	Stage       string `json:"stage"`
	// Intensity (0-100) positions the event vertically on the pyramid.
	Intensity         int      `json:"intensity"`
	SortOrder         int      `json:"sort_order"`
	RelatedCharacters []string `json:"related_characters"`
	RelatedSubplots   []string `json:"related_subplots"`
	Notes             string   `json:"notes"`
}

// SubplotStatuses are the accepted values for Subplot.Status.
var SubplotStatuses = []string{"active", "resolved", "abandoned"}

// Subplot is a secondary plot line with its own event arc.
type Subplot struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	ConnectionToMain  string      `json:"connection_to_main"`
	RelatedCharacters []string    `json:"related_characters"`
	Events            []PlotEvent `json:"events"`
	Status            string      `json:"status"` // active, resolved, abandoned
}
