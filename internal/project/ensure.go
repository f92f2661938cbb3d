package project

// EnsureCollections replaces nil collections and maps with empty ones across
// the whole tree, so documents decoded from sparse files serialize with []
// and {} instead of null.
func (p *Project) EnsureCollections() {
	if p.Characters == nil {
		p.Characters = []Character{}
	}
	if p.GeneratedImages == nil {
		p.GeneratedImages = []GeneratedImage{}
	}
	if p.AgentContacts == nil {
		p.AgentContacts = []AgentContact{}
	}
	if p.Manuscript.Chapters == nil {
		p.Manuscript.Chapters = []Chapter{}
	}
	for i := range p.Manuscript.Chapters {
		ch := &p.Manuscript.Chapters[i]
		if ch.Revisions == nil {
			ch.Revisions = []ChapterRevision{}
		}
		if ch.Annotations == nil {
			ch.Annotations = []Annotation{}
		}
	}
	if p.StoryPlanning.FreytagPyramid.Events == nil {
		p.StoryPlanning.FreytagPyramid.Events = []PlotEvent{}
	}
	if p.StoryPlanning.Subplots == nil {
		p.StoryPlanning.Subplots = []Subplot{}
	}
	if p.StoryPlanning.Themes == nil {
		p.StoryPlanning.Themes = []string{}
	}
	if p.Dictionary.Words == nil {
		p.Dictionary.Words = []string{}
	}
	if p.Dictionary.Definitions == nil {
		p.Dictionary.Definitions = map[string]string{}
	}
	p.Worldbuilding.ensureCollections()
}

func (w *Worldbuilding) ensureCollections() {
	if w.CustomSections == nil {
		w.CustomSections = map[string]string{}
	}
	if w.MythologyElements == nil {
		w.MythologyElements = map[string]string{}
	}
	if w.PlanetsElements == nil {
		w.PlanetsElements = map[string]string{}
	}
	if w.ClimateElements == nil {
		w.ClimateElements = map[string]string{}
	}
	if w.HistoryElements == nil {
		w.HistoryElements = map[string]string{}
	}
	if w.PoliticsElements == nil {
		w.PoliticsElements = map[string]string{}
	}
	if w.MilitaryElements == nil {
		w.MilitaryElements = map[string]string{}
	}
	if w.EconomyElements == nil {
		w.EconomyElements = map[string]string{}
	}
	if w.PowerHierarchyElements == nil {
		w.PowerHierarchyElements = map[string]string{}
	}
	if w.Factions == nil {
		w.Factions = []Faction{}
	}
	if w.Places == nil {
		w.Places = []Place{}
	}
	if w.Cultures == nil {
		w.Cultures = []Culture{}
	}
	if w.Myths == nil {
		w.Myths = []Myth{}
	}
	if w.HistoricalEvents == nil {
		w.HistoricalEvents = []HistoricalEvent{}
	}
	if w.Armies == nil {
		w.Armies = []Army{}
	}
	if w.Economies == nil {
		w.Economies = []Economy{}
	}
	if w.PoliticalSystems == nil {
		w.PoliticalSystems = []PoliticalSystem{}
	}
	if w.PowerHierarchies == nil {
		w.PowerHierarchies = []PowerHierarchy{}
	}
	if w.Technologies == nil {
		w.Technologies = []Technology{}
	}
	if w.ClimatePresets == nil {
		w.ClimatePresets = []ClimatePreset{}
	}
	if w.Flora == nil {
		w.Flora = []Flora{}
	}
	if w.Fauna == nil {
		w.Fauna = []Fauna{}
	}
	if w.Stars == nil {
		w.Stars = []Star{}
	}
	if w.StarSystems == nil {
		w.StarSystems = []StarSystem{}
	}
}
