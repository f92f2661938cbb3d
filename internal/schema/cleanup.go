package schema

import (
	"fmt"

	"folio/internal/project"
)

// CleanupRule sweeps one field of one kind after a record of the trigger
// kind is deleted. The full rule set is the finite, auditable table below;
// anything not listed is intentionally left as a soft inconsistency.
type CleanupRule struct {
	Trigger Kind
	// Swept names the field the rule clears, for audit output and messages.
	Swept string
	sweep func(p *project.Project, id string) int
}

// cleanupRules is evaluated eagerly after every deletion. Best-effort sweep,
// not a transactional cascade.
var cleanupRules = []CleanupRule{
	{Trigger: KindFaction, Swept: "faction.allies", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.Factions {
			p.Worldbuilding.Factions[i].Allies, n = removeString(p.Worldbuilding.Factions[i].Allies, id, n)
		}
		return n
	}},
	{Trigger: KindFaction, Swept: "faction.enemies", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.Factions {
			p.Worldbuilding.Factions[i].Enemies, n = removeString(p.Worldbuilding.Factions[i].Enemies, id, n)
		}
		return n
	}},
	{Trigger: KindFaction, Swept: "character.faction_id", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Characters {
			if p.Characters[i].FactionID == id {
				p.Characters[i].FactionID = ""
				n++
			}
		}
		return n
	}},
	{Trigger: KindFaction, Swept: "army.faction_id", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.Armies {
			if p.Worldbuilding.Armies[i].FactionID == id {
				p.Worldbuilding.Armies[i].FactionID = ""
				n++
			}
		}
		return n
	}},
	{Trigger: KindFaction, Swept: "army.allies/enemies/active_conflicts", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.Armies {
			a := &p.Worldbuilding.Armies[i]
			a.Allies, n = removeString(a.Allies, id, n)
			a.Enemies, n = removeString(a.Enemies, id, n)
			a.ActiveConflicts, n = removeString(a.ActiveConflicts, id, n)
		}
		return n
	}},
	{Trigger: KindFaction, Swept: "economy.faction_id/trade_partners/embargoes", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.Economies {
			e := &p.Worldbuilding.Economies[i]
			if e.FactionID == id {
				e.FactionID = ""
				n++
			}
			e.TradePartners, n = removeString(e.TradePartners, id, n)
			e.Embargoes, n = removeString(e.Embargoes, id, n)
		}
		return n
	}},
	{Trigger: KindFaction, Swept: "political_system.faction_id", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.PoliticalSystems {
			if p.Worldbuilding.PoliticalSystems[i].FactionID == id {
				p.Worldbuilding.PoliticalSystems[i].FactionID = ""
				n++
			}
		}
		return n
	}},
	{Trigger: KindFaction, Swept: "power_hierarchy.faction_id/allies/enemies", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.PowerHierarchies {
			h := &p.Worldbuilding.PowerHierarchies[i]
			if h.FactionID == id {
				h.FactionID = ""
				n++
			}
			h.Allies, n = removeString(h.Allies, id, n)
			h.Enemies, n = removeString(h.Enemies, id, n)
		}
		return n
	}},
	{Trigger: KindFaction, Swept: "technology.factions_with_access/inventor_faction", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.Technologies {
			t := &p.Worldbuilding.Technologies[i]
			t.FactionsWithAccess, n = removeString(t.FactionsWithAccess, id, n)
			if t.InventorFaction == id {
				t.InventorFaction = ""
				n++
			}
		}
		return n
	}},
	{Trigger: KindFaction, Swept: "place.factions", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.Places {
			p.Worldbuilding.Places[i].Factions, n = removeString(p.Worldbuilding.Places[i].Factions, id, n)
		}
		return n
	}},
	{Trigger: KindFaction, Swept: "culture.associated_factions", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.Cultures {
			p.Worldbuilding.Cultures[i].AssociatedFactions, n = removeString(p.Worldbuilding.Cultures[i].AssociatedFactions, id, n)
		}
		return n
	}},
	{Trigger: KindFaction, Swept: "myth.associated_factions", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.Myths {
			p.Worldbuilding.Myths[i].AssociatedFactions, n = removeString(p.Worldbuilding.Myths[i].AssociatedFactions, id, n)
		}
		return n
	}},
	{Trigger: KindFaction, Swept: "historical_event.factions_involved", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.HistoricalEvents {
			p.Worldbuilding.HistoricalEvents[i].FactionsInvolved, n = removeString(p.Worldbuilding.HistoricalEvents[i].FactionsInvolved, id, n)
		}
		return n
	}},
	{Trigger: KindCharacter, Swept: "story_planning.related_characters", sweep: func(p *project.Project, id string) int {
		n := 0
		events := p.StoryPlanning.FreytagPyramid.Events
		for i := range events {
			events[i].RelatedCharacters, n = removeString(events[i].RelatedCharacters, id, n)
		}
		for i := range p.StoryPlanning.Subplots {
			sp := &p.StoryPlanning.Subplots[i]
			sp.RelatedCharacters, n = removeString(sp.RelatedCharacters, id, n)
			for j := range sp.Events {
				sp.Events[j].RelatedCharacters, n = removeString(sp.Events[j].RelatedCharacters, id, n)
			}
		}
		return n
	}},
	{Trigger: KindStar, Swept: "star_system.primary_star/companion_stars", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.StarSystems {
			s := &p.Worldbuilding.StarSystems[i]
			if s.PrimaryStar == id {
				s.PrimaryStar = ""
				n++
			}
			s.CompanionStars, n = removeString(s.CompanionStars, id, n)
		}
		return n
	}},
	{Trigger: KindPlace, Swept: "star_system.planet_ids", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.StarSystems {
			p.Worldbuilding.StarSystems[i].PlanetIDs, n = removeString(p.Worldbuilding.StarSystems[i].PlanetIDs, id, n)
		}
		return n
	}},
	{Trigger: KindHistoricalEvent, Swept: "historical_event.related_events", sweep: func(p *project.Project, id string) int {
		n := 0
		for i := range p.Worldbuilding.HistoricalEvents {
			p.Worldbuilding.HistoricalEvents[i].RelatedEvents, n = removeString(p.Worldbuilding.HistoricalEvents[i].RelatedEvents, id, n)
		}
		return n
	}},
}

// removeString filters id out of list, adding removals to the running count.
func removeString(list []string, id string, count int) ([]string, int) {
	out := list[:0]
	for _, v := range list {
		if v == id {
			count++
			continue
		}
		out = append(out, v)
	}
	return out, count
}

// Rules returns the cleanup rules triggered by deleting the given kind.
func Rules(kind Kind) []CleanupRule {
	out := make([]CleanupRule, 0, 4)
	for _, r := range cleanupRules {
		if r.Trigger == kind {
			out = append(out, r)
		}
	}
	return out
}

// Cascade applies every cleanup rule triggered by the deletion of (kind, id)
// and returns a message per rule that touched at least one record.
func Cascade(p *project.Project, kind Kind, id string) []string {
	var messages []string
	for _, rule := range cleanupRules {
		if rule.Trigger != kind {
			continue
		}
		if n := rule.sweep(p, id); n > 0 {
			messages = append(messages, fmt.Sprintf("swept %s: %d reference(s) removed", rule.Swept, n))
		}
	}
	if n := clearAnnotationRefs(p, kind, id); n > 0 {
		messages = append(messages, fmt.Sprintf("cleared %d annotation reference(s) to %s %s", n, kind, id))
	}
	return messages
}

// clearAnnotationRefs blanks any chapter annotation referencing the deleted
// record. The annotation itself is kept; only the dangling reference goes.
func clearAnnotationRefs(p *project.Project, kind Kind, id string) int {
	n := 0
	for i := range p.Manuscript.Chapters {
		anns := p.Manuscript.Chapters[i].Annotations
		for j := range anns {
			if anns[j].ReferencedType == string(kind) && anns[j].ReferencedID == id {
				anns[j].ReferencedType = ""
				anns[j].ReferencedID = ""
				n++
			}
		}
	}
	return n
}

// Remove deletes the record with the given id from the kind's collection and
// runs the cascade rules. It reports whether a record was removed, plus the
// cascade messages.
func Remove(p *project.Project, kind Kind, id string) (bool, []string) {
	d, ok := Lookup(kind)
	if !ok {
		return false, nil
	}
	if !d.remove(p, id) {
		return false, nil
	}
	return true, Cascade(p, kind, id)
}
