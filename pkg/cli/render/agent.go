package render

import (
	"github.com/secmon-lab/memora/pkg/domain/model"
)

// Agents writes the agent listing
func (r *Renderer) Agents(agents []model.Agent) error {
	if r.IsJSON() {
		return r.JSON(agents)
	}

	p := r.printer()
	p.heading("%d agents", len(agents))
	for _, a := range agents {
		p.printf("  %s\n", a.AgentID)
	}
	return p.done()
}

func (p *printer) personality(t model.PersonalityTraits) {
	p.field("openness", formatTrait(t.Openness))
	p.field("conscientiousness", formatTrait(t.Conscientiousness))
	p.field("extraversion", formatTrait(t.Extraversion))
	p.field("agreeableness", formatTrait(t.Agreeableness))
	p.field("neuroticism", formatTrait(t.Neuroticism))
	p.field("bias strength", formatTrait(t.BiasStrength))
}

func formatTrait(v float32) string {
	const width = 20
	filled := int(v*width + 0.5)
	filled = max(0, min(width, filled))
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '.'
		}
	}
	return string(bar) + " " + formatFloat(v)
}

func formatFloat(v float32) string {
	return labelColor.Sprintf("%.2f", v)
}

// Profile writes an agent profile
func (r *Renderer) Profile(profile *model.AgentProfile) error {
	if r.IsJSON() {
		return r.JSON(profile)
	}

	p := r.printer()
	p.heading("%s (%s)", profile.Name, profile.AgentID)
	p.personality(profile.Personality)
	if profile.Background != "" {
		p.heading("Background")
		p.printf("%s\n", indent(profile.Background, "  "))
	}
	return p.done()
}

// Background writes the merged background after an update
func (r *Renderer) Background(resp *model.BackgroundResponse) error {
	if r.IsJSON() {
		return r.JSON(resp)
	}

	p := r.printer()
	p.heading("Background")
	p.printf("%s\n", indent(resp.Background, "  "))
	if resp.Personality != nil {
		p.heading("Updated personality")
		p.personality(*resp.Personality)
	}
	return p.done()
}

// Stats writes memory graph statistics
func (r *Renderer) Stats(stats *model.AgentStats) error {
	if r.IsJSON() {
		return r.JSON(stats)
	}

	p := r.printer()
	p.stats(stats)
	return p.done()
}

func (p *printer) stats(stats *model.AgentStats) {
	p.heading("Statistics for %s", stats.AgentID)
	p.field("nodes", stats.TotalNodes)
	p.field("links", stats.TotalLinks)
	p.field("documents", stats.TotalDocuments)
	p.field("pending operations", stats.PendingOperations)
	p.field("failed operations", stats.FailedOperations)

	p.counts("Nodes by fact type", stats.NodesByFactType)
	p.counts("Links by link type", stats.LinksByLinkType)
	p.counts("Links by fact type", stats.LinksByFactType)

	if len(stats.LinksBreakdown) > 0 {
		p.heading("Links breakdown")
		for _, ft := range sortedKeys(stats.LinksBreakdown) {
			p.printf("  %s\n", ft)
			inner := stats.LinksBreakdown[ft]
			for _, lt := range sortedKeys(inner) {
				p.printf("    %s %d\n", labelColor.Sprintf("%-18s", lt+":"), inner[lt])
			}
		}
	}
}

func (p *printer) counts(title string, m map[string]int) {
	if len(m) == 0 {
		return
	}
	p.heading("%s", title)
	for _, k := range sortedKeys(m) {
		p.field(k, m[k])
	}
}

// Overview is the combined view of one agent
type Overview struct {
	Profile    *model.AgentProfile       `json:"profile"`
	Stats      *model.AgentStats         `json:"stats"`
	Operations *model.OperationsResponse `json:"operations"`
}

// Overview writes profile, stats and pending operations together
func (r *Renderer) Overview(o *Overview) error {
	if r.IsJSON() {
		return r.JSON(o)
	}

	p := r.printer()
	p.heading("%s (%s)", o.Profile.Name, o.Profile.AgentID)
	p.personality(o.Profile.Personality)
	p.printf("\n")
	p.stats(o.Stats)
	p.printf("\n")
	p.operations(o.Operations)
	return p.done()
}
