package render

import (
	"strings"

	"github.com/secmon-lab/memora/pkg/domain/model"
)

// Directives writes the directive listing
func (r *Renderer) Directives(resp *model.DirectivesResponse) error {
	if r.IsJSON() {
		return r.JSON(resp)
	}

	p := r.printer()
	p.heading("%d directives", len(resp.Items))
	for _, d := range resp.Items {
		state := okColor.Sprint("active")
		if !d.IsActive {
			state = labelColor.Sprint("inactive")
		}
		p.printf("  [%d] %s %s (%s)\n", d.Priority, d.Name, labelColor.Sprint(d.ID), state)
	}
	return p.done()
}

// Directive writes one directive
func (r *Renderer) Directive(d *model.Directive) error {
	if r.IsJSON() {
		return r.JSON(d)
	}

	p := r.printer()
	p.heading("%s", d.Name)
	p.field("id", d.ID)
	p.field("priority", d.Priority)
	p.field("active", d.IsActive)
	if len(d.Tags) > 0 {
		p.field("tags", strings.Join(d.Tags, ", "))
	}
	if d.CreatedAt != nil {
		p.field("created", *d.CreatedAt)
	}
	if d.UpdatedAt != nil {
		p.field("updated", *d.UpdatedAt)
	}
	p.printf("\n%s\n", indent(d.Content, "  "))
	return p.done()
}
