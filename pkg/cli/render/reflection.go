package render

import (
	"strings"

	"github.com/secmon-lab/memora/pkg/domain/model"
)

// Reflections writes the reflection listing
func (r *Renderer) Reflections(resp *model.ReflectionsResponse) error {
	if r.IsJSON() {
		return r.JSON(resp)
	}

	p := r.printer()
	p.heading("%d reflections", len(resp.Items))
	for _, x := range resp.Items {
		p.printf("  %s %s\n", x.Name, labelColor.Sprint(x.ID))
		p.printf("    %s %s\n", labelColor.Sprint("source query:"), x.SourceQuery)
	}
	return p.done()
}

// Reflection writes one reflection with its generated content
func (r *Renderer) Reflection(x *model.Reflection) error {
	if r.IsJSON() {
		return r.JSON(x)
	}

	p := r.printer()
	p.heading("%s", x.Name)
	p.field("id", x.ID)
	p.field("source query", x.SourceQuery)
	if len(x.Tags) > 0 {
		p.field("tags", strings.Join(x.Tags, ", "))
	}
	if x.CreatedAt != nil {
		p.field("created", *x.CreatedAt)
	}
	if x.LastRefreshedAt != nil {
		p.field("refreshed", *x.LastRefreshedAt)
	}
	if x.Content == "" {
		p.printf("\n  %s\n", warnColor.Sprint("(not generated yet)"))
	} else {
		p.printf("\n%s\n", indent(x.Content, "  "))
	}
	return p.done()
}

// ReflectionOperation writes the background job started for a reflection
func (r *Renderer) ReflectionOperation(verb string, op *model.ReflectionOperation) error {
	if r.IsJSON() {
		return r.JSON(op)
	}

	p := r.printer()
	p.printf("%s operation %s\n", okColor.Sprint(verb), op.OperationID)
	if op.Status != nil {
		p.field("status", statusColor(*op.Status).Sprint(*op.Status))
	}
	return p.done()
}
