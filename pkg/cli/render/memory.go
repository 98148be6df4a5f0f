package render

import (
	"strings"

	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
)

func factTypeLabel(ft *types.FactType) string {
	if ft == nil {
		return "fact"
	}
	return ft.String()
}

func (p *printer) fact(i int, f model.Fact) {
	p.printf("%d. [%s] %s\n", i+1, factTypeLabel(f.FactType), f.Text)
	if f.ID != nil {
		p.printf("   %s %s\n", labelColor.Sprint("id:"), *f.ID)
	}
	if f.Activation != nil {
		p.printf("   %s %.3f\n", labelColor.Sprint("activation:"), *f.Activation)
	}
	if f.Context != nil && *f.Context != "" {
		p.printf("   %s %s\n", labelColor.Sprint("context:"), *f.Context)
	}
	if f.EventDate != nil {
		p.printf("   %s %s\n", labelColor.Sprint("event date:"), *f.EventDate)
	}
}

// Search writes search results
func (r *Renderer) Search(resp *model.SearchResponse) error {
	if r.IsJSON() {
		return r.JSON(resp)
	}

	p := r.printer()
	p.heading("Found %d facts", len(resp.Results))
	for i, f := range resp.Results {
		p.fact(i, f)
	}
	if resp.Trace != nil {
		p.heading("Trace")
		if resp.Trace.TotalTime != nil {
			p.field("total time", *resp.Trace.TotalTime)
		}
		if resp.Trace.ActivationCount != nil {
			p.field("activation count", *resp.Trace.ActivationCount)
		}
	}
	return p.done()
}

// Think writes the generated answer and its supporting facts
func (r *Renderer) Think(resp *model.ThinkResponse) error {
	if r.IsJSON() {
		return r.JSON(resp)
	}

	p := r.printer()
	p.printf("%s\n\n", strings.TrimSpace(resp.Text))
	if len(resp.BasedOn) > 0 {
		p.heading("Based on %d facts", len(resp.BasedOn))
		for i, f := range resp.BasedOn {
			p.fact(i, f)
		}
	}
	if len(resp.NewOpinions) > 0 {
		p.heading("New opinions")
		for _, o := range resp.NewOpinions {
			p.printf("  - %s\n", o)
		}
	}
	return p.done()
}

// PutMemories writes the outcome of a batch store
func (r *Renderer) PutMemories(resp *model.BatchMemoryResponse) error {
	if r.IsJSON() {
		return r.JSON(resp)
	}

	p := r.printer()
	if !resp.Success {
		p.printf("%s %s\n", errColor.Sprint("Failed to store memories:"), deref(resp.Error, "unknown error"))
		return p.done()
	}

	switch {
	case resp.JobID != nil:
		p.printf("%s job %s\n", okColor.Sprint("Queued"), *resp.JobID)
	case resp.StoredCount != nil:
		p.printf("%s %d memories\n", okColor.Sprint("Stored"), *resp.StoredCount)
	default:
		p.printf("%s\n", okColor.Sprint("Stored"))
	}
	return p.done()
}

// Deleted writes the outcome of any delete or cancel call
func (r *Renderer) Deleted(resp *model.DeleteResponse) error {
	if r.IsJSON() {
		return r.JSON(resp)
	}

	p := r.printer()
	if resp.Success {
		p.printf("%s %s\n", okColor.Sprint("OK"), resp.Message)
	} else {
		p.printf("%s %s\n", warnColor.Sprint("NOT DONE"), resp.Message)
	}
	return p.done()
}
