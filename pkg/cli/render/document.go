package render

import (
	"text/tabwriter"

	"github.com/secmon-lab/memora/pkg/domain/model"
)

// Documents writes a page of documents
func (r *Renderer) Documents(resp *model.DocumentsResponse) error {
	if r.IsJSON() {
		return r.JSON(resp)
	}

	p := r.printer()
	p.heading("Documents %d-%d of %d", resp.Offset+min(1, len(resp.Items)), resp.Offset+len(resp.Items), resp.Total)
	if len(resp.Items) == 0 {
		return p.done()
	}

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	tp := &printer{w: tw, err: p.err}
	tp.printf("ID\tUNITS\tLENGTH\tUPDATED\n")
	for _, d := range resp.Items {
		tp.printf("%s\t%d\t%d\t%s\n", d.ID, d.MemoryUnitCount, d.TextLength, d.UpdatedAt)
	}
	if tp.err == nil {
		tp.err = tw.Flush()
	}
	return tp.done()
}

// Document writes one document with its text
func (r *Renderer) Document(doc *model.DocumentDetails) error {
	if r.IsJSON() {
		return r.JSON(doc)
	}

	p := r.printer()
	p.heading("Document %s", doc.ID)
	p.field("agent", doc.AgentID)
	p.field("memory units", doc.MemoryUnitCount)
	p.field("created", doc.CreatedAt)
	p.field("updated", doc.UpdatedAt)
	if doc.ContentHash != nil {
		p.field("content hash", *doc.ContentHash)
	}
	p.printf("\n%s\n", doc.OriginalText)
	return p.done()
}
