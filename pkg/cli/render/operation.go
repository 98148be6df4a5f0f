package render

import (
	"github.com/fatih/color"
	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
)

func statusColor(s types.OperationStatus) *color.Color {
	switch s {
	case types.OperationStatusCompleted:
		return okColor
	case types.OperationStatusFailed:
		return errColor
	default:
		return warnColor
	}
}

// Operations writes the async operations of an agent
func (r *Renderer) Operations(resp *model.OperationsResponse) error {
	if r.IsJSON() {
		return r.JSON(resp)
	}

	p := r.printer()
	p.operations(resp)
	return p.done()
}

func (p *printer) operations(resp *model.OperationsResponse) {
	p.heading("%d operations for %s", len(resp.Operations), resp.AgentID)
	for _, op := range resp.Operations {
		p.printf("  %s %s %s (%d items, %s)\n",
			statusColor(op.Status).Sprintf("%-10s", op.Status),
			op.ID, op.TaskType, op.ItemsCount, op.CreatedAt)
		if op.DocumentID != nil {
			p.printf("    %s %s\n", labelColor.Sprint("document:"), *op.DocumentID)
		}
		if op.ErrorMessage != nil {
			p.printf("    %s %s\n", errColor.Sprint("error:"), *op.ErrorMessage)
		}
	}
}
