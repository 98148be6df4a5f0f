package memora

import (
	"context"

	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
)

// ListOperations returns the agent's asynchronous operations
func (c *Client) ListOperations(ctx context.Context, agentID types.AgentID, verbose bool) (*model.OperationsResponse, error) {
	rc := call{op: OpListOperations, segments: agentPath(agentID, "operations")}
	if err := agentID.Validate(); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid agent ID")
	}
	return invoke[model.OperationsResponse](ctx, c, rc, verbose)
}

// CancelOperation cancels a pending operation
func (c *Client) CancelOperation(ctx context.Context, agentID types.AgentID, operationID types.OperationID, verbose bool) (*model.DeleteResponse, error) {
	rc := call{op: OpCancelOperation, segments: agentPath(agentID, "operations", operationID.String())}
	if err := validateIDs(agentID, operationID); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid identifier")
	}
	return invoke[model.DeleteResponse](ctx, c, rc, verbose)
}
