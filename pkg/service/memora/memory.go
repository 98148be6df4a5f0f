package memora

import (
	"context"

	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
)

func agentPath(agentID types.AgentID, segments ...string) []string {
	return apiPath(append([]string{"agents", agentID.String()}, segments...)...)
}

// Search retrieves facts relevant to the query
func (c *Client) Search(ctx context.Context, agentID types.AgentID, req model.SearchRequest, verbose bool) (*model.SearchResponse, error) {
	rc := call{op: OpSearch, segments: agentPath(agentID, "memories", "search"), body: req}
	if err := agentID.Validate(); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid agent ID")
	}
	return invoke[model.SearchResponse](ctx, c, rc, verbose)
}

// Think runs a reasoning query over the agent's memories
func (c *Client) Think(ctx context.Context, agentID types.AgentID, req model.ThinkRequest, verbose bool) (*model.ThinkResponse, error) {
	rc := call{op: OpThink, segments: agentPath(agentID, "think"), body: req}
	if err := agentID.Validate(); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid agent ID")
	}
	return invoke[model.ThinkResponse](ctx, c, rc, verbose)
}

// PutMemories ingests a batch of items. With async the server queues the
// batch and the response carries a job ID.
func (c *Client) PutMemories(ctx context.Context, agentID types.AgentID, req model.BatchMemoryRequest, async, verbose bool) (*model.BatchMemoryResponse, error) {
	rc := call{op: OpPutMemories, segments: agentPath(agentID, "memories"), body: req}
	if async {
		rc = call{op: OpPutMemoriesAsync, segments: agentPath(agentID, "memories", "async"), body: req}
	}
	if err := agentID.Validate(); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid agent ID")
	}
	return invoke[model.BatchMemoryResponse](ctx, c, rc, verbose)
}

// DeleteMemory deletes one memory unit
func (c *Client) DeleteMemory(ctx context.Context, agentID types.AgentID, unitID types.UnitID, verbose bool) (*model.DeleteResponse, error) {
	rc := call{op: OpDeleteMemory, segments: agentPath(agentID, "memories", unitID.String())}
	if err := validateIDs(agentID, unitID); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid identifier")
	}
	return invoke[model.DeleteResponse](ctx, c, rc, verbose)
}

type validator interface {
	Validate() error
}

func validateIDs(ids ...validator) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	return nil
}
