package memora

import (
	"context"

	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
)

func (c *Client) ListDirectives(ctx context.Context, agentID types.AgentID, verbose bool) (*model.DirectivesResponse, error) {
	rc := call{op: OpListDirectives, segments: agentPath(agentID, "directives")}
	if err := agentID.Validate(); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid agent ID")
	}
	return invoke[model.DirectivesResponse](ctx, c, rc, verbose)
}

func (c *Client) GetDirective(ctx context.Context, agentID types.AgentID, directiveID types.DirectiveID, verbose bool) (*model.Directive, error) {
	rc := call{op: OpGetDirective, segments: agentPath(agentID, "directives", directiveID.String())}
	if err := validateIDs(agentID, directiveID); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid identifier")
	}
	return invoke[model.Directive](ctx, c, rc, verbose)
}

func (c *Client) CreateDirective(ctx context.Context, agentID types.AgentID, req model.CreateDirectiveRequest, verbose bool) (*model.Directive, error) {
	rc := call{op: OpCreateDirective, segments: agentPath(agentID, "directives"), body: req}
	if err := agentID.Validate(); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid agent ID")
	}
	return invoke[model.Directive](ctx, c, rc, verbose)
}

// UpdateDirective applies a partial update. A request with no field set is
// rejected locally.
func (c *Client) UpdateDirective(ctx context.Context, agentID types.AgentID, directiveID types.DirectiveID, req model.UpdateDirectiveRequest, verbose bool) (*model.Directive, error) {
	rc := call{op: OpUpdateDirective, segments: agentPath(agentID, "directives", directiveID.String()), body: req}
	if err := validateIDs(agentID, directiveID, &req); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid directive update")
	}
	return invoke[model.Directive](ctx, c, rc, verbose)
}

func (c *Client) DeleteDirective(ctx context.Context, agentID types.AgentID, directiveID types.DirectiveID, verbose bool) (*model.DeleteResponse, error) {
	rc := call{op: OpDeleteDirective, segments: agentPath(agentID, "directives", directiveID.String())}
	if err := validateIDs(agentID, directiveID); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid identifier")
	}
	return invoke[model.DeleteResponse](ctx, c, rc, verbose)
}
