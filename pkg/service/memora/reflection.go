package memora

import (
	"context"

	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
)

func (c *Client) ListReflections(ctx context.Context, agentID types.AgentID, verbose bool) (*model.ReflectionsResponse, error) {
	rc := call{op: OpListReflections, segments: agentPath(agentID, "reflections")}
	if err := agentID.Validate(); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid agent ID")
	}
	return invoke[model.ReflectionsResponse](ctx, c, rc, verbose)
}

func (c *Client) GetReflection(ctx context.Context, agentID types.AgentID, reflectionID types.ReflectionID, verbose bool) (*model.Reflection, error) {
	rc := call{op: OpGetReflection, segments: agentPath(agentID, "reflections", reflectionID.String())}
	if err := validateIDs(agentID, reflectionID); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid identifier")
	}
	return invoke[model.Reflection](ctx, c, rc, verbose)
}

// CreateReflection starts generating a new reflection. The content is
// produced in the background by the returned operation.
func (c *Client) CreateReflection(ctx context.Context, agentID types.AgentID, req model.CreateReflectionRequest, verbose bool) (*model.ReflectionOperation, error) {
	rc := call{op: OpCreateReflection, segments: agentPath(agentID, "reflections"), body: req}
	if err := agentID.Validate(); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid agent ID")
	}
	return invoke[model.ReflectionOperation](ctx, c, rc, verbose)
}

// UpdateReflection renames a reflection. A request without a name is rejected
// locally.
func (c *Client) UpdateReflection(ctx context.Context, agentID types.AgentID, reflectionID types.ReflectionID, req model.UpdateReflectionRequest, verbose bool) (*model.Reflection, error) {
	rc := call{op: OpUpdateReflection, segments: agentPath(agentID, "reflections", reflectionID.String()), body: req}
	if err := validateIDs(agentID, reflectionID, &req); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid reflection update")
	}
	return invoke[model.Reflection](ctx, c, rc, verbose)
}

func (c *Client) DeleteReflection(ctx context.Context, agentID types.AgentID, reflectionID types.ReflectionID, verbose bool) (*model.DeleteResponse, error) {
	rc := call{op: OpDeleteReflection, segments: agentPath(agentID, "reflections", reflectionID.String())}
	if err := validateIDs(agentID, reflectionID); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid identifier")
	}
	return invoke[model.DeleteResponse](ctx, c, rc, verbose)
}

// RefreshReflection regenerates the reflection content from current memories
func (c *Client) RefreshReflection(ctx context.Context, agentID types.AgentID, reflectionID types.ReflectionID, verbose bool) (*model.ReflectionOperation, error) {
	rc := call{op: OpRefreshReflection, segments: agentPath(agentID, "reflections", reflectionID.String(), "refresh")}
	if err := validateIDs(agentID, reflectionID); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid identifier")
	}
	return invoke[model.ReflectionOperation](ctx, c, rc, verbose)
}
