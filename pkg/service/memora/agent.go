package memora

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
)

// ListAgents returns every agent known to the service. The endpoint answers
// with either an agents list or an error payload, both with status 200; the
// error payload is returned as a KindRemote *APIError whose Message holds the
// server's text.
func (c *Client) ListAgents(ctx context.Context, verbose bool) ([]model.Agent, error) {
	x, data, err := c.do(ctx, call{op: OpListAgents, segments: apiPath("agents")}, verbose)
	if err != nil {
		return nil, err
	}

	result, err := model.DecodeAgentsResponse(data)
	if err != nil {
		return nil, x.fail(KindDecode, err, "list agents: response is neither an agents list nor an error")
	}

	switch v := result.(type) {
	case model.AgentsSuccess:
		return v.Agents, nil
	case model.AgentsFailure:
		apiErr := x.fail(KindRemote, goerr.New(v.Message), "failed to list agents")
		apiErr.Message = v.Message
		return nil, apiErr
	default:
		return nil, x.fail(KindDecode, nil, "list agents: unexpected result variant")
	}
}

// GetProfile returns the agent's persona
func (c *Client) GetProfile(ctx context.Context, agentID types.AgentID, verbose bool) (*model.AgentProfile, error) {
	rc := call{op: OpGetProfile, segments: agentPath(agentID, "profile")}
	if err := agentID.Validate(); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid agent ID")
	}
	return invoke[model.AgentProfile](ctx, c, rc, verbose)
}

// UpdatePersonality replaces all six personality traits and returns the
// updated profile
func (c *Client) UpdatePersonality(ctx context.Context, agentID types.AgentID, traits model.PersonalityTraits, verbose bool) (*model.AgentProfile, error) {
	rc := call{
		op:       OpUpdatePersonality,
		segments: agentPath(agentID, "profile"),
		body:     model.UpdatePersonalityRequest{Personality: traits},
	}
	if err := agentID.Validate(); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid agent ID")
	}
	return invoke[model.AgentProfile](ctx, c, rc, verbose)
}

// AddBackground appends to the agent's background narrative
func (c *Client) AddBackground(ctx context.Context, agentID types.AgentID, req model.AddBackgroundRequest, verbose bool) (*model.BackgroundResponse, error) {
	rc := call{op: OpAddBackground, segments: agentPath(agentID, "background"), body: req}
	if err := agentID.Validate(); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid agent ID")
	}
	return invoke[model.BackgroundResponse](ctx, c, rc, verbose)
}

// GetStats returns aggregate counters for the agent
func (c *Client) GetStats(ctx context.Context, agentID types.AgentID, verbose bool) (*model.AgentStats, error) {
	rc := call{op: OpGetStats, segments: agentPath(agentID, "stats")}
	if err := agentID.Validate(); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid agent ID")
	}
	return invoke[model.AgentStats](ctx, c, rc, verbose)
}
