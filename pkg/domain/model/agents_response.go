package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/domain/types"
)

// AgentsResult is the outcome of the agents listing endpoint. The server
// sends either a success or a failure payload with no discriminant field, so
// DecodeAgentsResponse picks the variant from the field set. Exactly one of
// AgentsSuccess or AgentsFailure is ever returned.
type AgentsResult interface {
	agentsResult()
}

// AgentsSuccess is the `{"agents": [...]}` variant
type AgentsSuccess struct {
	Agents []Agent
}

// AgentsFailure is the `{"error": "..."}` variant
type AgentsFailure struct {
	Message string
}

func (AgentsSuccess) agentsResult() {}
func (AgentsFailure) agentsResult() {}

type agentsShape func(raw map[string]json.RawMessage) (AgentsResult, bool)

// agentsShapes is tried in order; the first match wins. A payload carrying
// both fields is therefore a success.
var agentsShapes = []agentsShape{
	matchAgentsSuccess,
	matchAgentsFailure,
}

func matchAgentsSuccess(raw map[string]json.RawMessage) (AgentsResult, bool) {
	field, ok := raw["agents"]
	if !ok {
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal(field, &ids); err != nil || ids == nil {
		return nil, false
	}

	agents := make([]Agent, len(ids))
	for i, id := range ids {
		agents[i] = Agent{AgentID: types.AgentID(id)}
	}
	return AgentsSuccess{Agents: agents}, true
}

func matchAgentsFailure(raw map[string]json.RawMessage) (AgentsResult, bool) {
	field, ok := raw["error"]
	if !ok {
		return nil, false
	}

	var msg *string
	if err := json.Unmarshal(field, &msg); err != nil || msg == nil {
		return nil, false
	}
	return AgentsFailure{Message: *msg}, true
}

// DecodeAgentsResponse resolves an agents listing payload into a definite
// variant. It returns ErrUnknownResponseShape when no shape matches.
func DecodeAgentsResponse(data []byte) (AgentsResult, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, goerr.Wrap(ErrUnknownResponseShape, "agents response is not a JSON object",
			goerr.V(EndpointKey, "list agents"),
			goerr.V("cause", err.Error()))
	}

	for _, match := range agentsShapes {
		if result, ok := match(raw); ok {
			return result, nil
		}
	}

	return nil, goerr.Wrap(ErrUnknownResponseShape, "agents response matches neither success nor failure shape",
		goerr.V(EndpointKey, "list agents"))
}
