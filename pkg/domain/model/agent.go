package model

import "github.com/secmon-lab/memora/pkg/domain/types"

// Agent is an addressable agent. The listing endpoint returns bare IDs, so
// this is built by the client rather than decoded.
type Agent struct {
	AgentID types.AgentID `json:"agent_id"`
}

// PersonalityTraits holds the six persona scalars. Values are expected in
// [0, 1] but only the server validates that. float32 is the declared
// precision, so values echoed by the server compare equal.
type PersonalityTraits struct {
	Openness          float32 `json:"openness"`
	Conscientiousness float32 `json:"conscientiousness"`
	Extraversion      float32 `json:"extraversion"`
	Agreeableness     float32 `json:"agreeableness"`
	Neuroticism       float32 `json:"neuroticism"`
	BiasStrength      float32 `json:"bias_strength"`
}

// UnmarshalJSON decodes PersonalityTraits, requiring all six traits
func (x *PersonalityTraits) UnmarshalJSON(data []byte) error {
	type alias PersonalityTraits
	var v alias
	if err := decodeStrict(data, &v, "PersonalityTraits",
		"openness", "conscientiousness", "extraversion",
		"agreeableness", "neuroticism", "bias_strength",
	); err != nil {
		return err
	}
	*x = PersonalityTraits(v)
	return nil
}

// AgentProfile is an agent's persona
type AgentProfile struct {
	AgentID     types.AgentID     `json:"agent_id"`
	Name        string            `json:"name"`
	Personality PersonalityTraits `json:"personality"`
	Background  string            `json:"background"`
}

// UnmarshalJSON decodes an AgentProfile, requiring all fields
func (x *AgentProfile) UnmarshalJSON(data []byte) error {
	type alias AgentProfile
	var v alias
	if err := decodeStrict(data, &v, "AgentProfile", "agent_id", "name", "personality", "background"); err != nil {
		return err
	}
	*x = AgentProfile(v)
	return nil
}

// UpdatePersonalityRequest replaces all six traits at once
type UpdatePersonalityRequest struct {
	Personality PersonalityTraits `json:"personality"`
}

// AddBackgroundRequest appends free text to the agent's background. When
// UpdatePersonality is set the server re-derives traits from it.
type AddBackgroundRequest struct {
	Content           string `json:"content"`
	UpdatePersonality bool   `json:"update_personality"`
}

// BackgroundResponse carries the merged background and, if they were
// re-derived, the new traits.
type BackgroundResponse struct {
	Background  string             `json:"background"`
	Personality *PersonalityTraits `json:"personality,omitempty"`
}

// UnmarshalJSON decodes a BackgroundResponse, requiring the background field
func (x *BackgroundResponse) UnmarshalJSON(data []byte) error {
	type alias BackgroundResponse
	var v alias
	if err := decodeStrict(data, &v, "BackgroundResponse", "background"); err != nil {
		return err
	}
	*x = BackgroundResponse(v)
	return nil
}

// AgentStats holds aggregate counters for one agent. Breakdown maps are keyed
// by category name and may be empty.
type AgentStats struct {
	AgentID           types.AgentID             `json:"agent_id"`
	TotalNodes        int                       `json:"total_nodes"`
	TotalLinks        int                       `json:"total_links"`
	TotalDocuments    int                       `json:"total_documents"`
	NodesByFactType   map[string]int            `json:"nodes_by_fact_type"`
	LinksByLinkType   map[string]int            `json:"links_by_link_type"`
	LinksByFactType   map[string]int            `json:"links_by_fact_type"`
	LinksBreakdown    map[string]map[string]int `json:"links_breakdown"`
	PendingOperations int                       `json:"pending_operations"`
	FailedOperations  int                       `json:"failed_operations"`
}

// UnmarshalJSON decodes AgentStats, requiring all fields
func (x *AgentStats) UnmarshalJSON(data []byte) error {
	type alias AgentStats
	var v alias
	if err := decodeStrict(data, &v, "AgentStats",
		"agent_id", "total_nodes", "total_links", "total_documents",
		"nodes_by_fact_type", "links_by_link_type", "links_by_fact_type",
		"links_breakdown", "pending_operations", "failed_operations",
	); err != nil {
		return err
	}
	*x = AgentStats(v)
	return nil
}
