package model

import (
	"encoding/json"

	"github.com/secmon-lab/memora/pkg/domain/types"
)

// Fact is a single memory unit returned by a search. Only Text is guaranteed;
// older servers omit the rest.
type Fact struct {
	ID         *string         `json:"id,omitempty"`
	Text       string          `json:"text"`
	FactType   *types.FactType `json:"type,omitempty"` // "type" on the wire
	Activation *float64        `json:"activation,omitempty"`
	Context    *string         `json:"context,omitempty"`
	EventDate  *string         `json:"event_date,omitempty"`
}

// UnmarshalJSON decodes a Fact, requiring the text field
func (x *Fact) UnmarshalJSON(data []byte) error {
	type alias Fact
	var v alias
	if err := decodeStrict(data, &v, "Fact", "text"); err != nil {
		return err
	}
	*x = Fact(v)
	return nil
}

// TraceInfo is diagnostic timing metadata attached to a search response
type TraceInfo struct {
	TotalTime       *float64 `json:"total_time,omitempty"`
	ActivationCount *int     `json:"activation_count,omitempty"`
}

// SearchRequest is the body of a memory search
type SearchRequest struct {
	Query          string           `json:"query"`
	FactType       []types.FactType `json:"fact_type"`
	ThinkingBudget int              `json:"thinking_budget"`
	MaxTokens      int              `json:"max_tokens"`
	Trace          bool             `json:"trace"`
}

// MarshalJSON sends a nil FactType as an empty list, never null
func (x SearchRequest) MarshalJSON() ([]byte, error) {
	type alias SearchRequest
	v := alias(x)
	if v.FactType == nil {
		v.FactType = []types.FactType{}
	}
	return json.Marshal(v)
}

// SearchResponse is the result of a memory search. Results are ordered by
// relevance as decided by the server. Trace is set only when requested.
type SearchResponse struct {
	Results []Fact     `json:"results"`
	Trace   *TraceInfo `json:"trace,omitempty"`
}

// UnmarshalJSON decodes a SearchResponse, requiring the results field
func (x *SearchResponse) UnmarshalJSON(data []byte) error {
	type alias SearchResponse
	var v alias
	if err := decodeStrict(data, &v, "SearchResponse", "results"); err != nil {
		return err
	}
	*x = SearchResponse(v)
	return nil
}

// ThinkRequest is the body of a reasoning query
type ThinkRequest struct {
	Query          string  `json:"query"`
	ThinkingBudget int     `json:"thinking_budget"`
	Context        *string `json:"context,omitempty"`
}

// ThinkResponse is the answer of a reasoning query with the facts it used and
// the opinions formed while answering. BasedOn may be empty.
type ThinkResponse struct {
	Text        string   `json:"text"`
	BasedOn     []Fact   `json:"based_on"`
	NewOpinions []string `json:"new_opinions"`
}

// UnmarshalJSON decodes a ThinkResponse, requiring all fields
func (x *ThinkResponse) UnmarshalJSON(data []byte) error {
	type alias ThinkResponse
	var v alias
	if err := decodeStrict(data, &v, "ThinkResponse", "text", "based_on", "new_opinions"); err != nil {
		return err
	}
	*x = ThinkResponse(v)
	return nil
}
