package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/domain/types"
)

// Directive is a user-defined rule the server injects into the agent's
// prompts. Higher Priority is injected first.
type Directive struct {
	ID        types.DirectiveID `json:"id"`
	AgentID   types.AgentID     `json:"agent_id,omitempty"`
	Name      string            `json:"name"`
	Content   string            `json:"content"`
	Priority  int               `json:"priority"`
	IsActive  bool              `json:"is_active"`
	Tags      []string          `json:"tags,omitempty"`
	CreatedAt *string           `json:"created_at,omitempty"`
	UpdatedAt *string           `json:"updated_at,omitempty"`
}

// UnmarshalJSON decodes a Directive, requiring id, name and content
func (x *Directive) UnmarshalJSON(data []byte) error {
	type alias Directive
	// is_active defaults to true on the server
	v := alias{IsActive: true}
	if err := decodeStrict(data, &v, "Directive", "id", "name", "content"); err != nil {
		return err
	}
	*x = Directive(v)
	return nil
}

// DirectivesResponse lists the directives of one agent
type DirectivesResponse struct {
	Items []Directive `json:"items"`
}

// UnmarshalJSON decodes a DirectivesResponse, requiring the items field
func (x *DirectivesResponse) UnmarshalJSON(data []byte) error {
	type alias DirectivesResponse
	var v alias
	if err := decodeStrict(data, &v, "DirectivesResponse", "items"); err != nil {
		return err
	}
	*x = DirectivesResponse(v)
	return nil
}

// CreateDirectiveRequest is the body for creating a directive
type CreateDirectiveRequest struct {
	Name     string   `json:"name"`
	Content  string   `json:"content"`
	Priority int      `json:"priority"`
	IsActive bool     `json:"is_active"`
	Tags     []string `json:"tags"`
}

// MarshalJSON sends nil Tags as an empty list, never null
func (x CreateDirectiveRequest) MarshalJSON() ([]byte, error) {
	type alias CreateDirectiveRequest
	v := alias(x)
	if v.Tags == nil {
		v.Tags = []string{}
	}
	return json.Marshal(v)
}

// UpdateDirectiveRequest is a partial update. Nil fields are not sent.
type UpdateDirectiveRequest struct {
	Name     *string   `json:"name,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Priority *int      `json:"priority,omitempty"`
	IsActive *bool     `json:"is_active,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
}

// Validate rejects an update that would change nothing
func (x *UpdateDirectiveRequest) Validate() error {
	if x.Name == nil && x.Content == nil && x.Priority == nil && x.IsActive == nil && x.Tags == nil {
		return goerr.Wrap(ErrNoFieldsToUpdate, "directive update has no fields set")
	}
	return nil
}
