package model

import (
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/domain/types"
)

// DefaultReflectionMaxTokens is the generation budget used when a reflection
// is created without an explicit one
const DefaultReflectionMaxTokens = 2048

// Reflection is a standing summary the server regenerates from the memories
// matching SourceQuery. Content is empty until the first generation finishes.
type Reflection struct {
	ID              types.ReflectionID `json:"id"`
	Name            string             `json:"name"`
	SourceQuery     string             `json:"source_query"`
	Content         string             `json:"content"`
	Tags            []string           `json:"tags,omitempty"`
	CreatedAt       *string            `json:"created_at,omitempty"`
	LastRefreshedAt *string            `json:"last_refreshed_at,omitempty"`
}

// UnmarshalJSON decodes a Reflection, requiring id, name and source_query
func (x *Reflection) UnmarshalJSON(data []byte) error {
	type alias Reflection
	var v alias
	if err := decodeStrict(data, &v, "Reflection", "id", "name", "source_query"); err != nil {
		return err
	}
	*x = Reflection(v)
	return nil
}

// ReflectionsResponse lists the reflections of one agent
type ReflectionsResponse struct {
	Items []Reflection `json:"items"`
}

// UnmarshalJSON decodes a ReflectionsResponse, requiring the items field
func (x *ReflectionsResponse) UnmarshalJSON(data []byte) error {
	type alias ReflectionsResponse
	var v alias
	if err := decodeStrict(data, &v, "ReflectionsResponse", "items"); err != nil {
		return err
	}
	*x = ReflectionsResponse(v)
	return nil
}

// CreateReflectionRequest is the body for creating a reflection
type CreateReflectionRequest struct {
	Name        string   `json:"name"`
	SourceQuery string   `json:"source_query"`
	MaxTokens   int      `json:"max_tokens"`
	Tags        []string `json:"tags"`
}

// MarshalJSON sends nil Tags as an empty list and a zero MaxTokens as the
// default budget
func (x CreateReflectionRequest) MarshalJSON() ([]byte, error) {
	type alias CreateReflectionRequest
	v := alias(x)
	if v.Tags == nil {
		v.Tags = []string{}
	}
	if v.MaxTokens == 0 {
		v.MaxTokens = DefaultReflectionMaxTokens
	}
	return json.Marshal(v)
}

// UpdateReflectionRequest renames a reflection. Name is the only mutable field.
type UpdateReflectionRequest struct {
	Name *string `json:"name,omitempty"`
}

// Validate rejects an update without a non-blank name
func (x *UpdateReflectionRequest) Validate() error {
	if x.Name == nil {
		return goerr.Wrap(ErrNoFieldsToUpdate, "reflection update requires a name")
	}
	if strings.TrimSpace(*x.Name) == "" {
		return goerr.Wrap(ErrNoFieldsToUpdate, "reflection name cannot be blank", goerr.V(FieldKey, "name"))
	}
	return nil
}

// ReflectionOperation is the background job started by creating or
// refreshing a reflection. Status is only reported by refresh.
type ReflectionOperation struct {
	OperationID types.OperationID      `json:"operation_id"`
	Status      *types.OperationStatus `json:"status,omitempty"`
}

// UnmarshalJSON decodes a ReflectionOperation, requiring operation_id
func (x *ReflectionOperation) UnmarshalJSON(data []byte) error {
	type alias ReflectionOperation
	var v alias
	if err := decodeStrict(data, &v, "ReflectionOperation", "operation_id"); err != nil {
		return err
	}
	*x = ReflectionOperation(v)
	return nil
}
