package model

import (
	"encoding/json"

	"github.com/secmon-lab/memora/pkg/domain/types"
)

// MemoryItem is one piece of content to ingest. A nil Context is sent as null.
type MemoryItem struct {
	Content string  `json:"content"`
	Context *string `json:"context"`
}

// BatchMemoryRequest groups items for ingestion, optionally under a document.
// An empty Items list is sent as is; the server decides the minimum.
type BatchMemoryRequest struct {
	Items      []MemoryItem      `json:"items"`
	DocumentID *types.DocumentID `json:"document_id"`
}

// MarshalJSON sends nil Items as an empty list, never null
func (x BatchMemoryRequest) MarshalJSON() ([]byte, error) {
	type alias BatchMemoryRequest
	v := alias(x)
	if v.Items == nil {
		v.Items = []MemoryItem{}
	}
	return json.Marshal(v)
}

// BatchMemoryResponse is the outcome of an ingestion. JobID is set only when
// the batch was submitted asynchronously.
type BatchMemoryResponse struct {
	Success     bool    `json:"success"`
	StoredCount *int    `json:"stored_count,omitempty"`
	Error       *string `json:"error,omitempty"`
	JobID       *string `json:"job_id,omitempty"`
}

// UnmarshalJSON decodes a BatchMemoryResponse, requiring the success flag
func (x *BatchMemoryResponse) UnmarshalJSON(data []byte) error {
	type alias BatchMemoryResponse
	var v alias
	if err := decodeStrict(data, &v, "BatchMemoryResponse", "success"); err != nil {
		return err
	}
	*x = BatchMemoryResponse(v)
	return nil
}

// DeleteResponse is the outcome of any deletion or cancellation
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UnmarshalJSON decodes a DeleteResponse, requiring all fields
func (x *DeleteResponse) UnmarshalJSON(data []byte) error {
	type alias DeleteResponse
	var v alias
	if err := decodeStrict(data, &v, "DeleteResponse", "success", "message"); err != nil {
		return err
	}
	*x = DeleteResponse(v)
	return nil
}
