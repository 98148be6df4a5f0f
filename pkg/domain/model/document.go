package model

import "github.com/secmon-lab/memora/pkg/domain/types"

// Document is a stored text artifact. Timestamps are kept in the server's
// string form.
type Document struct {
	ID              types.DocumentID `json:"id"`
	AgentID         types.AgentID    `json:"agent_id"`
	ContentHash     *string          `json:"content_hash,omitempty"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
	TextLength      int              `json:"text_length"`
	MemoryUnitCount int              `json:"memory_unit_count"`
}

// UnmarshalJSON decodes a Document, requiring every non-optional field
func (x *Document) UnmarshalJSON(data []byte) error {
	type alias Document
	var v alias
	if err := decodeStrict(data, &v, "Document",
		"id", "agent_id", "created_at", "updated_at", "text_length", "memory_unit_count",
	); err != nil {
		return err
	}
	*x = Document(v)
	return nil
}

// DocumentDetails is a Document plus its full original text
type DocumentDetails struct {
	ID              types.DocumentID `json:"id"`
	AgentID         types.AgentID    `json:"agent_id"`
	OriginalText    string           `json:"original_text"`
	ContentHash     *string          `json:"content_hash,omitempty"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
	MemoryUnitCount int              `json:"memory_unit_count"`
}

// UnmarshalJSON decodes DocumentDetails, requiring every non-optional field
func (x *DocumentDetails) UnmarshalJSON(data []byte) error {
	type alias DocumentDetails
	var v alias
	if err := decodeStrict(data, &v, "DocumentDetails",
		"id", "agent_id", "original_text", "created_at", "updated_at", "memory_unit_count",
	); err != nil {
		return err
	}
	*x = DocumentDetails(v)
	return nil
}

// DocumentsResponse is one page of documents
type DocumentsResponse struct {
	Items  []Document `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

// UnmarshalJSON decodes a DocumentsResponse, requiring all fields
func (x *DocumentsResponse) UnmarshalJSON(data []byte) error {
	type alias DocumentsResponse
	var v alias
	if err := decodeStrict(data, &v, "DocumentsResponse", "items", "total", "limit", "offset"); err != nil {
		return err
	}
	*x = DocumentsResponse(v)
	return nil
}

// ListDocumentsQuery filters a document listing. Nil fields are left out of
// the query string entirely.
type ListDocumentsQuery struct {
	Query  *string
	Limit  *int
	Offset *int
}
