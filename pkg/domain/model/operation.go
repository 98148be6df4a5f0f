package model

import "github.com/secmon-lab/memora/pkg/domain/types"

// Operation is a server-tracked unit of asynchronous work
type Operation struct {
	ID           types.OperationID     `json:"id"`
	TaskType     string                `json:"task_type"`
	ItemsCount   int                   `json:"items_count"`
	DocumentID   *types.DocumentID     `json:"document_id,omitempty"`
	CreatedAt    string                `json:"created_at"`
	Status       types.OperationStatus `json:"status"`
	ErrorMessage *string               `json:"error_message,omitempty"`
}

// UnmarshalJSON decodes an Operation, requiring every non-optional field
func (x *Operation) UnmarshalJSON(data []byte) error {
	type alias Operation
	var v alias
	if err := decodeStrict(data, &v, "Operation",
		"id", "task_type", "items_count", "created_at", "status",
	); err != nil {
		return err
	}
	*x = Operation(v)
	return nil
}

// OperationsResponse lists the operations of one agent
type OperationsResponse struct {
	AgentID    types.AgentID `json:"agent_id"`
	Operations []Operation   `json:"operations"`
}

// UnmarshalJSON decodes an OperationsResponse, requiring all fields
func (x *OperationsResponse) UnmarshalJSON(data []byte) error {
	type alias OperationsResponse
	var v alias
	if err := decodeStrict(data, &v, "OperationsResponse", "agent_id", "operations"); err != nil {
		return err
	}
	*x = OperationsResponse(v)
	return nil
}
