package memora

import (
	"net/http"
	"time"
)

// Per-call timeout budgets. Search, reasoning and batch ingestion make the
// server do expensive work, so they get the longest budget.
const (
	ReadTimeout    = 30 * time.Second
	WriteTimeout   = 60 * time.Second
	ComputeTimeout = 120 * time.Second

	// DefaultTimeout is the client construction budget and the fallback for
	// an operation missing from the timeout table.
	DefaultTimeout = WriteTimeout
)

// Operation names one remote capability of the service
type Operation string

const (
	OpSearch            Operation = "search"
	OpThink             Operation = "think"
	OpPutMemories       Operation = "put_memories"
	OpPutMemoriesAsync  Operation = "put_memories_async"
	OpDeleteMemory      Operation = "delete_memory"
	OpListAgents        Operation = "list_agents"
	OpGetProfile        Operation = "get_profile"
	OpUpdatePersonality Operation = "update_personality"
	OpAddBackground     Operation = "add_background"
	OpGetStats          Operation = "get_stats"
	OpListDocuments     Operation = "list_documents"
	OpGetDocument       Operation = "get_document"
	OpDeleteDocument    Operation = "delete_document"
	OpListOperations    Operation = "list_operations"
	OpCancelOperation   Operation = "cancel_operation"
	OpListDirectives    Operation = "list_directives"
	OpGetDirective      Operation = "get_directive"
	OpCreateDirective   Operation = "create_directive"
	OpUpdateDirective   Operation = "update_directive"
	OpDeleteDirective   Operation = "delete_directive"
	OpListReflections   Operation = "list_reflections"
	OpGetReflection     Operation = "get_reflection"
	OpCreateReflection  Operation = "create_reflection"
	OpUpdateReflection  Operation = "update_reflection"
	OpDeleteReflection  Operation = "delete_reflection"
	OpRefreshReflection Operation = "refresh_reflection"
)

type operationSpec struct {
	method  string
	timeout time.Duration
}

var operationSpecs = map[Operation]operationSpec{
	OpSearch:            {http.MethodPost, ComputeTimeout},
	OpThink:             {http.MethodPost, ComputeTimeout},
	OpPutMemories:       {http.MethodPost, ComputeTimeout},
	OpPutMemoriesAsync:  {http.MethodPost, ComputeTimeout},
	OpDeleteMemory:      {http.MethodDelete, ReadTimeout},
	OpListAgents:        {http.MethodGet, ReadTimeout},
	OpGetProfile:        {http.MethodGet, ReadTimeout},
	OpUpdatePersonality: {http.MethodPut, ReadTimeout},
	OpAddBackground:     {http.MethodPost, WriteTimeout},
	OpGetStats:          {http.MethodGet, ReadTimeout},
	OpListDocuments:     {http.MethodGet, ReadTimeout},
	OpGetDocument:       {http.MethodGet, ReadTimeout},
	OpDeleteDocument:    {http.MethodDelete, ReadTimeout},
	OpListOperations:    {http.MethodGet, ReadTimeout},
	OpCancelOperation:   {http.MethodDelete, ReadTimeout},
	OpListDirectives:    {http.MethodGet, ReadTimeout},
	OpGetDirective:      {http.MethodGet, ReadTimeout},
	OpCreateDirective:   {http.MethodPost, WriteTimeout},
	OpUpdateDirective:   {http.MethodPatch, WriteTimeout},
	OpDeleteDirective:   {http.MethodDelete, ReadTimeout},
	OpListReflections:   {http.MethodGet, ReadTimeout},
	OpGetReflection:     {http.MethodGet, ReadTimeout},
	OpCreateReflection:  {http.MethodPost, WriteTimeout},
	OpUpdateReflection:  {http.MethodPatch, WriteTimeout},
	OpDeleteReflection:  {http.MethodDelete, ReadTimeout},
	OpRefreshReflection: {http.MethodPost, WriteTimeout},
}

// AllOperations returns every operation the client implements
func AllOperations() []Operation {
	ops := make([]Operation, 0, len(operationSpecs))
	for op := range operationSpecs {
		ops = append(ops, op)
	}
	return ops
}

// Method returns the HTTP method of the operation
func (op Operation) Method() string {
	if spec, ok := operationSpecs[op]; ok {
		return spec.method
	}
	return http.MethodGet
}

// Timeout returns the documented budget of the operation
func (op Operation) Timeout() time.Duration {
	if spec, ok := operationSpecs[op]; ok {
		return spec.timeout
	}
	return DefaultTimeout
}

// String returns the string representation of the operation
func (op Operation) String() string {
	return string(op)
}
