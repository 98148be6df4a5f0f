package interfaces

import (
	"context"

	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
)

// MemoraClient is the surface of the memory agent service consumed by CLI
// commands. Every method issues exactly one request; a non-nil error is a
// *memora.APIError carrying the request and response context.
type MemoraClient interface {
	// Search retrieves facts relevant to the query, ordered by relevance
	Search(ctx context.Context, agentID types.AgentID, req model.SearchRequest, verbose bool) (*model.SearchResponse, error)

	// Think runs a reasoning query over the agent's memories
	Think(ctx context.Context, agentID types.AgentID, req model.ThinkRequest, verbose bool) (*model.ThinkResponse, error)

	// PutMemories ingests a batch. When async is set the server queues the
	// batch and returns a job ID.
	PutMemories(ctx context.Context, agentID types.AgentID, req model.BatchMemoryRequest, async, verbose bool) (*model.BatchMemoryResponse, error)

	// DeleteMemory deletes one memory unit
	DeleteMemory(ctx context.Context, agentID types.AgentID, unitID types.UnitID, verbose bool) (*model.DeleteResponse, error)

	ListAgents(ctx context.Context, verbose bool) ([]model.Agent, error)
	GetProfile(ctx context.Context, agentID types.AgentID, verbose bool) (*model.AgentProfile, error)
	UpdatePersonality(ctx context.Context, agentID types.AgentID, traits model.PersonalityTraits, verbose bool) (*model.AgentProfile, error)
	AddBackground(ctx context.Context, agentID types.AgentID, req model.AddBackgroundRequest, verbose bool) (*model.BackgroundResponse, error)
	GetStats(ctx context.Context, agentID types.AgentID, verbose bool) (*model.AgentStats, error)

	ListDocuments(ctx context.Context, agentID types.AgentID, query model.ListDocumentsQuery, verbose bool) (*model.DocumentsResponse, error)
	GetDocument(ctx context.Context, agentID types.AgentID, documentID types.DocumentID, verbose bool) (*model.DocumentDetails, error)
	DeleteDocument(ctx context.Context, agentID types.AgentID, documentID types.DocumentID, verbose bool) (*model.DeleteResponse, error)

	ListOperations(ctx context.Context, agentID types.AgentID, verbose bool) (*model.OperationsResponse, error)
	CancelOperation(ctx context.Context, agentID types.AgentID, operationID types.OperationID, verbose bool) (*model.DeleteResponse, error)

	ListDirectives(ctx context.Context, agentID types.AgentID, verbose bool) (*model.DirectivesResponse, error)
	GetDirective(ctx context.Context, agentID types.AgentID, directiveID types.DirectiveID, verbose bool) (*model.Directive, error)
	CreateDirective(ctx context.Context, agentID types.AgentID, req model.CreateDirectiveRequest, verbose bool) (*model.Directive, error)
	// UpdateDirective rejects a request with no fields set before any network call
	UpdateDirective(ctx context.Context, agentID types.AgentID, directiveID types.DirectiveID, req model.UpdateDirectiveRequest, verbose bool) (*model.Directive, error)
	DeleteDirective(ctx context.Context, agentID types.AgentID, directiveID types.DirectiveID, verbose bool) (*model.DeleteResponse, error)

	ListReflections(ctx context.Context, agentID types.AgentID, verbose bool) (*model.ReflectionsResponse, error)
	GetReflection(ctx context.Context, agentID types.AgentID, reflectionID types.ReflectionID, verbose bool) (*model.Reflection, error)
	// CreateReflection and RefreshReflection return the background operation
	// that generates the content
	CreateReflection(ctx context.Context, agentID types.AgentID, req model.CreateReflectionRequest, verbose bool) (*model.ReflectionOperation, error)
	// UpdateReflection rejects a request without a name before any network call
	UpdateReflection(ctx context.Context, agentID types.AgentID, reflectionID types.ReflectionID, req model.UpdateReflectionRequest, verbose bool) (*model.Reflection, error)
	DeleteReflection(ctx context.Context, agentID types.AgentID, reflectionID types.ReflectionID, verbose bool) (*model.DeleteResponse, error)
	RefreshReflection(ctx context.Context, agentID types.AgentID, reflectionID types.ReflectionID, verbose bool) (*model.ReflectionOperation, error)
}
