package memora

import (
	"context"
	"net/url"
	"strconv"

	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
)

// documentsQuery keeps only the parameters that are set
func documentsQuery(q model.ListDocumentsQuery) url.Values {
	values := url.Values{}
	if q.Query != nil {
		values.Set("q", *q.Query)
	}
	if q.Limit != nil {
		values.Set("limit", strconv.Itoa(*q.Limit))
	}
	if q.Offset != nil {
		values.Set("offset", strconv.Itoa(*q.Offset))
	}
	return values
}

// ListDocuments returns one page of the agent's documents
func (c *Client) ListDocuments(ctx context.Context, agentID types.AgentID, query model.ListDocumentsQuery, verbose bool) (*model.DocumentsResponse, error) {
	rc := call{op: OpListDocuments, segments: agentPath(agentID, "documents"), query: documentsQuery(query)}
	if err := agentID.Validate(); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid agent ID")
	}
	return invoke[model.DocumentsResponse](ctx, c, rc, verbose)
}

// GetDocument returns a document with its original text
func (c *Client) GetDocument(ctx context.Context, agentID types.AgentID, documentID types.DocumentID, verbose bool) (*model.DocumentDetails, error) {
	rc := call{op: OpGetDocument, segments: agentPath(agentID, "documents", documentID.String())}
	if err := validateIDs(agentID, documentID); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid identifier")
	}
	return invoke[model.DocumentDetails](ctx, c, rc, verbose)
}

// DeleteDocument deletes a document and its memory units
func (c *Client) DeleteDocument(ctx context.Context, agentID types.AgentID, documentID types.DocumentID, verbose bool) (*model.DeleteResponse, error) {
	rc := call{op: OpDeleteDocument, segments: agentPath(agentID, "documents", documentID.String())}
	if err := validateIDs(agentID, documentID); err != nil {
		return nil, c.reject(ctx, rc, verbose, err, "invalid identifier")
	}
	return invoke[model.DeleteResponse](ctx, c, rc, verbose)
}
