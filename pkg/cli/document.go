package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdDocument(a *app) *cli.Command {
	return &cli.Command{
		Name:  "document",
		Usage: "Manage source documents",
		Commands: []*cli.Command{
			cmdDocumentList(a),
			cmdDocumentGet(a),
			cmdDocumentDelete(a),
		},
	}
}

func cmdDocumentList(a *app) *cli.Command {
	var (
		query  string
		limit  int
		offset int
	)

	return &cli.Command{
		Name:  "list",
		Usage: "List documents of an agent",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "query",
				Aliases:     []string{"q"},
				Usage:       "Filter documents by text",
				Destination: &query,
			},
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"l"},
				Usage:       "Maximum number of documents",
				Destination: &limit,
			},
			&cli.IntFlag{
				Name:        "offset",
				Usage:       "Number of documents to skip",
				Destination: &offset,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var q model.ListDocumentsQuery
			if c.IsSet("query") {
				q.Query = &query
			}
			if c.IsSet("limit") {
				if limit <= 0 {
					return goerr.Wrap(ErrInvalidArgument, "limit must be positive", goerr.V(ValueKey, limit))
				}
				q.Limit = &limit
			}
			if c.IsSet("offset") {
				if offset < 0 {
					return goerr.Wrap(ErrInvalidArgument, "offset must not be negative", goerr.V(ValueKey, offset))
				}
				q.Offset = &offset
			}

			client, agentID, err := a.session()
			if err != nil {
				return err
			}
			resp, err := client.ListDocuments(ctx, agentID, q, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to list documents", goerr.V("agent_id", agentID))
			}
			return a.renderer().Documents(resp)
		},
	}
}

func cmdDocumentGet(a *app) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Show one document with its text",
		ArgsUsage: "<document_id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := argID(c, "document_id")
			if err != nil {
				return err
			}
			client, agentID, err := a.session()
			if err != nil {
				return err
			}
			doc, err := client.GetDocument(ctx, agentID, types.DocumentID(id), a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to get document", goerr.V("document_id", id))
			}
			return a.renderer().Document(doc)
		},
	}
}

func cmdDocumentDelete(a *app) *cli.Command {
	var yes bool

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a document and the memories extracted from it",
		ArgsUsage: "<document_id>",
		Flags:     []cli.Flag{yesFlag(&yes)},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := argID(c, "document_id")
			if err != nil {
				return err
			}
			client, agentID, err := a.session()
			if err != nil {
				return err
			}

			ok, err := a.confirm(yes, "Delete document %s and its memory units from %s?", id, agentID)
			if err != nil || !ok {
				return err
			}

			resp, err := client.DeleteDocument(ctx, agentID, types.DocumentID(id), a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to delete document", goerr.V("document_id", id))
			}
			return a.renderer().Deleted(resp)
		},
	}
}
