package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdMemory(a *app) *cli.Command {
	return &cli.Command{
		Name:  "memory",
		Usage: "Store and delete memories",
		Commands: []*cli.Command{
			cmdMemoryPut(a),
			cmdMemoryPutFiles(a),
			cmdMemoryDelete(a),
		},
	}
}

// batchOptions are the flags shared by put and put-files
type batchOptions struct {
	context    string
	documentID string
	async      bool
}

func (x *batchOptions) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "context",
			Aliases:     []string{"c"},
			Usage:       "Context attached to every stored item",
			Destination: &x.context,
		},
		&cli.StringFlag{
			Name:        "document-id",
			Aliases:     []string{"d"},
			Usage:       "Document the items belong to",
			Destination: &x.documentID,
		},
		&cli.BoolFlag{
			Name:        "async",
			Usage:       "Queue the batch and return a job ID",
			Destination: &x.async,
		},
	}
}

func (x *batchOptions) request(contents ...string) model.BatchMemoryRequest {
	var ctxText *string
	if x.context != "" {
		ctxText = &x.context
	}

	req := model.BatchMemoryRequest{Items: make([]model.MemoryItem, len(contents))}
	for i, content := range contents {
		req.Items[i] = model.MemoryItem{Content: content, Context: ctxText}
	}
	if x.documentID != "" {
		id := types.DocumentID(x.documentID)
		req.DocumentID = &id
	}
	return req
}

func (a *app) putMemories(ctx context.Context, opts *batchOptions, contents ...string) error {
	client, agentID, err := a.session()
	if err != nil {
		return err
	}

	resp, err := client.PutMemories(ctx, agentID, opts.request(contents...), opts.async, a.verbose())
	if err != nil {
		return goerr.Wrap(err, "failed to store memories",
			goerr.V("agent_id", agentID),
			goerr.V("items", len(contents)))
	}
	return a.renderer().PutMemories(resp)
}

func cmdMemoryPut(a *app) *cli.Command {
	var opts batchOptions

	return &cli.Command{
		Name:      "put",
		Usage:     "Store one memory; use - to read it from stdin",
		ArgsUsage: "<content...>",
		Flags:     opts.flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			content, err := a.argText(c, "content")
			if err != nil {
				return err
			}
			return a.putMemories(ctx, &opts, content)
		},
	}
}

func cmdMemoryPutFiles(a *app) *cli.Command {
	var opts batchOptions

	return &cli.Command{
		Name:      "put-files",
		Usage:     "Store each file as one memory item",
		ArgsUsage: "<path...>",
		Flags:     opts.flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			paths := c.Args().Slice()
			if len(paths) == 0 {
				return goerr.Wrap(ErrMissingArgument, "at least one file is required", goerr.V(ArgumentKey, "path"))
			}

			contents := make([]string, 0, len(paths))
			for _, path := range paths {
				// #nosec G304 - path is expected to be provided by CLI argument
				raw, err := os.ReadFile(filepath.Clean(path))
				if err != nil {
					return goerr.Wrap(err, "failed to read file", goerr.V("path", path))
				}
				if len(raw) == 0 {
					return goerr.Wrap(ErrInvalidArgument, "file is empty", goerr.V("path", path))
				}
				contents = append(contents, string(raw))
			}

			return a.putMemories(ctx, &opts, contents...)
		},
	}
}

func cmdMemoryDelete(a *app) *cli.Command {
	var yes bool

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete one memory unit",
		ArgsUsage: "<unit_id>",
		Flags:     []cli.Flag{yesFlag(&yes)},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := argID(c, "unit_id")
			if err != nil {
				return err
			}
			client, agentID, err := a.session()
			if err != nil {
				return err
			}

			ok, err := a.confirm(yes, "Delete memory unit %s of %s?", id, agentID)
			if err != nil || !ok {
				return err
			}

			resp, err := client.DeleteMemory(ctx, agentID, types.UnitID(id), a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to delete memory unit", goerr.V("unit_id", id))
			}
			return a.renderer().Deleted(resp)
		},
	}
}

func yesFlag(dst *bool) cli.Flag {
	return &cli.BoolFlag{
		Name:        "yes",
		Aliases:     []string{"y"},
		Usage:       "Skip the confirmation prompt",
		Destination: dst,
	}
}
