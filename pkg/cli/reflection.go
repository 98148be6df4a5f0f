package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdReflection(a *app) *cli.Command {
	return &cli.Command{
		Name:  "reflection",
		Usage: "Manage standing summaries generated from an agent's memories",
		Commands: []*cli.Command{
			cmdReflectionList(a),
			cmdReflectionGet(a),
			cmdReflectionCreate(a),
			cmdReflectionUpdate(a),
			cmdReflectionDelete(a),
			cmdReflectionRefresh(a),
		},
	}
}

func cmdReflectionList(a *app) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List reflections",
		Action: func(ctx context.Context, c *cli.Command) error {
			client, agentID, err := a.session()
			if err != nil {
				return err
			}
			resp, err := client.ListReflections(ctx, agentID, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to list reflections", goerr.V("agent_id", agentID))
			}
			return a.renderer().Reflections(resp)
		},
	}
}

func cmdReflectionGet(a *app) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Show one reflection with its content",
		ArgsUsage: "<reflection_id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := argID(c, "reflection_id")
			if err != nil {
				return err
			}
			client, agentID, err := a.session()
			if err != nil {
				return err
			}
			x, err := client.GetReflection(ctx, agentID, types.ReflectionID(id), a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to get reflection", goerr.V("reflection_id", id))
			}
			return a.renderer().Reflection(x)
		},
	}
}

func cmdReflectionCreate(a *app) *cli.Command {
	var (
		name        string
		sourceQuery string
		maxTokens   int
		tags        []string
	)

	return &cli.Command{
		Name:  "create",
		Usage: "Create a reflection; its content is generated in the background",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "Reflection name",
				Required:    true,
				Destination: &name,
			},
			&cli.StringFlag{
				Name:        "source-query",
				Aliases:     []string{"q"},
				Usage:       "Query selecting the memories to summarize",
				Required:    true,
				Destination: &sourceQuery,
			},
			&cli.IntFlag{
				Name:        "max-tokens",
				Usage:       "Generation budget",
				Value:       model.DefaultReflectionMaxTokens,
				Destination: &maxTokens,
			},
			&cli.StringSliceFlag{
				Name:        "tag",
				Usage:       "Tag; repeatable",
				Destination: &tags,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			client, agentID, err := a.session()
			if err != nil {
				return err
			}

			req := model.CreateReflectionRequest{
				Name:        name,
				SourceQuery: sourceQuery,
				MaxTokens:   maxTokens,
				Tags:        tags,
			}
			op, err := client.CreateReflection(ctx, agentID, req, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to create reflection", goerr.V("agent_id", agentID))
			}
			return a.renderer().ReflectionOperation("Creating", op)
		},
	}
}

func cmdReflectionUpdate(a *app) *cli.Command {
	var name string

	return &cli.Command{
		Name:      "update",
		Usage:     "Rename a reflection",
		ArgsUsage: "<reflection_id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "New name", Destination: &name},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := argID(c, "reflection_id")
			if err != nil {
				return err
			}

			var req model.UpdateReflectionRequest
			if c.IsSet("name") {
				req.Name = &name
			}

			client, agentID, err := a.session()
			if err != nil {
				return err
			}
			x, err := client.UpdateReflection(ctx, agentID, types.ReflectionID(id), req, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to update reflection", goerr.V("reflection_id", id))
			}
			return a.renderer().Reflection(x)
		},
	}
}

func cmdReflectionDelete(a *app) *cli.Command {
	var yes bool

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a reflection",
		ArgsUsage: "<reflection_id>",
		Flags:     []cli.Flag{yesFlag(&yes)},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := argID(c, "reflection_id")
			if err != nil {
				return err
			}
			client, agentID, err := a.session()
			if err != nil {
				return err
			}

			ok, err := a.confirm(yes, "Delete reflection %s of %s?", id, agentID)
			if err != nil || !ok {
				return err
			}

			resp, err := client.DeleteReflection(ctx, agentID, types.ReflectionID(id), a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to delete reflection", goerr.V("reflection_id", id))
			}
			return a.renderer().Deleted(resp)
		},
	}
}

func cmdReflectionRefresh(a *app) *cli.Command {
	return &cli.Command{
		Name:      "refresh",
		Usage:     "Regenerate a reflection from current memories",
		ArgsUsage: "<reflection_id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := argID(c, "reflection_id")
			if err != nil {
				return err
			}
			client, agentID, err := a.session()
			if err != nil {
				return err
			}
			op, err := client.RefreshReflection(ctx, agentID, types.ReflectionID(id), a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to refresh reflection", goerr.V("reflection_id", id))
			}
			return a.renderer().ReflectionOperation("Refreshing", op)
		},
	}
}
