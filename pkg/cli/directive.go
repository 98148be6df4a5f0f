package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdDirective(a *app) *cli.Command {
	return &cli.Command{
		Name:  "directive",
		Usage: "Manage behavioral rules of an agent",
		Commands: []*cli.Command{
			cmdDirectiveList(a),
			cmdDirectiveGet(a),
			cmdDirectiveCreate(a),
			cmdDirectiveUpdate(a),
			cmdDirectiveDelete(a),
		},
	}
}

func cmdDirectiveList(a *app) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List directives",
		Action: func(ctx context.Context, c *cli.Command) error {
			client, agentID, err := a.session()
			if err != nil {
				return err
			}
			resp, err := client.ListDirectives(ctx, agentID, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to list directives", goerr.V("agent_id", agentID))
			}
			return a.renderer().Directives(resp)
		},
	}
}

func cmdDirectiveGet(a *app) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Show one directive",
		ArgsUsage: "<directive_id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := argID(c, "directive_id")
			if err != nil {
				return err
			}
			client, agentID, err := a.session()
			if err != nil {
				return err
			}
			d, err := client.GetDirective(ctx, agentID, types.DirectiveID(id), a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to get directive", goerr.V("directive_id", id))
			}
			return a.renderer().Directive(d)
		},
	}
}

func cmdDirectiveCreate(a *app) *cli.Command {
	var (
		name     string
		content  string
		priority int
		inactive bool
		tags     []string
	)

	return &cli.Command{
		Name:  "create",
		Usage: "Create a directive",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "Directive name",
				Required:    true,
				Destination: &name,
			},
			&cli.StringFlag{
				Name:        "content",
				Aliases:     []string{"c"},
				Usage:       "Rule text",
				Required:    true,
				Destination: &content,
			},
			&cli.IntFlag{
				Name:        "priority",
				Aliases:     []string{"p"},
				Usage:       "Higher priority directives are applied first",
				Destination: &priority,
			},
			&cli.BoolFlag{
				Name:        "inactive",
				Usage:       "Create the directive disabled",
				Destination: &inactive,
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

			req := model.CreateDirectiveRequest{
				Name:     name,
				Content:  content,
				Priority: priority,
				IsActive: !inactive,
				Tags:     tags,
			}

			d, err := client.CreateDirective(ctx, agentID, req, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to create directive", goerr.V("agent_id", agentID))
			}
			return a.renderer().Directive(d)
		},
	}
}

func cmdDirectiveUpdate(a *app) *cli.Command {
	var (
		name     string
		content  string
		priority int
		active   bool
		tags     []string
	)

	return &cli.Command{
		Name:      "update",
		Usage:     "Change fields of a directive; at least one field flag is required",
		ArgsUsage: "<directive_id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "New name", Destination: &name},
			&cli.StringFlag{Name: "content", Aliases: []string{"c"}, Usage: "New rule text", Destination: &content},
			&cli.IntFlag{Name: "priority", Aliases: []string{"p"}, Usage: "New priority", Destination: &priority},
			&cli.BoolFlag{Name: "active", Usage: "Enable or disable (--active=false)", Destination: &active},
			&cli.StringSliceFlag{Name: "tag", Usage: "Replace tags; repeatable", Destination: &tags},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := argID(c, "directive_id")
			if err != nil {
				return err
			}

			var req model.UpdateDirectiveRequest
			if c.IsSet("name") {
				req.Name = &name
			}
			if c.IsSet("content") {
				req.Content = &content
			}
			if c.IsSet("priority") {
				req.Priority = &priority
			}
			if c.IsSet("active") {
				req.IsActive = &active
			}
			if c.IsSet("tag") {
				req.Tags = &tags
			}

			client, agentID, err := a.session()
			if err != nil {
				return err
			}
			d, err := client.UpdateDirective(ctx, agentID, types.DirectiveID(id), req, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to update directive", goerr.V("directive_id", id))
			}
			return a.renderer().Directive(d)
		},
	}
}

func cmdDirectiveDelete(a *app) *cli.Command {
	var yes bool

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a directive",
		ArgsUsage: "<directive_id>",
		Flags:     []cli.Flag{yesFlag(&yes)},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := argID(c, "directive_id")
			if err != nil {
				return err
			}
			client, agentID, err := a.session()
			if err != nil {
				return err
			}

			ok, err := a.confirm(yes, "Delete directive %s of %s?", id, agentID)
			if err != nil || !ok {
				return err
			}

			resp, err := client.DeleteDirective(ctx, agentID, types.DirectiveID(id), a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to delete directive", goerr.V("directive_id", id))
			}
			return a.renderer().Deleted(resp)
		},
	}
}
