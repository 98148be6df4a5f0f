package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdOperation(a *app) *cli.Command {
	return &cli.Command{
		Name:  "operation",
		Usage: "Inspect and cancel asynchronous operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List operations of an agent",
				Action: func(ctx context.Context, c *cli.Command) error {
					client, agentID, err := a.session()
					if err != nil {
						return err
					}
					resp, err := client.ListOperations(ctx, agentID, a.verbose())
					if err != nil {
						return goerr.Wrap(err, "failed to list operations", goerr.V("agent_id", agentID))
					}
					return a.renderer().Operations(resp)
				},
			},
			cmdOperationCancel(a),
		},
	}
}

func cmdOperationCancel(a *app) *cli.Command {
	var yes bool

	return &cli.Command{
		Name:      "cancel",
		Usage:     "Cancel a pending operation",
		ArgsUsage: "<operation_id>",
		Flags:     []cli.Flag{yesFlag(&yes)},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := argID(c, "operation_id")
			if err != nil {
				return err
			}
			client, agentID, err := a.session()
			if err != nil {
				return err
			}

			ok, err := a.confirm(yes, "Cancel operation %s of %s?", id, agentID)
			if err != nil || !ok {
				return err
			}

			resp, err := client.CancelOperation(ctx, agentID, types.OperationID(id), a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to cancel operation", goerr.V("operation_id", id))
			}
			return a.renderer().Deleted(resp)
		},
	}
}
