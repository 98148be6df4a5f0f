package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

const (
	defaultSearchThinkingBudget = 100
	defaultSearchMaxTokens      = 4096
	defaultThinkThinkingBudget  = 50
)

func parseFactTypes(values []string) ([]types.FactType, error) {
	factTypes := types.ParseFactTypes(values...)
	if len(factTypes) == 0 {
		return types.AllFactTypes(), nil
	}
	for _, ft := range factTypes {
		if !ft.IsKnown() {
			return nil, goerr.Wrap(ErrInvalidArgument, "unknown fact type",
				goerr.V(ArgumentKey, "fact-type"),
				goerr.V(ValueKey, ft))
		}
	}
	return factTypes, nil
}

func cmdSearch(a *app) *cli.Command {
	var (
		factTypes      []string
		thinkingBudget int
		maxTokens      int
		trace          bool
	)

	return &cli.Command{
		Name:      "search",
		Usage:     "Search an agent's memory",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "fact-type",
				Aliases:     []string{"t"},
				Usage:       "Fact types to search (world, agent, opinion); default all",
				Destination: &factTypes,
			},
			&cli.IntFlag{
				Name:        "thinking-budget",
				Aliases:     []string{"b"},
				Usage:       "Number of memory units to explore",
				Value:       defaultSearchThinkingBudget,
				Destination: &thinkingBudget,
			},
			&cli.IntFlag{
				Name:        "max-tokens",
				Usage:       "Maximum tokens of returned facts",
				Value:       defaultSearchMaxTokens,
				Destination: &maxTokens,
			},
			&cli.BoolFlag{
				Name:        "trace",
				Usage:       "Ask the service for search trace information",
				Destination: &trace,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			query, err := a.argText(c, "query")
			if err != nil {
				return err
			}
			fts, err := parseFactTypes(factTypes)
			if err != nil {
				return err
			}

			client, agentID, err := a.session()
			if err != nil {
				return err
			}

			resp, err := client.Search(ctx, agentID, model.SearchRequest{
				Query:          query,
				FactType:       fts,
				ThinkingBudget: thinkingBudget,
				MaxTokens:      maxTokens,
				Trace:          trace,
			}, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to search memories", goerr.V("agent_id", agentID))
			}

			return a.renderer().Search(resp)
		},
	}
}

func cmdThink(a *app) *cli.Command {
	var (
		thinkingBudget int
		thinkContext   string
	)

	return &cli.Command{
		Name:      "think",
		Usage:     "Ask an agent to answer from its memory and form opinions",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "thinking-budget",
				Aliases:     []string{"b"},
				Usage:       "Number of memory units to explore",
				Value:       defaultThinkThinkingBudget,
				Destination: &thinkingBudget,
			},
			&cli.StringFlag{
				Name:        "context",
				Aliases:     []string{"c"},
				Usage:       "Additional context for the question",
				Destination: &thinkContext,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			query, err := a.argText(c, "query")
			if err != nil {
				return err
			}

			client, agentID, err := a.session()
			if err != nil {
				return err
			}

			req := model.ThinkRequest{
				Query:          query,
				ThinkingBudget: thinkingBudget,
			}
			if c.IsSet("context") {
				req.Context = &thinkContext
			}

			resp, err := client.Think(ctx, agentID, req, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to think", goerr.V("agent_id", agentID))
			}

			return a.renderer().Think(resp)
		},
	}
}
