package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/cli/render"
	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func cmdAgent(a *app) *cli.Command {
	return &cli.Command{
		Name:  "agent",
		Usage: "Inspect and configure agents",
		Commands: []*cli.Command{
			cmdAgentList(a),
			cmdAgentProfile(a),
			cmdAgentUpdatePersonality(a),
			cmdAgentBackground(a),
			cmdAgentStats(a),
			cmdAgentOverview(a),
		},
	}
}

func cmdAgentList(a *app) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List all agents",
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}
			agents, err := client.ListAgents(ctx, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to list agents")
			}
			return a.renderer().Agents(agents)
		},
	}
}

func cmdAgentProfile(a *app) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Show an agent's name, personality and background",
		Action: func(ctx context.Context, c *cli.Command) error {
			client, agentID, err := a.session()
			if err != nil {
				return err
			}
			profile, err := client.GetProfile(ctx, agentID, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to get profile", goerr.V("agent_id", agentID))
			}
			return a.renderer().Profile(profile)
		},
	}
}

// traitFlag binds one personality trait to a CLI flag
type traitFlag struct {
	name  string
	usage string
	value float64
	field func(*model.PersonalityTraits) *float32
}

func personalityFlags() []*traitFlag {
	return []*traitFlag{
		{name: "openness", usage: "Openness to experience", field: func(p *model.PersonalityTraits) *float32 { return &p.Openness }},
		{name: "conscientiousness", usage: "Conscientiousness", field: func(p *model.PersonalityTraits) *float32 { return &p.Conscientiousness }},
		{name: "extraversion", usage: "Extraversion", field: func(p *model.PersonalityTraits) *float32 { return &p.Extraversion }},
		{name: "agreeableness", usage: "Agreeableness", field: func(p *model.PersonalityTraits) *float32 { return &p.Agreeableness }},
		{name: "neuroticism", usage: "Neuroticism", field: func(p *model.PersonalityTraits) *float32 { return &p.Neuroticism }},
		{name: "bias-strength", usage: "How strongly personality biases opinions", field: func(p *model.PersonalityTraits) *float32 { return &p.BiasStrength }},
	}
}

// applyTraits overwrites the traits whose flags were set. It reports
// whether any flag was set.
func applyTraits(c *cli.Command, traits []*traitFlag, dst *model.PersonalityTraits) (bool, error) {
	changed := false
	for _, t := range traits {
		if !c.IsSet(t.name) {
			continue
		}
		if t.value < 0 || t.value > 1 {
			return false, goerr.Wrap(ErrInvalidArgument, "trait must be between 0 and 1",
				goerr.V(ArgumentKey, t.name),
				goerr.V(ValueKey, t.value))
		}
		*t.field(dst) = float32(t.value)
		changed = true
	}
	return changed, nil
}

func cmdAgentUpdatePersonality(a *app) *cli.Command {
	traits := personalityFlags()
	flags := make([]cli.Flag, len(traits))
	for i, t := range traits {
		flags[i] = &cli.FloatFlag{
			Name:        t.name,
			Usage:       t.usage + " (0.0 - 1.0)",
			Destination: &t.value,
		}
	}

	return &cli.Command{
		Name:  "update-personality",
		Usage: "Change personality traits; unset traits keep their current value",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			var scratch model.PersonalityTraits
			changed, err := applyTraits(c, traits, &scratch)
			if err != nil {
				return err
			}
			if !changed {
				return goerr.Wrap(ErrMissingArgument, "at least one trait flag is required")
			}

			client, agentID, err := a.session()
			if err != nil {
				return err
			}

			current, err := client.GetProfile(ctx, agentID, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to get current personality", goerr.V("agent_id", agentID))
			}
			next := current.Personality
			if _, err := applyTraits(c, traits, &next); err != nil {
				return err
			}

			profile, err := client.UpdatePersonality(ctx, agentID, next, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to update personality", goerr.V("agent_id", agentID))
			}
			return a.renderer().Profile(profile)
		},
	}
}

func cmdAgentBackground(a *app) *cli.Command {
	var updatePersonality bool

	return &cli.Command{
		Name:      "background",
		Usage:     "Add background information to an agent",
		ArgsUsage: "<content>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "update-personality",
				Usage:       "Let the service infer personality from the new background",
				Destination: &updatePersonality,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			content, err := a.argText(c, "content")
			if err != nil {
				return err
			}
			client, agentID, err := a.session()
			if err != nil {
				return err
			}

			resp, err := client.AddBackground(ctx, agentID, model.AddBackgroundRequest{
				Content:           content,
				UpdatePersonality: updatePersonality,
			}, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to add background", goerr.V("agent_id", agentID))
			}
			return a.renderer().Background(resp)
		},
	}
}

func cmdAgentStats(a *app) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show memory graph statistics",
		Action: func(ctx context.Context, c *cli.Command) error {
			client, agentID, err := a.session()
			if err != nil {
				return err
			}
			stats, err := client.GetStats(ctx, agentID, a.verbose())
			if err != nil {
				return goerr.Wrap(err, "failed to get statistics", goerr.V("agent_id", agentID))
			}
			return a.renderer().Stats(stats)
		},
	}
}

func cmdAgentOverview(a *app) *cli.Command {
	return &cli.Command{
		Name:  "overview",
		Usage: "Show profile, statistics and operations together",
		Action: func(ctx context.Context, c *cli.Command) error {
			client, agentID, err := a.session()
			if err != nil {
				return err
			}

			var overview render.Overview
			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				profile, err := client.GetProfile(ctx, agentID, a.verbose())
				if err != nil {
					return goerr.Wrap(err, "failed to get profile")
				}
				overview.Profile = profile
				return nil
			})
			eg.Go(func() error {
				stats, err := client.GetStats(ctx, agentID, a.verbose())
				if err != nil {
					return goerr.Wrap(err, "failed to get statistics")
				}
				overview.Stats = stats
				return nil
			})
			eg.Go(func() error {
				ops, err := client.ListOperations(ctx, agentID, a.verbose())
				if err != nil {
					return goerr.Wrap(err, "failed to list operations")
				}
				overview.Operations = ops
				return nil
			})
			if err := eg.Wait(); err != nil {
				return goerr.Wrap(err, "failed to build overview", goerr.V("agent_id", agentID))
			}

			return a.renderer().Overview(&overview)
		},
	}
}
