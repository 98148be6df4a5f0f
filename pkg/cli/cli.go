package cli

import (
	"context"
	"io"
	"os"

	"github.com/secmon-lab/memora/pkg/cli/config"
	"github.com/secmon-lab/memora/pkg/cli/render"
	"github.com/secmon-lab/memora/pkg/domain/interfaces"
	"github.com/secmon-lab/memora/pkg/domain/types"
	"github.com/secmon-lab/memora/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Run executes the memora command line with os.Args-style args
func Run(ctx context.Context, args []string, version string) error {
	return newApp(version, os.Stdin, os.Stdout, os.Stderr).run(ctx, args)
}

type app struct {
	version string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer

	loggerCfg config.Logger
	sentryCfg config.Sentry
	clientCfg config.Client

	// newClient is replaced in tests
	newClient func() (interfaces.MemoraClient, error)
	closers   []func()
}

func newApp(version string, stdin io.Reader, stdout, stderr io.Writer) *app {
	a := &app{
		version: version,
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
	}
	a.newClient = func() (interfaces.MemoraClient, error) {
		client, err := a.clientCfg.Configure(a.version, a.stderr)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	return a
}

func (a *app) command() *cli.Command {
	var flags []cli.Flag
	flags = append(flags, a.clientCfg.Flags()...)
	flags = append(flags, a.loggerCfg.Flags()...)
	flags = append(flags, a.sentryCfg.Flags()...)

	return &cli.Command{
		Name:      "memora",
		Usage:     "Command line client for the memora memory service",
		Version:   a.version,
		Reader:    a.stdin,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags:     flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			closer, err := a.loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			a.closers = append(a.closers, closer)

			flush, err := a.sentryCfg.Configure(a.version)
			if err != nil {
				return ctx, err
			}
			a.closers = append(a.closers, flush)

			if err := a.clientCfg.Load(); err != nil {
				return ctx, err
			}

			logging.Default().Debug("Starting memora",
				"logger", a.loggerCfg,
				"sentry", a.sentryCfg,
				"client", a.clientCfg,
			)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdSearch(a),
			cmdThink(a),
			cmdMemory(a),
			cmdAgent(a),
			cmdDocument(a),
			cmdOperation(a),
			cmdDirective(a),
			cmdReflection(a),
		},
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	defer a.close()

	if err := a.command().Run(ctx, args); err != nil {
		a.report(ctx, err)
		return err
	}
	return nil
}

// close releases in reverse order so Sentry flushes before the log file
// is closed.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *app) renderer() *render.Renderer {
	return render.New(a.stdout, render.Format(a.clientCfg.Output()))
}

func (a *app) verbose() bool {
	return a.clientCfg.Verbose()
}

// session resolves the agent and builds a client for commands scoped to
// one agent.
func (a *app) session() (interfaces.MemoraClient, types.AgentID, error) {
	agentID, err := a.clientCfg.AgentID()
	if err != nil {
		return nil, "", err
	}
	client, err := a.newClient()
	if err != nil {
		return nil, "", err
	}
	return client, agentID, nil
}
