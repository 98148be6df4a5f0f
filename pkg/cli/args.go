package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// argText joins all positional arguments. A single "-" reads stdin instead.
func (a *app) argText(c *cli.Command, name string) (string, error) {
	args := c.Args().Slice()
	if len(args) == 1 && args[0] == "-" {
		raw, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", goerr.Wrap(err, "failed to read stdin", goerr.V(ArgumentKey, name))
		}
		args = []string{string(raw)}
	}

	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", goerr.Wrap(ErrMissingArgument, name+" is required", goerr.V(ArgumentKey, name))
	}
	return text, nil
}

// argID returns the single positional identifier of a command
func argID(c *cli.Command, name string) (string, error) {
	if c.NArg() != 1 {
		return "", goerr.Wrap(ErrMissingArgument, "exactly one "+name+" is required",
			goerr.V(ArgumentKey, name),
			goerr.V(ValueKey, c.Args().Slice()))
	}
	id := strings.TrimSpace(c.Args().First())
	if id == "" {
		return "", goerr.Wrap(ErrMissingArgument, name+" is required", goerr.V(ArgumentKey, name))
	}
	return id, nil
}

// confirm prompts on stdin unless skip is set or output is JSON
func (a *app) confirm(skip bool, format string, args ...any) (bool, error) {
	if skip || a.renderer().IsJSON() {
		return true, nil
	}

	if _, err := fmt.Fprintf(a.stderr, format+" [y/N]: ", args...); err != nil {
		return false, goerr.Wrap(err, "failed to write prompt")
	}
	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, goerr.Wrap(err, "failed to read confirmation")
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		if _, err := fmt.Fprintln(a.stderr, "Cancelled."); err != nil {
			return false, goerr.Wrap(err, "failed to write prompt")
		}
		return false, nil
	}
}
