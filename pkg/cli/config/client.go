package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memora/pkg/domain/types"
	"github.com/secmon-lab/memora/pkg/service/memora"
	"github.com/urfave/cli/v3"
)

const (
	// DefaultAPIURL is used when neither flags, environment nor profile set one
	DefaultAPIURL = "http://localhost:8080"

	OutputPretty = "pretty"
	OutputJSON   = "json"
)

func isKnownOutput(s string) bool {
	return s == OutputPretty || s == OutputJSON
}

// Client holds connection and output settings for the memory service
type Client struct {
	apiURL     string
	apiKey     string
	agentID    string
	configPath string
	output     string
	verbose    bool

	profile Profile
}

// Flags returns CLI flags for client configuration
func (x *Client) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "Base URL of the memory service (default: " + DefaultAPIURL + ")",
			Category:    "API",
			Sources:     cli.EnvVars("MEMORA_API_URL"),
			Destination: &x.apiURL,
		},
		&cli.StringFlag{
			Name:        "api-key",
			Usage:       "API key sent as a bearer token",
			Category:    "API",
			Sources:     cli.EnvVars("MEMORA_API_KEY"),
			Destination: &x.apiKey,
		},
		&cli.StringFlag{
			Name:        "agent",
			Aliases:     []string{"a"},
			Usage:       "Agent ID to operate on",
			Category:    "API",
			Sources:     cli.EnvVars("MEMORA_AGENT_ID"),
			Destination: &x.agentID,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML profile (default: $XDG_CONFIG_HOME/memora/config.toml)",
			Category:    "API",
			Sources:     cli.EnvVars("MEMORA_CONFIG"),
			Destination: &x.configPath,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output format (pretty, json)",
			Category:    "Output",
			Sources:     cli.EnvVars("MEMORA_OUTPUT"),
			Destination: &x.output,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "Print request and response traces to stderr",
			Category:    "Output",
			Sources:     cli.EnvVars("MEMORA_VERBOSE"),
			Destination: &x.verbose,
		},
	}
}

// Load reads the profile file. An explicitly given path must exist.
func (x *Client) Load() error {
	path, required := x.configPath, true
	if path == "" {
		path, required = DefaultProfilePath(), false
	}

	p, err := LoadProfile(path, required)
	if err != nil {
		return err
	}
	x.profile = *p

	if x.output != "" && !isKnownOutput(x.output) {
		return goerr.Wrap(ErrInvalidFormat, "unknown output format", goerr.V(FormatKey, x.output))
	}
	return nil
}

func (x *Client) APIURL() string {
	return firstNonEmpty(x.apiURL, x.profile.APIURL, DefaultAPIURL)
}

func (x *Client) APIKey() string {
	return firstNonEmpty(x.apiKey, x.profile.APIKey)
}

// AgentID returns the selected agent, failing when none is configured
func (x *Client) AgentID() (types.AgentID, error) {
	id := types.AgentID(strings.TrimSpace(firstNonEmpty(x.agentID, x.profile.AgentID)))
	if id == "" {
		return "", goerr.Wrap(ErrMissingAgentID, "set --agent, MEMORA_AGENT_ID or agent_id in profile")
	}
	return id, nil
}

func (x *Client) Output() string {
	return firstNonEmpty(x.output, x.profile.Output, OutputPretty)
}

func (x *Client) Verbose() bool {
	return x.verbose
}

// Configure builds a memory service client. Verbose traces go to trace.
func (x *Client) Configure(version string, trace io.Writer) (*memora.Client, error) {
	opts := []memora.Option{
		memora.WithUserAgent(memora.DefaultUserAgent + "/" + version),
		memora.WithTraceWriter(trace),
	}
	if key := x.APIKey(); key != "" {
		opts = append(opts, memora.WithAPIKey(key))
	}

	client, err := memora.New(x.APIURL(), opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create memory service client")
	}
	return client, nil
}

func (x Client) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("api_url", x.APIURL()),
		slog.Bool("has_api_key", x.APIKey() != ""),
		slog.String("agent_id", firstNonEmpty(x.agentID, x.profile.AgentID)),
		slog.String("config", x.configPath),
		slog.String("output", x.Output()),
		slog.Bool("verbose", x.verbose),
	)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
