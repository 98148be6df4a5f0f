package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// Profile is the optional TOML file holding connection defaults
type Profile struct {
	APIURL  string `toml:"api_url"`
	APIKey  string `toml:"api_key" masq:"secret"`
	AgentID string `toml:"agent_id"`
	Output  string `toml:"output"`
}

func (p Profile) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("api_url", p.APIURL),
		slog.Bool("has_api_key", p.APIKey != ""),
		slog.String("agent_id", p.AgentID),
		slog.String("output", p.Output),
	)
}

// DefaultProfilePath returns $XDG_CONFIG_HOME/memora/config.toml, falling back
// to ~/.config. It returns an empty string if no home directory is known.
func DefaultProfilePath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "memora", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "memora", "config.toml")
}

// LoadProfile reads a profile from path. A missing file yields an empty
// profile unless required is set.
func LoadProfile(path string, required bool) (*Profile, error) {
	if path == "" {
		return &Profile{}, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if required {
				return nil, goerr.Wrap(ErrConfigNotFound, "profile does not exist", goerr.V(ConfigPathKey, path))
			}
			return &Profile{}, nil
		}
		return nil, goerr.Wrap(err, "failed to read profile", goerr.V(ConfigPathKey, path))
	}

	var p Profile
	if err := toml.Unmarshal(raw, &p); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse profile",
			goerr.V(ConfigPathKey, path),
			goerr.V("cause", err.Error()),
		)
	}

	if p.Output != "" && !isKnownOutput(p.Output) {
		return nil, goerr.Wrap(ErrInvalidFormat, "unknown output format in profile",
			goerr.V(ConfigPathKey, path),
			goerr.V(FormatKey, p.Output),
		)
	}

	return &p, nil
}
