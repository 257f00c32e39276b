package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-mvb"
	"github.com/goliatone/go-mvb/internal/logging/console"
	"github.com/goliatone/go-mvb/internal/logging/gologger"
	"github.com/goliatone/go-mvb/pkg/interfaces"
)

// DefaultConfigPaths are tried in order when no config file is given.
var DefaultConfigPaths = []string{"mvb.yaml", "mvb.yml", "mvb.toml"}

// Overrides holds command line values applied over the config file.
type Overrides struct {
	Glob      []string
	Permalink string
	OutputDir string
	LogLevel  string
}

// LoadConfig reads path, or the first default config file found, and
// applies overrides. Without any file the defaults are used.
func LoadConfig(path string, overrides Overrides) (mvb.Config, error) {
	cfg := mvb.DefaultConfig()

	path = strings.TrimSpace(path)
	if path == "" {
		for _, candidate := range DefaultConfigPaths {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			} else if !errors.Is(err, fs.ErrNotExist) {
				return mvb.Config{}, fmt.Errorf("stat %s: %w", candidate, err)
			}
		}
	}
	if path != "" {
		loaded, err := mvb.LoadConfigFile(path)
		if err != nil {
			return mvb.Config{}, err
		}
		cfg = loaded
	}

	if len(overrides.Glob) > 0 {
		cfg.Articles.Glob = mvb.Patterns(overrides.Glob)
	}
	if trimmed := strings.TrimSpace(overrides.Permalink); trimmed != "" {
		cfg.Articles.Permalink = trimmed
	}
	if trimmed := strings.TrimSpace(overrides.OutputDir); trimmed != "" {
		cfg.Site.OutputDir = trimmed
	}
	if trimmed := strings.TrimSpace(overrides.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}

	if err := cfg.Validate(); err != nil {
		return mvb.Config{}, err
	}
	return cfg, nil
}

// LoggerProvider builds the provider named by cfg. Console output goes to out.
func LoggerProvider(cfg mvb.LoggingConfig, out io.Writer) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "console":
		level, ok := console.ParseLevel(cfg.Level)
		if !ok {
			return nil, fmt.Errorf("%w: %s", mvb.ErrLoggingLevelInvalid, cfg.Level)
		}
		return console.NewProvider(console.Options{Writer: out, MinLevel: level}), nil
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("%w: %s", mvb.ErrLoggingProviderUnknown, cfg.Provider)
	}
}
