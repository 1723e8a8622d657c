package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
)

// FileName is the site configuration file expected at the root of the input directory.
const FileName = "config.yaml"

// envFiles are loaded from the input directory before the config is expanded.
var envFiles = []string{".env", ".env.local"}

// envRef matches ${NAME}; a bare $ is literal text.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// SiteConfig holds the site-wide settings. It is loaded once per build and
// never mutated afterwards.
type SiteConfig struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// Load reads <inputDir>/config.yaml.
//
// Variables from .env files next to the config are loaded first (never
// overriding the process environment) so ${VAR} references in the YAML resolve.
func Load(inputDir string) (*SiteConfig, error) {
	if err := loadEnvFiles(inputDir); err != nil {
		return nil, err
	}

	path := filepath.Join(inputDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.NotFoundError("required site file is missing").
				WithContext("file", FileName).
				WithCause(err).
				Build()
		}
		return nil, ferrors.FileSystemError("failed to read config file").
			WithContext("file", path).
			WithCause(err).
			Build()
	}

	cfg, err := Parse(ExpandEnv(data))
	if err != nil {
		return nil, ferrors.ConfigError("invalid site configuration").
			WithContext("file", path).
			WithCause(err).
			Build()
	}
	slog.Debug("Loaded site configuration", logfields.Path(path), slog.String("title", cfg.Title))
	return cfg, nil
}

// Parse decodes and validates config YAML.
func Parse(data []byte) (*SiteConfig, error) {
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ExpandEnv replaces ${NAME} references with environment values. References
// to unset variables are kept as written.
func ExpandEnv(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(ref []byte) []byte {
		name := envRef.FindSubmatch(ref)[1]
		if val, ok := os.LookupEnv(string(name)); ok {
			return []byte(val)
		}
		return ref
	})
}

// Validate reports every required key that is missing.
func (c *SiteConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(c.URL) == "" {
		missing = append(missing, "url")
	}
	if strings.TrimSpace(c.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required keys: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Link returns the absolute URL of a path relative to the output root.
func (c *SiteConfig) Link(rel string) string {
	rel = strings.TrimPrefix(filepath.ToSlash(rel), "./")
	return strings.TrimRight(c.URL, "/") + "/" + strings.TrimLeft(rel, "/")
}

func loadEnvFiles(inputDir string) error {
	for _, name := range envFiles {
		path := filepath.Join(inputDir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return ferrors.ConfigError("failed to load environment file").
				WithContext("file", path).
				WithCause(err).
				Build()
		}
		slog.Debug("Loaded environment variables", logfields.Path(path))
	}
	return nil
}
