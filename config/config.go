package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const DefaultBaseURL = "https://typescript-next14.preview.emergentagent.com"

// App holds the settings for a run. Command-line flags may override any of them.
type App struct {
	BaseURL      string        `env:"MATCHMAKING_BASE_URL" envDefault:"https://typescript-next14.preview.emergentagent.com"`
	APIPrefix    string        `env:"MATCHMAKING_API_PREFIX" envDefault:"/api"`
	Timeout      time.Duration `env:"MATCHMAKING_TIMEOUT" envDefault:"30s"`
	StepDelay    time.Duration `env:"MATCHMAKING_STEP_DELAY" envDefault:"1s"`
	FixturesPath string        `env:"MATCHMAKING_FIXTURES"`
}

// Load parses configuration from the given environment. A nil map means the process
// environment.
func Load(environ map[string]string) (*App, error) {
	cfg := &App{}
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnvironment loads the optional dotenv file at dotEnvPath and then parses the process
// environment over it, so that real environment variables win. A missing file is ignored.
func FromEnvironment(dotEnvPath string) (*App, error) {
	environ := map[string]string{}
	if dotEnvPath != "" {
		values, err := godotenv.Read(dotEnvPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", dotEnvPath, err)
		}
		for k, v := range values {
			environ[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environ[k] = v
		}
	}
	return Load(environ)
}

// Validate checks values that may also have come from flags.
func (a *App) Validate() error {
	u, err := url.Parse(a.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base URL %q: must be an absolute http or https URL", a.BaseURL)
	}
	if a.APIPrefix != "" && !strings.HasPrefix(a.APIPrefix, "/") {
		return fmt.Errorf("invalid API prefix %q: must start with /", a.APIPrefix)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %s: must be positive", a.Timeout)
	}
	if a.StepDelay < 0 {
		return fmt.Errorf("invalid step delay %s: must not be negative", a.StepDelay)
	}
	return nil
}

// APIBase is the base URL followed by the API prefix, which every request path is appended to.
func (a *App) APIBase() string {
	return strings.TrimSuffix(a.BaseURL, "/") + strings.TrimSuffix(a.APIPrefix, "/")
}
