package config

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
	"github.com/waqt-lab/sawtak/pkg/service/nlp"
)

// Assistant holds the CLI flag for the assistant lexicon overlay. The
// built-in intent tables are fixed; deployments only extend gazetteers
// and fillers with household-specific vocabulary.
type Assistant struct {
	configPath string
}

// AssistantConfig is the TOML schema for the lexicon overlay file.
type AssistantConfig struct {
	Contacts    []string `toml:"contacts"`
	Medications []string `toml:"medications"`
	Fillers     []string `toml:"fillers"`
}

// Flags returns CLI flags for assistant configuration
func (a *Assistant) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "assistant-config",
			Usage:       "Path to TOML file extending contact/medication gazetteers and filler words",
			Sources:     cli.EnvVars("SAWTAK_ASSISTANT_CONFIG"),
			Destination: &a.configPath,
		},
	}
}

// Validate checks the overlay entries. Fillers must be lowercase because
// the normalizer matches them against already-lowercased text.
func (c *AssistantConfig) Validate() error {
	for _, name := range c.Contacts {
		if strings.TrimSpace(name) == "" {
			return goerr.New("empty contact name in assistant config")
		}
	}
	for _, name := range c.Medications {
		if strings.TrimSpace(name) == "" {
			return goerr.New("empty medication name in assistant config")
		}
	}
	for _, f := range c.Fillers {
		if strings.TrimSpace(f) == "" {
			return goerr.New("empty filler expression in assistant config")
		}
		if f != strings.ToLower(f) {
			return goerr.New("filler expressions must be lowercase", goerr.V("filler", f))
		}
	}
	return nil
}

// Options converts the overlay into processor options.
func (c *AssistantConfig) Options() []nlp.Option {
	var opts []nlp.Option
	if len(c.Contacts) > 0 {
		opts = append(opts, nlp.WithContacts(c.Contacts...))
	}
	if len(c.Medications) > 0 {
		opts = append(opts, nlp.WithMedications(c.Medications...))
	}
	if len(c.Fillers) > 0 {
		opts = append(opts, nlp.WithFillers(c.Fillers...))
	}
	return opts
}

// Configure builds the understanding pipeline. Without a config file the
// built-in lexicon is used as is.
func (a *Assistant) Configure() (*nlp.Processor, error) {
	if a.configPath == "" {
		return nlp.New(), nil
	}

	cfg, err := LoadAssistantConfig(a.configPath)
	if err != nil {
		return nil, err
	}

	return nlp.New(cfg.Options()...), nil
}

// LoadAssistantConfig loads and validates a lexicon overlay file.
func LoadAssistantConfig(path string) (*AssistantConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read assistant config", goerr.V("path", path))
	}

	var cfg AssistantConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "assistant config validation failed", goerr.V("path", path))
	}

	return &cfg, nil
}
