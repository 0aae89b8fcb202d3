package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment keys read by [LoadEnv].
const (
	EnvRoots       = "CAMSWAP_ROOTS"
	EnvConventions = "CAMSWAP_CONVENTIONS"
	EnvLogFile     = "CAMSWAP_LOG"
)

// Conventions models the YAML conventions file.
type Conventions struct {
	Roots            []string          `yaml:"roots"`
	Extension        string            `yaml:"extension"`
	Aliases          map[string]string `yaml:"aliases"`
	Templates        []TemplateSpec    `yaml:"templates"`
	ReplaceTemplates bool              `yaml:"replace_templates"`
}

// LoadEnv loads a .env file from the working directory when present, then
// applies CAMSWAP_* variables to cfg. Roots are separated by the OS path
// list separator.
func LoadEnv(cfg *Config) {
	_ = godotenv.Load()

	if roots := strings.TrimSpace(os.Getenv(EnvRoots)); roots != "" {
		cfg.Roots = splitList(roots)
	}
	if path := strings.TrimSpace(os.Getenv(EnvConventions)); path != "" {
		cfg.ConventionsFile = path
	}
	if path := strings.TrimSpace(os.Getenv(EnvLogFile)); path != "" {
		cfg.LogFile = path
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range filepath.SplitList(s) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadConventions reads the YAML conventions file at path and merges it
// into cfg: roots and extension replace the current values when set,
// aliases are merged key by key, templates are appended.
func LoadConventions(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read conventions: %w", err)
	}
	var conv Conventions
	if err := yaml.Unmarshal(data, &conv); err != nil {
		return fmt.Errorf("config: parse conventions %s: %w", path, err)
	}

	if len(conv.Roots) > 0 {
		cfg.Roots = conv.Roots
	}
	if conv.Extension != "" {
		cfg.Extension = conv.Extension
	}
	if cfg.Aliases == nil {
		cfg.Aliases = map[string]string{}
	}
	for k, v := range conv.Aliases {
		cfg.Aliases[k] = v
	}
	cfg.Templates = append(cfg.Templates, conv.Templates...)
	if conv.ReplaceTemplates {
		cfg.ReplaceTemplates = true
	}
	return nil
}
