// Package config holds runtime configuration: defaults, CLI flag parsing,
// the pipeline conventions file, environment overrides and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// PickMode selects how a container with several candidate camera files is
// disambiguated.
type PickMode string

const (
	PickInteractive PickMode = "interactive" // Ask in a terminal picker (default).
	PickFirst       PickMode = "first"       // Take the first candidate in resolution order.
	PickSkip        PickMode = "skip"        // Treat as cancelled; the container is skipped.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// TemplateSpec is a directory layout declared in the conventions file.
type TemplateSpec struct {
	Name    string            `yaml:"name"`
	Layout  string            `yaml:"layout"`
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [LoadEnv], [LoadConventions] and [ParseFlags], before being passed
// by pointer to the packages that need it.
type Config struct {
	// Paths.
	ScriptPath string // Positional: node script to process.
	OutputPath string // Default: ScriptPath (rewritten in place).

	// Resolution conventions.
	Roots            []string          // Prioritized root locations. Default: "P:/external".
	Extension        string            // Camera file extension. Default: ".nk".
	Templates        []TemplateSpec    // Extra layouts from the conventions file.
	ReplaceTemplates bool              // Use only Templates, not the built-in table.
	Aliases          map[string]string // Project token → folder name.
	ConventionsFile  string            // Optional YAML conventions file.

	// Behavior.
	OverridePath string   // Fixed camera file; bypasses resolution.
	AllNodes     bool     // Process every node instead of the saved selection.
	Pick         PickMode // Default: "interactive".
	DryRun       bool

	// Display and logging.
	Verbose     bool
	ColorMode   ColorMode // Default: "auto".
	LogFile     string    // Optional log file path.
	MetricsFile string    // Optional Prometheus textfile output.
	CheckOnly   bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with the studio defaults.
func DefaultConfig() Config {
	return Config{
		Roots:     []string{"P:/external"},
		Extension: ".nk",
		Aliases:   map[string]string{},
		Pick:      PickInteractive,
		ColorMode: ColorAuto,
	}
}

// Validate checks enum fields and conventions. When not in CheckOnly mode
// it also requires a script path and defaults OutputPath to it.
func (c *Config) Validate() error {
	switch c.Pick {
	case PickInteractive, PickFirst, PickSkip:
		// valid
	default:
		return errors.New("invalid pick mode (use 'interactive', 'first' or 'skip')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	ext, err := normalizeExtension(c.Extension)
	if err != nil {
		return err
	}
	c.Extension = ext

	if len(c.Roots) == 0 {
		return errors.New("at least one root location is required")
	}
	if c.ReplaceTemplates && len(c.Templates) == 0 {
		return errors.New("replace_templates is set but no templates are declared")
	}
	for i, t := range c.Templates {
		if strings.TrimSpace(t.Layout) == "" {
			return fmt.Errorf("template %d (%s) has an empty layout", i, t.Name)
		}
	}

	if c.CheckOnly {
		return nil
	}
	if c.ScriptPath == "" {
		return errors.New("need exactly one node script")
	}
	if c.OutputPath == "" {
		c.OutputPath = c.ScriptPath
	}
	return nil
}

// normalizeExtension accepts "nk", ".nk" or " .NK " and returns ".nk".
func normalizeExtension(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, ".")
	if s == "" || strings.ContainsAny(s, `/\*?[`) {
		return "", fmt.Errorf("invalid camera extension %q", raw)
	}
	return "." + s, nil
}
