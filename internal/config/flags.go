package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into resolution, behavior, display, and utility.
// Overrides (roots, extension, color) are applied after the conventions file
// is merged so that explicit flags always win.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// version is shown in --version and help; override at build time with -ldflags "-X main.version=...".
var version = "1.0.0-dev"

// SetVersion lets main inject the build version into help output.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// ParseFlags parses args (without the program name) into cfg. On --help or
// --version it prints and exits. On error it returns non-nil (unknown flag,
// bad enum value, unreadable conventions file, missing positional arg).
func ParseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("camswap", flag.ContinueOnError)
	fs.Usage = func() { printUsage() }

	var o overrides

	defineResolutionFlags(fs, cfg, &o)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &o)
	defineUtilityFlags(fs, &o)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if o.showHelp {
		printUsage()
		os.Exit(0)
	}
	if o.showVersion {
		fmt.Fprintln(os.Stdout, "camswap v"+version)
		os.Exit(0)
	}

	if cfg.ConventionsFile != "" {
		if err := LoadConventions(cfg, cfg.ConventionsFile); err != nil {
			return err
		}
	}
	applyOverrides(cfg, &o)

	return parsePositionalArgs(fs, cfg)
}

// overrides holds flag values applied after the conventions file, plus the
// flags that trigger an exit.
type overrides struct {
	roots       stringList
	extension   string
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineResolutionFlags registers --root, --ext, --conventions, --path.
func defineResolutionFlags(fs *flag.FlagSet, cfg *Config, o *overrides) {
	fs.Var(&o.roots, "root", "Root location to search (repeatable, highest priority first)")
	fs.Var(&o.roots, "r", "Same as --root")
	fs.StringVar(&o.extension, "ext", "", "Camera file extension (default: .nk)")
	fs.StringVar(&cfg.ConventionsFile, "conventions", cfg.ConventionsFile, "YAML conventions file (roots, aliases, templates)")
	fs.StringVar(&cfg.OverridePath, "path", "", "Use this camera file for every backdrop; skip resolution")
}

// defineBehaviorFlags registers --output, --all, --pick, --dry-run.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.OutputPath, "output", "", "Write the updated script here (default: in place)")
	fs.StringVar(&cfg.OutputPath, "o", "", "Same as --output")
	fs.BoolVar(&cfg.AllNodes, "all", false, "Process every node, not only the saved selection")
	fs.BoolVar(&cfg.AllNodes, "a", false, "Same as --all")
	fs.Var(&pickModeValue{&cfg.Pick}, "pick", "Several candidates: interactive | first | skip")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Resolve and splice but do not write the script")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log, --metrics.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, o *overrides) {
	fs.BoolVar(&o.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
	fs.StringVar(&cfg.MetricsFile, "metrics", "", "Write run counters as a Prometheus textfile")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, o *overrides) {
	fs.BoolVar(&o.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&o.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&o.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&o.showHelp, "h", false, "Same as --help")
}

// applyOverrides copies post-conventions flag values into cfg.
func applyOverrides(cfg *Config, o *overrides) {
	if len(o.roots) > 0 {
		cfg.Roots = append([]string(nil), o.roots...)
	}
	if o.extension != "" {
		cfg.Extension = o.extension
	}
	if o.noColor {
		cfg.ColorMode = ColorNever
	} else if o.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets ScriptPath from the single positional arg when not in CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one node script")
	}
	cfg.ScriptPath = args[0]
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage() {
	const col1 = 28
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "camswap v" + version + " - replace placeholder cameras with animation exports"},
		{"", ""},
		{"  camswap [OPTIONS] <script.yaml>", ""},
		{"", ""},
		{"Resolution", ""},
		{"  -r, --root <dir>", "Root location (repeatable; default: P:/external)"},
		{"  --ext <ext>", "Camera file extension (default: .nk)"},
		{"  --conventions <file>", "YAML conventions file"},
		{"  --path <file>", "Fixed camera file for every backdrop"},
		{"", ""},
		{"Behavior", ""},
		{"  -o, --output <file>", "Write the updated script here (default: in place)"},
		{"  -a, --all", "Process every node, not only the selection"},
		{"  --pick <mode>", "interactive | first | skip (default: interactive)"},
		{"  -d, --dry-run", "Do not write the script"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  --metrics <path>", "Write Prometheus textfile counters"},
		{"  -c, --check", "Diagnostics (roots, templates, conventions)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"Environment", ""},
		{"  " + EnvRoots, "Root locations, path-list separated"},
		{"  " + EnvConventions, "Conventions file"},
		{"  " + EnvLogFile, "Log file"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters.

type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return fmt.Errorf("empty value")
	}
	*s = append(*s, v)
	return nil
}

type pickModeValue struct{ p *PickMode }

func (v *pickModeValue) String() string {
	if v.p == nil {
		return ""
	}
	return string(*v.p)
}
func (v *pickModeValue) Set(s string) error {
	switch PickMode(strings.ToLower(s)) {
	case PickInteractive:
		*v.p = PickInteractive
	case PickFirst:
		*v.p = PickFirst
	case PickSkip:
		*v.p = PickSkip
	default:
		return fmt.Errorf("invalid pick mode %q (use 'interactive', 'first' or 'skip')", s)
	}
	return nil
}
