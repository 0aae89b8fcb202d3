// Command camswap replaces placeholder camera nodes in a node script with
// the camera exported by animation for the same shot.
//
// It parses flags, validates configuration, and either runs conventions
// diagnostics (--check) or a replacement run over the script's selection.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/camswap/internal/check"
	"github.com/backmassage/camswap/internal/config"
	"github.com/backmassage/camswap/internal/display"
	"github.com/backmassage/camswap/internal/logging"
	"github.com/backmassage/camswap/internal/metrics"
	"github.com/backmassage/camswap/internal/nodegraph"
	"github.com/backmassage/camswap/internal/replace"
	"github.com/backmassage/camswap/internal/resolve"
	"github.com/backmassage/camswap/internal/session"
	"github.com/backmassage/camswap/internal/term"
	"github.com/backmassage/camswap/internal/ui"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. Errors go to stderr until the logger exists.
	cfg := config.DefaultConfig()
	config.LoadEnv(&cfg)
	config.SetVersion(version)
	if err := config.ParseFlags(&cfg, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "camswap: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "camswap: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "camswap: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	display.PrintBanner(os.Stdout)

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	if err := check.Preflight(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	sess, err := session.Load(cfg.ScriptPath)
	if err != nil {
		log.Error("Cannot load script: %v", err)
		return 1
	}

	log.Info("=== camswap v%s (%s) ===", version, commit)
	log.Info("Script: %s", cfg.ScriptPath)
	if cfg.OutputPath != cfg.ScriptPath {
		log.Info("Out:    %s", cfg.OutputPath)
	}
	if cfg.OverridePath != "" {
		log.Info("Camera: %s (fixed)", cfg.OverridePath)
	}
	if cfg.DryRun {
		log.Warn("DRY RUN, the script will not be written")
	}
	log.Info("")

	// nil means the selection saved in the script.
	var nodes []nodegraph.Node
	if cfg.AllNodes {
		nodes = sess.Nodes()
	} else if len(sess.Selected()) == 0 {
		log.Warn("Nothing selected in %s; use --all to process every backdrop", cfg.ScriptPath)
		return 1
	}

	// Phase 3: Cancel between backdrops on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing current backdrop…")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Phase 4: Replace.
	r := replace.New(sess, resolve.New(&cfg, nil), prompter(&cfg, log), log,
		replace.WithOverride(cfg.OverridePath))
	results, stats := r.Run(ctx, nodes)

	logSummary(log, results, stats)

	if stats.Replaced > 0 && !cfg.DryRun {
		if err := sess.Save(cfg.OutputPath); err != nil {
			log.Error("Cannot write script: %v", err)
			return 1
		}
		log.Success("Wrote %s", cfg.OutputPath)
	}

	if cfg.MetricsFile != "" {
		rec := metrics.New()
		rec.Record(stats)
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Warn("Cannot write metrics: %v", err)
		}
	}

	if stats.Replaced == 0 {
		return 1
	}
	return 0
}

// prompter picks the disambiguation collaborator. The interactive picker
// needs a terminal on stdin; without one, ambiguous shots are skipped.
func prompter(cfg *config.Config, log *logging.Logger) replace.Prompter {
	picker := ui.NewPicker(os.Stdin, os.Stdout)
	if cfg.Pick == config.PickInteractive && !term.IsTerminal(os.Stdin) {
		log.Warn("stdin is not a terminal; ambiguous shots will be skipped (see --pick)")
		return ui.ForMode(config.PickSkip, picker)
	}
	return ui.ForMode(cfg.Pick, picker)
}
