package main

import (
	"github.com/backmassage/camswap/internal/display"
	"github.com/backmassage/camswap/internal/logging"
	"github.com/backmassage/camswap/internal/replace"
)

const summaryPathWidth = 72

// logSummary prints the batch summary: one line per new camera, then the
// per-outcome counters.
func logSummary(log *logging.Logger, results []replace.Result, s replace.Stats) {
	log.Info("")
	log.Info("=== Summary ===")
	for _, r := range results {
		log.Info("  %s: %s <- %s", r.Container.Name(), r.Camera.Name(), display.ShortPath(r.Path, summaryPathWidth))
	}
	log.Info("Backdrops:  %d", s.Containers)
	if s.Unidentified > 0 {
		log.Warn("No shot:    %d", s.Unidentified)
	}
	if s.NoCameras > 0 {
		log.Info("No camera:  %d", s.NoCameras)
	}
	if s.Unresolved > 0 {
		log.Warn("Not found:  %d", s.Unresolved)
	}
	if s.Cancelled > 0 {
		log.Warn("Skipped:    %d", s.Cancelled)
	}
	if s.Failed > 0 {
		log.Error("Failed:     %s", display.Plural(s.Failed, "splice"))
	}
	if s.Replaced > 0 {
		log.Success("Replaced %s", display.Plural(s.Replaced, "camera"))
	} else {
		log.Warn("No camera replaced")
	}
}
