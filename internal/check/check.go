// Package check provides --check diagnostics (RunCheck) and pre-run
// validation (Preflight) for the script, camera roots and layout templates.
package check

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/backmassage/camswap/internal/config"
	"github.com/backmassage/camswap/internal/resolve"
	"github.com/backmassage/camswap/internal/shot"
)

// samplePlate is the plate path whose identity illustrates each template
// in verbose --check output.
const samplePlate = "/show/Project/02_production/ep01/sq010/sq010_sh010/comp/plate.exr"

// Sentinel errors returned by Preflight.
var (
	ErrScriptNotFound   = errors.New("node script not found")
	ErrOverrideNotFound = errors.New("camera file given with --path not found")
	ErrBadTemplate      = errors.New("invalid layout template")
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// RunCheck reports on roots, templates and aliases. It returns false when a
// template is malformed or no root is reachable.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Conventions Check ===")

	r := resolve.New(cfg, nil)
	ok := checkRoots(r.Roots, log)
	if !checkTemplates(r, log) {
		ok = false
	}
	checkAliases(r.Aliases, log)
	if cfg.ConventionsFile != "" {
		log.Info("Conventions file: %s", cfg.ConventionsFile)
	}
	log.Info("Camera file extension: %s", cfg.Extension)
	return ok
}

// checkRoots logs every root and reports whether at least one is a directory.
func checkRoots(roots []string, log Logger) bool {
	log.Info("Roots:")
	reachable := 0
	for _, root := range roots {
		if isDir(root) {
			log.Success("  %s", root)
			reachable++
		} else {
			log.Warn("  %s (not reachable)", root)
		}
	}
	if reachable == 0 {
		log.Error("No camera root is reachable")
		return false
	}
	return true
}

// checkTemplates validates every layout and, at debug level, shows the
// first path it generates for samplePlate.
func checkTemplates(r *resolve.Resolver, log Logger) bool {
	log.Info("Templates (priority order):")
	sample, _ := shot.Extract(samplePlate)
	ok := true
	for i, t := range r.Templates {
		if err := resolve.ValidateLayout(t.Layout); err != nil {
			log.Error("  %d. %s: %v", i+1, t.Name, err)
			ok = false
			continue
		}
		log.Success("  %d. %s", i+1, t.Name)
		log.Debug("     %s", t.Layout)
		if paths := r.Expand(t, sample, resolve.Mode{}); len(paths) > 0 {
			log.Debug("     e.g. %s", paths[0])
		}
	}
	return ok
}

func checkAliases(aliases map[string]string, log Logger) {
	if len(aliases) == 0 {
		return
	}
	log.Info("Project aliases: %d", len(aliases))
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		log.Debug("  %s -> %s", k, aliases[k])
	}
}

// Preflight is the pre-run validation: the script must exist, a --path
// override must name a file, and every template must be well formed.
// Unreachable roots are not fatal; those shots are simply unresolved.
func Preflight(cfg *config.Config) error {
	if !isFile(cfg.ScriptPath) {
		return fmt.Errorf("%w: %s", ErrScriptNotFound, cfg.ScriptPath)
	}
	if cfg.OverridePath != "" && !isFile(cfg.OverridePath) {
		return fmt.Errorf("%w: %s", ErrOverrideNotFound, cfg.OverridePath)
	}
	for _, t := range resolve.New(cfg, nil).Templates {
		if err := resolve.ValidateLayout(t.Layout); err != nil {
			return fmt.Errorf("%w %q: %v", ErrBadTemplate, t.Name, err)
		}
	}
	return nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
