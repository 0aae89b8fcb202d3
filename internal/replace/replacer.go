package replace

import (
	"context"
	"errors"
	"fmt"

	"github.com/backmassage/camswap/internal/nodegraph"
	"github.com/backmassage/camswap/internal/shot"
	"github.com/backmassage/camswap/internal/splice"
)

// Resolver turns an identity into candidate camera files and names the
// escalation stage that found them.
type Resolver interface {
	Resolve(id shot.Identity) ([]string, string)
}

// Prompter is the user-facing collaborator.
type Prompter interface {
	// Disambiguate blocks until one of paths is chosen; false means cancelled.
	Disambiguate(paths []string, id shot.Identity) (string, bool)
	// NotifyUnresolved reports a shot for which no camera file was found.
	NotifyUnresolved(id shot.Identity)
}

// Logger is the minimal logging interface needed by Replacer.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Result records one successful substitution.
type Result struct {
	Container nodegraph.Node
	Path      string
	Camera    nodegraph.Node
}

// Replacer runs replacements against one host session.
type Replacer struct {
	host     nodegraph.Host
	resolver Resolver
	splicer  *splice.Splicer
	prompt   Prompter
	log      Logger
	override string
}

// Option customizes a Replacer.
type Option func(*Replacer)

// WithOverride makes every backdrop use path instead of resolving one.
func WithOverride(path string) Option {
	return func(r *Replacer) { r.override = path }
}

// New returns a Replacer.
func New(host nodegraph.Host, resolver Resolver, prompt Prompter, log Logger, opts ...Option) *Replacer {
	r := &Replacer{
		host:     host,
		resolver: resolver,
		splicer:  splice.New(host),
		prompt:   prompt,
		log:      log,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Run replaces the cameras of every backdrop reached by nodes. A nil slice
// means the host's current selection. Backdrops are processed in order
// until ctx is cancelled.
func (r *Replacer) Run(ctx context.Context, nodes []nodegraph.Node) ([]Result, Stats) {
	var stats Stats

	saved := r.host.Selected()
	if nodes == nil {
		nodes = saved
	}

	var results []Result
	defer func() { r.restoreSelection(saved, results) }()

	containers := GroupByContainer(r.host, nodes)
	stats.Containers = len(containers)

	for i, bd := range containers {
		if ctx.Err() != nil {
			r.log.Warn("Interrupted, %d backdrop(s) left unprocessed", len(containers)-i)
			break
		}
		res, err := r.processContainer(bd, &stats)
		results = append(results, res...)
		if err != nil {
			r.report(bd, err, &stats)
		}
	}
	return results, stats
}

// processContainer identifies, resolves and splices one backdrop. The
// returned error is the reason the backdrop was skipped, if any.
func (r *Replacer) processContainer(bd nodegraph.Node, stats *Stats) ([]Result, error) {
	id, ok := IdentifyShot(r.host, bd)
	if !ok {
		return nil, ErrIdentityIncomplete
	}
	r.log.Info("%s: shot %s", bd.Name(), id)

	cameras := Cameras(r.host, bd)
	if len(cameras) == 0 {
		return nil, ErrNoCameras
	}

	path, err := r.choosePath(id)
	if err != nil {
		return nil, err
	}
	r.log.Info("  camera file: %s", path)

	var results []Result
	for _, old := range cameras {
		name := old.Name()
		cam, err := r.splicer.Replace(old, path)
		if err != nil {
			r.log.Error("  %s: %v", name, err)
			stats.Failed++
			continue
		}
		r.log.Success("  %s -> %s", name, cam.Name())
		stats.Replaced++
		results = append(results, Result{Container: bd, Path: path, Camera: cam})
	}
	return results, nil
}

// choosePath resolves candidates and narrows them to one path.
func (r *Replacer) choosePath(id shot.Identity) (string, error) {
	if r.override != "" {
		return r.override, nil
	}

	paths, stage := r.resolver.Resolve(id)
	switch len(paths) {
	case 0:
		r.prompt.NotifyUnresolved(id)
		return "", fmt.Errorf("%w for %s", ErrPathNotFound, id)
	case 1:
		r.log.Debug("  resolved at stage %s", stage)
		return paths[0], nil
	}

	r.log.Debug("  %d candidates at stage %s", len(paths), stage)
	chosen, ok := r.prompt.Disambiguate(paths, id)
	if !ok || chosen == "" {
		return "", fmt.Errorf("%w for %s (%d candidates)", ErrAmbiguousPath, id, len(paths))
	}
	return chosen, nil
}

// report logs why a backdrop was skipped and counts it.
func (r *Replacer) report(bd nodegraph.Node, err error, stats *Stats) {
	switch {
	case errors.Is(err, ErrIdentityIncomplete):
		stats.Unidentified++
		r.log.Debug("%s: no shot identity in Read paths, skipped", bd.Name())
	case errors.Is(err, ErrNoCameras):
		stats.NoCameras++
		r.log.Debug("%s: no camera nodes, skipped", bd.Name())
	case errors.Is(err, ErrPathNotFound):
		stats.Unresolved++
		r.log.Warn("%s: %v", bd.Name(), err)
	case errors.Is(err, ErrAmbiguousPath):
		stats.Cancelled++
		r.log.Warn("%s: %v", bd.Name(), err)
	default:
		r.log.Error("%s: %v", bd.Name(), err)
	}
}

// restoreSelection reselects the nodes captured before the run that still
// exist, then selects every new camera.
func (r *Replacer) restoreSelection(saved []nodegraph.Node, results []Result) {
	r.host.ClearSelection()
	for _, n := range saved {
		if r.host.Exists(n) {
			n.SetSelected(true)
		}
	}
	for _, res := range results {
		if r.host.Exists(res.Camera) {
			res.Camera.SetSelected(true)
		}
	}
}
