package resolve

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/camswap/internal/config"
	"github.com/backmassage/camswap/internal/shot"
)

// Stage is one step of the escalation policy.
type Stage struct {
	Name     string
	Mode     Mode
	Wildcard bool
}

// Escalation is the fixed fallback order used by [Resolver.Resolve]: the
// episode is widened before the sequence because episode folders are the
// least consistently named level.
var Escalation = []Stage{
	{Name: "exact"},
	{Name: "widen-episode", Mode: Mode{WidenEpisode: true}, Wildcard: true},
	{Name: "widen-sequence", Mode: Mode{WidenEpisode: true, WidenSequence: true}, Wildcard: true},
}

// Resolver expands identities into candidate paths and checks them
// against FS.
type Resolver struct {
	Roots     []string
	Templates []Template
	Aliases   map[string]string
	Ext       string
	FS        FS
}

// New builds a Resolver from cfg. Config templates are appended to
// [DefaultTemplates] unless cfg.ReplaceTemplates is set; config aliases
// override [DefaultAliases]. A nil fsys probes the local filesystem.
func New(cfg *config.Config, fsys FS) *Resolver {
	if fsys == nil {
		fsys = OSFS{}
	}

	var templates []Template
	if !cfg.ReplaceTemplates {
		templates = append(templates, DefaultTemplates...)
	}
	for _, t := range cfg.Templates {
		templates = append(templates, Template{Name: t.Name, Layout: t.Layout, Aliases: t.Aliases})
	}

	aliases := make(map[string]string, len(DefaultAliases)+len(cfg.Aliases))
	for k, v := range DefaultAliases {
		aliases[k] = v
	}
	for k, v := range cfg.Aliases {
		aliases[k] = v
	}

	roots := make([]string, 0, len(cfg.Roots))
	for _, r := range cfg.Roots {
		if r = strings.TrimRight(strings.TrimSpace(r), `/\`); r != "" {
			roots = append(roots, r)
		}
	}

	return &Resolver{
		Roots:     roots,
		Templates: templates,
		Aliases:   aliases,
		Ext:       cfg.Extension,
		FS:        fsys,
	}
}

// Candidates returns every generated path for id under mode, deduplicated
// in generation order: roots, templates, projects, episodes, sequences,
// shots, file names.
func (r *Resolver) Candidates(id shot.Identity, mode Mode) []string {
	var out []string
	seen := make(map[string]bool)
	for _, root := range r.Roots {
		for _, tpl := range r.Templates {
			for _, p := range r.expand(root, tpl, id, mode) {
				if !seen[p] {
					seen[p] = true
					out = append(out, p)
				}
			}
		}
	}
	return out
}

// Expand generates the paths of a single template, for per-template tests
// and diagnostics.
func (r *Resolver) Expand(tpl Template, id shot.Identity, mode Mode) []string {
	var out []string
	for _, root := range r.Roots {
		out = append(out, r.expand(root, tpl, id, mode)...)
	}
	return uniq(out...)
}

func (r *Resolver) expand(root string, tpl Template, id shot.Identity, mode Mode) []string {
	var out []string
	for _, project := range projectVariants(id.Project, tpl, r.Aliases) {
		for _, ep := range episodeVariants(id.Episode, mode) {
			for _, seq := range sequenceVariants(id.Sequence, mode) {
				for _, sh := range shotVariants(id.Shot) {
					seqShot := seq + "_" + sh
					epSeqShot := ep + "_" + seqShot
					for _, file := range fileVariants(r.Ext, seqShot, epSeqShot) {
						rep := strings.NewReplacer(
							phRoot, root,
							phProject, project,
							phEpisode, ep,
							phSequence, seq,
							phShot, sh,
							phSeqShot, seqShot,
							phEpSeqShot, epSeqShot,
							phFile, file,
						)
						out = append(out, filepath.FromSlash(rep.Replace(tpl.Layout)))
					}
				}
			}
		}
	}
	return out
}

// Exact returns the generated paths that exist, in generation order.
func (r *Resolver) Exact(id shot.Identity, mode Mode) []string {
	var hits []string
	for _, p := range r.Candidates(id, mode) {
		if r.FS.Exists(p) {
			hits = append(hits, p)
		}
	}
	return hits
}

// Wildcard glob-expands every generated path that carries a wildcard token
// and returns the existing files, deduplicated across templates and
// variants. Hits of a single pattern are sorted.
func (r *Resolver) Wildcard(id shot.Identity, mode Mode) []string {
	var hits []string
	seen := make(map[string]bool)
	for _, p := range r.Candidates(id, mode) {
		if !hasMeta(p) {
			continue
		}
		matches, err := r.FS.Glob(p)
		if err != nil {
			// Only malformed patterns fail; a bad alias must not stop
			// the remaining templates.
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			if seen[m] || !r.FS.Exists(m) {
				continue
			}
			seen[m] = true
			hits = append(hits, m)
		}
	}
	return hits
}

// Resolve walks [Escalation] and returns the hits of the first stage that
// finds anything, with that stage's name. Both are empty when every stage
// comes back empty.
func (r *Resolver) Resolve(id shot.Identity) ([]string, string) {
	for _, st := range Escalation {
		var hits []string
		if st.Wildcard {
			hits = r.Wildcard(id, st.Mode)
		} else {
			hits = r.Exact(id, st.Mode)
		}
		if len(hits) > 0 {
			return hits, st.Name
		}
	}
	return nil, ""
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[")
}
