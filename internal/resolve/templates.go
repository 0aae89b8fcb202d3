package resolve

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Layout placeholders.
const (
	phRoot      = "{root}"
	phProject   = "{project}"
	phEpisode   = "{episode}"
	phSequence  = "{sequence}"
	phShot      = "{shot}"
	phSeqShot   = "{seqshot}"
	phEpSeqShot = "{epseqshot}"
	phFile      = "{file}"
)

var knownPlaceholders = []string{
	phRoot, phProject, phEpisode, phSequence, phShot, phSeqShot, phEpSeqShot, phFile,
}

// Template is one directory convention. Layout uses "/" separators and the
// placeholders above. Aliases maps a project token to the folder name this
// layout stores it under.
type Template struct {
	Name    string
	Layout  string
	Aliases map[string]string
}

// DefaultTemplates are the layouts camera exports have been published under
// over the life of the pipeline. Order is priority.
var DefaultTemplates = []Template{
	{
		Name:   "episodic",
		Layout: "{root}/{project}/02_production/{episode}/SEQUENCES/{sequence}/SHOTS/{seqshot}/animation/camera/{file}",
	},
	{
		Name:   "episodic-short-shot",
		Layout: "{root}/{project}/02_production/{episode}/SEQUENCES/{sequence}/SHOTS/{shot}/animation/camera/{file}",
	},
	{
		Name:   "flat",
		Layout: "{root}/{project}/02_production/{episode}/{sequence}/{seqshot}/animation/camera/{file}",
	},
	{
		Name:   "feature",
		Layout: "{root}/{project}/02_production/SEQUENCES/{sequence}/SHOTS/{seqshot}/animation/camera/{file}",
	},
	{
		Name:   "publish",
		Layout: "{root}/{project}/02_production/{episode}/SEQUENCES/{sequence}/SHOTS/{seqshot}/animation/publish/camera/{file}",
	},
}

// DefaultAliases is the global project alias table, consulted for every
// template after the template's own aliases.
var DefaultAliases = map[string]string{
	"Suntop": "SUNTOP",
}

var (
	ErrLayoutNoRoot = errors.New("layout must start with {root}")
	ErrLayoutNoFile = errors.New("layout must end with {file}")
)

// ValidateLayout checks that a layout is anchored on {root}, ends in {file}
// and uses only known placeholders.
func ValidateLayout(layout string) error {
	if !strings.HasPrefix(layout, phRoot) {
		return ErrLayoutNoRoot
	}
	if !strings.HasSuffix(layout, phFile) {
		return ErrLayoutNoFile
	}
	rest := layout
	for _, ph := range knownPlaceholders {
		rest = strings.ReplaceAll(rest, ph, "")
	}
	if i := strings.IndexByte(rest, '{'); i >= 0 {
		end := strings.IndexByte(rest[i:], '}')
		if end < 0 {
			return fmt.Errorf("unterminated placeholder in %q", layout)
		}
		return fmt.Errorf("unknown placeholder %s in %q", rest[i:i+end+1], layout)
	}
	return nil
}

// lookupAlias finds key in m, falling back to a case-insensitive match.
// Keys are visited in sorted order so the fallback is deterministic.
func lookupAlias(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.EqualFold(k, key) {
			return m[k]
		}
	}
	return ""
}
