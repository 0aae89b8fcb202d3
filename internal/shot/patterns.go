package shot

import "regexp"

// StageMarker is the pipeline-stage folder that anchors project and
// fallback-episode detection.
const StageMarker = "02_production"

// Kind classifies what a pattern contributes.
type Kind int

const (
	KindShot      Kind = iota // sh020
	KindSequence              // sq010
	KindEpisode               // ep01
	KindProject               // <project>/02_production
	KindAuxiliary             // scoring-only vocabulary (char, beauty)
)

// Pattern pairs a name with a compiled regex. Patterns is evaluated in
// order by [Extract] and summed over by [Score].
type Pattern struct {
	Name string
	Kind Kind
	Re   *regexp.Regexp
}

var (
	reShot      = regexp.MustCompile(`(?i)(sh)([0-9]+)([a-z]*)([0-9]?)`)
	reSequence  = regexp.MustCompile(`(?i)(sq)([0-9]+)([a-z]*)([0-9]?)`)
	reEpisode   = regexp.MustCompile(`(?i)(ep)([0-9]+)([a-z]*)([0-9]?)`)
	reProject   = regexp.MustCompile(`[\\/]([^\\/]+)[\\/]` + regexp.QuoteMeta(StageMarker) + `(?:[\\/]|$)`)
	reCharacter = regexp.MustCompile(`(?i)char`)
	reBeauty    = regexp.MustCompile(`(?i)beauty`)

	// reEpisodeStage is the secondary episode rule: the folder directly
	// below the stage marker, when it holds a digit run ("e01", "101").
	reEpisodeStage = regexp.MustCompile(
		`(?i)[\\/]` + regexp.QuoteMeta(StageMarker) + `[\\/]([a-z]*)([0-9]+)([a-z]*)(?:[\\/]|$)`)
)

// Patterns is the ordered convention table. Order matters for extraction:
// shot, sequence, episode, project.
var Patterns = []Pattern{
	{"shot", KindShot, reShot},
	{"sequence", KindSequence, reSequence},
	{"episode", KindEpisode, reEpisode},
	{"project", KindProject, reProject},
	{"character", KindAuxiliary, reCharacter},
	{"beauty", KindAuxiliary, reBeauty},
}

// EpisodeFallback is consulted by [Extract] only when the primary episode
// pattern finds nothing. It does not contribute to [Score].
var EpisodeFallback = Pattern{"episode-stage", KindEpisode, reEpisodeStage}
