package resolve

import "github.com/backmassage/camswap/internal/shot"

// Wildcard is the token substituted for a widened component.
const Wildcard = "*"

// Mode widens resolution by replacing components with [Wildcard].
type Mode struct {
	WidenEpisode  bool
	WidenSequence bool
}

// uniq drops empty strings and repeats, keeping first occurrence order.
func uniq(in ...string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// projectVariants: raw token, template alias, global alias.
func projectVariants(project shot.Token, tpl Template, global map[string]string) []string {
	return uniq(
		project.Text,
		lookupAlias(tpl.Aliases, project.Text),
		lookupAlias(global, project.Text),
	)
}

// episodeVariants: raw, 2-digit and 3-digit padded, suffix kept.
func episodeVariants(ep shot.Token, mode Mode) []string {
	if mode.WidenEpisode {
		return []string{Wildcard}
	}
	return uniq(ep.Text, ep.Padded(2), ep.Padded(3))
}

// sequenceVariants: raw, 3-digit and 4-digit padded.
func sequenceVariants(seq shot.Token, mode Mode) []string {
	if mode.WidenSequence {
		return []string{Wildcard}
	}
	return uniq(seq.Text, seq.Padded(3), seq.Padded(4))
}

// shotVariants: raw, 3-digit and 4-digit padded. Shots are never widened;
// a wildcard shot would match every camera in the sequence.
func shotVariants(sh shot.Token) []string {
	return uniq(sh.Text, sh.Padded(3), sh.Padded(4))
}

// fileVariants returns camera file names for the compound stems, the
// "_cam" form of each stem first.
func fileVariants(ext string, stems ...string) []string {
	names := make([]string, 0, 2*len(stems))
	for _, stem := range stems {
		names = append(names, stem+"_cam"+ext, stem+ext)
	}
	return uniq(names...)
}
