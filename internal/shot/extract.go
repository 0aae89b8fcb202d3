package shot

// Extract parses a shot identity from path. The boolean is false unless
// shot, sequence, episode and project all resolve; partial identities are
// never returned.
func Extract(path string) (Identity, bool) {
	var id Identity
	for _, p := range Patterns {
		m := p.Re.FindStringSubmatch(path)
		if m == nil {
			continue
		}
		switch p.Kind {
		case KindShot:
			id.Shot = newToken(m[1], m[2], m[3], m[4])
		case KindSequence:
			id.Sequence = newToken(m[1], m[2], m[3], m[4])
		case KindEpisode:
			id.Episode = newToken(m[1], m[2], m[3], m[4])
		case KindProject:
			id.Project = Token{Text: m[1]}
		}
	}

	if id.Episode.IsZero() {
		if m := EpisodeFallback.Re.FindStringSubmatch(path); m != nil {
			id.Episode = newToken(m[1], m[2], m[3], "")
		}
	}

	if !id.Complete() {
		return Identity{}, false
	}
	return id, true
}
