package shot

import "sort"

// pointsPerMatch is the weight of one pattern hit.
const pointsPerMatch = 10

// Candidate is a path with its relevance score.
type Candidate struct {
	Path  string
	Score int
}

// Score sums 10 points for every match of every pattern in [Patterns],
// auxiliary vocabulary included. Matching is unanchored over the whole
// string, so a token repeated in several path segments counts each time.
func Score(path string) int {
	score := 0
	for _, p := range Patterns {
		score += pointsPerMatch * len(p.Re.FindAllStringIndex(path, -1))
	}
	return score
}

// Rank scores paths and returns them by descending score. Equal scores keep
// their input order.
func Rank(paths []string) []Candidate {
	out := make([]Candidate, len(paths))
	for i, p := range paths {
		out[i] = Candidate{Path: p, Score: Score(p)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// SelectBest returns the highest-scoring path; the first one encountered
// wins a tie. False when paths is empty.
func SelectBest(paths []string) (string, bool) {
	best, bestScore := "", -1
	for _, p := range paths {
		if s := Score(p); s > bestScore {
			best, bestScore = p, s
		}
	}
	return best, bestScore >= 0
}
