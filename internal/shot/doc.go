// Package shot parses a shot identity (project, episode, sequence, shot) out
// of pipeline file paths and ranks paths by how much pipeline vocabulary
// they carry.
//
// Types:
//   - Token, Identity (fully populated or not constructed at all)
//   - Pattern (ordered, statically declared regex table)
//   - Candidate (path + relevance score)
//
// Functions:
//   - Extract(path) → (Identity, bool)
//   - Score(path) → int, 10 points per pattern match
//   - SelectBest(paths) → best path, first wins ties
//   - Rank(paths) → []Candidate, stable by descending score
package shot
