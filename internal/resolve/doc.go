// Package resolve turns a shot identity into candidate camera file paths.
//
// The expansion is a cross product of roots, layout templates, project
// aliases, episode/sequence/shot spellings and camera file names. Layouts
// live in a declarative [Template] table so each historical directory
// convention can be audited and tested on its own.
//
// Two strategies check the generated paths against the filesystem:
//   - Exact: existence test per path, generation order kept.
//   - Wildcard: glob expansion of paths with wildcard tokens, hits merged
//     and deduplicated.
//
// [Resolver.Resolve] applies the escalation policy: exact, then widened
// episode, then widened episode and sequence.
package resolve
