// Package replace drives camera replacement across backdrops.
//
// Types:
//   - Replacer (host, resolver, splicer, prompter, logger)
//   - Result (container, resolved path, new camera)
//   - Stats (per-run outcome counters)
//
// Functions:
//   - GroupByContainer(host, nodes) → distinct backdrops, first-seen order
//   - IdentifyShot(host, backdrop) → shot identity from its Read nodes
//   - (*Replacer).Run(ctx, nodes) → results and stats; the host selection
//     is captured before and restored after, with new cameras selected.
//
// Every failure is contained to its backdrop: identity, resolution and
// disambiguation failures skip the backdrop, splice failures skip the
// camera. Nothing here aborts the batch.
package replace
