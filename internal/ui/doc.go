// Package ui implements the user-facing collaborator of a replacement run:
// a terminal picker for ambiguous camera files, non-interactive
// alternatives, and the unresolved-shot notice.
package ui
