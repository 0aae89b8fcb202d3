package replace

import "errors"

// Per-backdrop outcomes. None of them aborts a run.
var (
	ErrIdentityIncomplete = errors.New("shot identity incomplete")
	ErrPathNotFound       = errors.New("no camera file found")
	ErrAmbiguousPath      = errors.New("several camera files and none chosen")
	ErrNoCameras          = errors.New("no camera nodes in backdrop")
)
