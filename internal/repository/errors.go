package repository

import "errors"

// ErrNotFound is returned when a lookup matches no document. Absence is a
// normal outcome for single-document lookups (missing AiData, dangling
// customer reference) and must be distinguishable from store failures, so
// callers test for this sentinel with errors.Is and treat everything else
// as the store being unavailable.
var ErrNotFound = errors.New("document not found")
