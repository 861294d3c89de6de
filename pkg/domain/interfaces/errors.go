package interfaces

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is returned by every backend when a lookup matches
// nothing. Callers test it with errors.Is without knowing which backend
// is wired.
var ErrNotFound = goerr.New("record not found")
