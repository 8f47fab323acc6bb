// Package service holds the view-model layer: each screen's data-access and
// view-state logic, decoupled from HTTP and rendering. Services are
// constructed with their store capability (repositories) and receive the
// session capability per call.
package service

// LoadState is the terminal state of a screen load. A failed fetch is a
// distinct state from an empty result; the two are never conflated.
type LoadState string

const (
	StateLoaded LoadState = "loaded"
	StateEmpty  LoadState = "empty"
	StateFailed LoadState = "failed"
)

// retryOnce runs fn, retrying a single time on failure. Reads in this system
// get exactly one automatic retry; writes are never retried.
func retryOnce(fn func() error) error {
	if err := fn(); err != nil {
		return fn()
	}
	return nil
}
