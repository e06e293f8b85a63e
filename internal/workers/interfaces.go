// Package workers runs the background jobs of the privacy node.
// It defines the Worker interface and a Workers aggregate that runs several
// workers until their context ends.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Discoverer runs one network discovery round and reports how many directory
// entries changed.
type Discoverer interface {
	Discover(ctx context.Context) (int, error)
}
