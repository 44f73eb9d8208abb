package stream

import "context"

// StreamConsumer replays published search requests through the aggregation
// engine so hot fingerprints stay cached.
type StreamConsumer interface {
	Setup(ctx context.Context) error
	Start(ctx context.Context) error
	Stop() error
}
