package render_queue

// RenderQueueBuilderOption is a functional option for configuring a new RenderQueue.
type RenderQueueBuilderOption func(*renderQueue)

// NewRenderQueue creates an empty render queue.
//
// Parameters:
//   - options: optional configuration options
//
// Returns:
//   - RenderQueue: the new queue
func NewRenderQueue(options ...RenderQueueBuilderOption) RenderQueue {
	q := &renderQueue{}
	for _, opt := range options {
		opt(q)
	}
	return q
}

// WithInitialCapacity pre-allocates the command slice to avoid growth during
// the first frame.
//
// Parameters:
//   - capacity: the number of commands to reserve space for
//
// Returns:
//   - RenderQueueBuilderOption: the option to pass to NewRenderQueue
func WithInitialCapacity(capacity int) RenderQueueBuilderOption {
	return func(q *renderQueue) {
		if capacity > 0 {
			q.commands = make([]DrawCommand, 0, capacity)
		}
	}
}
