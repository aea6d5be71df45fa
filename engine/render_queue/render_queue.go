// package render_queue implements the per-frame draw command queue. Commands
// are accumulated in submission order during a frame and drained exactly once
// by the render core; draining empties the queue so the next frame starts clean.
package render_queue

// RenderQueue accumulates draw commands for one frame.
type RenderQueue interface {
	// AddDrawCommand appends a command to the queue. Commands are retained
	// in submission order.
	//
	// Parameters:
	//   - cmd: the command to enqueue
	AddDrawCommand(cmd DrawCommand)

	// Drain returns all queued commands in submission order and empties the
	// queue. The caller takes ownership of the returned slice.
	//
	// Returns:
	//   - []DrawCommand: the commands queued since the last drain
	Drain() []DrawCommand

	// Len returns the number of commands currently queued.
	//
	// Returns:
	//   - int: the queue length
	Len() int
}

type renderQueue struct {
	commands []DrawCommand
}

var _ RenderQueue = &renderQueue{}

func (q *renderQueue) AddDrawCommand(cmd DrawCommand) {
	q.commands = append(q.commands, cmd)
}

func (q *renderQueue) Drain() []DrawCommand {
	cmds := q.commands
	q.commands = nil
	return cmds
}

func (q *renderQueue) Len() int {
	return len(q.commands)
}
