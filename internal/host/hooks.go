package host

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mesh-intelligence/contenttypes/pkg/types"
)

// Hooks is a phase scheduler. Tasks queued for a phase run once, in
// queue order, when the phase fires.
type Hooks struct {
	mu     sync.Mutex
	queues map[types.Phase][]types.Task
	logger *slog.Logger
}

// NewHooks returns an empty scheduler. A nil logger discards output.
func NewHooks(logger *slog.Logger) *Hooks {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hooks{
		queues: make(map[types.Phase][]types.Task),
		logger: logger,
	}
}

// ScheduleOnce queues task for phase.
func (h *Hooks) ScheduleOnce(phase types.Phase, task types.Task) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.queues[phase] = append(h.queues[phase], task)
}

// Pending returns the number of tasks waiting for phase.
func (h *Hooks) Pending(phase types.Phase) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.queues[phase])
}

// Fire runs the tasks queued for phase until the queue is empty. Tasks
// queued while the phase fires run in the same pass. The first task error
// is returned unchanged; that task is consumed and the rest stay queued
// for the next Fire. Cancelling ctx stops Fire between tasks.
func (h *Hooks) Fire(ctx context.Context, phase types.Phase) error {
	ran := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		task, ok := h.next(phase)
		if !ok {
			break
		}

		ran++
		if err := task(); err != nil {
			h.logger.Debug("phase task failed", "phase", phase, "task", ran, "error", err)
			return err
		}
	}

	h.logger.Debug("phase fired", "phase", phase, "tasks", ran)
	return nil
}

// next pops the first task queued for phase.
func (h *Hooks) next(phase types.Phase) (types.Task, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	queue := h.queues[phase]
	if len(queue) == 0 {
		return nil, false
	}
	task := queue[0]
	h.queues[phase] = queue[1:]
	return task, true
}
