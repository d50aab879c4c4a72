package placement

import (
	"errors"
	"sync"

	"github.com/cuemby/burrow/pkg/log"
	"github.com/rs/zerolog"
)

// ErrWorkerFull is returned when the task queue has no free slot
var ErrWorkerFull = errors.New("placement worker queue is full")

const defaultWorkerCapacity = 128

// TaskRunner consumes tasks dispatched by a Worker
type TaskRunner interface {
	Run(t Task)
}

// Worker is the single-threaded driver the placement runner lives on: one
// goroutine draining a bounded task queue in arrival order. Handlers spawn
// their director calls onto independent goroutines, so the driver itself
// never waits on the network.
type Worker struct {
	name     string
	sender   chan<- Task
	receiver <-chan Task
	wg       sync.WaitGroup
	logger   zerolog.Logger
}

// NewWorker creates a worker with the given queue capacity.
// capacity <= 0 selects the default.
func NewWorker(name string, capacity int) *Worker {
	if capacity <= 0 {
		capacity = defaultWorkerCapacity
	}
	ch := make(chan Task, capacity)
	return &Worker{
		name:     name,
		sender:   ch,
		receiver: ch,
		logger:   log.WithComponent(name),
	}
}

// Start begins draining the queue into runner
func (w *Worker) Start(runner TaskRunner) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.logger.Info().Msg("Placement worker started")
		for task := range w.receiver {
			if task.Type == TaskTypeStop {
				w.logger.Info().Msg("Placement worker stopped")
				return
			}
			runner.Run(task)
		}
	}()
}

// Schedule enqueues a task without blocking
func (w *Worker) Schedule(task Task) error {
	select {
	case w.sender <- task:
		return nil
	default:
		w.logger.Error().Stringer("task", task).Msg("Task queue is full, dropping task")
		return ErrWorkerFull
	}
}

// Stop drains outstanding tasks and terminates the worker goroutine
func (w *Worker) Stop() {
	w.sender <- Task{Type: TaskTypeStop}
	w.wg.Wait()
}
