package task

import (
	"sync"
	"time"
)

// RepeatingTask executes a function in a specific interval asynchronously
type RepeatingTask struct {
	fn       func()
	interval time.Duration

	mtx     sync.Mutex
	stop    chan struct{}
	stopped chan struct{}
}

// NewRepeating creates a new repeating asynchronous task.
// The interval has to be positive.
func NewRepeating(fn func(), interval time.Duration) *RepeatingTask {
	return &RepeatingTask{
		fn:       fn,
		interval: interval,
	}
}

// Running returns whether the task is currently scheduled
func (task *RepeatingTask) Running() bool {
	task.mtx.Lock()
	defer task.mtx.Unlock()
	return task.stop != nil
}

// Start starts the repeating task.
// If the task is already running, this is a no-op.
func (task *RepeatingTask) Start() {
	task.mtx.Lock()
	defer task.mtx.Unlock()
	if task.stop != nil {
		return
	}

	stop := make(chan struct{})
	stopped := make(chan struct{})
	task.stop = stop
	task.stopped = stopped

	go func() {
		defer close(stopped)
		ticker := time.NewTicker(task.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				task.fn()
			case <-stop:
				return
			}
		}
	}()
}

// Stop stops the repeating task and waits for a running execution to finish.
// If the task is not running, this is a no-op.
// forceExec defines whether to execute the task one last time just before the task shuts down.
func (task *RepeatingTask) Stop(forceExec bool) {
	task.mtx.Lock()
	if task.stop == nil {
		task.mtx.Unlock()
		return
	}
	close(task.stop)
	stopped := task.stopped
	task.stop = nil
	task.stopped = nil
	task.mtx.Unlock()

	<-stopped
	if forceExec {
		task.fn()
	}
}
