package worker

// Task is a unit of deferred work, typically a notification push that must
// not hold up an HTTP response.
type Task func()

// Worker drains its own task channel on a single goroutine, so tasks handed
// to the same worker run in submission order.
type Worker struct {
	taskQueue chan Task
	stop      chan struct{}
}

func NewWorker() *Worker {
	return &Worker{
		taskQueue: make(chan Task),
		stop:      make(chan struct{}),
	}
}

// Start launches the worker goroutine. It runs until Stop is called.
func (w *Worker) Start() {
	go func() {
		for {
			select {
			case task := <-w.taskQueue:
				task()
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop shuts the worker down. Tasks already submitted but not yet picked up
// are dropped.
func (w *Worker) Stop() {
	close(w.stop)
}

// Submit blocks until the worker accepts the task.
func (w *Worker) Submit(task Task) {
	w.taskQueue <- task
}
