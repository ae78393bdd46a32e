package solver

import "sync/atomic"

// worker runs a search on its own goroutine so a timeout can preempt it.
type worker struct {
	stop atomic.Bool
	done chan struct{}
	out  outcome
}

func startWorker(s *search) *worker {
	w := &worker{done: make(chan struct{})}
	s.stop = &w.stop
	go func() {
		defer close(w.done)
		w.out = s.run()
	}()
	return w
}

// Done is closed once the search has returned.
func (w *worker) Done() <-chan struct{} {
	return w.done
}

// Stop asks the search to halt and blocks until it has returned its best assignment.
// The search checks the flag at every node, so the wait is bounded by one node of work.
func (w *worker) Stop() outcome {
	w.stop.Store(true)
	<-w.done
	return w.out
}
