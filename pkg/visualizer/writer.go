package visualizer

import (
	"io"
	"sync"
)

// syncWriter serializes writes from concurrent runs and the progress bar.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (r *syncWriter) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.w.Write(p)
}
