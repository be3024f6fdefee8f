package observe

import "sync"

// Recorder stores the values passed to its Handler.
type Recorder struct {
	mu     sync.Mutex
	values []any
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Handler() Handler {
	return r.Record
}

func (r *Recorder) Record(v any) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.values = append(r.values, v)
	r.mu.Unlock()
}

// Values returns a copy of the recorded values in order.
func (r *Recorder) Values() []any {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]any, len(r.values))
	copy(res, r.values)
	return res
}

func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

func (r *Recorder) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.values = nil
	r.mu.Unlock()
}
