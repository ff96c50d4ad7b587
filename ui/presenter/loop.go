package presenter

import "sync"

// Loop drives periodic UI work: it runs results posted by background
// goroutines, flushes pending redraws and reschedules itself.
//
// Everything Tick does happens on the UI thread. The zero value is usable
// (methods are nil-safe).
type Loop struct {
	Editor   *EditorPresenter
	Schedule func()

	mu      sync.Mutex
	pending []func()
}

func NewLoop(editor *EditorPresenter, schedule func()) *Loop {
	return &Loop{Editor: editor, Schedule: schedule}
}

// Post queues fn for the next Tick. Safe to call from any goroutine.
func (l *Loop) Post(fn func()) {
	if l == nil || fn == nil {
		return
	}
	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()
}

// Tick runs queued results in posting order, then redraws if needed.
func (l *Loop) Tick() {
	if l == nil {
		return
	}
	l.mu.Lock()
	batch := l.pending
	l.pending = nil
	l.mu.Unlock()
	for _, fn := range batch {
		fn()
	}
	if l.Editor != nil {
		l.Editor.Flush()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
