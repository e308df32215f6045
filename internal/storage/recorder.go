package storage

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrRecorderClosed is returned by Record after Close.
var ErrRecorderClosed = errors.New("storage: recorder closed")

type entry struct {
	kind   string
	detail string
}

// Recorder writes events of one session from a background goroutine,
// so the game loop never waits on disk.
// When the buffer is full new events are dropped.
type Recorder struct {
	journal   *Journal
	sessionID int64
	ch        chan entry
	done      chan struct{}

	mu      sync.Mutex
	closed  bool
	dropped int
}

// NewRecorder starts the writer goroutine for sessionID.
func NewRecorder(j *Journal, sessionID int64, buffer int) *Recorder {
	if buffer <= 0 {
		buffer = 64
	}
	r := &Recorder{
		journal:   j,
		sessionID: sessionID,
		ch:        make(chan entry, buffer),
		done:      make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *Recorder) run() {
	defer close(r.done)
	for e := range r.ch {
		if err := r.journal.RecordEvent(r.sessionID, e.kind, e.detail); err != nil {
			log.Warnf("[Journal] %v", err)
		}
	}
}

// SessionID returns the session this recorder writes to.
func (r *Recorder) SessionID() int64 {
	return r.sessionID
}

// Record queues an event without blocking.
func (r *Recorder) Record(kind, detail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRecorderClosed
	}
	select {
	case r.ch <- entry{kind: kind, detail: detail}:
	default:
		r.dropped++
	}
	return nil
}

// Dropped returns how many events were lost to a full buffer.
func (r *Recorder) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// Close flushes queued events and stops the goroutine. Safe to call twice.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.ch)
	r.mu.Unlock()
	<-r.done
}
