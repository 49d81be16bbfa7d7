package audit

import (
	"context"
	"log"
	"sync"
)

type Event struct {
	BarbershopID string
	UserID       *string
	Action       string
	Entity       string
	EntityID     *string
	Metadata     any
}

// Dispatcher writes audit events from a single background worker so the
// request path never waits on the audit table.
type Dispatcher struct {
	writer Writer
	queue  chan Event
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(writer Writer) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		queue:  make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		if err := d.writer.Write(context.Background(), ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch is a no-op on a nil *Dispatcher.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		// full queue: drop, never break the API
		log.Println("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queued ones to be written.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

// Ptr is a helper for the optional id fields of Event.
func Ptr(s string) *string {
	return &s
}
