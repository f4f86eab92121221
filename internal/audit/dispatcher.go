package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Event struct {
	BarberID *uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

const (
	ActionBookingCreated       = "booking_created"
	ActionBookingConflict      = "booking_conflict"
	ActionBookingStatusChanged = "booking_status_changed"
	ActionBookingCancelled     = "booking_cancelled"
	ActionBarberReviewed       = "barber_reviewed"
)

// Recorder is what use cases depend on.
type Recorder interface {
	Dispatch(ev Event)
}

type discard struct{}

func (discard) Dispatch(Event) {}

// Discard drops every event.
var Discard Recorder = discard{}

// Sink persists one event.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
	done  sync.WaitGroup
	once  sync.Once
}

func NewDispatcher(sink Sink, buffer int) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, buffer),
	}

	d.done.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.done.Done()
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			zap.L().Error("audit write failed", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

// Dispatch never blocks the request path; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		zap.L().Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close drains queued events and stops the worker.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
		d.done.Wait()
	})
}
