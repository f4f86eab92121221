package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	block  chan struct{}
	err    error
}

func (s *recordingSink) Log(_ context.Context, ev Event) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, 10)

	d.Dispatch(Event{Action: ActionBookingCreated})
	d.Dispatch(Event{Action: ActionBookingCancelled})
	d.Close()

	assert.Equal(t, []string{ActionBookingCreated, ActionBookingCancelled}, actions(sink.events))
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	sink := &recordingSink{block: make(chan struct{})}
	d := NewDispatcher(sink, 1)

	// the worker holds at most one event while blocked, the buffer one more
	for i := 0; i < 5; i++ {
		d.Dispatch(Event{Action: ActionBookingConflict})
	}
	close(sink.block)
	d.Close()

	assert.LessOrEqual(t, len(sink.events), 2)
	assert.GreaterOrEqual(t, len(sink.events), 1)
}

func TestDispatcherSurvivesSinkErrors(t *testing.T) {
	sink := &recordingSink{err: errors.New("db down")}
	d := NewDispatcher(sink, 4)

	d.Dispatch(Event{Action: ActionBarberReviewed})
	d.Dispatch(Event{Action: ActionBarberReviewed})
	d.Close()
	d.Close()

	assert.Len(t, sink.events, 2)
}

func actions(events []Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Action
	}
	return out
}
