package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/events"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var received []events.Event
	dispatcher.Subscribe(events.EventEmployeeSignedUp, func(_ context.Context, e events.Event) error {
		received = append(received, e)
		return nil
	})

	event := events.Event{ID: "1", Type: events.EventEmployeeSignedUp, EmployeeID: "emp-1"}
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, received, 1)
	assert.Equal(t, "emp-1", received[0].EmployeeID)
}

func TestDispatcherIgnoresUnrelatedEvents(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	calls := 0
	dispatcher.Subscribe(events.EventEmployeeDeleted, func(context.Context, events.Event) error {
		calls++
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventEmployeeUpdated}))
	assert.Zero(t, calls)
}

func TestDispatcherContinuesPastHandlerError(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	calls := 0
	dispatcher.Subscribe(events.EventEmployeeUpdated, func(context.Context, events.Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(events.EventEmployeeUpdated, func(context.Context, events.Event) error {
		calls++
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventEmployeeUpdated}))
	assert.Equal(t, 1, calls)
}
