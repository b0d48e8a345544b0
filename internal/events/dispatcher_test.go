package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherRunsEveryHandler(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls []string
	d.Subscribe(EventSessionCleared, func(context.Context, Event) error {
		calls = append(calls, "first")
		return errors.New("boom")
	})
	d.Subscribe(EventSessionCleared, func(_ context.Context, e Event) error {
		calls = append(calls, "second")
		if p, ok := e.Payload.(SessionClearedPayload); !ok || p.Reason != "logout" {
			t.Errorf("unexpected payload %#v", e.Payload)
		}
		return nil
	})
	d.Subscribe(EventRequestFailed, func(context.Context, Event) error {
		calls = append(calls, "other")
		return nil
	})

	err := d.Publish(context.Background(), New(EventSessionCleared, SessionClearedPayload{Reason: "logout"}))
	if err == nil || err.Error() != "boom" {
		t.Fatalf("err = %v", err)
	}
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("calls = %v", calls)
	}
}

func TestNewStampsEvent(t *testing.T) {
	e := New(EventCredentialRotated, CredentialRotatedPayload{CredentialName: "sa-tok"})
	if e.ID == "" || e.Timestamp.IsZero() || e.Type != EventCredentialRotated {
		t.Fatalf("unexpected event %+v", e)
	}
	if err := Nop().Publish(context.Background(), e); err != nil {
		t.Fatalf("nop: %v", err)
	}
}
