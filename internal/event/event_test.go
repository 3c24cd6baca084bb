package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchOnlySubscribedTypes(t *testing.T) {
	d := NewDispatcher()
	rec := &recorder{}
	d.Subscribe(SpinStarted, rec)

	d.Dispatch(Event{Type: SpinStarted, Data: SpinData{Coins: 700}})
	d.Dispatch(Event{Type: RewardGranted})

	if len(rec.got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.got))
	}
	if data, ok := rec.got[0].Data.(SpinData); !ok || data.Coins != 700 {
		t.Errorf("unexpected payload: %#v", rec.got[0].Data)
	}
}

func TestSubscribeAllAndListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var seen []EventType
	d.SubscribeAll(ListenerFunc(func(e Event) { seen = append(seen, e.Type) }), SpinFinished, RewardGranted)

	d.Dispatch(Event{Type: SpinFinished})
	d.Dispatch(Event{Type: SpinRejected})
	d.Dispatch(Event{Type: RewardGranted})

	if len(seen) != 2 || seen[0] != SpinFinished || seen[1] != RewardGranted {
		t.Errorf("unexpected events: %v", seen)
	}
}
