package events

import (
	"testing"
	"time"
)

func TestBus_DeliversToEverySubscriber(t *testing.T) {
	b := NewBus()
	a, cancelA := b.Subscribe(4)
	c, cancelC := b.Subscribe(4)
	defer cancelA()
	defer cancelC()

	b.Publish(Event{Type: DoorSlam})

	for i, ch := range []<-chan Event{a, c} {
		select {
		case ev := <-ch:
			if ev.Type != DoorSlam {
				t.Errorf("subscriber %d got %s, want door_slam", i, ev.Type)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d got nothing", i)
		}
	}
}

func TestBus_SlowSubscriberDrops(t *testing.T) {
	b := NewBus()
	_, cancel := b.Subscribe(1)
	defer cancel()

	b.Publish(Event{Type: PingSweep})
	b.Publish(Event{Type: PingSweep})
	b.Publish(Event{Type: PingSweep})

	if got := b.Dropped(); got != 2 {
		t.Errorf("Dropped() = %d, want 2", got)
	}
}

func TestBus_CancelClosesChannel(t *testing.T) {
	b := NewBus()
	ch, cancel := b.Subscribe(1)
	cancel()
	cancel()
	if _, ok := <-ch; ok {
		t.Error("channel still open after cancel")
	}
	if n := b.Subscribers(); n != 0 {
		t.Errorf("Subscribers() = %d, want 0", n)
	}
	b.Publish(Event{Type: Victory})
}

func TestBus_Close(t *testing.T) {
	b := NewBus()
	ch, cancel := b.Subscribe(1)
	b.Close()
	cancel()
	if _, ok := <-ch; ok {
		t.Error("channel still open after Close")
	}
	late, _ := b.Subscribe(1)
	if _, ok := <-late; ok {
		t.Error("subscription after Close is open")
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Emit(Event{Type: LurePlaced})
	r.Emit(Event{Type: PowerDrain})
	if !r.Has(PowerDrain) || r.Has(Breach) {
		t.Errorf("Types() = %v", r.Types())
	}
	r.Reset()
	if len(r.Events) != 0 {
		t.Error("Reset() kept events")
	}
}
