package ecs

import (
	"testing"

	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink arbor.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	slider := arbor.NewHSlider(0)
	button := arbor.NewButton("ok")
	ent := sink.Bind(slider)

	var received []ChangeEvent
	ChangeEventType.Subscribe(world, func(w donburi.World, e ChangeEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(arbor.ChangeEvent{Type: arbor.ChangeValue, Source: slider, Value: 0.25})
	sink.EmitEvent(arbor.ChangeEvent{Type: arbor.ChangeClick, Source: button})

	// Events are queued; process them.
	ChangeEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != arbor.ChangeValue || e0.Value != 0.25 || e0.Entity != ent {
		t.Errorf("event 0: %+v", e0)
	}
	if e1 := received[1]; e1.Type != arbor.ChangeClick || e1.Entity != donburi.Null {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_BindCreatesControlEntity(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	dial := arbor.NewKnobDial(32, 0.5)

	ent := sink.Bind(dial)
	if again := sink.Bind(dial); again != ent {
		t.Errorf("second Bind = %v, want %v", again, ent)
	}
	entry := world.Entry(ent)
	if got := ControlComponent.Get(entry).Element; got != dial {
		t.Errorf("control element = %v, want the dial", got)
	}

	sink.Unbind(dial)
	if world.Valid(ent) {
		t.Error("entity still valid after Unbind")
	}
}

func TestDonburiSink_FromView(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	slider := arbor.NewHSlider(0)
	sink.Bind(slider)
	view := arbor.NewView(slider, 200, 20)
	view.SetEventSink(sink)

	var values []float64
	ChangeEventType.Subscribe(world, func(w donburi.World, e ChangeEvent) {
		values = append(values, e.Value)
	})

	view.Key(arbor.KeyInfo{Key: arbor.KeyEnd, Action: arbor.KeyPress})
	events.ProcessAllEvents(world)

	if len(values) != 1 || values[0] != 1 {
		t.Errorf("values = %v, want [1]", values)
	}
}
