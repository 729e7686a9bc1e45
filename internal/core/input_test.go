package core

import "testing"

func TestInputFrameEventsKeepOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.Set(ActionFire)
	f.Set(ActionQuit)

	events := f.Events()
	expected := []Action{ActionFire, ActionFire, ActionQuit}
	if len(events) != len(expected) {
		t.Fatalf("Events() length = %d, expected %d", len(events), len(expected))
	}
	for i := range expected {
		if events[i] != expected[i] {
			t.Errorf("Events()[%d] = %v, expected %v", i, events[i], expected[i])
		}
	}

	if !f.Has(ActionFire) || !f.Has(ActionQuit) {
		t.Error("Has() should report queued actions")
	}
	if f.Has(ActionPause) {
		t.Error("Has(Pause) should be false")
	}
}

func TestInputFrameHeld(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionRight)
	f.Hold(ActionUp)

	if !f.IsHeld(ActionUp) || !f.IsHeld(ActionRight) {
		t.Error("IsHeld should report held movement keys")
	}
	if f.IsHeld(ActionLeft) {
		t.Error("IsHeld(Left) should be false")
	}
	if f.Has(ActionUp) {
		t.Error("holding a key should not queue an event")
	}

	held := f.HeldActions()
	if len(held) != 2 || held[0] != ActionUp || held[1] != ActionRight {
		t.Errorf("HeldActions() = %v, expected [Up Right]", held)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) || f.IsHeld(ActionUp) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionFire)
	f.Hold(ActionDown)
	if !f.Has(ActionFire) || !f.IsHeld(ActionDown) {
		t.Error("zero frame should lazily allocate")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)
	f.Hold(ActionLeft)
	f.Clear()

	if f.Has(ActionFire) || f.IsHeld(ActionLeft) || len(f.Events()) != 0 {
		t.Error("Clear should drop events and held keys")
	}
}

func TestInputFrameHeldActionsStableOrder(t *testing.T) {
	expected := []Action{ActionUp, ActionLeft, ActionFire, ActionRestart, ActionQuit, ActionPause}

	for i := 0; i < 50; i++ {
		f := NewInputFrame()
		f.Hold(ActionPause)
		f.Hold(ActionQuit)
		f.Hold(ActionLeft)
		f.Hold(ActionRestart)
		f.Hold(ActionFire)
		f.Hold(ActionUp)

		held := f.HeldActions()
		if len(held) != len(expected) {
			t.Fatalf("run %d: HeldActions() = %v, expected %v", i, held, expected)
		}
		for j := range expected {
			if held[j] != expected[j] {
				t.Fatalf("run %d: HeldActions() = %v, expected %v", i, held, expected)
			}
		}
	}
}
