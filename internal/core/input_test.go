package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRotateCW)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionLeft)

	got := f.Actions()
	want := []Action{ActionRotateCW, ActionLeft, ActionLeft}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if !f.Has(ActionLeft) || f.Has(ActionHardDrop) {
		t.Error("Has reported the wrong actions")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	clone := f.Clone()

	f.Clear()

	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionPause) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:      "None",
		ActionSoftDrop:  "SoftDrop",
		ActionRotate180: "Rotate180",
		ActionBack:      "Back",
		Action(99):      "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
