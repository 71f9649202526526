package playlist

import "testing"

func TestQueueHistory_UndoRedo(t *testing.T) {
	h := NewQueueHistory(10)
	h.Push(tracks("a"))
	h.Push(tracks("a", "b"))
	h.Push(tracks("a", "b", "c"))

	got, ok := h.Undo()
	if !ok || len(got) != 2 {
		t.Fatalf("Undo() = %v, %v; want 2 tracks", got, ok)
	}

	got, ok = h.Redo()
	if !ok || len(got) != 3 {
		t.Fatalf("Redo() = %v, %v; want 3 tracks", got, ok)
	}

	if h.CanRedo() {
		t.Error("CanRedo() should be false at the newest state")
	}
}

func TestQueueHistory_PushClearsRedo(t *testing.T) {
	h := NewQueueHistory(10)
	h.Push(tracks("a"))
	h.Push(tracks("a", "b"))
	h.Undo()

	h.Push(tracks("x"))

	if h.CanRedo() {
		t.Error("CanRedo() should be false after a new push")
	}
	got, ok := h.Undo()
	if !ok || len(got) != 1 || got[0].ID != "a" {
		t.Errorf("Undo() = %v, %v; want [a]", got, ok)
	}
}

func TestQueueHistory_TrimsToMaxSize(t *testing.T) {
	h := NewQueueHistory(2)
	h.Push(tracks("a"))
	h.Push(tracks("b"))
	h.Push(tracks("c"))

	got, ok := h.Undo()
	if !ok || got[0].ID != "b" {
		t.Fatalf("Undo() = %v, %v; want [b]", got, ok)
	}
	if h.CanUndo() {
		t.Error("CanUndo() should be false once the oldest state was trimmed")
	}
}

func TestQueueHistory_SnapshotsAreCopies(t *testing.T) {
	h := NewQueueHistory(5)
	list := tracks("a")
	h.Push(list)
	list[0].ID = "mutated"
	h.Push(tracks("b"))

	got, _ := h.Undo()
	if got[0].ID != "a" {
		t.Errorf("Undo()[0].ID = %q, want a", got[0].ID)
	}
}

func TestQueueHistory_IgnoresUnchangedPush(t *testing.T) {
	h := NewQueueHistory(10)
	h.Push(tracks("a", "b"))
	h.Push(tracks("a", "b"))

	if h.CanUndo() {
		t.Error("pushing the present contents again should not add an undo step")
	}

	h.Push(tracks("b", "a"))
	if !h.CanUndo() {
		t.Error("a reorder is a change")
	}
}

func TestQueueHistory_Reset(t *testing.T) {
	h := NewQueueHistory(10)
	h.Push(tracks("a"))
	h.Push(tracks("b"))
	h.Undo()

	h.Reset()
	if h.CanUndo() || h.CanRedo() {
		t.Error("Reset() should drop undo and redo states")
	}

	h.Push(tracks("c"))
	if h.CanUndo() {
		t.Error("first push after Reset() is the oldest state")
	}
}
