package playlist

import (
	"slices"

	"github.com/llehouerou/harmony/internal/catalog"
)

// QueueHistory records queue contents for undo and redo. The latest Push
// is the present state; Undo and Redo move between it and the states
// around it. At most limit states are kept.
type QueueHistory struct {
	past    [][]catalog.Track
	present []catalog.Track
	future  [][]catalog.Track
	limit   int
	started bool
}

// NewQueueHistory creates an empty history keeping at most limit states.
func NewQueueHistory(limit int) *QueueHistory {
	return &QueueHistory{limit: max(limit, 1)}
}

// Push makes tracks the present state and forgets anything redoable.
// Pushing contents equal to the present state is ignored, so a no-op edit
// never costs an undo step.
func (h *QueueHistory) Push(tracks []catalog.Track) {
	if h.started && sameTracks(h.present, tracks) {
		return
	}
	if h.started {
		h.past = append(h.past, h.present)
		if over := len(h.past) - (h.limit - 1); over > 0 {
			h.past = slices.Delete(h.past, 0, over)
		}
	}
	h.present = slices.Clone(tracks)
	h.future = nil
	h.started = true
}

// Undo steps back one state and returns a copy of it.
func (h *QueueHistory) Undo() ([]catalog.Track, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	last := len(h.past) - 1
	h.future = append(h.future, h.present)
	h.present = h.past[last]
	h.past = h.past[:last]
	return slices.Clone(h.present), true
}

// Redo steps forward one undone state and returns a copy of it.
func (h *QueueHistory) Redo() ([]catalog.Track, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	last := len(h.future) - 1
	h.past = append(h.past, h.present)
	h.present = h.future[last]
	h.future = h.future[:last]
	return slices.Clone(h.present), true
}

func (h *QueueHistory) CanUndo() bool { return len(h.past) > 0 }
func (h *QueueHistory) CanRedo() bool { return len(h.future) > 0 }

// Reset forgets every state. The next Push becomes the oldest state.
func (h *QueueHistory) Reset() {
	h.past, h.future, h.present = nil, nil, nil
	h.started = false
}

func sameTracks(a, b []catalog.Track) bool {
	return slices.EqualFunc(a, b, func(x, y catalog.Track) bool {
		return x.Same(&y)
	})
}
