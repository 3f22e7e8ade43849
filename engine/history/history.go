// Package history implements the console's bounded, persisted command
// history with cursor-based navigation.
package history

import (
	"errors"
	"sync"

	"github.com/nathoo/termfolio/engine/save"
	"github.com/nathoo/termfolio/engine/store"
	"github.com/nathoo/termfolio/logging"
)

const (
	// DefaultCapacity is the number of entries kept before the oldest is evicted.
	DefaultCapacity = 50
	// DefaultKey is the storage key holding the JSON-encoded entries.
	DefaultKey = "portfolio.history"
)

// History is a FIFO-bounded list of raw command lines, oldest first.
// Every mutation is written through to the backing store. It is safe
// for concurrent use, so several consoles may share one buffer.
type History struct {
	mu      sync.Mutex
	store   store.Store
	key     string
	log     *logging.Logger
	entries []string
	max     int
	cursor  int // -1 = not navigating, 0..len-1 = position in entries
}

// New creates a history buffer and loads any persisted entries from st.
// Absent or corrupt records yield an empty history. A nil store keeps
// history in memory only.
func New(st store.Store, key string, max int, log *logging.Logger) *History {
	if st == nil {
		st = store.NewMemory()
	}
	if key == "" {
		key = DefaultKey
	}
	if max <= 0 {
		max = DefaultCapacity
	}
	h := &History{
		store:   st,
		key:     key,
		log:     log,
		entries: make([]string, 0, max),
		max:     max,
		cursor:  -1,
	}
	h.load()
	return h
}

func (h *History) load() {
	data, err := h.store.Get(h.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.log.Logf("history: ignoring unreadable record %q: %v", h.key, err)
		}
		return
	}
	entries, err := save.Decode(data)
	if err != nil {
		h.log.Logf("history: ignoring corrupt record %q: %v", h.key, err)
		return
	}
	if len(entries) > h.max {
		entries = entries[len(entries)-h.max:]
	}
	h.entries = append(h.entries, entries...)
}

func (h *History) persist() {
	data, err := save.Encode(h.entries)
	if err != nil {
		h.log.LogError(err)
		return
	}
	if err := h.store.Set(h.key, data); err != nil {
		h.log.Logf("history: persisting %q: %v", h.key, err)
	}
}

// Push appends a command, evicting the oldest entry past capacity, and
// resets the navigation cursor.
func (h *History) Push(cmd string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		h.entries = h.entries[1:]
	}
	h.cursor = -1
	h.persist()
}

// Prev moves to the previous (older) entry. It reports false when the
// cursor did not move: empty history, or already at the oldest entry.
func (h *History) Prev() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor == -1 {
		return h.moveTo(len(h.entries) - 1)
	}
	return h.moveTo(h.cursor - 1)
}

// Next moves to the next (newer) entry. It reports false when not
// navigating or already at the newest entry.
func (h *History) Next() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor == -1 {
		return "", false
	}
	return h.moveTo(h.cursor + 1)
}

func (h *History) moveTo(requested int) (string, bool) {
	old := h.cursor
	h.clamp(requested)
	if h.cursor == -1 || h.cursor == old {
		return "", false
	}
	return h.entries[h.cursor], true
}

// ClampIndex sets the cursor to requested clamped into [0, len-1], or
// to the unset state when the history is empty.
func (h *History) ClampIndex(requested int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clamp(requested)
}

func (h *History) clamp(requested int) {
	if len(h.entries) == 0 {
		h.cursor = -1
		return
	}
	h.cursor = min(max(0, requested), len(h.entries)-1)
}

// ResetCursor resets the navigation cursor to the "not navigating" state.
func (h *History) ResetCursor() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cursor = -1
}

// Cursor returns the cursor position and whether it is set.
func (h *History) Cursor() (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor, h.cursor != -1
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Get returns the entry at index i.
func (h *History) Get(i int) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if i < 0 || i >= len(h.entries) {
		return "", false
	}
	return h.entries[i], true
}

// Index resolves n against the current length, counting from the end
// when negative (-1 is the newest entry). It reports false when the
// resolved index is out of range.
func (h *History) Index(n int) (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n < 0 {
		n += len(h.entries)
	}
	if n < 0 || n >= len(h.entries) {
		return 0, false
	}
	return n, true
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}

// Clear empties the history, resets the cursor and removes the
// persisted record.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = h.entries[:0]
	h.cursor = -1
	if err := h.store.Delete(h.key); err != nil {
		h.log.Logf("history: clearing %q: %v", h.key, err)
	}
}
