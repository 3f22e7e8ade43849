package history

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/nathoo/termfolio/engine/store"
)

func newHistory(t *testing.T, max int) (*History, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	return New(st, DefaultKey, max, nil), st
}

func TestHistory_PushAndPrev(t *testing.T) {
	h, _ := newHistory(t, 5)
	h.Push("about")
	h.Push("skills")
	h.Push("history")

	prev, ok := h.Prev()
	if !ok || prev != "history" {
		t.Errorf("expected 'history', got %q (ok=%v)", prev, ok)
	}

	prev, ok = h.Prev()
	if !ok || prev != "skills" {
		t.Errorf("expected 'skills', got %q (ok=%v)", prev, ok)
	}

	prev, ok = h.Prev()
	if !ok || prev != "about" {
		t.Errorf("expected 'about', got %q (ok=%v)", prev, ok)
	}

	// At oldest, the cursor does not move and no change is reported.
	prev, ok = h.Prev()
	if ok {
		t.Errorf("expected no change at oldest entry, got %q", prev)
	}
	if i, set := h.Cursor(); !set || i != 0 {
		t.Errorf("cursor = %d (set=%v), want 0", i, set)
	}
}

func TestHistory_Next(t *testing.T) {
	h, _ := newHistory(t, 5)
	h.Push("about")
	h.Push("skills")

	h.Prev() // "skills"
	h.Prev() // "about"

	next, ok := h.Next()
	if !ok || next != "skills" {
		t.Errorf("expected 'skills', got %q (ok=%v)", next, ok)
	}

	// Clamped at the newest entry: no change, cursor stays set.
	_, ok = h.Next()
	if ok {
		t.Error("expected no change at newest entry")
	}
	if i, set := h.Cursor(); !set || i != 1 {
		t.Errorf("cursor = %d (set=%v), want 1", i, set)
	}
}

func TestHistory_NextWhenNotNavigating(t *testing.T) {
	h, _ := newHistory(t, 5)
	h.Push("about")
	if _, ok := h.Next(); ok {
		t.Error("expected no change when cursor is unset")
	}
}

func TestHistory_Empty(t *testing.T) {
	h, _ := newHistory(t, 5)
	if _, ok := h.Prev(); ok {
		t.Error("expected no change on empty history")
	}
	if _, ok := h.Next(); ok {
		t.Error("expected no change on empty history")
	}
	if _, set := h.Cursor(); set {
		t.Error("cursor should stay unset on empty history")
	}
}

func TestHistory_PushResetsCursor(t *testing.T) {
	h, _ := newHistory(t, 5)
	h.Push("about")
	h.Push("skills")
	h.Prev()
	h.Prev()

	h.Push("contact")
	if _, set := h.Cursor(); set {
		t.Fatal("push should reset cursor")
	}

	prev, ok := h.Prev()
	if !ok || prev != "contact" {
		t.Errorf("expected newest entry after push, got %q (ok=%v)", prev, ok)
	}
}

func TestHistory_CapacityKeepsNewest(t *testing.T) {
	for _, n := range []int{1, 49, 50, 51, 120} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			h, _ := newHistory(t, DefaultCapacity)
			var want []string
			for i := 0; i < n; i++ {
				cmd := fmt.Sprintf("cmd %d", i)
				h.Push(cmd)
				want = append(want, cmd)
			}
			if len(want) > DefaultCapacity {
				want = want[len(want)-DefaultCapacity:]
			}
			if got := h.Entries(); !reflect.DeepEqual(got, want) {
				t.Errorf("entries = %q, want %q", got, want)
			}
		})
	}
}

func TestHistory_ClampIndex(t *testing.T) {
	h, _ := newHistory(t, 5)
	h.ClampIndex(3)
	if _, set := h.Cursor(); set {
		t.Error("clamp on empty history should leave cursor unset")
	}

	h.Push("a")
	h.Push("b")
	h.Push("c")

	tests := []struct {
		requested int
		want      int
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{2, 2},
		{99, 2},
	}
	for _, tt := range tests {
		h.ClampIndex(tt.requested)
		if got, _ := h.Cursor(); got != tt.want {
			t.Errorf("ClampIndex(%d) cursor = %d, want %d", tt.requested, got, tt.want)
		}
	}
}

func TestHistory_Index(t *testing.T) {
	h, _ := newHistory(t, 10)
	for _, c := range []string{"a", "b", "c", "d", "e"} {
		h.Push(c)
	}

	tests := []struct {
		n    int
		want int
		ok   bool
	}{
		{0, 0, true},
		{4, 4, true},
		{5, 0, false},
		{99, 0, false},
		{-1, 4, true},
		{-5, 0, true},
		{-6, 0, false},
	}
	for _, tt := range tests {
		got, ok := h.Index(tt.n)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Index(%d) = %d, %v; want %d, %v", tt.n, got, ok, tt.want, tt.ok)
		}
	}

	if v, ok := h.Get(4); !ok || v != "e" {
		t.Errorf("Get(4) = %q, %v", v, ok)
	}
	if _, ok := h.Get(5); ok {
		t.Error("Get(5) should be out of range")
	}
}

func TestHistory_PersistAndReload(t *testing.T) {
	st := store.NewMemory()
	h := New(st, "k", 50, nil)
	h.Push("about")
	h.Push("  Conway  play")
	h.Push("history -1")

	reloaded := New(st, "k", 50, nil)
	if !reflect.DeepEqual(reloaded.Entries(), h.Entries()) {
		t.Errorf("reloaded = %q, want %q", reloaded.Entries(), h.Entries())
	}
	if _, set := reloaded.Cursor(); set {
		t.Error("reloaded history should not be navigating")
	}
}

func TestHistory_ReloadTrimsToCapacity(t *testing.T) {
	st := store.NewMemory()
	st.Set("k", []byte(`["a","b","c","d"]`))

	h := New(st, "k", 2, nil)
	if got := h.Entries(); !reflect.DeepEqual(got, []string{"c", "d"}) {
		t.Errorf("entries = %q", got)
	}
}

func TestHistory_CorruptRecordIsEmpty(t *testing.T) {
	for _, data := range []string{"", "{", `{"history":[]}`, `[1,2]`, "null"} {
		st := store.NewMemory()
		st.Set("k", []byte(data))

		h := New(st, "k", 50, nil)
		if h.Len() != 0 {
			t.Errorf("record %q: expected empty history, got %q", data, h.Entries())
		}
		h.Push("about")
		if h.Len() != 1 {
			t.Errorf("record %q: push after corrupt load failed", data)
		}
	}
}

func TestHistory_Clear(t *testing.T) {
	h, st := newHistory(t, 5)
	h.Push("about")
	h.Push("skills")
	h.Prev()

	h.Clear()
	if h.Len() != 0 {
		t.Errorf("expected empty history, got %q", h.Entries())
	}
	if _, set := h.Cursor(); set {
		t.Error("clear should reset cursor")
	}
	if _, err := st.Get(DefaultKey); err != store.ErrNotFound {
		t.Errorf("expected persisted record removed, got err=%v", err)
	}
	if _, ok := h.Prev(); ok {
		t.Error("Prev after Clear should report no change")
	}
}

func TestHistory_NilStore(t *testing.T) {
	h := New(nil, "", 0, nil)
	h.Push("about")
	if h.Len() != 1 {
		t.Errorf("Len = %d, want 1", h.Len())
	}
}

func TestHistory_ConcurrentPushesAllKept(t *testing.T) {
	h, st := newHistory(t, 100)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				h.Push(fmt.Sprintf("cmd %d", i))
				h.Prev()
			}
		}()
	}
	wg.Wait()

	if h.Len() != 80 {
		t.Errorf("Len = %d, want 80", h.Len())
	}
	if reloaded := New(st, DefaultKey, 100, nil); reloaded.Len() != 80 {
		t.Errorf("reloaded Len = %d, want 80", reloaded.Len())
	}
}
