// Package hotkey dispatches key combinations to registered listeners. A
// Dispatcher is an ordinary value: create one per editor and pass it around.
package hotkey

import (
	"sort"
	"strings"
	"sync"
)

// Modifier is a held modifier key.
type Modifier string

const (
	Shift Modifier = "shift"
	Ctrl  Modifier = "ctrl"
	Meta  Modifier = "meta"
	Alt   Modifier = "alt"
)

// Callback handles a matched key. Returning false stops listeners with a
// lower priority from running.
type Callback func(key string, modifiers []Modifier) bool

// Binding describes one listener.
type Binding struct {
	Keys      []string
	Modifiers []Modifier
	// AllowInput lets the binding fire while a text input has focus.
	AllowInput bool
	Priority   int
	Callback   Callback
}

// Event is a key press as seen by the dispatcher.
type Event struct {
	Key         string
	Modifiers   []Modifier
	InputActive bool
}

// Handle removes its binding from the dispatcher that created it.
type Handle struct {
	d  *Dispatcher
	id uint64
}

// Unregister removes the binding. Calling it more than once is a no-op.
func (h *Handle) Unregister() {
	if h == nil || h.d == nil {
		return
	}
	h.d.remove(h.id)
}

type entry struct {
	id      uint64
	binding Binding
	keys    map[string]struct{}
}

// Dispatcher holds the registered bindings, sorted by descending priority.
type Dispatcher struct {
	mu      sync.Mutex
	nextID  uint64
	entries []entry
}

func NewDispatcher() *Dispatcher { return &Dispatcher{} }

// Register adds b and returns the handle used to remove it again.
func (d *Dispatcher) Register(b Binding) *Handle {
	keys := make(map[string]struct{}, len(b.Keys))
	for _, k := range b.Keys {
		keys[strings.ToLower(k)] = struct{}{}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	id := d.nextID
	d.entries = append(d.entries, entry{id: id, binding: b, keys: keys})
	sort.SliceStable(d.entries, func(i, j int) bool {
		return d.entries[i].binding.Priority > d.entries[j].binding.Priority
	})
	return &Handle{d: d, id: id}
}

func (d *Dispatcher) remove(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, e := range d.entries {
		if e.id == id {
			d.entries = append(d.entries[:i:i], d.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered bindings.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// Dispatch runs the matching listeners in priority order and reports how
// many ran. Callbacks run without the dispatcher lock held, so they may
// register or unregister bindings.
func (d *Dispatcher) Dispatch(ev Event) int {
	key := strings.ToLower(ev.Key)
	if key == "" {
		return 0
	}

	d.mu.Lock()
	matched := make([]Binding, 0, len(d.entries))
	for _, e := range d.entries {
		if _, ok := e.keys[key]; !ok {
			continue
		}
		if !modifiersMatch(e.binding.Modifiers, ev.Modifiers) {
			continue
		}
		if ev.InputActive && !e.binding.AllowInput {
			continue
		}
		matched = append(matched, e.binding)
	}
	d.mu.Unlock()

	ran := 0
	for _, b := range matched {
		if b.Callback == nil {
			continue
		}
		ran++
		if !b.Callback(ev.Key, ev.Modifiers) {
			break
		}
	}
	return ran
}

// modifiersMatch requires every wanted modifier to be held; a binding with
// no modifiers only matches a bare key.
func modifiersMatch(want, held []Modifier) bool {
	if len(want) == 0 {
		return len(held) == 0
	}
	for _, w := range want {
		found := false
		for _, h := range held {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ParseCombo splits "ctrl+shift+z" into an Event. The last part is the key.
func ParseCombo(combo string) Event {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(combo)), "+")
	ev := Event{Key: parts[len(parts)-1]}
	for _, p := range parts[:len(parts)-1] {
		switch p {
		case "ctrl", "control":
			ev.Modifiers = append(ev.Modifiers, Ctrl)
		case "shift":
			ev.Modifiers = append(ev.Modifiers, Shift)
		case "meta", "cmd":
			ev.Modifiers = append(ev.Modifiers, Meta)
		case "alt", "option":
			ev.Modifiers = append(ev.Modifiers, Alt)
		}
	}
	return ev
}
