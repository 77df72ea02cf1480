package editor

import "github.com/ByLCY/gryd/hotkey"

// Bindings registers the editor shortcuts on d:
//
//	ctrl+z         undo
//	ctrl+shift+z   redo (wins over ctrl+z, which also matches)
//	ctrl+y         redo
//	escape         cancel the active drag
//
// The returned handles remove the bindings again.
func (e *Editor) Bindings(d *hotkey.Dispatcher) []*hotkey.Handle {
	return []*hotkey.Handle{
		d.Register(hotkey.Binding{
			Keys:      []string{"z"},
			Modifiers: []hotkey.Modifier{hotkey.Ctrl},
			Priority:  1,
			Callback: func(string, []hotkey.Modifier) bool {
				e.Undo()
				return true
			},
		}),
		d.Register(hotkey.Binding{
			Keys:      []string{"z"},
			Modifiers: []hotkey.Modifier{hotkey.Ctrl, hotkey.Shift},
			Priority:  2,
			Callback: func(string, []hotkey.Modifier) bool {
				e.Redo()
				return false
			},
		}),
		d.Register(hotkey.Binding{
			Keys:      []string{"y"},
			Modifiers: []hotkey.Modifier{hotkey.Ctrl},
			Callback: func(string, []hotkey.Modifier) bool {
				e.Redo()
				return true
			},
		}),
		d.Register(hotkey.Binding{
			Keys:       []string{"escape"},
			AllowInput: true,
			Callback: func(string, []hotkey.Modifier) bool {
				return !e.CancelDrag()
			},
		}),
	}
}
