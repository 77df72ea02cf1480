package editor

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ByLCY/gryd/dsl"
	"github.com/ByLCY/gryd/hotkey"
	"github.com/ByLCY/gryd/layout"
)

// Apply replays script against the editor. Key commands go through d, so
// the editor's own Bindings must be registered on it for undo/redo keys to
// have an effect. The first failing command stops the replay.
func (e *Editor) Apply(script *dsl.Script, d *hotkey.Dispatcher) error {
	if script == nil {
		return nil
	}
	for _, cmd := range script.Commands {
		if err := e.apply(cmd, d); err != nil {
			return fmt.Errorf("%s: %w", cmd.Pos, err)
		}
	}
	return nil
}

func (e *Editor) apply(cmd *dsl.ScriptCommand, d *hotkey.Dispatcher) error {
	switch {
	case cmd.Viewport != nil:
		_, h := e.Viewport()
		if cmd.Viewport.Height != nil {
			h = *cmd.Viewport.Height
		}
		e.SetViewport(cmd.Viewport.Width, h)

	case cmd.Drag != nil:
		kind, err := layout.ParseAxisKind(cmd.Drag.Axis)
		if err != nil {
			return err
		}
		drag, err := e.BeginDrag(kind, cmd.Drag.Track)
		if err != nil {
			return err
		}
		for _, delta := range cmd.Drag.Deltas {
			if err := drag.Move(delta); err != nil {
				drag.Cancel()
				return err
			}
		}
		if cmd.Drag.Cancel {
			drag.Cancel()
		} else {
			drag.End()
		}

	case cmd.Unit != nil:
		kind, err := layout.ParseAxisKind(cmd.Unit.Axis)
		if err != nil {
			return err
		}
		unit, ok := layout.ParseUnit(cmd.Unit.Unit)
		if !ok {
			return fmt.Errorf("editor: unknown unit %q", cmd.Unit.Unit)
		}
		if _, err := e.ChangeUnit(kind, cmd.Unit.Track, unit); err != nil {
			return err
		}

	case cmd.Set != nil:
		kind, err := layout.ParseAxisKind(cmd.Set.Axis)
		if err != nil {
			return err
		}
		dim, ok := layout.ParseDimension(cmd.Set.Dimension)
		if !ok {
			return fmt.Errorf("editor: invalid dimension %q", cmd.Set.Dimension)
		}
		return e.SetDimension(kind, cmd.Set.Track, dim)

	case cmd.Insert != nil:
		kind, err := layout.ParseAxisKind(cmd.Insert.Axis)
		if err != nil {
			return err
		}
		var dim *layout.Dimension
		if cmd.Insert.Dimension != nil {
			parsed, ok := layout.ParseDimension(*cmd.Insert.Dimension)
			if !ok {
				return fmt.Errorf("editor: invalid dimension %q", *cmd.Insert.Dimension)
			}
			dim = &parsed
		}
		if _, err := e.InsertTrack(kind, cmd.Insert.After, dim); err != nil {
			return err
		}

	case cmd.Key != nil:
		if d == nil {
			return fmt.Errorf("editor: key %q needs a dispatcher", cmd.Key.Combo())
		}
		ran := d.Dispatch(hotkey.ParseCombo(cmd.Key.Combo()))
		e.logger.Debug("key dispatched", zap.String("combo", cmd.Key.Combo()), zap.Int("listeners", ran))

	case cmd.Undo:
		e.Undo()

	case cmd.Redo:
		e.Redo()
	}
	return nil
}
