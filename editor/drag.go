package editor

import (
	"errors"

	"go.uber.org/zap"

	"github.com/ByLCY/gryd/layout"
)

// Drag is an in-flight gutter drag. Each Move applies an incremental pointer
// delta to the layout as it stands after the previous Move.
type Drag struct {
	e       *Editor
	kind    layout.AxisKind
	variant int
	track   string
	before  layout.Layout
	moves   int
}

// BeginDrag starts dragging the gutter that follows track leftID. Only one
// drag may be active at a time.
func (e *Editor) BeginDrag(kind layout.AxisKind, leftID string) (*Drag, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag != nil {
		return nil, ErrDragActive
	}
	vi, _, _, err := e.locate(kind, leftID)
	if err != nil {
		return nil, err
	}
	d := &Drag{e: e, kind: kind, variant: vi, track: leftID, before: e.layout}
	e.drag = d
	e.logger.Debug("drag started", zap.String("axis", kind.String()), zap.String("track", leftID), zap.Int("variant", vi))
	return d, nil
}

// Move applies one pointer delta in pixels.
func (d *Drag) Move(delta float64) error {
	e := d.e
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag != d {
		return ErrDragFinished
	}

	v := e.layout.Variants[d.variant]
	axis := v.Axis(d.kind)
	i := axis.IndexOf(d.track)
	next, err := axis.Resize(e.total(d.kind), i, delta)
	if err != nil {
		var missing *layout.MissingAdjacentTrackError
		if errors.As(err, &missing) {
			e.logger.Error("gutter has no adjacent track",
				zap.String("axis", d.kind.String()),
				zap.String("track", d.track),
				zap.Int("gutter", missing.GutterIndex),
				zap.Int("tracks", missing.Len),
			)
		}
		return err
	}
	e.layout = e.layout.WithVariant(d.variant, v.WithAxis(d.kind, next))
	d.moves++
	return nil
}

// End commits the drag as a single undo step.
func (d *Drag) End() {
	e := d.e
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag != d {
		return
	}
	e.drag = nil
	if d.moves == 0 {
		return
	}
	e.pushUndo(d.before)
	e.redo = nil
	e.logger.Debug("drag committed", zap.String("track", d.track), zap.Int("moves", d.moves))
}

// Cancel restores the layout from before the drag started.
func (d *Drag) Cancel() {
	e := d.e
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag != d {
		return
	}
	e.cancelDrag()
}

// Dragging reports whether a drag is active.
func (e *Editor) Dragging() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.drag != nil
}

// CancelDrag aborts the active drag, if any.
func (e *Editor) CancelDrag() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag == nil {
		return false
	}
	e.cancelDrag()
	return true
}

func (e *Editor) cancelDrag() {
	e.layout = e.drag.before
	e.logger.Debug("drag cancelled", zap.String("track", e.drag.track), zap.Int("moves", e.drag.moves))
	e.drag = nil
}
