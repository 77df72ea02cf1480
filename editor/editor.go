// Package editor keeps an editable grid layout and applies gutter drags, unit
// changes and track inserts to it one event at a time, with undo and redo.
package editor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ByLCY/gryd/layout"
)

var (
	ErrNoVariant    = errors.New("editor: no variant matches the viewport")
	ErrDragActive   = errors.New("editor: a drag is in progress")
	ErrDragFinished = errors.New("editor: drag already ended")
)

const defaultHistoryLimit = 100

// Options configures an Editor.
type Options struct {
	Logger *zap.Logger
	// NewID generates ids for inserted tracks.
	NewID        func() string
	HistoryLimit int
}

// Editor owns the layout being edited. All methods serialize on one mutex so
// deltas are applied strictly in call order.
type Editor struct {
	mu     sync.Mutex
	layout layout.Layout
	width  float64
	height float64
	undo   []layout.Layout
	redo   []layout.Layout
	drag   *Drag

	logger *zap.Logger
	newID  func() string
	limit  int
}

// New returns an editor for l with a zero viewport; call SetViewport before
// editing.
func New(l layout.Layout, opts Options) *Editor {
	e := &Editor{
		layout: l,
		logger: opts.Logger,
		newID:  opts.NewID,
		limit:  opts.HistoryLimit,
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.newID == nil {
		e.newID = func() string { return "track-" + uuid.NewString()[:8] }
	}
	if e.limit <= 0 {
		e.limit = defaultHistoryLimit
	}
	return e
}

// Layout returns the current layout.
func (e *Editor) Layout() layout.Layout {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.layout
}

// SetViewport sets the container size used to resolve px, % and fr.
func (e *Editor) SetViewport(width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.width, e.height = width, height
	i, _, ok := e.layout.Select(width)
	e.logger.Debug("viewport changed",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Int("variant", i),
		zap.Bool("matched", ok),
	)
}

// Viewport returns the current container size.
func (e *Editor) Viewport() (float64, float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width, e.height
}

// Active returns the variant selected by the current viewport.
func (e *Editor) Active() (int, layout.Variant, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.layout.Select(e.width)
}

// Result resolves the active variant to pixel geometry.
func (e *Editor) Result() (*layout.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, v, ok := e.layout.Select(e.width)
	if !ok {
		return nil, ErrNoVariant
	}
	return layout.Compute(e.layout, v, e.width, e.height)
}

func (e *Editor) total(kind layout.AxisKind) float64 {
	if kind == layout.AxisColumns {
		return e.width
	}
	return e.height
}

// commit replaces the layout and records the previous one for undo.
func (e *Editor) commit(next layout.Layout) {
	e.pushUndo(e.layout)
	e.redo = nil
	e.layout = next
}

func (e *Editor) pushUndo(l layout.Layout) {
	e.undo = append(e.undo, l)
	if len(e.undo) > e.limit {
		e.undo = e.undo[len(e.undo)-e.limit:]
	}
}

// locate finds the active variant and the index of track id on one axis.
func (e *Editor) locate(kind layout.AxisKind, id string) (int, layout.Variant, int, error) {
	vi, v, ok := e.layout.Select(e.width)
	if !ok {
		return -1, layout.Variant{}, -1, ErrNoVariant
	}
	ti := v.Axis(kind).IndexOf(id)
	if ti < 0 {
		return -1, layout.Variant{}, -1, fmt.Errorf("editor: no %s track %q", kind, id)
	}
	return vi, v, ti, nil
}

// mutable fails while a drag is active: the drag owns the layout until End
// or Cancel.
func (e *Editor) mutable() error {
	if e.drag != nil {
		return ErrDragActive
	}
	return nil
}

// ChangeUnit re-expresses a track in another unit without changing its
// rendered size, and returns the new dimension.
func (e *Editor) ChangeUnit(kind layout.AxisKind, id string, unit layout.Unit) (layout.Dimension, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.mutable(); err != nil {
		return layout.Dimension{}, err
	}
	vi, v, ti, err := e.locate(kind, id)
	if err != nil {
		return layout.Dimension{}, err
	}
	axis := v.Axis(kind)
	track := axis[ti]
	from, ok := track.Resolved()
	if !ok {
		return layout.Dimension{}, fmt.Errorf("editor: %s track %q has no dimension to convert", kind, id)
	}
	to, err := layout.Convert(from, unit, e.total(kind), axis.Dimensions())
	if err != nil {
		e.logger.Warn("unit conversion rejected",
			zap.String("axis", kind.String()),
			zap.String("track", id),
			zap.String("from", from.String()),
			zap.String("to", unit.String()),
			zap.Error(err),
		)
		return from, err
	}
	if to != from {
		e.commit(e.layout.WithVariant(vi, v.WithAxis(kind, axis.Replace(ti, track.WithDimension(to)))))
	}
	return to, nil
}

// SetDimension replaces a track's dimension as typed by the user.
func (e *Editor) SetDimension(kind layout.AxisKind, id string, d layout.Dimension) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.mutable(); err != nil {
		return err
	}
	vi, v, ti, err := e.locate(kind, id)
	if err != nil {
		return err
	}
	axis := v.Axis(kind)
	e.commit(e.layout.WithVariant(vi, v.WithAxis(kind, axis.Replace(ti, axis[ti].WithDimension(d)))))
	return nil
}

// InsertTrack adds a track right after afterID and returns its generated id.
// A nil dimension inserts an auto track.
func (e *Editor) InsertTrack(kind layout.AxisKind, afterID string, d *layout.Dimension) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.mutable(); err != nil {
		return "", err
	}
	vi, v, ti, err := e.locate(kind, afterID)
	if err != nil {
		return "", err
	}
	id := e.newID()
	track := layout.Auto(id)
	if d != nil {
		track = layout.Sized(id, *d)
	}
	axis := v.Axis(kind).Insert(ti+1, track)
	if err := axis.Validate(); err != nil {
		return "", err
	}
	e.commit(e.layout.WithVariant(vi, v.WithAxis(kind, axis)))
	e.logger.Debug("track inserted", zap.String("axis", kind.String()), zap.String("id", id), zap.String("after", afterID))
	return id, nil
}

// Undo restores the previous layout. An active drag is cancelled instead.
func (e *Editor) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag != nil {
		e.cancelDrag()
		return true
	}
	if len(e.undo) == 0 {
		return false
	}
	e.redo = append(e.redo, e.layout)
	e.layout = e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	return true
}

// Redo reapplies the last undone change.
func (e *Editor) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag != nil || len(e.redo) == 0 {
		return false
	}
	e.pushUndo(e.layout)
	e.layout = e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	return true
}
