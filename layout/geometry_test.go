package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTracksAndCells(t *testing.T) {
	v := Variant{
		Rows:    Axis{Sized("header", Px(80)), Sized("body", Fr(1)), Sized("footer", Pct(10)), Terminal()},
		Columns: Axis{Sized("nav", Px(200)), Sized("main", Fr(2)), Sized("aside", Fr(1)), Terminal()},
	}
	l := Layout{
		Name: "demo",
		Cells: []Cell{
			{ID: "top", Area: [4]AreaRef{{Name: "header"}, {Name: "nav"}, {Span: 1}, {Span: 3}}},
			{ID: "content", Area: [4]AreaRef{{Name: "body"}, {Line: 2}, {Name: "footer"}, {Line: 3}}},
			{ID: "rail", Area: [4]AreaRef{{Span: 2}, {Name: "aside"}, {Line: 4}, {Span: 1}}},
		},
	}

	res, err := Compute(l, v, 800, 600)
	require.NoError(t, err)
	assert.Equal(t, "demo", res.Name)

	// rows: 80 + 60 = 140 fixed, body takes 460
	require.Len(t, res.Rows, 4)
	assert.InDelta(t, 460, res.Rows[1].Size, 1e-9)
	assert.InDelta(t, 540, res.Rows[2].Offset, 1e-9)
	assert.InDelta(t, 60, res.Rows[2].Size, 1e-9)
	assert.True(t, res.Rows[3].Terminal)
	assert.Zero(t, res.Rows[3].Size)
	assert.Equal(t, "1fr", res.Rows[1].Dimension)

	// columns: 600 free split 2:1
	assert.InDelta(t, 400, res.Columns[1].Size, 1e-9)
	assert.InDelta(t, 600, res.Columns[2].Offset, 1e-9)
	assert.InDelta(t, 200, res.Columns[2].Size, 1e-9)

	require.Len(t, res.Cells, 3)
	top := res.Cells[0]
	assert.Equal(t, CellBox{ID: "top", X: 0, Y: 0, Width: 800, Height: 80}, top)

	content := res.Cells[1]
	assert.InDelta(t, 200, content.X, 1e-9)
	assert.InDelta(t, 80, content.Y, 1e-9)
	assert.InDelta(t, 400, content.Width, 1e-9)
	assert.InDelta(t, 460, content.Height, 1e-9)

	rail := res.Cells[2]
	assert.InDelta(t, 600, rail.X, 1e-9)
	assert.InDelta(t, 80, rail.Y, 1e-9)
	assert.InDelta(t, 200, rail.Width, 1e-9)
	assert.InDelta(t, 520, rail.Height, 1e-9)
}

func TestComputeGutters(t *testing.T) {
	v := Variant{
		Rows:    Axis{Sized("a", Fr(1)), Terminal()},
		Columns: Axis{Sized("x", Px(100)), Auto("y"), Sized("z", Fr(1)), Sized("w", Fr(1)), Terminal()},
	}
	res, err := Compute(Layout{}, v, 500, 100)
	require.NoError(t, err)

	require.Len(t, res.Gutters, 1, "only z|w is draggable")
	g := res.Gutters[0]
	assert.Equal(t, "columns", g.Axis)
	assert.Equal(t, 2, g.Index)
	assert.Equal(t, "z", g.Left)
	assert.Equal(t, "w", g.Right)
	assert.InDelta(t, 300, g.Position, 1e-9)
}

func TestComputeOverflowClampsFraction(t *testing.T) {
	v := Variant{
		Rows:    Axis{Sized("a", Px(300)), Sized("b", Fr(1)), Terminal()},
		Columns: Axis{Sized("c", Fr(1)), Terminal()},
	}
	res, err := Compute(Layout{}, v, 100, 200)
	require.NoError(t, err)
	assert.Zero(t, res.Rows[1].Size)

	prev := -1.0
	for _, r := range res.Rows {
		assert.GreaterOrEqual(t, r.Offset, prev)
		prev = r.Offset
	}
}

func TestComputeUnknownTrack(t *testing.T) {
	v := Variant{
		Rows:    Axis{Sized("a", Fr(1)), Terminal()},
		Columns: Axis{Sized("b", Fr(1)), Terminal()},
	}
	l := Layout{Cells: []Cell{{ID: "bad", Area: [4]AreaRef{{Name: "nope"}, {Name: "b"}, {Span: 1}, {Span: 1}}}}}
	_, err := Compute(l, v, 100, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")

	l.Cells[0].Area = [4]AreaRef{{Span: 1}, {Name: "b"}, {Span: 1}, {Span: 1}}
	_, err = Compute(l, v, 100, 100)
	assert.Error(t, err)

	l.Cells[0].Area = [4]AreaRef{{Line: 1}, {Name: "b"}, {Line: 9}, {Span: 1}}
	_, err = Compute(l, v, 100, 100)
	assert.Error(t, err)
}
