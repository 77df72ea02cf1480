package dsl_test

import (
	"strings"
	"testing"

	"github.com/ByLCY/gryd/dsl"
)

const sampleGrid = `
// dashboard layout
grid Dashboard {
  variant 0 {
    rows: [header 80px, body 1fr, footer 10%, _]
    columns: [main 1fr, _]
  }

  variant 600 {
    rows: [
      header 64px
      body 1fr
      _
    ]
    columns: [nav 200px, main 1fr, aside 0.5fr, _]
  }

  cell top header nav span 1 span 3 #EEF2FF
  cell content body 2 3 4
}
`

func TestParseDocument(t *testing.T) {
	doc, err := dsl.ParseString(sampleGrid)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if doc.Name != "Dashboard" {
		t.Fatalf("expected grid name Dashboard, got %s", doc.Name)
	}
	if len(doc.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(doc.Sections))
	}

	first := doc.Sections[0].Variant
	if first == nil || first.MinWidth != 0 {
		t.Fatalf("expected variant 0, got %+v", doc.Sections[0])
	}
	if len(first.Axes) != 2 || first.Axes[0].Kind != "rows" || first.Axes[1].Kind != "columns" {
		t.Fatalf("unexpected axes: %+v", first.Axes)
	}
	rows := first.Axes[0].Tracks
	if len(rows) != 4 {
		t.Fatalf("expected 4 row tracks, got %d", len(rows))
	}
	if rows[0].Named == nil || rows[0].Named.ID != "header" || *rows[0].Named.Size != "80px" {
		t.Fatalf("unexpected header track: %+v", rows[0])
	}
	if *rows[2].Named.Size != "10%" {
		t.Fatalf("expected footer 10%%, got %s", *rows[2].Named.Size)
	}
	if !rows[3].Terminal {
		t.Fatalf("expected terminal marker last, got %+v", rows[3])
	}

	second := doc.Sections[1].Variant
	if second == nil || second.MinWidth != 600 {
		t.Fatalf("expected variant 600, got %+v", doc.Sections[1])
	}
	if got := len(second.Axes[0].Tracks); got != 3 {
		t.Fatalf("newline separated rows: expected 3 tracks, got %d", got)
	}
	if got := *second.Axes[1].Tracks[2].Named.Size; got != "0.5fr" {
		t.Fatalf("expected aside 0.5fr, got %s", got)
	}

	top := doc.Sections[2].Cell
	if top == nil || top.ID != "top" {
		t.Fatalf("expected cell top, got %+v", doc.Sections[2])
	}
	if doc.Sections[2].Kind() != "cell" {
		t.Fatalf("unexpected kind %s", doc.Sections[2].Kind())
	}
	if len(top.Area) != 4 || top.Area[0].Value != "header" || !top.Area[2].Span || top.Area[3].Value != "3" {
		t.Fatalf("unexpected area: %s", areaString(top.Area))
	}
	if top.Fill == nil || *top.Fill != "#EEF2FF" {
		t.Fatalf("expected fill #EEF2FF, got %v", top.Fill)
	}
	if content := doc.Sections[3].Cell; content.Fill != nil || content.Area[1].Value != "2" {
		t.Fatalf("unexpected content cell: %s", areaString(content.Area))
	}
}

func TestParseTrackWithoutDimension(t *testing.T) {
	doc, err := dsl.ParseString(`grid G { variant 0 { rows: [a, b 1fr, _]; columns: [c, _] } }`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	a := doc.Sections[0].Variant.Axes[0].Tracks[0]
	if a.Named == nil || a.Named.Size != nil {
		t.Fatalf("expected auto track a, got %+v", a.Named)
	}
}

func TestParseKeepsUnknownUnits(t *testing.T) {
	doc, err := dsl.ParseString(`grid G { variant 0 { rows: [a 10em, b 10PX, _]; columns: [c, _] } }`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	tracks := doc.Sections[0].Variant.Axes[0].Tracks
	for i, want := range []string{"10em", "10PX"} {
		got := tracks[i].Named
		if got == nil || got.Size == nil || *got.Size != want {
			t.Fatalf("track %d: expected size %q, got %+v", i, want, got)
		}
	}
}

func TestParseRejectsMissingBrace(t *testing.T) {
	if _, err := dsl.ParseString(`grid G { variant 0 { rows: [a 1fr, _] }`); err == nil {
		t.Fatalf("expected error for unterminated grid")
	}
}

func TestParseScript(t *testing.T) {
	script, err := dsl.ParseScriptString(`
viewport 1024 768
drag columns nav 30 -5 2.5
drag rows header 10 cancel
unit rows footer fr
set columns main 2fr
insert columns main 120px
insert rows body
key ctrl+shift+z
undo
redo
`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(script.Commands) != 10 {
		t.Fatalf("expected 10 commands, got %d", len(script.Commands))
	}
	vp := script.Commands[0].Viewport
	if vp == nil || vp.Width != 1024 || vp.Height == nil || *vp.Height != 768 {
		t.Fatalf("unexpected viewport: %+v", vp)
	}
	drag := script.Commands[1].Drag
	if drag == nil || drag.Axis != "columns" || drag.Track != "nav" {
		t.Fatalf("unexpected drag: %+v", drag)
	}
	if len(drag.Deltas) != 3 || drag.Deltas[1] != -5 || drag.Deltas[2] != 2.5 || drag.Cancel {
		t.Fatalf("unexpected deltas: %v cancel=%v", drag.Deltas, drag.Cancel)
	}
	if !script.Commands[2].Drag.Cancel {
		t.Fatalf("expected cancelled drag")
	}
	if u := script.Commands[3].Unit; u == nil || u.Unit != "fr" || u.Track != "footer" {
		t.Fatalf("unexpected unit command: %+v", u)
	}
	if s := script.Commands[4].Set; s == nil || s.Dimension != "2fr" {
		t.Fatalf("unexpected set command: %+v", s)
	}
	if ins := script.Commands[5].Insert; ins == nil || ins.After != "main" || *ins.Dimension != "120px" {
		t.Fatalf("unexpected insert command: %+v", ins)
	}
	if ins := script.Commands[6].Insert; ins == nil || ins.Dimension != nil {
		t.Fatalf("expected insert without dimension: %+v", ins)
	}
	if k := script.Commands[7].Key; k == nil || k.Combo() != "ctrl+shift+z" {
		t.Fatalf("unexpected key command: %+v", k)
	}
	if !script.Commands[8].Undo || !script.Commands[9].Redo {
		t.Fatalf("expected undo then redo")
	}
}

func TestParseScriptPercentUnit(t *testing.T) {
	script, err := dsl.ParseScriptString("unit columns nav %")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := script.Commands[0].Unit.Unit; got != "%" {
		t.Fatalf("expected %%, got %s", got)
	}
}

func areaString(refs []*dsl.AreaRef) string {
	values := make([]string, 0, len(refs))
	for _, r := range refs {
		if r.Span {
			values = append(values, "span "+r.Value)
			continue
		}
		values = append(values, r.Value)
	}
	return strings.Join(values, " / ")
}
