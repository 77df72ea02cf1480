package dsl

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		// Any number with a unit suffix is a Dimension; layout decides whether the unit is known.
		{Name: "Dimension", Pattern: `-?(?:\d+\.\d+|\d+)[A-Za-z%]+`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[][(),:;+%]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	elided = participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment")

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Unquote("String"),
		elided,
	)

	scriptParser = participle.MustBuild[Script](
		participle.Lexer(dslLexer),
		elided,
	)
)

// Document is the root AST node of a .grid file.
type Document struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Name     string         `parser:"Newline* 'grid' @( Ident | String )"`
	Sections []*Section     `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Section is a top-level statement inside the grid block.
type Section struct {
	Variant *VariantSection `parser:"  @@"`
	Cell    *CellSection    `parser:"| @@"`
}

// Kind returns the human-readable section type.
func (s *Section) Kind() string {
	switch {
	case s == nil:
		return "unknown"
	case s.Variant != nil:
		return "variant"
	case s.Cell != nil:
		return "cell"
	default:
		return "unknown"
	}
}

// VariantSection declares the axes active from MinWidth up.
type VariantSection struct {
	Pos      lexer.Position `parser:"" json:"-"`
	MinWidth float64        `parser:"'variant' @Number"`
	Axes     []*AxisDecl    `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// AxisDecl lists the tracks of one axis.
type AxisDecl struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Kind   string         `parser:"@( 'rows' | 'columns' ) ':'"`
	Tracks []*TrackDecl   `parser:"'[' Newline* ( @@ ','? Newline* )* ']'"`
}

// TrackDecl is either the terminal marker "_" or a named track with an
// optional dimension.
type TrackDecl struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Terminal bool           `parser:"  @'_'"`
	Named    *NamedTrack    `parser:"| @@"`
}

// NamedTrack is "<id> [<dimension>]".
type NamedTrack struct {
	ID   string  `parser:"@Ident"`
	Size *string `parser:"@Dimension?"`
}

// CellSection places a cell: row start, column start, row end, column end,
// then an optional fill color.
type CellSection struct {
	Pos  lexer.Position `parser:"" json:"-"`
	ID   string         `parser:"'cell' @( Ident | String )"`
	Area []*AreaRef     `parser:"@@ @@ @@ @@"`
	Fill *string        `parser:"@Color?"`
}

// AreaRef is a track name, a line number, or "span N".
type AreaRef struct {
	Span  bool   `parser:"@'span'?"`
	Value string `parser:"@( Ident | Number )"`
}

// Parse parses a grid file from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses grid file content from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}

// Script is a sequence of editor commands, one per line.
type Script struct {
	Commands []*ScriptCommand `parser:"Newline* ( @@ ( ';' | Newline )* )*"`
}

// ScriptCommand is one replayable editor event.
type ScriptCommand struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Viewport *ViewportCmd   `parser:"  @@"`
	Drag     *DragCmd       `parser:"| @@"`
	Unit     *UnitCmd       `parser:"| @@"`
	Set      *SetCmd        `parser:"| @@"`
	Insert   *InsertCmd     `parser:"| @@"`
	Key      *KeyCmd        `parser:"| @@"`
	Undo     bool           `parser:"| @'undo'"`
	Redo     bool           `parser:"| @'redo'"`
}

// ViewportCmd sets the container size: "viewport 1024 768".
type ViewportCmd struct {
	Width  float64  `parser:"'viewport' @Number"`
	Height *float64 `parser:"@Number?"`
}

// DragCmd replays a gutter drag as incremental pointer deltas:
// "drag columns nav 30 -5 [cancel]".
type DragCmd struct {
	Axis   string    `parser:"'drag' @( 'rows' | 'columns' )"`
	Track  string    `parser:"@Ident"`
	Deltas []float64 `parser:"@Number+"`
	Cancel bool      `parser:"@'cancel'?"`
}

// UnitCmd converts a track to another unit: "unit rows body px".
type UnitCmd struct {
	Axis  string `parser:"'unit' @( 'rows' | 'columns' )"`
	Track string `parser:"@Ident"`
	Unit  string `parser:"@( 'px' | '%' | 'fr' )"`
}

// SetCmd commits a typed dimension: "set columns main 2fr".
type SetCmd struct {
	Axis      string `parser:"'set' @( 'rows' | 'columns' )"`
	Track     string `parser:"@Ident"`
	Dimension string `parser:"@Dimension"`
}

// InsertCmd adds a track after another: "insert columns main 120px".
type InsertCmd struct {
	Axis      string  `parser:"'insert' @( 'rows' | 'columns' )"`
	After     string  `parser:"@Ident"`
	Dimension *string `parser:"@Dimension?"`
}

// KeyCmd dispatches a key combination: "key ctrl+shift+z".
type KeyCmd struct {
	Parts []string `parser:"'key' @( Ident | Number ) ( '+' @( Ident | Number ) )*"`
}

// Combo joins the key parts back into "ctrl+z" form.
func (k *KeyCmd) Combo() string { return strings.Join(k.Parts, "+") }

// ParseScript parses an edit script from an io.Reader.
func ParseScript(r io.Reader) (*Script, error) {
	return scriptParser.Parse("", r)
}

// ParseScriptString parses an edit script from a string.
func ParseScriptString(input string) (*Script, error) {
	return scriptParser.ParseString("", input)
}
