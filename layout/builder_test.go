package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ByLCY/gryd/dsl"
)

const dashboardGrid = `
grid Dashboard {
  variant 600 {
    rows: [header 64px, body 1fr, _]
    columns: [nav 200px, main 1fr, aside 25%, _]
  }
  variant 0 {
    rows: [header 80px, body 1fr, footer, _]
    columns: [main 1fr, _]
  }
  cell top header nav span 1 span 3 #0F62FE
}
`

// buildFromDSL 是测试辅助：用给定 DSL 文本构建布局。
func buildFromDSL(t *testing.T, text string) (*Layout, error) {
	t.Helper()
	doc, err := dsl.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("解析 DSL 失败: %v", err)
	}
	return Build(doc, BuildOptions{})
}

func TestBuildLayout(t *testing.T) {
	l, err := buildFromDSL(t, dashboardGrid)
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}
	if l.Name != "Dashboard" || len(l.Variants) != 2 || len(l.Cells) != 1 {
		t.Fatalf("布局结构不符合预期: %+v", l)
	}

	wide := l.Variants[0]
	if wide.MinWidth != 600 || len(wide.Columns) != 4 {
		t.Fatalf("宽屏变体错误: %+v", wide)
	}
	if d, ok := wide.Columns[2].Resolved(); !ok || d != Pct(25) {
		t.Fatalf("aside 期望 25%%，实际 %+v", wide.Columns[2])
	}
	if !wide.Columns[3].IsTerminal() {
		t.Fatalf("最后一列应为终止轨道")
	}

	narrow := l.Variants[1]
	if _, ok := narrow.Rows[2].Resolved(); ok || narrow.Rows[2].ID != "footer" {
		t.Fatalf("footer 应为 auto 轨道: %+v", narrow.Rows[2])
	}

	cell := l.Cells[0]
	if cell.Area[0].Name != "header" || cell.Area[3].Span != 3 {
		t.Fatalf("单元格区域错误: %+v", cell.Area)
	}
	if cell.Fill == nil || *cell.Fill != (Color{R: 0x0F, G: 0x62, B: 0xFE}) {
		t.Fatalf("填充色错误: %+v", cell.Fill)
	}

	_, v, ok := l.Select(1024)
	if !ok || v.MinWidth != 600 {
		t.Fatalf("1024 宽度应选中 600 断点")
	}
}

// TestBuildUnknownUnitFallsBackToAuto 验证无法识别的单位按 auto 处理并记录警告。
func TestBuildUnknownUnitFallsBackToAuto(t *testing.T) {
	doc, err := dsl.ParseString(`grid G { variant 0 { rows: [a 10em, b 10PX, _]; columns: [c 1fr, _] } }`)
	if err != nil {
		t.Fatalf("解析 DSL 失败: %v", err)
	}
	core, logs := observer.New(zapcore.WarnLevel)
	l, err := Build(doc, BuildOptions{Logger: zap.New(core)})
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}

	rows := l.Variants[0].Rows
	if _, ok := rows[0].Resolved(); ok || rows[0].ID != "a" || rows[0].IsTerminal() {
		t.Fatalf("10em 应回退为 auto 轨道: %+v", rows[0])
	}
	if d, ok := rows[1].Resolved(); !ok || d != Px(10) {
		t.Fatalf("10PX 应按 10px 解析，实际 %+v", rows[1])
	}

	warned := logs.FilterMessage("unrecognized dimension, track falls back to auto").All()
	if len(warned) != 1 {
		t.Fatalf("期望 1 条警告，实际 %d", len(warned))
	}
	if got := warned[0].ContextMap()["value"]; got != "10em" {
		t.Fatalf("警告应包含原始尺寸 10em，实际 %v", got)
	}
}

func TestBuildErrors(t *testing.T) {
	cases := map[string]string{
		"缺少 columns": `grid G { variant 0 { rows: [a 1fr, _] } }`,
		"重复 id":      `grid G { variant 0 { rows: [a 1fr, a 1fr, _]; columns: [b, _] } }`,
		"重复断点":       `grid G { variant 0 { rows: [a, _]; columns: [b, _] } variant 0 { rows: [a, _]; columns: [b, _] } }`,
		"无变体":        `grid G { cell c a b span 1 span 1 }`,
		"span 非正数":   `grid G { variant 0 { rows: [a, _]; columns: [b, _] } cell c a b span x span 1 }`,
		"轨道过少":       `grid G { variant 0 { rows: [_]; columns: [b, _] } }`,
	}
	for name, text := range cases {
		if _, err := buildFromDSL(t, text); err == nil {
			t.Fatalf("%s: 期望构建失败", name)
		}
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]Color{
		"#fff":      {255, 255, 255},
		"#0F62FE":   {15, 98, 254},
		"#11223344": {0x11, 0x22, 0x33},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil || got != want {
			t.Fatalf("%s: 期望 %+v，实际 %+v err=%v", in, want, got, err)
		}
	}
	if _, err := ParseColor("#12"); err == nil {
		t.Fatalf("#12 应解析失败")
	}
}

func TestFormatVariantRoundTrip(t *testing.T) {
	l, err := buildFromDSL(t, dashboardGrid)
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}
	text := "grid Again {\n" + FormatVariant(l.Variants[1]) + "\n}\n"
	again, err := buildFromDSL(t, text)
	if err != nil {
		t.Fatalf("重新构建失败: %v\n%s", err, text)
	}
	if got, want := FormatVariant(again.Variants[0]), FormatVariant(l.Variants[1]); got != want {
		t.Fatalf("格式化往返不一致:\n%s\n%s", got, want)
	}
	if !strings.Contains(text, "rows: [header 80px, body 1fr, footer, _]") {
		t.Fatalf("格式化输出不符合预期:\n%s", text)
	}
}

func TestWriteDebugJSON(t *testing.T) {
	l, err := buildFromDSL(t, dashboardGrid)
	if err != nil {
		t.Fatalf("构建失败: %v", err)
	}
	_, v, _ := l.Select(800)
	res, err := Compute(*l, v, 800, 600)
	if err != nil {
		t.Fatalf("几何解析失败: %v", err)
	}
	path := filepath.Join(t.TempDir(), "debug.json")
	if err := WriteDebugJSON(res, path); err != nil {
		t.Fatalf("写入调试 JSON 失败: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取调试 JSON 失败: %v", err)
	}
	if !strings.Contains(string(data), `"25%"`) {
		t.Fatalf("调试 JSON 缺少轨道尺寸:\n%s", data)
	}
	if err := WriteDebugJSON(nil, path); err != nil {
		t.Fatalf("nil 结果应被忽略: %v", err)
	}
}
