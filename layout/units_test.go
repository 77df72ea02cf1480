package layout

import (
	"math"
	"testing"
)

// TestDimensionStringParseRoundTrip 验证字符串格式与解析的往返一致性。
func TestDimensionStringParseRoundTrip(t *testing.T) {
	samples := []Dimension{Px(0), Px(120), Px(-40), Pct(25), Pct(33.33), Fr(1), Fr(0.5), Fr(2.75)}
	for _, d := range samples {
		s := d.String()
		back, ok := ParseDimension(s)
		if !ok {
			t.Fatalf("无法解析 %q", s)
		}
		if back.Unit != d.Unit || math.Abs(back.Value-d.Value) > 1e-9 {
			t.Fatalf("往返不一致: in=%+v str=%s back=%+v", d, s, back)
		}
	}
}

// TestDimensionStringRounding 覆盖 px 取整、%/fr 保留两位小数的规则。
func TestDimensionStringRounding(t *testing.T) {
	cases := []struct {
		in   Dimension
		want string
	}{
		{Px(100.4), "100px"},
		{Px(100.6), "101px"},
		{Pct(33.3333), "33.33%"},
		{Fr(1.529411), "1.53fr"},
		{Fr(2), "2fr"},
		{Px(-0.2), "0px"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Fatalf("%+v 格式化期望 %s，实际 %s", c.in, c.want, got)
		}
	}
	if got := Fr(1.529411).Format(4); got != "1.5294fr" {
		t.Fatalf("Format(4) 期望 1.5294fr，实际 %s", got)
	}
}

// TestParseDimensionRejects 无法识别的写法返回 ok=false 而不是错误。
func TestParseDimensionRejects(t *testing.T) {
	for _, s := range []string{"", "auto", "px", "10", "10em", "1e3px", "fr1", "1.fr", "NaNpx", "10 px"} {
		if d, ok := ParseDimension(s); ok {
			t.Fatalf("%q 不应被解析，得到 %+v", s, d)
		}
	}
	d, ok := ParseDimension(" 12.5FR ")
	if !ok || d.Unit != UnitFraction || d.Value != 12.5 {
		t.Fatalf("大小写与空白应被容忍，得到 %+v ok=%v", d, ok)
	}
}

func TestParseUnit(t *testing.T) {
	for _, u := range []Unit{UnitPixel, UnitPercent, UnitFraction} {
		back, ok := ParseUnit(u.String())
		if !ok || back != u {
			t.Fatalf("单元 %v 往返失败", u)
		}
	}
	if _, ok := ParseUnit("em"); ok {
		t.Fatalf("em 不是合法单位")
	}
}
