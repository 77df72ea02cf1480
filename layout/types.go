package layout

// 该文件定义几何解析结果，供渲染器与调试 JSON 共用。坐标与尺寸单位均为像素。

// Result 保存某个断点变体在给定容器尺寸下的最终几何信息。
type Result struct {
	Name     string          `json:"name"`
	MinWidth float64         `json:"minWidth"`
	Width    float64         `json:"width"`
	Height   float64         `json:"height"`
	Rows     []ResolvedTrack `json:"rows"`
	Columns  []ResolvedTrack `json:"columns"`
	Gutters  []Gutter        `json:"gutters"`
	Cells    []CellBox       `json:"cells"`
}

// ResolvedTrack 记录单条轨道的起点与像素尺寸。
type ResolvedTrack struct {
	ID        string  `json:"id,omitempty"`
	Offset    float64 `json:"offset"`
	Size      float64 `json:"size"`
	Dimension string  `json:"dimension"` // 原始写法，例如 "1fr"；auto 轨道为空
	Terminal  bool    `json:"terminal,omitempty"`
}

// Gutter 表示两条可寻址轨道之间的分隔线。Index 为左（上）侧轨道的下标。
type Gutter struct {
	Axis     string  `json:"axis"`
	Index    int     `json:"index"`
	Left     string  `json:"left"`
	Right    string  `json:"right"`
	Position float64 `json:"position"`
}

// CellBox 是单元格区域解析后的矩形。
type CellBox struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   *Color  `json:"fill,omitempty"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}
