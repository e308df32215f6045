package systems

import "math"

// Bounds 窗口左上角允许的范围 [0, MaxX] × [0, MaxY]
type Bounds struct {
	MaxX, MaxY float64
}

// BoundsFor 根据显示器和窗口尺寸计算可移动范围
func BoundsFor(monitorW, monitorH int, windowW, windowH float64) Bounds {
	return Bounds{
		MaxX: math.Max(0, float64(monitorW)-windowW),
		MaxY: math.Max(0, float64(monitorH)-windowH),
	}
}

// Clamp 把坐标限制在范围内
func (b Bounds) Clamp(x, y float64) (float64, float64) {
	return math.Max(0, math.Min(x, b.MaxX)), math.Max(0, math.Min(y, b.MaxY))
}
