package components

// PositionComponent 桌宠窗口左上角在桌面坐标系中的位置
// 桌宠本身没有"世界"，它的位置就是窗口的位置
type PositionComponent struct {
	X, Y float64

	// Placed 是否已经过第一帧定位
	// (0, 0) 也可能是贴在屏幕左上角的合法位置，不能单靠坐标判断
	Placed bool
}

// IsOrigin 位置是否为 (0, 0)
func (p *PositionComponent) IsOrigin() bool {
	return p.X == 0 && p.Y == 0
}
