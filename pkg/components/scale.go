package components

// ScaleComponent 窗口缩放倍数
// 逻辑画布始终等于精灵格子大小，窗口尺寸 = 格子尺寸 × Scale
type ScaleComponent struct {
	Scale float64
}
