package components

// ClickComponent 点击识别状态
// 时间都是场景时钟（秒）
type ClickComponent struct {
	Pressed      bool
	PressedAt    float64
	PendingClick bool    // 已有一次点击，等待是否构成双击
	LastClickAt  float64 // 最近一次点击的时间
}
