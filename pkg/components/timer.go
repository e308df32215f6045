package components

// TimerComponent 通用计时器组件
// 桌宠用它驱动闲逛目标的周期性重选
type TimerComponent struct {
	Name        string  // 计时器名称，如 "wander"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// Reset 重新开始计时
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
	t.IsReady = false
}

// Tick 推进计时器，到点时置 IsReady
func (t *TimerComponent) Tick(deltaTime float64) bool {
	t.CurrentTime += deltaTime
	if t.CurrentTime >= t.TargetTime {
		t.IsReady = true
	}
	return t.IsReady
}
