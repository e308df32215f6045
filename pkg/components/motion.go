package components

import "math"

// MotionState 由近期位移决定的动画状态
type MotionState int

const (
	// MotionIdle 几乎不动
	MotionIdle MotionState = iota
	// MotionWalk 正常移动
	MotionWalk
	// MotionFly 高速移动
	MotionFly
)

// String 返回状态名
func (s MotionState) String() string {
	switch s {
	case MotionIdle:
		return "idle"
	case MotionWalk:
		return "walk"
	case MotionFly:
		return "fly"
	}
	return "unknown"
}

// MotionComponent 记录最近若干帧的位移，用于判断 idle / walk / fly 和朝向
type MotionComponent struct {
	PrevX, PrevY   float64 // 上一帧的位置
	HasPrev        bool
	LastDX, LastDY float64 // 本帧位移

	Samples []float64 // 位移大小环形缓冲区，长度即采样窗口
	next    int
	filled  int

	Distance float64 // 累计移动距离（像素），写入活动日志
}

// NewMotionComponent 创建采样窗口为 window 帧的运动组件
func NewMotionComponent(window int) *MotionComponent {
	if window < 1 {
		window = 1
	}
	return &MotionComponent{Samples: make([]float64, window)}
}

// Record 记录当前位置，计算并保存本帧位移
func (m *MotionComponent) Record(x, y float64) {
	if !m.HasPrev {
		m.PrevX, m.PrevY = x, y
		m.HasPrev = true
	}
	m.LastDX = x - m.PrevX
	m.LastDY = y - m.PrevY
	m.PrevX, m.PrevY = x, y

	step := math.Hypot(m.LastDX, m.LastDY)
	m.Distance += step

	m.Samples[m.next] = step
	m.next = (m.next + 1) % len(m.Samples)
	if m.filled < len(m.Samples) {
		m.filled++
	}
}

// MeanSpeed 采样窗口内的平均位移（像素/帧）
func (m *MotionComponent) MeanSpeed() float64 {
	if m.filled == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < m.filled; i++ {
		sum += m.Samples[i]
	}
	return sum / float64(m.filled)
}
