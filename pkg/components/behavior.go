package components

// MotionOverride 点击切换的动画锁定
// Auto 表示按速度自动选择，其他值把动画固定在对应状态
type MotionOverride int

const (
	OverrideAuto MotionOverride = iota
	OverrideIdle
	OverrideWalk
	OverrideFly
)

// Next 循环切换：auto -> idle -> walk -> fly -> auto
func (o MotionOverride) Next() MotionOverride {
	return (o + 1) % 4
}

// State 锁定的状态；Auto 时第二个返回值为 false
func (o MotionOverride) State() (MotionState, bool) {
	switch o {
	case OverrideIdle:
		return MotionIdle, true
	case OverrideWalk:
		return MotionWalk, true
	case OverrideFly:
		return MotionFly, true
	}
	return MotionIdle, false
}

// String 返回锁定名
func (o MotionOverride) String() string {
	if state, ok := o.State(); ok {
		return state.String()
	}
	return "auto"
}

// BehaviorComponent 桌宠的移动行为状态
type BehaviorComponent struct {
	// 按住左键时被"拖着走"
	Carrying bool
	CarryT   float64 // 缓入系数，0 ~ 1

	// 跟随鼠标：鼠标离开超过 Delay 后才开始追
	Chasing    bool
	FollowGate float64 // 鼠标持续离开的时间（秒）

	// 闲逛模式
	Wandering       bool
	WanderTargetX   float64
	WanderTargetY   float64
	HasWanderTarget bool

	Override MotionOverride
}

// Mode 当前模式名，用于调试信息和日志
func (b *BehaviorComponent) Mode() string {
	switch {
	case b.Carrying:
		return "carry"
	case b.Wandering:
		return "wander"
	case b.Chasing:
		return "chase"
	}
	return "follow"
}
