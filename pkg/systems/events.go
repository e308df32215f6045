package systems

import (
	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/ecs"
)

// EventKind 系统产生的桌宠事件类型
type EventKind int

const (
	// EventSingleClick 单击（已切换动画锁定）
	EventSingleClick EventKind = iota
	// EventDoubleClick 双击（已切换闲逛模式）
	EventDoubleClick
	// EventWanderStart 进入闲逛模式
	EventWanderStart
	// EventWanderStop 退出闲逛模式
	EventWanderStop
	// EventWanderRetarget 闲逛挑选了新目标点
	EventWanderRetarget
	// EventSkinNext 请求切换到下一个皮肤（右键）
	EventSkinNext
	// EventStateChange 动画状态变化
	EventStateChange
)

// String 事件名，也是活动日志中的 kind 字段
func (k EventKind) String() string {
	switch k {
	case EventSingleClick:
		return "single_click"
	case EventDoubleClick:
		return "double_click"
	case EventWanderStart:
		return "wander_start"
	case EventWanderStop:
		return "wander_stop"
	case EventWanderRetarget:
		return "wander_retarget"
	case EventSkinNext:
		return "skin_next"
	case EventStateChange:
		return "state_change"
	}
	return "unknown"
}

// PetEvent 一条事件
type PetEvent struct {
	Kind     EventKind
	Entity   ecs.EntityID
	State    components.MotionState    // EventStateChange 的新状态
	Override components.MotionOverride // EventSingleClick 之后的锁定
}

// EventQueue 每帧收集系统事件，由场景在帧末统一消费
type EventQueue struct {
	events []PetEvent
}

// Emit 追加事件
func (q *EventQueue) Emit(ev PetEvent) {
	q.events = append(q.events, ev)
}

// Drain 取出并清空全部事件
func (q *EventQueue) Drain() []PetEvent {
	out := q.events
	q.events = nil
	return out
}

// Len 当前排队的事件数
func (q *EventQueue) Len() int {
	return len(q.events)
}
