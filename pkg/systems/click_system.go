package systems

import (
	"github.com/charmbracelet/log"

	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/config"
	"github.com/decker502/ratpet/pkg/ecs"
	"github.com/decker502/ratpet/pkg/utils"
)

// ClickSystem 把鼠标按键识别为单击 / 双击 / 右键
//
// 单击要等 DoubleClickWindow 过去且没有第二次点击才确认，
// 确认后循环切换动画锁定；双击切换闲逛模式；右键请求下一个皮肤。
type ClickSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.ClickConfig
	events        *EventQueue
	clock         float64 // 场景时钟（秒）
}

// NewClickSystem 创建点击系统
func NewClickSystem(em *ecs.EntityManager, cfg config.ClickConfig, events *EventQueue) *ClickSystem {
	return &ClickSystem{
		entityManager: em,
		cfg:           cfg,
		events:        events,
	}
}

// Update 处理本帧的鼠标状态
func (s *ClickSystem) Update(deltaTime float64, ptr utils.PointerState) {
	s.clock += deltaTime

	entities := s.entityManager.GetEntitiesWith(
		ecs.TypeOf[*components.ClickComponent](),
		ecs.TypeOf[*components.BehaviorComponent](),
	)

	for _, id := range entities {
		click, _ := ecs.Get[*components.ClickComponent](s.entityManager, id)
		behavior, _ := ecs.Get[*components.BehaviorComponent](s.entityManager, id)

		if ptr.LeftJustPressed {
			click.Pressed = true
			click.PressedAt = s.clock
		}

		if ptr.LeftJustReleased && click.Pressed {
			click.Pressed = false
			// 按太久是拖动，不算点击
			if s.clock-click.PressedAt <= s.cfg.MaxPress {
				s.registerClick(id, click, behavior)
			}
		}

		if click.PendingClick && s.clock-click.LastClickAt > s.cfg.DoubleClickWindow {
			click.PendingClick = false
			behavior.Override = behavior.Override.Next()
			log.Debugf("[ClickSystem] single click, animation lock -> %s", behavior.Override)
			s.events.Emit(PetEvent{Kind: EventSingleClick, Entity: id, Override: behavior.Override})
		}

		if ptr.RightJustPressed {
			s.events.Emit(PetEvent{Kind: EventSkinNext, Entity: id})
		}
	}
}

func (s *ClickSystem) registerClick(id ecs.EntityID, click *components.ClickComponent, behavior *components.BehaviorComponent) {
	if click.PendingClick && s.clock-click.LastClickAt <= s.cfg.DoubleClickWindow {
		click.PendingClick = false
		s.toggleWander(id, behavior)
		return
	}
	click.PendingClick = true
	click.LastClickAt = s.clock
}

func (s *ClickSystem) toggleWander(id ecs.EntityID, behavior *components.BehaviorComponent) {
	behavior.Wandering = !behavior.Wandering
	behavior.HasWanderTarget = false
	behavior.Chasing = false
	behavior.FollowGate = 0

	s.events.Emit(PetEvent{Kind: EventDoubleClick, Entity: id})
	if behavior.Wandering {
		log.Debugf("[ClickSystem] double click, wander on (entity %d)", id)
		s.events.Emit(PetEvent{Kind: EventWanderStart, Entity: id})
	} else {
		log.Debugf("[ClickSystem] double click, wander off (entity %d)", id)
		s.events.Emit(PetEvent{Kind: EventWanderStop, Entity: id})
	}
}
