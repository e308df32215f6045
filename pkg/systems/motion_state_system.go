package systems

import (
	"github.com/charmbracelet/log"

	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/config"
	"github.com/decker502/ratpet/pkg/ecs"
)

// MotionStateSystem 记录位移并按平均速度选择 idle / walk / fly 动画
type MotionStateSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.MotionConfig
	events        *EventQueue
}

// NewMotionStateSystem 创建动画状态选择系统
func NewMotionStateSystem(em *ecs.EntityManager, cfg config.MotionConfig, events *EventQueue) *MotionStateSystem {
	return &MotionStateSystem{
		entityManager: em,
		cfg:           cfg,
		events:        events,
	}
}

// SelectMotionState 根据平均位移（像素/帧）与锁定选择状态
func SelectMotionState(meanSpeed float64, override components.MotionOverride, cfg config.MotionConfig) components.MotionState {
	if state, locked := override.State(); locked {
		return state
	}
	switch {
	case meanSpeed < cfg.IdleSpeed:
		return components.MotionIdle
	case meanSpeed >= cfg.FlySpeed:
		return components.MotionFly
	}
	return components.MotionWalk
}

// Update 必须在所有改变位置的系统之后调用
func (s *MotionStateSystem) Update() {
	entities := s.entityManager.GetEntitiesWith(
		ecs.TypeOf[*components.PositionComponent](),
		ecs.TypeOf[*components.MotionComponent](),
		ecs.TypeOf[*components.BehaviorComponent](),
		ecs.TypeOf[*components.AnimationComponent](),
		ecs.TypeOf[*components.SkinComponent](),
	)

	for _, id := range entities {
		pos, _ := ecs.Get[*components.PositionComponent](s.entityManager, id)
		motion, _ := ecs.Get[*components.MotionComponent](s.entityManager, id)
		behavior, _ := ecs.Get[*components.BehaviorComponent](s.entityManager, id)
		anim, _ := ecs.Get[*components.AnimationComponent](s.entityManager, id)
		skin, _ := ecs.Get[*components.SkinComponent](s.entityManager, id)

		motion.Record(pos.X, pos.Y)

		state := SelectMotionState(motion.MeanSpeed(), behavior.Override, s.cfg)
		if state == anim.State {
			continue
		}

		sprite, _ := ecs.Get[*components.SpriteComponent](s.entityManager, id)
		PlayClip(anim, sprite, state, skin.Clips[state])
		log.Debugf("[MotionStateSystem] entity %d -> %s (mean %.2f px/tick)", id, state, motion.MeanSpeed())
		s.events.Emit(PetEvent{Kind: EventStateChange, Entity: id, State: state})
	}
}
