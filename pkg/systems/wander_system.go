package systems

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/config"
	"github.com/decker502/ratpet/pkg/ecs"
	"github.com/decker502/ratpet/pkg/utils"
)

// WanderSystem 闲逛模式：在屏幕内随机挑选目标点并匀速走过去
// 进入闲逛时立即挑选第一个目标，此后每 Interval 秒重选一次
type WanderSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.WanderConfig
	rng           *rand.Rand
	events        *EventQueue
}

// NewWanderSystem 创建闲逛系统，rng 由调用方提供以便复现
func NewWanderSystem(em *ecs.EntityManager, cfg config.WanderConfig, rng *rand.Rand, events *EventQueue) *WanderSystem {
	return &WanderSystem{
		entityManager: em,
		cfg:           cfg,
		rng:           rng,
		events:        events,
	}
}

// Update 推进闲逛
func (s *WanderSystem) Update(deltaTime float64, bounds Bounds) {
	entities := s.entityManager.GetEntitiesWith(
		ecs.TypeOf[*components.PositionComponent](),
		ecs.TypeOf[*components.BehaviorComponent](),
		ecs.TypeOf[*components.TimerComponent](),
	)

	for _, id := range entities {
		pos, _ := ecs.Get[*components.PositionComponent](s.entityManager, id)
		behavior, _ := ecs.Get[*components.BehaviorComponent](s.entityManager, id)
		timer, _ := ecs.Get[*components.TimerComponent](s.entityManager, id)

		if !behavior.Wandering || behavior.Carrying {
			continue
		}

		if !behavior.HasWanderTarget || timer.Tick(deltaTime) {
			s.pickTarget(id, behavior, bounds)
			timer.TargetTime = s.cfg.Interval
			timer.Reset()
		}

		current := utils.Vec2{X: pos.X, Y: pos.Y}
		target := utils.Vec2{X: behavior.WanderTargetX, Y: behavior.WanderTargetY}
		next := current.MoveTowards(target, s.cfg.Speed*deltaTime)
		pos.X, pos.Y = next.X, next.Y
	}
}

func (s *WanderSystem) pickTarget(id ecs.EntityID, behavior *components.BehaviorComponent, bounds Bounds) {
	behavior.WanderTargetX = s.rng.Float64() * bounds.MaxX
	behavior.WanderTargetY = s.rng.Float64() * bounds.MaxY
	behavior.HasWanderTarget = true
	log.Debugf("[WanderSystem] entity %d new target (%.0f, %.0f)", id, behavior.WanderTargetX, behavior.WanderTargetY)
	s.events.Emit(PetEvent{Kind: EventWanderRetarget, Entity: id})
}
