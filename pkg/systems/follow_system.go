package systems

import (
	"math"

	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/config"
	"github.com/decker502/ratpet/pkg/ecs"
	"github.com/decker502/ratpet/pkg/utils"
)

// FollowSystem 让桌宠跟随鼠标
//
// 目标点 = 鼠标位置 - 窗口尺寸/2（桌宠居中在鼠标上）。
//   - 按住左键（carry）：缓入系数 t 以 EaseInRate/秒增长，位置 = lerp(位置, 目标, EaseInQuad(t))
//   - 松开（follow）：鼠标持续离开 Delay 秒后开始追，每帧靠近剩余距离的 Smoothing 比例，
//     进入 ArriveRadius 后停下并重新等待
//
// 闲逛模式下不跟随（由 WanderSystem 负责），但按住左键仍然可以把它拖回来。
type FollowSystem struct {
	entityManager *ecs.EntityManager
	follow        config.FollowConfig
	carry         config.CarryConfig
}

// NewFollowSystem 创建跟随系统
func NewFollowSystem(em *ecs.EntityManager, follow config.FollowConfig, carry config.CarryConfig) *FollowSystem {
	return &FollowSystem{
		entityManager: em,
		follow:        follow,
		carry:         carry,
	}
}

// Update 更新所有桌宠的位置
// windowW/windowH 为窗口像素尺寸
func (s *FollowSystem) Update(deltaTime float64, ptr utils.PointerState, windowW, windowH float64) {
	target := utils.Vec2{X: ptr.X - windowW/2, Y: ptr.Y - windowH/2}

	entities := s.entityManager.GetEntitiesWith(
		ecs.TypeOf[*components.PositionComponent](),
		ecs.TypeOf[*components.BehaviorComponent](),
	)

	for _, id := range entities {
		pos, _ := ecs.Get[*components.PositionComponent](s.entityManager, id)
		behavior, _ := ecs.Get[*components.BehaviorComponent](s.entityManager, id)

		// 首帧：未指定起始位置时直接出现在鼠标处
		if !pos.Placed {
			pos.Placed = true
			if pos.IsOrigin() {
				pos.X, pos.Y = target.X, target.Y
				continue
			}
		}

		current := utils.Vec2{X: pos.X, Y: pos.Y}

		if ptr.LeftDown {
			next := s.carryStep(behavior, current, target, deltaTime)
			pos.X, pos.Y = next.X, next.Y
			continue
		}

		if behavior.Carrying {
			behavior.Carrying = false
			behavior.CarryT = 0
			behavior.Chasing = false
			behavior.FollowGate = 0
		}

		if behavior.Wandering {
			continue
		}

		next := s.followStep(behavior, current, target, deltaTime)
		pos.X, pos.Y = next.X, next.Y
	}
}

func (s *FollowSystem) carryStep(behavior *components.BehaviorComponent, current, target utils.Vec2, deltaTime float64) utils.Vec2 {
	if !behavior.Carrying {
		behavior.Carrying = true
		behavior.CarryT = 0
	}
	behavior.CarryT = math.Min(1, behavior.CarryT+s.carry.EaseInRate*deltaTime)
	return current.Lerp(target, utils.EaseInQuad(behavior.CarryT))
}

func (s *FollowSystem) followStep(behavior *components.BehaviorComponent, current, target utils.Vec2, deltaTime float64) utils.Vec2 {
	if !behavior.Chasing {
		if current.Dist(target) <= s.follow.ArriveRadius {
			behavior.FollowGate = 0
			return current
		}
		behavior.FollowGate += deltaTime
		if behavior.FollowGate < s.follow.Delay {
			return current
		}
		behavior.Chasing = true
	}

	factor := utils.SmoothingFactor(s.follow.Smoothing, deltaTime*config.TicksPerSecond)
	next := current.Lerp(target, factor)

	if next.Dist(target) <= s.follow.ArriveRadius {
		behavior.Chasing = false
		behavior.FollowGate = 0
	}
	return next
}
