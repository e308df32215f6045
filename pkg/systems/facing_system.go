package systems

import (
	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/ecs"
)

// FacingSystem 按本帧水平位移翻转朝向
// |dx| 不超过阈值时保持原朝向，避免原地抖动时来回翻转
type FacingSystem struct {
	entityManager *ecs.EntityManager
	threshold     float64
}

// NewFacingSystem 创建朝向系统
func NewFacingSystem(em *ecs.EntityManager, threshold float64) *FacingSystem {
	return &FacingSystem{entityManager: em, threshold: threshold}
}

// Update 在 MotionStateSystem 记录位移之后调用
func (s *FacingSystem) Update() {
	entities := s.entityManager.GetEntitiesWith(
		ecs.TypeOf[*components.MotionComponent](),
		ecs.TypeOf[*components.FacingComponent](),
	)

	for _, id := range entities {
		motion, _ := ecs.Get[*components.MotionComponent](s.entityManager, id)
		facing, _ := ecs.Get[*components.FacingComponent](s.entityManager, id)

		switch {
		case motion.LastDX > s.threshold:
			facing.Left = false
		case motion.LastDX < -s.threshold:
			facing.Left = true
		}
	}
}
