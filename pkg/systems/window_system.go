package systems

import (
	"math"

	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/ecs"
	"github.com/decker502/ratpet/pkg/utils"
)

// WindowSystem 把桌宠位置限制在显示器内并同步到窗口
// 只有一个窗口，所以只处理第一个带位置的实体
type WindowSystem struct {
	entityManager *ecs.EntityManager
	desktop       utils.Desktop
	lastX, lastY  int
	applied       bool
}

// NewWindowSystem 创建窗口系统
func NewWindowSystem(em *ecs.EntityManager, desktop utils.Desktop) *WindowSystem {
	return &WindowSystem{
		entityManager: em,
		desktop:       desktop,
	}
}

// Update 限制位置并移动窗口（位置未变时不调用 SetWindowPosition）
func (s *WindowSystem) Update(bounds Bounds) {
	entities := s.entityManager.GetEntitiesWith(ecs.TypeOf[*components.PositionComponent]())
	if len(entities) == 0 {
		return
	}

	pos, _ := ecs.Get[*components.PositionComponent](s.entityManager, entities[0])
	pos.X, pos.Y = bounds.Clamp(pos.X, pos.Y)

	x, y := int(math.Round(pos.X)), int(math.Round(pos.Y))
	if s.applied && x == s.lastX && y == s.lastY {
		return
	}
	s.desktop.SetWindowPosition(x, y)
	s.lastX, s.lastY = x, y
	s.applied = true
}
