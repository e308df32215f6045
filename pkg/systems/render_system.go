package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/ecs"
)

// RenderSystem 把桌宠画到逻辑画布上（画布尺寸 = 单元格尺寸）
// 精灵图按朝右绘制，朝左时水平镜像
type RenderSystem struct {
	entityManager *ecs.EntityManager
	debugFace     *text.GoXFace
	ShowDebug     bool
	// StatusLine 调试浮层的附加行（系统负载），空则不显示
	StatusLine string
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		debugFace:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw 绘制所有带精灵的实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	entities := s.entityManager.GetEntitiesWith(ecs.TypeOf[*components.SpriteComponent]())

	for _, id := range entities {
		sprite, _ := ecs.Get[*components.SpriteComponent](s.entityManager, id)
		if sprite.Image == nil {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterNearest
		if facing, ok := ecs.Get[*components.FacingComponent](s.entityManager, id); ok && facing.Left {
			w := sprite.Image.Bounds().Dx()
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(w), 0)
		}
		screen.DrawImage(sprite.Image, op)

		if s.ShowDebug {
			s.drawDebug(screen, id)
		}
	}
}

// DebugLabel 调试浮层文字：模式/动画状态/锁定，以及 StatusLine
func (s *RenderSystem) DebugLabel(id ecs.EntityID) string {
	behavior, ok := ecs.Get[*components.BehaviorComponent](s.entityManager, id)
	if !ok {
		return ""
	}
	state := "?"
	if anim, ok := ecs.Get[*components.AnimationComponent](s.entityManager, id); ok {
		state = anim.State.String()
	}
	label := fmt.Sprintf("%s\n%s/%s", behavior.Mode(), state, behavior.Override)
	if s.StatusLine != "" {
		label += "\n" + s.StatusLine
	}
	return label
}

func (s *RenderSystem) drawDebug(screen *ebiten.Image, id ecs.EntityID) {
	label := s.DebugLabel(id)
	if label == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(1, 1)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 64, B: 64, A: 255})
	op.LineSpacing = 13
	text.Draw(screen, label, s.debugFace, op)
}
