// Package entities 创建桌宠实体
package entities

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/config"
	"github.com/decker502/ratpet/pkg/ecs"
	"github.com/decker502/ratpet/pkg/systems"
)

// SkinLoader 把皮肤配置切成动画片段
// game.ResourceManager 实现此接口，测试中使用 mock
type SkinLoader interface {
	LoadSkin(sheet config.SheetConfig, skin config.SkinConfig) (map[components.MotionState]components.AnimationClip, error)
}

// PetOptions 创建桌宠所需参数
type PetOptions struct {
	Skin     config.SkinConfig
	Sheet    config.SheetConfig
	Behavior *config.BehaviorConfig
	X, Y     float64 // 初始位置，(0, 0) 表示首帧吸附到鼠标
	Scale    float64
}

// NewPetEntity 创建桌宠实体
//
// 组件：Position、Motion、Facing、Behavior、Click、Timer("wander")、
// Skin、Animation、Sprite、Scale。初始动画为 idle 第一帧。
func NewPetEntity(em *ecs.EntityManager, loader SkinLoader, opts PetOptions) (ecs.EntityID, error) {
	if opts.Behavior == nil {
		opts.Behavior = config.DefaultBehaviorConfig()
	}

	clips, err := loader.LoadSkin(opts.Sheet, opts.Skin)
	if err != nil {
		return 0, fmt.Errorf("failed to load skin %q: %w", opts.Skin.Name, err)
	}
	for _, state := range []components.MotionState{components.MotionIdle, components.MotionWalk, components.MotionFly} {
		if len(clips[state].Frames) == 0 {
			return 0, fmt.Errorf("skin %q has no %s frames", opts.Skin.Name, state)
		}
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: opts.X, Y: opts.Y})
	em.AddComponent(id, components.NewMotionComponent(opts.Behavior.Motion.SpeedWindow))
	em.AddComponent(id, &components.FacingComponent{})
	em.AddComponent(id, &components.BehaviorComponent{})
	em.AddComponent(id, &components.ClickComponent{})
	em.AddComponent(id, &components.TimerComponent{
		Name:       "wander",
		TargetTime: opts.Behavior.Wander.Interval,
	})
	em.AddComponent(id, &components.SkinComponent{Name: opts.Skin.Name, Clips: clips})
	em.AddComponent(id, &components.ScaleComponent{Scale: opts.Behavior.ClampScale(opts.Scale)})

	anim := &components.AnimationComponent{}
	sprite := &components.SpriteComponent{}
	systems.PlayClip(anim, sprite, components.MotionIdle, clips[components.MotionIdle])
	em.AddComponent(id, anim)
	em.AddComponent(id, sprite)

	log.Debugf("[PetFactory] created pet %d (skin=%s, pos=(%.0f, %.0f))", id, opts.Skin.Name, opts.X, opts.Y)
	return id, nil
}
