package systems

import (
	"github.com/charmbracelet/log"

	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/ecs"
)

// AnimationSystem 管理所有实体的帧动画
type AnimationSystem struct {
	entityManager *ecs.EntityManager
	speedup       float64 // 播放倍速，系统繁忙时 > 1
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
		speedup:       1,
	}
}

// SetSpeedup 设置播放倍速（<= 0 视为 1）
func (s *AnimationSystem) SetSpeedup(speedup float64) {
	if speedup <= 0 {
		speedup = 1
	}
	s.speedup = speedup
}

// Speedup 当前播放倍速
func (s *AnimationSystem) Speedup() float64 {
	return s.speedup
}

// Update 更新所有动画实体的帧
func (s *AnimationSystem) Update(deltaTime float64) {
	entities := s.entityManager.GetEntitiesWith(
		ecs.TypeOf[*components.AnimationComponent](),
		ecs.TypeOf[*components.SpriteComponent](),
	)

	for _, id := range entities {
		anim, _ := ecs.Get[*components.AnimationComponent](s.entityManager, id)
		sprite, _ := ecs.Get[*components.SpriteComponent](s.entityManager, id)

		if anim.IsFinished || len(anim.Frames) == 0 || anim.FrameSpeed <= 0 {
			continue
		}

		anim.FrameCounter += deltaTime * s.speedup

		// 一帧内可能跨过多个动画帧（倍速或卡顿时）
		for anim.FrameCounter >= anim.FrameSpeed {
			anim.FrameCounter -= anim.FrameSpeed
			anim.CurrentFrame++

			if anim.CurrentFrame >= len(anim.Frames) {
				if anim.IsLooping {
					anim.CurrentFrame = 0
				} else {
					anim.CurrentFrame = len(anim.Frames) - 1
					anim.IsFinished = true
					log.Debugf("[AnimationSystem] animation finished (entity %d)", id)
					break
				}
			}
		}

		sprite.Image = anim.Frames[anim.CurrentFrame]
	}
}

// PlayClip 切换到指定状态的动画并从第一帧开始播放
// sprite 可以为 nil
func PlayClip(anim *components.AnimationComponent, sprite *components.SpriteComponent, state components.MotionState, clip components.AnimationClip) {
	anim.State = state
	anim.Frames = clip.Frames
	anim.FrameSpeed = clip.FrameSeconds
	anim.FrameCounter = 0
	anim.CurrentFrame = 0
	anim.IsLooping = true
	anim.IsFinished = false

	if sprite != nil && len(clip.Frames) > 0 {
		sprite.Image = clip.Frames[0]
	}
}

// ApplySkin 给实体换皮肤，保持当前动画状态但从头播放
func ApplySkin(em *ecs.EntityManager, id ecs.EntityID, name string, clips map[components.MotionState]components.AnimationClip) bool {
	skin, ok := ecs.Get[*components.SkinComponent](em, id)
	if !ok {
		return false
	}
	skin.Name = name
	skin.Clips = clips

	anim, ok := ecs.Get[*components.AnimationComponent](em, id)
	if !ok {
		return true
	}
	sprite, _ := ecs.Get[*components.SpriteComponent](em, id)
	PlayClip(anim, sprite, anim.State, clips[anim.State])
	return true
}
