package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/ecs"
)

// TestAnimationFrameAdvance 测试动画帧推进逻辑
func TestAnimationFrameAdvance(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	id := em.CreateEntity()

	frame1 := ebiten.NewImage(10, 10)
	frame2 := ebiten.NewImage(10, 10)
	frame3 := ebiten.NewImage(10, 10)

	anim := &components.AnimationComponent{
		Frames:     []*ebiten.Image{frame1, frame2, frame3},
		FrameSpeed: 0.1,
		IsLooping:  true,
	}
	sprite := &components.SpriteComponent{Image: frame1}
	em.AddComponent(id, anim)
	em.AddComponent(id, sprite)

	// deltaTime < FrameSpeed，不切换帧
	system.Update(0.05)
	if anim.CurrentFrame != 0 {
		t.Errorf("Expected CurrentFrame=0, got %d", anim.CurrentFrame)
	}

	// 累积时间 >= FrameSpeed，切换到下一帧
	system.Update(0.06)
	if anim.CurrentFrame != 1 {
		t.Errorf("Expected CurrentFrame=1, got %d", anim.CurrentFrame)
	}
	if sprite.Image != frame2 {
		t.Error("Expected sprite image to be frame2")
	}

	// 循环回第 0 帧
	system.Update(0.1)
	system.Update(0.1)
	if anim.CurrentFrame != 0 {
		t.Errorf("Expected loop back to frame 0, got %d", anim.CurrentFrame)
	}
}

// TestAnimationNonLooping 非循环动画停在最后一帧
func TestAnimationNonLooping(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	id := em.CreateEntity()

	frames := []*ebiten.Image{ebiten.NewImage(2, 2), ebiten.NewImage(2, 2)}
	anim := &components.AnimationComponent{Frames: frames, FrameSpeed: 0.1}
	em.AddComponent(id, anim)
	em.AddComponent(id, &components.SpriteComponent{Image: frames[0]})

	system.Update(0.5)

	if !anim.IsFinished || anim.CurrentFrame != 1 {
		t.Errorf("Expected finished at frame 1, got finished=%v frame=%d", anim.IsFinished, anim.CurrentFrame)
	}
}

// TestAnimationSpeedup 系统繁忙时动画加速
func TestAnimationSpeedup(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	id := em.CreateEntity()

	frames := []*ebiten.Image{ebiten.NewImage(2, 2), ebiten.NewImage(2, 2), ebiten.NewImage(2, 2)}
	anim := &components.AnimationComponent{Frames: frames, FrameSpeed: 0.1, IsLooping: true}
	em.AddComponent(id, anim)
	em.AddComponent(id, &components.SpriteComponent{Image: frames[0]})

	system.SetSpeedup(2)
	system.Update(0.06)
	if anim.CurrentFrame != 1 {
		t.Errorf("Expected frame 1 at 2x speed, got %d", anim.CurrentFrame)
	}

	system.SetSpeedup(0)
	if system.Speedup() != 1 {
		t.Errorf("Expected invalid speedup to reset to 1, got %v", system.Speedup())
	}
}

func TestApplySkinKeepsState(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestPet(em, 100, 100)
	anim, _ := ecs.Get[*components.AnimationComponent](em, id)
	sprite, _ := ecs.Get[*components.SpriteComponent](em, id)
	clips := testClips()
	PlayClip(anim, sprite, components.MotionWalk, clips[components.MotionWalk])
	anim.CurrentFrame = 2

	next := testClips()
	if !ApplySkin(em, id, "other", next) {
		t.Fatal("ApplySkin returned false")
	}

	skin, _ := ecs.Get[*components.SkinComponent](em, id)
	if skin.Name != "other" {
		t.Errorf("skin = %q, want other", skin.Name)
	}
	if anim.State != components.MotionWalk || anim.CurrentFrame != 0 {
		t.Errorf("state=%s frame=%d, want walk at frame 0", anim.State, anim.CurrentFrame)
	}
	if sprite.Image != next[components.MotionWalk].Frames[0] {
		t.Error("sprite not switched to the new skin")
	}

	if ApplySkin(em, em.CreateEntity(), "x", next) {
		t.Error("ApplySkin should fail without a SkinComponent")
	}
}
