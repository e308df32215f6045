package components

import "github.com/hajimehoshi/ebiten/v2"

// AnimationClip 已切好的一段循环动画
type AnimationClip struct {
	Frames       []*ebiten.Image
	FrameSeconds float64
}

// SkinComponent 实体当前使用的皮肤
// Clips 必须包含 idle / walk / fly 三个状态
type SkinComponent struct {
	Name  string
	Clips map[MotionState]AnimationClip
}
