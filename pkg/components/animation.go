package components

import "github.com/hajimehoshi/ebiten/v2"

// AnimationComponent 管理基于精灵图的帧动画
// 存储当前动画状态使用的帧、播放速度以及播放进度
type AnimationComponent struct {
	State        MotionState     // 当前播放的动画状态（idle / walk / fly）
	Frames       []*ebiten.Image // 当前状态的所有帧
	FrameSpeed   float64         // 每帧时长(秒)
	FrameCounter float64         // 当前帧已播放时间(秒)
	CurrentFrame int             // 当前帧索引(0-based)
	IsLooping    bool            // 是否循环播放
	IsFinished   bool            // 非循环动画是否已播完
}
