package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个场景，拥有自己的更新和绘制逻辑
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为本帧经过的秒数
	// 返回 ebiten.Termination 表示请求退出程序
	Update(deltaTime float64) error

	// Draw 把场景绘制到逻辑画布
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口，场景在程序退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 窗口关闭
//   - 用户按 Esc 退出
type Saveable interface {
	// SaveOnExit 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
