// Package utils 提供桌宠通用工具：缓动、二维向量以及桌面/窗口访问
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧的鼠标状态
// 坐标为桌面坐标（像素），不是窗口内坐标
type PointerState struct {
	X, Y             float64
	LeftDown         bool
	LeftJustPressed  bool
	LeftJustReleased bool
	RightJustPressed bool
}

// Desktop 桌面与窗口访问接口
// 系统只依赖这个接口，测试中用假实现替换 Ebitengine
type Desktop interface {
	Pointer() PointerState
	MonitorSize() (width, height int)
	SetWindowPosition(x, y int)
}

// EbitenDesktop 基于 Ebitengine 的 Desktop 实现
//
// ebiten.CursorPosition 返回的是逻辑画布坐标（Layout 尺寸），
// 画布被放大 Scale 倍显示，所以要乘回窗口像素再加上窗口位置。
// 鼠标在窗口外时大部分桌面平台仍会报告坐标（可能为负）。
type EbitenDesktop struct {
	Scale float64
}

// NewEbitenDesktop 创建 Desktop，scale 为窗口相对逻辑画布的放大倍数
func NewEbitenDesktop(scale float64) *EbitenDesktop {
	if scale <= 0 {
		scale = 1
	}
	return &EbitenDesktop{Scale: scale}
}

// Pointer 读取鼠标桌面坐标与按键状态
func (d *EbitenDesktop) Pointer() PointerState {
	wx, wy := ebiten.WindowPosition()
	cx, cy := ebiten.CursorPosition()
	return PointerState{
		X:                float64(wx) + float64(cx)*d.Scale,
		Y:                float64(wy) + float64(cy)*d.Scale,
		LeftDown:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftJustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		LeftJustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		RightJustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
	}
}

// MonitorSize 当前显示器尺寸
func (d *EbitenDesktop) MonitorSize() (int, int) {
	return ebiten.Monitor().Size()
}

// SetWindowPosition 移动窗口
func (d *EbitenDesktop) SetWindowPosition(x, y int) {
	ebiten.SetWindowPosition(x, y)
}
