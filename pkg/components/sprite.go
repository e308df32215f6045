package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体当前绘制的图像
type SpriteComponent struct {
	Image *ebiten.Image
}
