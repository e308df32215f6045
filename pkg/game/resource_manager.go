package game

import (
	"fmt"
	"image"
	_ "image/png" // PNG 解码器

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/config"
	"github.com/decker502/ratpet/pkg/embedded"
)

// ResourceManager 加载并缓存图片资源，把精灵图切成动画帧
// 路径按 embedded 包的规则解析："assets/" 开头读嵌入资源，其他读磁盘
type ResourceManager struct {
	imageCache map[string]*ebiten.Image
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage 加载图片并缓存，已加载过的直接返回缓存
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cached, exists := rm.imageCache[path]; exists {
		return cached, nil
	}

	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	log.Debugf("[ResourceManager] loaded %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return ebitenImg, nil
}

// SliceFrames 从精灵图的一行切出 [first, last] 列
func SliceFrames(sheetImg *ebiten.Image, sheet config.SheetConfig, clip config.ClipConfig) []*ebiten.Image {
	frames := make([]*ebiten.Image, 0, clip.FrameCount())
	origin := sheetImg.Bounds().Min
	y := origin.Y + clip.Row*sheet.CellHeight
	for col := clip.First; col <= clip.Last; col++ {
		x := origin.X + col*sheet.CellWidth
		rect := image.Rect(x, y, x+sheet.CellWidth, y+sheet.CellHeight)
		frames = append(frames, sheetImg.SubImage(rect).(*ebiten.Image))
	}
	return frames
}

// LoadSkin 加载皮肤的三个动画片段
func (rm *ResourceManager) LoadSkin(sheet config.SheetConfig, skin config.SkinConfig) (map[components.MotionState]components.AnimationClip, error) {
	sheetImg, err := rm.LoadImage(sheet.Path)
	if err != nil {
		return nil, err
	}

	b := sheetImg.Bounds()
	if b.Dx() < sheet.Columns*sheet.CellWidth || b.Dy() < sheet.Rows*sheet.CellHeight {
		return nil, fmt.Errorf("sprite sheet %s is %dx%d, smaller than %dx%d cells of %dx%d",
			sheet.Path, b.Dx(), b.Dy(), sheet.Columns, sheet.Rows, sheet.CellWidth, sheet.CellHeight)
	}

	clipConfigs := map[components.MotionState]config.ClipConfig{
		components.MotionIdle: skin.Idle,
		components.MotionWalk: skin.Walk,
		components.MotionFly:  skin.Fly,
	}
	clips := make(map[components.MotionState]components.AnimationClip, len(clipConfigs))
	for state, clip := range clipConfigs {
		clips[state] = components.AnimationClip{
			Frames:       SliceFrames(sheetImg, sheet, clip),
			FrameSeconds: clip.FrameSeconds,
		}
	}
	return clips, nil
}

// CheckSheetImage 只读取图片头，检查精灵图尺寸是否容纳全部格子
// 不创建 GPU 图片，可以在窗口启动前调用
func CheckSheetImage(sheet config.SheetConfig) (image.Config, error) {
	f, err := embedded.Open(sheet.Path)
	if err != nil {
		return image.Config{}, fmt.Errorf("failed to open sprite sheet %s: %w", sheet.Path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, fmt.Errorf("failed to decode sprite sheet %s: %w", sheet.Path, err)
	}
	if format != "png" {
		return cfg, fmt.Errorf("sprite sheet %s is %s, want png", sheet.Path, format)
	}
	if cfg.Width < sheet.Columns*sheet.CellWidth || cfg.Height < sheet.Rows*sheet.CellHeight {
		return cfg, fmt.Errorf("sprite sheet %s is %dx%d, smaller than %dx%d cells of %dx%d",
			sheet.Path, cfg.Width, cfg.Height, sheet.Columns, sheet.Rows, sheet.CellWidth, sheet.CellHeight)
	}
	return cfg, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
