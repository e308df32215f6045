package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/decker502/ratpet/pkg/embedded"
)

// SkinsConfig 精灵图布局与皮肤列表
type SkinsConfig struct {
	Sheet       SheetConfig  `yaml:"sheet"`
	DefaultSkin string       `yaml:"defaultSkin"`
	Skins       []SkinConfig `yaml:"skins"`
}

// SheetConfig 精灵图网格
type SheetConfig struct {
	Path       string `yaml:"path"`
	CellWidth  int    `yaml:"cellWidth"`
	CellHeight int    `yaml:"cellHeight"`
	Columns    int    `yaml:"columns"`
	Rows       int    `yaml:"rows"`
}

// SkinConfig 一个皮肤：idle / walk / fly 三个循环动画
type SkinConfig struct {
	Name string     `yaml:"name"`
	Idle ClipConfig `yaml:"idle"`
	Walk ClipConfig `yaml:"walk"`
	Fly  ClipConfig `yaml:"fly"`
}

// ClipConfig 一段动画：精灵图中某一行的 [First, Last] 列
type ClipConfig struct {
	Row          int     `yaml:"row"`
	First        int     `yaml:"first"`
	Last         int     `yaml:"last"`
	FrameSeconds float64 `yaml:"frameSeconds"`
}

// FrameCount 动画帧数
func (c ClipConfig) FrameCount() int {
	return c.Last - c.First + 1
}

// LoadSkinsConfig 从 YAML 加载皮肤配置
func LoadSkinsConfig(path string) (*SkinsConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skins config %s: %w", path, err)
	}
	return ParseSkinsConfig(data)
}

// ParseSkinsConfig 解析并校验皮肤配置
func ParseSkinsConfig(data []byte) (*SkinsConfig, error) {
	var cfg SkinsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse skins YAML: %w", err)
	}
	if cfg.DefaultSkin == "" && len(cfg.Skins) > 0 {
		cfg.DefaultSkin = cfg.Skins[0].Name
	}
	if err := validateSkins(&cfg); err != nil {
		return nil, fmt.Errorf("invalid skins config: %w", err)
	}
	return &cfg, nil
}

func validateSkins(cfg *SkinsConfig) error {
	sheet := cfg.Sheet
	if sheet.Path == "" {
		return fmt.Errorf("sheet.path cannot be empty")
	}
	if sheet.CellWidth <= 0 || sheet.CellHeight <= 0 {
		return fmt.Errorf("sheet cell size must be positive, got %dx%d", sheet.CellWidth, sheet.CellHeight)
	}
	if sheet.Columns <= 0 || sheet.Rows <= 0 {
		return fmt.Errorf("sheet grid must be positive, got %dx%d", sheet.Columns, sheet.Rows)
	}
	if len(cfg.Skins) == 0 {
		return fmt.Errorf("skins cannot be empty")
	}

	seen := make(map[string]bool, len(cfg.Skins))
	for _, skin := range cfg.Skins {
		if skin.Name == "" {
			return fmt.Errorf("skin name cannot be empty")
		}
		if seen[skin.Name] {
			return fmt.Errorf("duplicate skin name %q", skin.Name)
		}
		seen[skin.Name] = true

		clips := map[string]ClipConfig{"idle": skin.Idle, "walk": skin.Walk, "fly": skin.Fly}
		for state, clip := range clips {
			if err := validateClip(sheet, clip); err != nil {
				return fmt.Errorf("skin %s %s: %w", skin.Name, state, err)
			}
		}
	}

	if !seen[cfg.DefaultSkin] {
		return fmt.Errorf("defaultSkin %q is not defined", cfg.DefaultSkin)
	}
	return nil
}

func validateClip(sheet SheetConfig, clip ClipConfig) error {
	if clip.Row < 0 || clip.Row >= sheet.Rows {
		return fmt.Errorf("row %d out of range [0, %d)", clip.Row, sheet.Rows)
	}
	if clip.First < 0 || clip.Last >= sheet.Columns || clip.First > clip.Last {
		return fmt.Errorf("columns [%d, %d] out of range [0, %d)", clip.First, clip.Last, sheet.Columns)
	}
	if clip.FrameSeconds <= 0 {
		return fmt.Errorf("frameSeconds must be positive, got %v", clip.FrameSeconds)
	}
	return nil
}

// Skin 按名字查找皮肤
func (cfg *SkinsConfig) Skin(name string) (SkinConfig, bool) {
	for _, skin := range cfg.Skins {
		if skin.Name == name {
			return skin, true
		}
	}
	return SkinConfig{}, false
}

// SkinOrDefault 按名字查找皮肤，找不到时返回默认皮肤
func (cfg *SkinsConfig) SkinOrDefault(name string) SkinConfig {
	if skin, ok := cfg.Skin(name); ok {
		return skin
	}
	skin, _ := cfg.Skin(cfg.DefaultSkin)
	return skin
}

// NextSkin 返回列表中 name 之后的皮肤（循环），未知名字返回第一个
func (cfg *SkinsConfig) NextSkin(name string) SkinConfig {
	for i, skin := range cfg.Skins {
		if skin.Name == name {
			return cfg.Skins[(i+1)%len(cfg.Skins)]
		}
	}
	return cfg.Skins[0]
}

// Names 返回所有皮肤名
func (cfg *SkinsConfig) Names() []string {
	names := make([]string, len(cfg.Skins))
	for i, skin := range cfg.Skins {
		names[i] = skin.Name
	}
	return names
}
