package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/decker502/ratpet/pkg/embedded"
)

// BehaviorConfig 桌宠行为参数
// 时间单位统一为秒，位移单位为像素
type BehaviorConfig struct {
	Follow    FollowConfig    `yaml:"follow"`
	Carry     CarryConfig     `yaml:"carry"`
	Wander    WanderConfig    `yaml:"wander"`
	Motion    MotionConfig    `yaml:"motion"`
	Click     ClickConfig     `yaml:"click"`
	Animation AnimationConfig `yaml:"animation"`
	Window    WindowConfig    `yaml:"window"`
	Monitor   MonitorConfig   `yaml:"monitor"`
}

// FollowConfig 跟随鼠标（未按键时）
type FollowConfig struct {
	Smoothing    float64 `yaml:"smoothing"`    // 每帧向目标靠近的比例
	Delay        float64 `yaml:"delay"`        // 鼠标离开后多久才开始追（秒）
	ArriveRadius float64 `yaml:"arriveRadius"` // 小于该距离视为到达
}

// CarryConfig 按住左键拖着走
type CarryConfig struct {
	EaseInRate float64 `yaml:"easeInRate"` // 缓入系数 t 每秒增长量，t 上限为 1
}

// WanderConfig 闲逛模式
type WanderConfig struct {
	Interval float64 `yaml:"interval"` // 重新挑选目标点的间隔（秒）
	Speed    float64 `yaml:"speed"`    // 移动速度（像素/秒）
}

// MotionConfig 动画状态与朝向判定
type MotionConfig struct {
	IdleSpeed     float64 `yaml:"idleSpeed"`     // 平均位移低于此值（像素/帧）为 idle
	FlySpeed      float64 `yaml:"flySpeed"`      // 平均位移不低于此值（像素/帧）为 fly
	SpeedWindow   int     `yaml:"speedWindow"`   // 平均位移的采样帧数
	FlipThreshold float64 `yaml:"flipThreshold"` // 水平位移超过此值才翻转朝向
}

// ClickConfig 点击识别
type ClickConfig struct {
	MaxPress          float64 `yaml:"maxPress"`          // 按下时长短于此值才算一次点击（秒）
	DoubleClickWindow float64 `yaml:"doubleClickWindow"` // 两次点击间隔小于此值算双击（秒）
}

// AnimationConfig 动画播放
type AnimationConfig struct {
	BusyCPU     float64 `yaml:"busyCPU"`     // CPU 占用超过该百分比时加速动画
	BusySpeedup float64 `yaml:"busySpeedup"` // 加速倍数
}

// WindowConfig 窗口
type WindowConfig struct {
	DefaultScale float64 `yaml:"defaultScale"`
	MaxScale     float64 `yaml:"maxScale"`
}

// MonitorConfig 系统负载采样
type MonitorConfig struct {
	Interval float64 `yaml:"interval"` // 采样间隔（秒），0 表示关闭
}

// DefaultBehaviorConfig 返回默认参数
func DefaultBehaviorConfig() *BehaviorConfig {
	return &BehaviorConfig{
		Follow: FollowConfig{
			Smoothing:    0.02,
			Delay:        0.5,
			ArriveRadius: 4,
		},
		Carry: CarryConfig{
			EaseInRate: 1.2,
		},
		Wander: WanderConfig{
			Interval: 12,
			Speed:    90,
		},
		Motion: MotionConfig{
			IdleSpeed:     0.5,
			FlySpeed:      20.0,
			SpeedWindow:   8,
			FlipThreshold: 1.2,
		},
		Click: ClickConfig{
			MaxPress:          0.25,
			DoubleClickWindow: 0.5,
		},
		Animation: AnimationConfig{
			BusyCPU:     80,
			BusySpeedup: 2,
		},
		Window: WindowConfig{
			DefaultScale: 2,
			MaxScale:     8,
		},
		Monitor: MonitorConfig{
			Interval: 2,
		},
	}
}

// LoadBehaviorConfig 从 YAML 加载行为参数
// 文件中缺省的字段保留默认值；路径可以是嵌入的 data/ 路径或磁盘路径
func LoadBehaviorConfig(path string) (*BehaviorConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read behavior config %s: %w", path, err)
	}
	return ParseBehaviorConfig(data)
}

// ParseBehaviorConfig 解析并校验行为参数
func ParseBehaviorConfig(data []byte) (*BehaviorConfig, error) {
	cfg := DefaultBehaviorConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse behavior config YAML: %w", err)
	}
	if err := validateBehaviorConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid behavior config: %w", err)
	}
	return cfg, nil
}

func validateBehaviorConfig(cfg *BehaviorConfig) error {
	if cfg.Follow.Smoothing <= 0 || cfg.Follow.Smoothing > 1 {
		return fmt.Errorf("follow.smoothing must be in (0, 1], got %v", cfg.Follow.Smoothing)
	}
	if cfg.Follow.Delay < 0 {
		return fmt.Errorf("follow.delay must not be negative, got %v", cfg.Follow.Delay)
	}
	if cfg.Follow.ArriveRadius < 0 {
		return fmt.Errorf("follow.arriveRadius must not be negative, got %v", cfg.Follow.ArriveRadius)
	}
	if cfg.Carry.EaseInRate <= 0 {
		return fmt.Errorf("carry.easeInRate must be positive, got %v", cfg.Carry.EaseInRate)
	}
	if cfg.Wander.Interval <= 0 {
		return fmt.Errorf("wander.interval must be positive, got %v", cfg.Wander.Interval)
	}
	if cfg.Wander.Speed <= 0 {
		return fmt.Errorf("wander.speed must be positive, got %v", cfg.Wander.Speed)
	}
	if cfg.Motion.IdleSpeed < 0 || cfg.Motion.FlySpeed <= cfg.Motion.IdleSpeed {
		return fmt.Errorf("motion speeds must satisfy 0 <= idleSpeed < flySpeed, got %v / %v",
			cfg.Motion.IdleSpeed, cfg.Motion.FlySpeed)
	}
	if cfg.Motion.SpeedWindow < 1 {
		return fmt.Errorf("motion.speedWindow must be at least 1, got %d", cfg.Motion.SpeedWindow)
	}
	if cfg.Motion.FlipThreshold < 0 {
		return fmt.Errorf("motion.flipThreshold must not be negative, got %v", cfg.Motion.FlipThreshold)
	}
	if cfg.Click.MaxPress <= 0 || cfg.Click.DoubleClickWindow <= 0 {
		return fmt.Errorf("click timings must be positive, got maxPress=%v doubleClickWindow=%v",
			cfg.Click.MaxPress, cfg.Click.DoubleClickWindow)
	}
	if cfg.Animation.BusySpeedup < 1 {
		return fmt.Errorf("animation.busySpeedup must be >= 1, got %v", cfg.Animation.BusySpeedup)
	}
	if cfg.Window.DefaultScale <= 0 || cfg.Window.MaxScale < cfg.Window.DefaultScale {
		return fmt.Errorf("window scale must satisfy 0 < defaultScale <= maxScale, got %v / %v",
			cfg.Window.DefaultScale, cfg.Window.MaxScale)
	}
	if cfg.Monitor.Interval < 0 {
		return fmt.Errorf("monitor.interval must not be negative, got %v", cfg.Monitor.Interval)
	}
	return nil
}

// ClampScale 把缩放倍数限制在 (0, MaxScale]，非法值回落到默认值
func (cfg *BehaviorConfig) ClampScale(scale float64) float64 {
	if scale <= 0 {
		return cfg.Window.DefaultScale
	}
	if scale > cfg.Window.MaxScale {
		return cfg.Window.MaxScale
	}
	return scale
}
