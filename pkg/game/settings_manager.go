package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PetSettings 桌宠的用户设置，跨会话保留
type PetSettings struct {
	Skin  string  `yaml:"skin"`  // 皮肤名，空表示使用配置里的默认皮肤
	Scale float64 `yaml:"scale"` // 窗口缩放倍数，0 表示使用默认值

	// 声音
	Muted  bool    `yaml:"muted"`
	Volume float64 `yaml:"volume"` // 0.0 ~ 1.0

	// 窗口
	MousePassthrough bool `yaml:"mousePassthrough"` // 鼠标穿透（此时无法点击桌宠）
	ShowDebug        bool `yaml:"showDebug"`

	// 上次退出时的窗口位置
	LastX           int  `yaml:"lastX"`
	LastY           int  `yaml:"lastY"`
	HasLastPosition bool `yaml:"hasLastPosition"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *PetSettings {
	return &PetSettings{
		Volume: 0.6,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *PetSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "pet"
)

// NewSettingsManager 创建新的设置管理器实例
//
// gdataManager 可为 nil（降级模式，仅内存设置）。
// 加载失败不是致命错误，使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Warnf("[SettingsManager] Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或文件不存在时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.Volume = clampVolume(loaded.Volume)

	sm.settings = loaded
	log.Debugf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
// gdataManager 为 nil 时直接返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Debugf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *PetSettings {
	return sm.settings
}

// 以下 Set 方法仅修改内存中的设置，需调用 Save() 持久化

// SetSkin 设置皮肤
func (sm *SettingsManager) SetSkin(name string) {
	sm.settings.Skin = name
}

// SetScale 设置窗口缩放
func (sm *SettingsManager) SetScale(scale float64) {
	sm.settings.Scale = scale
}

// SetMuted 设置静音
func (sm *SettingsManager) SetMuted(muted bool) {
	sm.settings.Muted = muted
}

// ToggleMuted 切换静音，返回切换后的值
func (sm *SettingsManager) ToggleMuted() bool {
	sm.settings.Muted = !sm.settings.Muted
	return sm.settings.Muted
}

// SetVolume 设置音量，限制在 0.0 ~ 1.0
func (sm *SettingsManager) SetVolume(volume float64) {
	sm.settings.Volume = clampVolume(volume)
}

// SetMousePassthrough 设置鼠标穿透
func (sm *SettingsManager) SetMousePassthrough(enabled bool) {
	sm.settings.MousePassthrough = enabled
}

// SetShowDebug 设置调试浮层
func (sm *SettingsManager) SetShowDebug(show bool) {
	sm.settings.ShowDebug = show
}

// SetLastPosition 记录窗口位置
func (sm *SettingsManager) SetLastPosition(x, y int) {
	sm.settings.LastX = x
	sm.settings.LastY = y
	sm.settings.HasLastPosition = true
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
