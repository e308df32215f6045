package config

// 应用级常量
const (
	// AppName 用于窗口标题、gdata 存储目录和 X11 类名
	AppName = "ratpet"

	// DefaultBehaviorPath 内置行为参数文件（嵌入在 data/ 下）
	DefaultBehaviorPath = "data/pet_behavior.yaml"

	// DefaultSkinsPath 内置皮肤/精灵图布局文件
	DefaultSkinsPath = "data/skins.yaml"

	// TicksPerSecond 固定逻辑帧率，所有"每帧"参数都以此为基准
	TicksPerSecond = 60

	// FixedDeltaTime 每帧的固定时长（秒）
	FixedDeltaTime = 1.0 / TicksPerSecond
)
