// Package app 把桌宠的各个部件组装成 ebiten.Game
//
// 调用 NewApp() 之前，必须先调用 embedded.Init() 初始化嵌入资源。
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/ratpet/internal/monitor"
	"github.com/decker502/ratpet/internal/storage"
	"github.com/decker502/ratpet/pkg/config"
	"github.com/decker502/ratpet/pkg/game"
	"github.com/decker502/ratpet/pkg/scenes"
	"github.com/decker502/ratpet/pkg/utils"
)

// Config 定义应用启动配置
// 零值字段表示沿用已保存的设置或默认值
type Config struct {
	// Skin 初始皮肤
	Skin string
	// Scale 窗口缩放倍数
	Scale float64
	// Seed 闲逛随机数种子，HasSeed 为 false 时随机
	Seed    uint64
	HasSeed bool
	// Passthrough 鼠标穿透
	Passthrough bool
	// Mute/Volume 仅在对应的 Has 为 true 时覆盖设置
	Mute      bool
	HasMute   bool
	Volume    float64
	HasVolume bool

	BehaviorPath string
	SkinsPath    string
	// DBPath 活动日志路径，空表示不记录
	DBPath string
}

// App 实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	scene        *scenes.PetScene
	settings     *game.SettingsManager
	sampler      *monitor.Sampler
	journal      *storage.Journal
	recorder     *storage.Recorder

	cellW, cellH int
	scale        float64
	passthrough  bool
	closed       bool
}

// ConfigureLogging 设置日志级别，verbose 时输出调试日志
func ConfigureLogging(verbose bool) {
	log.SetReportTimestamp(true)
	log.SetTimeFormat(time.TimeOnly)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// NewApp 加载配置并创建桌宠
func NewApp(cfg Config) (*App, error) {
	if cfg.BehaviorPath == "" {
		cfg.BehaviorPath = config.DefaultBehaviorPath
	}
	if cfg.SkinsPath == "" {
		cfg.SkinsPath = config.DefaultSkinsPath
	}

	behavior, err := config.LoadBehaviorConfig(cfg.BehaviorPath)
	if err != nil {
		return nil, fmt.Errorf("行为配置加载失败: %w", err)
	}
	skins, err := config.LoadSkinsConfig(cfg.SkinsPath)
	if err != nil {
		return nil, fmt.Errorf("皮肤配置加载失败: %w", err)
	}

	settings := openSettings()
	applyOverrides(settings, cfg)
	current := settings.GetSettings()
	scale := behavior.ClampScale(current.Scale)
	settings.SetScale(scale)

	a := &App{
		sceneManager: game.NewSceneManager(),
		settings:     settings,
		cellW:        skins.Sheet.CellWidth,
		cellH:        skins.Sheet.CellHeight,
		scale:        scale,
		passthrough:  current.MousePassthrough,
	}

	audioManager := game.NewAudioManager(audio.NewContext(game.SampleRate), settings)
	resourceManager := game.NewResourceManager()

	opts := scenes.PetSceneOptions{
		Behavior: behavior,
		Skins:    skins,
		Skin:     current.Skin,
		Scale:    scale,
		Desktop:  utils.NewEbitenDesktop(scale),
		Loader:   resourceManager,
		Settings: settings,
		Audio:    audioManager,
	}
	if current.HasLastPosition {
		opts.StartX, opts.StartY = float64(current.LastX), float64(current.LastY)
	}
	if cfg.HasSeed {
		opts.Rand = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
		log.Infof("[App] wander seed %d", cfg.Seed)
	}

	if behavior.Monitor.Interval > 0 {
		a.sampler = monitor.NewSampler(time.Duration(behavior.Monitor.Interval * float64(time.Second)))
		a.sampler.Start(context.Background())
		opts.Load = a.sampler
	}

	// 接口字段不能接收 nil 指针
	if a.openJournal(cfg.DBPath, skins.SkinOrDefault(current.Skin).Name) {
		opts.Recorder = a.recorder
	}

	scene, err := scenes.NewPetScene(opts)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.scene = scene
	a.sceneManager.SwitchTo(scene)

	log.Infof("[App] ratpet started (skin=%s, scale=%.1f, passthrough=%v)", scene.SkinName(), scale, a.passthrough)
	return a, nil
}

// openSettings 打开 gdata 存储，失败时降级为仅内存设置
func openSettings() *game.SettingsManager {
	gdataManager, err := gdata.Open(gdata.Config{AppName: config.AppName})
	if err != nil {
		log.Warnf("[App] settings storage unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settings, _ := game.NewSettingsManager(gdataManager)
	return settings
}

// applyOverrides 命令行参数覆盖已保存的设置
func applyOverrides(settings *game.SettingsManager, cfg Config) {
	if cfg.Skin != "" {
		settings.SetSkin(cfg.Skin)
	}
	if cfg.Scale > 0 {
		settings.SetScale(cfg.Scale)
	}
	if cfg.Passthrough {
		settings.SetMousePassthrough(true)
	}
	if cfg.HasMute {
		settings.SetMuted(cfg.Mute)
	}
	if cfg.HasVolume {
		settings.SetVolume(cfg.Volume)
	}
}

// openJournal 打开活动日志并开始新会话，失败时不记录
func (a *App) openJournal(dbPath, skin string) bool {
	if dbPath == "" {
		return false
	}
	journal, err := storage.Open(dbPath)
	if err != nil {
		log.Warnf("[App] journal disabled: %v", err)
		return false
	}
	sessionID, err := journal.StartSession(skin)
	if err != nil {
		log.Warnf("[App] journal disabled: %v", err)
		journal.Close()
		return false
	}
	a.journal = journal
	a.recorder = storage.NewRecorder(journal, sessionID, 64)
	log.Debugf("[App] journal session %d at %s", sessionID, dbPath)
	return true
}

// ConfigureWindow 设置窗口属性，必须在 RunGame 之前调用
func (a *App) ConfigureWindow() {
	w, h := a.WindowSize()
	ebiten.SetWindowTitle(config.AppName)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowMousePassthrough(a.passthrough)
	ebiten.SetTPS(config.TicksPerSecond)

	if s := a.settings.GetSettings(); s.HasLastPosition {
		ebiten.SetWindowPosition(s.LastX, s.LastY)
	}
}

// RunGameOptions 透明、不在任务栏显示、启动时不抢焦点
func (a *App) RunGameOptions() *ebiten.RunGameOptions {
	return &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
		X11ClassName:      config.AppName,
		X11InstanceName:   config.AppName,
	}
}

// Update 每个 tick 调用一次（每秒 60 次）
// 场景返回 ebiten.Termination 时退出
func (a *App) Update() error {
	return a.sceneManager.Update(config.FixedDeltaTime)
}

// Draw 绘制桌宠
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 像素画放大用最近邻采样，背景保持透明
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Clear()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑画布就是一个精灵格子
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cellW, a.cellH
}

// WindowSize 窗口像素尺寸 = 格子尺寸 × 缩放
func (a *App) WindowSize() (int, int) {
	return int(float64(a.cellW) * a.scale), int(float64(a.cellH) * a.scale)
}

// Close 保存设置、结束日志会话、停止采样
// 可以多次调用
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true

	if !a.sceneManager.SaveCurrentScene() {
		log.Warnf("[App] failed to save pet state")
	}

	if a.recorder != nil {
		a.recorder.Close()
		if dropped := a.recorder.Dropped(); dropped > 0 {
			log.Warnf("[App] journal dropped %d events", dropped)
		}
	}
	if a.journal != nil {
		distance := 0.0
		if a.scene != nil {
			distance = a.scene.Distance()
		}
		if a.recorder != nil {
			if err := a.journal.EndSession(a.recorder.SessionID(), distance); err != nil {
				log.Warnf("[App] %v", err)
			}
		}
		a.journal.Close()
	}
	if a.sampler != nil {
		a.sampler.Stop()
	}
	log.Infof("[App] bye")
}
