package scenes

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/ratpet/internal/monitor"
	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/config"
	"github.com/decker502/ratpet/pkg/ecs"
	"github.com/decker502/ratpet/pkg/entities"
	"github.com/decker502/ratpet/pkg/game"
	"github.com/decker502/ratpet/pkg/systems"
	"github.com/decker502/ratpet/pkg/utils"
)

// Squeaker 播放吱吱声（game.AudioManager）
type Squeaker interface {
	PlaySqueak() bool
}

// LoadSource 系统负载来源（monitor.Sampler）
type LoadSource interface {
	Busy(thresholdCPU float64) bool
	Stats() monitor.Stats
}

// EventRecorder 活动日志（storage.Recorder）
type EventRecorder interface {
	Record(kind, detail string) error
}

// PetSceneOptions 创建 PetScene 所需的依赖
// Audio、Load、Recorder 可以为 nil
type PetSceneOptions struct {
	Behavior *config.BehaviorConfig
	Skins    *config.SkinsConfig
	Skin     string  // 初始皮肤，空或未知时用默认皮肤
	Scale    float64 // 窗口缩放

	// 初始位置，(0, 0) 表示首帧吸附到鼠标
	StartX, StartY float64

	Desktop  utils.Desktop
	Loader   entities.SkinLoader
	Settings *game.SettingsManager
	Audio    Squeaker
	Load     LoadSource
	Recorder EventRecorder
	Rand     *rand.Rand
}

// PetScene 桌宠唯一的场景
//
// 每帧的系统顺序：
// click → follow/carry → wander → window → motion-state → facing → animation
type PetScene struct {
	entityManager *ecs.EntityManager
	petID         ecs.EntityID

	behavior *config.BehaviorConfig
	skins    *config.SkinsConfig
	desktop  utils.Desktop
	loader   entities.SkinLoader
	settings *game.SettingsManager
	audio    Squeaker
	load     LoadSource
	recorder EventRecorder

	events          *systems.EventQueue
	clickSystem     *systems.ClickSystem
	followSystem    *systems.FollowSystem
	wanderSystem    *systems.WanderSystem
	windowSystem    *systems.WindowSystem
	motionSystem    *systems.MotionStateSystem
	facingSystem    *systems.FacingSystem
	animationSystem *systems.AnimationSystem
	renderSystem    *systems.RenderSystem
}

// NewPetScene 创建场景和桌宠实体
func NewPetScene(opts PetSceneOptions) (*PetScene, error) {
	if opts.Behavior == nil {
		opts.Behavior = config.DefaultBehaviorConfig()
	}
	if opts.Skins == nil || len(opts.Skins.Skins) == 0 {
		return nil, fmt.Errorf("no skins configured")
	}
	if opts.Settings == nil {
		opts.Settings, _ = game.NewSettingsManager(nil)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	s := &PetScene{
		entityManager: ecs.NewEntityManager(),
		behavior:      opts.Behavior,
		skins:         opts.Skins,
		desktop:       opts.Desktop,
		loader:        opts.Loader,
		settings:      opts.Settings,
		audio:         opts.Audio,
		load:          opts.Load,
		recorder:      opts.Recorder,
		events:        &systems.EventQueue{},
	}

	skin := opts.Skins.SkinOrDefault(opts.Skin)
	id, err := entities.NewPetEntity(s.entityManager, opts.Loader, entities.PetOptions{
		Skin:     skin,
		Sheet:    opts.Skins.Sheet,
		Behavior: opts.Behavior,
		X:        opts.StartX,
		Y:        opts.StartY,
		Scale:    opts.Scale,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}
	s.petID = id

	em := s.entityManager
	s.clickSystem = systems.NewClickSystem(em, opts.Behavior.Click, s.events)
	s.followSystem = systems.NewFollowSystem(em, opts.Behavior.Follow, opts.Behavior.Carry)
	s.wanderSystem = systems.NewWanderSystem(em, opts.Behavior.Wander, opts.Rand, s.events)
	s.windowSystem = systems.NewWindowSystem(em, opts.Desktop)
	s.motionSystem = systems.NewMotionStateSystem(em, opts.Behavior.Motion, s.events)
	s.facingSystem = systems.NewFacingSystem(em, opts.Behavior.Motion.FlipThreshold)
	s.animationSystem = systems.NewAnimationSystem(em)
	s.renderSystem = systems.NewRenderSystem(em)
	s.renderSystem.ShowDebug = opts.Settings.GetSettings().ShowDebug

	opts.Settings.SetSkin(skin.Name)
	windowW, windowH := s.WindowSize()
	log.Infof("[PetScene] pet ready: skin=%s window=%.0fx%.0f", skin.Name, windowW, windowH)
	return s, nil
}

// Update 推进一帧；按 Esc 时返回 ebiten.Termination
func (s *PetScene) Update(deltaTime float64) error {
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if err := s.HandleKey(key); err != nil {
			return err
		}
	}

	s.Step(deltaTime, s.desktop.Pointer())
	return nil
}

// Step 用给定的鼠标状态推进一帧（不读键盘）
func (s *PetScene) Step(deltaTime float64, ptr utils.PointerState) {
	windowW, windowH := s.WindowSize()
	monitorW, monitorH := s.desktop.MonitorSize()
	bounds := systems.BoundsFor(monitorW, monitorH, windowW, windowH)

	s.clickSystem.Update(deltaTime, ptr)
	s.followSystem.Update(deltaTime, ptr, windowW, windowH)
	s.wanderSystem.Update(deltaTime, bounds)
	s.windowSystem.Update(bounds)
	s.motionSystem.Update()
	s.facingSystem.Update()

	speedup := 1.0
	if s.load != nil && s.load.Busy(s.behavior.Animation.BusyCPU) {
		speedup = s.behavior.Animation.BusySpeedup
	}
	if speedup != s.animationSystem.Speedup() {
		log.Debugf("[PetScene] animation speedup %.1fx", speedup)
		s.animationSystem.SetSpeedup(speedup)
	}
	s.animationSystem.Update(deltaTime)

	if s.renderSystem.ShowDebug && s.load != nil {
		stats := s.load.Stats()
		s.renderSystem.StatusLine = fmt.Sprintf("c%.0f m%.0f", stats.CPU, stats.Memory)
	}

	for _, ev := range s.events.Drain() {
		s.handleEvent(ev)
	}
}

// HandleKey 处理快捷键：S 换皮肤，D 调试浮层，M 静音，Esc 退出
func (s *PetScene) HandleKey(key ebiten.Key) error {
	switch key {
	case ebiten.KeyEscape:
		log.Infof("[PetScene] escape pressed, quitting")
		return ebiten.Termination
	case ebiten.KeyS:
		s.NextSkin()
	case ebiten.KeyD:
		s.renderSystem.ShowDebug = !s.renderSystem.ShowDebug
		s.settings.SetShowDebug(s.renderSystem.ShowDebug)
	case ebiten.KeyM:
		muted := s.settings.ToggleMuted()
		log.Infof("[PetScene] muted=%v", muted)
	}
	return nil
}

func (s *PetScene) handleEvent(ev systems.PetEvent) {
	switch ev.Kind {
	case systems.EventSkinNext:
		s.NextSkin()
		return
	case systems.EventDoubleClick:
		s.squeak()
		s.record(ev.Kind.String(), "")
	case systems.EventSingleClick:
		s.record(ev.Kind.String(), ev.Override.String())
	case systems.EventWanderStart, systems.EventWanderStop:
		log.Infof("[PetScene] %s", ev.Kind)
		s.record(ev.Kind.String(), "")
	}
}

// NextSkin 切换到下一个皮肤
// 加载失败时保留当前皮肤
func (s *PetScene) NextSkin() {
	current := s.SkinName()
	next := s.skins.NextSkin(current)
	if next.Name == current {
		return
	}

	clips, err := s.loader.LoadSkin(s.skins.Sheet, next)
	if err != nil {
		log.Warnf("[PetScene] failed to load skin %s: %v", next.Name, err)
		return
	}
	systems.ApplySkin(s.entityManager, s.petID, next.Name, clips)
	s.settings.SetSkin(next.Name)
	s.squeak()
	s.record(systems.EventSkinNext.String(), next.Name)
	log.Infof("[PetScene] skin %s -> %s", current, next.Name)
}

func (s *PetScene) squeak() {
	if s.audio != nil {
		s.audio.PlaySqueak()
	}
}

func (s *PetScene) record(kind, detail string) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(kind, detail); err != nil {
		log.Debugf("[PetScene] record %s: %v", kind, err)
	}
}

// Draw 绘制桌宠
func (s *PetScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// SaveOnExit 保存皮肤和窗口位置
func (s *PetScene) SaveOnExit() bool {
	if pos, ok := ecs.Get[*components.PositionComponent](s.entityManager, s.petID); ok && (pos.Placed || !pos.IsOrigin()) {
		s.settings.SetLastPosition(int(math.Round(pos.X)), int(math.Round(pos.Y)))
	}
	s.settings.SetSkin(s.SkinName())
	if err := s.settings.Save(); err != nil {
		log.Warnf("[PetScene] failed to save settings: %v", err)
		return false
	}
	return true
}

// SkinName 当前皮肤名
func (s *PetScene) SkinName() string {
	if skin, ok := ecs.Get[*components.SkinComponent](s.entityManager, s.petID); ok {
		return skin.Name
	}
	return ""
}

// Distance 本次运行累计移动距离（像素）
func (s *PetScene) Distance() float64 {
	if motion, ok := ecs.Get[*components.MotionComponent](s.entityManager, s.petID); ok {
		return motion.Distance
	}
	return 0
}

// WindowSize 窗口像素尺寸 = 格子尺寸 × 桌宠的缩放
func (s *PetScene) WindowSize() (float64, float64) {
	scale := 1.0
	if c, ok := ecs.Get[*components.ScaleComponent](s.entityManager, s.petID); ok {
		scale = c.Scale
	}
	return float64(s.skins.Sheet.CellWidth) * scale, float64(s.skins.Sheet.CellHeight) * scale
}
