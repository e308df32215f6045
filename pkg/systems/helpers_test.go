package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/ecs"
	"github.com/decker502/ratpet/pkg/utils"
)

const tick = 1.0 / 60.0

// fakeDesktop 记录窗口移动的假桌面
type fakeDesktop struct {
	pointer        utils.PointerState
	monitorW       int
	monitorH       int
	windowX        int
	windowY        int
	setPositionLog [][2]int
}

func newFakeDesktop() *fakeDesktop {
	return &fakeDesktop{monitorW: 1920, monitorH: 1080}
}

func (d *fakeDesktop) Pointer() utils.PointerState { return d.pointer }
func (d *fakeDesktop) MonitorSize() (int, int)     { return d.monitorW, d.monitorH }
func (d *fakeDesktop) SetWindowPosition(x, y int) {
	d.windowX, d.windowY = x, y
	d.setPositionLog = append(d.setPositionLog, [2]int{x, y})
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// testClips 每个状态一帧不同尺寸的图片，便于区分
func testClips() map[components.MotionState]components.AnimationClip {
	return map[components.MotionState]components.AnimationClip{
		components.MotionIdle: {Frames: []*ebiten.Image{ebiten.NewImage(4, 4), ebiten.NewImage(4, 4)}, FrameSeconds: 0.2},
		components.MotionWalk: {Frames: []*ebiten.Image{ebiten.NewImage(5, 5), ebiten.NewImage(5, 5), ebiten.NewImage(5, 5)}, FrameSeconds: 0.1},
		components.MotionFly:  {Frames: []*ebiten.Image{ebiten.NewImage(6, 6)}, FrameSeconds: 0.06},
	}
}

// newTestPet 创建带全部行为组件的实体
func newTestPet(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	clips := testClips()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, components.NewMotionComponent(8))
	em.AddComponent(id, &components.FacingComponent{})
	em.AddComponent(id, &components.BehaviorComponent{})
	em.AddComponent(id, &components.ClickComponent{})
	em.AddComponent(id, &components.TimerComponent{Name: "wander", TargetTime: 12})
	em.AddComponent(id, &components.SkinComponent{Name: "test", Clips: clips})
	anim := &components.AnimationComponent{}
	sprite := &components.SpriteComponent{}
	PlayClip(anim, sprite, components.MotionIdle, clips[components.MotionIdle])
	em.AddComponent(id, anim)
	em.AddComponent(id, sprite)
	return id
}
