package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/config"
	"github.com/decker502/ratpet/pkg/ecs"
	"github.com/decker502/ratpet/pkg/utils"
)

func newWanderFixture(seed uint64) (*ecs.EntityManager, *WanderSystem, *EventQueue, ecs.EntityID) {
	em := ecs.NewEntityManager()
	events := &EventQueue{}
	sys := NewWanderSystem(em, config.DefaultBehaviorConfig().Wander, rand.New(rand.NewPCG(seed, seed)), events)
	return em, sys, events, newTestPet(em, 100, 100)
}

func TestWanderSystem_IgnoredWhenNotWandering(t *testing.T) {
	em, sys, events, id := newWanderFixture(1)

	sys.Update(tick, Bounds{MaxX: 1000, MaxY: 800})

	pos, _ := ecs.Get[*components.PositionComponent](em, id)
	if pos.X != 100 || pos.Y != 100 || events.Len() != 0 {
		t.Errorf("wander ran while disabled: pos=(%v, %v) events=%d", pos.X, pos.Y, events.Len())
	}
}

func TestWanderSystem_PicksTargetImmediatelyAndMovesAtSpeed(t *testing.T) {
	em, sys, events, id := newWanderFixture(7)
	behavior, _ := ecs.Get[*components.BehaviorComponent](em, id)
	pos, _ := ecs.Get[*components.PositionComponent](em, id)
	behavior.Wandering = true
	bounds := Bounds{MaxX: 1000, MaxY: 800}

	sys.Update(tick, bounds)

	if !behavior.HasWanderTarget {
		t.Fatal("expected a wander target on the first tick")
	}
	if behavior.WanderTargetX < 0 || behavior.WanderTargetX > bounds.MaxX ||
		behavior.WanderTargetY < 0 || behavior.WanderTargetY > bounds.MaxY {
		t.Errorf("target (%v, %v) outside bounds", behavior.WanderTargetX, behavior.WanderTargetY)
	}
	got := events.Drain()
	if len(got) != 1 || got[0].Kind != EventWanderRetarget {
		t.Errorf("events = %v, want [wander_retarget]", kinds(got))
	}

	// 90 px/s，一帧 1.5 px
	moved := (utils.Vec2{X: 100, Y: 100}).Dist(utils.Vec2{X: pos.X, Y: pos.Y})
	if !approx(moved, 1.5) {
		t.Errorf("moved %v px in one tick, want 1.5", moved)
	}
}

func TestWanderSystem_RetargetsEveryInterval(t *testing.T) {
	em, sys, events, id := newWanderFixture(3)
	behavior, _ := ecs.Get[*components.BehaviorComponent](em, id)
	behavior.Wandering = true

	for i := 0; i < 60*25; i++ { // 25 秒
		sys.Update(tick, Bounds{MaxX: 1000, MaxY: 800})
	}

	// 立即一次 + 12 秒 + 24 秒
	if got := len(events.Drain()); got != 3 {
		t.Errorf("retarget count = %d, want 3", got)
	}
}

func TestWanderSystem_SameSeedSameTargets(t *testing.T) {
	targets := func() (float64, float64) {
		em, sys, _, id := newWanderFixture(42)
		behavior, _ := ecs.Get[*components.BehaviorComponent](em, id)
		behavior.Wandering = true
		sys.Update(tick, Bounds{MaxX: 1000, MaxY: 800})
		return behavior.WanderTargetX, behavior.WanderTargetY
	}

	x1, y1 := targets()
	x2, y2 := targets()
	if x1 != x2 || y1 != y2 {
		t.Errorf("seeded targets differ: (%v, %v) vs (%v, %v)", x1, y1, x2, y2)
	}
}

func TestWanderSystem_CarryPausesWander(t *testing.T) {
	em, sys, events, id := newWanderFixture(5)
	behavior, _ := ecs.Get[*components.BehaviorComponent](em, id)
	behavior.Wandering = true
	behavior.Carrying = true

	sys.Update(tick, Bounds{MaxX: 1000, MaxY: 800})

	pos, _ := ecs.Get[*components.PositionComponent](em, id)
	if pos.X != 100 || pos.Y != 100 || events.Len() != 0 {
		t.Errorf("wander moved a carried pet to (%v, %v)", pos.X, pos.Y)
	}
}
