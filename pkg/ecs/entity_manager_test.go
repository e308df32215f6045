package ecs

import (
	"reflect"
	"testing"
)

type testPositionComponent struct {
	X, Y float64
}

type testFacingComponent struct {
	Left bool
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 != 1 || id2 != 2 {
		t.Errorf("IDs should start at 1 and increase, got %d, %d", id1, id2)
	}

	// 新实体没有组件，但 AddComponent 能挂上去
	em.AddComponent(id2, &testFacingComponent{})
	if _, ok := Get[*testFacingComponent](em, id2); !ok {
		t.Error("component on created entity should be found")
	}

	// ID 0 保留，往不存在的实体上加组件是空操作
	em.AddComponent(0, &testFacingComponent{})
	if _, ok := Get[*testFacingComponent](em, 0); ok {
		t.Error("ID 0 is reserved")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("component should be found")
	}
	pos := comp.(*testPositionComponent)
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("got (%f, %f), want (100, 200)", pos.X, pos.Y)
	}
}

func TestGenericGet(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testFacingComponent{Left: true})

	facing, ok := Get[*testFacingComponent](em, id)
	if !ok || !facing.Left {
		t.Fatalf("Get returned (%v, %v)", facing, ok)
	}

	if _, ok := Get[*testPositionComponent](em, id); ok {
		t.Error("missing component should not be found")
	}
	if _, ok := Get[*testFacingComponent](em, 99); ok {
		t.Error("unknown entity should not be found")
	}
}

func TestAddComponentReplacesSameType(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 1})
	em.AddComponent(id, &testPositionComponent{X: 2})

	pos, _ := Get[*testPositionComponent](em, id)
	if pos.X != 2 {
		t.Errorf("X = %f, want 2", pos.X)
	}
}

func TestGetEntitiesWithIsSorted(t *testing.T) {
	em := NewEntityManager()

	var want []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{})
		if i%2 == 0 {
			em.AddComponent(id, &testFacingComponent{})
			want = append(want, id)
		}
	}

	got := em.GetEntitiesWith(TypeOf[*testPositionComponent](), TypeOf[*testFacingComponent]())
	if len(got) != len(want) {
		t.Fatalf("got %d entities, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	all := em.GetEntitiesWith(TypeOf[*testPositionComponent]())
	if len(all) != 20 {
		t.Errorf("expected 20 entities with position, got %d", len(all))
	}
}
