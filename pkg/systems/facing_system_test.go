package systems

import (
	"testing"

	"github.com/decker502/ratpet/pkg/components"
	"github.com/decker502/ratpet/pkg/ecs"
)

func TestFacingSystem(t *testing.T) {
	tests := []struct {
		name      string
		startLeft bool
		dx        float64
		wantLeft  bool
	}{
		{"moving right", true, 3, false},
		{"moving left", false, -3, true},
		{"small right keeps left", true, 1.2, true},
		{"small left keeps right", false, -1.2, false},
		{"still", true, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			sys := NewFacingSystem(em, 1.2)
			id := newTestPet(em, 100, 100)
			motion, _ := ecs.Get[*components.MotionComponent](em, id)
			facing, _ := ecs.Get[*components.FacingComponent](em, id)
			facing.Left = tt.startLeft

			motion.Record(100, 100)
			motion.Record(100+tt.dx, 100)
			sys.Update()

			if facing.Left != tt.wantLeft {
				t.Errorf("Left = %v, want %v", facing.Left, tt.wantLeft)
			}
		})
	}
}
