package components

// FacingComponent 精灵朝向，精灵图默认朝右
type FacingComponent struct {
	Left bool
}
