package entity

import "github.com/younwookim/ninjarun/internal/domain/fixed"

// EnemyType is the species of an enemy
type EnemyType int

const (
	EnemyDino EnemyType = iota
	EnemyTurtle
)

// EnemyTypes lists every type, for uniform random choice.
var EnemyTypes = []EnemyType{EnemyDino, EnemyTurtle}

// DinoOffsetY lifts dino sprites so their feet line up with turtles.
const DinoOffsetY = -4

// String returns the config key of the type
func (t EnemyType) String() string {
	switch t {
	case EnemyDino:
		return "dino"
	case EnemyTurtle:
		return "turtle"
	default:
		return "unknown"
	}
}

// Kind returns the sprite kind for the type.
func (t EnemyType) Kind() Kind {
	if t == EnemyDino {
		return KindDino
	}
	return KindTurtle
}

// Animation returns the walk cycle for the type.
func (t EnemyType) Animation() Animation {
	if t == EnemyDino {
		return AnimDinoWalk
	}
	return AnimTurtleWalk
}

// OffsetY returns the vertical sprite offset for the type.
func (t EnemyType) OffsetY() fixed.Fixed {
	if t == EnemyDino {
		return fixed.FromInt(DinoOffsetY)
	}
	return fixed.Zero
}

// ParseEnemyType converts a config key to an EnemyType.
func ParseEnemyType(s string) (EnemyType, bool) {
	for _, t := range EnemyTypes {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// Enemy represents an enemy entity
type Enemy struct {
	Body

	ID        EntityID
	Type      EnemyType
	HitPoints int
	Visual    Visual
}

// NewEnemy creates an enemy standing at ground y. The type's sprite offset is
// applied to y.
func NewEnemy(id EntityID, t EnemyType, x, y fixed.Fixed, hitPoints int, visual Visual) *Enemy {
	e := &Enemy{
		Body: Body{
			X: x,
			Y: y + t.OffsetY(),
		},
		ID:        id,
		Type:      t,
		HitPoints: hitPoints,
		Visual:    visual,
	}
	if visual != nil {
		visual.SetAnimation(t.Animation())
		e.SyncVisual()
	}
	return e
}

// TakeHit removes one hit point and reports whether the enemy died.
func (e *Enemy) TakeHit() bool {
	if e.HitPoints > 0 {
		e.HitPoints--
	}
	return e.HitPoints <= 0
}

// IsAlive returns true if the enemy has hit points left
func (e *Enemy) IsAlive() bool {
	return e.HitPoints > 0
}

// Circle returns the enemy's collision circle.
func (e *Enemy) Circle() Circle {
	return e.Body.Circle(e.Visual)
}

// CircleAt returns the collision circle the enemy would have at x.
func (e *Enemy) CircleAt(x fixed.Fixed) Circle {
	return CircleOf(x, e.Y, e.Visual)
}

// Face turns the enemy toward targetX.
func (e *Enemy) Face(targetX fixed.Fixed) {
	if targetX == e.X {
		return
	}
	e.SetFacing(targetX > e.X)
}

// SetFacing points the enemy and flips its visual to match.
func (e *Enemy) SetFacing(right bool) {
	e.FacingRight = right
	if e.Visual != nil {
		e.Visual.SetHorizontalFlip(right)
	}
}

// SyncVisual moves the visual to the body position.
func (e *Enemy) SyncVisual() {
	if e.Visual != nil {
		e.Visual.SetPosition(e.X, e.Y)
	}
}
