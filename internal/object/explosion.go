package object

// ExplosionVariant selects how an explosion is drawn.
type ExplosionVariant int

const (
	ExplosionBurst        ExplosionVariant = iota // Regular kill
	ExplosionLightning                            // Beam kill
	ExplosionDisintegrate                         // Overcharge / wavefront kill
	ExplosionSpark                                // Deflected shot
)

// ExplosionLife is how many ticks an explosion is visible.
const ExplosionLife = 30

// Explosion is a short-lived visual effect. It never affects gameplay.
type Explosion struct {
	X, Y    float64
	Size    float64
	Life    int
	MaxLife int
	Variant ExplosionVariant
}

// NewExplosion creates an explosion of the given size centered on (x, y).
func NewExplosion(x, y, size float64, variant ExplosionVariant) *Explosion {
	return &Explosion{
		X:       x,
		Y:       y,
		Size:    size,
		Life:    ExplosionLife,
		MaxLife: ExplosionLife,
		Variant: variant,
	}
}

// Step ages the explosion one tick. Returns true once it has faded out.
func (e *Explosion) Step() bool {
	e.Life--
	return e.Life <= 0
}

// Progress returns 0 at spawn rising to 1 at the end of life.
func (e *Explosion) Progress() float64 {
	if e.MaxLife <= 0 {
		return 1
	}
	return 1 - float64(e.Life)/float64(e.MaxLife)
}
