// Package ability implements the special-ability state machine and the
// per-kind tuning tables. Effects themselves are applied by the game package.
package ability

// Kind is the closed set of special abilities.
type Kind int

const (
	Beam          Kind = iota // Vertical laser column above the ship
	ConeBurst                 // Periodic five-way spread shot
	Nova                      // Radial shockwave: push back, stun, clear
	MissileStrike             // One homing missile per target, staggered
	Overcharge                // Charge, then wipe the screen on release
	Aegis                     // Slowing, deflecting shield
	Wavefront                 // Upward-sweeping damage front
	DroneSquad                // Two autonomous support drones
)

// String returns the ability name.
func (k Kind) String() string {
	return GetConfig(k).Name
}

// Config holds the timing shared by every ability kind.
type Config struct {
	Kind     Kind
	Name     string
	Cooldown float64 // ms
	Duration float64 // ms
	Instant  bool    // Drops the Active state right after dispatch
}

// GetConfig returns the timing for an ability kind.
func GetConfig(kind Kind) Config {
	switch kind {
	case Beam:
		return Config{Kind: Beam, Name: "Beam", Cooldown: 20000, Duration: 5000}
	case ConeBurst:
		return Config{Kind: ConeBurst, Name: "Cone Burst", Cooldown: 20000, Duration: 7000}
	case Nova:
		return Config{Kind: Nova, Name: "Nova", Cooldown: 30000, Duration: 1000}
	case MissileStrike:
		return Config{Kind: MissileStrike, Name: "Missile Strike", Cooldown: 25000, Duration: 3000, Instant: true}
	case Overcharge:
		return Config{Kind: Overcharge, Name: "Overcharge", Cooldown: 40000, Duration: 2500}
	case Aegis:
		return Config{Kind: Aegis, Name: "Aegis", Cooldown: 25000, Duration: 6000}
	case Wavefront:
		return Config{Kind: Wavefront, Name: "Wavefront", Cooldown: 30000, Duration: 2000}
	case DroneSquad:
		return Config{Kind: DroneSquad, Name: "Drone Squad", Cooldown: 35000, Duration: 10000}
	default:
		return GetConfig(Beam)
	}
}

// BeamConfig tunes the beam column.
type BeamConfig struct {
	HalfWidth    float64 // Enemies with |dx| below this are vaporized
	BossPad      float64 // Added to the boss half-width for the boss band
	BossDamage   int
	BossInterval float64 // ms between boss ticks
	KillScore    int
}

// ConeConfig tunes the cone burst.
type ConeConfig struct {
	Interval  float64   // ms between volleys
	Angles    []float64 // Degrees from straight up
	SpeedX    float64
	SpeedY    float64
	Damage    float64
	LifeTicks int
}

// NovaConfig tunes the shockwave.
type NovaConfig struct {
	PushBack    float64
	StunMS      float64
	ClearRadius float64
	BlastSize   float64
}

// MissileConfig tunes the missile strike.
type MissileConfig struct {
	StaggerMS float64
}

// OverchargeConfig tunes the charge release.
type OverchargeConfig struct {
	BaseFraction  float64 // Boss max-health share at level 1
	LevelFraction float64 // Added per level above 1
	MaxFraction   float64
}

// AegisConfig tunes the shield.
type AegisConfig struct {
	Radius     float64
	SlowFactor float64 // Vertical speed multiplier for hostile shots in range
}

// WavefrontConfig tunes the sweep.
type WavefrontConfig struct {
	SafeOffset   float64 // Player teleport distance from the bottom edge
	BossFraction float64 // Boss max-health share taken once per activation
	Thickness    float64 // Band drawn behind the front
}

// SquadConfig tunes the support drones.
type SquadConfig struct {
	Count int
}

// Per-kind effect tuning.
var (
	BeamSettings = BeamConfig{
		HalfWidth:    35,
		BossPad:      15,
		BossDamage:   15,
		BossInterval: 500,
		KillScore:    150,
	}
	ConeSettings = ConeConfig{
		Interval:  80,
		Angles:    []float64{-40, -20, 0, 20, 40},
		SpeedX:    4,
		SpeedY:    6,
		Damage:    10,
		LifeTicks: 90,
	}
	NovaSettings = NovaConfig{
		PushBack:    100,
		StunMS:      2000,
		ClearRadius: 120,
		BlastSize:   60,
	}
	MissileSettings = MissileConfig{
		StaggerMS: 120,
	}
	OverchargeSettings = OverchargeConfig{
		BaseFraction:  0.15,
		LevelFraction: 0.01,
		MaxFraction:   0.35,
	}
	AegisSettings = AegisConfig{
		Radius:     150,
		SlowFactor: 0.4,
	}
	WavefrontSettings = WavefrontConfig{
		SafeOffset:   80,
		BossFraction: 0.2,
		Thickness:    24,
	}
	SquadSettings = SquadConfig{
		Count: 2,
	}
)

// OverchargeBossFraction returns the boss max-health share dealt on release.
func OverchargeBossFraction(level int) float64 {
	f := OverchargeSettings.BaseFraction + OverchargeSettings.LevelFraction*float64(level-1)
	if f > OverchargeSettings.MaxFraction {
		return OverchargeSettings.MaxFraction
	}
	return f
}
