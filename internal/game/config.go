package game

// Arena size in logical pixels. Every front-end scales this to its surface.
const (
	ArenaWidth  = 800
	ArenaHeight = 600
)

// Tick timing. Entity motion is tuned per tick at this rate.
const (
	TickRate = 60
	TickMS   = 1000.0 / TickRate
)

// Enemy spawning
const (
	EnemySpawnChance            = 0.02
	EnemySpawnChanceConstrained = 0.015
	EnemyCap                    = 5
	EnemyCapConstrained         = 3
	EnemySpawnMargin            = 20
	EnemyMinSpeed               = 2
	EnemySpeedRange             = 2
	EnemyMinCooldown            = 1000 // ms
	EnemyCooldownRange          = 2000 // ms
)

// Drone swarms
const (
	SwarmMinLevel          = 3
	SwarmInterval          = 4000 // ms
	SwarmChance            = 0.25
	SwarmMin               = 3
	SwarmMax               = 5
	SwarmMinConstrained    = 2
	SwarmMaxConstrained    = 3
	SwarmMinSpeed          = 2.5
	SwarmSpeedRange        = 1.5
	SwarmMinCooldown       = 1800 // ms
	SwarmCooldownRange     = 1200 // ms
	SwarmStartY            = -60
	SwarmStartJitter       = 40
	BonusEnemyChance       = 0.12
	BonusEnemyMinSpeed     = 3
	BonusEnemySpeedRange   = 2
	BonusRoundLevelDivisor = 3
)

// Scoring and economy
const (
	ScoreKill          = 100
	ScoreBonusKill     = 200
	ScoreBoss          = 1000
	CreditsKill        = 1
	CreditsBoss        = 25
	BossScoreInterval  = 3000
	ExplosionKillSize  = 20
	ExplosionBossSize  = 50
	ExplosionSparkSize = 10
)

// Damage
const (
	ComboDamageFactor = 1.5
	BossHitDamage     = 10
	BossComboDamage   = 15
	StackEffect       = 0.07 // Per attack/defense stack
	MaxStacks         = 10
	DropChance        = 0.1
)

// Combo
const (
	ComboWindow   = 4000 // ms
	ComboKills    = 5
	ComboDuration = 3000 // ms
	ComboBannerMS = 1200
)

// Progression timing, all ms.
const (
	RoundDelay     = 800
	BonusRoundTime = 20000
	BannerTime     = 1200

	MoveToCenterMS = 600
	MoveUpMS       = 1200
	ShowLevelMS    = 1200
	ShowCheckMS    = 1200
	FadeOutMS      = 800
	ShowNextMS     = 1200
	FadeNextMS     = 800
)

// EnemyPalette is the set of level colours. One is rolled per level.
var EnemyPalette = []string{
	"#ff1744", "#ff9100", "#ffd600", "#00e676", "#2979ff",
	"#00bcd4", "#d500f9", "#ff4081", "#8d6e63", "#cfd8dc",
}
