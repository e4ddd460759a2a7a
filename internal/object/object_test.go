package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testArena = Arena{Width: 800, Height: 600}

func TestPlayerClampsAndHealth(t *testing.T) {
	p := NewPlayer(testArena, "vanguard", PlayerWidth, PlayerHeight, PlayerSpeed)
	assert.Equal(t, 400.0, p.X)
	assert.Equal(t, 520.0, p.Y)

	p.MoveTo(-100, 9000, testArena)
	assert.Equal(t, 20.0, p.X)
	assert.Equal(t, 570.0, p.Y)

	assert.False(t, p.TakeDamage(40))
	assert.True(t, p.TakeDamage(500))
	assert.Equal(t, 0, p.Health)
}

func TestPlayerShotCooldown(t *testing.T) {
	p := NewPlayer(testArena, "vanguard", PlayerWidth, PlayerHeight, PlayerSpeed)
	assert.Nil(t, p.TryShoot(500), "not shooting")

	p.Shooting = true
	require.NotNil(t, p.TryShoot(500))
	assert.Nil(t, p.TryShoot(650))
	assert.Nil(t, p.TryShoot(700))
	assert.NotNil(t, p.TryShoot(701))
}

func TestBasicEnemyFallsAndShoots(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := NewEnemy(100, 3, 1000, "#ff0000")

	shot, remove := e.Step(500, 1, testArena, rng)
	assert.Nil(t, shot)
	assert.False(t, remove)
	assert.Equal(t, -37.0, e.Y)

	shot, _ = e.Step(1001, 2, testArena, rng)
	require.NotNil(t, shot)
	assert.Equal(t, 15.0, shot.Damage)
	assert.Equal(t, EnemyBulletSpeed, shot.VY)

	e.Y = testArena.Height + EnemyCullMargin
	_, remove = e.Step(1100, 1, testArena, rng)
	assert.True(t, remove)
}

func TestBonusEnemyNeverShoots(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := NewBonusEnemy(100, 4, "#00ff00")
	for now := 0.0; now < 1e7; now += 1e5 {
		shot, _ := e.Step(now, 5, testArena, rng)
		assert.Nil(t, shot)
		e.Y = 0
	}
}

func TestDroneSpirals(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := NewDrone(200, 0, 3, 2000, 0)
	d.Step(0, 3, testArena, rng)

	assert.InDelta(t, 200+math.Sin(0.04)*3, d.X, 1e-9)
	assert.InDelta(t, 3+math.Cos(0.04)*1.2, d.Y, 1e-9)
}

func TestBossHealthScales(t *testing.T) {
	assert.Equal(t, 400, BossHealthForLevel(1))
	assert.Equal(t, 480, BossHealthForLevel(2))
	assert.Equal(t, 576, BossHealthForLevel(3))
	assert.Equal(t, 400, BossHealthForLevel(0))
}

func TestBossEntryAndFan(t *testing.T) {
	b := NewBoss(testArena, 1)
	bullets, missiles := b.Step(1001, testArena, 400, 500)
	assert.Len(t, bullets, 3)
	assert.Len(t, missiles, 0)
	assert.Equal(t, -99.0, b.Y)

	b.Phase = 2
	bullets, missiles = b.Step(2002, testArena, 400, 500)
	assert.Len(t, bullets, 7)
	assert.Empty(t, missiles)

	_, missiles = b.Step(4001, testArena, 400, 500)
	assert.Len(t, missiles, 3)
}

func TestBossPhaseCycles(t *testing.T) {
	b := NewBoss(testArena, 1)
	for i := 0; i <= BossPhaseTicks; i++ {
		b.Step(0, testArena, 0, 0)
	}
	assert.Equal(t, 1, b.Phase)
	assert.Equal(t, 0, b.PhaseTimer)
}

func TestBossStunFreezes(t *testing.T) {
	b := NewBoss(testArena, 1)
	b.StunnedUntil = 3000
	y := b.Y
	bullets, missiles := b.Step(2000, testArena, 0, 0)
	assert.Nil(t, bullets)
	assert.Nil(t, missiles)
	assert.Equal(t, y, b.Y)

	b.Step(3000, testArena, 0, 0)
	assert.Greater(t, b.Y, y)
}

func TestBossPatrolBounces(t *testing.T) {
	b := NewBoss(testArena, 1)
	b.Y = BossPatrolY
	b.X = testArena.Width - b.W/2 - BossEdgeMargin
	b.Step(0, testArena, 0, 0)
	assert.Equal(t, -1.0, b.MoveDir)
}

func TestMissileRetargets(t *testing.T) {
	first := NewEnemy(100, 0, 1000, "")
	first.Y = 100
	second := NewEnemy(500, 0, 1000, "")
	second.Y = 100

	m := NewMissile(300, 500, first)
	first.Kill()

	removed := m.Step(testArena, func(x, y float64) Target { return second })
	assert.False(t, removed)
	assert.Same(t, second, m.Target)

	second.Kill()
	removed = m.Step(testArena, func(x, y float64) Target { return nil })
	assert.True(t, removed)
}

func TestMissileExpires(t *testing.T) {
	e := NewEnemy(400, 0, 1000, "")
	e.Y = -5000
	m := NewMissile(400, 300, e)
	m.Life = 2
	assert.False(t, m.Step(testArena, nil))
	assert.True(t, m.Step(testArena, nil))
}

func TestSupportDroneFiresOnTimer(t *testing.T) {
	e := NewEnemy(400, 0, 1000, "")
	e.Y = 100
	d := NewSupportDrone(400, 500, -1, 600)
	assert.Equal(t, 340.0, d.X)

	var shots int
	for i := 0; i < SupportDroneFireTicks*3; i++ {
		shot, expired := d.Step(400, 500, e)
		assert.False(t, expired)
		if shot != nil {
			shots++
			assert.Equal(t, SpecialDrone, shot.Special)
			assert.InDelta(t, SupportDroneShotSpeed, math.Hypot(shot.VX, shot.VY), 1e-9)
		}
	}
	assert.Equal(t, 3, shots)
}

func TestPowerUpFallsAndTouches(t *testing.T) {
	p := NewPowerUp(100, 100, PowerUpDefense)
	assert.False(t, p.Step(testArena))
	assert.InDelta(t, 101.2, p.Y, 1e-9)
	assert.True(t, p.Touches(120, 120))
	assert.False(t, p.Touches(131, 100))
	assert.Equal(t, "defense", p.Type.String())
}

func TestProjectileLifeAndBounds(t *testing.T) {
	p := NewAimedBullet(100, 100, 0, -6, 10, SpecialCone, 2)
	assert.False(t, p.Step(testArena, 1))
	assert.True(t, p.Step(testArena, 1))

	b := NewEnemyBullet(100, 600, 3, 8, 4, 10)
	assert.False(t, b.Step(testArena, 1))
	assert.False(t, b.Step(testArena, 1))
	assert.True(t, b.Step(testArena, 1))

	slow := NewEnemyBullet(100, 100, 3, 8, 4, 10)
	slow.Step(testArena, 0.4)
	assert.InDelta(t, 101.6, slow.Y, 1e-9)
}

func TestExplosionFades(t *testing.T) {
	e := NewExplosion(0, 0, 30, ExplosionBurst)
	for i := 0; i < ExplosionLife-1; i++ {
		assert.False(t, e.Step())
	}
	assert.True(t, e.Step())
	assert.Equal(t, 1.0, e.Progress())
}
