package ability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAbilityIsReady(t *testing.T) {
	a := New(Nova)
	assert.Equal(t, Ready, a.State(0))
	assert.Equal(t, "Ready", a.Label(0))
	assert.True(t, a.TryActivate(0))
	assert.Equal(t, Active, a.State(0))
}

func TestCooldownGate(t *testing.T) {
	a := New(Beam)
	a.LastActivated = 0
	require.Equal(t, 20000.0, a.Cooldown)

	assert.False(t, a.TryActivate(10000))
	assert.Equal(t, 0.0, a.LastActivated, "rejected activation must not stamp")
	assert.False(t, a.Active)

	assert.True(t, a.TryActivate(20001))
	assert.Equal(t, 20001.0, a.LastActivated)
	assert.Equal(t, a.Duration, a.Timer)
}

func TestRejectWhileActive(t *testing.T) {
	a := New(ConeBurst)
	require.True(t, a.TryActivate(1000))

	// Even if the cooldown were somehow over, an active ability stays put.
	a.LastActivated = -1e9
	assert.False(t, a.TryActivate(2000))
	assert.Equal(t, -1e9, a.LastActivated)
}

func TestTickEndsEffect(t *testing.T) {
	a := New(Nova)
	require.True(t, a.TryActivate(0))

	for i := 0; i < 49; i++ {
		assert.False(t, a.Tick(20))
	}
	assert.True(t, a.Tick(20))
	assert.Equal(t, OnCooldown, a.State(1000))
	assert.Equal(t, "29.0s", a.Label(1000))
	assert.False(t, a.Tick(16), "idle tick is a no-op")
}

func TestRefundMakesReadyAgain(t *testing.T) {
	a := New(MissileStrike)
	require.True(t, a.TryActivate(5000))
	a.Refund()
	assert.Equal(t, Ready, a.State(5001))
	assert.True(t, a.TryActivate(5001))
}

func TestFinishKeepsCooldown(t *testing.T) {
	a := New(MissileStrike)
	require.True(t, a.TryActivate(0))
	a.Finish()
	assert.Equal(t, OnCooldown, a.State(100))
	assert.Equal(t, "24.9s", a.Label(100))
}

func TestOverchargeFractionCapped(t *testing.T) {
	assert.InDelta(t, 0.15, OverchargeBossFraction(1), 1e-9)
	assert.InDelta(t, 0.19, OverchargeBossFraction(5), 1e-9)
	assert.InDelta(t, 0.35, OverchargeBossFraction(40), 1e-9)
}

func TestShipsShareFirstTwoSlots(t *testing.T) {
	seen := map[Kind]bool{}
	for _, s := range Ships {
		assert.Equal(t, Beam, s.Abilities[0], s.ID)
		assert.Equal(t, ConeBurst, s.Abilities[1], s.ID)
		assert.False(t, seen[s.Abilities[2]], "third slot repeated on %s", s.ID)
		seen[s.Abilities[2]] = true
	}
	assert.Len(t, seen, 6)
}

func TestShipLookup(t *testing.T) {
	s, ok := ShipByID(" Titan ")
	require.True(t, ok)
	assert.Equal(t, Overcharge, s.Abilities[2])

	_, ok = ShipByID("nope")
	assert.False(t, ok)
	assert.Equal(t, DefaultShip, ShipOrDefault("nope").ID)

	set := s.Set()
	assert.Equal(t, Overcharge, set[2].Kind)
	assert.Equal(t, Ready, set[2].State(0))
}

func TestOnlyMissileStrikeIsInstant(t *testing.T) {
	for k := Beam; k <= DroneSquad; k++ {
		assert.Equal(t, k == MissileStrike, GetConfig(k).Instant, k.String())
	}
}
