package audio

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/starfall/internal/game"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneLengthAndRange(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		tone := NewTone(440, 220, 100*time.Millisecond, w, sampleRate)
		n, peak := drain(tone)
		assert.Equal(t, sampleRate.N(100*time.Millisecond), n, "wave %d", w)
		assert.LessOrEqual(t, peak, 1.0)
		assert.NoError(t, tone.Err())
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	d := 50 * time.Millisecond
	s := NewEnvelope(NewTone(100, 100, d, WaveSquare, sampleRate), d, 10*time.Millisecond, 10*time.Millisecond, sampleRate)

	buf := make([][2]float64, sampleRate.N(d))
	n, _ := s.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.Equal(t, 0.0, buf[0][0])
	assert.InDelta(t, 1.0, abs(buf[n/2][0]), 1e-9)
	assert.Less(t, abs(buf[n-1][0]), 0.01)
}

func TestEveryCueHasAVoice(t *testing.T) {
	for c := game.CueShoot; c <= game.CueGameOver; c++ {
		s, ok := Streamer(c)
		require.True(t, ok, c.String())
		_, peak := drain(s)
		assert.Greater(t, peak, 0.0, c.String())
		assert.LessOrEqual(t, peak, 1.0, c.String())
	}
	_, ok := Streamer(game.Cue(99))
	assert.False(t, ok)
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(log.New(io.Discard))
	p.Play(game.CueShoot)
	p.Close()
	assert.Equal(t, 0, p.mixer.Len())
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
