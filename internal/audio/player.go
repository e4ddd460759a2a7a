// Package audio turns game cues into short synthesized sounds.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/starfall/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// voice describes the sound for one cue.
type voice struct {
	Freq     float64
	EndFreq  float64
	Duration time.Duration
	Wave     Wave
	Gain     float64
}

var voices = map[game.Cue]voice{
	game.CueShoot:      {Freq: 880, EndFreq: 660, Duration: 40 * time.Millisecond, Wave: WaveSquare, Gain: 0.08},
	game.CueExplosion:  {Freq: 200, EndFreq: 60, Duration: 180 * time.Millisecond, Wave: WaveNoise, Gain: 0.2},
	game.CueHit:        {Freq: 140, EndFreq: 90, Duration: 120 * time.Millisecond, Wave: WaveSaw, Gain: 0.25},
	game.CueDeflect:    {Freq: 1200, EndFreq: 1500, Duration: 50 * time.Millisecond, Wave: WaveSine, Gain: 0.15},
	game.CuePowerUp:    {Freq: 520, EndFreq: 1040, Duration: 150 * time.Millisecond, Wave: WaveSine, Gain: 0.2},
	game.CueAbility:    {Freq: 330, EndFreq: 990, Duration: 200 * time.Millisecond, Wave: WaveSaw, Gain: 0.15},
	game.CueBossSpawn:  {Freq: 110, EndFreq: 55, Duration: 700 * time.Millisecond, Wave: WaveSaw, Gain: 0.3},
	game.CueBossDefeat: {Freq: 300, EndFreq: 40, Duration: 900 * time.Millisecond, Wave: WaveNoise, Gain: 0.3},
	game.CueCombo:      {Freq: 660, EndFreq: 880, Duration: 120 * time.Millisecond, Wave: WaveSquare, Gain: 0.1},
	game.CueBonusRound: {Freq: 440, EndFreq: 1320, Duration: 400 * time.Millisecond, Wave: WaveSine, Gain: 0.2},
	game.CueLevelUp:    {Freq: 392, EndFreq: 784, Duration: 500 * time.Millisecond, Wave: WaveSquare, Gain: 0.12},
	game.CueGameOver:   {Freq: 220, EndFreq: 55, Duration: 1200 * time.Millisecond, Wave: WaveSaw, Gain: 0.25},
}

// Streamer builds the sound for cue. The second result is false for cues
// without a voice.
func Streamer(cue game.Cue) (beep.Streamer, bool) {
	v, ok := voices[cue]
	if !ok {
		return nil, false
	}
	tone := NewTone(v.Freq, v.EndFreq, v.Duration, v.Wave, sampleRate)
	shaped := NewEnvelope(tone, v.Duration, 5*time.Millisecond, v.Duration/3, sampleRate)
	return withVolume(shaped, v.Gain), true
}

// Player mixes cue sounds onto the speaker. A Player that failed to
// initialize stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	log         *log.Logger
}

// NewPlayer creates a player. Call Init before Play.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{mixer: &beep.Mixer{}, log: logger}
}

// Init opens the speaker. On failure the player degrades to silent and the
// error is returned for logging.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		p.log.Warn("audio disabled", "err", err)
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the sound for cue.
func (p *Player) Play(cue game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, ok := Streamer(cue)
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
