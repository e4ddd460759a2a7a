// Package input turns raw terminal bytes into normalized player intents.
package input

import (
	"bufio"
	"math"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so a held key shows up as a stream of
// presses with gaps between them.
const keyHoldDuration = 60 * time.Millisecond

// Intent is one tick's worth of player intent, independent of the device.
type Intent struct {
	MoveX, MoveY     float64 // Movement direction, each in [-1, 1]
	HasTarget        bool    // Pointer control: steer toward TargetX/TargetY
	TargetX, TargetY float64
	Fire             bool    // Main gun held
	Slots            [3]bool // Ability slot 1..3 pressed this tick
	Confirm          bool    // Enter / click on menus
	Quit             bool
	Left, Right      bool // Menu navigation
}

// Normalize scales a diagonal movement vector back to unit length.
func (i Intent) Normalize() Intent {
	l := math.Hypot(i.MoveX, i.MoveY)
	if l > 1 {
		i.MoveX /= l
		i.MoveY /= l
	}
	return i
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	left    time.Time
	right   time.Time
	up      time.Time
	down    time.Time
	fire    time.Time
	enter   time.Time
	slots   [3]time.Time
	slotHit [3]bool // Edge-triggered: consumed by the next read
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has hit EOF or an error.
func (s *Stream) Closed() bool {
	return s.closed
}

// Read drains all available bytes (non-blocking) and returns the current intent.
// A closed stream reports Quit.
func (s *Stream) Read() Intent {
	return s.readAt(time.Now())
}

func (s *Stream) readAt(now time.Time) Intent {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	parse(&s.state, buf, now)
	in := s.state.intent(now)
	if s.closed {
		in.Quit = true
	}
	return in
}

// parse applies a batch of bytes to the key state, handling arrow-key
// escape sequences.
func parse(state *keyState, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				state.up = now
			case 'B':
				state.down = now
			case 'C':
				state.right = now
			case 'D':
				state.left = now
			}
			i += 2
			continue
		}

		applyByteToState(state, b, now)
	}
}

func (k *keyState) intent(now time.Time) Intent {
	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }

	in := Intent{
		Fire:    held(k.fire),
		Confirm: held(k.enter),
		Quit:    held(k.quit),
		Left:    held(k.left),
		Right:   held(k.right),
	}
	if in.Left {
		in.MoveX--
	}
	if in.Right {
		in.MoveX++
	}
	if held(k.up) {
		in.MoveY--
	}
	if held(k.down) {
		in.MoveY++
	}
	for i := range k.slotHit {
		in.Slots[i] = k.slotHit[i]
		k.slotHit[i] = false
	}
	return in.Normalize()
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case ' ':
		state.fire = now
	case '\n', '\r':
		state.enter = now
	case '1', '2', '3':
		n := int(b - '1')
		state.slots[n] = now
		state.slotHit[n] = true
	}
}
