package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/starfall/internal/input"
)

// keys is the device state read once per Update.
type keys struct {
	left, right, up, down bool
	fire                  bool
	slots                 [3]bool // Just pressed
	confirm               bool    // Just pressed
	prev, next            bool    // Menu navigation, just pressed
	quit                  bool
	pointer               bool // Left mouse button held
	pointerX, pointerY    int
}

func anyPressed(ks ...ebiten.Key) bool {
	for _, k := range ks {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(ks ...ebiten.Key) bool {
	for _, k := range ks {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func pollKeys() keys {
	k := keys{
		left:    anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		right:   anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		up:      anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		down:    anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
		fire:    anyPressed(ebiten.KeySpace),
		confirm: anyJustPressed(ebiten.KeyEnter) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		prev:    anyJustPressed(ebiten.KeyA, ebiten.KeyArrowLeft, ebiten.KeyArrowUp, ebiten.KeyW),
		next:    anyJustPressed(ebiten.KeyD, ebiten.KeyArrowRight, ebiten.KeyArrowDown, ebiten.KeyS),
		quit:    anyJustPressed(ebiten.KeyEscape, ebiten.KeyQ),
		pointer: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	k.slots[0] = anyJustPressed(ebiten.Key1, ebiten.KeyJ)
	k.slots[1] = anyJustPressed(ebiten.Key2, ebiten.KeyK)
	k.slots[2] = anyJustPressed(ebiten.Key3, ebiten.KeyL)
	k.pointerX, k.pointerY = ebiten.CursorPosition()
	return k
}

// intent maps device state to a game intent. Holding the mouse button steers
// the ship toward the cursor and fires.
func (k keys) intent() input.Intent {
	in := input.Intent{
		Fire:    k.fire,
		Slots:   k.slots,
		Confirm: k.confirm,
		Quit:    k.quit,
		Left:    k.left,
		Right:   k.right,
	}
	if k.left {
		in.MoveX--
	}
	if k.right {
		in.MoveX++
	}
	if k.up {
		in.MoveY--
	}
	if k.down {
		in.MoveY++
	}
	if k.pointer {
		in.HasTarget = true
		in.TargetX, in.TargetY = float64(k.pointerX), float64(k.pointerY)
		in.Fire = true
	}
	return in.Normalize()
}
