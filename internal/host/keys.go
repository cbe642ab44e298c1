package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spaceinvaders-go/invaders8080/internal/machine"
)

// keyBinding pairs a physical key with the arcade input bit it drives.
type keyBinding struct {
	key ebiten.Key
	bit machine.InputBit
}

var defaultBindings = []keyBinding{
	{ebiten.KeyA, machine.BitP1Left},
	{ebiten.KeyD, machine.BitP1Right},
	{ebiten.KeySpace, machine.BitP1Shoot},
	{ebiten.KeyC, machine.BitCoin},
	{ebiten.KeyShiftLeft, machine.BitP1Start},
	{ebiten.KeyShiftRight, machine.BitP1Start},
	{ebiten.KeyEnter, machine.BitP2Start},

	{ebiten.KeyArrowLeft, machine.BitP2Left},
	{ebiten.KeyArrowRight, machine.BitP2Right},
	{ebiten.KeyArrowUp, machine.BitP2Shoot},
	{ebiten.KeyDigit6, machine.BitDipSwitch1},
	{ebiten.KeyDigit7, machine.BitDipSwitch2},
	{ebiten.KeyDigit8, machine.BitTilt},
	{ebiten.KeyDigit9, machine.BitDipSwitchBonus},
	{ebiten.KeyDigit0, machine.BitDipSwitchCoin},
}

// applyKeyEdges polls the current pressed/released state of every bound
// key and forwards it to the machine. Ebiten's IsKeyPressed already
// reports the debounced physical state (no OS auto-repeat), so a
// straight level read is enough: the machine's SetKey is idempotent, it
// just holds the bit while the key is down.
func (g *Game) applyKeyEdges() {
	for _, b := range defaultBindings {
		g.mach.SetKey(b.bit, ebiten.IsKeyPressed(b.key))
	}
}
