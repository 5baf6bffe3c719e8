package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"skyhaul/input"
)

// EbitenKeys names keys the way ebiten does ("ArrowUp", "Digit1", "KeyA"
// is plain "A"). It implements input.KeyNamer.
type EbitenKeys struct {
	codes map[string]input.Key
}

// NewEbitenKeys indexes every ebiten key by name.
func NewEbitenKeys() *EbitenKeys {
	n := &EbitenKeys{codes: make(map[string]input.Key, int(ebiten.KeyMax)+1)}
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		name := k.String()
		if name == "" {
			continue
		}
		if _, dup := n.codes[name]; !dup {
			n.codes[name] = input.Key(k)
		}
	}
	return n
}

// KeyCode implements input.KeyNamer.
func (n *EbitenKeys) KeyCode(name string) (input.Key, bool) {
	k, ok := n.codes[name]
	return k, ok
}

// KeyName implements input.KeyNamer.
func (n *EbitenKeys) KeyName(k input.Key) string {
	if k < 0 || ebiten.Key(k) > ebiten.KeyMax {
		return ""
	}
	return ebiten.Key(k).String()
}
