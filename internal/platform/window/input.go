package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dapper-dasher/internal/core"
)

// keyBindings maps keys to the action sent on the tick the key goes down.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyP, core.ActionPause},
}

// readInput builds the frame input from keys pressed this tick.
// Holding a key sends its action once; pressing again sends it again.
func readInput(justPressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range keyBindings {
		if justPressed(b.key) {
			in.Set(b.action)
		}
	}
	return in
}
