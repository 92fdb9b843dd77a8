package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/core"
	"github.com/vovakirdan/dapper-dasher/internal/games/dasher"
)

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, key := range keys {
			if k == key {
				return true
			}
		}
		return false
	}
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name  string
		keys  []ebiten.Key
		jump  bool
		pause bool
	}{
		{"nothing", nil, false, false},
		{"space jumps", []ebiten.Key{ebiten.KeySpace}, true, false},
		{"p pauses", []ebiten.Key{ebiten.KeyP}, false, true},
		{"both", []ebiten.Key{ebiten.KeySpace, ebiten.KeyP}, true, true},
		{"unbound key", []ebiten.Key{ebiten.KeyW}, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := readInput(pressed(tc.keys...))
			if in.Has(core.ActionJump) != tc.jump {
				t.Errorf("jump = %v, expected %v", in.Has(core.ActionJump), tc.jump)
			}
			if in.Has(core.ActionPause) != tc.pause {
				t.Errorf("pause = %v, expected %v", in.Has(core.ActionPause), tc.pause)
			}
		})
	}
}

// A held key is only "just pressed" on its first tick.
func TestHeldSpaceJumpsOnce(t *testing.T) {
	g, ok := dasher.NewVariant(config.DefaultDasherConfig(), "dasher-endless")
	if !ok {
		t.Fatal("dasher-endless not found")
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	jumps := 0
	airborne := false
	for tick := 0; tick < 600; tick++ {
		var keys []ebiten.Key
		if tick == 0 {
			keys = []ebiten.Key{ebiten.KeySpace}
		}
		g.Step(readInput(pressed(keys...)))

		now := g.Snapshot().Airborne
		if now && !airborne {
			jumps++
		}
		airborne = now
	}

	if jumps != 1 {
		t.Errorf("holding space for 600 ticks jumped %d times, expected 1", jumps)
	}
}
