// Package engine implements the per-frame update of the runner: gravity and
// jump integration, sprite-sheet frame cycling, hit-box collision and the
// parallax background scroll.
//
// All functions here are deterministic and allocation-free. They mutate the
// state they are given and never fail; the caller owns the frame loop and
// calls them in the order physics, animation, collision, draw.
package engine
