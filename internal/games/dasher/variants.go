package dasher

import (
	"github.com/vovakirdan/dapper-dasher/internal/config"
	"github.com/vovakirdan/dapper-dasher/internal/registry"
)

// RegisterVariants registers every variant of cfg with the registry and
// returns their IDs in config order.
func RegisterVariants(cfg config.DasherConfig) []string {
	ids := make([]string, 0, len(cfg.Variants))
	for _, v := range cfg.Variants {
		resolved := cfg.Resolve(v)
		registry.Register(v.ID, func() registry.Game {
			return New(resolved)
		})
		ids = append(ids, v.ID)
	}
	return ids
}

// NewVariant builds a game for one variant ID without the registry.
func NewVariant(cfg config.DasherConfig, id string) (*Game, bool) {
	v, ok := cfg.Variant(id)
	if !ok {
		return nil, false
	}
	return New(cfg.Resolve(v)), true
}
