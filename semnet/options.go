// SPDX-License-Identifier: MIT

package semnet

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/raven/transform"
)

// DefaultThreshold is the minimum CompareWith score accepted as an answer.
const DefaultThreshold = 1.0

// Option configures a Network before it is built.
// Option constructors panic on meaningless values; Network methods never panic.
type Option func(*networkConfig)

type networkConfig struct {
	catalogue *transform.Catalogue
	threshold float64
	logger    *slog.Logger
}

func defaultConfig() networkConfig {
	return networkConfig{
		catalogue: transform.Default(),
		threshold: DefaultThreshold,
		logger:    slog.New(slog.DiscardHandler),
	}
}

// WithCatalogue selects the rule catalogue, e.g. transform.Permissive().
func WithCatalogue(cat *transform.Catalogue) Option {
	if cat == nil {
		panic("semnet: WithCatalogue(nil)")
	}
	return func(c *networkConfig) { c.catalogue = cat }
}

// WithThreshold sets the confidence threshold; it must lie in (0,1].
func WithThreshold(t float64) Option {
	if t <= 0 || t > 1 {
		panic(fmt.Sprintf("semnet: WithThreshold(%v) outside (0,1]", t))
	}
	return func(c *networkConfig) { c.threshold = t }
}

// WithLogger routes stage diagnostics to l at debug level.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("semnet: WithLogger(nil)")
	}
	return func(c *networkConfig) { c.logger = l }
}
