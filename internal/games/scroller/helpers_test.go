package scroller

import "github.com/vovakirdan/sky-scroller/internal/config"

// testConfig returns the default configuration with optional tweaks.
func testConfig(mutate ...func(*config.ScrollerConfig)) config.ScrollerConfig {
	cfg := config.DefaultScrollerConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	return cfg
}

func newTestPlayer(cfg config.ScrollerConfig, y int) *Player {
	return NewPlayer(cfg, cfg.Player.X, y)
}
