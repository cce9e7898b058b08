package scroller

import (
	"github.com/vovakirdan/sky-scroller/internal/config"
	"github.com/vovakirdan/sky-scroller/internal/core"
)

// Sprite is the glyph and color used to fill an entity's box on screen.
type Sprite struct {
	Rune  rune
	Color core.Color
}

// SpriteSet is the asset registry built once at startup and handed to
// the renderer. Player art is indexed by orientation, obstacle art by
// variant index.
type SpriteSet struct {
	Player    [3]Sprite
	Obstacles []Sprite
	HUD       core.Color
	Overlay   core.Color
}

// Known obstacle artwork by variant name.
var obstacleArt = map[string]Sprite{
	"balloon": {Rune: '●', Color: core.ColorRed},
	"bird":    {Rune: '▶', Color: core.ColorYellow},
	"cloud":   {Rune: '▒', Color: core.ColorWhite},
	"plane":   {Rune: '▬', Color: core.ColorMagenta},
}

var fallbackObstacle = Sprite{Rune: '▓', Color: core.ColorGray}

// NewSpriteSet builds the registry for the configured obstacle variants.
func NewSpriteSet(variants []config.ObstacleVariant) *SpriteSet {
	s := &SpriteSet{
		HUD:     core.ColorBrightWhite,
		Overlay: core.ColorGray,
	}
	s.Player[OrientationNeutral] = Sprite{Rune: '█', Color: core.ColorCyan}
	s.Player[OrientationUp] = Sprite{Rune: '▲', Color: core.ColorGreen}
	s.Player[OrientationDown] = Sprite{Rune: '▼', Color: core.ColorOrange}

	s.Obstacles = make([]Sprite, len(variants))
	for i, v := range variants {
		art, ok := obstacleArt[v.Name]
		if !ok {
			art = fallbackObstacle
		}
		s.Obstacles[i] = art
	}
	return s
}

// PlayerSprite returns the art for an orientation.
func (s *SpriteSet) PlayerSprite(o Orientation) Sprite {
	if o < 0 || int(o) >= len(s.Player) {
		return s.Player[OrientationNeutral]
	}
	return s.Player[o]
}

// ObstacleSprite returns the art for a variant index.
func (s *SpriteSet) ObstacleSprite(variant int) Sprite {
	if variant < 0 || variant >= len(s.Obstacles) {
		return fallbackObstacle
	}
	return s.Obstacles[variant]
}
