package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 存储实体的视觉表现
// Width/Height 为世界单位下的渲染尺寸，图片会被缩放到该尺寸
type SpriteComponent struct {
	Image  *ebiten.Image
	Tint   color.RGBA
	Width  float64
	Height float64
}

// RenderedWidth 返回渲染宽度（世界单位）
func (s *SpriteComponent) RenderedWidth() float64 {
	return s.Width
}
