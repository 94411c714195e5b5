package systems

import (
	"log"

	"github.com/decker502/flipdeck/pkg/components"
	"github.com/decker502/flipdeck/pkg/ecs"
	"github.com/decker502/flipdeck/pkg/gesture"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 绘制所有带 SpriteComponent 的实体
//
// 贴图以实体位置为中心，按 SpriteComponent 的世界尺寸缩放，
// 按变换的 Z 轴转角旋转，并用 Tint 着色。
// 正在交互或播放动画的卡片最后绘制，保证位于最上层。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	camera        *CameraSystem
	debugPrinted  map[ecs.EntityID]bool // 记录已打印过警告的实体
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager, camera *CameraSystem) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		camera:        camera,
		debugPrinted:  make(map[ecs.EntityID]bool),
	}
}

// Draw 绘制所有精灵实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.DrawOrder() {
		s.drawEntity(screen, id)
	}
}

// DrawOrder 返回绘制顺序：静止卡片按ID升序，活动卡片排在最后
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.SpriteComponent](s.entityManager)

	order := make([]ecs.EntityID, 0, len(ids))
	var active []ecs.EntityID
	for _, id := range ids {
		if ctrl, ok := ecs.GetComponent[*gesture.Controller](s.entityManager, id); ok && ctrl != nil &&
			(ctrl.IsHeld() || ctrl.IsAnimating()) {
			active = append(active, id)
			continue
		}
		order = append(order, id)
	}
	return append(order, active...)
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	tf, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if tf == nil || sprite == nil {
		return
	}
	if sprite.Image == nil {
		if !s.debugPrinted[id] {
			log.Printf("[RenderSystem] 警告: 实体 %d 没有贴图，跳过绘制", id)
			s.debugPrinted[id] = true
		}
		return
	}

	bounds := sprite.Image.Bounds()
	imgW, imgH := float64(bounds.Dx()), float64(bounds.Dy())
	if imgW == 0 || imgH == 0 {
		return
	}
	ppu := s.camera.PixelsPerUnit()
	screenX, screenY := s.camera.WorldToScreen(tf.Position)

	op := &ebiten.DrawImageOptions{}
	// 居中图片
	op.GeoM.Translate(-imgW/2, -imgH/2)
	// 缩放到世界尺寸
	op.GeoM.Scale(sprite.Width*ppu/imgW, sprite.Height*ppu/imgH)
	// 屏幕 Y 轴向下，世界中的逆时针在屏幕上取反
	op.GeoM.Rotate(-tf.ZAngle())
	op.GeoM.Translate(screenX, screenY)
	op.ColorScale.ScaleWithColor(sprite.Tint)
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(sprite.Image, op)
}
