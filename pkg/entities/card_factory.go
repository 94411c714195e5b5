package entities

import (
	"image"
	"image/color"

	"github.com/decker502/flipdeck/pkg/components"
	"github.com/decker502/flipdeck/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// ItemFactory 在指定位置和朝向创建一个可交互的卡片实体
// 返回的实体至少需要带有 TransformComponent；其余组件均为可选
type ItemFactory func(em *ecs.EntityManager, index int, position mgl64.Vec3, rotation mgl64.Quat) (ecs.EntityID, error)

// 卡片贴图的像素尺寸，渲染时按世界尺寸缩放
const (
	cardImageWidth  = 100
	cardImageHeight = 140
	cardStripe      = 24
)

// NewCardFactory 返回默认的卡片工厂
//
// 卡片贴图是白底矩形，顶部带深色条纹，翻转 180° 后条纹位于底部。
// 颜色由 SpriteComponent.Tint 叠加，所有卡片共享同一张贴图。
// 工厂不添加碰撞组件，由 Spawner 统一补充。
func NewCardFactory(width, height float64) ItemFactory {
	var cardImage *ebiten.Image

	return func(em *ecs.EntityManager, index int, position mgl64.Vec3, rotation mgl64.Quat) (ecs.EntityID, error) {
		if cardImage == nil {
			cardImage = newCardImage()
		}

		id := em.CreateEntity()
		ecs.AddComponent(em, id, components.NewTransform(position, rotation))
		ecs.AddComponent(em, id, &components.SpriteComponent{
			Image:  cardImage,
			Tint:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Width:  width,
			Height: height,
		})
		return id, nil
	}
}

func newCardImage() *ebiten.Image {
	img := ebiten.NewImage(cardImageWidth, cardImageHeight)
	img.Fill(color.White)

	stripe := img.SubImage(image.Rect(0, 0, cardImageWidth, cardStripe)).(*ebiten.Image)
	stripe.Fill(color.Gray{Y: 96})
	return img
}
