package entities

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/flipdeck/pkg/components"
	"github.com/decker502/flipdeck/pkg/config"
	"github.com/decker502/flipdeck/pkg/ecs"
	"github.com/decker502/flipdeck/pkg/gesture"
	"github.com/go-gl/mathgl/mgl64"
)

// Spawner 生成一行等距排列的卡片
//
// 每张卡片：
//   - 位于自己的槽位，朝向为单位四元数
//   - 按索引循环使用调色板着色（仅在有 SpriteComponent 时）
//   - 缺少 CollisionComponent 时补充默认碰撞盒
//   - 绑定一个手势控制器，共享槽位列表和交互锁
type Spawner struct {
	entityManager *ecs.EntityManager
	factory       ItemFactory
	palette       []color.RGBA
	lock          *gesture.Lock
	viewport      gesture.Viewport
}

// NewSpawner 创建卡片生成器
// palette 为空时不着色；viewport 可为 nil（拖拽时跳过视口限制）
func NewSpawner(em *ecs.EntityManager, factory ItemFactory, palette []color.RGBA, lock *gesture.Lock, viewport gesture.Viewport) *Spawner {
	return &Spawner{
		entityManager: em,
		factory:       factory,
		palette:       palette,
		lock:          lock,
		viewport:      viewport,
	}
}

// Spawn 生成 count 张卡片，相邻槽位间距为 spacing
//
// 返回按槽位顺序排列的实体ID和共享槽位列表。
// 配置非法或工厂失败时返回错误，场景无法继续搭建。
func (s *Spawner) Spawn(count int, spacing float64) ([]ecs.EntityID, *gesture.SlotLayout, error) {
	slots, err := gesture.NewSlotLayout(count, spacing)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < slots.Len(); i++ {
		position := slots.Position(i)

		id, err := s.factory(s.entityManager, i, position, mgl64.QuatIdent())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create item %d: %w", i, err)
		}

		tf := s.ensureTransform(id, position)
		s.applyTint(id, i)
		s.ensureCollider(id)

		ecs.AddComponent(s.entityManager, id, &components.SlotComponent{Index: i})
		ecs.AddComponent(s.entityManager, id, gesture.NewController(i, slots, s.lock, tf, s.viewport, s.widthOf(id)))

		log.Printf("[Spawner] 生成卡片 Item%d (entity %d) at x=%.2f", i+1, id, position.X())
		ids = append(ids, id)
	}

	return ids, slots, nil
}

// ensureTransform 返回实体的变换，工厂未提供时在槽位处补一个
func (s *Spawner) ensureTransform(id ecs.EntityID, position mgl64.Vec3) *components.TransformComponent {
	if tf, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id); ok && tf != nil {
		return tf
	}
	tf := components.NewTransform(position, mgl64.QuatIdent())
	ecs.AddComponent(s.entityManager, id, tf)
	return tf
}

func (s *Spawner) applyTint(id ecs.EntityID, index int) {
	if len(s.palette) == 0 {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok || sprite == nil {
		return
	}
	sprite.Tint = s.palette[index%len(s.palette)]
}

// ensureCollider 仅在实体没有碰撞盒时补充默认碰撞盒
// 尺寸取自贴图，没有贴图时使用默认卡片尺寸
func (s *Spawner) ensureCollider(id ecs.EntityID) {
	if ecs.HasComponent[*components.CollisionComponent](s.entityManager, id) {
		return
	}

	width, height := config.DefaultItemWidth, config.DefaultItemHeight
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok && sprite != nil {
		width, height = sprite.Width, sprite.Height
	}
	ecs.AddComponent(s.entityManager, id, &components.CollisionComponent{
		Width:  width,
		Height: height,
	})
}

// widthOf 解析可选的宽度能力，没有贴图时返回 nil
func (s *Spawner) widthOf(id ecs.EntityID) gesture.WidthSource {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok || sprite == nil {
		return nil
	}
	return sprite
}
