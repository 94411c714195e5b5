package systems

import (
	"log"

	"github.com/decker502/flipdeck/pkg/components"
	"github.com/decker502/flipdeck/pkg/ecs"
	"github.com/decker502/flipdeck/pkg/gesture"
	"github.com/go-gl/mathgl/mgl64"
)

// GestureSystem 把指针输入分发给卡片的手势控制器，并逐帧推进动画
//
// 职责：
//   - 累计游戏时间，作为手势判定的时钟
//   - 指针按下时做命中检测，被接受的卡片成为"捕获"卡片
//   - 捕获期间把移动和松开只发给捕获卡片
//   - 每帧推进所有控制器的动画
type GestureSystem struct {
	entityManager *ecs.EntityManager
	camera        *CameraSystem
	input         PointerInput

	gameTime    float64
	captured    ecs.EntityID
	lastPointer mgl64.Vec3
}

// NewGestureSystem 创建手势系统（使用 Ebitengine 鼠标/触摸输入）
func NewGestureSystem(em *ecs.EntityManager, camera *CameraSystem) *GestureSystem {
	return NewGestureSystemWithInput(em, camera, NewEbitenPointerInput())
}

// NewGestureSystemWithInput 创建带自定义指针输入的手势系统（用于测试）
func NewGestureSystemWithInput(em *ecs.EntityManager, camera *CameraSystem, input PointerInput) *GestureSystem {
	return &GestureSystem{
		entityManager: em,
		camera:        camera,
		input:         input,
	}
}

// GameTime 返回累计的游戏时间（秒）
func (s *GestureSystem) GameTime() float64 {
	return s.gameTime
}

// Captured 返回当前被指针按住的卡片，没有时返回 ecs.InvalidEntity
func (s *GestureSystem) Captured() ecs.EntityID {
	return s.captured
}

// Update 处理本帧输入并推进动画
func (s *GestureSystem) Update(deltaTime float64) {
	s.gameTime += deltaTime

	sx, sy := s.input.CursorPosition()
	pointer := s.camera.ScreenToWorld(float64(sx), float64(sy))

	if s.input.IsPointerJustPressed() && s.captured == ecs.InvalidEntity {
		s.handlePress(pointer)
	}

	if s.captured != ecs.InvalidEntity {
		released := s.input.IsPointerJustReleased() || !s.input.IsPointerPressed()
		if pointer != s.lastPointer {
			if ctrl, ok := s.controller(s.captured); ok {
				ctrl.Drag(pointer)
			}
			s.lastPointer = pointer
		}
		if released {
			s.handleRelease(pointer)
		}
	}

	for _, id := range ecs.GetEntitiesWith1[*gesture.Controller](s.entityManager) {
		if ctrl, ok := s.controller(id); ok {
			ctrl.Advance(deltaTime)
		}
	}
}

func (s *GestureSystem) handlePress(pointer mgl64.Vec3) {
	id := s.HitTest(pointer)
	if id == ecs.InvalidEntity {
		return
	}
	ctrl, ok := s.controller(id)
	if !ok {
		return
	}
	if !ctrl.Press(s.gameTime, pointer) {
		log.Printf("[GestureSystem] 卡片 %d 按下被忽略：其他卡片正在交互", ctrl.Index())
		return
	}
	s.captured = id
	s.lastPointer = pointer
}

func (s *GestureSystem) handleRelease(pointer mgl64.Vec3) {
	if ctrl, ok := s.controller(s.captured); ok {
		ctrl.Release(s.gameTime, pointer)
	}
	s.captured = ecs.InvalidEntity
}

// HitTest 返回世界坐标点命中的最上层卡片
// 实体ID越大绘制越靠后，因此从后往前查找
func (s *GestureSystem) HitTest(pointer mgl64.Vec3) ecs.EntityID {
	ids := ecs.GetEntitiesWith3[*gesture.Controller, *components.TransformComponent, *components.CollisionComponent](s.entityManager)
	for i := len(ids) - 1; i >= 0; i-- {
		id := ids[i]
		tf, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		if tf == nil || col == nil {
			continue
		}
		if col.Contains(tf.Position.X(), tf.Position.Y(), pointer.X(), pointer.Y()) {
			return id
		}
	}
	return ecs.InvalidEntity
}

func (s *GestureSystem) controller(id ecs.EntityID) (*gesture.Controller, bool) {
	ctrl, ok := ecs.GetComponent[*gesture.Controller](s.entityManager, id)
	return ctrl, ok && ctrl != nil
}
