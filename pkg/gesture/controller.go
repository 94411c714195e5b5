// Package gesture 实现卡片的按下/拖拽/松开手势判定与动画
//
// 每张卡片拥有一个 Controller，所有 Controller 共享同一个 *Lock 和 *SlotLayout。
// 宿主（GestureSystem）负责命中检测和时间累计，Controller 只修改自己卡片的变换。
//
// 状态流转：
//
//	Idle → Pressed → Dragging → (Release) → FlippingLeft / FlippingRight / SnappingBack → Idle
package gesture

import (
	"log"

	"github.com/decker502/flipdeck/pkg/components"
	"github.com/decker502/flipdeck/pkg/config"
	"github.com/go-gl/mathgl/mgl64"
)

// State 控制器状态
type State int

const (
	StateIdle State = iota
	StatePressed
	StateDragging
	StateFlippingLeft
	StateFlippingRight
	StateSnappingBack
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	case StateFlippingLeft:
		return "flipping-left"
	case StateFlippingRight:
		return "flipping-right"
	case StateSnappingBack:
		return "snapping-back"
	default:
		return "unknown"
	}
}

// Direction 拖拽移动方向
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Viewport 提供当前可见区域左右边缘的世界坐标 X
type Viewport interface {
	ViewportEdges() (left, right float64)
}

// WidthSource 提供卡片渲染宽度（世界单位），用于视口内缩
type WidthSource interface {
	RenderedWidth() float64
}

// Controller 单张卡片的手势控制器
type Controller struct {
	index     int
	slots     *SlotLayout
	lock      *Lock
	transform *components.TransformComponent
	viewport  Viewport    // 可为 nil，此时跳过视口限制
	width     WidthSource // 可为 nil，此时跳过视口限制

	state     State
	animation Animation

	pressTime     float64
	pressPointer  mgl64.Vec3
	pressPosition mgl64.Vec3
	lastPointer   mgl64.Vec3

	// 拖拽追踪
	lastX        float64
	direction    Direction
	slotSide     Side
	nextNeighbor int
}

// NewController 创建卡片控制器
//
// 参数：
//   - index: 卡片对应的槽位索引
//   - slots: 共享槽位列表
//   - lock: 共享交互锁
//   - tf: 卡片变换（控制器直接修改）
//   - viewport: 视口边缘提供者，可为 nil
//   - width: 可选的宽度能力，可为 nil
func NewController(index int, slots *SlotLayout, lock *Lock, tf *components.TransformComponent, viewport Viewport, width WidthSource) *Controller {
	return &Controller{
		index:        index,
		slots:        slots,
		lock:         lock,
		transform:    tf,
		viewport:     viewport,
		width:        width,
		state:        StateIdle,
		slotSide:     SideRight,
		nextNeighbor: -1,
	}
}

// Index 返回槽位索引
func (c *Controller) Index() int { return c.index }

// State 返回当前状态
func (c *Controller) State() State { return c.state }

// Transform 返回被控制的变换
func (c *Controller) Transform() *components.TransformComponent { return c.transform }

// IsAnimating 报告是否有动画在进行
func (c *Controller) IsAnimating() bool { return c.animation != nil }

// IsHeld 报告指针是否正按住该卡片
func (c *Controller) IsHeld() bool {
	return c.state == StatePressed || c.state == StateDragging
}

// DragDirection 返回最近一次拖拽的移动方向
func (c *Controller) DragDirection() Direction { return c.direction }

// SlotSide 返回卡片当前位于自身槽位的哪一侧
func (c *Controller) SlotSide() Side { return c.slotSide }

// NextNeighbor 返回卡片正在靠近的相邻卡片索引
func (c *Controller) NextNeighbor() (int, bool) {
	return c.nextNeighbor, c.nextNeighbor >= 0
}

// Press 处理指针按下
//
// 仅在 Idle 且全局锁空闲时接受；被拒绝时不产生任何副作用。
// 返回是否接受了本次按下。
func (c *Controller) Press(now float64, pointer mgl64.Vec3) bool {
	if c.state != StateIdle {
		return false
	}
	if !c.lock.TryBeginInteraction() {
		return false
	}

	pointer[2] = 0
	c.state = StatePressed
	c.pressTime = now
	c.pressPointer = pointer
	c.lastPointer = pointer
	c.pressPosition = c.transform.Position

	c.lastX = c.transform.Position.X()
	c.direction = DirectionNone
	c.slotSide = SideOf(c.transform.Position.X(), c.slots.Position(c.index).X())
	c.nextNeighbor = -1
	return true
}

// Drag 处理按住状态下的指针移动
// 只改变 X：先限制在相邻槽位之间，再限制在内缩后的视口内
func (c *Controller) Drag(pointer mgl64.Vec3) {
	if !c.IsHeld() {
		return
	}
	c.state = StateDragging

	pointer[2] = 0
	delta := pointer.X() - c.lastPointer.X()
	x := c.transform.Position.X() + delta

	x = c.clampToNeighbors(x)
	x = c.clampToViewport(x)

	c.transform.Position[0] = x
	c.lastPointer = pointer

	c.trackDrag(x)
}

func (c *Controller) clampToNeighbors(x float64) float64 {
	if left, ok := c.slots.LeftNeighbor(c.index); ok && x < left {
		x = left
	}
	if right, ok := c.slots.RightNeighbor(c.index); ok && x > right {
		x = right
	}
	return x
}

func (c *Controller) clampToViewport(x float64) float64 {
	if c.viewport == nil || c.width == nil {
		return x
	}
	half := c.width.RenderedWidth() / 2
	left, right := c.viewport.ViewportEdges()
	return mgl64.Clamp(x, left+half, right-half)
}

// trackDrag 更新方向、槽位侧和目标邻居，变化时输出日志
func (c *Controller) trackDrag(x float64) {
	switch {
	case x < c.lastX:
		if c.direction != DirectionLeft {
			c.direction = DirectionLeft
			log.Printf("[Gesture] 卡片 %d 方向变为 left", c.index)
		}
	case x > c.lastX:
		if c.direction != DirectionRight {
			c.direction = DirectionRight
			log.Printf("[Gesture] 卡片 %d 方向变为 right", c.index)
		}
	}
	c.lastX = x

	side := SideOf(x, c.slots.Position(c.index).X())
	if side != c.slotSide {
		c.slotSide = side
		log.Printf("[Gesture] 卡片 %d 相对槽位: %s", c.index, side)
	}

	next := -1
	switch {
	case c.direction == DirectionLeft && c.slotSide == SideLeft && c.index > 0:
		next = c.index - 1
	case c.direction == DirectionRight && c.slotSide == SideRight && c.index < c.slots.Len()-1:
		next = c.index + 1
	}
	if next != c.nextNeighbor {
		c.nextNeighbor = next
		if next >= 0 {
			log.Printf("[Gesture] 卡片 %d 靠近卡片 %d", c.index, next)
		}
	}
}

// Release 处理指针松开并启动相应动画
//
// 判定依据：按压时长与卡片离槽位的距离。
//   - 点击：按指针落在卡片哪一侧决定翻转方向，立即释放 busy，改为持有 rotating
//   - 拖拽：启动归位动画，busy 保持到动画结束
func (c *Controller) Release(now float64, pointer mgl64.Vec3) Gesture {
	if !c.IsHeld() {
		return GestureNone
	}

	slot := c.slots.Position(c.index)
	elapsed := now - c.pressTime
	distance := slot.Sub(c.transform.Position).Len()

	gesture := Classify(elapsed, distance)
	switch gesture {
	case GestureClick:
		log.Printf("[Gesture] 点击卡片 %d, 槽位 x=%.2f", c.index, slot.X())
		c.startFlip(SideOf(pointer.X(), c.transform.Position.X()))
	default:
		log.Printf("[Gesture] 拖拽卡片 %d 结束, 归位到 x=%.2f", c.index, slot.X())
		c.state = StateSnappingBack
		c.animation = NewSnapBackAnimation(c.transform, slot, config.SnapBackDuration)
	}
	return gesture
}

func (c *Controller) startFlip(side Side) {
	angle := config.FlipAngleDegrees
	c.state = StateFlippingLeft
	if side == SideRight {
		angle = -angle
		c.state = StateFlippingRight
	}
	log.Printf("[Gesture] 卡片 %d 向 %s 翻转", c.index, side)

	c.lock.HandOffToRotation()
	c.animation = NewFlipAnimation(c.transform, angle, config.FlipDuration)
}

// Advance 推进当前动画一帧
// 动画结束时释放对应的锁并回到 Idle；没有动画时直接返回 AnimationDone
func (c *Controller) Advance(dt float64) AnimationStatus {
	if c.animation == nil {
		return AnimationDone
	}

	if c.animation.Advance(dt) == AnimationInProgress {
		return AnimationInProgress
	}

	switch c.state {
	case StateFlippingLeft, StateFlippingRight:
		c.lock.EndRotation()
	case StateSnappingBack:
		c.lock.EndInteraction()
	}
	c.animation = nil
	c.state = StateIdle
	return AnimationDone
}
