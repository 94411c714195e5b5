package systems

import (
	"math"
	"testing"

	"github.com/decker502/flipdeck/pkg/components"
	"github.com/decker502/flipdeck/pkg/ecs"
	"github.com/decker502/flipdeck/pkg/entities"
	"github.com/decker502/flipdeck/pkg/gesture"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

// mockPointerInput 用于测试的 mock 指针输入
type mockPointerInput struct {
	x, y         int
	pressed      bool
	justPressed  bool
	justReleased bool
}

func (m *mockPointerInput) CursorPosition() (int, int)  { return m.x, m.y }
func (m *mockPointerInput) IsPointerPressed() bool      { return m.pressed }
func (m *mockPointerInput) IsPointerJustPressed() bool  { return m.justPressed }
func (m *mockPointerInput) IsPointerJustReleased() bool { return m.justReleased }

func (m *mockPointerInput) press(x, y int) {
	m.x, m.y = x, y
	m.pressed, m.justPressed, m.justReleased = true, true, false
}

func (m *mockPointerInput) hold(x, y int) {
	m.x, m.y = x, y
	m.pressed, m.justPressed, m.justReleased = true, false, false
}

func (m *mockPointerInput) release() {
	m.pressed, m.justPressed, m.justReleased = false, false, true
}

func (m *mockPointerInput) idle() {
	m.pressed, m.justPressed, m.justReleased = false, false, false
}

type gestureFixture struct {
	em     *ecs.EntityManager
	lock   *gesture.Lock
	ids    []ecs.EntityID
	input  *mockPointerInput
	system *GestureSystem
}

// newGestureFixture 搭建默认的 4 张卡片场景：800x600，100 像素/单位
// 卡片中心的屏幕X分别为 175, 325, 475, 625，Y 为 300
func newGestureFixture(t *testing.T) *gestureFixture {
	t.Helper()
	em := ecs.NewEntityManager()
	camera := NewCameraSystem(em, 100, 800, 600)
	lock := gesture.NewLock()

	factory := func(em *ecs.EntityManager, index int, position mgl64.Vec3, rotation mgl64.Quat) (ecs.EntityID, error) {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, components.NewTransform(position, rotation))
		ecs.AddComponent(em, id, &components.SpriteComponent{Width: 1, Height: 1.4})
		return id, nil
	}
	ids, _, err := entities.NewSpawner(em, factory, nil, lock, camera).Spawn(4, 1.5)
	require.NoError(t, err)

	input := &mockPointerInput{}
	return &gestureFixture{
		em:     em,
		lock:   lock,
		ids:    ids,
		input:  input,
		system: NewGestureSystemWithInput(em, camera, input),
	}
}

func (f *gestureFixture) transform(i int) *components.TransformComponent {
	tf, _ := ecs.GetComponent[*components.TransformComponent](f.em, f.ids[i])
	return tf
}

func (f *gestureFixture) controller(i int) *gesture.Controller {
	ctrl, _ := ecs.GetComponent[*gesture.Controller](f.em, f.ids[i])
	return ctrl
}

func (f *gestureFixture) run(frames int) {
	for i := 0; i < frames; i++ {
		f.system.Update(tick)
	}
}

func TestGestureSystem_DragAgainstNeighborThenSnapBack(t *testing.T) {
	f := newGestureFixture(t)

	f.input.press(175, 300)
	f.run(1)
	require.Equal(t, f.ids[0], f.system.Captured())
	assert.True(t, f.lock.Busy())

	// 拖到 x=2.0，被右侧邻居槽位挡在 -0.75
	f.input.hold(600, 300)
	f.run(1)
	assert.InDelta(t, -0.75, f.transform(0).Position.X(), 1e-12)

	f.input.release()
	f.run(1)
	assert.Equal(t, ecs.InvalidEntity, f.system.Captured())
	assert.Equal(t, gesture.StateSnappingBack, f.controller(0).State())
	assert.True(t, f.lock.Busy())

	f.input.idle()
	f.run(60)
	assert.InDelta(t, -2.25, f.transform(0).Position.X(), 1e-12)
	assert.False(t, f.lock.Busy())
	assert.Equal(t, gesture.StateIdle, f.controller(0).State())
}

func TestGestureSystem_ClickLeftSideFlips(t *testing.T) {
	f := newGestureFixture(t)

	// 卡片 0 中心在 175，点击其左半边
	f.input.press(160, 300)
	f.run(1)
	f.input.release()
	f.run(1)

	assert.Equal(t, gesture.StateFlippingLeft, f.controller(0).State())
	assert.True(t, f.lock.Rotating())
	assert.False(t, f.lock.Busy())

	f.input.idle()
	f.run(60)
	assert.InDelta(t, math.Pi, f.transform(0).ZAngle(), 1e-9)
	assert.False(t, f.lock.Rotating())
	assert.InDelta(t, -2.25, f.transform(0).Position.X(), 1e-12)
}

func TestGestureSystem_ClickRightSideFlipsClockwise(t *testing.T) {
	f := newGestureFixture(t)

	f.input.press(640, 300)
	f.run(1)
	require.Equal(t, f.ids[3], f.system.Captured())
	f.input.release()
	f.run(1)
	assert.Equal(t, gesture.StateFlippingRight, f.controller(3).State())
	f.input.idle()
	f.run(60)

	assert.InDelta(t, -math.Pi, f.transform(3).ZAngle(), 1e-9)
}

func TestGestureSystem_PressRejectedWhileBusy(t *testing.T) {
	f := newGestureFixture(t)

	// 卡片 1 拖拽后松开，开始归位
	f.input.press(325, 300)
	f.run(1)
	f.input.hold(350, 300)
	f.run(20)
	f.input.release()
	f.run(1)
	require.True(t, f.lock.Busy())

	// 归位期间按下卡片 3：无任何效果
	before := *f.transform(3)
	f.input.press(625, 300)
	f.run(1)
	assert.Equal(t, ecs.InvalidEntity, f.system.Captured())
	assert.Equal(t, gesture.StateIdle, f.controller(3).State())

	f.input.hold(700, 300)
	f.run(1)
	f.input.release()
	f.run(1)
	assert.Equal(t, before, *f.transform(3))
	assert.Equal(t, gesture.StateIdle, f.controller(3).State())
}

func TestGestureSystem_PressOnEmptySpace(t *testing.T) {
	f := newGestureFixture(t)

	f.input.press(400, 300)
	f.run(1)
	assert.Equal(t, ecs.InvalidEntity, f.system.Captured())
	assert.False(t, f.lock.Busy())

	f.input.press(175, 50)
	f.run(1)
	assert.Equal(t, ecs.InvalidEntity, f.system.Captured())
}

func TestGestureSystem_LostReleaseStillEndsGesture(t *testing.T) {
	f := newGestureFixture(t)

	f.input.press(325, 300)
	f.run(1)
	require.Equal(t, f.ids[1], f.system.Captured())

	// 没有收到"刚松开"事件，但按键已不再按住
	f.input.idle()
	f.run(1)
	assert.Equal(t, ecs.InvalidEntity, f.system.Captured())
	assert.NotEqual(t, gesture.StatePressed, f.controller(1).State())
}

func TestGestureSystem_SlowPressIsDrag(t *testing.T) {
	f := newGestureFixture(t)

	f.input.press(475, 300)
	f.run(1)
	f.input.hold(475, 300)
	f.run(30) // 0.5 秒，超过点击阈值
	f.input.release()
	f.run(1)

	assert.Equal(t, gesture.StateSnappingBack, f.controller(2).State())
}

func TestGestureSystem_GameTimeAccumulates(t *testing.T) {
	f := newGestureFixture(t)
	f.run(120)
	assert.InDelta(t, 2.0, f.system.GameTime(), 1e-9)
}

func TestRenderSystem_DrawOrderPutsActiveLast(t *testing.T) {
	f := newGestureFixture(t)
	rs := NewRenderSystem(f.em, f.system.camera)

	assert.Equal(t, f.ids, rs.DrawOrder())

	f.input.press(325, 300)
	f.run(1)
	order := rs.DrawOrder()
	require.Len(t, order, 4)
	assert.Equal(t, f.ids[1], order[3])
}
