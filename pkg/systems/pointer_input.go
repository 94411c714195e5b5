package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerInput 指针输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	// CursorPosition 返回指针的屏幕坐标（逻辑像素）
	CursorPosition() (int, int)
	// IsPointerPressed 指针当前是否按住
	IsPointerPressed() bool
	// IsPointerJustPressed 指针是否在本帧刚按下
	IsPointerJustPressed() bool
	// IsPointerJustReleased 指针是否在本帧刚松开
	IsPointerJustReleased() bool
}

// ebitenPointerInput Ebitengine 默认实现
//
// 触摸优先：跟踪第一根按下的手指直到它抬起，其余手指忽略；
// 没有触摸时使用鼠标左键。
type ebitenPointerInput struct {
	touchID  ebiten.TouchID
	touching bool
}

// NewEbitenPointerInput 创建鼠标/触摸指针输入
func NewEbitenPointerInput() PointerInput {
	return &ebitenPointerInput{}
}

// trackTouch 更新被跟踪的手指
// 手指抬起后的下一帧才清除，保证松开的那一帧仍能读到位置
func (e *ebitenPointerInput) trackTouch() {
	if e.touching && inpututil.TouchPressDuration(e.touchID) == 0 && !inpututil.IsTouchJustReleased(e.touchID) {
		e.touching = false
	}
	if e.touching {
		return
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		e.touchID = ids[0]
		e.touching = true
	}
}

func (e *ebitenPointerInput) CursorPosition() (int, int) {
	e.trackTouch()
	if e.touching {
		if inpututil.IsTouchJustReleased(e.touchID) {
			return inpututil.TouchPositionInPreviousTick(e.touchID)
		}
		return ebiten.TouchPosition(e.touchID)
	}
	return ebiten.CursorPosition()
}

func (e *ebitenPointerInput) IsPointerPressed() bool {
	e.trackTouch()
	if e.touching {
		return inpututil.TouchPressDuration(e.touchID) > 0
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (e *ebitenPointerInput) IsPointerJustPressed() bool {
	e.trackTouch()
	if e.touching {
		return inpututil.TouchPressDuration(e.touchID) == 1
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (e *ebitenPointerInput) IsPointerJustReleased() bool {
	e.trackTouch()
	if e.touching {
		return inpututil.IsTouchJustReleased(e.touchID)
	}
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}
