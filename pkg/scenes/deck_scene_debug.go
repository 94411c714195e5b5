package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/flipdeck/pkg/ecs"
	"github.com/decker502/flipdeck/pkg/gesture"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawDebug 绘制槽位标记和交互状态（F3 切换）
func (s *DeckScene) drawDebug(screen *ebiten.Image) {
	if !s.showDebug {
		return
	}

	// 槽位标记
	markColor := color.RGBA{R: 255, G: 255, B: 0, A: 160}
	for i := 0; i < s.slots.Len(); i++ {
		x, y := s.cameraSystem.WorldToScreen(s.slots.Position(i))
		vector.StrokeLine(screen, float32(x), float32(y)-90, float32(x), float32(y)+90, 1, markColor, false)
	}

	ebitenutil.DebugPrint(screen, s.debugText())
}

// debugText 汇总时钟、锁状态和每张卡片的状态
func (s *DeckScene) debugText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "t=%.2fs busy=%v rotating=%v\n", s.gestureSystem.GameTime(), s.lock.Busy(), s.lock.Rotating())

	for _, id := range s.items {
		ctrl, ok := ecs.GetComponent[*gesture.Controller](s.entityManager, id)
		if !ok {
			continue
		}
		tf := ctrl.Transform()
		fmt.Fprintf(&b, "#%d x=%+.2f %s", ctrl.Index(), tf.Position.X(), ctrl.State())
		if next, ok := ctrl.NextNeighbor(); ok && ctrl.IsHeld() {
			fmt.Fprintf(&b, " -> #%d", next)
		}
		b.WriteString("\n")
	}
	return b.String()
}
