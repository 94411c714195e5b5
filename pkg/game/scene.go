package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// DebugOverlay 是一个可选接口，支持调试信息显示开关
type DebugOverlay interface {
	// ToggleDebug 切换调试信息显示，返回切换后的状态
	ToggleDebug() bool
}
