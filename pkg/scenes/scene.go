package scenes

import (
	"github.com/decker502/flipdeck/pkg/game"
)

// Scene 是 game.Scene 的别名，场景实现都应满足该接口
type Scene = game.Scene

var (
	_ Scene             = (*DeckScene)(nil)
	_ game.DebugOverlay = (*DeckScene)(nil)
)
