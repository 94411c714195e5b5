//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，
// 仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.flipdeck -o build/android/flipdeck.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Flipdeck.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/flipdeck/pkg/app"
	"github.com/decker502/flipdeck/pkg/config"
)

func init() {
	// 移动端没有命令行参数，使用内置默认场景
	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
		Scene:   config.DefaultSceneConfig(),
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
