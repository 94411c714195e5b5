package main

import (
	"flag"
	"log"

	"github.com/decker502/flipdeck/pkg/app"
	"github.com/decker502/flipdeck/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "场景配置文件路径（YAML），为空时使用内置配置")
	count      = flag.Int("count", 0, "卡片数量，覆盖配置文件")
	spacing    = flag.Float64("spacing", 0, "槽位间距（世界单位），覆盖配置文件")
)

func main() {
	flag.Parse()

	sceneConfig, err := loadSceneConfig()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Scene:   sceneConfig,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

// loadSceneConfig 读取配置文件（或内置配置），再应用命令行覆盖
func loadSceneConfig() (*config.SceneConfig, error) {
	var (
		cfg *config.SceneConfig
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadSceneConfig(*configPath)
	} else {
		cfg, err = config.ParseSceneConfig(defaultSceneYAML)
	}
	if err != nil {
		return nil, err
	}

	// 只有显式传入的参数才覆盖配置
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "count":
			cfg.Count = *count
		case "spacing":
			cfg.Spacing = *spacing
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
