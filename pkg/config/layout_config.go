package config

// 布局配置常量
// 本文件定义了窗口、世界坐标映射以及卡片默认尺寸

// 窗口配置
const (
	// GameWindowWidth 游戏逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 游戏逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Flipdeck"
)

// 世界坐标配置
// 世界坐标原点位于屏幕中心，Y 轴向上，单位为"世界单位"
const (
	// DefaultPixelsPerUnit 每个世界单位对应的像素数
	// 800px 宽的窗口可见范围为 [-4, 4]
	DefaultPixelsPerUnit = 100.0
)

// 卡片配置
const (
	// DefaultItemCount 默认生成的卡片数量
	DefaultItemCount = 4

	// DefaultItemSpacing 相邻卡片槽位中心之间的间距（世界单位）
	DefaultItemSpacing = 1.5

	// DefaultItemWidth 卡片宽度（世界单位）
	// 小于 DefaultItemSpacing，保证静止时卡片之间留有空隙
	DefaultItemWidth = 1.0

	// DefaultItemHeight 卡片高度（世界单位）
	DefaultItemHeight = 1.4
)
