package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/flipdeck/pkg/config"
	"github.com/decker502/flipdeck/pkg/ecs"
	"github.com/decker502/flipdeck/pkg/entities"
	"github.com/decker502/flipdeck/pkg/gesture"
	"github.com/decker502/flipdeck/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// DeckScene 是唯一的游戏场景：一行可拖拽、可点击翻转的卡片
//
// 场景持有共享的交互锁和槽位列表，并在创建时一次性生成所有卡片。
type DeckScene struct {
	entityManager *ecs.EntityManager
	lock          *gesture.Lock
	slots         *gesture.SlotLayout
	items         []ecs.EntityID

	cameraSystem  *systems.CameraSystem
	gestureSystem *systems.GestureSystem
	renderSystem  *systems.RenderSystem

	background color.RGBA
	showDebug  bool
}

// DeckSceneOptions 场景的可替换依赖，零值表示使用默认实现
type DeckSceneOptions struct {
	// Input 指针输入，nil 时使用 Ebitengine 鼠标
	Input systems.PointerInput
	// Factory 卡片工厂，nil 时使用默认卡片贴图
	Factory entities.ItemFactory
}

// NewDeckScene 按配置创建场景
func NewDeckScene(cfg *config.SceneConfig) (*DeckScene, error) {
	return NewDeckSceneWithOptions(cfg, DeckSceneOptions{})
}

// NewDeckSceneWithOptions 按配置和自定义依赖创建场景（用于测试）
func NewDeckSceneWithOptions(cfg *config.SceneConfig, opts DeckSceneOptions) (*DeckScene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.PaletteColors()
	if err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	camera := systems.NewCameraSystem(em, cfg.PixelsPerUnit, config.GameWindowWidth, config.GameWindowHeight)

	var gestureSystem *systems.GestureSystem
	if opts.Input != nil {
		gestureSystem = systems.NewGestureSystemWithInput(em, camera, opts.Input)
	} else {
		gestureSystem = systems.NewGestureSystem(em, camera)
	}

	factory := opts.Factory
	if factory == nil {
		factory = entities.NewCardFactory(config.DefaultItemWidth, config.DefaultItemHeight)
	}

	lock := gesture.NewLock()
	items, slots, err := entities.NewSpawner(em, factory, palette, lock, camera).Spawn(cfg.Count, cfg.Spacing)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn items: %w", err)
	}
	log.Printf("[DeckScene] 场景创建完成: %d 张卡片, 间距 %.2f", len(items), cfg.Spacing)

	return &DeckScene{
		entityManager: em,
		lock:          lock,
		slots:         slots,
		items:         items,
		cameraSystem:  camera,
		gestureSystem: gestureSystem,
		renderSystem:  systems.NewRenderSystem(em, camera),
		background:    cfg.BackgroundColor(),
	}, nil
}

// Update 更新场景逻辑
func (s *DeckScene) Update(deltaTime float64) {
	s.gestureSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *DeckScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.renderSystem.Draw(screen)
	s.drawDebug(screen)
}

// ToggleDebug 切换调试信息显示
func (s *DeckScene) ToggleDebug() bool {
	s.showDebug = !s.showDebug
	return s.showDebug
}

// EntityManager 返回场景的实体管理器
func (s *DeckScene) EntityManager() *ecs.EntityManager { return s.entityManager }

// Lock 返回共享交互锁
func (s *DeckScene) Lock() *gesture.Lock { return s.lock }

// Slots 返回共享槽位列表
func (s *DeckScene) Slots() *gesture.SlotLayout { return s.slots }

// Items 返回按槽位顺序排列的卡片实体
func (s *DeckScene) Items() []ecs.EntityID { return s.items }
