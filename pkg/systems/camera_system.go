package systems

import (
	"github.com/decker502/flipdeck/pkg/components"
	"github.com/decker502/flipdeck/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// CameraSystem 管理正交镜头，负责世界坐标与屏幕坐标的互相转换
//
// 世界坐标：原点在镜头中心，Y 轴向上，单位为世界单位
// 屏幕坐标：原点在左上角，Y 轴向下，单位为逻辑像素
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID // 镜头实体ID
}

// NewCameraSystem 创建镜头系统，镜头中心对准世界原点
func NewCameraSystem(em *ecs.EntityManager, pixelsPerUnit, screenWidth, screenHeight float64) *CameraSystem {
	cs := &CameraSystem{entityManager: em}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		PixelsPerUnit: pixelsPerUnit,
		ScreenWidth:   screenWidth,
		ScreenHeight:  screenHeight,
	})
	return cs
}

// Camera 返回镜头组件
func (cs *CameraSystem) Camera() *components.CameraComponent {
	cam, _ := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	return cam
}

// SetScreenSize 更新逻辑屏幕尺寸
func (cs *CameraSystem) SetScreenSize(width, height float64) {
	if cam := cs.Camera(); cam != nil {
		cam.ScreenWidth = width
		cam.ScreenHeight = height
	}
}

// ScreenToWorld 将屏幕坐标转换为世界坐标（Z 为 0）
func (cs *CameraSystem) ScreenToWorld(screenX, screenY float64) mgl64.Vec3 {
	cam := cs.Camera()
	if cam == nil || cam.PixelsPerUnit == 0 {
		return mgl64.Vec3{}
	}
	return mgl64.Vec3{
		cam.CenterX + (screenX-cam.ScreenWidth/2)/cam.PixelsPerUnit,
		cam.CenterY - (screenY-cam.ScreenHeight/2)/cam.PixelsPerUnit,
		0,
	}
}

// WorldToScreen 将世界坐标转换为屏幕坐标
func (cs *CameraSystem) WorldToScreen(world mgl64.Vec3) (float64, float64) {
	cam := cs.Camera()
	if cam == nil {
		return 0, 0
	}
	return cam.ScreenWidth/2 + (world.X()-cam.CenterX)*cam.PixelsPerUnit,
		cam.ScreenHeight/2 - (world.Y()-cam.CenterY)*cam.PixelsPerUnit
}

// ViewportEdges 返回屏幕左右边缘对应的世界坐标X
func (cs *CameraSystem) ViewportEdges() (float64, float64) {
	cam := cs.Camera()
	if cam == nil {
		return 0, 0
	}
	return cs.ScreenToWorld(0, 0).X(), cs.ScreenToWorld(cam.ScreenWidth, 0).X()
}

// PixelsPerUnit 返回世界单位到像素的缩放
func (cs *CameraSystem) PixelsPerUnit() float64 {
	if cam := cs.Camera(); cam != nil {
		return cam.PixelsPerUnit
	}
	return 0
}
