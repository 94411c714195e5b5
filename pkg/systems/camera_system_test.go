package systems

import (
	"math"
	"testing"

	"github.com/decker502/flipdeck/pkg/components"
	"github.com/decker502/flipdeck/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// TestCameraSystem_NewCameraSystem 测试镜头系统的创建
func TestCameraSystem_NewCameraSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCameraSystem(em, 100, 800, 600)

	if cs.cameraEntity == ecs.InvalidEntity {
		t.Fatal("Camera entity not created")
	}

	cam, ok := ecs.GetComponent[*components.CameraComponent](em, cs.cameraEntity)
	if !ok {
		t.Fatal("CameraComponent not added to camera entity")
	}
	if cam.PixelsPerUnit != 100 || cam.ScreenWidth != 800 || cam.ScreenHeight != 600 {
		t.Errorf("unexpected camera %+v", cam)
	}
	if cam.CenterX != 0 || cam.CenterY != 0 {
		t.Errorf("camera should be centred on the origin, got (%.2f, %.2f)", cam.CenterX, cam.CenterY)
	}
}

// TestCameraSystem_ScreenToWorld 测试屏幕坐标到世界坐标的转换
func TestCameraSystem_ScreenToWorld(t *testing.T) {
	cs := NewCameraSystem(ecs.NewEntityManager(), 100, 800, 600)

	tests := []struct {
		name   string
		sx, sy float64
		want   mgl64.Vec3
	}{
		{"屏幕中心", 400, 300, mgl64.Vec3{0, 0, 0}},
		{"左上角", 0, 0, mgl64.Vec3{-4, 3, 0}},
		{"右下角", 800, 600, mgl64.Vec3{4, -3, 0}},
		{"第一张卡片", 175, 300, mgl64.Vec3{-2.25, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cs.ScreenToWorld(tt.sx, tt.sy)
			if !got.ApproxEqualThreshold(tt.want, 1e-12) {
				t.Errorf("ScreenToWorld(%v, %v) = %v, want %v", tt.sx, tt.sy, got, tt.want)
			}
		})
	}
}

// TestCameraSystem_RoundTrip 测试坐标转换往返一致
func TestCameraSystem_RoundTrip(t *testing.T) {
	cs := NewCameraSystem(ecs.NewEntityManager(), 64, 1024, 768)
	cs.Camera().CenterX = 1.5
	cs.Camera().CenterY = -0.5

	for _, p := range []mgl64.Vec3{{0, 0, 0}, {-3.2, 1.1, 0}, {7, -2, 0}} {
		sx, sy := cs.WorldToScreen(p)
		back := cs.ScreenToWorld(sx, sy)
		if !back.ApproxEqualThreshold(p, 1e-9) {
			t.Errorf("round trip %v -> (%v, %v) -> %v", p, sx, sy, back)
		}
	}
}

// TestCameraSystem_ViewportEdges 测试视口边缘
func TestCameraSystem_ViewportEdges(t *testing.T) {
	cs := NewCameraSystem(ecs.NewEntityManager(), 100, 800, 600)

	left, right := cs.ViewportEdges()
	if math.Abs(left+4) > 1e-12 || math.Abs(right-4) > 1e-12 {
		t.Errorf("ViewportEdges() = (%v, %v), want (-4, 4)", left, right)
	}

	// 屏幕尺寸变化后边缘随之变化
	cs.SetScreenSize(400, 300)
	left, right = cs.ViewportEdges()
	if math.Abs(left+2) > 1e-12 || math.Abs(right-2) > 1e-12 {
		t.Errorf("ViewportEdges() after resize = (%v, %v), want (-2, 2)", left, right)
	}
}
