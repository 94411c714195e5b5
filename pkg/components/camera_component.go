package components

// CameraComponent 描述正交镜头
// 镜头中心对准世界坐标 (CenterX, CenterY)，屏幕尺寸为逻辑像素
type CameraComponent struct {
	// CenterX 屏幕中心对应的世界坐标X
	CenterX float64

	// CenterY 屏幕中心对应的世界坐标Y
	CenterY float64

	// PixelsPerUnit 每个世界单位对应的像素数
	PixelsPerUnit float64

	// ScreenWidth 逻辑屏幕宽度（像素）
	ScreenWidth float64

	// ScreenHeight 逻辑屏幕高度（像素）
	ScreenHeight float64
}
