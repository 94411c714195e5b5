package components

// CollisionComponent 定义实体的点击检测边界框
// 尺寸和偏移均为世界单位，偏移相对于实体位置
type CollisionComponent struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// Contains 检测世界坐标点 (px, py) 是否落在以 (x, y) 为中心的边界框内
// 边界框不随实体旋转，翻转 180° 后形状不变
func (c *CollisionComponent) Contains(x, y, px, py float64) bool {
	cx := x + c.OffsetX
	cy := y + c.OffsetY
	halfW := c.Width / 2
	halfH := c.Height / 2
	return px >= cx-halfW && px <= cx+halfW &&
		py >= cy-halfH && py <= cy+halfH
}
