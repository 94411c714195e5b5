package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TransformComponent 存储实体在世界坐标中的位置和朝向
// 世界坐标原点位于屏幕中心，Y 轴向上，单位为世界单位
type TransformComponent struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform 创建位于 position、朝向为 rotation 的变换
func NewTransform(position mgl64.Vec3, rotation mgl64.Quat) *TransformComponent {
	return &TransformComponent{Position: position, Rotation: rotation}
}

// ZAngle 返回朝向绕 Z 轴的转角（弧度，逆时针为正）
// 只对纯 Z 轴旋转有意义，这是本项目唯一使用的旋转
func (t *TransformComponent) ZAngle() float64 {
	return 2 * math.Atan2(t.Rotation.V.Z(), t.Rotation.W)
}
