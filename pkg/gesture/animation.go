package gesture

import (
	"github.com/decker502/flipdeck/pkg/components"
	"github.com/go-gl/mathgl/mgl64"
)

// AnimationStatus 表示动画单步推进后的状态
type AnimationStatus int

const (
	// AnimationInProgress 动画仍在进行，下一帧继续推进
	AnimationInProgress AnimationStatus = iota
	// AnimationDone 动画已结束，目标值已精确写入
	AnimationDone
)

// Animation 是逐帧推进的动画
// 宿主每帧调用一次 Advance，直到返回 AnimationDone
type Animation interface {
	Advance(dt float64) AnimationStatus
}

// FlipAnimation 绕 Z 轴的翻转动画
// 从起始朝向线性插值到 起始朝向 × Rz(angle)，只修改旋转
type FlipAnimation struct {
	transform *components.TransformComponent
	start     mgl64.Quat
	end       mgl64.Quat
	elapsed   float64
	duration  float64
}

// NewFlipAnimation 以变换的当前朝向为起点创建翻转动画
// angleDegrees 为正表示逆时针
func NewFlipAnimation(tf *components.TransformComponent, angleDegrees, duration float64) *FlipAnimation {
	start := tf.Rotation
	delta := mgl64.QuatRotate(mgl64.DegToRad(angleDegrees), mgl64.Vec3{0, 0, 1})
	return &FlipAnimation{
		transform: tf,
		start:     start,
		end:       start.Mul(delta),
		duration:  duration,
	}
}

// Target 返回翻转结束时的朝向
func (a *FlipAnimation) Target() mgl64.Quat {
	return a.end
}

// Advance 推进一帧
// 时间用尽前按 elapsed/duration 插值，用尽后精确写入目标朝向
func (a *FlipAnimation) Advance(dt float64) AnimationStatus {
	if a.elapsed >= a.duration {
		a.transform.Rotation = a.end
		return AnimationDone
	}

	a.transform.Rotation = mgl64.QuatNlerp(a.start, a.end, a.elapsed/a.duration)
	a.elapsed += dt
	return AnimationInProgress
}

// SnapBackAnimation 拖拽松开后回到槽位的动画
//
// 每帧从"当前位置"向目标插值，系数为 elapsed/duration，
// 而不是从起点做一次性插值，因此呈现先快后慢的收敛效果，且与帧率相关。
type SnapBackAnimation struct {
	transform *components.TransformComponent
	target    mgl64.Vec3
	elapsed   float64
	duration  float64
}

// NewSnapBackAnimation 创建归位动画
func NewSnapBackAnimation(tf *components.TransformComponent, target mgl64.Vec3, duration float64) *SnapBackAnimation {
	return &SnapBackAnimation{
		transform: tf,
		target:    target,
		duration:  duration,
	}
}

// Advance 推进一帧
func (a *SnapBackAnimation) Advance(dt float64) AnimationStatus {
	if a.elapsed >= a.duration {
		a.transform.Position = a.target
		return AnimationDone
	}

	a.transform.Position = lerpVec3(a.transform.Position, a.target, a.elapsed/a.duration)
	a.elapsed += dt
	return AnimationInProgress
}

func lerpVec3(from, to mgl64.Vec3, t float64) mgl64.Vec3 {
	return from.Add(to.Sub(from).Mul(t))
}
