package config

// 手势配置常量
// 点击/拖拽判定阈值以及翻转、归位动画参数
const (
	// ClickThresholdTime 点击判定的最长按压时间（秒）
	// 按下到松开的时间不超过此值才可能被判定为点击
	ClickThresholdTime = 0.2

	// DragThresholdDistance 点击判定的最大位移（世界单位）
	// 松开时卡片距其槽位的距离不超过此值才可能被判定为点击
	DragThresholdDistance = 0.1

	// FlipDuration 翻转动画时长（秒）
	FlipDuration = 0.5

	// FlipAngleDegrees 单次翻转角度（度），绕 Z 轴
	FlipAngleDegrees = 180.0

	// SnapBackDuration 拖拽松开后归位动画时长（秒）
	SnapBackDuration = 0.5
)
