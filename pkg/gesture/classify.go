package gesture

import "github.com/decker502/flipdeck/pkg/config"

// Gesture 是一次按下-松开的判定结果
type Gesture int

const (
	// GestureNone 松开未被处理（控制器不在按下状态）
	GestureNone Gesture = iota
	// GestureClick 点击：触发翻转
	GestureClick
	// GestureDrag 拖拽：触发归位
	GestureDrag
)

func (g Gesture) String() string {
	switch g {
	case GestureClick:
		return "click"
	case GestureDrag:
		return "drag"
	default:
		return "none"
	}
}

// Classify 根据按压时长和卡片偏离槽位的距离判定手势
// 两个条件同时满足阈值（含边界）才算点击
func Classify(elapsed, distance float64) Gesture {
	if elapsed <= config.ClickThresholdTime && distance <= config.DragThresholdDistance {
		return GestureClick
	}
	return GestureDrag
}

// Side 表示水平方向上的一侧
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// SideOf 判断 x 位于 reference 的哪一侧，恰好相等视为右侧
func SideOf(x, reference float64) Side {
	if x < reference {
		return SideLeft
	}
	return SideRight
}
