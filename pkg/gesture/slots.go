package gesture

import (
	"fmt"
	"math"

	"github.com/decker502/flipdeck/pkg/config"
	"github.com/go-gl/mathgl/mgl64"
)

// SlotLayout 保存所有卡片的静止槽位
// 创建后不可修改，所有控制器共享同一个指针，用于查询左右相邻槽位
type SlotLayout struct {
	positions []mgl64.Vec3
}

// SlotX 计算第 index 个槽位的 X 坐标
// 整行卡片以原点为中心：x = ((index + 0.5) - count/2) * spacing
func SlotX(index, count int, spacing float64) float64 {
	return ((float64(index) + 0.5) - float64(count)/2) * spacing
}

// NewSlotLayout 计算 count 个等距水平槽位
// count <= 0 或 spacing 非正时返回 config.ErrInvalidConfig
func NewSlotLayout(count int, spacing float64) (*SlotLayout, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be at least 1, got %d", config.ErrInvalidConfig, count)
	}
	if !(spacing > 0) || math.IsInf(spacing, 1) {
		return nil, fmt.Errorf("%w: spacing must be positive, got %v", config.ErrInvalidConfig, spacing)
	}

	positions := make([]mgl64.Vec3, count)
	for i := range positions {
		positions[i] = mgl64.Vec3{SlotX(i, count, spacing), 0, 0}
	}
	return &SlotLayout{positions: positions}, nil
}

// Len 返回槽位数量
func (s *SlotLayout) Len() int {
	return len(s.positions)
}

// Position 返回第 index 个槽位的静止位置
func (s *SlotLayout) Position(index int) mgl64.Vec3 {
	return s.positions[index]
}

// Positions 返回所有槽位的副本
func (s *SlotLayout) Positions() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(s.positions))
	copy(out, s.positions)
	return out
}

// LeftNeighbor 返回左侧相邻槽位的 X 坐标，最左侧卡片返回 false
func (s *SlotLayout) LeftNeighbor(index int) (float64, bool) {
	if index <= 0 {
		return 0, false
	}
	return s.positions[index-1].X(), true
}

// RightNeighbor 返回右侧相邻槽位的 X 坐标，最右侧卡片返回 false
func (s *SlotLayout) RightNeighbor(index int) (float64, bool) {
	if index >= len(s.positions)-1 {
		return 0, false
	}
	return s.positions[index+1].X(), true
}
