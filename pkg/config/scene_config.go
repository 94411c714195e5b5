package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 表示场景配置不合法（如数量 <= 0）
// 场景无法在此配置下搭建，调用方应直接失败
var ErrInvalidConfig = errors.New("invalid scene config")

// DefaultPalette 默认调色板：红、绿、蓝、黄
var DefaultPalette = []string{"#ff0000", "#00ff00", "#0000ff", "#ffeb04"}

// DefaultBackground 默认背景色
const DefaultBackground = "#282c34"

// SceneConfig 场景配置
// 通过 YAML 文件加载，未出现的字段保留默认值
type SceneConfig struct {
	// Count 卡片数量
	Count int `yaml:"count"`

	// Spacing 相邻槽位中心间距（世界单位）
	Spacing float64 `yaml:"spacing"`

	// Palette 卡片着色，按索引循环使用（"#rrggbb" 或 "#rrggbbaa"）
	Palette []string `yaml:"palette"`

	// PixelsPerUnit 世界单位到像素的缩放
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"`

	// Background 背景色
	Background string `yaml:"background"`
}

// DefaultSceneConfig 返回默认场景配置
func DefaultSceneConfig() *SceneConfig {
	palette := make([]string, len(DefaultPalette))
	copy(palette, DefaultPalette)
	return &SceneConfig{
		Count:         DefaultItemCount,
		Spacing:       DefaultItemSpacing,
		Palette:       palette,
		PixelsPerUnit: DefaultPixelsPerUnit,
		Background:    DefaultBackground,
	}
}

// LoadSceneConfig 从YAML文件加载场景配置
// 文件中缺省的字段使用默认值，加载后立即校验
func LoadSceneConfig(filepath string) (*SceneConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config file %s: %w", filepath, err)
	}

	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("scene config %s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseSceneConfig 解析YAML数据并校验
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config YAML: %w", err)
	}

	// 显式写成空列表时退回默认调色板
	if len(cfg.Palette) == 0 {
		cfg.Palette = append([]string(nil), DefaultPalette...)
	}
	if cfg.Background == "" {
		cfg.Background = DefaultBackground
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验场景配置
// 数量、间距、缩放必须为正，颜色必须可解析
func (c *SceneConfig) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidConfig, c.Count)
	}
	if !isPositiveFinite(c.Spacing) {
		return fmt.Errorf("%w: spacing must be positive, got %v", ErrInvalidConfig, c.Spacing)
	}
	if !isPositiveFinite(c.PixelsPerUnit) {
		return fmt.Errorf("%w: pixelsPerUnit must be positive, got %v", ErrInvalidConfig, c.PixelsPerUnit)
	}
	if _, err := c.PaletteColors(); err != nil {
		return err
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	return nil
}

// PaletteColors 将调色板解析为颜色列表
func (c *SceneConfig) PaletteColors() ([]color.RGBA, error) {
	if len(c.Palette) == 0 {
		return nil, fmt.Errorf("%w: palette is empty", ErrInvalidConfig)
	}
	colors := make([]color.RGBA, 0, len(c.Palette))
	for i, s := range c.Palette {
		clr, err := ParseHexColor(s)
		if err != nil {
			return nil, fmt.Errorf("%w: palette[%d]: %v", ErrInvalidConfig, i, err)
		}
		colors = append(colors, clr)
	}
	return colors, nil
}

// BackgroundColor 返回解析后的背景色，解析失败时返回默认背景色
func (c *SceneConfig) BackgroundColor() color.RGBA {
	clr, err := ParseHexColor(c.Background)
	if err != nil {
		clr, _ = ParseHexColor(DefaultBackground)
	}
	return clr
}

// ParseHexColor 解析 "#rrggbb" 或 "#rrggbbaa" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: expected #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
