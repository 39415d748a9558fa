package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/uno-arena/internal/protocol"
)

// Icon constants
const (
	HostIcon  = "👑"
	BotIcon   = "🤖"
	ReadyIcon = "✅"
	WaitIcon  = "⏳"
	TurnIcon  = "▶"
)

// Lipgloss Styles - shared across online and offline modes
var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)

	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#CD0000")).Bold(true)
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")).Bold(true)
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("28")).Bold(true)
	blueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("27")).Bold(true)
	wildStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("93")).Bold(true)

	// Flip 暗面的牌统一用深色底
	darkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Bold(true)
)

// modeLabels 游戏模式的展示名
var modeLabels = map[string]string{
	"classic": "经典",
	"flip":    "翻转",
	"doubles": "双打",
	"speed":   "竞速",
	"nomercy": "无情",
}

// ModeLabel 返回模式的展示名，未知模式原样返回
func ModeLabel(mode string) string {
	if label, ok := modeLabels[mode]; ok {
		return label
	}
	return mode
}

// cardColorStyle 按颜色选择渲染样式
func cardColorStyle(color int, darkSide bool) lipgloss.Style {
	if darkSide {
		return darkStyle
	}
	switch color {
	case 0:
		return redStyle
	case 1:
		return yellowStyle
	case 2:
		return greenStyle
	case 3:
		return blueStyle
	}
	return wildStyle
}

// cardLabel 牌面的短标签，用于手牌行内展示
func cardLabel(value int) string {
	switch value {
	case 10:
		return "⊘"
	case 11:
		return "⇆"
	case 12:
		return "+2"
	case 13:
		return "★"
	case 14:
		return "+4"
	case 15:
		return "⊘⊘"
	case 16:
		return "⇆⇆"
	case 17:
		return "+5"
	}
	return string(rune('0' + value))
}

// RenderCard 渲染一张牌为带颜色的小方块
func RenderCard(info protocol.CardInfo, darkSide bool) string {
	label := cardLabel(info.Value)
	// 统一宽度为 4，标签居中
	pad := 4 - lipgloss.Width(label)
	left := pad / 2
	right := pad - left
	return cardColorStyle(info.Color, darkSide).Render(strings.Repeat(" ", left) + label + strings.Repeat(" ", right))
}

// RenderHand 渲染手牌行，cursor 指向的牌上方画选择标记。
// cursor 为 -1 时不渲染标记行
func RenderHand(hand []protocol.CardInfo, cursor int, darkSide bool) string {
	if len(hand) == 0 {
		return hintStyle.Render("（没有手牌）")
	}

	var marks, cards []string
	for i, c := range hand {
		mark := "    "
		if i == cursor {
			mark = " ▼  "
		}
		marks = append(marks, mark)
		cards = append(cards, RenderCard(c, darkSide))
	}

	row := strings.Join(cards, " ")
	if cursor < 0 {
		return row
	}
	return strings.Join(marks, " ") + "\n" + row
}

// directionLabel 回合方向展示
func directionLabel(direction int) string {
	if direction < 0 {
		return "⟲ 逆向"
	}
	return "⟳ 正向"
}

// truncateName 截断过长的昵称
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}
