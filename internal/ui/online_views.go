package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// --- 视图渲染 ---

func (m *OnlineModel) connectingView() string {
	if m.error != "" {
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(errorStyle.Render(m.error))
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render("🔌 正在连接服务器...")
}

func (m *OnlineModel) lobbyView() string {
	var sb strings.Builder

	title := titleStyle("🃏 UNO Arena")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	if m.playerName != "" {
		welcome := fmt.Sprintf("欢迎, %s!", m.playerName)
		if m.latency > 0 {
			welcome += fmt.Sprintf("  (延迟 %dms)", m.latency)
		}
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, welcome))
		sb.WriteString("\n\n")
	}

	var items []string
	items = append(items, "请选择:", "")
	for i, item := range menuItems {
		line := fmt.Sprintf("  %d. %s", i+1, item)
		if i == m.lobby.selectedIndex {
			line = selectStyle.Render("> " + line[2:])
		}
		items = append(items, line)
	}
	menu := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, menu))
	sb.WriteString("\n\n")

	m.input.Placeholder = "输入选项 (1-4) 或房间号"
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.input.View()))

	if m.error != "" {
		sb.WriteString("\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, errorStyle.Render(m.error)))
	}

	return sb.String()
}

func (m *OnlineModel) roomListView() string {
	var sb strings.Builder
	sb.WriteString("🏠 房间列表\n")
	sb.WriteString(strings.Repeat("─", 44) + "\n")

	if len(m.lobby.availableRooms) == 0 {
		sb.WriteString("暂时没有可加入的房间\n")
	} else {
		sb.WriteString(fmt.Sprintf("%-10s %-8s %s\n", "房间号", "模式", "人数"))
		sb.WriteString(strings.Repeat("─", 44) + "\n")
		for i, room := range m.lobby.availableRooms {
			line := fmt.Sprintf("%-10s %-8s %d/%d",
				room.RoomCode, ModeLabel(room.Mode), room.PlayerCount, room.MaxPlayers)
			if i == m.lobby.selectedRoomIdx {
				line = selectStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			sb.WriteString(line + "\n")
		}
	}

	sb.WriteString("\n" + hintStyle.Render("↑/↓ 选择  Enter 加入  ESC 返回"))
	return boxStyle.Render(sb.String())
}

// waitingView 房间等待界面，联机/离线模式共用
func (g *GameModel) waitingView(selfID string, latency int64) string {
	var sb strings.Builder

	header := fmt.Sprintf("🏠 房间 %s  [%s 模式]", g.roomCode, ModeLabel(g.state.Mode))
	if latency > 0 {
		header += fmt.Sprintf("  延迟 %dms", latency)
	}
	sb.WriteString(titleStyle(header))
	sb.WriteString("\n\n")

	sb.WriteString(g.renderSeats(selfID, false))
	sb.WriteString("\n")

	for _, event := range g.events {
		sb.WriteString(hintStyle.Render("· "+event) + "\n")
	}

	self := g.playerByID(selfID)
	hints := []string{"R 准备/取消"}
	if self != nil && self.IsHost {
		hints = append(hints, "B 添加机器人", "S 开始游戏")
	}
	hints = append(hints, "ESC 离开房间")
	sb.WriteString("\n" + hintStyle.Render(strings.Join(hints, "  ")))

	return boxStyle.Render(sb.String())
}

// renderSeats 渲染座位列表
func (g *GameModel) renderSeats(selfID string, inGame bool) string {
	var sb strings.Builder
	for _, p := range g.state.Players {
		var tags []string
		if p.IsHost {
			tags = append(tags, HostIcon)
		}
		if p.IsBot {
			tags = append(tags, BotIcon)
		}

		name := truncateName(p.Name, 12)
		if p.ID == selfID {
			name += " (你)"
		}

		if inGame {
			turn := "  "
			if p.ID == g.state.CurrentPlayer {
				turn = TurnIcon + " "
			}
			uno := ""
			if p.OneCardLeft {
				uno = "  🚨 UNO!"
			}
			sb.WriteString(fmt.Sprintf("%s%-18s %s 剩 %d 张%s\n",
				turn, name, strings.Join(tags, ""), p.CardsCount, uno))
		} else {
			ready := WaitIcon
			if p.Ready {
				ready = ReadyIcon
			}
			sb.WriteString(fmt.Sprintf("  %-18s %s %s\n", name, strings.Join(tags, ""), ready))
		}
	}
	return sb.String()
}

// tableView 牌桌界面，联机/离线模式共用
func (g *GameModel) tableView(selfID string, errText string) string {
	var sb strings.Builder

	// 顶栏：房间、模式、方向、罚抽
	header := fmt.Sprintf("🃏 %s  [%s]  %s  牌库 %d",
		g.roomCode, ModeLabel(g.state.Mode), directionLabel(g.state.Direction), g.state.DrawPileSize)
	if g.state.DarkSide {
		header += "  🌑 暗面"
	}
	if g.state.PendingDraw > 0 {
		header += errorStyle.Render(fmt.Sprintf("  ⚠️ 罚抽 +%d", g.state.PendingDraw))
	}
	sb.WriteString(titleStyle(header))
	sb.WriteString("\n\n")

	// 座位区
	sb.WriteString(g.renderSeats(selfID, true))
	sb.WriteString("\n")

	// 当前生效牌
	if g.state.CurrentCard != nil {
		sb.WriteString("当前牌: " + RenderCard(*g.state.CurrentCard, g.state.DarkSide))
		sb.WriteString("\n\n")
	}

	// 事件区
	for _, event := range g.events {
		sb.WriteString(hintStyle.Render("· "+event) + "\n")
	}
	if g.lastDrawn != nil {
		sb.WriteString("刚抽到: " + RenderCard(*g.lastDrawn, g.state.DarkSide) + "\n")
	}
	sb.WriteString("\n")

	// 手牌区
	sb.WriteString(fmt.Sprintf("你的手牌 (%d 张):\n", len(g.state.Hand)))
	sb.WriteString(RenderHand(g.state.Hand, g.cursor, g.state.DarkSide))
	sb.WriteString("\n\n")

	// 操作提示
	hints := []string{"←/→ 选牌", "Enter 出牌", "D 抽牌"}
	if g.state.Mode == "flip" {
		hints = append(hints, "F 翻转牌组")
	}
	hints = append(hints, "Q 离开")
	sb.WriteString(hintStyle.Render(strings.Join(hints, "  ")))

	if errText != "" {
		sb.WriteString("\n" + errorStyle.Render(errText))
	}

	return boxStyle.Render(sb.String())
}

// gameOverView 终局界面，联机/离线模式共用，hint 为底部操作提示
func (g *GameModel) gameOverView(selfID, hint string) string {
	var sb strings.Builder

	if g.result != nil && g.result.Aborted {
		sb.WriteString(titleStyle("🪦 对局异常结束"))
		sb.WriteString("\n\n牌库耗尽，本局流局。\n")
	} else if g.result != nil {
		if g.result.WinnerID == selfID {
			sb.WriteString(titleStyle("🎉 你赢了！"))
		} else {
			sb.WriteString(titleStyle(fmt.Sprintf("🏆 %s 获胜", g.result.WinnerName)))
		}
		sb.WriteString("\n\n")

		// 各家剩余手牌
		for _, hand := range g.result.Hands {
			name := truncateName(hand.PlayerName, 12)
			if hand.PlayerID == selfID {
				name += " (你)"
			}
			sb.WriteString(fmt.Sprintf("%-18s ", name))
			if len(hand.Cards) == 0 {
				sb.WriteString("🏅 清空手牌")
			} else {
				var cards []string
				for _, c := range hand.Cards {
					cards = append(cards, RenderCard(c, false))
				}
				sb.WriteString(strings.Join(cards, " "))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n" + hintStyle.Render(hint))
	return boxStyle.Render(sb.String())
}
