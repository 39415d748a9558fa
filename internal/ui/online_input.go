package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress 处理按键消息，返回是否已处理和命令
func (m *OnlineModel) handleKeyPress(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.client.Close()
		return true, tea.Quit
	case tea.KeyEsc:
		return m.handleEscKey()
	case tea.KeyUp:
		m.lobby.handleUpKey(m.phase)
		return true, nil
	case tea.KeyDown:
		m.lobby.handleDownKey(m.phase)
		return true, nil
	case tea.KeyLeft:
		if m.phase == PhasePlaying {
			m.game.MoveCursorLeft()
			return true, nil
		}
	case tea.KeyRight:
		if m.phase == PhasePlaying {
			m.game.MoveCursorRight()
			return true, nil
		}
	case tea.KeyEnter:
		return true, m.handleEnter()
	case tea.KeyRunes:
		return m.handleRuneKey(msg)
	}
	return false, nil
}

// handleEscKey 处理 ESC 键
func (m *OnlineModel) handleEscKey() (bool, tea.Cmd) {
	switch m.phase {
	case PhaseRoomList:
		m.enterLobby()
		return true, nil
	case PhaseWaiting, PhaseGameOver:
		// 离开房间回大厅
		_ = m.client.LeaveRoom()
		m.game.Reset()
		m.enterLobby()
		return true, nil
	case PhasePlaying:
		// 对局中 ESC 不退出，避免误操作
		m.error = "游戏进行中，按 Q 才能离开！"
		return true, clearErrorAfter(3 * time.Second)
	}
	// 其他情况（连接失败、大厅）直接退出
	m.client.Close()
	return true, tea.Quit
}

// enterLobby 回到大厅并重新聚焦输入框
func (m *OnlineModel) enterLobby() {
	m.phase = PhaseLobby
	m.error = ""
	m.input.Reset()
	m.input.Focus()
}

// handleEnter 处理回车键
func (m *OnlineModel) handleEnter() tea.Cmd {
	switch m.phase {
	case PhaseLobby:
		return m.handleLobbyEnter()

	case PhaseRoomList:
		if room := m.lobby.SelectedRoom(); room != nil {
			if err := m.client.JoinRoom(room.RoomCode, ""); err != nil {
				m.error = err.Error()
				return clearErrorAfter(3 * time.Second)
			}
		}
		return nil

	case PhasePlaying:
		// 出牌：打出光标指向的牌
		if !m.game.IsMyTurn(m.playerID) {
			m.error = "还没轮到你出牌"
			return clearErrorAfter(2 * time.Second)
		}
		if selected := m.game.SelectedCard(); selected != nil {
			_ = m.client.PlayCard(selected.ID)
		}
		return nil

	case PhaseGameOver:
		_ = m.client.LeaveRoom()
		m.game.Reset()
		m.enterLobby()
		return nil
	}
	return nil
}

// handleLobbyEnter 大厅界面回车：菜单项或直接输入房间号
func (m *OnlineModel) handleLobbyEnter() tea.Cmd {
	input := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	m.error = ""

	// 输入为空时使用选中的菜单项
	if input == "" {
		input = menuChoice(m.lobby.selectedIndex)
	}

	switch input {
	case "1":
		_ = m.client.CreateRoom("", "classic")
	case "2":
		_ = m.client.CreateRoom("", "flip")
	case "3":
		_ = m.client.GetRoomList()
	case "4":
		m.client.Close()
		return tea.Quit
	default:
		// 按房间号加入
		if err := m.client.JoinRoom(strings.ToUpper(input), ""); err != nil {
			m.error = err.Error()
			return clearErrorAfter(3 * time.Second)
		}
	}
	return nil
}

// menuChoice 菜单索引转换为选项编号
func menuChoice(index int) string {
	return string(rune('1' + index))
}

// handleRuneKey 处理字符键（房间和对局内的快捷键）
func (m *OnlineModel) handleRuneKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(msg.Runes) == 0 {
		return false, nil
	}
	key := strings.ToLower(msg.String())

	switch m.phase {
	case PhaseWaiting:
		switch key {
		case "r":
			_ = m.client.ToggleReady()
			return true, nil
		case "b":
			_ = m.client.AddBot()
			return true, nil
		case "s":
			_ = m.client.StartGame()
			return true, nil
		}

	case PhasePlaying:
		switch key {
		case "d":
			if m.game.IsMyTurn(m.playerID) {
				_ = m.client.DrawCard()
			}
			return true, nil
		case "f":
			if m.game.state.Mode == "flip" && m.game.IsMyTurn(m.playerID) {
				_ = m.client.FlipDeck()
			}
			return true, nil
		case "q":
			_ = m.client.LeaveRoom()
			m.game.Reset()
			m.enterLobby()
			return true, nil
		}
		return true, nil // 对局中吞掉其他字符键
	}

	return false, nil
}
