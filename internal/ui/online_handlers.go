package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/uno-arena/internal/protocol"
)

// handleServerMessage 处理服务器消息
// 按消息类型分发到具体的处理函数
func (m *OnlineModel) handleServerMessage(msg *protocol.Message) tea.Cmd {
	switch msg.Type {
	// 连接相关
	case protocol.MsgConnected:
		return m.handleMsgConnected(msg)
	case protocol.MsgPong:
		m.latency = m.client.GetLatency()
		return nil
	case protocol.MsgError:
		return m.handleMsgError(msg)

	// 房间相关
	case protocol.MsgRoomCreated:
		return m.handleMsgRoomEntered(msg)
	case protocol.MsgRoomJoined:
		return m.handleMsgRoomEntered(msg)
	case protocol.MsgPlayerJoined:
		return m.handleMsgPlayerJoined(msg)
	case protocol.MsgPlayerLeft:
		return m.handleMsgPlayerLeft(msg)
	case protocol.MsgPlayerReady:
		return m.handleMsgPlayerReady(msg)
	case protocol.MsgRoomListResult:
		return m.handleMsgRoomListResult(msg)

	// 游戏流程
	case protocol.MsgGameStarted:
		return m.handleMsgGameStarted(msg)
	case protocol.MsgGameUpdated:
		return m.handleMsgGameUpdated(msg)
	case protocol.MsgCardDrawn:
		return m.handleMsgCardDrawn(msg)
	case protocol.MsgGameOver:
		return m.handleMsgGameOver(msg)
	}

	return nil
}

func (m *OnlineModel) handleMsgConnected(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.ConnectedPayload](msg)
	if err != nil {
		return nil
	}
	m.playerID = payload.PlayerID
	m.playerName = payload.PlayerName
	return nil
}

func (m *OnlineModel) handleMsgError(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.ErrorPayload](msg)
	if err != nil {
		return nil
	}
	m.error = payload.Message
	return clearErrorAfter(3 * time.Second)
}

// handleMsgRoomEntered 创建或加入房间成功，进入等待界面
func (m *OnlineModel) handleMsgRoomEntered(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.RoomJoinedPayload](msg)
	if err != nil {
		return nil
	}
	m.game.Reset()
	m.game.ApplyState(payload.State)
	m.game.roomCode = payload.RoomCode
	m.phase = PhaseWaiting
	m.error = ""
	m.input.Blur()
	m.soundManager.Play("join")
	return nil
}

func (m *OnlineModel) handleMsgPlayerJoined(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.PlayerJoinedPayload](msg)
	if err != nil {
		return nil
	}
	m.game.state.Players = append(m.game.state.Players, payload.Player)
	m.game.AddEvent("%s 加入了房间", payload.Player.Name)
	return nil
}

func (m *OnlineModel) handleMsgPlayerLeft(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.PlayerLeftPayload](msg)
	if err != nil {
		return nil
	}
	players := m.game.state.Players[:0]
	for _, p := range m.game.state.Players {
		if p.ID != payload.PlayerID {
			players = append(players, p)
		}
	}
	m.game.state.Players = players
	m.game.AddEvent("%s 离开了房间", payload.PlayerName)
	return nil
}

func (m *OnlineModel) handleMsgPlayerReady(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.PlayerReadyPayload](msg)
	if err != nil {
		return nil
	}
	if p := m.game.playerByID(payload.PlayerID); p != nil {
		p.Ready = payload.Ready
	}
	return nil
}

func (m *OnlineModel) handleMsgRoomListResult(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.RoomListResultPayload](msg)
	if err != nil {
		return nil
	}
	m.lobby.SetAvailableRooms(payload.Rooms)
	m.phase = PhaseRoomList
	return nil
}

func (m *OnlineModel) handleMsgGameStarted(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.GameStartedPayload](msg)
	if err != nil {
		return nil
	}
	m.game.ApplyState(payload.State)
	m.game.AddEvent("游戏开始！")
	m.phase = PhasePlaying
	m.soundManager.Play("start")
	return nil
}

func (m *OnlineModel) handleMsgGameUpdated(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.GameUpdatedPayload](msg)
	if err != nil {
		return nil
	}
	// 回合流转后抽牌提示失效
	if payload.State.CurrentPlayer != m.game.state.CurrentPlayer {
		m.game.lastDrawn = nil
	}
	m.game.ApplyState(payload.State)
	if m.phase == PhaseWaiting && payload.State.Status == "playing" {
		m.phase = PhasePlaying
	}
	return nil
}

func (m *OnlineModel) handleMsgCardDrawn(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.CardDrawnPayload](msg)
	if err != nil {
		return nil
	}
	m.game.lastDrawn = &payload.Card
	if payload.Playable {
		m.game.AddEvent("抽到了可以打出的牌")
	}
	m.soundManager.Play("draw")
	return nil
}

func (m *OnlineModel) handleMsgGameOver(msg *protocol.Message) tea.Cmd {
	payload, err := protocol.ParsePayload[protocol.GameOverPayload](msg)
	if err != nil {
		return nil
	}
	m.game.result = payload
	m.phase = PhaseGameOver
	if payload.WinnerID == m.playerID {
		m.soundManager.Play("win")
	} else {
		m.soundManager.Play("lose")
	}
	return nil
}
