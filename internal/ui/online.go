package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/uno-arena/internal/protocol"
	"github.com/palemoky/uno-arena/internal/sound"
	"github.com/palemoky/uno-arena/internal/transport"
)

// 游戏阶段
type GamePhase int

const (
	PhaseConnecting GamePhase = iota
	PhaseLobby
	PhaseRoomList
	PhaseWaiting
	PhasePlaying
	PhaseGameOver
)

// ServerMessage 服务器消息（用于 tea.Msg）
type ServerMessage struct {
	Msg *protocol.Message
}

// ConnectedMsg 连接成功消息
type ConnectedMsg struct{}

// ConnectionErrorMsg 连接错误消息
type ConnectionErrorMsg struct {
	Err error
}

// ClearErrorMsg 清除错误消息
type ClearErrorMsg struct{}

// OnlineModel 联网模式的 model
type OnlineModel struct {
	client *transport.Client
	phase  GamePhase
	error  string

	// 玩家信息
	playerID   string
	playerName string

	// 网络延迟（毫秒）
	latency int64

	// Sub-models
	lobby *LobbyModel
	game  *GameModel

	// Audio
	soundManager *sound.SoundManager

	// UI 组件
	input  *textinput.Model
	width  int
	height int
}

// NewOnlineModel 创建联网模式 model
func NewOnlineModel(serverURL string) *OnlineModel {
	ti := textinput.New()
	ti.Placeholder = "输入选项或房间号..."
	ti.CharLimit = 10
	ti.Width = 24

	return &OnlineModel{
		client:       transport.NewClient(serverURL),
		phase:        PhaseConnecting,
		input:        &ti,
		lobby:        NewLobbyModel(),
		game:         NewGameModel(),
		soundManager: sound.NewSoundManager(),
	}
}

func (m *OnlineModel) Init() tea.Cmd {
	// Initialize sound
	go func() {
		_ = m.soundManager.Init()
	}()

	return tea.Batch(
		m.connectToServer(),
		textinput.Blink,
	)
}

// connectToServer 连接服务器
func (m *OnlineModel) connectToServer() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Connect(); err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ConnectedMsg{}
	}
}

// listenForMessages 监听服务器消息
func (m *OnlineModel) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.client.Receive()
		if err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ServerMessage{Msg: msg}
	}
}

// clearErrorAfter 延时清除错误提示
func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func (m *OnlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.lobby.width = msg.Width
		m.lobby.height = msg.Height
		m.game.width = msg.Width
		m.game.height = msg.Height

	case tea.KeyMsg:
		handled, returnCmd := m.handleKeyPress(msg)
		if handled {
			return m, returnCmd
		}

	case ConnectedMsg:
		m.phase = PhaseLobby
		m.playerID = m.client.PlayerID
		m.playerName = m.client.PlayerName
		m.input.Focus()
		// 启动心跳
		m.client.StartHeartbeat()
		// 开始监听消息
		cmds = append(cmds, m.listenForMessages())

	case ConnectionErrorMsg:
		m.error = fmt.Sprintf("无法连接到服务器: %v\n\n按 ESC 退出", msg.Err)
		// 保持在连接阶段，不显示大厅菜单
		m.phase = PhaseConnecting

	case ClearErrorMsg:
		m.error = ""

	case ServerMessage:
		cmd = m.handleServerMessage(msg.Msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		// 继续监听
		if m.client.IsConnected() {
			cmds = append(cmds, m.listenForMessages())
		}
	}

	// Update the input model (dereference the pointer)
	newInput, cmd := m.input.Update(msg)
	*m.input = newInput
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *OnlineModel) View() string {
	switch m.phase {
	case PhaseConnecting:
		return m.connectingView()
	case PhaseLobby:
		return m.lobbyView()
	case PhaseRoomList:
		return m.roomListView()
	case PhaseWaiting:
		return m.game.waitingView(m.playerID, m.latency)
	case PhasePlaying:
		return m.game.tableView(m.playerID, m.error)
	case PhaseGameOver:
		return m.game.gameOverView(m.playerID, "Enter/ESC 返回大厅")
	}
	return ""
}
