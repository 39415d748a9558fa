package ui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/palemoky/uno-arena/internal/apperrors"
	"github.com/palemoky/uno-arena/internal/game/bot"
	"github.com/palemoky/uno-arena/internal/game/engine"
	"github.com/palemoky/uno-arena/internal/protocol"
	"github.com/palemoky/uno-arena/internal/protocol/convert"
	"github.com/palemoky/uno-arena/internal/sound"
)

// offlineRoomCode 离线对局没有真实房间，用固定标识展示
const offlineRoomCode = "本地对局"

// botTickMsg 触发一次机器人行动
type botTickMsg struct{}

// OfflineModel 单机模式的 model：人机对战，规则引擎直接跑在本地
type OfflineModel struct {
	state    engine.State
	selfID   string
	mode     engine.Mode
	botCount int
	botDelay time.Duration

	phase GamePhase
	error string

	game         *GameModel
	soundManager *sound.SoundManager

	width  int
	height int
}

// NewOfflineModel 创建单机模式 model，botCount 个机器人对手
func NewOfflineModel(mode string, botCount int) *OfflineModel {
	if botCount < 1 {
		botCount = 1
	}
	if botCount > engine.MaxPlayers-1 {
		botCount = engine.MaxPlayers - 1
	}

	m := &OfflineModel{
		selfID:       uuid.NewString(),
		mode:         engine.Mode(mode),
		botCount:     botCount,
		botDelay:     800 * time.Millisecond,
		game:         NewGameModel(),
		soundManager: sound.NewSoundManager(),
	}
	m.startNewGame()
	return m
}

// startNewGame 发牌并直接开局
func (m *OfflineModel) startNewGame() {
	m.game.Reset()
	m.game.roomCode = offlineRoomCode
	m.error = ""

	state, err := engine.NewGame(m.mode, m.selfID, "玩家")
	if err != nil {
		m.error = err.Error()
		return
	}
	for i := 0; i < m.botCount; i++ {
		state, err = state.JoinBot(uuid.NewString(), fmt.Sprintf("Bot-%d", i+1))
		if err != nil {
			m.error = err.Error()
			return
		}
	}
	if state, err = state.ToggleReady(m.selfID); err != nil {
		m.error = err.Error()
		return
	}
	if state, err = state.Start(m.selfID); err != nil {
		m.error = err.Error()
		return
	}

	m.state = state
	m.phase = PhasePlaying
	m.sync()
}

// sync 把引擎状态同步到视图
func (m *OfflineModel) sync() {
	m.game.ApplyState(convert.ToStateDTO(&m.state, offlineRoomCode, m.selfID))
}

func (m *OfflineModel) Init() tea.Cmd {
	go func() {
		_ = m.soundManager.Init()
	}()
	return m.scheduleBot()
}

// scheduleBot 当前回合是机器人时安排一次延时行动
func (m *OfflineModel) scheduleBot() tea.Cmd {
	if m.state.Status != engine.StatusPlaying {
		return nil
	}
	seat := m.state.Seat(m.state.CurrentID)
	if seat == nil || !seat.IsBot {
		return nil
	}
	return tea.Tick(m.botDelay, func(time.Time) tea.Msg {
		return botTickMsg{}
	})
}

func (m *OfflineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.game.width = msg.Width
		m.game.height = msg.Height

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case ClearErrorMsg:
		m.error = ""

	case botTickMsg:
		return m, m.runBotTurn()
	}
	return m, nil
}

// handleKeyPress 处理按键
func (m *OfflineModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyLeft:
		m.game.MoveCursorLeft()
		return m, nil
	case tea.KeyRight:
		m.game.MoveCursorRight()
		return m, nil
	case tea.KeyEnter:
		if m.phase == PhaseGameOver {
			// 再来一局
			m.startNewGame()
			return m, m.scheduleBot()
		}
		return m, m.playSelected()
	case tea.KeyRunes:
		switch msg.String() {
		case "d", "D":
			return m, m.drawCard()
		case "f", "F":
			return m, m.flipDeck()
		case "q", "Q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// playSelected 打出光标指向的牌
func (m *OfflineModel) playSelected() tea.Cmd {
	if m.phase != PhasePlaying || m.state.CurrentID != m.selfID {
		return nil
	}
	selected := m.game.SelectedCard()
	if selected == nil {
		return nil
	}

	next, err := m.state.PlayCard(m.selfID, selected.ID)
	if err != nil {
		return m.handleActionError(err)
	}
	m.game.lastDrawn = nil
	m.soundManager.Play("play")
	return m.applyTransition(next)
}

// drawCard 抽一张牌（或结清罚抽）
func (m *OfflineModel) drawCard() tea.Cmd {
	if m.phase != PhasePlaying || m.state.CurrentID != m.selfID {
		return nil
	}

	before := len(m.state.Seat(m.selfID).Hand)
	next, err := m.state.DrawCard(m.selfID)
	if err != nil {
		return m.handleActionError(err)
	}

	// 抽到单张时在界面上提示
	hand := next.Seat(m.selfID).Hand
	if len(hand) == before+1 {
		info := convert.ToCardInfo(hand[len(hand)-1])
		m.game.lastDrawn = &info
	} else {
		m.game.lastDrawn = nil
	}
	m.soundManager.Play("draw")
	return m.applyTransition(next)
}

// flipDeck 翻转牌组（Flip 模式）
func (m *OfflineModel) flipDeck() tea.Cmd {
	if m.phase != PhasePlaying || m.state.Mode != engine.ModeFlip || m.state.CurrentID != m.selfID {
		return nil
	}
	next, err := m.state.FlipDeck()
	if err != nil {
		return m.handleActionError(err)
	}
	m.game.AddEvent("牌组翻转！")
	return m.applyTransition(next)
}

// runBotTurn 执行一次机器人行动
func (m *OfflineModel) runBotTurn() tea.Cmd {
	if m.state.Status != engine.StatusPlaying {
		return nil
	}
	seat := m.state.Seat(m.state.CurrentID)
	if seat == nil || !seat.IsBot {
		return nil
	}

	action := bot.ChooseAction(m.state, seat.ID)
	var next engine.State
	var err error
	switch action.Kind {
	case bot.ActionPlay:
		next, err = m.state.PlayCard(seat.ID, action.CardID)
	default:
		next, err = m.state.DrawCard(seat.ID)
	}
	if err != nil {
		return m.handleActionError(err)
	}

	if action.Kind == bot.ActionPlay {
		m.game.AddEvent("%s 出了一张牌", seat.Name)
	} else {
		m.game.AddEvent("%s 抽了牌", seat.Name)
	}
	return m.applyTransition(next)
}

// applyTransition 接受引擎转移结果并处理终局
func (m *OfflineModel) applyTransition(next engine.State) tea.Cmd {
	m.state = next
	m.sync()

	if m.state.Status == engine.StatusFinished {
		m.finish(false)
		return nil
	}
	return m.scheduleBot()
}

// handleActionError 把引擎拒绝转成界面提示，牌库耗尽直接流局
func (m *OfflineModel) handleActionError(err error) tea.Cmd {
	if errors.Is(err, apperrors.ErrDeckExhausted) {
		m.state = m.state.Abort()
		m.sync()
		m.finish(true)
		return nil
	}

	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		m.error = gameErr.Message
	} else {
		m.error = err.Error()
	}
	return clearErrorAfter(2 * time.Second)
}

// finish 进入终局界面
func (m *OfflineModel) finish(aborted bool) {
	result := &protocol.GameOverPayload{
		WinnerID: m.state.WinnerID,
		Aborted:  aborted,
		Hands:    convert.ToPlayerHands(&m.state),
	}
	if winner := m.state.Seat(m.state.WinnerID); winner != nil {
		result.WinnerName = winner.Name
	}
	m.game.result = result
	m.phase = PhaseGameOver

	if m.state.WinnerID == m.selfID {
		m.soundManager.Play("win")
	} else {
		m.soundManager.Play("lose")
	}
}

func (m *OfflineModel) View() string {
	switch m.phase {
	case PhasePlaying:
		return m.game.tableView(m.selfID, m.error)
	case PhaseGameOver:
		return m.game.gameOverView(m.selfID, "Enter 再来一局  Q/ESC 退出")
	}
	if m.error != "" {
		return errorStyle.Render(m.error)
	}
	return ""
}
