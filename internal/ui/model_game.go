package ui

import (
	"fmt"

	"github.com/palemoky/uno-arena/internal/protocol"
)

// maxEventLines 牌桌上保留的最近事件条数
const maxEventLines = 5

// GameModel 对局子模型：房间与牌桌状态，联机/离线模式共用
type GameModel struct {
	width  int
	height int

	roomCode string
	state    protocol.RoomStateDTO

	// 手牌光标
	cursor int

	// 最近一次抽到的牌（私发），出牌或回合流转后清空
	lastDrawn *protocol.CardInfo

	// 终局信息
	result *protocol.GameOverPayload

	// 最近事件（玩家进出、出牌提示等）
	events []string
}

// NewGameModel 创建对局子模型
func NewGameModel() *GameModel {
	return &GameModel{}
}

// ApplyState 用服务端下发的状态覆盖本地视图。
// 手牌变化后把光标夹回合法范围
func (g *GameModel) ApplyState(state protocol.RoomStateDTO) {
	g.state = state
	g.roomCode = state.RoomCode
	g.clampCursor()
}

// Reset 清空对局状态，回到大厅前调用
func (g *GameModel) Reset() {
	*g = GameModel{width: g.width, height: g.height}
}

// AddEvent 记录一条事件，超出上限时丢弃最旧的
func (g *GameModel) AddEvent(format string, args ...any) {
	g.events = append(g.events, fmt.Sprintf(format, args...))
	if len(g.events) > maxEventLines {
		g.events = g.events[len(g.events)-maxEventLines:]
	}
}

// Hand 自己的手牌
func (g *GameModel) Hand() []protocol.CardInfo {
	return g.state.Hand
}

// SelectedCard 光标指向的牌，手牌为空时返回 nil
func (g *GameModel) SelectedCard() *protocol.CardInfo {
	if len(g.state.Hand) == 0 {
		return nil
	}
	return &g.state.Hand[g.cursor]
}

// IsMyTurn 是否轮到指定玩家
func (g *GameModel) IsMyTurn(playerID string) bool {
	return g.state.CurrentPlayer == playerID
}

// MoveCursorLeft 左移光标，到头后绕到最右
func (g *GameModel) MoveCursorLeft() {
	if len(g.state.Hand) == 0 {
		return
	}
	g.cursor--
	if g.cursor < 0 {
		g.cursor = len(g.state.Hand) - 1
	}
}

// MoveCursorRight 右移光标，到头后绕到最左
func (g *GameModel) MoveCursorRight() {
	if len(g.state.Hand) == 0 {
		return
	}
	g.cursor++
	if g.cursor >= len(g.state.Hand) {
		g.cursor = 0
	}
}

func (g *GameModel) clampCursor() {
	if g.cursor >= len(g.state.Hand) {
		g.cursor = len(g.state.Hand) - 1
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
}

// playerByID 按 ID 查找玩家信息
func (g *GameModel) playerByID(playerID string) *protocol.PlayerInfo {
	for i := range g.state.Players {
		if g.state.Players[i].ID == playerID {
			return &g.state.Players[i]
		}
	}
	return nil
}
