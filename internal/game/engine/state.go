// Package engine 实现无副作用的游戏状态机。
// 所有转移函数都是 (State, 动作) -> (State, error)：
// 成功时返回新状态，拒绝时原样返回输入状态，绝不部分修改。
// 服务端和本地离线模式共享同一份规则，避免两份实现产生分歧。
package engine

import (
	"github.com/palemoky/uno-arena/internal/apperrors"
	"github.com/palemoky/uno-arena/internal/game/card"
)

const (
	MinPlayers = 2 // 开局最少人数
	MaxPlayers = 4 // 房间最多人数
	HandSize   = 7 // 初始手牌数
)

// Mode 游戏模式
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeFlip    Mode = "flip"
	ModeDoubles Mode = "doubles"
	ModeSpeed   Mode = "speed"
	ModeNoMercy Mode = "nomercy"
)

// Valid 是否为已知模式。
// doubles/speed/nomercy 目前只是标签，按经典规则结算
func (m Mode) Valid() bool {
	switch m {
	case ModeClassic, ModeFlip, ModeDoubles, ModeSpeed, ModeNoMercy:
		return true
	}
	return false
}

// Status 对局状态，单向流转 waiting -> playing -> finished
type Status int

const (
	StatusWaiting Status = iota
	StatusPlaying
	StatusFinished
)

var statusNames = map[Status]string{
	StatusWaiting:  "waiting",
	StatusPlaying:  "playing",
	StatusFinished: "finished",
}

func (s Status) String() string {
	return statusNames[s]
}

// Direction 回合推进方向
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Seat 对局中的一个座位，座位顺序即回合顺序
type Seat struct {
	ID      string
	Name    string
	Hand    []card.Card
	IsHost  bool // 房主在创建时固定，不会转移
	IsReady bool
	IsBot   bool
}

// State 一局游戏的完整状态
type State struct {
	Mode        Mode
	Status      Status
	Players     []*Seat
	CurrentID   string // 当前回合玩家 ID
	Direction   Direction
	DrawPile    []card.Card
	DiscardPile []card.Card // 最后一张为当前生效牌
	PendingDraw int         // 未结清的罚抽张数
	WinnerID    string
	DarkSide    bool   // Flip 模式是否在暗面
	LastAction  string // 最近一次动作（仅展示用，不参与规则）
}

// Clone 深拷贝状态，转移函数在副本上修改
func (s State) Clone() State {
	n := s
	n.Players = make([]*Seat, len(s.Players))
	for i, p := range s.Players {
		seat := *p
		seat.Hand = append([]card.Card(nil), p.Hand...)
		n.Players[i] = &seat
	}
	n.DrawPile = append([]card.Card(nil), s.DrawPile...)
	n.DiscardPile = append([]card.Card(nil), s.DiscardPile...)
	return n
}

// Seat 按 ID 查找座位，不存在时返回 nil
func (s *State) Seat(playerID string) *Seat {
	for _, p := range s.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// seatIndex 按 ID 查找座位下标
func (s *State) seatIndex(playerID string) int {
	for i, p := range s.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// ActiveCard 返回当前生效牌（弃牌堆顶）
func (s *State) ActiveCard() (card.Card, bool) {
	if len(s.DiscardPile) == 0 {
		return card.Card{}, false
	}
	return s.DiscardPile[len(s.DiscardPile)-1], true
}

// advance 按当前方向推进回合指针 steps 步，对座位数取模
func (s *State) advance(steps int) {
	count := len(s.Players)
	if count == 0 {
		s.CurrentID = ""
		return
	}
	idx := s.seatIndex(s.CurrentID)
	if idx < 0 {
		idx = 0
	}
	idx = (idx + steps*int(s.Direction)) % count
	if idx < 0 {
		idx += count
	}
	s.CurrentID = s.Players[idx].ID
}

// nextIndex 当前玩家按方向数第 steps 位的座位下标
func (s *State) nextIndex(steps int) int {
	count := len(s.Players)
	idx := s.seatIndex(s.CurrentID)
	idx = (idx + steps*int(s.Direction)) % count
	if idx < 0 {
		idx += count
	}
	return idx
}

// drawOne 从牌库抽一张牌，牌库空时把弃牌堆（除堆顶）洗回牌库。
// 两堆同时耗尽返回 ErrDeckExhausted
func (s *State) drawOne() (card.Card, error) {
	if len(s.DrawPile) == 0 {
		if len(s.DiscardPile) <= 1 {
			return card.Card{}, apperrors.ErrDeckExhausted
		}
		top := s.DiscardPile[len(s.DiscardPile)-1]
		reclaimed := card.Deck(append([]card.Card(nil), s.DiscardPile[:len(s.DiscardPile)-1]...))
		reclaimed.Shuffle()
		s.DrawPile = reclaimed
		s.DiscardPile = []card.Card{top}
	}
	c := s.DrawPile[0]
	s.DrawPile = s.DrawPile[1:]
	return c, nil
}

// drawTo 给指定座位抽 n 张牌
func (s *State) drawTo(seat *Seat, n int) error {
	for range n {
		c, err := s.drawOne()
		if err != nil {
			return err
		}
		seat.Hand = append(seat.Hand, c)
	}
	return nil
}

// CardCount 当前状态中所有牌的总数（牌库 + 弃牌堆 + 各家手牌）
func (s *State) CardCount() int {
	total := len(s.DrawPile) + len(s.DiscardPile)
	for _, p := range s.Players {
		total += len(p.Hand)
	}
	return total
}
