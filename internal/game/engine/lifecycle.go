package engine

import (
	"fmt"

	"github.com/palemoky/uno-arena/internal/apperrors"
	"github.com/palemoky/uno-arena/internal/game/card"
)

// NewGame 创建一局新游戏：洗好整副牌，给房主发 7 张手牌，
// 再翻一张非万能牌作为起始生效牌（万能牌放回牌库底重翻，避免开局颜色不明）
func NewGame(mode Mode, hostID, hostName string) (State, error) {
	if !mode.Valid() {
		return State{}, fmt.Errorf("未知的游戏模式: %q", mode)
	}

	var deck card.Deck
	if mode == ModeFlip {
		deck = card.NewFlipDeck(false)
	} else {
		deck = card.NewDeck()
	}
	deck.Shuffle()

	s := State{
		Mode:      mode,
		Status:    StatusWaiting,
		Direction: Forward,
		DrawPile:  deck,
	}

	host := &Seat{ID: hostID, Name: hostName, IsHost: true}
	s.Players = append(s.Players, host)
	s.CurrentID = hostID

	if err := s.drawTo(host, HandSize); err != nil {
		return State{}, err
	}
	if err := s.flipOpener(); err != nil {
		return State{}, err
	}

	return s, nil
}

// flipOpener 翻起始生效牌，万能牌放到牌库底重翻
func (s *State) flipOpener() error {
	for range len(s.DrawPile) + 1 {
		c, err := s.drawOne()
		if err != nil {
			return err
		}
		if c.IsWild() {
			s.DrawPile = append(s.DrawPile, c)
			continue
		}
		s.DiscardPile = append(s.DiscardPile, c)
		return nil
	}
	return apperrors.ErrDeckExhausted
}

// Join 玩家加入房间，发 7 张手牌
func (s State) Join(playerID, playerName string) (State, error) {
	return s.join(playerID, playerName, false)
}

// JoinBot 机器人加入房间，机器人始终视为已准备
func (s State) JoinBot(botID, botName string) (State, error) {
	return s.join(botID, botName, true)
}

func (s State) join(playerID, playerName string, bot bool) (State, error) {
	if s.Status != StatusWaiting {
		return s, apperrors.ErrGameStarted
	}
	if len(s.Players) >= MaxPlayers {
		return s, apperrors.ErrRoomFull
	}
	for _, p := range s.Players {
		if p.Name == playerName {
			return s, apperrors.ErrDuplicateName
		}
	}

	n := s.Clone()
	seat := &Seat{ID: playerID, Name: playerName, IsBot: bot, IsReady: bot}
	if err := n.drawTo(seat, HandSize); err != nil {
		return s, err
	}
	n.Players = append(n.Players, seat)
	return n, nil
}

// ToggleReady 切换准备状态，只在等待阶段有意义
func (s State) ToggleReady(playerID string) (State, error) {
	if s.Status != StatusWaiting {
		return s, apperrors.ErrGameStarted
	}
	if s.Seat(playerID) == nil {
		return s, apperrors.ErrNotInRoom
	}

	n := s.Clone()
	seat := n.Seat(playerID)
	seat.IsReady = !seat.IsReady
	return n, nil
}

// Start 房主开始游戏：人数足够且全员准备后进入 playing，首座先行
func (s State) Start(requestorID string) (State, error) {
	if s.Status != StatusWaiting {
		return s, apperrors.ErrGameStarted
	}
	requestor := s.Seat(requestorID)
	if requestor == nil || !requestor.IsHost {
		return s, apperrors.ErrNotHost
	}
	if len(s.Players) < MinPlayers {
		return s, apperrors.ErrNotEnoughPlayers
	}
	for _, p := range s.Players {
		if !p.IsReady {
			return s, apperrors.ErrPlayersNotReady
		}
	}

	n := s.Clone()
	n.Status = StatusPlaying
	n.CurrentID = n.Players[0].ID
	n.LastAction = "start"
	return n, nil
}

// RemovePlayer 移除玩家（掉线或主动离开）。
// 若其正持有回合，先按当前方向把回合交给下家再移除。
// 空房间的销毁由调用方处理
func (s State) RemovePlayer(playerID string) (State, error) {
	idx := s.seatIndex(playerID)
	if idx < 0 {
		return s, apperrors.ErrNotInRoom
	}

	n := s.Clone()
	if n.CurrentID == playerID && len(n.Players) > 1 {
		n.advance(1)
	}
	n.Players = append(n.Players[:idx], n.Players[idx+1:]...)
	if len(n.Players) == 0 {
		n.CurrentID = ""
	}
	return n, nil
}

// Abort 异常终局（牌库耗尽），本局按无胜者结束
func (s State) Abort() State {
	n := s.Clone()
	n.Status = StatusFinished
	n.WinnerID = ""
	n.LastAction = "abort"
	return n
}
