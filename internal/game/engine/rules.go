package engine

import (
	"github.com/palemoky/uno-arena/internal/game/card"
)

// IsLegal 判断候选牌能否压在当前生效牌上：
// 颜色相同、牌面相同，或候选牌是万能牌
func IsLegal(candidate, active card.Card) bool {
	return candidate.Color == active.Color ||
		candidate.Value == active.Value ||
		candidate.Color == card.Wild
}

// LegalMoves 返回指定玩家当前可出的牌。
// 不在其回合、对局未进行或有罚抽未结清时返回空
func (s *State) LegalMoves(playerID string) []card.Card {
	if s.Status != StatusPlaying || s.CurrentID != playerID || s.PendingDraw > 0 {
		return nil
	}
	seat := s.Seat(playerID)
	if seat == nil {
		return nil
	}
	active, ok := s.ActiveCard()
	if !ok {
		return nil
	}

	var legal []card.Card
	for _, c := range seat.Hand {
		if IsLegal(c, active) {
			legal = append(legal, c)
		}
	}
	return legal
}
