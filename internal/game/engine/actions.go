package engine

import (
	"github.com/palemoky/uno-arena/internal/apperrors"
	"github.com/palemoky/uno-arena/internal/game/card"
)

// PlayCard 处理出牌。
// 校验全部通过后才修改状态；任何一条不满足都原样返回输入状态。
// 打出最后一张牌立即胜利并结束对局，不再结算特殊效果
func (s State) PlayCard(playerID, cardID string) (State, error) {
	if s.Status != StatusPlaying {
		return s, apperrors.ErrGameNotStart
	}
	seat := s.Seat(playerID)
	if seat == nil {
		return s, apperrors.ErrNotInRoom
	}
	if s.CurrentID != playerID {
		return s, apperrors.ErrNotYourTurn
	}
	if s.PendingDraw > 0 {
		return s, apperrors.ErrPendingDraw
	}

	cardIdx := -1
	for i, c := range seat.Hand {
		if c.ID == cardID {
			cardIdx = i
			break
		}
	}
	if cardIdx < 0 {
		return s, apperrors.ErrCardNotFound
	}

	played := seat.Hand[cardIdx]
	active, ok := s.ActiveCard()
	if !ok || !IsLegal(played, active) {
		return s, apperrors.ErrIllegalMove
	}

	n := s.Clone()
	nseat := n.Seat(playerID)
	nseat.Hand = append(nseat.Hand[:cardIdx], nseat.Hand[cardIdx+1:]...)
	n.DiscardPile = append(n.DiscardPile, played)
	n.LastAction = played.Value.String()

	// 胜利判定优先于所有效果结算
	if len(nseat.Hand) == 0 {
		n.Status = StatusFinished
		n.WinnerID = playerID
		return n, nil
	}

	switch {
	case played.Value == card.Reverse || played.Value == card.ReverseAll:
		n.Direction = -n.Direction
		n.advance(1)
	case played.Value == card.Skip:
		n.advance(2)
	case played.Value == card.SkipAll:
		// 跳过其他所有人，出牌者继续行动
	case played.Value.Penalty() > 0:
		// 罚抽在出牌时立即结算：下家抽满罚牌，本回合被跳过
		n.PendingDraw += played.Value.Penalty()
		recipient := n.Players[n.nextIndex(1)]
		if err := n.drawTo(recipient, n.PendingDraw); err != nil {
			return s, err
		}
		n.PendingDraw = 0
		n.advance(2)
	default:
		n.advance(1)
	}

	return n, nil
}

// DrawCard 处理抽牌，轮到自己时抽牌永远合法。
// 有罚抽时一次抽满并失去本回合；否则抽一张，
// 抽到能出的牌保留回合（是否打出由玩家决定），否则回合交给下家
func (s State) DrawCard(playerID string) (State, error) {
	if s.Status != StatusPlaying {
		return s, apperrors.ErrGameNotStart
	}
	seat := s.Seat(playerID)
	if seat == nil {
		return s, apperrors.ErrNotInRoom
	}
	if s.CurrentID != playerID {
		return s, apperrors.ErrNotYourTurn
	}

	n := s.Clone()
	nseat := n.Seat(playerID)

	if n.PendingDraw > 0 {
		if err := n.drawTo(nseat, n.PendingDraw); err != nil {
			return s, err
		}
		n.PendingDraw = 0
		n.LastAction = "draw"
		n.advance(1)
		return n, nil
	}

	c, err := n.drawOne()
	if err != nil {
		return s, err
	}
	nseat.Hand = append(nseat.Hand, c)
	n.LastAction = "draw"

	active, _ := n.ActiveCard()
	if !IsLegal(c, active) {
		n.advance(1)
	}
	return n, nil
}

// FlipDeck 翻转牌组（Flip 模式专属，其他模式为无操作）。
// 按照新牌面重新生成整副牌：所有人换发新手牌、重翻生效牌，
// 这是整副牌的重置点，不是对现有牌的重洗
func (s State) FlipDeck() (State, error) {
	if s.Mode != ModeFlip || s.Status != StatusPlaying {
		return s, nil
	}

	n := s.Clone()
	n.DarkSide = !n.DarkSide

	deck := card.NewFlipDeck(n.DarkSide)
	deck.Shuffle()
	n.DrawPile = deck
	n.DiscardPile = nil
	n.PendingDraw = 0
	n.LastAction = "flip"

	for _, p := range n.Players {
		p.Hand = nil
		if err := n.drawTo(p, HandSize); err != nil {
			return s, err
		}
	}
	if err := n.flipOpener(); err != nil {
		return s, err
	}
	return n, nil
}
