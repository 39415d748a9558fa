// Package convert 负责引擎状态与协议 DTO 之间的转换。
// 服务端广播和本地离线模式共用这一份转换逻辑
package convert

import (
	"github.com/palemoky/uno-arena/internal/game/card"
	"github.com/palemoky/uno-arena/internal/game/engine"
	"github.com/palemoky/uno-arena/internal/protocol"
)

// ToCardInfo 将一张牌转为协议表示
func ToCardInfo(c card.Card) protocol.CardInfo {
	return protocol.CardInfo{
		ID:    c.ID,
		Color: int(c.Color),
		Value: int(c.Value),
	}
}

// FromCardInfo 从协议表示还原一张牌
func FromCardInfo(info protocol.CardInfo) card.Card {
	return card.Card{
		ID:    info.ID,
		Color: card.Color(info.Color),
		Value: card.Value(info.Value),
	}
}

// ToCardInfos 批量转换手牌
func ToCardInfos(cards []card.Card) []protocol.CardInfo {
	infos := make([]protocol.CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = ToCardInfo(c)
	}
	return infos
}

// ToPlayerInfo 将座位转为玩家信息，手牌只暴露张数
func ToPlayerInfo(seat *engine.Seat, index int) protocol.PlayerInfo {
	return protocol.PlayerInfo{
		ID:          seat.ID,
		Name:        seat.Name,
		Seat:        index,
		Ready:       seat.IsReady,
		IsHost:      seat.IsHost,
		IsBot:       seat.IsBot,
		CardsCount:  len(seat.Hand),
		OneCardLeft: len(seat.Hand) == 1,
	}
}

// ToStateDTO 生成按接收者个性化的房间状态：
// 只有 viewerID 自己的手牌会出现在 Hand 中，其他玩家只给张数
func ToStateDTO(s *engine.State, roomCode, viewerID string) protocol.RoomStateDTO {
	dto := protocol.RoomStateDTO{
		RoomCode:      roomCode,
		Mode:          string(s.Mode),
		Status:        s.Status.String(),
		CurrentPlayer: s.CurrentID,
		Direction:     int(s.Direction),
		PendingDraw:   s.PendingDraw,
		DarkSide:      s.DarkSide,
		WinnerID:      s.WinnerID,
		LastAction:    s.LastAction,
		DrawPileSize:  len(s.DrawPile),
	}

	for i, p := range s.Players {
		dto.Players = append(dto.Players, ToPlayerInfo(p, i))
		if p.ID == viewerID {
			dto.Hand = ToCardInfos(p.Hand)
		}
	}

	if active, ok := s.ActiveCard(); ok {
		info := ToCardInfo(active)
		dto.CurrentCard = &info
	}
	return dto
}

// ToPlayerHands 生成终局展示用的各家手牌
func ToPlayerHands(s *engine.State) []protocol.PlayerHand {
	hands := make([]protocol.PlayerHand, 0, len(s.Players))
	for _, p := range s.Players {
		hands = append(hands, protocol.PlayerHand{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Cards:      ToCardInfos(p.Hand),
		})
	}
	return hands
}
