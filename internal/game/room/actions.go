package room

import (
	"errors"
	"log"
	"time"

	"github.com/palemoky/uno-arena/internal/apperrors"
	"github.com/palemoky/uno-arena/internal/game/bot"
	"github.com/palemoky/uno-arena/internal/game/card"
	"github.com/palemoky/uno-arena/internal/game/engine"
	"github.com/palemoky/uno-arena/internal/protocol"
	"github.com/palemoky/uno-arena/internal/protocol/convert"
	"github.com/palemoky/uno-arena/internal/types"
)

// PlayCard 玩家出牌
func (rm *RoomManager) PlayCard(client types.ClientInterface, cardID string) error {
	room := rm.roomOf(client)
	if room == nil {
		return apperrors.ErrNotInRoom
	}

	room.mu.Lock()
	next, err := room.State.PlayCard(client.GetID(), cardID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDeckExhausted) {
			rm.abortLocked(room)
			return nil
		}
		room.mu.Unlock()
		return err
	}
	room.State = next
	room.mu.Unlock()

	rm.afterTransition(room)
	return nil
}

// DrawCard 玩家抽牌。抽到的牌私发给抽牌者本人
func (rm *RoomManager) DrawCard(client types.ClientInterface) error {
	room := rm.roomOf(client)
	if room == nil {
		return apperrors.ErrNotInRoom
	}

	room.mu.Lock()
	before := handSize(&room.State, client.GetID())
	next, err := room.State.DrawCard(client.GetID())
	if err != nil {
		if errors.Is(err, apperrors.ErrDeckExhausted) {
			rm.abortLocked(room)
			return nil
		}
		room.mu.Unlock()
		return err
	}
	room.State = next

	// 非罚抽时恰好抽了一张，把抽到的牌私发给抽牌者
	var drawn *card.Card
	if seat := next.Seat(client.GetID()); seat != nil && len(seat.Hand) == before+1 {
		c := seat.Hand[len(seat.Hand)-1]
		drawn = &c
	}
	keepTurn := next.CurrentID == client.GetID()
	room.mu.Unlock()

	if drawn != nil {
		client.SendMessage(protocol.MustNewMessage(protocol.MsgCardDrawn, protocol.CardDrawnPayload{
			Card:     convert.ToCardInfo(*drawn),
			Playable: keepTurn,
		}))
	}

	rm.afterTransition(room)
	return nil
}

// FlipDeck 翻转牌组（仅 Flip 模式有效果）
func (rm *RoomManager) FlipDeck(client types.ClientInterface) error {
	room := rm.roomOf(client)
	if room == nil {
		return apperrors.ErrNotInRoom
	}

	room.mu.Lock()
	next, err := room.State.FlipDeck()
	if err != nil {
		if errors.Is(err, apperrors.ErrDeckExhausted) {
			rm.abortLocked(room)
			return nil
		}
		room.mu.Unlock()
		return err
	}
	room.State = next
	room.mu.Unlock()

	rm.afterTransition(room)
	return nil
}

// handSize 指定玩家的手牌数，不在座位上时返回 0
func handSize(s *engine.State, playerID string) int {
	if seat := s.Seat(playerID); seat != nil {
		return len(seat.Hand)
	}
	return 0
}

// abortLocked 牌库彻底耗尽时按无胜者终局。调用时必须持有 room.mu，返回时已释放
func (rm *RoomManager) abortLocked(room *Room) {
	room.State = room.State.Abort()
	room.mu.Unlock()

	log.Printf("⚠️ 房间 %s 牌库耗尽，对局终止", room.Code)

	room.BroadcastState(protocol.MsgGameUpdated)
	room.broadcastGameOver(true)
	rm.persist(room)
}

// afterTransition 每次成功的状态转移后统一处理：
// 广播新状态、持久化快照，终局时补发 game_over，否则调度机器人
func (rm *RoomManager) afterTransition(room *Room) {
	room.BroadcastState(protocol.MsgGameUpdated)
	rm.persist(room)

	room.mu.RLock()
	finished := room.State.Status == engine.StatusFinished
	room.mu.RUnlock()

	if finished {
		room.broadcastGameOver(false)
		return
	}
	rm.scheduleBot(room)
}

// scheduleBot 当前回合轮到机器人时，延迟一拍后让它行动
func (rm *RoomManager) scheduleBot(room *Room) {
	room.mu.RLock()
	playing := room.State.Status == engine.StatusPlaying
	currentID := room.State.CurrentID
	var isBot bool
	if seat := room.State.Seat(currentID); seat != nil {
		isBot = seat.IsBot
	}
	room.mu.RUnlock()

	if !playing || !isBot {
		return
	}
	time.AfterFunc(rm.botDelay, func() {
		rm.runBotTurn(room, currentID)
	})
}

// runBotTurn 执行一步机器人动作。
// 触发到执行之间房间可能已变化，先校验仍轮到这个机器人
func (rm *RoomManager) runBotTurn(room *Room, botID string) {
	room.mu.Lock()
	if room.State.Status != engine.StatusPlaying || room.State.CurrentID != botID {
		room.mu.Unlock()
		return
	}

	action := bot.ChooseAction(room.State, botID)
	var next engine.State
	var err error
	switch action.Kind {
	case bot.ActionPlay:
		next, err = room.State.PlayCard(botID, action.CardID)
	default:
		next, err = room.State.DrawCard(botID)
	}

	if errors.Is(err, apperrors.ErrDeckExhausted) {
		rm.abortLocked(room)
		return
	}
	if err != nil {
		room.mu.Unlock()
		log.Printf("⚠️ 房间 %s 机器人行动失败: %v", room.Code, err)
		return
	}
	room.State = next
	room.mu.Unlock()

	rm.afterTransition(room)
}
