package room

import (
	"github.com/palemoky/uno-arena/internal/protocol"
	"github.com/palemoky/uno-arena/internal/protocol/convert"
)

// Broadcast 向房间内所有真人客户端广播消息
func (r *Room) Broadcast(msg *protocol.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.broadcast(msg)
}

func (r *Room) broadcast(msg *protocol.Message) {
	for _, client := range r.Clients {
		client.SendMessage(msg)
	}
}

// BroadcastExcept 广播给除指定玩家外的所有真人客户端
func (r *Room) BroadcastExcept(excludeID string, msg *protocol.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, client := range r.Clients {
		if id != excludeID {
			client.SendMessage(msg)
		}
	}
}

// BroadcastState 按接收者逐个生成个性化状态并发送：
// 每个客户端只能看到自己的手牌，其他人只有张数
func (r *Room) BroadcastState(msgType protocol.MessageType) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, client := range r.Clients {
		dto := convert.ToStateDTO(&r.State, r.Code, id)
		switch msgType {
		case protocol.MsgGameStarted:
			client.SendMessage(protocol.MustNewMessage(msgType, protocol.GameStartedPayload{State: dto}))
		default:
			client.SendMessage(protocol.MustNewMessage(msgType, protocol.GameUpdatedPayload{State: dto}))
		}
	}
}

// broadcastGameOver 广播终局消息，亮出各家剩余手牌
func (r *Room) broadcastGameOver(aborted bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payload := protocol.GameOverPayload{
		WinnerID: r.State.WinnerID,
		Aborted:  aborted,
		Hands:    convert.ToPlayerHands(&r.State),
	}
	if winner := r.State.Seat(r.State.WinnerID); winner != nil {
		payload.WinnerName = winner.Name
	}
	r.broadcast(protocol.MustNewMessage(protocol.MsgGameOver, payload))
}

// StateDTOFor 生成指定视角的房间状态
func (r *Room) StateDTOFor(viewerID string) protocol.RoomStateDTO {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return convert.ToStateDTO(&r.State, r.Code, viewerID)
}

// PlayerInfoOf 获取指定玩家的公开信息
func (r *Room) PlayerInfoOf(playerID string) protocol.PlayerInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i, seat := range r.State.Players {
		if seat.ID == playerID {
			return convert.ToPlayerInfo(seat, i)
		}
	}
	return protocol.PlayerInfo{}
}
