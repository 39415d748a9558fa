package room

import (
	"github.com/palemoky/uno-arena/internal/server/storage"
)

// ToRoomData 将 Room 转换为可序列化的快照
func (r *Room) ToRoomData() *storage.RoomData {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data := &storage.RoomData{
		Code:          r.Code,
		Mode:          string(r.State.Mode),
		Status:        int(r.State.Status),
		Players:       make([]storage.PlayerData, 0, len(r.State.Players)),
		CurrentPlayer: r.State.CurrentID,
		Direction:     int(r.State.Direction),
		PendingDraw:   r.State.PendingDraw,
		DarkSide:      r.State.DarkSide,
		WinnerID:      r.State.WinnerID,
		CreatedAt:     r.CreatedAt.Unix(),
	}

	for i, seat := range r.State.Players {
		data.Players = append(data.Players, storage.PlayerData{
			ID:         seat.ID,
			Name:       seat.Name,
			Seat:       i,
			Ready:      seat.IsReady,
			IsHost:     seat.IsHost,
			IsBot:      seat.IsBot,
			CardsCount: len(seat.Hand),
		})
	}

	return data
}
