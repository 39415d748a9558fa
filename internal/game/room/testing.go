//go:build !production

package room

import (
	"time"

	"github.com/palemoky/uno-arena/internal/game/engine"
	"github.com/palemoky/uno-arena/internal/types"
)

// NewRoomForTest 用现成的引擎状态构造房间
func NewRoomForTest(code string, state engine.State, clients ...types.ClientInterface) *Room {
	room := &Room{
		Code:      code,
		State:     state,
		Clients:   make(map[string]types.ClientInterface),
		CreatedAt: time.Now(),
	}
	for _, c := range clients {
		room.Clients[c.GetID()] = c
		c.SetRoom(code)
	}
	return room
}

// AddRoomForTest 添加房间用于测试
func (rm *RoomManager) AddRoomForTest(room *Room) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	rm.rooms[room.Code] = room
}
