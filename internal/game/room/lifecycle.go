package room

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/palemoky/uno-arena/internal/game/engine"
	"github.com/palemoky/uno-arena/internal/protocol"
)

// generateRoomCode 生成未被占用的房间号。调用时必须持有 rm.mu
func (rm *RoomManager) generateRoomCode() string {
	for {
		code := make([]byte, roomCodeLength)
		for i := range code {
			code[i] = roomCodeChars[rand.IntN(len(roomCodeChars))]
		}
		codeStr := string(code)
		if _, exists := rm.rooms[codeStr]; !exists {
			return codeStr
		}
	}
}

// cleanupLoop 定期清理超时房间
func (rm *RoomManager) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rm.cleanup()
	}
}

// cleanup 清理超时房间：等待中超时的房间和已结束的房间
func (rm *RoomManager) cleanup() {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	now := time.Now()

	for code, room := range rm.rooms {
		room.mu.RLock()
		stale := now.Sub(room.CreatedAt) > rm.roomTimeout &&
			(room.State.Status == engine.StatusWaiting || room.State.Status == engine.StatusFinished)
		room.mu.RUnlock()
		if !stale {
			continue
		}

		// 通知所有玩家房间已关闭
		room.Broadcast(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "房间超时已关闭"))
		room.mu.Lock()
		for _, client := range room.Clients {
			client.SetRoom("")
		}
		room.mu.Unlock()

		delete(rm.rooms, code)
		rm.unpersist(code)
		log.Printf("🏠 房间 %s 超时已清理", code)
	}
}

// persist 异步保存房间快照
func (rm *RoomManager) persist(room *Room) {
	if rm.redisStore == nil {
		return
	}
	go func() { _ = rm.redisStore.SaveRoom(context.Background(), room.Code, room.ToRoomData()) }()
}

// unpersist 异步删除房间快照
func (rm *RoomManager) unpersist(code string) {
	if rm.redisStore == nil {
		return
	}
	go func() { _ = rm.redisStore.DeleteRoom(context.Background(), code) }()
}
