// Package room 管理房间的生命周期：创建、加入、开局、对局操作的
// 并发安全入口。规则本身在 engine 包里，这里只做加锁、广播和持久化
package room

import (
	"sync"
	"time"

	"github.com/palemoky/uno-arena/internal/game/engine"
	"github.com/palemoky/uno-arena/internal/server/storage"
	"github.com/palemoky/uno-arena/internal/types"
)

const (
	roomCodeLength = 6                                // 房间号长度
	roomCodeChars  = "ABCDEFGHJKMNPQRSTUVWXYZ2345678" // 房间号字符集，去掉了易混淆字符
)

// Room 游戏房间：一份引擎状态加上在线客户端连接。
// State 中的座位包含机器人，Clients 只有真人连接
type Room struct {
	Code      string
	State     engine.State
	Clients   map[string]types.ClientInterface
	CreatedAt time.Time

	mu sync.RWMutex
}

// RoomManager 房间管理器
type RoomManager struct {
	redisStore  *storage.RedisStore
	roomTimeout time.Duration
	botDelay    time.Duration
	rooms       map[string]*Room
	mu          sync.RWMutex
}

// NewRoomManager 创建房间管理器。
// botDelay 是机器人行动前的停顿，避免真人玩家看到瞬时连招
func NewRoomManager(rs *storage.RedisStore, roomTimeout, botDelay time.Duration) *RoomManager {
	rm := &RoomManager{
		redisStore:  rs,
		roomTimeout: roomTimeout,
		botDelay:    botDelay,
		rooms:       make(map[string]*Room),
	}

	// 启动房间清理协程
	go rm.cleanupLoop()

	return rm
}

// GetRoom 获取房间
func (rm *RoomManager) GetRoom(code string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[code]
}

// roomOf 获取客户端所在的房间，不在房间时返回 nil
func (rm *RoomManager) roomOf(client types.ClientInterface) *Room {
	code := client.GetRoom()
	if code == "" {
		return nil
	}
	return rm.GetRoom(code)
}

// Snapshot 并发安全地读取当前引擎状态的副本
func (r *Room) Snapshot() engine.State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.State.Clone()
}
