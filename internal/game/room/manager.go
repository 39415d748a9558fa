package room

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/palemoky/uno-arena/internal/apperrors"
	"github.com/palemoky/uno-arena/internal/game/engine"
	"github.com/palemoky/uno-arena/internal/protocol"
	"github.com/palemoky/uno-arena/internal/types"
)

// CreateRoom 创建房间，创建者自动成为房主
func (rm *RoomManager) CreateRoom(client types.ClientInterface, mode string) (*Room, error) {
	if mode == "" {
		mode = string(engine.ModeClassic)
	}

	state, err := engine.NewGame(engine.Mode(mode), client.GetID(), client.GetName())
	if err != nil {
		return nil, err
	}

	rm.mu.Lock()
	code := rm.generateRoomCode()
	room := &Room{
		Code:      code,
		State:     state,
		Clients:   map[string]types.ClientInterface{client.GetID(): client},
		CreatedAt: time.Now(),
	}
	rm.rooms[code] = room
	rm.mu.Unlock()

	client.SetRoom(code)
	rm.persist(room)

	log.Printf("🏠 房间 %s 已创建，模式 %s，房主 %s", code, mode, client.GetName())

	return room, nil
}

// JoinRoom 加入房间
func (rm *RoomManager) JoinRoom(client types.ClientInterface, code string) (*Room, error) {
	room := rm.GetRoom(code)
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	room.mu.Lock()
	next, err := room.State.Join(client.GetID(), client.GetName())
	if err != nil {
		room.mu.Unlock()
		return nil, err
	}
	room.State = next
	room.Clients[client.GetID()] = client
	room.mu.Unlock()

	client.SetRoom(code)

	log.Printf("👤 玩家 %s 加入房间 %s", client.GetName(), code)

	// 通知房间内其他玩家
	room.BroadcastExcept(client.GetID(), protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
		Player: room.PlayerInfoOf(client.GetID()),
	}))

	rm.persist(room)

	return room, nil
}

// LeaveRoom 离开房间。
// 房主离开时第一个剩余座位接任房主；对局中只剩一人时其直接获胜；
// 没有真人客户端的房间立即解散
func (rm *RoomManager) LeaveRoom(client types.ClientInterface) {
	room := rm.roomOf(client)
	if room == nil {
		return
	}
	client.SetRoom("")

	room.mu.Lock()
	next, err := room.State.RemovePlayer(client.GetID())
	if err != nil {
		room.mu.Unlock()
		return
	}

	wasHost := room.State.Seat(client.GetID()).IsHost
	room.State = next
	delete(room.Clients, client.GetID())

	if wasHost && len(room.State.Players) > 0 {
		room.State.Players[0].IsHost = true
	}

	// 对局中只剩一个座位，剩下的玩家不战而胜
	lastStand := room.State.Status == engine.StatusPlaying && len(room.State.Players) == 1
	if lastStand {
		room.State.Status = engine.StatusFinished
		room.State.WinnerID = room.State.Players[0].ID
	}

	empty := len(room.Clients) == 0
	room.mu.Unlock()

	log.Printf("👋 玩家 %s 离开房间 %s", client.GetName(), room.Code)

	if empty {
		rm.removeRoom(room.Code)
		return
	}

	room.Broadcast(protocol.MustNewMessage(protocol.MsgPlayerLeft, protocol.PlayerLeftPayload{
		PlayerID:   client.GetID(),
		PlayerName: client.GetName(),
	}))

	if lastStand {
		room.broadcastGameOver(false)
	} else {
		room.BroadcastState(protocol.MsgGameUpdated)
	}
	rm.persist(room)
	rm.scheduleBot(room)
}

// ToggleReady 切换准备状态
func (rm *RoomManager) ToggleReady(client types.ClientInterface) error {
	room := rm.roomOf(client)
	if room == nil {
		return apperrors.ErrNotInRoom
	}

	room.mu.Lock()
	next, err := room.State.ToggleReady(client.GetID())
	if err != nil {
		room.mu.Unlock()
		return err
	}
	room.State = next
	ready := next.Seat(client.GetID()).IsReady
	room.mu.Unlock()

	room.Broadcast(protocol.MustNewMessage(protocol.MsgPlayerReady, protocol.PlayerReadyPayload{
		PlayerID: client.GetID(),
		Ready:    ready,
	}))
	rm.persist(room)

	return nil
}

// AddBot 添加一个机器人对手，只有房主可以操作
func (rm *RoomManager) AddBot(client types.ClientInterface) error {
	room := rm.roomOf(client)
	if room == nil {
		return apperrors.ErrNotInRoom
	}

	room.mu.Lock()
	requestor := room.State.Seat(client.GetID())
	if requestor == nil || !requestor.IsHost {
		room.mu.Unlock()
		return apperrors.ErrNotHost
	}

	botID := uuid.NewString()
	next, err := room.State.JoinBot(botID, rm.botName(&room.State))
	if err != nil {
		room.mu.Unlock()
		return err
	}
	room.State = next
	room.mu.Unlock()

	log.Printf("🤖 房间 %s 加入机器人", room.Code)

	room.Broadcast(protocol.MustNewMessage(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
		Player: room.PlayerInfoOf(botID),
	}))
	rm.persist(room)

	return nil
}

// botName 生成房间内未占用的机器人昵称
func (rm *RoomManager) botName(s *engine.State) string {
	for i := 1; ; i++ {
		name := fmt.Sprintf("Bot-%d", i)
		if s.Seat(name) == nil && !nameTaken(s, name) {
			return name
		}
	}
}

func nameTaken(s *engine.State, name string) bool {
	for _, p := range s.Players {
		if p.Name == name {
			return true
		}
	}
	return false
}

// StartGame 房主开始游戏
func (rm *RoomManager) StartGame(client types.ClientInterface) error {
	room := rm.roomOf(client)
	if room == nil {
		return apperrors.ErrNotInRoom
	}

	room.mu.Lock()
	next, err := room.State.Start(client.GetID())
	if err != nil {
		room.mu.Unlock()
		return err
	}
	room.State = next
	room.mu.Unlock()

	log.Printf("🚀 房间 %s 开始游戏", room.Code)

	room.BroadcastState(protocol.MsgGameStarted)
	rm.persist(room)
	rm.scheduleBot(room)

	return nil
}

// GetRoomList 获取可加入的房间列表
func (rm *RoomManager) GetRoomList() []protocol.RoomListItem {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	var rooms []protocol.RoomListItem
	for code, room := range rm.rooms {
		room.mu.RLock()
		// 只返回等待中且未满的房间
		if room.State.Status == engine.StatusWaiting && len(room.State.Players) < engine.MaxPlayers {
			rooms = append(rooms, protocol.RoomListItem{
				RoomCode:    code,
				Mode:        string(room.State.Mode),
				PlayerCount: len(room.State.Players),
				MaxPlayers:  engine.MaxPlayers,
			})
		}
		room.mu.RUnlock()
	}
	return rooms
}

// GetRoomByPlayerID 通过玩家 ID 获取房间
func (rm *RoomManager) GetRoomByPlayerID(playerID string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	for _, room := range rm.rooms {
		room.mu.RLock()
		seat := room.State.Seat(playerID)
		room.mu.RUnlock()
		if seat != nil {
			return room
		}
	}
	return nil
}

// GetActiveGamesCount 获取进行中的对局数量
func (rm *RoomManager) GetActiveGamesCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	count := 0
	for _, room := range rm.rooms {
		room.mu.RLock()
		if room.State.Status == engine.StatusPlaying {
			count++
		}
		room.mu.RUnlock()
	}
	return count
}

// removeRoom 从管理器和 Redis 中删除房间
func (rm *RoomManager) removeRoom(code string) {
	rm.mu.Lock()
	delete(rm.rooms, code)
	rm.mu.Unlock()
	rm.unpersist(code)
	log.Printf("🏠 房间 %s 已解散", code)
}
