package handler

import (
	"github.com/palemoky/uno-arena/internal/protocol"
	"github.com/palemoky/uno-arena/internal/types"
)

// renamable 加入房间前允许改名的客户端
type renamable interface {
	SetName(name string)
}

// applyCustomName 采用客户端请求的昵称（为空则保留服务端分配的）
func applyCustomName(client types.ClientInterface, name string) {
	if name == "" {
		return
	}
	if r, ok := client.(renamable); ok {
		r.SetName(name)
	}
}

// handleCreateRoom 处理创建房间
func (h *Handler) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	// 维护模式检查
	if h.server.IsMaintenanceMode() {
		client.SendMessage(protocol.NewErrorMessageWithText(
			protocol.ErrCodeServerMaintenance, "服务器维护中，暂停创建房间"))
		return
	}

	payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 如果已在房间中，先离开
	if client.GetRoom() != "" {
		h.roomManager.LeaveRoom(client)
	}

	applyCustomName(client, payload.PlayerName)

	room, err := h.roomManager.CreateRoom(client, payload.Mode)
	if err != nil {
		sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{
		RoomCode: room.Code,
		State:    room.StateDTOFor(client.GetID()),
	}))
}

// handleJoinRoom 处理加入房间
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	// 维护模式检查
	if h.server.IsMaintenanceMode() {
		client.SendMessage(protocol.NewErrorMessageWithText(
			protocol.ErrCodeServerMaintenance, "服务器维护中，暂停加入房间"))
		return
	}

	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 如果已在房间中，先离开
	if client.GetRoom() != "" {
		h.roomManager.LeaveRoom(client)
	}

	applyCustomName(client, payload.PlayerName)

	room, err := h.roomManager.JoinRoom(client, payload.RoomCode)
	if err != nil {
		sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomJoined, protocol.RoomJoinedPayload{
		RoomCode: room.Code,
		State:    room.StateDTOFor(client.GetID()),
	}))
}

// handleLeaveRoom 处理离开房间
func (h *Handler) handleLeaveRoom(client types.ClientInterface) {
	h.roomManager.LeaveRoom(client)
}

// handleToggleReady 处理准备状态切换
func (h *Handler) handleToggleReady(client types.ClientInterface) {
	if err := h.roomManager.ToggleReady(client); err != nil {
		sendError(client, err)
	}
}

// handleAddBot 处理添加机器人
func (h *Handler) handleAddBot(client types.ClientInterface) {
	if err := h.roomManager.AddBot(client); err != nil {
		sendError(client, err)
	}
}

// handleStartGame 处理开始游戏
func (h *Handler) handleStartGame(client types.ClientInterface) {
	if err := h.roomManager.StartGame(client); err != nil {
		sendError(client, err)
	}
}

// handleGetRoomList 处理获取房间列表
func (h *Handler) handleGetRoomList(client types.ClientInterface) {
	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomListResult, protocol.RoomListResultPayload{
		Rooms: h.roomManager.GetRoomList(),
	}))
}
