// Package handler 将客户端消息分发到房间管理器
package handler

import (
	"errors"
	"log"

	"github.com/palemoky/uno-arena/internal/apperrors"
	"github.com/palemoky/uno-arena/internal/game/room"
	"github.com/palemoky/uno-arena/internal/protocol"
	"github.com/palemoky/uno-arena/internal/types"
)

// HandlerDeps 处理器依赖
type HandlerDeps struct {
	Server      types.ServerInterface
	RoomManager *room.RoomManager
}

// Handler 消息处理器
type Handler struct {
	server      types.ServerInterface
	roomManager *room.RoomManager
	handlers    map[protocol.MessageType]handlerFunc
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		server:      deps.Server,
		roomManager: deps.RoomManager,
	}
	h.initHandlers()
	return h
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// 连接操作
		protocol.MsgPing: h.handlePing,

		// 房间操作
		protocol.MsgCreateRoom:  h.handleCreateRoom,
		protocol.MsgJoinRoom:    h.handleJoinRoom,
		protocol.MsgLeaveRoom:   func(c types.ClientInterface, _ *protocol.Message) { h.handleLeaveRoom(c) },
		protocol.MsgToggleReady: func(c types.ClientInterface, _ *protocol.Message) { h.handleToggleReady(c) },
		protocol.MsgAddBot:      func(c types.ClientInterface, _ *protocol.Message) { h.handleAddBot(c) },
		protocol.MsgStartGame:   func(c types.ClientInterface, _ *protocol.Message) { h.handleStartGame(c) },
		protocol.MsgGetRoomList: func(c types.ClientInterface, _ *protocol.Message) { h.handleGetRoomList(c) },

		// 游戏操作
		protocol.MsgPlayCard: h.handlePlayCard,
		protocol.MsgDrawCard: func(c types.ClientInterface, _ *protocol.Message) { h.handleDrawCard(c) },
		protocol.MsgFlipDeck: func(c types.ClientInterface, _ *protocol.Message) { h.handleFlipDeck(c) },
	}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	log.Printf("⚠️  未知消息类型: '%s' (来自玩家: %s, ID: %s)", msg.Type, client.GetName(), client.GetID())
	client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// sendError 把错误映射为协议错误消息发给客户端
func sendError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(protocol.NewErrorMessage(gameErr.Code))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
