package handler

import (
	"github.com/palemoky/uno-arena/internal/protocol"
	"github.com/palemoky/uno-arena/internal/types"
)

// handlePlayCard 处理出牌
func (h *Handler) handlePlayCard(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlayCardPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	if err := h.roomManager.PlayCard(client, payload.CardID); err != nil {
		sendError(client, err)
	}
}

// handleDrawCard 处理抽牌
func (h *Handler) handleDrawCard(client types.ClientInterface) {
	if err := h.roomManager.DrawCard(client); err != nil {
		sendError(client, err)
	}
}

// handleFlipDeck 处理翻转牌组
func (h *Handler) handleFlipDeck(client types.ClientInterface) {
	if err := h.roomManager.FlipDeck(client); err != nil {
		sendError(client, err)
	}
}
