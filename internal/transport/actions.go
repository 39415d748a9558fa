package transport

import (
	"time"

	"github.com/palemoky/uno-arena/internal/protocol"
)

// --- 便捷方法 ---

// CreateRoom 创建房间
func (c *Client) CreateRoom(playerName, mode string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgCreateRoom, protocol.CreateRoomPayload{
		PlayerName: playerName,
		Mode:       mode,
	}))
}

// JoinRoom 加入房间
func (c *Client) JoinRoom(roomCode, playerName string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{
		RoomCode:   roomCode,
		PlayerName: playerName,
	}))
}

// LeaveRoom 离开房间
func (c *Client) LeaveRoom() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgLeaveRoom, nil))
}

// ToggleReady 切换准备状态
func (c *Client) ToggleReady() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgToggleReady, nil))
}

// AddBot 添加机器人（房主）
func (c *Client) AddBot() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgAddBot, nil))
}

// StartGame 开始游戏（房主）
func (c *Client) StartGame() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgStartGame, nil))
}

// GetRoomList 获取房间列表
func (c *Client) GetRoomList() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgGetRoomList, nil))
}

// PlayCard 出牌
func (c *Client) PlayCard(cardID string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPlayCard, protocol.PlayCardPayload{
		CardID: cardID,
	}))
}

// DrawCard 抽牌
func (c *Client) DrawCard() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgDrawCard, nil))
}

// FlipDeck 翻转牌组（Flip 模式）
func (c *Client) FlipDeck() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgFlipDeck, nil))
}

// Ping 发送心跳
func (c *Client) Ping() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{
		Timestamp: time.Now().UnixMilli(),
	}))
}
