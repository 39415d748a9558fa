package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作
	MsgCreateRoom  MessageType = "create_room"   // 创建房间
	MsgJoinRoom    MessageType = "join_room"     // 加入房间
	MsgLeaveRoom   MessageType = "leave_room"    // 离开房间
	MsgToggleReady MessageType = "toggle_ready"  // 切换准备状态
	MsgAddBot      MessageType = "add_bot"       // 添加机器人（房主）
	MsgStartGame   MessageType = "start_game"    // 开始游戏（房主）
	MsgGetRoomList MessageType = "get_room_list" // 获取房间列表

	// 游戏操作
	MsgPlayCard MessageType = "play_card" // 出牌
	MsgDrawCard MessageType = "draw_card" // 抽牌
	MsgFlipDeck MessageType = "flip_deck" // 翻转牌组（Flip 模式）
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected MessageType = "connected" // 连接成功
	MsgPong      MessageType = "pong"      // 心跳 pong

	// 房间相关
	MsgRoomCreated    MessageType = "room_created"     // 房间创建成功
	MsgRoomJoined     MessageType = "room_joined"      // 加入房间成功
	MsgPlayerJoined   MessageType = "player_joined"    // 其他玩家加入
	MsgPlayerLeft     MessageType = "player_left"      // 玩家离开
	MsgPlayerReady    MessageType = "player_ready"     // 玩家准备状态变化
	MsgRoomListResult MessageType = "room_list_result" // 房间列表结果

	// 游戏流程
	MsgGameStarted MessageType = "game_started" // 游戏开始
	MsgGameUpdated MessageType = "game_updated" // 游戏状态更新
	MsgCardDrawn   MessageType = "card_drawn"   // 自己抽到牌（私发）
	MsgGameOver    MessageType = "game_over"    // 游戏结束

	// 错误
	MsgError MessageType = "error" // 错误消息
)
