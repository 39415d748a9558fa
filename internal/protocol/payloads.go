package protocol

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// CreateRoomPayload 创建房间请求
type CreateRoomPayload struct {
	PlayerName string `json:"player_name,omitempty"` // 为空时使用服务端分配的昵称
	Mode       string `json:"mode"`                  // classic/flip/doubles/speed/nomercy
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	RoomCode   string `json:"room_code"`
	PlayerName string `json:"player_name,omitempty"`
}

// PlayCardPayload 出牌请求
type PlayCardPayload struct {
	CardID string `json:"card_id"`
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"` // 客户端发送的时间戳
	ServerTimestamp int64 `json:"server_timestamp"` // 服务器时间戳（毫秒）
}

// RoomCreatedPayload 房间创建成功响应
type RoomCreatedPayload struct {
	RoomCode string       `json:"room_code"`
	State    RoomStateDTO `json:"state"`
}

// RoomJoinedPayload 加入房间成功响应
type RoomJoinedPayload struct {
	RoomCode string       `json:"room_code"`
	State    RoomStateDTO `json:"state"`
}

// PlayerJoinedPayload 其他玩家加入通知
type PlayerJoinedPayload struct {
	Player PlayerInfo `json:"player"`
}

// PlayerLeftPayload 玩家离开通知
type PlayerLeftPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PlayerReadyPayload 玩家准备状态通知
type PlayerReadyPayload struct {
	PlayerID string `json:"player_id"`
	Ready    bool   `json:"ready"`
}

// GameStartedPayload 游戏开始通知
type GameStartedPayload struct {
	State RoomStateDTO `json:"state"`
}

// GameUpdatedPayload 游戏状态更新通知（每次成功转移后广播）
type GameUpdatedPayload struct {
	State RoomStateDTO `json:"state"`
}

// CardDrawnPayload 抽牌结果（仅私发给抽牌者）
type CardDrawnPayload struct {
	Card     CardInfo `json:"card"`
	Playable bool     `json:"playable"` // 抽到的牌是否可立即打出
}

// GameOverPayload 游戏结束通知
type GameOverPayload struct {
	WinnerID   string       `json:"winner_id,omitempty"`
	WinnerName string       `json:"winner_name,omitempty"`
	Aborted    bool         `json:"aborted"` // 牌库耗尽等异常终局
	Hands      []PlayerHand `json:"hands"`   // 各玩家剩余手牌
}

// PlayerHand 玩家手牌信息（用于游戏结束展示）
type PlayerHand struct {
	PlayerID   string     `json:"player_id"`
	PlayerName string     `json:"player_name"`
	Cards      []CardInfo `json:"cards"`
}

// RoomListResultPayload 房间列表结果
type RoomListResultPayload struct {
	Rooms []RoomListItem `json:"rooms"`
}

// RoomListItem 房间列表项
type RoomListItem struct {
	RoomCode    string `json:"room_code"`
	Mode        string `json:"mode"`
	PlayerCount int    `json:"player_count"`
	MaxPlayers  int    `json:"max_players"`
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// --- 通用数据结构 ---

// PlayerInfo 玩家信息
type PlayerInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Seat        int    `json:"seat"`          // 座位号 0-3
	Ready       bool   `json:"ready"`         // 是否准备
	IsHost      bool   `json:"is_host"`       // 是否是房主
	IsBot       bool   `json:"is_bot"`        // 是否是机器人
	CardsCount  int    `json:"cards_count"`   // 手牌数量
	OneCardLeft bool   `json:"one_card_left"` // 只剩一张牌（UNO 提示）
}

// CardInfo 牌信息
type CardInfo struct {
	ID    string `json:"id"`
	Color int    `json:"color"` // 颜色: 0=红, 1=黄, 2=绿, 3=蓝, 4=万能
	Value int    `json:"value"` // 牌面: 0-9 数字, 10=skip, 11=reverse, 12=+2, 13=wild, 14=+4, 15=skip all, 16=reverse all, 17=+5
}

// RoomStateDTO 房间状态数据传输对象
// 按接收者个性化：只包含自己的手牌，其他玩家只给张数
type RoomStateDTO struct {
	RoomCode      string       `json:"room_code"`
	Mode          string       `json:"mode"`
	Status        string       `json:"status"` // waiting/playing/finished
	Players       []PlayerInfo `json:"players"`
	Hand          []CardInfo   `json:"hand"`           // 接收者自己的手牌
	CurrentCard   *CardInfo    `json:"current_card"`   // 弃牌堆顶（当前生效牌）
	CurrentPlayer string       `json:"current_player"` // 当前回合玩家 ID
	Direction     int          `json:"direction"`      // 1=正向, -1=反向
	PendingDraw   int          `json:"pending_draw"`   // 未结清的罚抽张数
	DarkSide      bool         `json:"dark_side"`      // Flip 模式是否在暗面
	WinnerID      string       `json:"winner_id,omitempty"`
	LastAction    string       `json:"last_action,omitempty"` // 最近一次动作描述（展示用）
	DrawPileSize  int          `json:"draw_pile_size"`
}
