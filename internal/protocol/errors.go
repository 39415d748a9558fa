package protocol

// 错误码
const (
	ErrCodeUnknown           = 1000
	ErrCodeInvalidMsg        = 1001
	ErrCodeRateLimit         = 1002 // 速率限制
	ErrCodeServerMaintenance = 1003 // 服务器维护中

	ErrCodeRoomNotFound     = 2001
	ErrCodeRoomFull         = 2002
	ErrCodeNotInRoom        = 2003
	ErrCodeGameStarted      = 2004 // 游戏已开始，无法加入
	ErrCodeDuplicateName    = 2005 // 昵称已被占用
	ErrCodeNotHost          = 2006 // 需要房主权限
	ErrCodeNotEnoughPlayers = 2007
	ErrCodePlayersNotReady  = 2008

	ErrCodeGameNotStart  = 3001
	ErrCodeNotYourTurn   = 3002
	ErrCodeIllegalMove   = 3003 // 牌不合法
	ErrCodeCardNotFound  = 3004 // 手中没有这张牌
	ErrCodePendingDraw   = 3005 // 必须先结清罚抽
	ErrCodeDeckExhausted = 3006 // 牌库与弃牌堆同时耗尽
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:           "未知错误",
	ErrCodeInvalidMsg:        "无效的消息格式",
	ErrCodeRateLimit:         "请求过于频繁",
	ErrCodeServerMaintenance: "服务器维护中",
	ErrCodeRoomNotFound:      "房间不存在",
	ErrCodeRoomFull:          "房间已满",
	ErrCodeNotInRoom:         "您不在房间中",
	ErrCodeGameStarted:       "游戏已开始",
	ErrCodeDuplicateName:     "该昵称已被占用",
	ErrCodeNotHost:           "只有房主可以执行此操作",
	ErrCodeNotEnoughPlayers:  "玩家人数不足",
	ErrCodePlayersNotReady:   "还有玩家未准备",
	ErrCodeGameNotStart:      "游戏尚未开始",
	ErrCodeNotYourTurn:       "还没轮到您",
	ErrCodeIllegalMove:       "这张牌现在不能出",
	ErrCodeCardNotFound:      "您手中没有这张牌",
	ErrCodePendingDraw:       "必须先抽完罚牌",
	ErrCodeDeckExhausted:     "牌库已耗尽",
}
