package apperrors

import (
	"github.com/palemoky/uno-arena/internal/protocol"
)

// GameError 游戏错误（房间和引擎共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound     = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrRoomFull         = &GameError{Code: protocol.ErrCodeRoomFull, Message: "房间已满"}
	ErrNotInRoom        = &GameError{Code: protocol.ErrCodeNotInRoom, Message: "您不在房间中"}
	ErrGameStarted      = &GameError{Code: protocol.ErrCodeGameStarted, Message: "游戏已开始"}
	ErrGameNotStart     = &GameError{Code: protocol.ErrCodeGameNotStart, Message: "游戏尚未开始"}
	ErrDuplicateName    = &GameError{Code: protocol.ErrCodeDuplicateName, Message: "该昵称已被占用"}
	ErrNotHost          = &GameError{Code: protocol.ErrCodeNotHost, Message: "只有房主可以执行此操作"}
	ErrNotEnoughPlayers = &GameError{Code: protocol.ErrCodeNotEnoughPlayers, Message: "玩家人数不足"}
	ErrPlayersNotReady  = &GameError{Code: protocol.ErrCodePlayersNotReady, Message: "还有玩家未准备"}
	ErrNotYourTurn      = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: "还没轮到您"}
	ErrIllegalMove      = &GameError{Code: protocol.ErrCodeIllegalMove, Message: "这张牌现在不能出"}
	ErrCardNotFound     = &GameError{Code: protocol.ErrCodeCardNotFound, Message: "您手中没有这张牌"}
	ErrPendingDraw      = &GameError{Code: protocol.ErrCodePendingDraw, Message: "必须先抽完罚牌"}
	ErrDeckExhausted    = &GameError{Code: protocol.ErrCodeDeckExhausted, Message: "牌库已耗尽"}
)
