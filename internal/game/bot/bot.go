// Package bot 实现自动对手的走子策略。
// 策略只依赖引擎的合法性判定，何时触发机器人行动由房间层调度
package bot

import (
	"math/rand/v2"

	"github.com/palemoky/uno-arena/internal/game/engine"
)

// ActionKind 动作类型
type ActionKind int

const (
	ActionDraw ActionKind = iota
	ActionPlay
)

// Action 机器人选出的一步动作
type Action struct {
	Kind   ActionKind
	CardID string // 仅 ActionPlay 有效
}

// ChooseAction 为指定座位选一步合法动作：
// 有可出的牌时均匀随机打出一张，否则抽牌（抽牌永远合法）。
// 轮到自己时必定返回动作，绝不拒绝行动
func ChooseAction(s engine.State, playerID string) Action {
	legal := s.LegalMoves(playerID)
	if len(legal) == 0 {
		return Action{Kind: ActionDraw}
	}
	pick := legal[rand.IntN(len(legal))]
	return Action{Kind: ActionPlay, CardID: pick.ID}
}
