package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/uno-arena/internal/game/card"
	"github.com/palemoky/uno-arena/internal/game/engine"
)

func botState(hand []card.Card) engine.State {
	return engine.State{
		Mode:      engine.ModeClassic,
		Status:    engine.StatusPlaying,
		Direction: engine.Forward,
		Players: []*engine.Seat{
			{ID: "bot", Name: "Bot", Hand: hand, IsBot: true},
			{ID: "p2", Name: "P2", Hand: []card.Card{{ID: "x", Color: card.Blue, Value: card.Num1}}},
		},
		CurrentID:   "bot",
		DiscardPile: []card.Card{{ID: "top", Color: card.Red, Value: card.Num9}},
	}
}

func TestChooseActionPlaysOnlyLegalCards(t *testing.T) {
	s := botState([]card.Card{
		{ID: "legal1", Color: card.Red, Value: card.Num3},
		{ID: "illegal", Color: card.Blue, Value: card.Num4},
		{ID: "legal2", Color: card.Wild, Value: card.WildCard},
	})

	// 随机选择，多跑几次确认永远不会选中不合法的牌
	for range 100 {
		action := ChooseAction(s, "bot")
		require.Equal(t, ActionPlay, action.Kind)
		assert.Contains(t, []string{"legal1", "legal2"}, action.CardID)
	}
}

func TestChooseActionDrawsWithoutLegalCards(t *testing.T) {
	s := botState([]card.Card{
		{ID: "c1", Color: card.Blue, Value: card.Num4},
		{ID: "c2", Color: card.Green, Value: card.Num5},
	})

	action := ChooseAction(s, "bot")
	assert.Equal(t, ActionDraw, action.Kind)
	assert.Empty(t, action.CardID)
}

func TestChooseActionDrawsUnderPenalty(t *testing.T) {
	s := botState([]card.Card{{ID: "legal1", Color: card.Red, Value: card.Num3}})
	s.PendingDraw = 2

	// 有罚抽未结清时唯一合法动作是抽牌
	action := ChooseAction(s, "bot")
	assert.Equal(t, ActionDraw, action.Kind)
}
