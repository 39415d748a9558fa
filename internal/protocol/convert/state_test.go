package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/uno-arena/internal/game/card"
	"github.com/palemoky/uno-arena/internal/game/engine"
)

func TestCardInfoRoundTrip(t *testing.T) {
	c := card.Card{ID: "abc", Color: card.Green, Value: card.DrawTwo}
	assert.Equal(t, c, FromCardInfo(ToCardInfo(c)))
}

func TestToStateDTOHidesOtherHands(t *testing.T) {
	s := engine.State{
		Mode:      engine.ModeClassic,
		Status:    engine.StatusPlaying,
		Direction: engine.Backward,
		Players: []*engine.Seat{
			{ID: "A", Name: "Alice", IsHost: true, Hand: []card.Card{
				{ID: "a1", Color: card.Red, Value: card.Num5},
				{ID: "a2", Color: card.Blue, Value: card.Num3},
			}},
			{ID: "B", Name: "Bob", Hand: []card.Card{
				{ID: "b1", Color: card.Green, Value: card.Num7},
			}},
		},
		CurrentID:   "B",
		PendingDraw: 2,
		DiscardPile: []card.Card{{ID: "top", Color: card.Red, Value: card.Num9}},
		DrawPile:    []card.Card{{ID: "d1", Color: card.Yellow, Value: card.Num1}},
	}

	dto := ToStateDTO(&s, "XYZ123", "A")

	assert.Equal(t, "XYZ123", dto.RoomCode)
	assert.Equal(t, "playing", dto.Status)
	assert.Equal(t, "B", dto.CurrentPlayer)
	assert.Equal(t, -1, dto.Direction)
	assert.Equal(t, 2, dto.PendingDraw)
	assert.Equal(t, 1, dto.DrawPileSize)

	// 只包含接收者自己的手牌
	require.Len(t, dto.Hand, 2)
	assert.Equal(t, "a1", dto.Hand[0].ID)

	require.Len(t, dto.Players, 2)
	assert.Equal(t, 2, dto.Players[0].CardsCount)
	assert.Equal(t, 1, dto.Players[1].CardsCount)
	assert.True(t, dto.Players[1].OneCardLeft)

	require.NotNil(t, dto.CurrentCard)
	assert.Equal(t, "top", dto.CurrentCard.ID)

	// B 视角看不到 A 的手牌内容
	dtoB := ToStateDTO(&s, "XYZ123", "B")
	require.Len(t, dtoB.Hand, 1)
	assert.Equal(t, "b1", dtoB.Hand[0].ID)
}
