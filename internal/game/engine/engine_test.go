package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/uno-arena/internal/apperrors"
	"github.com/palemoky/uno-arena/internal/game/card"
)

// mk 构造一张指定 ID 的测试牌
func mk(id string, color card.Color, value card.Value) card.Card {
	return card.Card{ID: id, Color: color, Value: value}
}

// threePlayerState 构造 A/B/C 三人对局：
// 生效牌为 red 9，牌库由调用方补充
func threePlayerState(drawPile ...card.Card) State {
	return State{
		Mode:      ModeClassic,
		Status:    StatusPlaying,
		Direction: Forward,
		Players: []*Seat{
			{ID: "A", Name: "Alice", IsHost: true, Hand: []card.Card{
				mk("a1", card.Red, card.Num5),
				mk("a2", card.Red, card.Reverse),
				mk("a3", card.Red, card.Skip),
				mk("a4", card.Red, card.DrawTwo),
				mk("a5", card.Wild, card.WildDrawFour),
			}},
			{ID: "B", Name: "Bob", Hand: []card.Card{
				mk("b1", card.Blue, card.Num1),
				mk("b2", card.Blue, card.Num2),
			}},
			{ID: "C", Name: "Carol", Hand: []card.Card{
				mk("c1", card.Green, card.Num3),
				mk("c2", card.Green, card.Num4),
			}},
		},
		CurrentID:   "A",
		DrawPile:    drawPile,
		DiscardPile: []card.Card{mk("top", card.Red, card.Num9)},
	}
}

func fillerPile(n int) []card.Card {
	pile := make([]card.Card, 0, n)
	for i := range n {
		pile = append(pile, card.Card{ID: "p" + string(rune('a'+i)), Color: card.Yellow, Value: card.Num6})
	}
	return pile
}

func TestIsLegal(t *testing.T) {
	active := mk("x", card.Red, card.Num9)

	assert.True(t, IsLegal(mk("c", card.Red, card.Num5), active), "same color")
	assert.True(t, IsLegal(mk("c", card.Blue, card.Num9), active), "same value")
	assert.True(t, IsLegal(mk("c", card.Wild, card.WildCard), active), "wild is always legal")
	assert.True(t, IsLegal(mk("c", card.Wild, card.WildDrawFour), active))
	assert.False(t, IsLegal(mk("c", card.Blue, card.Num5), active), "no match")
}

func TestPlayCardReverse(t *testing.T) {
	s := threePlayerState(fillerPile(4)...)

	n, err := s.PlayCard("A", "a2")
	require.NoError(t, err)

	// 方向反转后回合应交给 C 而不是 B
	assert.Equal(t, Backward, n.Direction)
	assert.Equal(t, "C", n.CurrentID)
	assert.Len(t, n.Seat("A").Hand, 4)
	active, _ := n.ActiveCard()
	assert.Equal(t, "a2", active.ID)
}

func TestPlayCardSkip(t *testing.T) {
	s := threePlayerState(fillerPile(4)...)

	n, err := s.PlayCard("A", "a3")
	require.NoError(t, err)

	// 跳过 B，回合交给 C
	assert.Equal(t, Forward, n.Direction)
	assert.Equal(t, "C", n.CurrentID)
}

func TestPlayCardDrawTwo(t *testing.T) {
	s := threePlayerState(fillerPile(4)...)

	n, err := s.PlayCard("A", "a4")
	require.NoError(t, err)

	// B 被罚抽 2 张且不能行动，回合交给 C
	assert.Len(t, n.Seat("B").Hand, 4)
	assert.Equal(t, "C", n.CurrentID)
	assert.Zero(t, n.PendingDraw, "penalty is discharged during resolution")
	assert.Len(t, n.DrawPile, 2)
}

func TestPlayCardWildDrawFour(t *testing.T) {
	s := threePlayerState(fillerPile(6)...)

	n, err := s.PlayCard("A", "a5")
	require.NoError(t, err)

	assert.Len(t, n.Seat("B").Hand, 6)
	assert.Equal(t, "C", n.CurrentID)
	assert.Len(t, n.DrawPile, 2)
}

func TestPlayCardNumberAdvancesOnce(t *testing.T) {
	s := threePlayerState(fillerPile(2)...)

	n, err := s.PlayCard("A", "a1")
	require.NoError(t, err)
	assert.Equal(t, "B", n.CurrentID)
}

func TestPlayCardWinDetection(t *testing.T) {
	s := threePlayerState(fillerPile(4)...)
	// B 只留一张能出的 +2，打出后立即获胜，不结算罚抽效果
	s.Players[1].Hand = []card.Card{mk("b9", card.Red, card.DrawTwo)}
	s.CurrentID = "B"

	n, err := s.PlayCard("B", "b9")
	require.NoError(t, err)

	assert.Equal(t, StatusFinished, n.Status)
	assert.Equal(t, "B", n.WinnerID)
	// 胜利短路：C 不应被罚抽
	assert.Len(t, n.Seat("C").Hand, 2)
	assert.Len(t, n.DrawPile, 4)
}

func TestPlayCardRejections(t *testing.T) {
	s := threePlayerState(fillerPile(4)...)

	tests := []struct {
		name     string
		mutate   func(*State)
		playerID string
		cardID   string
		wantErr  *apperrors.GameError
	}{
		{"not playing", func(st *State) { st.Status = StatusWaiting }, "A", "a1", apperrors.ErrGameNotStart},
		{"not in room", nil, "Z", "a1", apperrors.ErrNotInRoom},
		{"not your turn", nil, "B", "b1", apperrors.ErrNotYourTurn},
		{"pending draw unresolved", func(st *State) { st.PendingDraw = 2 }, "A", "a1", apperrors.ErrPendingDraw},
		{"card not held", nil, "A", "b1", apperrors.ErrCardNotFound},
		{"illegal card", func(st *State) {
			st.Players[0].Hand = append(st.Players[0].Hand, mk("a9", card.Blue, card.Num1))
		}, "A", "a9", apperrors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := s.Clone()
			if tt.mutate != nil {
				tt.mutate(&st)
			}
			before := st.Clone()

			got, err := st.PlayCard(tt.playerID, tt.cardID)
			assert.ErrorIs(t, err, tt.wantErr)
			// 拒绝必须是无操作：返回的状态与输入深度相等
			assert.Equal(t, before, got)
		})
	}
}

func TestDrawCardKeepsTurnWhenPlayable(t *testing.T) {
	// 牌库顶是 red 3，对 red 9 可出，抽完保留回合
	s := threePlayerState(mk("d1", card.Red, card.Num3))

	n, err := s.DrawCard("A")
	require.NoError(t, err)

	assert.Equal(t, "A", n.CurrentID)
	assert.Len(t, n.Seat("A").Hand, 6)
}

func TestDrawCardPassesTurnWhenNotPlayable(t *testing.T) {
	s := threePlayerState(mk("d1", card.Blue, card.Num3))

	n, err := s.DrawCard("A")
	require.NoError(t, err)

	assert.Equal(t, "B", n.CurrentID)
	assert.Len(t, n.Seat("A").Hand, 6)
}

func TestDrawCardDischargesPendingDraw(t *testing.T) {
	s := threePlayerState(fillerPile(4)...)
	s.PendingDraw = 2

	n, err := s.DrawCard("A")
	require.NoError(t, err)

	// 抽满罚牌、清零并失去本回合
	assert.Len(t, n.Seat("A").Hand, 7)
	assert.Zero(t, n.PendingDraw)
	assert.Equal(t, "B", n.CurrentID)
}

func TestDrawCardReshufflesDiscard(t *testing.T) {
	s := threePlayerState() // 牌库为空
	s.DiscardPile = []card.Card{
		mk("old1", card.Green, card.Num1),
		mk("old2", card.Green, card.Num2),
		mk("top", card.Red, card.Num9),
	}

	n, err := s.DrawCard("A")
	require.NoError(t, err)

	// 弃牌堆只留堆顶，其余洗回牌库后成功抽到一张
	assert.Len(t, n.Seat("A").Hand, 6)
	assert.Len(t, n.DiscardPile, 1)
	assert.Equal(t, "top", n.DiscardPile[0].ID)
	assert.Len(t, n.DrawPile, 1)
}

func TestDrawCardDeckExhausted(t *testing.T) {
	s := threePlayerState() // 牌库为空，弃牌堆只有堆顶
	before := s.Clone()

	got, err := s.DrawCard("A")
	assert.ErrorIs(t, err, apperrors.ErrDeckExhausted)
	assert.Equal(t, before, got)
}

func TestConservation(t *testing.T) {
	s, err := NewGame(ModeClassic, "host", "Host")
	require.NoError(t, err)
	s, err = s.Join("p2", "P2")
	require.NoError(t, err)
	s, err = s.ToggleReady("host")
	require.NoError(t, err)
	s, err = s.ToggleReady("p2")
	require.NoError(t, err)
	s, err = s.Start("host")
	require.NoError(t, err)

	require.Equal(t, 108, s.CardCount())

	// 随机对局推进若干步，总牌数恒为 108
	for range 200 {
		if s.Status != StatusPlaying {
			break
		}
		current := s.CurrentID
		if legal := s.LegalMoves(current); len(legal) > 0 {
			s, err = s.PlayCard(current, legal[0].ID)
		} else {
			s, err = s.DrawCard(current)
		}
		require.NoError(t, err)
		assert.Equal(t, 108, s.CardCount())
	}
}

func TestLegalMoves(t *testing.T) {
	s := threePlayerState(fillerPile(2)...)

	legal := s.LegalMoves("A")
	require.Len(t, legal, 5, "all of A's cards match red or are wild")

	assert.Empty(t, s.LegalMoves("B"), "not B's turn")

	s.PendingDraw = 2
	assert.Empty(t, s.LegalMoves("A"), "pending draw blocks playing")
}

func TestFlipDeck(t *testing.T) {
	s, err := NewGame(ModeFlip, "host", "Host")
	require.NoError(t, err)
	s, err = s.Join("p2", "P2")
	require.NoError(t, err)
	s, err = s.ToggleReady("host")
	require.NoError(t, err)
	s, err = s.ToggleReady("p2")
	require.NoError(t, err)
	s, err = s.Start("host")
	require.NoError(t, err)

	lightIDs := make(map[string]bool)
	for _, c := range s.Players[0].Hand {
		lightIDs[c.ID] = true
	}

	n, err := s.FlipDeck()
	require.NoError(t, err)

	assert.True(t, n.DarkSide)
	// 暗面 64 张的全新一副牌：每人重发 7 张，手牌完全替换
	assert.Equal(t, 64, n.CardCount())
	for _, p := range n.Players {
		require.Len(t, p.Hand, HandSize)
		for _, c := range p.Hand {
			assert.False(t, lightIDs[c.ID], "dark hand must not reuse light cards")
			assert.NotEqual(t, card.Wild, c.Color)
		}
	}
	active, ok := n.ActiveCard()
	require.True(t, ok)
	assert.False(t, active.IsWild())

	// 翻回亮面再次整体重置
	back, err := n.FlipDeck()
	require.NoError(t, err)
	assert.False(t, back.DarkSide)
	assert.Equal(t, 108, back.CardCount())
}

func TestFlipDeckNoopOutsideFlipMode(t *testing.T) {
	s := threePlayerState(fillerPile(2)...)
	before := s.Clone()

	got, err := s.FlipDeck()
	require.NoError(t, err)
	assert.Equal(t, before, got)
}

func TestSkipAllKeepsTurn(t *testing.T) {
	s := threePlayerState(fillerPile(2)...)
	s.Mode = ModeFlip
	s.DarkSide = true
	s.Players[0].Hand = append(s.Players[0].Hand, mk("sa", card.Red, card.SkipAll))

	n, err := s.PlayCard("A", "sa")
	require.NoError(t, err)
	assert.Equal(t, "A", n.CurrentID, "skip all lets the player act again")
}

func TestDrawFivePenalty(t *testing.T) {
	s := threePlayerState(fillerPile(6)...)
	s.Mode = ModeFlip
	s.DarkSide = true
	s.Players[0].Hand = append(s.Players[0].Hand, mk("d5", card.Red, card.DrawFive))

	n, err := s.PlayCard("A", "d5")
	require.NoError(t, err)
	assert.Len(t, n.Seat("B").Hand, 7)
	assert.Equal(t, "C", n.CurrentID)
}

func TestBackwardDirectionAdvance(t *testing.T) {
	s := threePlayerState(fillerPile(2)...)
	s.Direction = Backward

	n, err := s.PlayCard("A", "a1")
	require.NoError(t, err)
	assert.Equal(t, "C", n.CurrentID, "backward from A wraps to C")
}
