package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/uno-arena/internal/apperrors"
	"github.com/palemoky/uno-arena/internal/game/card"
)

func readyTwoPlayerGame(t *testing.T) State {
	t.Helper()
	s, err := NewGame(ModeClassic, "host", "Host")
	require.NoError(t, err)
	s, err = s.Join("p2", "P2")
	require.NoError(t, err)
	s, err = s.ToggleReady("host")
	require.NoError(t, err)
	s, err = s.ToggleReady("p2")
	require.NoError(t, err)
	return s
}

func TestNewGame(t *testing.T) {
	s, err := NewGame(ModeClassic, "host", "Host")
	require.NoError(t, err)

	assert.Equal(t, StatusWaiting, s.Status)
	assert.Equal(t, Forward, s.Direction)
	require.Len(t, s.Players, 1)
	assert.True(t, s.Players[0].IsHost)
	assert.Len(t, s.Players[0].Hand, HandSize)

	// 起始生效牌不能是万能牌
	active, ok := s.ActiveCard()
	require.True(t, ok)
	assert.False(t, active.IsWild())

	assert.Equal(t, 108, s.CardCount())
}

func TestNewGameInvalidMode(t *testing.T) {
	_, err := NewGame(Mode("poker"), "host", "Host")
	assert.Error(t, err)
}

func TestJoin(t *testing.T) {
	s, err := NewGame(ModeClassic, "host", "Host")
	require.NoError(t, err)

	s, err = s.Join("p2", "P2")
	require.NoError(t, err)
	require.Len(t, s.Players, 2)
	assert.Len(t, s.Players[1].Hand, HandSize)
	assert.False(t, s.Players[1].IsHost)
	assert.Equal(t, 108, s.CardCount())

	// 重名拒绝
	_, err = s.Join("p3", "P2")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateName)

	// 满员拒绝
	s, err = s.Join("p3", "P3")
	require.NoError(t, err)
	s, err = s.Join("p4", "P4")
	require.NoError(t, err)
	_, err = s.Join("p5", "P5")
	assert.ErrorIs(t, err, apperrors.ErrRoomFull)
}

func TestJoinAfterStart(t *testing.T) {
	s := readyTwoPlayerGame(t)
	s, err := s.Start("host")
	require.NoError(t, err)

	_, err = s.Join("p3", "P3")
	assert.ErrorIs(t, err, apperrors.ErrGameStarted)
}

func TestJoinBotIsReady(t *testing.T) {
	s, err := NewGame(ModeClassic, "host", "Host")
	require.NoError(t, err)

	s, err = s.JoinBot("bot1", "Bot 1")
	require.NoError(t, err)
	assert.True(t, s.Players[1].IsBot)
	assert.True(t, s.Players[1].IsReady)
}

func TestStartGuards(t *testing.T) {
	s, err := NewGame(ModeClassic, "host", "Host")
	require.NoError(t, err)

	// 人数不足
	s2, err := s.ToggleReady("host")
	require.NoError(t, err)
	_, err = s2.Start("host")
	assert.ErrorIs(t, err, apperrors.ErrNotEnoughPlayers)

	// 非房主
	s2, err = s2.Join("p2", "P2")
	require.NoError(t, err)
	_, err = s2.Start("p2")
	assert.ErrorIs(t, err, apperrors.ErrNotHost)

	// 有人未准备
	_, err = s2.Start("host")
	assert.ErrorIs(t, err, apperrors.ErrPlayersNotReady)

	// 全员准备后开始，首座先行
	s2, err = s2.ToggleReady("p2")
	require.NoError(t, err)
	s2, err = s2.Start("host")
	require.NoError(t, err)
	assert.Equal(t, StatusPlaying, s2.Status)
	assert.Equal(t, "host", s2.CurrentID)

	// 不能重复开始
	_, err = s2.Start("host")
	assert.ErrorIs(t, err, apperrors.ErrGameStarted)
}

func TestToggleReady(t *testing.T) {
	s, err := NewGame(ModeClassic, "host", "Host")
	require.NoError(t, err)

	s, err = s.ToggleReady("host")
	require.NoError(t, err)
	assert.True(t, s.Players[0].IsReady)

	s, err = s.ToggleReady("host")
	require.NoError(t, err)
	assert.False(t, s.Players[0].IsReady)

	_, err = s.ToggleReady("ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotInRoom)
}

func TestRemovePlayerAdvancesTurnFirst(t *testing.T) {
	s := threePlayerState(fillerPile(2)...)

	n, err := s.RemovePlayer("A")
	require.NoError(t, err)

	// A 持有回合，先推进到 B 再移除
	assert.Equal(t, "B", n.CurrentID)
	require.Len(t, n.Players, 2)
	assert.Nil(t, n.Seat("A"))
}

func TestRemovePlayerBackward(t *testing.T) {
	s := threePlayerState(fillerPile(2)...)
	s.Direction = Backward

	n, err := s.RemovePlayer("A")
	require.NoError(t, err)
	assert.Equal(t, "C", n.CurrentID)
}

func TestRemovePlayerNotCurrent(t *testing.T) {
	s := threePlayerState(fillerPile(2)...)

	n, err := s.RemovePlayer("B")
	require.NoError(t, err)
	assert.Equal(t, "A", n.CurrentID)
	require.Len(t, n.Players, 2)

	_, err = n.RemovePlayer("B")
	assert.ErrorIs(t, err, apperrors.ErrNotInRoom)
}

func TestAbort(t *testing.T) {
	s := threePlayerState(fillerPile(2)...)

	n := s.Abort()
	assert.Equal(t, StatusFinished, n.Status)
	assert.Empty(t, n.WinnerID)
}

func TestCloneIsDeep(t *testing.T) {
	s := threePlayerState(fillerPile(2)...)
	n := s.Clone()

	n.Players[0].Hand[0] = card.Card{ID: "mutated", Color: card.Blue, Value: card.Num1}
	n.DrawPile[0] = card.Card{ID: "mutated2", Color: card.Blue, Value: card.Num2}

	assert.Equal(t, "a1", s.Players[0].Hand[0].ID)
	assert.Equal(t, "pa", s.DrawPile[0].ID)
}
