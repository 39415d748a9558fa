package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/uno-arena/internal/apperrors"
	"github.com/palemoky/uno-arena/internal/game/card"
	"github.com/palemoky/uno-arena/internal/game/engine"
	"github.com/palemoky/uno-arena/internal/protocol"
	"github.com/palemoky/uno-arena/internal/testutil"
)

func newTestManager() *RoomManager {
	return NewRoomManager(nil, 10*time.Minute, time.Millisecond)
}

func TestRoomManager_CreateRoom(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	host := &testutil.SimpleClient{ID: "p1", Name: "Host"}

	room, err := rm.CreateRoom(host, "classic")
	require.NoError(t, err)

	assert.Len(t, room.Code, roomCodeLength)
	assert.Equal(t, room.Code, host.GetRoom())
	assert.Equal(t, engine.StatusWaiting, room.State.Status)
	require.Len(t, room.State.Players, 1)
	assert.True(t, room.State.Players[0].IsHost)
	assert.Len(t, room.State.Players[0].Hand, engine.HandSize)
}

func TestRoomManager_CreateRoomRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	host := &testutil.SimpleClient{ID: "p1", Name: "Host"}

	_, err := rm.CreateRoom(host, "blackjack")
	assert.Error(t, err)
	assert.Empty(t, host.GetRoom())
}

func TestRoomManager_JoinRoom(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	host := &testutil.SimpleClient{ID: "p1", Name: "Host"}
	guest := &testutil.SimpleClient{ID: "p2", Name: "Guest"}

	room, err := rm.CreateRoom(host, "classic")
	require.NoError(t, err)

	joined, err := rm.JoinRoom(guest, room.Code)
	require.NoError(t, err)
	assert.Same(t, room, joined)
	assert.Equal(t, room.Code, guest.GetRoom())

	// 房主收到 player_joined 通知
	require.NotEmpty(t, host.Messages)
	assert.Equal(t, protocol.MsgPlayerJoined, host.LastMessage().Type)

	// 不存在的房间
	_, err = rm.JoinRoom(guest, "NOPE42")
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}

func TestRoomManager_JoinRoomDuplicateName(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	host := &testutil.SimpleClient{ID: "p1", Name: "Alice"}
	guest := &testutil.SimpleClient{ID: "p2", Name: "Alice"}

	room, err := rm.CreateRoom(host, "classic")
	require.NoError(t, err)

	_, err = rm.JoinRoom(guest, room.Code)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateName)
}

func TestRoomManager_GetRoomList(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	host := &testutil.SimpleClient{ID: "p1", Name: "Host"}

	room, err := rm.CreateRoom(host, "flip")
	require.NoError(t, err)

	rooms := rm.GetRoomList()
	require.Len(t, rooms, 1)
	assert.Equal(t, room.Code, rooms[0].RoomCode)
	assert.Equal(t, "flip", rooms[0].Mode)
	assert.Equal(t, 1, rooms[0].PlayerCount)
	assert.Equal(t, engine.MaxPlayers, rooms[0].MaxPlayers)

	// 开局后不再出现在列表里
	require.NoError(t, rm.AddBot(host))
	require.NoError(t, rm.ToggleReady(host))
	require.NoError(t, rm.StartGame(host))
	assert.Empty(t, rm.GetRoomList())
}

func TestRoomManager_AddBotHostOnly(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	host := &testutil.SimpleClient{ID: "p1", Name: "Host"}
	guest := &testutil.SimpleClient{ID: "p2", Name: "Guest"}

	room, err := rm.CreateRoom(host, "classic")
	require.NoError(t, err)
	_, err = rm.JoinRoom(guest, room.Code)
	require.NoError(t, err)

	assert.ErrorIs(t, rm.AddBot(guest), apperrors.ErrNotHost)

	require.NoError(t, rm.AddBot(host))
	snapshot := room.Snapshot()
	require.Len(t, snapshot.Players, 3)
	assert.True(t, snapshot.Players[2].IsBot)
	assert.True(t, snapshot.Players[2].IsReady)
}

func TestRoomManager_StartGameRequiresEveryoneReady(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	host := &testutil.SimpleClient{ID: "p1", Name: "Host"}
	guest := &testutil.SimpleClient{ID: "p2", Name: "Guest"}

	room, err := rm.CreateRoom(host, "classic")
	require.NoError(t, err)
	_, err = rm.JoinRoom(guest, room.Code)
	require.NoError(t, err)

	require.NoError(t, rm.ToggleReady(host))
	assert.ErrorIs(t, rm.StartGame(host), apperrors.ErrPlayersNotReady)

	require.NoError(t, rm.ToggleReady(guest))
	assert.ErrorIs(t, rm.StartGame(guest), apperrors.ErrNotHost)
	require.NoError(t, rm.StartGame(host))

	assert.Equal(t, engine.StatusPlaying, room.Snapshot().Status)
	// 双方都收到个性化的 game_started
	assert.Equal(t, protocol.MsgGameStarted, host.LastMessage().Type)
	assert.Equal(t, protocol.MsgGameStarted, guest.LastMessage().Type)
}

func TestRoomManager_LeaveRoomPromotesHost(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	host := &testutil.SimpleClient{ID: "p1", Name: "Host"}
	guest := &testutil.SimpleClient{ID: "p2", Name: "Guest"}

	room, err := rm.CreateRoom(host, "classic")
	require.NoError(t, err)
	_, err = rm.JoinRoom(guest, room.Code)
	require.NoError(t, err)

	rm.LeaveRoom(host)

	assert.Empty(t, host.GetRoom())
	snapshot := room.Snapshot()
	require.Len(t, snapshot.Players, 1)
	assert.Equal(t, "p2", snapshot.Players[0].ID)
	assert.True(t, snapshot.Players[0].IsHost)
}

func TestRoomManager_LeaveRoomDisbandsEmptyRoom(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	host := &testutil.SimpleClient{ID: "p1", Name: "Host"}

	room, err := rm.CreateRoom(host, "classic")
	require.NoError(t, err)
	require.NoError(t, rm.AddBot(host))

	// 唯一的真人离开后，只剩机器人的房间直接解散
	rm.LeaveRoom(host)
	assert.Nil(t, rm.GetRoom(room.Code))
}

func TestRoomManager_LeaveRoomLastPlayerWins(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	host := &testutil.SimpleClient{ID: "p1", Name: "Host"}
	guest := &testutil.SimpleClient{ID: "p2", Name: "Guest"}

	room, err := rm.CreateRoom(host, "classic")
	require.NoError(t, err)
	_, err = rm.JoinRoom(guest, room.Code)
	require.NoError(t, err)
	require.NoError(t, rm.ToggleReady(host))
	require.NoError(t, rm.ToggleReady(guest))
	require.NoError(t, rm.StartGame(host))

	rm.LeaveRoom(host)

	snapshot := room.Snapshot()
	assert.Equal(t, engine.StatusFinished, snapshot.Status)
	assert.Equal(t, "p2", snapshot.WinnerID)
	assert.Equal(t, protocol.MsgGameOver, guest.LastMessage().Type)
}

// playingRoom 构造一个确定性的两人对局：轮到 p1，生效牌红 9
func playingRoom(t *testing.T, rm *RoomManager, p1, p2 *testutil.SimpleClient) *Room {
	t.Helper()
	state := engine.State{
		Mode:      engine.ModeClassic,
		Status:    engine.StatusPlaying,
		Direction: engine.Forward,
		Players: []*engine.Seat{
			{ID: p1.ID, Name: p1.Name, IsHost: true, Hand: []card.Card{
				{ID: "red5", Color: card.Red, Value: card.Num5},
				{ID: "blue3", Color: card.Blue, Value: card.Num3},
			}},
			{ID: p2.ID, Name: p2.Name, Hand: []card.Card{
				{ID: "green7", Color: card.Green, Value: card.Num7},
				{ID: "red2", Color: card.Red, Value: card.Num2},
			}},
		},
		CurrentID:   p1.ID,
		DiscardPile: []card.Card{{ID: "top", Color: card.Red, Value: card.Num9}},
		DrawPile: []card.Card{
			{ID: "d1", Color: card.Yellow, Value: card.Num1},
			{ID: "d2", Color: card.Yellow, Value: card.Num2},
		},
	}
	room := NewRoomForTest("TEST01", state, p1, p2)
	rm.AddRoomForTest(room)
	return room
}

func TestRoomManager_PlayCard(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	p1 := &testutil.SimpleClient{ID: "p1", Name: "P1"}
	p2 := &testutil.SimpleClient{ID: "p2", Name: "P2"}
	room := playingRoom(t, rm, p1, p2)

	// 没轮到 p2
	assert.ErrorIs(t, rm.PlayCard(p2, "green7"), apperrors.ErrNotYourTurn)

	require.NoError(t, rm.PlayCard(p1, "red5"))

	snapshot := room.Snapshot()
	assert.Equal(t, "p2", snapshot.CurrentID)
	require.NotEmpty(t, p2.Messages)
	assert.Equal(t, protocol.MsgGameUpdated, p2.LastMessage().Type)
}

func TestRoomManager_DrawCardSendsPrivateCard(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	p1 := &testutil.SimpleClient{ID: "p1", Name: "P1"}
	p2 := &testutil.SimpleClient{ID: "p2", Name: "P2"}
	room := playingRoom(t, rm, p1, p2)

	require.NoError(t, rm.DrawCard(p1))

	// 抽到的黄 1 与红 9 不匹配，回合交给 p2
	assert.Equal(t, "p2", room.Snapshot().CurrentID)

	var drawn *protocol.Message
	for _, msg := range p1.Messages {
		if msg.Type == protocol.MsgCardDrawn {
			drawn = msg
		}
	}
	require.NotNil(t, drawn)
	payload, err := protocol.ParsePayload[protocol.CardDrawnPayload](drawn)
	require.NoError(t, err)
	assert.Equal(t, "d1", payload.Card.ID)
	assert.False(t, payload.Playable)
}

func TestRoomManager_WinBroadcastsGameOver(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	p1 := &testutil.SimpleClient{ID: "p1", Name: "P1"}
	p2 := &testutil.SimpleClient{ID: "p2", Name: "P2"}
	room := playingRoom(t, rm, p1, p2)

	// 只给 p1 留一张可出的牌
	room.State.Players[0].Hand = []card.Card{{ID: "red5", Color: card.Red, Value: card.Num5}}

	require.NoError(t, rm.PlayCard(p1, "red5"))

	snapshot := room.Snapshot()
	assert.Equal(t, engine.StatusFinished, snapshot.Status)
	assert.Equal(t, "p1", snapshot.WinnerID)

	require.Equal(t, protocol.MsgGameOver, p2.LastMessage().Type)
	payload, err := protocol.ParsePayload[protocol.GameOverPayload](p2.LastMessage())
	require.NoError(t, err)
	assert.Equal(t, "p1", payload.WinnerID)
	assert.Equal(t, "P1", payload.WinnerName)
	assert.False(t, payload.Aborted)
	assert.Len(t, payload.Hands, 2)
}

func TestRoomManager_BotPlaysUntilHumanTurn(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	host := &testutil.SimpleClient{ID: "p1", Name: "Host"}

	room, err := rm.CreateRoom(host, "classic")
	require.NoError(t, err)
	require.NoError(t, rm.AddBot(host))
	require.NoError(t, rm.ToggleReady(host))
	require.NoError(t, rm.StartGame(host))

	// 房主抽牌放弃回合后，机器人应自动行动并把回合交回（或直接获胜/终局）
	require.NoError(t, rm.DrawCard(host))

	assert.Eventually(t, func() bool {
		snapshot := room.Snapshot()
		if snapshot.Status != engine.StatusPlaying {
			return true
		}
		return snapshot.CurrentID == "p1"
	}, 3*time.Second, 10*time.Millisecond)
}

func TestRoom_ToRoomData(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	p1 := &testutil.SimpleClient{ID: "p1", Name: "P1"}
	p2 := &testutil.SimpleClient{ID: "p2", Name: "P2"}
	room := playingRoom(t, rm, p1, p2)

	data := room.ToRoomData()
	assert.Equal(t, "TEST01", data.Code)
	assert.Equal(t, "classic", data.Mode)
	assert.Equal(t, int(engine.StatusPlaying), data.Status)
	assert.Equal(t, "p1", data.CurrentPlayer)
	require.Len(t, data.Players, 2)
	assert.Equal(t, 2, data.Players[0].CardsCount)
	assert.True(t, data.Players[0].IsHost)
}
