package actions

import (
	"testing"

	"github.com/chousawa/text-mahjong/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinCreatesRoomWithDefaults(t *testing.T) {
	fx := newFixture()
	c, conn := fx.newClient()

	fx.join(c, "r1", 0, 0)

	room, ok := fx.reg.Get("r1")
	require.True(t, ok)
	assert.Equal(t, models.ModeBasic, room.Mode)
	assert.Equal(t, 4, room.MaxPlayers)
	assert.Equal(t, models.StateWaiting, room.State)
	require.Len(t, room.Players, 1)
	assert.Equal(t, 0, room.Players[0].Seat)

	joined := conn.lastOfType("joined")
	require.NotNil(t, joined)
	assert.Equal(t, float64(0), joined["seat"])
	assert.Equal(t, float64(4), joined["maxPlayers"])
}

func TestJoinAssignsDefaultName(t *testing.T) {
	fx := newFixture()
	c, _ := fx.newClient()
	c.Name = ""

	fx.join(c, "r1", 2, models.ModeBasic)

	room, _ := fx.reg.Get("r1")
	assert.Equal(t, "玩家1", room.Players[0].Name)
}

func TestLastJoinerOverridesSettingsWhileWaiting(t *testing.T) {
	fx := newFixture()
	c1, _ := fx.newClient()
	c2, _ := fx.newClient()

	fx.join(c1, "r1", 4, models.ModeBasic)
	fx.join(c2, "r1", 2, models.ModeNoLimit)

	room, _ := fx.reg.Get("r1")
	assert.Equal(t, 2, room.MaxPlayers)
	assert.Equal(t, models.ModeNoLimit, room.Mode)
}

func TestJoinRejectsModeMismatchWhilePlaying(t *testing.T) {
	fx := newFixture()
	startedRoom(t, fx, "r1", models.ModeNoLimit, 2)

	c, conn := fx.newClient()
	fx.join(c, "r1", 2, models.ModeBasic)

	errMsg := conn.lastOfType("errorMsg")
	require.NotNil(t, errMsg)
	assert.Equal(t, "该房间正在进行另一种模式的游戏！", errMsg["message"])
	room, _ := fx.reg.Get("r1")
	assert.Len(t, room.Players, 2)
}

func TestJoinRejectsFullRoom(t *testing.T) {
	fx := newFixture()
	c1, _ := fx.newClient()
	c2, _ := fx.newClient()
	fx.join(c1, "r1", 2, models.ModeBasic)
	fx.join(c2, "r1", 2, models.ModeBasic)

	c3, conn := fx.newClient()
	fx.join(c3, "r1", 2, models.ModeBasic)

	errMsg := conn.lastOfType("errorMsg")
	require.NotNil(t, errMsg)
	assert.Equal(t, "房间已满", errMsg["message"])
}

func TestReconnectRebindsSeatAndResyncs(t *testing.T) {
	fx := newFixture()
	room, clients, _ := startedRoom(t, fx, "r1", models.ModeBasic, 2)

	// 同一连接重复 joinRoom 视为重连：换名不换座，补发快照
	clients[0].Name = "新名字"
	newConn := &fakeConn{}
	clients[0].Conn = newConn
	fx.join(clients[0], "r1", 2, models.ModeBasic)

	require.Len(t, room.Players, 2)
	assert.Equal(t, "新名字", room.Players[0].Name)
	assert.Equal(t, 0, room.Players[0].Seat)

	require.NotNil(t, newConn.lastOfType("joined"))
	resync := newConn.lastOfType("gameStart")
	require.NotNil(t, resync)
	assert.Equal(t, float64(models.ModeBasic), resync["mode"])
}

func TestSoloRequiresBasicMode(t *testing.T) {
	fx := newFixture()
	c, conn := fx.newClient()

	fx.join(c, "solo", 1, models.ModeNoLimit)

	errMsg := conn.lastOfType("errorMsg")
	require.NotNil(t, errMsg)
	assert.Equal(t, "只有基础玩法支持单人模式", errMsg["message"])
	room, _ := fx.reg.Get("solo")
	assert.Empty(t, room.Players)
}

func TestSoloFillsBotsAndStartsImmediately(t *testing.T) {
	fx := newFixture()
	c, conn := fx.newClient()

	fx.join(c, "solo", 1, models.ModeBasic)

	room, ok := fx.reg.Get("solo")
	require.True(t, ok)
	assert.Equal(t, models.StatePlaying, room.State)
	assert.Equal(t, 4, room.MaxPlayers)
	require.Len(t, room.Players, 4)

	assert.False(t, room.Players[0].IsBot)
	for seat := 1; seat <= 3; seat++ {
		p := room.Players[seat]
		assert.True(t, p.IsBot)
		assert.Equal(t, seat, p.Seat)
		assert.Len(t, p.Hand, 13)
	}
	assert.Equal(t, 0, room.TurnIndex)
	require.NotNil(t, conn.lastOfType("gameStart"))
}

func TestSoloReconnectDoesNotRestart(t *testing.T) {
	fx := newFixture()
	c, _ := fx.newClient()
	fx.join(c, "solo", 1, models.ModeBasic)

	room, _ := fx.reg.Get("solo")
	deckBefore := len(room.Deck)
	handBefore := append([]string(nil), room.Players[0].Hand...)

	// 新连接（新 ID）重进单人房
	c2, conn2 := fx.newClient()
	c2.Name = "重连者"
	fx.join(c2, "solo", 1, models.ModeBasic)

	require.Len(t, room.Players, 4)
	assert.Equal(t, c2.ID, room.Players[0].ID)
	assert.Equal(t, "重连者", room.Players[0].Name)
	assert.Equal(t, deckBefore, len(room.Deck))
	assert.Equal(t, handBefore, room.Players[0].Hand)
	require.NotNil(t, conn2.lastOfType("gameStart"))
}

func TestJoinRejectsPlayingRoomWithFreeSeat(t *testing.T) {
	fx := newFixture()
	room, _, _ := startedRoom(t, fx, "r1", models.ModeBasic, 2)
	room.MaxPlayers = 3 // 腾出一个空位但对局已开始

	c, conn := fx.newClient()
	fx.join(c, "r1", 0, models.ModeBasic)

	errMsg := conn.lastOfType("errorMsg")
	require.NotNil(t, errMsg)
	assert.Equal(t, "游戏进行中", errMsg["message"])
	assert.Len(t, room.Players, 2)
}
