package actions

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"github.com/chousawa/text-mahjong/mahjong/registry"
	"github.com/chousawa/text-mahjong/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeConn 记录服务端推送的消息。
type fakeConn struct {
	messages []map[string]interface{}
}

func (f *fakeConn) ReadJSON(v interface{}) error { return errors.New("not implemented") }

func (f *fakeConn) WriteJSON(v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeConn) Close() error { return nil }

// lastOfType 返回最近一条指定类型的消息，没有则返回 nil。
func (f *fakeConn) lastOfType(msgType string) map[string]interface{} {
	for i := len(f.messages) - 1; i >= 0; i-- {
		if f.messages[i]["type"] == msgType {
			return f.messages[i]
		}
	}
	return nil
}

func (f *fakeConn) countOfType(msgType string) int {
	n := 0
	for _, m := range f.messages {
		if m["type"] == msgType {
			n++
		}
	}
	return n
}

type fixture struct {
	reg    *registry.Registry
	rng    *rand.Rand
	cfg    models.Config
	logger *zap.Logger
}

func newFixture() *fixture {
	return &fixture{
		reg:    registry.New(),
		rng:    rand.New(rand.NewSource(1)),
		cfg:    models.DefaultConfig(),
		logger: zap.NewNop(),
	}
}

func (fx *fixture) newClient() (*models.Client, *fakeConn) {
	conn := &fakeConn{}
	return &models.Client{Conn: conn, ID: "client-" + randID(fx.rng)}, conn
}

func randID(rng *rand.Rand) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 8)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}

// join 以给定设置加入房间。
func (fx *fixture) join(client *models.Client, roomID string, targetCount, gameMode int) {
	msg := map[string]interface{}{
		"type":       "joinRoom",
		"roomId":     roomID,
		"playerName": client.Name,
	}
	if targetCount > 0 {
		msg["targetCount"] = float64(targetCount)
	}
	if gameMode > 0 {
		msg["gameMode"] = float64(gameMode)
	}
	handleJoinRoom(client, msg, fx.reg, fx.rng, fx.cfg, fx.logger)
}

func (fx *fixture) ready(client *models.Client, roomID string) {
	handleReady(client, map[string]interface{}{"roomId": roomID}, fx.reg, fx.rng, fx.logger)
}

func (fx *fixture) draw(client *models.Client, roomID string) {
	handleDrawCard(client, map[string]interface{}{"roomId": roomID}, fx.reg, fx.logger)
}

func (fx *fixture) discard(client *models.Client, roomID string, indices ...int) {
	raw := make([]interface{}, 0, len(indices))
	for _, idx := range indices {
		raw = append(raw, float64(idx))
	}
	handleDiscardCard(client, map[string]interface{}{
		"roomId":      roomID,
		"cardIndices": raw,
	}, fx.reg, fx.rng, fx.logger)
}

func (fx *fixture) eat(client *models.Client, roomID string) {
	handleEatCard(client, map[string]interface{}{"roomId": roomID}, fx.reg, fx.logger)
}

// startedRoom 建好一个 N 人房并让所有人准备完毕，返回房间和各客户端。
func startedRoom(t *testing.T, fx *fixture, roomID string, mode, count int) (*models.Room, []*models.Client, []*fakeConn) {
	t.Helper()

	clients := make([]*models.Client, 0, count)
	conns := make([]*fakeConn, 0, count)
	for i := 0; i < count; i++ {
		c, conn := fx.newClient()
		fx.join(c, roomID, count, mode)
		clients = append(clients, c)
		conns = append(conns, conn)
	}
	for _, c := range clients {
		fx.ready(c, roomID)
	}

	room, ok := fx.reg.Get(roomID)
	require.True(t, ok)
	require.Equal(t, models.StatePlaying, room.State)
	return room, clients, conns
}
