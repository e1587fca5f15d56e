package actions

import (
	"math/rand"

	"github.com/chousawa/text-mahjong/mahjong/broadcast"
	"github.com/chousawa/text-mahjong/mahjong/registry"
	"github.com/chousawa/text-mahjong/models"

	"go.uber.org/zap"
)

// handleReady 标记准备。满员且全员准备后开局。
func handleReady(client *models.Client, msg map[string]interface{}, reg *registry.Registry, randGen *rand.Rand, logger *zap.Logger) {
	roomID := roomIDField(msg)
	room, ok := reg.Get(roomID)
	if !ok {
		return
	}
	if p := room.FindPlayer(client.ID); p != nil {
		p.IsReady = true
	}
	room.Touch()
	broadcast.UpdatePlayers(room, logger)

	if room.State != models.StateWaiting || len(room.Players) != room.MaxPlayers {
		return
	}
	for _, p := range room.Players {
		if !p.IsReady {
			return
		}
	}
	startGame(roomID, room, reg, randGen, logger)
}
