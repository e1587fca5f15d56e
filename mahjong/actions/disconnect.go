package actions

import (
	"github.com/chousawa/text-mahjong/mahjong/broadcast"
	"github.com/chousawa/text-mahjong/mahjong/registry"
	"github.com/chousawa/text-mahjong/models"

	"go.uber.org/zap"
)

// handleDisconnect 断线处理：移除掉线玩家。没有真人剩下就删房间；
// 否则清掉机器人、重排座次并把房间重置回等待状态。
func handleDisconnect(client *models.Client, reg *registry.Registry, logger *zap.Logger) {
	roomID, room := reg.FindByPlayer(client.ID)
	if room == nil {
		return
	}

	for i, p := range room.Players {
		if p.ID == client.ID {
			room.Players = append(room.Players[:i], room.Players[i+1:]...)
			break
		}
	}

	if !room.HasHuman() {
		reg.Delete(roomID)
		logger.Info("room deleted", zap.String("room", roomID))
		return
	}

	// 剩下的真人回到等待状态，机器人全部清退
	room.State = models.StateWaiting
	room.TurnIndex = 0
	room.LastDiscard = nil
	room.DiscardPile = make([]models.DiscardEntry, 0)
	room.Deck = make([]string, 0)

	humans := make([]*models.Player, 0, len(room.Players))
	for _, p := range room.Players {
		if !p.IsBot {
			humans = append(humans, p)
		}
	}
	room.Players = humans
	for i, p := range room.Players {
		p.Seat = i
		p.IsReady = false
		p.Hand = make([]string, 0)
	}
	room.Generation++
	room.Touch()

	broadcast.UpdatePlayers(room, logger)
	broadcast.RoomError(room, "有人断线，房间已重置", logger)
	broadcast.GameStart(room, logger)
	logger.Info("room reset after disconnect",
		zap.String("room", roomID),
		zap.Int("remaining", len(room.Players)),
	)
}
