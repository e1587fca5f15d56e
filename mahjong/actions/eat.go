package actions

import (
	"github.com/chousawa/text-mahjong/mahjong/broadcast"
	"github.com/chousawa/text-mahjong/mahjong/registry"
	"github.com/chousawa/text-mahjong/models"

	"go.uber.org/zap"
)

// handleEatCard 捡漏：当前回合玩家把最近一张弃牌收进手里。
// 无极限模式没有这条规则。不消耗回合，谁打出的都能吃。
func handleEatCard(client *models.Client, msg map[string]interface{}, reg *registry.Registry, logger *zap.Logger) {
	room, p := currentActor(client, msg, reg)
	if room == nil || room.Mode == models.ModeNoLimit {
		return
	}
	if room.LastDiscard == nil || len(room.DiscardPile) == 0 {
		return
	}

	room.DiscardPile = room.DiscardPile[:len(room.DiscardPile)-1]
	p.Hand = append(p.Hand, room.LastDiscard.Char)
	room.LastDiscard = nil
	room.Touch()
	broadcast.UpdateGame(room, logger)
}
