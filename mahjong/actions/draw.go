package actions

import (
	"fmt"

	"github.com/chousawa/text-mahjong/mahjong/broadcast"
	"github.com/chousawa/text-mahjong/mahjong/registry"
	"github.com/chousawa/text-mahjong/models"

	"go.uber.org/zap"
)

// handleDrawCard 摸牌。无极限模式下摸牌是"出不了牌"的惩罚，摸完直接跳过回合。
func handleDrawCard(client *models.Client, msg map[string]interface{}, reg *registry.Registry, logger *zap.Logger) {
	room, p := currentActor(client, msg, reg)
	if room == nil {
		return
	}

	if len(room.Deck) == 0 {
		if room.Mode == models.ModeNoLimit {
			// 牌堆耗尽：比谁手牌最少
			endNoLimitGame(room, logger)
			return
		}
		// 其余模式只通报流局，局面停在原地
		broadcast.GameLog(room, "流局", logger)
		return
	}

	card := popDeck(room)
	p.Hand = append(p.Hand, card)
	room.LastDiscard = nil

	if room.Mode == models.ModeNoLimit {
		broadcast.GameLog(room, fmt.Sprintf("%s 无法出牌，摸了一张", p.Name), logger)
		room.TurnIndex = (room.TurnIndex + 1) % len(room.Players)
	}

	room.Touch()
	broadcast.UpdateGame(room, logger)
}

// endNoLimitGame 无极限模式的终局结算：手牌最少者胜，并列时座位靠前者胜。
// 不重置房间状态。
func endNoLimitGame(room *models.Room, logger *zap.Logger) {
	if len(room.Players) == 0 {
		return
	}
	winner := room.Players[0]
	for _, p := range room.Players[1:] {
		if len(p.Hand) < len(winner.Hand) {
			winner = p
		}
	}
	broadcast.PlayerWin(room, winner.Name,
		fmt.Sprintf("牌堆耗尽，%s 剩余手牌最少获胜！", winner.Name),
		room.Mode, logger)
}
