package actions

import (
	"github.com/chousawa/text-mahjong/mahjong/registry"
	"github.com/chousawa/text-mahjong/models"

	"go.uber.org/zap"
)

// handleSwapHand 同步玩家在前端拖动后的手牌顺序。原样信任存储，
// 不校验是否为原手牌的排列。
func handleSwapHand(client *models.Client, msg map[string]interface{}, reg *registry.Registry, logger *zap.Logger) {
	room, ok := reg.Get(roomIDField(msg))
	if !ok {
		return
	}

	rawHand, ok := msg["hand"].([]interface{})
	if !ok {
		return
	}
	hand := make([]string, 0, len(rawHand))
	for _, v := range rawHand {
		if s, ok := v.(string); ok {
			hand = append(hand, s)
		}
	}

	p := room.FindPlayer(client.ID)
	if p == nil || p.IsBot {
		return
	}
	p.Hand = hand
	room.Touch()
}
