package actions

import (
	"strings"

	"github.com/chousawa/text-mahjong/mahjong/broadcast"
	"github.com/chousawa/text-mahjong/mahjong/registry"
	"github.com/chousawa/text-mahjong/models"

	"go.uber.org/zap"
)

// handleEndStory 大乱斗：把弃牌堆按顺序连成一句话，作为大家的共同战果广播。
// 不改动房间状态，可以反复宣布。
func handleEndStory(client *models.Client, msg map[string]interface{}, reg *registry.Registry, logger *zap.Logger) {
	room, ok := reg.Get(roomIDField(msg))
	if !ok || room.Mode != models.ModeFreeForAll {
		return
	}

	var story strings.Builder
	for _, entry := range room.DiscardPile {
		story.WriteString(entry.Char)
	}
	broadcast.PlayerWin(room, "大家", story.String(), room.Mode, logger)
}

// handleHu 基础玩法的胡牌宣言。服务端只转播句子，不校验牌面，
// 造没造出句子由玩家之间自证。
func handleHu(client *models.Client, msg map[string]interface{}, reg *registry.Registry, logger *zap.Logger) {
	room, ok := reg.Get(roomIDField(msg))
	if !ok || room.Mode != models.ModeBasic {
		return
	}
	p := room.FindPlayer(client.ID)
	if p == nil {
		return
	}
	sentence, _ := msg["sentence"].(string)
	broadcast.PlayerWin(room, p.Name, sentence, room.Mode, logger)
}
