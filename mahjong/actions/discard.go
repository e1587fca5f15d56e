package actions

import (
	"math/rand"
	"sort"

	"github.com/chousawa/text-mahjong/mahjong/bot"
	"github.com/chousawa/text-mahjong/mahjong/broadcast"
	"github.com/chousawa/text-mahjong/mahjong/registry"
	"github.com/chousawa/text-mahjong/models"

	"go.uber.org/zap"
)

// handleDiscardCard 出牌。cardIndices 按玩家点击的先后排列，
// 弃牌堆要保持这个造句顺序。
func handleDiscardCard(client *models.Client, msg map[string]interface{}, reg *registry.Registry, randGen *rand.Rand, logger *zap.Logger) {
	room, p := currentActor(client, msg, reg)
	if room == nil {
		return
	}

	rawIndices, _ := msg["cardIndices"].([]interface{})
	cardIndices := make([]int, 0, len(rawIndices))
	for _, v := range rawIndices {
		if f, ok := v.(float64); ok {
			cardIndices = append(cardIndices, int(f))
		}
	}

	if len(cardIndices) == 0 {
		broadcast.SendError(client.Conn, "请先选择要打出的牌", logger)
		return
	}
	if room.Mode == models.ModeNoLimit && len(cardIndices) < 3 {
		broadcast.SendError(client.Conn, "无极限模式至少打出3张牌！", logger)
		return
	}
	if room.Mode != models.ModeNoLimit && len(cardIndices) > 1 {
		broadcast.SendError(client.Conn, "当前模式只能出一张牌", logger)
		return
	}

	// 1. 按点击顺序提取出牌内容
	orderedChars := make([]string, 0, len(cardIndices))
	for _, idx := range cardIndices {
		if idx >= 0 && idx < len(p.Hand) {
			orderedChars = append(orderedChars, p.Hand[idx])
		}
	}

	// 2. 按下标倒序从手牌移除，先删后面的不会让前面的下标错位
	toRemove := append([]int(nil), cardIndices...)
	sort.Sort(sort.Reverse(sort.IntSlice(toRemove)))
	for _, idx := range toRemove {
		if idx >= 0 && idx < len(p.Hand) {
			p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
		}
	}

	// 3. 按点击顺序放入弃牌堆，lastDiscard 指向最后一张
	for _, char := range orderedChars {
		entry := models.DiscardEntry{Char: char, FromSeat: p.Seat}
		room.DiscardPile = append(room.DiscardPile, entry)
		room.LastDiscard = &entry
	}

	// 无极限模式：手牌打空即胜，房间回到等待状态
	if room.Mode == models.ModeNoLimit && len(p.Hand) == 0 {
		broadcast.PlayerWin(room, p.Name, "率先出完手牌！", room.Mode, logger)
		resetGameData(room)
		return
	}

	room.TurnIndex = (room.TurnIndex + 1) % len(room.Players)
	room.Touch()
	broadcast.UpdateGame(room, logger)

	if room.Mode == models.ModeBasic {
		bot.CheckBotTurn(reg, roomIDField(msg), randGen, logger)
	}
}
