package actions

import (
	"math/rand"

	"github.com/chousawa/text-mahjong/mahjong/bot"
	"github.com/chousawa/text-mahjong/mahjong/broadcast"
	"github.com/chousawa/text-mahjong/mahjong/deck"
	"github.com/chousawa/text-mahjong/mahjong/registry"
	"github.com/chousawa/text-mahjong/models"

	"go.uber.org/zap"
)

// startGame 洗牌、发牌、进入对局。调用方必须持有锁。
func startGame(roomID string, room *models.Room, reg *registry.Registry, randGen *rand.Rand, logger *zap.Logger) {
	room.State = models.StatePlaying
	room.Deck = deck.New(randGen)

	// 每人依次从牌堆末尾摸 13 张，牌堆提前耗尽时少发
	for _, p := range room.Players {
		p.Hand = make([]string, 0, deck.HandSize)
		for i := 0; i < deck.HandSize && len(room.Deck) > 0; i++ {
			p.Hand = append(p.Hand, popDeck(room))
		}
	}

	room.TurnIndex = 0
	room.LastDiscard = nil
	room.DiscardPile = make([]models.DiscardEntry, 0)
	room.Touch()

	broadcast.GameStart(room, logger)
	logger.Info("game started",
		zap.String("room", roomID),
		zap.Int("mode", room.Mode),
		zap.Int("players", len(room.Players)),
	)

	// 基础玩法下 0 号座可能是机器人
	if room.Mode == models.ModeBasic {
		bot.CheckBotTurn(reg, roomID, randGen, logger)
	}
}

// popDeck 从牌堆末尾摸一张。调用前需确认牌堆非空。
func popDeck(room *models.Room) string {
	card := room.Deck[len(room.Deck)-1]
	room.Deck = room.Deck[:len(room.Deck)-1]
	return card
}

// resetGameData 一局结束后回到等待状态：清手牌和准备标记，保留座次。
// Generation 递增让仍在排队的机器人定时器失效。
func resetGameData(room *models.Room) {
	room.State = models.StateWaiting
	for _, p := range room.Players {
		p.IsReady = false
		p.Hand = make([]string, 0)
	}
	room.Generation++
	room.Touch()
}
