// Package bot 实现基础玩法的机器人回合：延迟摸牌、再延迟随机出牌，
// 然后把回合交给下一个座位。
package bot

import (
	"math/rand"
	"time"

	"github.com/chousawa/text-mahjong/mahjong/registry"
	"github.com/chousawa/text-mahjong/models"

	"github.com/chousawa/text-mahjong/mahjong/broadcast"

	"go.uber.org/zap"
)

const (
	// 摸牌前的思考延迟：[1000ms, 2000ms) 均匀随机
	drawDelayBase   = time.Second
	drawDelayJitter = time.Second
	// 摸牌到出牌之间的固定延迟
	discardDelay = 800 * time.Millisecond
)

// CheckBotTurn 当前回合若轮到机器人则排定它的回合。调用方必须持有锁。
// 排定时记下房间的 Generation，定时器触发时房间可能已被重置或删除，
// 回调先核对再动手。
func CheckBotTurn(reg *registry.Registry, roomID string, randGen *rand.Rand, logger *zap.Logger) {
	room, ok := reg.Get(roomID)
	if !ok || room.State != models.StatePlaying || room.Mode != models.ModeBasic {
		return
	}
	current := room.CurrentPlayer()
	if current == nil || !current.IsBot {
		return
	}

	gen := room.Generation
	delay := drawDelayBase + time.Duration(randGen.Int63n(int64(drawDelayJitter)))
	time.AfterFunc(delay, func() {
		reg.Lock()
		defer reg.Unlock()
		drawStep(reg, roomID, gen, randGen, logger)
	})
}

// drawStep 摸牌阶段。调用方必须持有锁。
func drawStep(reg *registry.Registry, roomID string, gen uint64, randGen *rand.Rand, logger *zap.Logger) {
	room, ok := reg.Get(roomID)
	if !ok || room.Generation != gen || room.State != models.StatePlaying {
		return
	}
	bot := room.CurrentPlayer()
	if bot == nil || !bot.IsBot {
		return
	}

	if len(room.Deck) == 0 {
		broadcast.GameLog(room, "流局", logger)
		return
	}

	card := room.Deck[len(room.Deck)-1]
	room.Deck = room.Deck[:len(room.Deck)-1]
	bot.Hand = append(bot.Hand, card)
	room.LastDiscard = nil
	room.Touch()
	broadcast.UpdateGame(room, logger)

	time.AfterFunc(discardDelay, func() {
		reg.Lock()
		defer reg.Unlock()
		discardStep(reg, roomID, gen, randGen, logger)
	})
}

// discardStep 出牌阶段：随机打出一张并推进回合。调用方必须持有锁。
func discardStep(reg *registry.Registry, roomID string, gen uint64, randGen *rand.Rand, logger *zap.Logger) {
	room, ok := reg.Get(roomID)
	if !ok || room.Generation != gen || room.State != models.StatePlaying {
		return
	}
	bot := room.CurrentPlayer()
	if bot == nil || !bot.IsBot {
		return
	}

	if len(bot.Hand) > 0 {
		idx := randGen.Intn(len(bot.Hand))
		card := bot.Hand[idx]
		bot.Hand = append(bot.Hand[:idx], bot.Hand[idx+1:]...)
		entry := models.DiscardEntry{Char: card, FromSeat: bot.Seat}
		room.DiscardPile = append(room.DiscardPile, entry)
		room.LastDiscard = &entry
	}
	room.TurnIndex = (room.TurnIndex + 1) % len(room.Players)
	room.Touch()
	broadcast.UpdateGame(room, logger)

	// 下一个座位还是机器人时继续排定
	CheckBotTurn(reg, roomID, randGen, logger)
}
