// Package actions 处理客户端事件，驱动房间状态机。
package actions

import (
	"math/rand"

	"github.com/chousawa/text-mahjong/mahjong/registry"
	"github.com/chousawa/text-mahjong/models"

	"go.uber.org/zap"
)

// HandleClient 每条连接一个读取协程：循环读 JSON 消息并按 type 分发。
// 整个分发过程持有 registry 锁，房间变更因此严格串行。
// 读出错（连接断开）时走断线处理。
func HandleClient(client *models.Client, reg *registry.Registry, randGen *rand.Rand, cfg models.Config, logger *zap.Logger) {
	defer func() {
		client.Conn.Close()
		reg.Lock()
		handleDisconnect(client, reg, logger)
		reg.Unlock()
		logger.Info("Client removed",
			zap.String("clientID", client.ID),
			zap.String("room", client.RoomID),
		)
	}()

	for {
		var msg map[string]interface{}
		if err := client.Conn.ReadJSON(&msg); err != nil {
			return
		}
		if client.Limiter != nil && !client.Limiter.Allow() {
			logger.Warn("message rate exceeded, dropping", zap.String("clientID", client.ID))
			continue
		}

		event, _ := msg["type"].(string)

		reg.Lock()
		switch event {
		case "joinRoom":
			handleJoinRoom(client, msg, reg, randGen, cfg, logger)
		case "ready":
			handleReady(client, msg, reg, randGen, logger)
		case "drawCard":
			handleDrawCard(client, msg, reg, logger)
		case "discardCard":
			handleDiscardCard(client, msg, reg, randGen, logger)
		case "eatCard":
			handleEatCard(client, msg, reg, logger)
		case "endStory":
			handleEndStory(client, msg, reg, logger)
		case "hu":
			handleHu(client, msg, reg, logger)
		case "swapHand":
			handleSwapHand(client, msg, reg, logger)
		default:
			logger.Warn("unknown message type",
				zap.String("type", event),
				zap.String("clientID", client.ID),
			)
		}
		reg.Unlock()
	}
}

// roomIDField 从消息里取房间号。
func roomIDField(msg map[string]interface{}) string {
	roomID, _ := msg["roomId"].(string)
	return roomID
}

// intField JSON 数字解码后是 float64，这里统一取整。
func intField(msg map[string]interface{}, key string) int {
	switch v := msg[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// currentActor 回合动作的公共守卫：解析房间和当前回合玩家。
// 房间不存在、当前玩家是机器人、或发消息的连接不是当前玩家时
// 一律静默忽略，严格保证回合顺序不被抢占。
func currentActor(client *models.Client, msg map[string]interface{}, reg *registry.Registry) (*models.Room, *models.Player) {
	room, ok := reg.Get(roomIDField(msg))
	if !ok {
		return nil, nil
	}
	p := room.CurrentPlayer()
	if p == nil || p.IsBot || p.ID != client.ID {
		return nil, nil
	}
	return room, p
}
