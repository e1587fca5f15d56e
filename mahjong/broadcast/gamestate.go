// Package broadcast 负责把房间状态投影成客户端可见的消息并推送出去。
package broadcast

import (
	"github.com/chousawa/text-mahjong/models"

	"go.uber.org/zap"
)

// RoomState 房间快照：每次变更后广播给全房间的视图。
// 注意所有玩家的完整手牌都会发给所有人，本游戏按约定走君子协定。
func RoomState(room *models.Room) map[string]interface{} {
	playersInfo := make([]map[string]interface{}, 0, len(room.Players))
	for _, p := range room.Players {
		playersInfo = append(playersInfo, map[string]interface{}{
			"seat":      p.Seat,
			"name":      p.Name,
			"cardCount": len(p.Hand),
			"hand":      p.Hand,
			"isBot":     p.IsBot,
		})
	}

	return map[string]interface{}{
		"mode":        room.Mode,
		"discardPile": room.DiscardPile,
		"turnIndex":   room.TurnIndex,
		"lastDiscard": room.LastDiscard,
		"players":     playersInfo,
	}
}

// rosterInfo 大厅视图：座次、准备状态，不含手牌内容。
func rosterInfo(room *models.Room) []map[string]interface{} {
	roster := make([]map[string]interface{}, 0, len(room.Players))
	for _, p := range room.Players {
		roster = append(roster, map[string]interface{}{
			"seat":      p.Seat,
			"name":      p.Name,
			"isReady":   p.IsReady,
			"isBot":     p.IsBot,
			"cardCount": len(p.Hand),
		})
	}
	return roster
}

// toRoom 把一条消息发给房间里所有有连接的玩家（机器人没有连接）。
func toRoom(room *models.Room, message map[string]interface{}, logger *zap.Logger) {
	for _, p := range room.Players {
		if p.Conn == nil {
			continue
		}
		if err := p.Conn.WriteJSON(message); err != nil {
			logger.Error("Failed to send message to player",
				zap.String("player", p.Name),
				zap.Error(err),
			)
		}
	}
}

// toOne 把一条消息发给单个连接。
func toOne(conn models.Conn, message map[string]interface{}, logger *zap.Logger) {
	if conn == nil {
		return
	}
	if err := conn.WriteJSON(message); err != nil {
		logger.Error("Failed to send message", zap.Error(err))
	}
}

// UpdateGame 动作之后广播最新快照。
func UpdateGame(room *models.Room, logger *zap.Logger) {
	msg := RoomState(room)
	msg["type"] = "updateGame"
	toRoom(room, msg, logger)
}

// GameStart 开局（或重置后）向全房间广播完整快照。
func GameStart(room *models.Room, logger *zap.Logger) {
	msg := RoomState(room)
	msg["type"] = "gameStart"
	toRoom(room, msg, logger)
}

// SendGameStart 重连时只向单个连接补发完整快照。
func SendGameStart(conn models.Conn, room *models.Room, logger *zap.Logger) {
	msg := RoomState(room)
	msg["type"] = "gameStart"
	toOne(conn, msg, logger)
}

// UpdatePlayers 座次或准备状态变化时广播名单。
func UpdatePlayers(room *models.Room, logger *zap.Logger) {
	toRoom(room, map[string]interface{}{
		"type":    "updatePlayers",
		"players": rosterInfo(room),
	}, logger)
}

// SendJoined 加入成功的确认，只发给加入者本人。
func SendJoined(conn models.Conn, seat, maxPlayers, mode int, logger *zap.Logger) {
	toOne(conn, map[string]interface{}{
		"type":       "joined",
		"seat":       seat,
		"maxPlayers": maxPlayers,
		"mode":       mode,
	}, logger)
}

// PlayerWin 广播胜利事件。
func PlayerWin(room *models.Room, name, sentence string, mode int, logger *zap.Logger) {
	toRoom(room, map[string]interface{}{
		"type":     "playerWin",
		"name":     name,
		"sentence": sentence,
		"mode":     mode,
	}, logger)
}

// GameLog 广播一条文字通知（流局等）。
func GameLog(room *models.Room, text string, logger *zap.Logger) {
	toRoom(room, map[string]interface{}{
		"type":    "gameLog",
		"message": text,
	}, logger)
}

// SendError 把拒绝原因发给单个连接。
func SendError(conn models.Conn, text string, logger *zap.Logger) {
	toOne(conn, map[string]interface{}{
		"type":    "errorMsg",
		"message": text,
	}, logger)
}

// RoomError 把错误通知广播给整个房间（如断线重置）。
func RoomError(room *models.Room, text string, logger *zap.Logger) {
	toRoom(room, map[string]interface{}{
		"type":    "errorMsg",
		"message": text,
	}, logger)
}
