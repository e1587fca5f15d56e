package actions

import (
	"fmt"
	"math/rand"

	"github.com/chousawa/text-mahjong/mahjong/broadcast"
	"github.com/chousawa/text-mahjong/mahjong/deck"
	"github.com/chousawa/text-mahjong/mahjong/registry"
	"github.com/chousawa/text-mahjong/models"

	"go.uber.org/zap"
)

// handleJoinRoom 加入/创建/重连房间。
func handleJoinRoom(client *models.Client, msg map[string]interface{}, reg *registry.Registry, randGen *rand.Rand, cfg models.Config, logger *zap.Logger) {
	roomID := roomIDField(msg)
	if roomID == "" {
		broadcast.SendError(client.Conn, "无效的房间号", logger)
		return
	}
	playerName, _ := msg["playerName"].(string)
	targetCount := intField(msg, "targetCount")
	gameMode := intField(msg, "gameMode")

	room, exists := reg.Get(roomID)
	if !exists {
		mode := gameMode
		if mode == 0 {
			mode = cfg.DefaultGameMode
		}
		maxPlayers := targetCount
		if maxPlayers == 0 {
			maxPlayers = cfg.DefaultMaxPlayers
		}
		room = reg.GetOrCreate(roomID, mode, maxPlayers)
		logger.Info("room created",
			zap.String("room", roomID),
			zap.Int("mode", room.Mode),
			zap.Int("maxPlayers", room.MaxPlayers),
		)
	} else if room.State == models.StateWaiting {
		// 等待中的房间允许新加入者覆盖设置（后到者生效），
		// 避免页面刷新后残留旧设置。
		if targetCount > 0 {
			room.MaxPlayers = targetCount
		}
		if gameMode > 0 {
			room.Mode = gameMode
		}
	}

	client.RoomID = roomID
	client.Name = playerName
	room.Touch()

	// 对局中的房间不接受另一种模式的加入
	if room.State == models.StatePlaying && gameMode > 0 && gameMode != room.Mode {
		broadcast.SendError(client.Conn, "该房间正在进行另一种模式的游戏！", logger)
		return
	}

	// 请求 targetCount=1 即进入单人分支；单人房开局后 MaxPlayers 已被
	// 改成 4，重连时只能靠请求里的 1 识别。
	if targetCount == 1 || room.MaxPlayers == 1 {
		joinSolo(client, room, roomID, playerName, reg, randGen, logger)
		return
	}
	joinMulti(client, room, playerName, logger)
}

// joinSolo 单人房：一个真人加三个机器人，立即开局。仅限基础玩法。
func joinSolo(client *models.Client, room *models.Room, roomID, playerName string, reg *registry.Registry, randGen *rand.Rand, logger *zap.Logger) {
	if room.Mode != models.ModeBasic {
		broadcast.SendError(client.Conn, "只有基础玩法支持单人模式", logger)
		return
	}

	// 已有真人占位说明是断线重连：换绑连接，补发状态，不重新开局
	if len(room.Players) > 0 {
		for _, p := range room.Players {
			if !p.IsBot {
				p.ID = client.ID
				p.Name = playerName
				p.Conn = client.Conn
				broadcast.SendJoined(client.Conn, p.Seat, room.MaxPlayers, room.Mode, logger)
				broadcast.UpdatePlayers(room, logger)
				if room.State == models.StatePlaying {
					broadcast.SendGameStart(client.Conn, room, logger)
				}
				return
			}
		}
	}

	room.Players = []*models.Player{{
		ID:      client.ID,
		Name:    playerName,
		Hand:    make([]string, 0, deck.HandSize),
		Seat:    0,
		IsReady: true,
		Conn:    client.Conn,
	}}
	for i := 1; i <= 3; i++ {
		room.Players = append(room.Players, &models.Player{
			ID:      fmt.Sprintf("bot_%s_%d", roomID, i),
			Name:    deck.BotName(randGen, i),
			Hand:    make([]string, 0, deck.HandSize),
			Seat:    i,
			IsReady: true,
			IsBot:   true,
		})
	}
	room.MaxPlayers = 4

	broadcast.SendJoined(client.Conn, 0, room.MaxPlayers, room.Mode, logger)
	broadcast.UpdatePlayers(room, logger)
	startGame(roomID, room, reg, randGen, logger)
}

// joinMulti 多人房：重连换绑，否则在等待中且有空位时入座。
func joinMulti(client *models.Client, room *models.Room, playerName string, logger *zap.Logger) {
	if existing := room.FindPlayer(client.ID); existing != nil {
		existing.Name = playerName
		existing.Conn = client.Conn
		broadcast.SendJoined(client.Conn, existing.Seat, room.MaxPlayers, room.Mode, logger)
		broadcast.UpdatePlayers(room, logger)
		if room.State == models.StatePlaying {
			broadcast.SendGameStart(client.Conn, room, logger)
		}
		return
	}

	if len(room.Players) >= room.MaxPlayers {
		broadcast.SendError(client.Conn, "房间已满", logger)
		return
	}
	if room.State == models.StatePlaying {
		broadcast.SendError(client.Conn, "游戏进行中", logger)
		return
	}

	seat := len(room.Players)
	if playerName == "" {
		playerName = fmt.Sprintf("玩家%d", seat+1)
		client.Name = playerName
	}
	room.Players = append(room.Players, &models.Player{
		ID:   client.ID,
		Name: playerName,
		Hand: make([]string, 0, deck.HandSize),
		Seat: seat,
		Conn: client.Conn,
	})
	broadcast.SendJoined(client.Conn, seat, room.MaxPlayers, room.Mode, logger)
	broadcast.UpdatePlayers(room, logger)
}
