// Package mahjong 是文字麻将的服务端核心：WebSocket 接入、
// 房间状态机、机器人与广播。
package mahjong

import (
	"context"
	"net/http"
	"time"

	"github.com/chousawa/text-mahjong/mahjong/actions"
	"github.com/chousawa/text-mahjong/mahjong/registry"
	"github.com/chousawa/text-mahjong/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	pingPeriod   = 10 * time.Second
	pongWait     = 60 * time.Second
	msgPerSecond = 20 // 入站消息限速
	msgBurst     = 40
)

// HandleConnections 把 HTTP 请求升级为 WebSocket 连接，
// 初始化客户端并启动读取与探活协程。
func HandleConnections(ctx context.Context, w http.ResponseWriter, r *http.Request, reg *registry.Registry, cfg models.Config, logger *zap.Logger, upgrader websocket.Upgrader) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Error upgrading WebSocket", zap.Error(err))
		return
	}

	wrapped := newWSConn(conn)
	client := &models.Client{
		Conn:    wrapped,
		ID:      uuid.NewString(),
		Limiter: rate.NewLimiter(rate.Limit(msgPerSecond), msgBurst),
	}
	logger.Info("New client connected", zap.String("clientID", client.ID))

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	randGen := CreateLocalRandGenerator()
	go actions.HandleClient(client, reg, randGen, cfg, logger)

	// 定期 ping，写失败说明连接已经没了，读取协程随后会感知并清理
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for range ticker.C {
			if err := wrapped.Ping(); err != nil {
				return
			}
		}
	}()
}
